package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depothq/depot/pkg/identity"
)

func protectedHandler(t *testing.T, sawIdentity *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if ok {
			*sawIdentity = true
			assert.Equal(t, "admin", id.Username)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuthenticator(t *testing.T) {
	auth := NewAdminAuthenticator([]byte("test-session-key"))

	t.Run("valid admin token passes and sets identity", func(t *testing.T) {
		token, err := auth.IssueToken("admin", true, time.Minute)
		require.NoError(t, err)

		var sawIdentity bool
		req := httptest.NewRequest("GET", "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		auth.Middleware(protectedHandler(t, &sawIdentity)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, sawIdentity)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/projects", nil)
		w := httptest.NewRecorder()

		var sawIdentity bool
		auth.Middleware(protectedHandler(t, &sawIdentity)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, sawIdentity)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/projects", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()

		var sawIdentity bool
		auth.Middleware(protectedHandler(t, &sawIdentity)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		token, err := auth.IssueToken("admin", true, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		var sawIdentity bool
		auth.Middleware(protectedHandler(t, &sawIdentity)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin token is forbidden", func(t *testing.T) {
		token, err := auth.IssueToken("alice", false, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		var sawIdentity bool
		auth.Middleware(protectedHandler(t, &sawIdentity)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("token signed with a different key is unauthorized", func(t *testing.T) {
		other := NewAdminAuthenticator([]byte("other-key"))
		token, err := other.IssueToken("admin", true, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		var sawIdentity bool
		auth.Middleware(protectedHandler(t, &sawIdentity)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminAuthenticatorWithoutKey(t *testing.T) {
	t.Setenv(SessionKeyEnv, "")
	auth := NewAdminAuthenticator(nil)

	t.Run("rejects a token signed with the empty key", func(t *testing.T) {
		claims := SessionClaims{
			Admin: true,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()

		var sawIdentity bool
		auth.Middleware(protectedHandler(t, &sawIdentity)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, sawIdentity)
	})

	t.Run("refuses to mint tokens", func(t *testing.T) {
		_, err := auth.IssueToken("admin", true, time.Minute)
		assert.Error(t, err)
	})
}
