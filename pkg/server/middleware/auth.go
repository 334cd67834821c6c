package middleware

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/depothq/depot/pkg/identity"
)

// SessionKeyEnv names the environment variable holding the HMAC key used
// to sign admin session tokens.
const SessionKeyEnv = "DEPOT_SESSION_KEY"

// SessionClaims are the claims carried by an admin session token
type SessionClaims struct {
	Admin bool `json:"adm"`
	jwt.RegisteredClaims
}

// AdminAuthenticator is middleware that validates admin session tokens
type AdminAuthenticator struct {
	key []byte
}

// NewAdminAuthenticator creates a new admin session middleware using the
// given signing key. An empty key falls back to DEPOT_SESSION_KEY. With
// no key from either source the middleware rejects every request and
// IssueToken fails.
func NewAdminAuthenticator(key []byte) *AdminAuthenticator {
	if len(key) == 0 {
		key = []byte(os.Getenv(SessionKeyEnv))
	}
	return &AdminAuthenticator{key: key}
}

// IssueToken mints a signed admin session token for a username
func (a *AdminAuthenticator) IssueToken(username string, admin bool, ttl time.Duration) (string, error) {
	if len(a.key) == 0 {
		return "", fmt.Errorf("session key is not configured (set %s)", SessionKeyEnv)
	}

	now := time.Now()
	claims := SessionClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.key)
}

// Middleware returns an HTTP middleware that validates session tokens
// and requires the admin claim.
func (a *AdminAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// An empty key would verify tokens anyone can sign.
		if len(a.key) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Session key not configured"))
			return
		}

		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Authorization missing"))
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Malformed authorization header"))
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.key, nil
		})
		if err != nil || !token.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid session token"))
			return
		}

		if !claims.Admin {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("Admin privileges required"))
			return
		}

		id := &identity.Identity{
			Username: claims.Subject,
			Admin:    claims.Admin,
		}
		if claims.IssuedAt != nil {
			id.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			id.ExpiresAt = claims.ExpiresAt.Time
		}
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			id.WithRemoteIP(net.ParseIP(host))
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}
