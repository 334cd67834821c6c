package identity

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for the identity slot.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request.
// It combines session token claims with request-specific context.
type Identity struct {
	// Token claims
	Username  string
	Admin     bool
	IssuedAt  time.Time
	ExpiresAt time.Time

	// Request context
	RemoteIP net.IP // Client IP address
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// holder is the mutable slot Inject seeds into the request context.
// Context values set by inner middleware are invisible to handlers that
// wrap the router, such as the access logger; a shared slot lets inner
// middleware publish the identity outward.
type holder struct {
	mu sync.RWMutex
	id *Identity
}

// Inject seeds the request context with an empty identity slot. It must
// wrap the outermost handler that needs to observe the identity.
func Inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), Key, &holder{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Get retrieves the Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	h, ok := ctx.Value(Key).(*holder)
	if !ok {
		return nil, false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.id == nil {
		return nil, false
	}
	return h.id, true
}

// Set stores the Identity in context. When an identity slot is already
// present the identity lands in that slot, so handlers outside the slot's
// injection point see it too.
func Set(ctx context.Context, id *Identity) context.Context {
	if h, ok := ctx.Value(Key).(*holder); ok {
		h.mu.Lock()
		h.id = id
		h.mu.Unlock()
		return ctx
	}
	return context.WithValue(ctx, Key, &holder{id: id})
}
