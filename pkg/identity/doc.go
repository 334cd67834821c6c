// Package identity provides authenticated identity management for admin
// requests.
//
// An Identity combines session token claims (username, admin flag,
// timestamps) with request-specific context (client IP). The middleware
// package stores an Identity on the request context after validating the
// session token; handlers retrieve it with identity.Get. Inject seeds the
// slot the identity travels in, so wrappers outside the router (the
// access logger) can read it as well.
package identity
