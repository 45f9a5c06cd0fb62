package httpx

import (
	"net/http"
	"strings"

	"cafedeslettres/internal/platform/crypto"
)

// Authenticator verifies bearer tokens issued by the hosted auth provider.
type Authenticator struct {
	secret   string
	audience string
}

func NewAuthenticator(secret, audience string) *Authenticator {
	return &Authenticator{secret: secret, audience: audience}
}

func (a *Authenticator) claimsFrom(r *http.Request) (*crypto.Claims, bool, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false, nil
	}
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return nil, true, crypto.ErrMissingSubject
	}
	claims, err := crypto.ParseToken(a.secret, a.audience, token)
	return claims, true, err
}

// RequireAuth rejects requests without a valid token.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, present, err := a.claimsFrom(r)
		if !present || err != nil {
			Unauthorized(w, r)
			return
		}
		ctx := ContextWithUser(r.Context(), claims.UserID(), claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth lets anonymous requests through but rejects a bad token, so a
// client never silently loses its identity.
func (a *Authenticator) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, present, err := a.claimsFrom(r)
		if !present {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			Unauthorized(w, r)
			return
		}
		ctx := ContextWithUser(r.Context(), claims.UserID(), claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) RequireAuthFunc(h http.HandlerFunc) http.Handler {
	return a.RequireAuth(h)
}

func (a *Authenticator) OptionalAuthFunc(h http.HandlerFunc) http.Handler {
	return a.OptionalAuth(h)
}
