package middleware

import (
	"context"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Identity is what the external identity provider asserts about the caller.
// The portal trusts these claims; it never verifies credentials itself.
type Identity struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

type contextKey string

// IdentityKey holds the caller's Identity in the request context once
// RequireAuth has run.
const IdentityKey contextKey = "identity"

// IdentityFromContext returns the resolved caller identity, or false when the
// request never passed through RequireAuth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(IdentityKey).(Identity)
	return ident, ok
}

type AuthMiddleware struct {
	jwtSecret []byte
}

func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: secret}
}

func optionalClaim(claims jwt.MapClaims, key string) *string {
	if v, ok := claims[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// RequireAuth resolves the caller's identity from the Bearer token or rejects
// the request with 401. Admin checks happen later, against the users table.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "invalid claims", http.StatusUnauthorized)
			return
		}
		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			http.Error(w, "invalid subject", http.StatusUnauthorized)
			return
		}
		ident := Identity{
			ID:              sub,
			Email:           optionalClaim(claims, "email"),
			FirstName:       optionalClaim(claims, "first_name"),
			LastName:        optionalClaim(claims, "last_name"),
			ProfileImageURL: optionalClaim(claims, "profile_image_url"),
		}
		ctx := context.WithValue(r.Context(), IdentityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
