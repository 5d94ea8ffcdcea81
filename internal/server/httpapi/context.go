package httpapi

import (
	"context"

	"github.com/avelis/daybook/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "sessionClaims"

// withClaims attaches verified session claims to the request context.
func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified session claims attached by the
// session gate, or nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	v := ctx.Value(claimsKey)
	if v == nil {
		return nil
	}
	c, _ := v.(*auth.Claims)
	return c
}
