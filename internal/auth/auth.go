package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

type tokenKey struct{}

// ContextWithToken attaches a caller identity token to the context.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the caller's token, or "" when none was presented.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Middleware extracts a bearer token from the Authorization header and makes
// it available to resolvers through the request context. It never rejects a
// request itself; protected operations decide whether a token is required.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			ctx := ContextWithToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
