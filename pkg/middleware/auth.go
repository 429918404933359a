package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/contenthub-server/pkg/metrics"
)

// Token is minimal interface for a verified token that can expose claims
type Token interface {
	Claims(v interface{}) error
}

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (Token, error)
}

type ctxKey struct{}

// WithEmail stores the authenticated email in ctx.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxKey{}, email)
}

// EmailFromContext returns the email attached by AuthMiddleware, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxKey{}).(string)
	return email, ok && email != ""
}

// AuthMiddleware returns a Gin middleware that verifies the token carried in
// the named cookie. On success the claims are stored under "claims" and the
// email under "email" (also on the request context).
func AuthMiddleware(ver Verifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			metrics.AuthRejected.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		tok, err := ver.Verify(c.Request.Context(), raw)
		if err != nil {
			metrics.AuthRejected.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		var claims map[string]interface{}
		if err := tok.Claims(&claims); err != nil {
			metrics.AuthRejected.WithLabelValues("claims").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		c.Set("claims", claims)
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
			c.Request = c.Request.WithContext(WithEmail(c.Request.Context(), email))
		}
		c.Next()
	}
}
