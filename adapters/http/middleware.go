package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/auth"
)

const (
	// GinContextKeyIdentity holds the raw token subject. Coercion to an owner
	// key happens in the identity resolver, not here, so a token carrying a
	// junk subject still reaches the use case and answers 400, not 401.
	GinContextKeyIdentity = "identity"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(GinContextKeyIdentity, claims.Subject)

		c.Next()
	}
}

// GetIdentityFromGinContext returns the raw token subject set by
// AuthMiddleware.
func GetIdentityFromGinContext(c *gin.Context) (string, bool) {
	identity, ok := c.Get(GinContextKeyIdentity)
	if !ok {
		return "", false
	}
	subject, ok := identity.(string)
	return subject, ok
}

// respondError translates a use-case error into the JSON error body and
// status of the apperror taxonomy.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(apperror.ToHTTPStatus(appErr), gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
