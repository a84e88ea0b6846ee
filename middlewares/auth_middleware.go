package middlewares

import (
	"gin-foody/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware.
const (
	ContextClaims = "claims"
	ContextEmail  = "email"
)

// AuthMiddleware verifies the bearer token and stores the decoded
// claims in the request context. It never touches the document store;
// role checks belong to AdminOnly.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := authService.VerifyToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		ctx.Set(ContextClaims, claims)
		ctx.Set(ContextEmail, services.ClaimsEmail(claims))

		ctx.Next()
	}
}
