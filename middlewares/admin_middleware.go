package middlewares

import (
	"gin-foody/constants"
	"gin-foody/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly permits the request only when the authenticated user's
// stored role is admin. The role comes from the users collection, not
// from the token, so a revoked admin loses access immediately.
// Must run after AuthMiddleware; a missing email claim means the chain
// was composed wrong and the request is rejected outright.
func AdminOnly(userService services.IUserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := ctx.GetString(ContextEmail)
		if email == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		user, err := userService.FindByEmail(ctx.Request.Context(), email)
		if err != nil {
			if err.Error() == constants.ErrUserNotFound {
				ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.ErrForbidden})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
			return
		}

		if user.Role != constants.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.ErrForbidden})
			return
		}

		ctx.Next()
	}
}
