package controllers

import (
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	CreateToken(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

// CreateToken signs the claim object the client posts and returns the
// token. The payload carries at least the email the middlewares key on.
func (c *AuthController) CreateToken(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil || len(payload) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	token, err := c.service.CreateToken(payload)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: *token})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if err := c.service.Logout(tokenString); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to logout"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
