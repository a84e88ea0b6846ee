package controllers

import (
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/middlewares"
	"gin-foody/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
	CheckAdmin(ctx *gin.Context)
	GrantAdmin(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// Create inserts a user once per email. A duplicate answers 302 with a
// message body, the contract the web client expects.
func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	newUser, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		if err.Error() == constants.ErrUserExists {
			ctx.JSON(http.StatusFound, gin.H{"message": constants.ErrUserExists})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newUser)
}

func (c *UserController) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		if err.Error() == constants.ErrUserNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrUserNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// CheckAdmin reports whether the requesting user is an admin. Callers
// may only ask about their own email; anything else is forbidden no
// matter what role the target holds.
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	email := ctx.Param("email")
	tokenEmail := ctx.GetString(middlewares.ContextEmail)

	if email != tokenEmail {
		ctx.JSON(http.StatusForbidden, gin.H{"message": constants.ErrForbidden})
		return
	}

	isAdmin, err := c.service.IsAdmin(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (c *UserController) GrantAdmin(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	result, err := c.service.GrantAdmin(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
