package controllers

import (
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IMenuController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type MenuController struct {
	service services.IMenuService
}

func NewMenuController(service services.IMenuService) IMenuController {
	return &MenuController{service: service}
}

func (c *MenuController) FindAll(ctx *gin.Context) {
	items, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (c *MenuController) FindById(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	item, err := c.service.FindById(ctx.Request.Context(), id)
	if err != nil {
		if err.Error() == constants.ErrMenuNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrMenuNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (c *MenuController) Create(ctx *gin.Context) {
	var input dto.CreateMenuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	newItem, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newItem)
}

func (c *MenuController) Update(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateMenuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	updatedItem, err := c.service.Update(ctx.Request.Context(), id, input)
	if err != nil {
		if err.Error() == constants.ErrMenuNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrMenuNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, updatedItem)
}

func (c *MenuController) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		if err.Error() == constants.ErrMenuNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrMenuNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
