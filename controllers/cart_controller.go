package controllers

import (
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICartController interface {
	FindByEmail(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateQuantity(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

// FindByEmail lists cart items for the email query parameter; with no
// parameter the whole collection comes back.
func (c *CartController) FindByEmail(ctx *gin.Context) {
	email := ctx.Query("email")

	items, err := c.service.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// FindById answers null for an unknown id; a missing cart entry is not
// an error for the storefront.
func (c *CartController) FindById(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	item, err := c.service.FindById(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (c *CartController) Create(ctx *gin.Context) {
	var input dto.CreateCartItemInput
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

// UpdateQuantity upserts the quantity field: an unknown id creates the
// record, an existing one changes only quantity.
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateCartQuantityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	result, err := c.service.UpdateQuantity(ctx.Request.Context(), id, *input.Quantity)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *CartController) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	deletedCount, err := c.service.Delete(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deletedCount": deletedCount})
}
