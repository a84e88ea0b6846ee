package controllers

import (
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/middlewares"
	"gin-foody/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IPaymentController interface {
	FindByEmail(ctx *gin.Context)
	Record(ctx *gin.Context)
	CreatePaymentIntent(ctx *gin.Context)
}

type PaymentController struct {
	service services.IPaymentService
}

func NewPaymentController(service services.IPaymentService) IPaymentController {
	return &PaymentController{service: service}
}

// FindByEmail lists the authenticated user's own payments. Asking for a
// different email is forbidden; no email defaults to the token's.
func (c *PaymentController) FindByEmail(ctx *gin.Context) {
	tokenEmail := ctx.GetString(middlewares.ContextEmail)

	email := ctx.Query("email")
	if email == "" {
		email = tokenEmail
	}
	if email != tokenEmail {
		ctx.JSON(http.StatusForbidden, gin.H{"message": constants.ErrForbidden})
		return
	}

	payments, err := c.service.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// Record stores a confirmed payment and clears the cart items it paid
// for, answering the inserted payment and the deletedCount.
func (c *PaymentController) Record(ctx *gin.Context) {
	var input dto.CreatePaymentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	email := ctx.GetString(middlewares.ContextEmail)
	payment, deletedCount, err := c.service.Record(ctx.Request.Context(), input, email)
	if err != nil {
		if err.Error() == constants.ErrInvalidID {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"insertedId":   payment.ID,
		"payment":      payment,
		"deletedCount": deletedCount,
	})
}

// CreatePaymentIntent delegates the amount to the payment processor and
// relays the client secret. Processor rejections surface as 400.
func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var input dto.PaymentIntentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	clientSecret, err := c.service.CreatePaymentIntent(input.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}
