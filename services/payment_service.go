package services

import (
	"context"
	"errors"
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/models"
	"gin-foody/repositories"
	"math"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IPaymentService interface {
	FindByEmail(ctx context.Context, email string) (*[]models.Payment, error)
	Record(ctx context.Context, input dto.CreatePaymentInput, email string) (*models.Payment, int64, error)
	CreatePaymentIntent(price float64) (string, error)
}

type PaymentService struct {
	repository repositories.IPaymentRepository
}

func NewPaymentService(repository repositories.IPaymentRepository) IPaymentService {
	return &PaymentService{repository: repository}
}

func (s *PaymentService) FindByEmail(ctx context.Context, email string) (*[]models.Payment, error) {
	return s.repository.FindByEmail(ctx, email)
}

// Record stores the payment for the authenticated email and removes the
// cart items it settles.
func (s *PaymentService) Record(ctx context.Context, input dto.CreatePaymentInput, email string) (*models.Payment, int64, error) {
	cartIDs := make([]primitive.ObjectID, 0, len(input.CartIDs))
	for _, raw := range input.CartIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, 0, errors.New(constants.ErrInvalidID)
		}
		cartIDs = append(cartIDs, id)
	}

	payment := models.Payment{
		TransitionID: input.TransitionID,
		Email:        email,
		Price:        input.Price,
		Quantity:     input.Quantity,
		Status:       input.Status,
		CartItems:    cartIDs,
		MenuItems:    input.MenuItems,
		ItemsName:    input.ItemsName,
		CreatedAt:    time.Now(),
	}
	return s.repository.Record(ctx, payment)
}

// CreatePaymentIntent asks Stripe for a card payment intent over the
// given decimal price and returns its client secret.
func (s *PaymentService) CreatePaymentIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a decimal price to the processor's integer minor
// unit, rounding to the nearest cent.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
