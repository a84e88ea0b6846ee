package services

import (
	"context"
	"errors"
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{10, 1000},
		{0.01, 1},
		{99.95, 9995},
		{249.5, 24950},
	}
	for _, tt := range tests {
		got := MinorUnits(tt.price)
		if got != tt.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

type stubPaymentRepository struct {
	recorded *models.Payment
	deleted  int64
	err      error
}

func (s *stubPaymentRepository) FindByEmail(ctx context.Context, email string) (*[]models.Payment, error) {
	return &[]models.Payment{}, nil
}

func (s *stubPaymentRepository) Record(ctx context.Context, payment models.Payment) (*models.Payment, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	s.recorded = &payment
	return &payment, s.deleted, nil
}

func TestPaymentServiceRecord(t *testing.T) {
	repo := &stubPaymentRepository{deleted: 2}
	service := NewPaymentService(repo)

	input := dto.CreatePaymentInput{
		TransitionID: "pi_123",
		Price:        29.98,
		Quantity:     2,
		Status:       "succeeded",
		CartIDs:      []string{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439012"},
	}

	payment, deleted, err := service.Record(context.Background(), input, "buyer@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, "buyer@example.com", payment.Email)
	assert.Len(t, payment.CartItems, 2)
	assert.False(t, payment.CreatedAt.IsZero())

	assert.Equal(t, "buyer@example.com", repo.recorded.Email)
	assert.Equal(t, 29.98, repo.recorded.Price)
}

func TestPaymentServiceRecordInvalidCartID(t *testing.T) {
	repo := &stubPaymentRepository{}
	service := NewPaymentService(repo)

	input := dto.CreatePaymentInput{
		Price:    9.99,
		Quantity: 1,
		CartIDs:  []string{"not-an-object-id"},
	}

	_, _, err := service.Record(context.Background(), input, "buyer@example.com")
	assert.Error(t, err)
	assert.Equal(t, constants.ErrInvalidID, err.Error())
	assert.Nil(t, repo.recorded)
}

func TestPaymentServiceRecordRepositoryError(t *testing.T) {
	repo := &stubPaymentRepository{err: errors.New("store down")}
	service := NewPaymentService(repo)

	input := dto.CreatePaymentInput{
		Price:    9.99,
		Quantity: 1,
		CartIDs:  []string{"507f1f77bcf86cd799439011"},
	}

	_, _, err := service.Record(context.Background(), input, "buyer@example.com")
	assert.Error(t, err)
}
