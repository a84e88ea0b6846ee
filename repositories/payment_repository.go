package repositories

import (
	"context"
	"gin-foody/constants"
	"gin-foody/models"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IPaymentRepository interface {
	FindByEmail(ctx context.Context, email string) (*[]models.Payment, error)
	// Record inserts the payment and deletes the cart items it settles,
	// returning the stored payment and the number of deleted items.
	Record(ctx context.Context, payment models.Payment) (*models.Payment, int64, error)
}

type PaymentRepository struct {
	payments *mongo.Collection
	carts    *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{
		payments: db.Collection(constants.PaymentCollection),
		carts:    db.Collection(constants.CartCollection),
	}
}

// FindByEmail lists the payments made by email, newest first.
func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) (*[]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.payments.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return &payments, nil
}

// Record runs the insert and the cart cleanup inside a session
// transaction so a failure leaves neither half behind. Standalone
// deployments reject transactions; those fall back to sequential calls
// with a compensating delete of the payment if the cleanup fails.
func (r *PaymentRepository) Record(ctx context.Context, payment models.Payment) (*models.Payment, int64, error) {
	session, err := r.payments.Database().Client().StartSession()
	if err != nil {
		return r.recordSequential(ctx, payment)
	}
	defer session.EndSession(ctx)

	var deleted int64
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		insertResult, err := r.payments.InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}
		payment.ID = insertResult.InsertedID.(primitive.ObjectID)

		deleteResult, err := r.carts.DeleteMany(sc, cartFilter(payment.CartItems))
		if err != nil {
			return nil, err
		}
		deleted = deleteResult.DeletedCount
		return nil, nil
	})
	if err != nil {
		if transactionsUnsupported(err) {
			return r.recordSequential(ctx, payment)
		}
		return nil, 0, err
	}
	return &payment, deleted, nil
}

func (r *PaymentRepository) recordSequential(ctx context.Context, payment models.Payment) (*models.Payment, int64, error) {
	insertResult, err := r.payments.InsertOne(ctx, payment)
	if err != nil {
		return nil, 0, err
	}
	payment.ID = insertResult.InsertedID.(primitive.ObjectID)

	deleteResult, err := r.carts.DeleteMany(ctx, cartFilter(payment.CartItems))
	if err != nil {
		// Compensate so a failed cleanup does not leave a payment
		// recorded against cart items that still exist.
		if _, delErr := r.payments.DeleteOne(ctx, bson.M{"_id": payment.ID}); delErr != nil {
			log.Printf("Failed to compensate payment %s: %v", payment.ID.Hex(), delErr)
		}
		return nil, 0, err
	}
	return &payment, deleteResult.DeletedCount, nil
}

func cartFilter(ids []primitive.ObjectID) bson.M {
	return bson.M{"_id": bson.M{"$in": ids}}
}

func transactionsUnsupported(err error) bool {
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}
