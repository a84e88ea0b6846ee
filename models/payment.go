package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one settled checkout, stored in the "payments"
// collection. CartItems lists the ids of the cart documents the payment
// settled; those documents are deleted when the payment is recorded.
type Payment struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	TransitionID string               `bson:"transitionId,omitempty" json:"transitionId,omitempty"`
	Email        string               `bson:"email" json:"email"`
	Price        float64              `bson:"price" json:"price"`
	Quantity     int                  `bson:"quantity" json:"quantity"`
	Status       string               `bson:"status,omitempty" json:"status,omitempty"`
	CartItems    []primitive.ObjectID `bson:"cartItems" json:"cartItems"`
	MenuItems    []string             `bson:"menuItems,omitempty" json:"menuItems,omitempty"`
	ItemsName    []string             `bson:"itemsName,omitempty" json:"itemsName,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
}
