package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item placed in a customer's cart, stored in the
// "cartItems" collection. Email identifies the owning customer.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name" json:"name"`
	Recipe     string             `bson:"recipe" json:"recipe"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Email      string             `bson:"email" json:"email"`
}
