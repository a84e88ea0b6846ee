package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an application account, stored in the "users" collection.
// Email is unique; Role is "user" or "admin".
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}
