package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	WishListItems []string           `bson:"wishListItems" json:"wishListItems"`
	CartItems     []CartItem         `bson:"cartItems" json:"cartItems"`
}

// CartItem is one line of a user's embedded cart. The same shape is reused
// verbatim inside an Order's snapshot.
type CartItem struct {
	ProductID string `bson:"productId" json:"productId"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// AuthUser is the identity carried in a JWT and injected into the request
// context by the auth middleware.
type AuthUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
