package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order is an immutable snapshot of a completed purchase, written once after
// the gateway signature has been verified. OrderInformation copies product
// ids and quantities by value so later catalog changes cannot alter it.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID          string             `bson:"orderId" json:"orderId"`
	PaymentID        string             `bson:"paymentId" json:"paymentId"`
	UserEmail        string             `bson:"userEmail" json:"userEmail"`
	TotalAmount      float64            `bson:"totalAmount" json:"totalAmount"`
	TotalItems       int                `bson:"totalItems" json:"totalItems"`
	OrderInformation []CartItem         `bson:"orderInformation" json:"orderInformation"`
}
