package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed card payment for a selected class.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email"         bson:"email"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Price         float64            `json:"price"         bson:"price"`
	Date          time.Time          `json:"date"          bson:"date"`
	SelectedID    string             `json:"selectedId"    bson:"selectedId"`
	ClassID       string             `json:"classId"       bson:"classId"`
	ClassName     string             `json:"className"     bson:"className"`
}

// PaymentIntent is the processor-side intent handed back to the client.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
