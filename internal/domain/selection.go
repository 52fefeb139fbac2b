package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Selection is a class a student picked, pending or done payment.
type Selection struct {
	ID             primitive.ObjectID `json:"_id,omitempty"   bson:"_id,omitempty"`
	ClassID        string             `json:"class_id"        bson:"class_id"`
	Name           string             `json:"name"            bson:"name"`
	Image          string             `json:"image"           bson:"image"`
	InstructorName string             `json:"instructor_name" bson:"instructor_name"`
	Email          string             `json:"email"           bson:"email"`
	Price          float64            `json:"price"           bson:"price"`
	AvailableSeats int                `json:"available_seats" bson:"available_seats"`
	Payment        string             `json:"payment"         bson:"payment"`
}

// Selection payment states.
const (
	PaymentPending = "pending"
	PaymentDone    = "done"
)
