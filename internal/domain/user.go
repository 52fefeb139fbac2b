package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role labels a user record. The zero value is a regular student.
type Role string

// Role constants.
const (
	RoleStudent    Role = ""
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// Assignable reports whether the role can be set through a role-assignment endpoint.
func (r Role) Assignable() bool {
	return r == RoleAdmin || r == RoleInstructor
}

// User is a registered account, unique by email.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty"   bson:"_id,omitempty"`
	Name      string             `json:"name"            bson:"name"`
	Email     string             `json:"email"           bson:"email"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Role      Role               `json:"role,omitempty"  bson:"role,omitempty"`
	CreatedAt time.Time          `json:"created_at"      bson:"created_at"`
}

// Principal is the identity decoded from a verified access token.
// It only lives for the duration of one request.
type Principal struct {
	Email     string         `json:"email"`
	Claims    map[string]any `json:"claims,omitempty"`
	IssuedAt  time.Time      `json:"iat"`
	ExpiresAt time.Time      `json:"exp"`
}
