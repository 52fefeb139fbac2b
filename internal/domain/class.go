package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Class is a music class offered by an instructor.
type Class struct {
	ID              DocID   `json:"_id,omitempty"         bson:"_id,omitempty"`
	Name            string  `json:"name"                  bson:"name"`
	Image           string  `json:"image"                 bson:"image"`
	InstructorName  string  `json:"instructor_name"       bson:"instructor_name"`
	Email           string  `json:"email"                 bson:"email"`
	AvailableSeats  int     `json:"available_seats"       bson:"available_seats"`
	EnrolledStudent int     `json:"enrolled_student"      bson:"enrolled_student"`
	Price           float64 `json:"price"                 bson:"price"`
	Status          string  `json:"status"                bson:"status"`
	Feedback        string  `json:"feedback,omitempty"    bson:"feedback,omitempty"`
}

// Class status constants.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "deny"
)

// SeatCount is a seat number that clients send either as a JSON number or a numeric string.
type SeatCount int

// UnmarshalJSON accepts 12, 12.0 and "12".
func (s *SeatCount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	n := json.Number(raw)
	if i, err := n.Int64(); err == nil {
		*s = SeatCount(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("invalid seat count %q", raw)
	}
	*s = SeatCount(int(f))
	return nil
}
