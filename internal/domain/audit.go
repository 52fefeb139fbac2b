package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog records every request handled by the API.
type AuditLog struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	RequestID  string             `json:"request_id"    bson:"request_id"`
	Actor      string             `json:"actor"         bson:"actor"`
	Action     string             `json:"action"        bson:"action"`
	Method     string             `json:"method"        bson:"method"`
	Path       string             `json:"path"          bson:"path"`
	Status     int                `json:"status"        bson:"status"`
	DurationMS int64              `json:"duration_ms"   bson:"duration_ms"`
	IP         string             `json:"ip"            bson:"ip"`
	UserAgent  string             `json:"user_agent"    bson:"user_agent"`
	CreatedAt  time.Time          `json:"created_at"    bson:"created_at"`
}

// Audit action constants.
const (
	AuditActionRequest     = "http_request"
	AuditActionTokenIssued = "token_issued"
	AuditActionRoleChange  = "role_change"
	AuditActionPayment     = "payment"
)

// AnonymousActor is recorded when a request carries no verified principal.
const AnonymousActor = "anonymous"
