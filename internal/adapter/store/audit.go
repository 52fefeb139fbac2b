package store

import (
	"context"
	"fmt"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WriteAudit implements middleware.AuditWriter.
func (s *MongoStore) WriteAudit(ctx context.Context, entry *domain.AuditLog) error {
	if _, err := s.db.Collection(auditCollection).InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("write audit: %w", err)
	}
	return nil
}

// ListAuditLogs returns recent audit logs, optionally filtered by action.
func (s *MongoStore) ListAuditLogs(ctx context.Context, limit int, action string) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	filter := bson.D{}
	if action != "" {
		filter = bson.D{{Key: "action", Value: action}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	logs, err := findAll[domain.AuditLog](ctx, s.db.Collection(auditCollection), filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
