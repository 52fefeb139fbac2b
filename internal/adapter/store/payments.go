package store

import (
	"context"
	"fmt"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListPayments returns every payment, newest first.
func (s *MongoStore) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	payments, err := findAll[domain.Payment](ctx, s.db.Collection(paymentCollection), bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// InsertPayment stores a payment record.
func (s *MongoStore) InsertPayment(ctx context.Context, p *domain.Payment) (*domain.InsertResult, error) {
	res, err := s.db.Collection(paymentCollection).InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return insertResult(res), nil
}
