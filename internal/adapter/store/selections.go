package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListSelections returns the selections of a student in the given payment state.
func (s *MongoStore) ListSelections(ctx context.Context, email, payment string) ([]domain.Selection, error) {
	filter := bson.D{{Key: "email", Value: email}, {Key: "payment", Value: payment}}
	sel, err := findAll[domain.Selection](ctx, s.db.Collection(selectedCollection), filter)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return sel, nil
}

// FindSelection retrieves one selection by id.
func (s *MongoStore) FindSelection(ctx context.Context, id string) (*domain.Selection, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var sel domain.Selection
	if err := s.db.Collection(selectedCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&sel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, port.ErrSelectionNotFound
		}
		return nil, fmt.Errorf("find selection: %w", err)
	}
	return &sel, nil
}

// InsertSelection stores a new selection. Selections start unpaid.
func (s *MongoStore) InsertSelection(ctx context.Context, sel *domain.Selection) (*domain.InsertResult, error) {
	if sel.Payment == "" {
		sel.Payment = domain.PaymentPending
	}
	res, err := s.db.Collection(selectedCollection).InsertOne(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}
	return insertResult(res), nil
}

// MarkSelectionPaid flags a selection as paid and records the seats left at payment time.
func (s *MongoStore) MarkSelectionPaid(ctx context.Context, id string, seats int) (*domain.UpdateResult, error) {
	res, err := s.updateByID(ctx, selectedCollection, id, bson.D{
		{Key: "payment", Value: domain.PaymentDone},
		{Key: "available_seats", Value: seats},
	})
	if err != nil {
		return nil, fmt.Errorf("mark selection paid: %w", err)
	}
	return res, nil
}

// DeleteSelection removes a selection.
func (s *MongoStore) DeleteSelection(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.deleteByID(ctx, selectedCollection, id)
	if err != nil {
		return nil, fmt.Errorf("delete selection: %w", err)
	}
	return res, nil
}
