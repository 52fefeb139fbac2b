package store

import (
	"context"
	"fmt"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListClassesByStatus returns classes in status, fewest available seats first.
func (s *MongoStore) ListClassesByStatus(ctx context.Context, status string) ([]domain.Class, error) {
	opts := options.Find().SetSort(bson.D{{Key: "available_seats", Value: 1}})
	classes, err := findAll[domain.Class](ctx, s.db.Collection(classesCollection), bson.D{{Key: "status", Value: status}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// ListClassesByInstructor returns the classes created by the instructor with email.
func (s *MongoStore) ListClassesByInstructor(ctx context.Context, email string) ([]domain.Class, error) {
	classes, err := findAll[domain.Class](ctx, s.db.Collection(classesCollection), bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("list instructor classes: %w", err)
	}
	return classes, nil
}

// InsertClass inserts a new class. Classes without a status start pending.
func (s *MongoStore) InsertClass(ctx context.Context, c *domain.Class) (*domain.InsertResult, error) {
	if c.Status == "" {
		c.Status = domain.ClassStatusPending
	}
	res, err := s.db.Collection(classesCollection).InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return insertResult(res), nil
}

// SetClassStatus moves the class with id to status.
func (s *MongoStore) SetClassStatus(ctx context.Context, id, status string) (*domain.UpdateResult, error) {
	return s.updateClass(ctx, id, bson.D{{Key: "status", Value: status}})
}

// SetClassSeats sets available_seats on the class with id.
func (s *MongoStore) SetClassSeats(ctx context.Context, id string, seats int) (*domain.UpdateResult, error) {
	return s.updateClass(ctx, id, bson.D{{Key: "available_seats", Value: seats}})
}

func (s *MongoStore) updateClass(ctx context.Context, id string, set bson.D) (*domain.UpdateResult, error) {
	if id == "" {
		return nil, fmt.Errorf("update class: %w", port.ErrInvalidID)
	}
	res, err := s.db.Collection(classesCollection).UpdateOne(ctx, classIDFilter(id),
		bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return updateResult(res), nil
}

// classIDFilter matches id as an ObjectID or as a plain string _id, since
// some classes were stored with client-chosen ids.
func classIDFilter(id string) bson.D {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.D{{Key: "_id", Value: id}}
	}
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "_id", Value: id}},
	}}}
}
