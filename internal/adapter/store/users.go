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

// ListUsers returns every user record.
func (s *MongoStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := findAll[domain.User](ctx, s.db.Collection(usersCollection), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListUsersByRole returns users holding role.
func (s *MongoStore) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := findAll[domain.User](ctx, s.db.Collection(usersCollection), bson.D{{Key: "role", Value: role}})
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return users, nil
}

// FindUserByEmail retrieves a user by email.
func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, port.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// InsertUser inserts a new user record.
func (s *MongoStore) InsertUser(ctx context.Context, u *domain.User) (*domain.InsertResult, error) {
	res, err := s.db.Collection(usersCollection).InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return insertResult(res), nil
}

// SetUserRole sets the role field of the user with the given id.
func (s *MongoStore) SetUserRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	res, err := s.updateByID(ctx, usersCollection, id, bson.D{{Key: "role", Value: role}})
	if err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}
	return res, nil
}

// DeleteUser removes the user with the given id.
func (s *MongoStore) DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.deleteByID(ctx, usersCollection, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return res, nil
}
