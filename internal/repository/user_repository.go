package repository

import (
	"context"
	"errors"
	"fmt"

	"linkly-be/internal/apperrors"
	"linkly-be/internal/database"
	"linkly-be/internal/entities"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserRepository defines the user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	Replace(ctx context.Context, user *entities.User) error
	DeleteByEmail(ctx context.Context, email string) error
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository over the given database handle.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection(database.UsersCollection)}
}

// Create inserts a new user document. A duplicate email surfaces as
// apperrors.ErrEmailTaken via the unique index.
func (r *userRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	var user entities.User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Replace writes the full user document back. Last write wins; the redirect
// path relies on this being a plain document-level replace.
func (r *userRepository) Replace(ctx context.Context, user *entities.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
