package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"linkly-be/internal/apperrors"
	"linkly-be/internal/database"
	"linkly-be/internal/entities"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// LinkRepository defines the short-link persistence operations.
type LinkRepository interface {
	Create(ctx context.Context, link *entities.ShortLink) (*entities.ShortLink, error)
	FindByShortCode(ctx context.Context, shortCode string) (*entities.ShortLink, error)
	FindByUserID(ctx context.Context, userID string) ([]*entities.ShortLink, error)
	Replace(ctx context.Context, link *entities.ShortLink) error
	DeleteByShortCode(ctx context.Context, shortCode string) error
	SearchByRemarks(ctx context.Context, query string, offset, limit int) ([]*entities.ShortLink, error)
}

type linkRepository struct {
	coll *mongo.Collection
}

// NewLinkRepository creates a new link repository over the given database handle.
func NewLinkRepository(db *mongo.Database) LinkRepository {
	return &linkRepository{coll: db.Collection(database.LinksCollection)}
}

func (r *linkRepository) Create(ctx context.Context, link *entities.ShortLink) (*entities.ShortLink, error) {
	if link.ID.IsZero() {
		link.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, link); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("short code %q is already taken: %w", link.ShortCode, err)
		}
		return nil, fmt.Errorf("failed to create short link: %w", err)
	}

	return link, nil
}

func (r *linkRepository) FindByShortCode(ctx context.Context, shortCode string) (*entities.ShortLink, error) {
	var link entities.ShortLink
	err := r.coll.FindOne(ctx, bson.M{"shortCode": shortCode}).Decode(&link)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find short link: %w", err)
	}
	return &link, nil
}

func (r *linkRepository) FindByUserID(ctx context.Context, userID string) ([]*entities.ShortLink, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list short links: %w", err)
	}
	defer cursor.Close(ctx)

	links := []*entities.ShortLink{}
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("failed to decode short links: %w", err)
	}
	return links, nil
}

// Replace writes the full link document back (document-level last write wins).
func (r *linkRepository) Replace(ctx context.Context, link *entities.ShortLink) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": link.ID}, link)
	if err != nil {
		return fmt.Errorf("failed to update short link: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrLinkNotFound
	}
	return nil
}

func (r *linkRepository) DeleteByShortCode(ctx context.Context, shortCode string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"shortCode": shortCode})
	if err != nil {
		return fmt.Errorf("failed to delete short link: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrLinkNotFound
	}
	return nil
}

// SearchByRemarks performs a case-insensitive substring match on remarks,
// newest first, paginated with skip/limit. The query is quoted so regex
// metacharacters in user input match literally.
func (r *linkRepository) SearchByRemarks(ctx context.Context, query string, offset, limit int) ([]*entities.ShortLink, error) {
	filter := bson.M{
		"remarks": bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search short links: %w", err)
	}
	defer cursor.Close(ctx)

	links := []*entities.ShortLink{}
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("failed to decode short links: %w", err)
	}
	return links, nil
}
