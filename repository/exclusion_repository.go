package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExclusionMongoRepository struct {
	db         mongo.Database
	collection string
}

func NewExclusionRepository(db mongo.Database, collection string) domain.ExclusionRepository {
	return &ExclusionMongoRepository{
		db:         db,
		collection: collection,
	}
}

func (r *ExclusionMongoRepository) Create(ctx context.Context, entry *domain.ExclusionEntry) error {
	coll := r.db.Collection(r.collection)

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, err := coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create exclusion: %w", err)
	}
	return nil
}

// ActiveMediaIDs 过期记录留在集合里，只是查不出来。
func (r *ExclusionMongoRepository) ActiveMediaIDs(ctx context.Context, userID primitive.ObjectID, now time.Time) ([]primitive.ObjectID, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{
		"user_id":    userID,
		"expires_at": bson.M{"$gte": now},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get exclusions: %w", err)
	}
	var entries []domain.ExclusionEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode exclusions: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.MediaID)
	}
	return ids, nil
}
