package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EngagementMongoRepository 行为事件仓储：追加写入加聚合读取。
type EngagementMongoRepository struct {
	db              mongo.Database
	collection      string
	mediaCollection string
}

func NewEngagementRepository(db mongo.Database, collection, mediaCollection string) domain.EngagementRepository {
	return &EngagementMongoRepository{
		db:              db,
		collection:      collection,
		mediaCollection: mediaCollection,
	}
}

func (r *EngagementMongoRepository) Create(ctx context.Context, event *domain.EngagementEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	coll := r.db.Collection(r.collection)
	if _, err := coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create engagement event: %w", err)
	}
	return nil
}

func (r *EngagementMongoRepository) findEvents(ctx context.Context, query bson.M) ([]domain.EngagementEvent, error) {
	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query engagement events: %w", err)
	}
	var events []domain.EngagementEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode engagement events: %w", err)
	}
	return events, nil
}

func (r *EngagementMongoRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.EngagementEvent, error) {
	return r.findEvents(ctx, bson.M{"user_id": userID})
}

func (r *EngagementMongoRepository) GetByMedia(ctx context.Context, mediaID primitive.ObjectID) ([]domain.EngagementEvent, error) {
	return r.findEvents(ctx, bson.M{"media_id": mediaID})
}

func (r *EngagementMongoRepository) GetByMediaIDs(ctx context.Context, mediaIDs []primitive.ObjectID) (map[primitive.ObjectID][]domain.EngagementEvent, error) {
	grouped := make(map[primitive.ObjectID][]domain.EngagementEvent, len(mediaIDs))
	if len(mediaIDs) == 0 {
		return grouped, nil
	}
	events, err := r.findEvents(ctx, bson.M{"media_id": bson.M{"$in": mediaIDs}})
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		grouped[ev.MediaID] = append(grouped[ev.MediaID], ev)
	}
	return grouped, nil
}

func (r *EngagementMongoRepository) GetAll(ctx context.Context) ([]domain.EngagementEvent, error) {
	return r.findEvents(ctx, bson.M{})
}

func (r *EngagementMongoRepository) CountSuccessful(ctx context.Context, since time.Time, threshold float64) (int64, error) {
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, bson.M{
		"timestamp": bson.M{"$gte": since},
		"score":     bson.M{"$gte": threshold},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count successful engagements: %w", err)
	}
	return count, nil
}

func (r *EngagementMongoRepository) AggregateScores(ctx context.Context, since time.Time) (*domain.ScoreStats, error) {
	coll := r.db.Collection(r.collection)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"avg":   bson.M{"$avg": "$score"},
			"min":   bson.M{"$min": "$score"},
			"max":   bson.M{"$max": "$score"},
		}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scores: %w", err)
	}
	defer cursor.Close(ctx)

	var stats domain.ScoreStats
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return nil, fmt.Errorf("failed to decode score stats: %w", err)
		}
	}
	// 窗口为空时返回零值统计
	return &stats, nil
}

func (r *EngagementMongoRepository) GroupByAction(ctx context.Context, since time.Time) ([]domain.ActionStats, error) {
	coll := r.db.Collection(r.collection)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$action",
			"count":     bson.M{"$sum": 1},
			"avg_score": bson.M{"$avg": "$score"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group by action: %w", err)
	}
	var stats []domain.ActionStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode action stats: %w", err)
	}
	return stats, nil
}

// TopMediaTypes 事件关联媒体集合取类型，计数降序。
func (r *EngagementMongoRepository) TopMediaTypes(ctx context.Context, since time.Time, limit int64) ([]domain.TypeEngagement, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	coll := r.db.Collection(r.collection)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         r.mediaCollection,
			"localField":   "media_id",
			"foreignField": "_id",
			"as":           "media",
		}}},
		{{Key: "$unwind", Value: "$media"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$media.type",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate media types: %w", err)
	}
	var types []domain.TypeEngagement
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode media types: %w", err)
	}
	return types, nil
}
