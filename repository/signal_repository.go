package repository

import (
	"context"
	"fmt"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SignalMongoRepository 显式偏好信号的读取面，分散在评论/收藏/保存/引导
// 四个集合里，写入归目录服务。
type SignalMongoRepository struct {
	db                   mongo.Database
	reviewCollection     string
	favoriteCollection   string
	savedCollection      string
	onboardingCollection string
}

func NewSignalRepository(db mongo.Database, reviewCollection, favoriteCollection, savedCollection, onboardingCollection string) domain.SignalRepository {
	return &SignalMongoRepository{
		db:                   db,
		reviewCollection:     reviewCollection,
		favoriteCollection:   favoriteCollection,
		savedCollection:      savedCollection,
		onboardingCollection: onboardingCollection,
	}
}

func (r *SignalMongoRepository) GetHighRatings(ctx context.Context, userID primitive.ObjectID, threshold float64) ([]domain.HighRating, error) {
	coll := r.db.Collection(r.reviewCollection)

	cursor, err := coll.Find(ctx, bson.M{
		"user_id": userID,
		"rating":  bson.M{"$gte": threshold},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get high ratings: %w", err)
	}
	var ratings []domain.HighRating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("failed to decode high ratings: %w", err)
	}
	return ratings, nil
}

func (r *SignalMongoRepository) GetFavorites(ctx context.Context, userID primitive.ObjectID) ([]domain.FavoriteEntry, error) {
	coll := r.db.Collection(r.favoriteCollection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	var favorites []domain.FavoriteEntry
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}

func (r *SignalMongoRepository) GetSaved(ctx context.Context, userID primitive.ObjectID) ([]domain.SavedEntry, error) {
	coll := r.db.Collection(r.savedCollection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get saved entries: %w", err)
	}
	var saved []domain.SavedEntry
	if err := cursor.All(ctx, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved entries: %w", err)
	}
	return saved, nil
}

func (r *SignalMongoRepository) GetOnboardingSelections(ctx context.Context, userID primitive.ObjectID) ([]domain.OnboardingSelection, error) {
	coll := r.db.Collection(r.onboardingCollection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding selections: %w", err)
	}
	var selections []domain.OnboardingSelection
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, fmt.Errorf("failed to decode onboarding selections: %w", err)
	}
	return selections, nil
}
