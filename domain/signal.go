package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HighRating 达到阈值的评分记录，强偏好信号。
type HighRating struct {
	MediaID   primitive.ObjectID `bson:"media_id"`
	Rating    float64            `bson:"rating"`
	CreatedAt time.Time          `bson:"created_at"`
}

// FavoriteEntry / SavedEntry 收藏与保存关系，携带建立时间用于衰减。
type FavoriteEntry struct {
	MediaID   primitive.ObjectID `bson:"media_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type SavedEntry struct {
	MediaID   primitive.ObjectID `bson:"media_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

// OnboardingSelection 注册引导时勾选的媒体，冷启动的粗粒度偏好来源。
type OnboardingSelection struct {
	MediaID   primitive.ObjectID `bson:"media_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type SignalRepository interface {
	GetHighRatings(ctx context.Context, userID primitive.ObjectID, threshold float64) ([]HighRating, error)
	GetFavorites(ctx context.Context, userID primitive.ObjectID) ([]FavoriteEntry, error)
	GetSaved(ctx context.Context, userID primitive.ObjectID) ([]SavedEntry, error)
	GetOnboardingSelections(ctx context.Context, userID primitive.ObjectID) ([]OnboardingSelection, error)
}
