package domain

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMediaNotFound      = errors.New("media not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists with the given email")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RecommendationUsecase interface {
	GetUserRecommendations(ctx context.Context, userID primitive.ObjectID, limit int, filter MediaFilter) ([]MediaItem, error)
	GetTrendingMedia(ctx context.Context, limit int, refresh bool) ([]MediaItem, error)

	// GetSimilarMedia 对不存在的 mediaID 返回空列表而不是错误。
	GetSimilarMedia(ctx context.Context, mediaID primitive.ObjectID, limit int, refresh bool) ([]MediaItem, error)

	GetCustomRecommendations(ctx context.Context, userID primitive.ObjectID, filter MediaFilter, referenceMediaIDs []primitive.ObjectID, limit int) ([]MediaItem, error)
	GetColdStartRecommendations(ctx context.Context, userID primitive.ObjectID, limit int) ([]MediaItem, error)
	GetHybridRecommendations(ctx context.Context, userID primitive.ObjectID, limit int) ([]MediaItem, error)
}

type EngagementUsecase interface {
	TrackEngagement(ctx context.Context, userID, mediaID primitive.ObjectID, action EngagementAction, metadata map[string]string) error
	ExcludeMedia(ctx context.Context, userID, mediaID primitive.ObjectID, months int) (*ExclusionEntry, error)
}

type MetricsUsecase interface {
	GetMetrics(ctx context.Context, windowDays int) (*MetricsReport, error)
}

type MediaUsecase interface {
	List(ctx context.Context, filter MediaFilter, opts ListOptions) ([]MediaItem, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*MediaItem, error)
}
