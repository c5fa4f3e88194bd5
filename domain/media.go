package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
	MediaTypeGame   MediaType = "game"
	MediaTypeBook   MediaType = "book"
	MediaTypeMusic  MediaType = "music"
)

// MediaItem 目录媒体条目。rating 由评论聚合服务维护，引擎只读。
type MediaItem struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Type         MediaType          `bson:"type" json:"type"`
	Genres       []string           `bson:"genres" json:"genres"`
	Year         int                `bson:"year" json:"year"`
	Rating       float64            `bson:"rating" json:"rating"`
	Contributors []string           `bson:"contributors" json:"contributors"`
}

// MediaFilter 候选池过滤条件，零值字段不参与过滤。
type MediaFilter struct {
	Type      MediaType
	Genre     string
	StartYear int
	EndYear   int
	MinRating float64
}

// ListOptions 浏览查询的分页与排序。
type ListOptions struct {
	Skip  int64
	Limit int64
	Sort  string // "title" | "year" | "rating"
}

type MediaRepository interface {
	// GetByID returns (nil, nil) when no document matches.
	GetByID(ctx context.Context, id primitive.ObjectID) (*MediaItem, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]MediaItem, error)

	// GetCandidates applies filter and excludes excludedIDs inside the query,
	// so excluded媒体从不进入打分。
	GetCandidates(ctx context.Context, filter MediaFilter, excludedIDs []primitive.ObjectID, limit int64) ([]MediaItem, error)

	// GetAllExcept 返回除 excludedIDs 外的全量条目（相似检索用）。
	GetAllExcept(ctx context.Context, excludedIDs []primitive.ObjectID) ([]MediaItem, error)

	// GetPopular 按 rating 降序取 limit 条，冷启动候选池。
	GetPopular(ctx context.Context, limit int64) ([]MediaItem, error)

	List(ctx context.Context, filter MediaFilter, opts ListOptions) ([]MediaItem, int64, error)
}
