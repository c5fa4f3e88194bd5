package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EngagementAction string

const (
	ActionPageView    EngagementAction = "page_view"
	ActionSaved       EngagementAction = "saved"
	ActionFavorited   EngagementAction = "favorited"
	ActionAddedToList EngagementAction = "added_to_list"
)

// EngagementEvent 追加写入的用户行为记录，引擎只批量读取，从不修改。
type EngagementEvent struct {
	ID        string             `bson:"_id" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	MediaID   primitive.ObjectID `bson:"media_id" json:"media_id"`
	Action    EngagementAction   `bson:"action" json:"action"`
	Score     float64            `bson:"score" json:"score"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Metadata  map[string]string  `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// ActionStats 单个 action 的窗口统计。
type ActionStats struct {
	Action   EngagementAction `bson:"_id" json:"action"`
	Count    int64            `bson:"count" json:"count"`
	AvgScore float64          `bson:"avg_score" json:"avg_score"`
}

// TypeEngagement 按媒体类型的参与次数。
type TypeEngagement struct {
	Type  MediaType `bson:"_id" json:"type"`
	Count int64     `bson:"count" json:"count"`
}

// ScoreStats 窗口内事件分数的聚合统计。
type ScoreStats struct {
	Count int64   `bson:"count" json:"count"`
	Avg   float64 `bson:"avg" json:"avg"`
	Min   float64 `bson:"min" json:"min"`
	Max   float64 `bson:"max" json:"max"`
}

// MetricsReport 运营报表，只读输出，从不回流进排序。
type MetricsReport struct {
	WindowDays            int              `json:"window_days"`
	SuccessfulEngagements int64            `json:"successful_engagements"`
	Scores                ScoreStats       `json:"scores"`
	TopTypes              []TypeEngagement `json:"top_types"`
	ActionBreakdown       []ActionStats    `json:"action_breakdown"`
}

type EngagementRepository interface {
	Create(ctx context.Context, event *EngagementEvent) error
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]EngagementEvent, error)
	GetByMedia(ctx context.Context, mediaID primitive.ObjectID) ([]EngagementEvent, error)
	GetByMediaIDs(ctx context.Context, mediaIDs []primitive.ObjectID) (map[primitive.ObjectID][]EngagementEvent, error)
	GetAll(ctx context.Context) ([]EngagementEvent, error)

	// 时间窗聚合，全部下推到数据库。
	CountSuccessful(ctx context.Context, since time.Time, threshold float64) (int64, error)
	AggregateScores(ctx context.Context, since time.Time) (*ScoreStats, error)
	GroupByAction(ctx context.Context, since time.Time) ([]ActionStats, error)
	TopMediaTypes(ctx context.Context, since time.Time, limit int64) ([]TypeEngagement, error)
}
