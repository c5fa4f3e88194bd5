package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExclusionEntry "不感兴趣"屏蔽记录。过期靠查询条件 expires_at >= now
// 自然失效，没有清理任务。
type ExclusionEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	MediaID   primitive.ObjectID `bson:"media_id" json:"media_id"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type ExclusionRepository interface {
	Create(ctx context.Context, entry *ExclusionEntry) error

	// ActiveMediaIDs 返回 expires_at >= now 的屏蔽媒体，now 取调用时刻。
	ActiveMediaIDs(ctx context.Context, userID primitive.ObjectID, now time.Time) ([]primitive.ObjectID, error)
}
