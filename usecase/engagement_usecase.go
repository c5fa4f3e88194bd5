package usecase

import (
	"context"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/engine"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EngagementEmitter 事件落库后的观测回调，由监控层实现。
type EngagementEmitter interface {
	ObserveEngagement(action domain.EngagementAction, score float64)
}

type engagementUsecase struct {
	engine         *engine.Engine
	engagementRepo domain.EngagementRepository
	exclusionRepo  domain.ExclusionRepository
	emitter        EngagementEmitter
	timeout        time.Duration
	now            func() time.Time
}

// NewEngagementUsecase emitter 可以为 nil，此时只落库不上报。
func NewEngagementUsecase(
	eng *engine.Engine,
	engagementRepo domain.EngagementRepository,
	exclusionRepo domain.ExclusionRepository,
	emitter EngagementEmitter,
	timeout time.Duration,
) domain.EngagementUsecase {
	return &engagementUsecase{
		engine:         eng,
		engagementRepo: engagementRepo,
		exclusionRepo:  exclusionRepo,
		emitter:        emitter,
		timeout:        timeout,
		now:            time.Now,
	}
}

func (uc *engagementUsecase) TrackEngagement(ctx context.Context, userID, mediaID primitive.ObjectID, action domain.EngagementAction, metadata map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	// 未知 action 照常落库，得 0 分，旧服务端兼容新客户端事件
	score := uc.engine.TrackingScore(action, metadata)
	event := &domain.EngagementEvent{
		UserID:    userID,
		MediaID:   mediaID,
		Action:    action,
		Score:     score,
		Timestamp: uc.now(),
		Metadata:  metadata,
	}
	if err := uc.engagementRepo.Create(ctx, event); err != nil {
		return err
	}
	if uc.emitter != nil {
		uc.emitter.ObserveEngagement(action, score)
	}
	return nil
}

func (uc *engagementUsecase) ExcludeMedia(ctx context.Context, userID, mediaID primitive.ObjectID, months int) (*domain.ExclusionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	now := uc.now()
	// months 非正数时记录立即过期，等价于无屏蔽
	expiresAt := now
	if months > 0 {
		expiresAt = now.AddDate(0, months, 0)
	}
	entry := &domain.ExclusionEntry{
		UserID:    userID,
		MediaID:   mediaID,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := uc.exclusionRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
