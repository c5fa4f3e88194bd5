package usecase

import (
	"context"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/engine"
	"golang.org/x/sync/errgroup"
)

const defaultMetricsWindowDays = 30

type metricsUsecase struct {
	engine         *engine.Engine
	engagementRepo domain.EngagementRepository
	timeout        time.Duration
	now            func() time.Time
}

func NewMetricsUsecase(eng *engine.Engine, engagementRepo domain.EngagementRepository, timeout time.Duration) domain.MetricsUsecase {
	return &metricsUsecase{
		engine:         eng,
		engagementRepo: engagementRepo,
		timeout:        timeout,
		now:            time.Now,
	}
}

// GetMetrics 四路聚合并发下推到数据库，报表只读不回流。
func (uc *metricsUsecase) GetMetrics(ctx context.Context, windowDays int) (*domain.MetricsReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if windowDays <= 0 {
		windowDays = defaultMetricsWindowDays
	}
	since := uc.now().AddDate(0, 0, -windowDays)
	threshold := uc.engine.Config().SuccessThreshold

	report := &domain.MetricsReport{WindowDays: windowDays}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := uc.engagementRepo.CountSuccessful(gctx, since, threshold)
		if err != nil {
			return err
		}
		report.SuccessfulEngagements = count
		return nil
	})
	g.Go(func() error {
		stats, err := uc.engagementRepo.AggregateScores(gctx, since)
		if err != nil {
			return err
		}
		report.Scores = *stats
		return nil
	})
	g.Go(func() error {
		breakdown, err := uc.engagementRepo.GroupByAction(gctx, since)
		if err != nil {
			return err
		}
		report.ActionBreakdown = breakdown
		return nil
	})
	g.Go(func() error {
		topTypes, err := uc.engagementRepo.TopMediaTypes(gctx, since, 5)
		if err != nil {
			return err
		}
		report.TopTypes = topTypes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
