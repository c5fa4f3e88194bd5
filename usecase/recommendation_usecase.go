package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/engine"
	gocache "github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// recommendationUsecase 推荐编排层：并发取信号、建偏好表、调引擎排序。
// 引擎本身无 I/O，时钟从这里注入，测试可替换。
type recommendationUsecase struct {
	engine         *engine.Engine
	mediaRepo      domain.MediaRepository
	signalRepo     domain.SignalRepository
	engagementRepo domain.EngagementRepository
	exclusionRepo  domain.ExclusionRepository
	cache          *gocache.Cache
	timeout        time.Duration
	now            func() time.Time
}

func NewRecommendationUsecase(
	eng *engine.Engine,
	mediaRepo domain.MediaRepository,
	signalRepo domain.SignalRepository,
	engagementRepo domain.EngagementRepository,
	exclusionRepo domain.ExclusionRepository,
	cacheTTL time.Duration,
	timeout time.Duration,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		engine:         eng,
		mediaRepo:      mediaRepo,
		signalRepo:     signalRepo,
		engagementRepo: engagementRepo,
		exclusionRepo:  exclusionRepo,
		cache:          gocache.New(cacheTTL, 2*cacheTTL),
		timeout:        timeout,
		now:            time.Now,
	}
}

// loadSignals 四路信号并发拉取，任一失败整体失败。
func (uc *recommendationUsecase) loadSignals(ctx context.Context, userID primitive.ObjectID) (engine.Signals, error) {
	var signals engine.Signals
	threshold := uc.engine.Config().HighRatingThreshold

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ratings, err := uc.signalRepo.GetHighRatings(gctx, userID, threshold)
		if err != nil {
			return err
		}
		signals.HighRatings = ratings
		return nil
	})
	g.Go(func() error {
		favorites, err := uc.signalRepo.GetFavorites(gctx, userID)
		if err != nil {
			return err
		}
		signals.Favorites = favorites
		return nil
	})
	g.Go(func() error {
		saved, err := uc.signalRepo.GetSaved(gctx, userID)
		if err != nil {
			return err
		}
		signals.Saved = saved
		return nil
	})
	g.Go(func() error {
		events, err := uc.engagementRepo.GetByUser(gctx, userID)
		if err != nil {
			return err
		}
		signals.Events = events
		return nil
	})
	if err := g.Wait(); err != nil {
		return engine.Signals{}, fmt.Errorf("failed to load preference signals: %w", err)
	}
	return signals, nil
}

func (uc *recommendationUsecase) GetUserRecommendations(ctx context.Context, userID primitive.ObjectID, limit int, filter domain.MediaFilter) ([]domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		return []domain.MediaItem{}, nil
	}
	now := uc.now()

	var signals engine.Signals
	var excludedIDs []primitive.ObjectID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.loadSignals(gctx, userID)
		if err != nil {
			return err
		}
		signals = s
		return nil
	})
	g.Go(func() error {
		ids, err := uc.exclusionRepo.ActiveMediaIDs(gctx, userID, now)
		if err != nil {
			return err
		}
		excludedIDs = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prefs := uc.engine.BuildPreferences(signals, now)
	if uc.engine.NeedsColdStart(prefs) {
		return uc.coldStart(ctx, userID, excludedIDs, limit, now)
	}

	preferredIDs := make([]primitive.ObjectID, 0, len(prefs))
	for id := range prefs {
		preferredIDs = append(preferredIDs, id)
	}
	preferred, err := uc.mediaRepo.GetByIDs(ctx, preferredIDs)
	if err != nil {
		return nil, err
	}

	// 已交互媒体不再出现在推荐里
	excluded := append(excludedIDs, preferredIDs...)
	poolLimit := int64(limit * uc.engine.Config().ColdStartPoolFactor)
	candidates, err := uc.mediaRepo.GetCandidates(ctx, filter, excluded, poolLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []domain.MediaItem{}, nil
	}

	engagement, err := uc.candidateEngagement(ctx, candidates, now)
	if err != nil {
		return nil, err
	}
	return uc.engine.RankCandidates(candidates, preferred, prefs, engagement, limit, true), nil
}

// candidateEngagement 候选池的全局参与度得分表。
func (uc *recommendationUsecase) candidateEngagement(ctx context.Context, candidates []domain.MediaItem, now time.Time) (map[primitive.ObjectID]float64, error) {
	ids := make([]primitive.ObjectID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	grouped, err := uc.engagementRepo.GetByMediaIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	scores := make(map[primitive.ObjectID]float64, len(grouped))
	for id, events := range grouped {
		scores[id] = uc.engine.EngagementScore(events, now)
	}
	return scores, nil
}

func (uc *recommendationUsecase) GetHybridRecommendations(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		return []domain.MediaItem{}, nil
	}
	signals, err := uc.loadSignals(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs := uc.engine.BuildPreferences(signals, uc.now())
	if uc.engine.NeedsColdStart(prefs) {
		return uc.GetColdStartRecommendations(ctx, userID, limit)
	}
	return uc.GetUserRecommendations(ctx, userID, limit, domain.MediaFilter{})
}

func (uc *recommendationUsecase) GetColdStartRecommendations(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		return []domain.MediaItem{}, nil
	}
	now := uc.now()
	excludedIDs, err := uc.exclusionRepo.ActiveMediaIDs(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return uc.coldStart(ctx, userID, excludedIDs, limit, now)
}

func (uc *recommendationUsecase) coldStart(ctx context.Context, userID primitive.ObjectID, excludedIDs []primitive.ObjectID, limit int, now time.Time) ([]domain.MediaItem, error) {
	poolLimit := int64(limit * uc.engine.Config().ColdStartPoolFactor)

	var pool []domain.MediaItem
	var selections []domain.OnboardingSelection

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := uc.mediaRepo.GetCandidates(gctx, domain.MediaFilter{}, excludedIDs, poolLimit)
		if err != nil {
			return err
		}
		pool = items
		return nil
	})
	g.Go(func() error {
		sel, err := uc.signalRepo.GetOnboardingSelections(gctx, userID)
		if err != nil {
			return err
		}
		selections = sel
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return []domain.MediaItem{}, nil
	}

	grouped, err := uc.engagementRepo.GetByMediaIDs(ctx, mediaIDs(pool))
	if err != nil {
		return nil, err
	}
	performance := make(map[primitive.ObjectID]float64, len(grouped))
	for id, events := range grouped {
		performance[id] = uc.engine.PerformanceScore(uc.engine.ComputeMediaMetrics(events, now))
	}

	initial := engine.InitialPreferences{}
	if len(selections) > 0 {
		ids := make([]primitive.ObjectID, 0, len(selections))
		for _, s := range selections {
			ids = append(ids, s.MediaID)
		}
		selected, err := uc.mediaRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		initial = uc.engine.InitialPreferences(selected)
	}
	return uc.engine.ColdStartRank(pool, performance, initial, limit), nil
}

func (uc *recommendationUsecase) GetTrendingMedia(ctx context.Context, limit int, refresh bool) ([]domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		return []domain.MediaItem{}, nil
	}
	cacheKey := fmt.Sprintf("trending:%d", limit)
	if !refresh {
		if cached, ok := uc.cache.Get(cacheKey); ok {
			return cached.([]domain.MediaItem), nil
		}
	}

	now := uc.now()
	events, err := uc.engagementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[primitive.ObjectID][]domain.EngagementEvent)
	for _, ev := range events {
		grouped[ev.MediaID] = append(grouped[ev.MediaID], ev)
	}

	ids := make([]primitive.ObjectID, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	items, err := uc.mediaRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	scored := make([]engine.ScoredCandidate, 0, len(items))
	for _, m := range items {
		metrics := uc.engine.ComputeMediaMetrics(grouped[m.ID], now)
		scored = append(scored, engine.ScoredCandidate{
			Media: m,
			Score: uc.engine.PopularityScore(metrics, m.Rating),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	trending := make([]domain.MediaItem, 0, limit)
	for i := 0; i < len(scored) && i < limit; i++ {
		trending = append(trending, scored[i].Media)
	}

	// 行为数据不足时用目录高分条目补齐
	if len(trending) < limit {
		popular, err := uc.mediaRepo.GetPopular(ctx, int64(limit))
		if err != nil {
			return nil, err
		}
		seen := make(map[primitive.ObjectID]struct{}, len(trending))
		for _, m := range trending {
			seen[m.ID] = struct{}{}
		}
		for _, m := range popular {
			if len(trending) >= limit {
				break
			}
			if _, ok := seen[m.ID]; ok {
				continue
			}
			trending = append(trending, m)
		}
	}

	uc.cache.Set(cacheKey, trending, gocache.DefaultExpiration)
	return trending, nil
}

func (uc *recommendationUsecase) GetSimilarMedia(ctx context.Context, mediaID primitive.ObjectID, limit int, refresh bool) ([]domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		return []domain.MediaItem{}, nil
	}
	cacheKey := fmt.Sprintf("similar:%s:%d", mediaID.Hex(), limit)
	if !refresh {
		if cached, ok := uc.cache.Get(cacheKey); ok {
			return cached.([]domain.MediaItem), nil
		}
	}

	target, err := uc.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return []domain.MediaItem{}, nil
	}

	pool, err := uc.mediaRepo.GetAllExcept(ctx, []primitive.ObjectID{mediaID})
	if err != nil {
		return nil, err
	}
	similar := uc.engine.RankSimilar(target, pool, limit)
	uc.cache.Set(cacheKey, similar, gocache.DefaultExpiration)
	return similar, nil
}

func (uc *recommendationUsecase) GetCustomRecommendations(ctx context.Context, userID primitive.ObjectID, filter domain.MediaFilter, referenceMediaIDs []primitive.ObjectID, limit int) ([]domain.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		return []domain.MediaItem{}, nil
	}
	now := uc.now()

	var signals engine.Signals
	var excludedIDs []primitive.ObjectID
	var reference []domain.MediaItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.loadSignals(gctx, userID)
		if err != nil {
			return err
		}
		signals = s
		return nil
	})
	g.Go(func() error {
		ids, err := uc.exclusionRepo.ActiveMediaIDs(gctx, userID, now)
		if err != nil {
			return err
		}
		excludedIDs = ids
		return nil
	})
	g.Go(func() error {
		items, err := uc.mediaRepo.GetByIDs(gctx, referenceMediaIDs)
		if err != nil {
			return err
		}
		reference = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prefs := uc.engine.BuildPreferences(signals, now)
	preferredIDs := make([]primitive.ObjectID, 0, len(prefs))
	for id := range prefs {
		preferredIDs = append(preferredIDs, id)
	}
	preferred, err := uc.mediaRepo.GetByIDs(ctx, preferredIDs)
	if err != nil {
		return nil, err
	}

	excluded := append(excludedIDs, preferredIDs...)
	excluded = append(excluded, referenceMediaIDs...)
	poolLimit := int64(limit * uc.engine.Config().ColdStartPoolFactor)
	candidates, err := uc.mediaRepo.GetCandidates(ctx, filter, excluded, poolLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []domain.MediaItem{}, nil
	}
	return uc.engine.RankCustom(candidates, preferred, prefs, reference, filter, limit), nil
}

func mediaIDs(items []domain.MediaItem) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, m := range items {
		ids = append(ids, m.ID)
	}
	return ids
}
