package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/domain/mocks"
	"github.com/catalogo-app/recommendation-backend/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type emitterSpy struct {
	actions []domain.EngagementAction
	scores  []float64
}

func (s *emitterSpy) ObserveEngagement(action domain.EngagementAction, score float64) {
	s.actions = append(s.actions, action)
	s.scores = append(s.scores, score)
}

func newEngagementUsecase(engagementRepo *mocks.EngagementRepository, exclusionRepo *mocks.ExclusionRepository, emitter EngagementEmitter) *engagementUsecase {
	uc := NewEngagementUsecase(
		engine.New(engine.DefaultConfig()),
		engagementRepo, exclusionRepo, emitter, 2*time.Second,
	).(*engagementUsecase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestTrackEngagement(t *testing.T) {
	userID := primitive.NewObjectID()
	mediaID := primitive.NewObjectID()

	t.Run("persists scored event and notifies emitter", func(t *testing.T) {
		engagementRepo := new(mocks.EngagementRepository)
		spy := &emitterSpy{}
		uc := newEngagementUsecase(engagementRepo, new(mocks.ExclusionRepository), spy)

		var created *domain.EngagementEvent
		engagementRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.EngagementEvent)
			}).Return(nil)

		err := uc.TrackEngagement(context.Background(), userID, mediaID, domain.ActionPageView, map[string]string{"duration": "120"})
		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.InDelta(t, 0.5, created.Score, 1e-9)
		assert.Equal(t, fixedNow, created.Timestamp)
		assert.Equal(t, []domain.EngagementAction{domain.ActionPageView}, spy.actions)
	})

	t.Run("unknown action is stored with zero score", func(t *testing.T) {
		engagementRepo := new(mocks.EngagementRepository)
		uc := newEngagementUsecase(engagementRepo, new(mocks.ExclusionRepository), nil)

		var created *domain.EngagementEvent
		engagementRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.EngagementEvent)
			}).Return(nil)

		err := uc.TrackEngagement(context.Background(), userID, mediaID, "shared", nil)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, created.Score)
	})
}

func TestExcludeMedia(t *testing.T) {
	userID := primitive.NewObjectID()
	mediaID := primitive.NewObjectID()

	t.Run("positive months set a future expiry", func(t *testing.T) {
		exclusionRepo := new(mocks.ExclusionRepository)
		uc := newEngagementUsecase(new(mocks.EngagementRepository), exclusionRepo, nil)
		exclusionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		entry, err := uc.ExcludeMedia(context.Background(), userID, mediaID, 6)
		assert.NoError(t, err)
		assert.Equal(t, fixedNow.AddDate(0, 6, 0), entry.ExpiresAt)
		assert.Equal(t, fixedNow, entry.CreatedAt)
	})

	t.Run("zero months expire immediately", func(t *testing.T) {
		exclusionRepo := new(mocks.ExclusionRepository)
		uc := newEngagementUsecase(new(mocks.EngagementRepository), exclusionRepo, nil)
		exclusionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		entry, err := uc.ExcludeMedia(context.Background(), userID, mediaID, 0)
		assert.NoError(t, err)
		assert.Equal(t, fixedNow, entry.ExpiresAt)
	})
}

func TestGetMetrics(t *testing.T) {
	t.Run("aggregates the window report", func(t *testing.T) {
		engagementRepo := new(mocks.EngagementRepository)
		uc := NewMetricsUsecase(engine.New(engine.DefaultConfig()), engagementRepo, 2*time.Second).(*metricsUsecase)
		uc.now = func() time.Time { return fixedNow }

		since := fixedNow.AddDate(0, 0, -7)
		engagementRepo.On("CountSuccessful", mock.Anything, since, 0.3).Return(int64(12), nil)
		engagementRepo.On("AggregateScores", mock.Anything, since).
			Return(&domain.ScoreStats{Count: 40, Avg: 0.35, Min: 0, Max: 0.5}, nil)
		engagementRepo.On("GroupByAction", mock.Anything, since).
			Return([]domain.ActionStats{{Action: domain.ActionPageView, Count: 30, AvgScore: 0.4}}, nil)
		engagementRepo.On("TopMediaTypes", mock.Anything, since, int64(5)).
			Return([]domain.TypeEngagement{{Type: domain.MediaTypeMovie, Count: 25}}, nil)

		report, err := uc.GetMetrics(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, report.WindowDays)
		assert.Equal(t, int64(12), report.SuccessfulEngagements)
		assert.Equal(t, int64(40), report.Scores.Count)
		assert.Len(t, report.TopTypes, 1)
	})

	t.Run("non positive window falls back to thirty days", func(t *testing.T) {
		engagementRepo := new(mocks.EngagementRepository)
		uc := NewMetricsUsecase(engine.New(engine.DefaultConfig()), engagementRepo, 2*time.Second).(*metricsUsecase)
		uc.now = func() time.Time { return fixedNow }

		since := fixedNow.AddDate(0, 0, -30)
		engagementRepo.On("CountSuccessful", mock.Anything, since, 0.3).Return(int64(0), nil)
		engagementRepo.On("AggregateScores", mock.Anything, since).Return(&domain.ScoreStats{}, nil)
		engagementRepo.On("GroupByAction", mock.Anything, since).Return(nil, nil)
		engagementRepo.On("TopMediaTypes", mock.Anything, since, int64(5)).Return(nil, nil)

		report, err := uc.GetMetrics(context.Background(), 0)
		assert.NoError(t, err)
		assert.Equal(t, 30, report.WindowDays)
	})
}
