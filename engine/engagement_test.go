package engine

import (
	"testing"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEngagementScore(t *testing.T) {
	e := New(DefaultConfig())
	mediaID := primitive.NewObjectID()

	t.Run("unknown actions contribute nothing", func(t *testing.T) {
		events := []domain.EngagementEvent{
			{MediaID: mediaID, Action: "shared", Timestamp: testNow},
			{MediaID: mediaID, Action: "clicked_ad", Timestamp: testNow},
		}
		assert.Equal(t, 0.0, e.EngagementScore(events, testNow))
	})

	t.Run("fresh events sum action weights", func(t *testing.T) {
		events := []domain.EngagementEvent{
			{MediaID: mediaID, Action: domain.ActionPageView, Timestamp: testNow},
			{MediaID: mediaID, Action: domain.ActionSaved, Timestamp: testNow},
		}
		assert.InDelta(t, 0.7, e.EngagementScore(events, testNow), 1e-9)
	})

	t.Run("old events are decayed", func(t *testing.T) {
		events := []domain.EngagementEvent{
			{MediaID: mediaID, Action: domain.ActionPageView, Timestamp: daysAgo(45)},
		}
		assert.InDelta(t, 0.4*0.5, e.EngagementScore(events, testNow), 1e-9)
	})
}

func TestComputeMediaMetrics(t *testing.T) {
	e := New(DefaultConfig())
	mediaID := primitive.NewObjectID()

	t.Run("zero page views keeps rates at zero", func(t *testing.T) {
		events := []domain.EngagementEvent{
			{MediaID: mediaID, Action: domain.ActionSaved, Timestamp: testNow},
			{MediaID: mediaID, Action: domain.ActionFavorited, Timestamp: testNow},
		}
		m := e.ComputeMediaMetrics(events, testNow)
		assert.Equal(t, 0, m.PageViews)
		assert.Equal(t, 0.0, m.ClickThroughRate)
		assert.Equal(t, 0.0, m.SaveRate)
		assert.InDelta(t, 0.5, m.EngagementScore, 1e-9)
	})

	t.Run("rates derive from counts", func(t *testing.T) {
		events := []domain.EngagementEvent{
			{MediaID: mediaID, Action: domain.ActionPageView, Timestamp: testNow},
			{MediaID: mediaID, Action: domain.ActionPageView, Timestamp: testNow},
			{MediaID: mediaID, Action: domain.ActionSaved, Timestamp: testNow},
			{MediaID: mediaID, Action: domain.ActionAddedToList, Timestamp: testNow},
		}
		m := e.ComputeMediaMetrics(events, testNow)
		assert.Equal(t, 2, m.PageViews)
		assert.Equal(t, 1, m.Saves)
		assert.Equal(t, 2, m.OtherActions)
		assert.InDelta(t, 1.0, m.ClickThroughRate, 1e-9)
		assert.InDelta(t, 0.5, m.SaveRate, 1e-9)
	})

	t.Run("empty input yields zero metrics", func(t *testing.T) {
		m := e.ComputeMediaMetrics(nil, testNow)
		assert.Equal(t, MediaMetrics{}, m)
		assert.Equal(t, 0.0, e.PerformanceScore(m))
	})
}

func TestTrackingScore(t *testing.T) {
	e := New(DefaultConfig())

	t.Run("base weight without metadata", func(t *testing.T) {
		assert.InDelta(t, 0.4, e.TrackingScore(domain.ActionPageView, nil), 1e-9)
	})

	t.Run("long page view earns duration bonus", func(t *testing.T) {
		score := e.TrackingScore(domain.ActionPageView, map[string]string{"duration": "120"})
		assert.InDelta(t, 0.5, score, 1e-9)
	})

	t.Run("short page view does not", func(t *testing.T) {
		score := e.TrackingScore(domain.ActionPageView, map[string]string{"duration": "30"})
		assert.InDelta(t, 0.4, score, 1e-9)
	})

	t.Run("list type bonus applies to added_to_list only", func(t *testing.T) {
		meta := map[string]string{"list_type": "watchlist"}
		assert.InDelta(t, 0.15, e.TrackingScore(domain.ActionAddedToList, meta), 1e-9)
		assert.InDelta(t, 0.3, e.TrackingScore(domain.ActionSaved, meta), 1e-9)
	})

	t.Run("unknown action scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, e.TrackingScore("shared", map[string]string{"duration": "300"}))
	})
}
