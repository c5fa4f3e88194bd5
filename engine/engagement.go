package engine

import (
	"strconv"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
)

// EngagementScore 单个媒体的行为得分：按 action 权重加权并衰减后求和。
func (e *Engine) EngagementScore(events []domain.EngagementEvent, now time.Time) float64 {
	var score float64
	for _, ev := range events {
		w := e.cfg.ActionWeights[ev.Action]
		if w == 0 {
			continue
		}
		score += w * e.Decay(ev.Timestamp, now)
	}
	return score
}

// MediaMetrics 从行为事件推导的比率指标。
type MediaMetrics struct {
	PageViews        int
	Saves            int
	OtherActions     int
	ClickThroughRate float64
	SaveRate         float64
	EngagementScore  float64
}

func (e *Engine) ComputeMediaMetrics(events []domain.EngagementEvent, now time.Time) MediaMetrics {
	m := MediaMetrics{}
	for _, ev := range events {
		switch ev.Action {
		case domain.ActionPageView:
			m.PageViews++
		default:
			m.OtherActions++
			if ev.Action == domain.ActionSaved {
				m.Saves++
			}
		}
	}
	// 零浏览量时比率记 0，不让除零扩散
	if m.PageViews > 0 {
		m.ClickThroughRate = float64(m.OtherActions) / float64(m.PageViews)
		m.SaveRate = float64(m.Saves) / float64(m.PageViews)
	}
	m.EngagementScore = e.EngagementScore(events, now)
	return m
}

// PerformanceScore 四项指标的加权和，趋势榜与冷启动共用。
func (e *Engine) PerformanceScore(m MediaMetrics) float64 {
	w := e.cfg.Metrics
	return m.ClickThroughRate*w.ClickThroughRate +
		m.SaveRate*w.SaveRate +
		float64(m.PageViews)*w.PageViews +
		m.EngagementScore*w.EngagementScore
}

// PopularityScore 绩效分加上目录均分的小幅加成。
func (e *Engine) PopularityScore(m MediaMetrics, rating float64) float64 {
	return e.PerformanceScore(m) + rating*e.cfg.ColdStartRatingWeight
}

// TrackingScore 写入时计算的事件分：action 基础权重加元数据加分。
// 未知 action 得 0 分。
func (e *Engine) TrackingScore(action domain.EngagementAction, metadata map[string]string) float64 {
	score := e.cfg.ActionWeights[action]
	if action == domain.ActionPageView {
		if d, err := strconv.ParseFloat(metadata["duration"], 64); err == nil && d > e.cfg.LongViewSeconds {
			score += e.cfg.ViewDurationBonus
		}
	}
	if action == domain.ActionAddedToList && metadata["list_type"] != "" {
		score += e.cfg.ListTypeBonus
	}
	return score
}
