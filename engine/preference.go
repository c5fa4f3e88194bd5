package engine

import (
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PreferenceMap 单次请求内的用户偏好表，mediaId -> 累计权重。
// 不落库，每次请求由信号全量重建。
type PreferenceMap map[primitive.ObjectID]float64

// Signals 构建偏好表的全部输入。
type Signals struct {
	HighRatings []domain.HighRating
	Favorites   []domain.FavoriteEntry
	Saved       []domain.SavedEntry
	Events      []domain.EngagementEvent
}

// BuildPreferences 显式信号按基础权重、行为事件打对折，全部按时效衰减，
// 同一媒体的多个信号直接求和。
func (e *Engine) BuildPreferences(s Signals, now time.Time) PreferenceMap {
	prefs := make(PreferenceMap)

	for _, r := range s.HighRatings {
		prefs[r.MediaID] += e.cfg.RatingWeight * e.Decay(r.CreatedAt, now)
	}
	for _, f := range s.Favorites {
		prefs[f.MediaID] += e.cfg.FavoriteWeight * e.Decay(f.CreatedAt, now)
	}
	for _, sv := range s.Saved {
		prefs[sv.MediaID] += e.cfg.SavedWeight * e.Decay(sv.CreatedAt, now)
	}
	for _, ev := range s.Events {
		w := e.cfg.ActionWeights[ev.Action]
		if w == 0 {
			continue
		}
		prefs[ev.MediaID] += w * e.cfg.EngagementDiscount * e.Decay(ev.Timestamp, now)
	}

	return prefs
}

// NeedsColdStart 偏好条目不足阈值时走冷启动。
func (e *Engine) NeedsColdStart(prefs PreferenceMap) bool {
	return len(prefs) < e.cfg.ColdStartThreshold
}

// InitialPreferences 引导勾选媒体归纳出的体裁/类型计数。
type InitialPreferences struct {
	Genres map[string]int
	Types  map[domain.MediaType]int
}

func (p InitialPreferences) Empty() bool {
	return len(p.Genres) == 0 && len(p.Types) == 0
}

func (e *Engine) InitialPreferences(selected []domain.MediaItem) InitialPreferences {
	prefs := InitialPreferences{
		Genres: make(map[string]int),
		Types:  make(map[domain.MediaType]int),
	}
	for _, m := range selected {
		for _, g := range m.Genres {
			prefs.Genres[g]++
		}
		prefs.Types[m.Type]++
	}
	return prefs
}
