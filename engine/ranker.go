package engine

import (
	"sort"

	"github.com/catalogo-app/recommendation-backend/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScoredCandidate 排序过程中的临时结构，响应构建完即丢弃。
type ScoredCandidate struct {
	Media domain.MediaItem
	Score float64
}

// RankCandidates 候选对偏好表逐项算相似度并按偏好权重加权求和，
// 再叠加全局参与度加成，降序稳定排序（同分保持检索顺序）。
// diversify 开启体裁去重后截断到 limit。
func (e *Engine) RankCandidates(
	candidates []domain.MediaItem,
	preferred []domain.MediaItem,
	prefs PreferenceMap,
	engagement map[primitive.ObjectID]float64,
	limit int,
	diversify bool,
) []domain.MediaItem {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		var total float64
		for i := range preferred {
			weight := prefs[preferred[i].ID]
			if weight == 0 {
				continue
			}
			total += e.Similarity(&c, &preferred[i]) * weight
		}
		total += engagement[c.ID] * e.cfg.EngagementBonus
		scored = append(scored, ScoredCandidate{Media: c, Score: total})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if diversify {
		return e.Diversify(scored, limit)
	}
	return take(scored, limit)
}

// Diversify 顺序扫描排好序的候选：前两个名额不受体裁限制，其后与已入选
// 体裁有重叠的跳过，凑满 limit 为止。体裁贫乏时列表不会因此饿死。
func (e *Engine) Diversify(scored []ScoredCandidate, limit int) []domain.MediaItem {
	result := make([]domain.MediaItem, 0, limit)
	included := make(map[string]struct{})

	for _, item := range scored {
		if len(result) >= limit {
			break
		}
		overlap := false
		for _, g := range item.Media.Genres {
			if _, ok := included[g]; ok {
				overlap = true
				break
			}
		}
		if overlap && len(result) >= 2 {
			continue
		}
		result = append(result, item.Media)
		for _, g := range item.Media.Genres {
			included[g] = struct{}{}
		}
	}
	return result
}

// RankCustom 自定义推荐：偏好相似度之外叠加参考媒体相似度与过滤条件
// 的亲和加分，不做体裁去重。
func (e *Engine) RankCustom(
	candidates []domain.MediaItem,
	preferred []domain.MediaItem,
	prefs PreferenceMap,
	reference []domain.MediaItem,
	filter domain.MediaFilter,
	limit int,
) []domain.MediaItem {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		var total float64
		for i := range preferred {
			total += e.Similarity(&c, &preferred[i]) * prefs[preferred[i].ID]
		}
		for i := range reference {
			total += e.Similarity(&c, &reference[i]) * e.cfg.ReferenceWeight
		}
		total += e.filterAffinity(&c, filter)
		scored = append(scored, ScoredCandidate{Media: c, Score: total})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return take(scored, limit)
}

func (e *Engine) filterAffinity(m *domain.MediaItem, filter domain.MediaFilter) float64 {
	var score float64
	if filter.Type != "" && m.Type == filter.Type {
		score += e.cfg.FilterTypeBonus
	}
	if filter.Genre != "" {
		for _, g := range m.Genres {
			if g == filter.Genre {
				score += e.cfg.FilterGenreBonus
				break
			}
		}
	}
	if filter.StartYear > 0 && filter.EndYear > 0 && m.Year >= filter.StartYear && m.Year <= filter.EndYear {
		score += e.cfg.FilterYearBonus
	}
	if filter.MinRating > 0 && m.Rating >= filter.MinRating {
		score += e.cfg.FilterRatingBonus
	}
	return score
}

// RankSimilar 对单个参照媒体按相似度排序。
func (e *Engine) RankSimilar(target *domain.MediaItem, pool []domain.MediaItem, limit int) []domain.MediaItem {
	scored := make([]ScoredCandidate, 0, len(pool))
	for _, c := range pool {
		scored = append(scored, ScoredCandidate{Media: c, Score: e.Similarity(target, &c)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return take(scored, limit)
}

func take(scored []ScoredCandidate, limit int) []domain.MediaItem {
	if limit > len(scored) {
		limit = len(scored)
	}
	result := make([]domain.MediaItem, 0, limit)
	for _, s := range scored[:limit] {
		result = append(result, s.Media)
	}
	return result
}
