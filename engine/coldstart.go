package engine

import (
	"sort"

	"github.com/catalogo-app/recommendation-backend/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ColdStartRank 历史不足时的排序：全局热门池按 PopularityScore 排序取
// 前 3×limit，若有引导偏好再按体裁/类型命中数加分重排，否则直接截断。
func (e *Engine) ColdStartRank(
	pool []domain.MediaItem,
	performance map[primitive.ObjectID]float64,
	initial InitialPreferences,
	limit int,
) []domain.MediaItem {
	scored := make([]ScoredCandidate, 0, len(pool))
	for _, m := range pool {
		score := performance[m.ID] + m.Rating*e.cfg.ColdStartRatingWeight
		scored = append(scored, ScoredCandidate{Media: m, Score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	poolSize := limit * e.cfg.ColdStartPoolFactor
	if poolSize > len(scored) {
		poolSize = len(scored)
	}
	scored = scored[:poolSize]

	if initial.Empty() {
		return take(scored, limit)
	}

	for i := range scored {
		var matches int
		for _, g := range scored[i].Media.Genres {
			matches += initial.Genres[g]
		}
		matches += initial.Types[scored[i].Media.Type]
		scored[i].Score += e.cfg.ColdStartMatchWeight * float64(matches)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return take(scored, limit)
}
