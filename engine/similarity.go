package engine

import (
	"github.com/catalogo-app/recommendation-backend/domain"
)

// Similarity 两个媒体的内容相似度，约在 [0,1] 区间。
//
// 贡献者项按两边贡献者并集的大小计分而不是交集，继承自线上版本的
// 启发式；除以 SimilarityDivisor 归一化后不截断，贡献者很多时结果
// 可以超过 1.0。排序行为依赖这两点，未经确认不要修正。
func (e *Engine) Similarity(a, b *domain.MediaItem) float64 {
	var score float64

	if len(a.Genres) > 0 && len(b.Genres) > 0 {
		shared := 0
		genresB := make(map[string]struct{}, len(b.Genres))
		for _, g := range b.Genres {
			genresB[g] = struct{}{}
		}
		for _, g := range a.Genres {
			if _, ok := genresB[g]; ok {
				shared++
			}
		}
		maxGenres := len(a.Genres)
		if len(b.Genres) > maxGenres {
			maxGenres = len(b.Genres)
		}
		score += float64(shared) / float64(maxGenres)
	}

	if a.Type == b.Type {
		score += e.cfg.TypeBonus
	}

	union := make(map[string]struct{}, len(a.Contributors)+len(b.Contributors))
	for _, p := range a.Contributors {
		union[p] = struct{}{}
	}
	for _, p := range b.Contributors {
		union[p] = struct{}{}
	}
	score += float64(len(union)) * e.cfg.ContributorWeight

	return score / e.cfg.SimilarityDivisor
}
