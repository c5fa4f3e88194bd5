package engine

import (
	"testing"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	e := New(DefaultConfig())

	t.Run("identical items without contributors", func(t *testing.T) {
		a := domain.MediaItem{Type: domain.MediaTypeMovie, Genres: []string{"sci-fi", "thriller"}}
		got := e.Similarity(&a, &a)
		assert.InDelta(t, (1.0+0.1)/1.5, got, 1e-9)
	})

	t.Run("genre overlap normalised by larger set", func(t *testing.T) {
		a := domain.MediaItem{Type: domain.MediaTypeMovie, Genres: []string{"drama"}}
		b := domain.MediaItem{Type: domain.MediaTypeSeries, Genres: []string{"drama", "crime", "noir", "mystery"}}
		got := e.Similarity(&a, &b)
		assert.InDelta(t, 0.25/1.5, got, 1e-9)
	})

	t.Run("no genres means no genre term", func(t *testing.T) {
		a := domain.MediaItem{Type: domain.MediaTypeBook}
		b := domain.MediaItem{Type: domain.MediaTypeBook, Genres: []string{"fantasy"}}
		assert.InDelta(t, 0.1/1.5, e.Similarity(&a, &b), 1e-9)
	})

	// 贡献者项取并集，完全不相干的贡献者也会推高分数
	t.Run("contributor term counts the union", func(t *testing.T) {
		a := domain.MediaItem{Type: domain.MediaTypeMovie, Contributors: []string{"x", "y"}}
		b := domain.MediaItem{Type: domain.MediaTypeMovie, Contributors: []string{"p", "q"}}
		assert.InDelta(t, (0.1+4*0.05)/1.5, e.Similarity(&a, &b), 1e-9)
	})

	t.Run("shared contributors are counted once", func(t *testing.T) {
		a := domain.MediaItem{Type: domain.MediaTypeMovie, Contributors: []string{"x", "y"}}
		b := domain.MediaItem{Type: domain.MediaTypeMovie, Contributors: []string{"x", "z"}}
		assert.InDelta(t, (0.1+3*0.05)/1.5, e.Similarity(&a, &b), 1e-9)
	})

	t.Run("score is not clamped to one", func(t *testing.T) {
		crew := make([]string, 30)
		for i := range crew {
			crew[i] = string(rune('a' + i))
		}
		a := domain.MediaItem{Type: domain.MediaTypeMovie, Genres: []string{"action"}, Contributors: crew}
		got := e.Similarity(&a, &a)
		assert.Greater(t, got, 1.0)
		assert.InDelta(t, (1.0+0.1+30*0.05)/1.5, got, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := domain.MediaItem{Type: domain.MediaTypeGame, Genres: []string{"rpg", "open-world"}, Contributors: []string{"studio-a"}}
		b := domain.MediaItem{Type: domain.MediaTypeMovie, Genres: []string{"rpg"}, Contributors: []string{"studio-b"}}
		assert.Equal(t, e.Similarity(&a, &b), e.Similarity(&b, &a))
	})
}
