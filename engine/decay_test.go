package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n float64) time.Time {
	return testNow.Add(-time.Duration(n * 24 * float64(time.Hour)))
}

func TestDecay(t *testing.T) {
	e := New(DefaultConfig())

	t.Run("fresh signal has full weight", func(t *testing.T) {
		assert.Equal(t, 1.0, e.Decay(testNow, testNow))
	})

	t.Run("signal at window edge is fully expired", func(t *testing.T) {
		assert.Equal(t, 0.0, e.Decay(daysAgo(90), testNow))
	})

	t.Run("signal beyond window is exactly zero", func(t *testing.T) {
		assert.Equal(t, 0.0, e.Decay(daysAgo(365), testNow))
	})

	t.Run("age is truncated to whole days", func(t *testing.T) {
		assert.InDelta(t, (90.0-1)/90.0, e.Decay(daysAgo(1.5), testNow), 1e-9)
	})

	t.Run("non increasing in age", func(t *testing.T) {
		prev := 1.1
		for age := 0.0; age <= 120; age += 7 {
			d := e.Decay(daysAgo(age), testNow)
			assert.LessOrEqual(t, d, prev)
			assert.GreaterOrEqual(t, d, 0.0)
			prev = d
		}
	})

	t.Run("future timestamps clamp to one", func(t *testing.T) {
		assert.Equal(t, 1.0, e.Decay(testNow.Add(48*time.Hour), testNow))
	})
}
