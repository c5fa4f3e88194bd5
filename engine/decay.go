package engine

import (
	"math"
	"time"
)

// Decay 把信号时间映射为 [0,1] 的时效系数。按天取整；超过窗口整段过期，
// 返回精确的 0 而不是渐近衰减。
func (e *Engine) Decay(t, now time.Time) float64 {
	ageDays := math.Floor(now.Sub(t).Hours() / 24)
	d := (e.cfg.DecayWindowDays - ageDays) / e.cfg.DecayWindowDays
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
