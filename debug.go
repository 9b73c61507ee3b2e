package sparkle

import "time"

// debugStats holds per-frame timing and counts.
// Only populated when Page.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	particles  int
	confetti   int
	bursts     int
	tweens     int
}

// debugLog prints timing and counts to the log output.
func (p *Page) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	if stats.drawTime > 0 {
		p.logf("draw: %v | frames: %d | pending: %d",
			stats.drawTime, p.loop.Frames(), p.frames.Pending())
		return
	}
	p.logf("update: %v | particles: %d | confetti: %d | bursts: %d | tweens: %d",
		stats.updateTime, stats.particles, stats.confetti, stats.bursts, stats.tweens)
}
