package sparkle

import "time"

// BurstTimer repeatedly fires a callback for a fixed wall-clock budget and
// then cancels itself. It is driven by Tick rather than a real clock.
type BurstTimer struct {
	duration time.Duration
	interval time.Duration
	elapsed  time.Duration
	acc      time.Duration
	fire     func(timeLeft time.Duration)
	done     bool
}

// NewIntervalBurst fires every interval, first after one interval, while
// time remains. timeLeft is strictly positive on every call.
func NewIntervalBurst(duration, interval time.Duration, fire func(timeLeft time.Duration)) *BurstTimer {
	return &BurstTimer{duration: duration, interval: interval, fire: fire}
}

// NewFrameBurst fires on every tick, including a zero-length first tick,
// until the budget is spent.
func NewFrameBurst(duration time.Duration, fire func(timeLeft time.Duration)) *BurstTimer {
	return &BurstTimer{duration: duration, fire: fire}
}

// Tick advances the timer by dt and fires as many times as are due.
func (b *BurstTimer) Tick(dt time.Duration) {
	if b.done {
		return
	}
	b.elapsed += dt

	if b.interval <= 0 {
		if b.elapsed >= b.duration {
			b.done = true
			return
		}
		b.fire(b.duration - b.elapsed)
		return
	}

	b.acc += dt
	for b.acc >= b.interval {
		b.acc -= b.interval
		left := b.duration - (b.elapsed - b.acc)
		if left <= 0 {
			b.done = true
			return
		}
		b.fire(left)
	}
}

// Done reports whether the timer has cancelled itself.
func (b *BurstTimer) Done() bool {
	return b.done
}

// Duration returns the timer's budget.
func (b *BurstTimer) Duration() time.Duration {
	return b.duration
}

// TimerSet runs independent burst timers side by side. Overlapping timers do
// not interact.
type TimerSet struct {
	timers []*BurstTimer
}

// Add registers b and returns it.
func (s *TimerSet) Add(b *BurstTimer) *BurstTimer {
	s.timers = append(s.timers, b)
	return b
}

// Tick advances every timer and drops the finished ones.
func (s *TimerSet) Tick(dt time.Duration) {
	for i := 0; i < len(s.timers); i++ {
		s.timers[i].Tick(dt)
	}
	live := s.timers[:0]
	for _, b := range s.timers {
		if !b.done {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Len returns the number of running timers.
func (s *TimerSet) Len() int {
	return len(s.timers)
}

// taper scales base by the remaining fraction of the budget, rounding down.
func taper(base float64, timeLeft, duration time.Duration) int {
	if duration <= 0 || timeLeft <= 0 {
		return 0
	}
	return int(base * float64(timeLeft) / float64(duration))
}
