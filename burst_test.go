package sparkle

import (
	"testing"
	"time"
)

func TestIntervalBurstFiresEveryInterval(t *testing.T) {
	var lefts []time.Duration
	b := NewIntervalBurst(time.Second, 250*time.Millisecond, func(left time.Duration) {
		lefts = append(lefts, left)
	})
	for i := 0; i < 100; i++ {
		b.Tick(50 * time.Millisecond)
	}
	// Fires at 250, 500, 750; at 1000 no time is left.
	want := []time.Duration{750 * time.Millisecond, 500 * time.Millisecond, 250 * time.Millisecond}
	if len(lefts) != len(want) {
		t.Fatalf("fired %d times (%v), want %d", len(lefts), lefts, len(want))
	}
	for i := range want {
		if lefts[i] != want[i] {
			t.Errorf("fire %d timeLeft = %v, want %v", i, lefts[i], want[i])
		}
	}
	if !b.Done() {
		t.Error("timer not done after its budget")
	}
}

func TestCelebrateCountsStrictlyDecrease(t *testing.T) {
	var counts []int
	b := NewIntervalBurst(celebrateDuration, celebrateInterval, func(left time.Duration) {
		counts = append(counts, taper(celebrateBase, left, celebrateDuration))
	})
	for i := 0; i < 600; i++ {
		b.Tick(time.Second / 60)
	}
	if len(counts) == 0 {
		t.Fatal("no bursts fired")
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] >= counts[i-1] {
			t.Fatalf("counts not strictly decreasing at %d: %v", i, counts)
		}
	}
	if counts[0] > int(celebrateBase) {
		t.Errorf("first count %d exceeds base %v", counts[0], celebrateBase)
	}
}

func TestFrameBurstStopsAtDuration(t *testing.T) {
	fires := 0
	b := NewFrameBurst(400*time.Millisecond, func(time.Duration) { fires++ })
	b.Tick(0)
	if fires != 1 {
		t.Fatalf("fires after zero tick = %d, want 1", fires)
	}
	for i := 0; i < 10; i++ {
		b.Tick(100 * time.Millisecond)
	}
	// Ticks at 100, 200, 300 fire; 400 reaches the budget.
	if fires != 4 {
		t.Errorf("fires = %d, want 4", fires)
	}
	if !b.Done() {
		t.Error("frame burst not done")
	}
}

func TestTimerSetDropsFinished(t *testing.T) {
	var s TimerSet
	s.Add(NewFrameBurst(100*time.Millisecond, func(time.Duration) {}))
	s.Add(NewFrameBurst(300*time.Millisecond, func(time.Duration) {}))
	s.Tick(150 * time.Millisecond)
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	s.Tick(200 * time.Millisecond)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestTimerSetOverlapIndependent(t *testing.T) {
	var s TimerSet
	var a, b int
	s.Add(NewIntervalBurst(time.Second, 250*time.Millisecond, func(time.Duration) { a++ }))
	s.Tick(500 * time.Millisecond)
	s.Add(NewIntervalBurst(time.Second, 250*time.Millisecond, func(time.Duration) { b++ }))
	for i := 0; i < 20; i++ {
		s.Tick(250 * time.Millisecond)
	}
	if a != 3 || b != 3 {
		t.Errorf("fires = %d and %d, want 3 and 3", a, b)
	}
}

func TestTaper(t *testing.T) {
	tests := []struct {
		left time.Duration
		want int
	}{
		{6 * time.Second, 60},
		{3 * time.Second, 30},
		{250 * time.Millisecond, 2},
		{0, 0},
		{-time.Second, 0},
	}
	for _, tt := range tests {
		if got := taper(60, tt.left, 6*time.Second); got != tt.want {
			t.Errorf("taper(60, %v, 6s) = %d, want %d", tt.left, got, tt.want)
		}
	}
}
