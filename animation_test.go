package sparkle

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	v := Vec2{10, 20}

	g := TweenPosition(&v, Vec2{100, 200}, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", v.X)
	}
	if math.Abs(v.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", v.Y)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenColor(&c, target, 1.0, ease.Linear)

	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(c.R-0) > 0.01 || math.Abs(c.G-1) > 0.01 || math.Abs(c.B-0.5) > 0.01 || math.Abs(c.A-0.5) > 0.01 {
		t.Errorf("color = %+v, want %+v", c, target)
	}
}

func TestTweenMidpointLinear(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 10, 1.0, ease.Linear)
	g.Update(0.5)
	if math.Abs(v-5) > 0.01 {
		t.Errorf("v = %f at midpoint, want ~5", v)
	}
	if g.Done {
		t.Error("Done at midpoint")
	}
}

func TestTweenOnCompleteOnce(t *testing.T) {
	v := 0.0
	calls := 0
	g := TweenValue(&v, 1, 0.5, ease.Linear)
	g.OnComplete = func() { calls++ }
	g.Update(0.5)
	g.Update(0.5)
	g.Update(0.5)
	if calls != 1 {
		t.Errorf("OnComplete calls = %d, want 1", calls)
	}
}

func TestFromToSetsStart(t *testing.T) {
	v := 7.0
	g := FromTo(1.0, ease.Linear, []float64{1}, Target{&v, 3})
	if v != 1 {
		t.Errorf("v = %f after FromTo, want 1", v)
	}
	g.Update(1.0)
	if math.Abs(v-3) > 0.01 {
		t.Errorf("v = %f after full duration, want ~3", v)
	}
}

func TestYoyoReturnsToStart(t *testing.T) {
	scale := 1.0
	g := FromTo(0.2, ease.Linear, []float64{1}, Target{&scale, 1.3}).Yoyo(1)

	g.Update(0.2)
	if g.Done {
		t.Fatal("Done after forward pass of a yoyo")
	}
	if math.Abs(scale-1.3) > 0.01 {
		t.Errorf("scale = %f at peak, want ~1.3", scale)
	}

	g.Update(0.2)
	if !g.Done {
		t.Fatal("expected Done after the return pass")
	}
	if math.Abs(scale-1) > 0.01 {
		t.Errorf("scale = %f, want ~1", scale)
	}
}

func TestTweenListDropsDone(t *testing.T) {
	var l tweenList
	a, b := 0.0, 0.0
	l.add(TweenValue(&a, 1, 0.5, ease.Linear))
	l.add(TweenValue(&b, 1, 1.0, ease.Linear))

	l.update(0.5)
	if l.len() != 1 {
		t.Errorf("len = %d, want 1", l.len())
	}
	l.update(0.5)
	if l.len() != 0 {
		t.Errorf("len = %d, want 0", l.len())
	}
}

func TestTweenListAddFromOnComplete(t *testing.T) {
	var l tweenList
	a, b := 0.0, 0.0
	first := l.add(TweenValue(&a, 1, 0.5, ease.Linear))
	first.OnComplete = func() {
		l.add(TweenValue(&b, 1, 0.5, ease.Linear))
	}
	l.update(0.5)
	if l.len() != 1 {
		t.Fatalf("len = %d, want 1 (chained tween)", l.len())
	}
	l.update(0.5)
	if math.Abs(b-1) > 0.01 {
		t.Errorf("b = %f, want ~1", b)
	}
}
