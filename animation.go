package sparkle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Target pairs a float64 field with the value it should be animated to.
type Target struct {
	Field *float64
	To    float64
}

// TweenGroup animates several float64 fields together over one duration and
// easing. Call Update(dt) each frame; values are written straight into the
// target fields. There is no global animation manager.
type TweenGroup struct {
	tweens   []*gween.Tween
	fields   []*float64
	from     []float64
	to       []float64
	duration float32
	fn       ease.TweenFunc

	yoyo    bool
	repeats int

	// OnComplete runs once, on the frame the group finishes.
	OnComplete func()
	Done       bool
}

// NewTween creates a group animating each target from its current value to
// Target.To over duration seconds.
func NewTween(duration float32, fn ease.TweenFunc, targets ...Target) *TweenGroup {
	g := &TweenGroup{
		tweens:   make([]*gween.Tween, len(targets)),
		fields:   make([]*float64, len(targets)),
		from:     make([]float64, len(targets)),
		to:       make([]float64, len(targets)),
		duration: duration,
		fn:       fn,
	}
	for i, t := range targets {
		g.fields[i] = t.Field
		g.from[i] = *t.Field
		g.to[i] = t.To
	}
	g.rebuild()
	return g
}

// FromTo sets every target to its from value before animating, matching a
// from/to tween where the start is not the field's current value.
func FromTo(duration float32, fn ease.TweenFunc, from []float64, targets ...Target) *TweenGroup {
	for i, t := range targets {
		if i < len(from) {
			*t.Field = from[i]
		}
	}
	return NewTween(duration, fn, targets...)
}

// Yoyo makes the group play backward after each forward pass, repeat times.
func (g *TweenGroup) Yoyo(repeat int) *TweenGroup {
	g.yoyo = true
	g.repeats = repeat
	return g
}

func (g *TweenGroup) rebuild() {
	for i := range g.fields {
		g.tweens[i] = gween.New(float32(g.from[i]), float32(g.to[i]), g.duration, g.fn)
	}
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if !allDone {
		return
	}

	if g.yoyo && g.repeats > 0 {
		g.repeats--
		g.from, g.to = g.to, g.from
		g.rebuild()
		return
	}

	g.Done = true
	if g.OnComplete != nil {
		g.OnComplete()
	}
}

// TweenPosition animates v to the given point.
func TweenPosition(v *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTween(duration, fn,
		Target{&v.X, to.X},
		Target{&v.Y, to.Y},
	)
}

// TweenColor animates all four components of c.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTween(duration, fn,
		Target{&c.R, to.R},
		Target{&c.G, to.G},
		Target{&c.B, to.B},
		Target{&c.A, to.A},
	)
}

// TweenValue animates a single field.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTween(duration, fn, Target{field, to})
}

// tweenList holds running groups and drops them once done.
type tweenList struct {
	groups []*TweenGroup
}

func (l *tweenList) add(g *TweenGroup) *TweenGroup {
	l.groups = append(l.groups, g)
	return g
}

func (l *tweenList) update(dt float32) {
	// Groups added from OnComplete start on the next update.
	n := len(l.groups)
	for i := 0; i < n; i++ {
		l.groups[i].Update(dt)
	}
	live := l.groups[:0]
	for _, g := range l.groups {
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(l.groups); i++ {
		l.groups[i] = nil
	}
	l.groups = live
}

func (l *tweenList) len() int {
	return len(l.groups)
}
