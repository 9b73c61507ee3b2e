package sparkle

import (
	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween/ease"
)

const (
	// revealStart is the viewport fraction an element's top must pass to play.
	revealStart    = 0.85
	revealDistance = 50.0
	revealDuration = 2.0

	parallaxTravel = 500.0
	// parallaxDefaultSpeed applies when an item has no speed set.
	parallaxDefaultSpeed = 0.5
)

// Reveal is an element that fades and slides in once scrolled into view and
// plays backward when scrolled back above its trigger line.
type Reveal struct {
	DocY    float64
	Alpha   float64
	OffsetY float64

	shown bool
	tween *TweenGroup
}

func newReveal(docY float64) *Reveal {
	return &Reveal{DocY: docY, OffsetY: revealDistance}
}

// sync starts the forward or reverse animation when the element crosses the
// trigger line.
func (r *Reveal) sync(scrollY, viewH float64) {
	active := r.DocY-scrollY < viewH*revealStart
	if active == r.shown {
		return
	}
	r.shown = active
	alpha, offset := 0.0, revealDistance
	if active {
		alpha, offset = 1, 0
	}
	r.tween = NewTween(revealDuration, ease.OutExpo,
		Target{&r.Alpha, alpha},
		Target{&r.OffsetY, offset},
	)
}

func (r *Reveal) update(dt float32) {
	if r.tween == nil {
		return
	}
	r.tween.Update(dt)
	if r.tween.Done {
		r.tween = nil
	}
}

// Shown reports whether the element is past its trigger line.
func (r *Reveal) Shown() bool {
	return r.shown
}

// ParallaxItem drifts upward as it crosses the viewport, scrubbed toward its
// scroll-derived offset by a spring.
type ParallaxItem struct {
	DocY   float64
	Height float64
	Speed  float64
	Offset float64

	vel float64
}

// target returns the unsmoothed offset: -500*speed scaled by how far the item
// has travelled from entering at the viewport bottom to leaving at the top.
func (it *ParallaxItem) target(scrollY, viewH float64) float64 {
	speed := it.Speed
	if speed == 0 {
		speed = parallaxDefaultSpeed
	}
	start := it.DocY - viewH
	end := it.DocY + it.Height
	if end <= start {
		return 0
	}
	return -parallaxTravel * speed * clamp01((scrollY-start)/(end-start))
}

func (it *ParallaxItem) step(spring *harmonica.Spring, scrollY, viewH float64) {
	it.Offset, it.vel = spring.Update(it.Offset, it.vel, it.target(scrollY, viewH))
}

// newScrubSpring returns the critically damped spring used for scrubbing,
// settling in roughly one second.
func newScrubSpring(tps int) harmonica.Spring {
	if tps <= 0 {
		tps = 60
	}
	return harmonica.NewSpring(harmonica.FPS(tps), 6.0, 1.0)
}
