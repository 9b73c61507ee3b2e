package sparkle

import (
	"errors"
	"math/rand/v2"
)

// recordSurface counts clears and records every painted circle since the
// last clear.
type recordSurface struct {
	clears  int
	circles []circle
}

type circle struct {
	x, y, r float64
	c       Color
}

func (s *recordSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordSurface) FillCircle(x, y, r float64, c Color) {
	s.circles = append(s.circles, circle{x, y, r, c})
}

// fakeTrack is a MusicTrack whose play results are delivered by the test.
type fakeTrack struct {
	ready   bool
	loadErr error
	results chan error
	plays   int
	pauses  int
}

func newFakeTrack() *fakeTrack {
	return &fakeTrack{ready: true, results: make(chan error, 1)}
}

func (t *fakeTrack) Ready() bool { return t.ready }

func (t *fakeTrack) Load() error {
	if t.loadErr != nil {
		return t.loadErr
	}
	t.ready = true
	return nil
}

func (t *fakeTrack) Play() <-chan error {
	t.plays++
	return t.results
}

func (t *fakeTrack) Pause() { t.pauses++ }

// fakeSounds records effect ids and optionally fails every call.
type fakeSounds struct {
	played []string
	err    error
}

func (s *fakeSounds) Play(id string) error {
	s.played = append(s.played, id)
	return s.err
}

// recordConfetti records bursts instead of simulating them.
type recordConfetti struct {
	bursts []BurstOptions
}

func (c *recordConfetti) Burst(opts BurstOptions) {
	c.bursts = append(c.bursts, opts)
}

func (c *recordConfetti) pieces() int {
	n := 0
	for _, b := range c.bursts {
		n += b.ParticleCount
	}
	return n
}

// recordSink records emitted events.
type recordSink struct {
	events []TriggerEvent
}

func (s *recordSink) EmitTrigger(e TriggerEvent) {
	s.events = append(s.events, e)
}

func (s *recordSink) named(name string) []TriggerEvent {
	var out []TriggerEvent
	for _, e := range s.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

var errBlocked = errors.New("blocked")

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// testPage bundles a page with its fakes.
type testPage struct {
	*Page
	surface  *recordSurface
	track    *fakeTrack
	sounds   *fakeSounds
	confetti *recordConfetti
	sink     *recordSink
}

func newTestPage() *testPage {
	tp := &testPage{
		surface:  &recordSurface{},
		track:    newFakeTrack(),
		sounds:   &fakeSounds{},
		confetti: &recordConfetti{},
		sink:     &recordSink{},
	}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	tp.Page = NewPage(cfg, Options{
		Music:    tp.track,
		Sounds:   tp.sounds,
		Confetti: tp.confetti,
		Surface:  tp.surface,
		Rand:     testRand(),
		Sink:     tp.sink,
	})
	tp.SetLogOutput(nil)
	return tp
}

// loaded fades the loader out and returns the page.
func (tp *testPage) loaded() *testPage {
	tp.Load()
	tp.Tick(loaderFadeDuration)
	tp.Tick(0)
	return tp
}
