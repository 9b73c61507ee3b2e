package sparkle

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

const (
	loaderFadeDuration = 2.0
	statusDuration     = 3.0
)

// TriggerEvent describes a trigger or mode change, for optional forwarding
// to an ECS or other event bus.
type TriggerEvent struct {
	Name     string
	Arg      string
	Progress float64
	Mode     Mode
}

// Event names that are not button actions.
const EventModeChange = "mode"

// EventSink is the interface for optional event forwarding. When set on a
// Page, every trigger and mode change is emitted to it.
type EventSink interface {
	EmitTrigger(event TriggerEvent)
}

// Options supplies the collaborators a Page talks to. Zero fields get
// defaults: no audio, the built-in confetti emitter, an ebiten image surface
// and a randomly seeded source.
type Options struct {
	Music    MusicTrack
	Sounds   SoundBank
	Confetti Confetti
	Surface  Surface
	Rand     *rand.Rand
	Sink     EventSink
}

// loader is the full-screen cover faded out once the page has loaded.
type loader struct {
	Alpha   float64
	Visible bool
	fade    *TweenGroup
}

// Page is the top-level object: it owns the particle field, the scroll and
// theme state, the triggers and their effects, and implements ebiten.Game.
type Page struct {
	cfg           Config
	state         State
	width, height int

	rng      *rand.Rand
	field    *Field
	frames   FrameQueue
	loop     *Loop
	surface  Surface
	emitter  *ConfettiEmitter
	confetti Confetti
	bursts   TimerSet
	tweens   tweenList
	glow     *Glow
	loader   loader
	scroll   ScrollTracker
	spring   harmonica.Spring
	theme    Gradient

	sections    []*section
	buttons     []*Button
	musicButton *Button
	music       *MusicToggle
	sounds      SoundBank
	store       EventSink

	// animating is set once the loader is gone and scroll effects run.
	animating bool

	status     string
	statusLeft float64

	// Input state
	pointerDown bool
	pressed     *Button
	injectQueue []syntheticEvent
	testRunner  *TestRunner
	quit        bool

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	debug  bool
	logOut io.Writer
	fps    fpsCounter
}

// NewPage builds the page for cfg, creates the particle field and starts its
// frame loop. Call Load once the window is up to fade the loader out.
func NewPage(cfg Config, opts Options) *Page {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.ScrollStep <= 0 {
		cfg.ScrollStep = DefaultConfig().ScrollStep
	}
	if cfg.GlowRadius <= 0 {
		cfg.GlowRadius = DefaultConfig().GlowRadius
	}

	rng := opts.Rand
	if rng == nil {
		rng = newRand()
	}

	p := &Page{
		cfg:           cfg,
		rng:           rng,
		surface:       opts.Surface,
		sounds:        opts.Sounds,
		store:         opts.Sink,
		spring:        newScrubSpring(ebiten.TPS()),
		theme:         ThemeFor(0),
		loader:        loader{Alpha: 1, Visible: true},
		ScreenshotDir: cfg.ScreenshotDir,
		debug:         cfg.Debug,
		logOut:        os.Stderr,
	}
	if p.surface == nil {
		p.surface = NewImageSurface()
	}
	if p.sounds == nil {
		p.sounds = &SoundEffects{}
	}
	music := opts.Music
	if music == nil {
		music = NewTrack(nil, "")
	}

	p.field = NewField(cfg.ParticleCount, float64(cfg.Width), float64(cfg.Height), rng)
	p.loop = NewLoop(p.field, p.surface, &p.state, &p.frames)
	p.emitter = NewConfettiEmitter(cfg.MaxConfetti, rng)
	p.confetti = opts.Confetti
	if p.confetti == nil {
		p.confetti = p.emitter
	}
	p.glow = newGlow(cfg.GlowRadius)

	p.music = NewMusicToggle(music, &p.state)
	p.music.OnStart = func() { p.logf("music started") }
	p.music.OnError = func(err error) {
		p.logf("playback error: %v", err)
		p.logf("audio was blocked by the host or the track failed to load, try again")
		p.showStatus("Audio unavailable. Click again to retry.")
	}

	p.buildSections()
	p.resize(cfg.Width, cfg.Height)
	p.loop.Start()
	return p
}

// Load fades the loader out; when the fade finishes the loader is hidden and
// scroll-driven animations start. Calling Load again has no effect.
func (p *Page) Load() {
	if p.loader.fade != nil || !p.loader.Visible {
		return
	}
	p.loader.fade = p.tweens.add(TweenValue(&p.loader.Alpha, 0, loaderFadeDuration, ease.InOutQuint))
	p.loader.fade.OnComplete = func() {
		p.loader.Visible = false
		p.initAnimations()
	}
}

// initAnimations wires the scroll progress callback and syncs reveals with
// the current scroll position.
func (p *Page) initAnimations() {
	if p.animating {
		return
	}
	p.animating = true
	p.scroll.OnUpdate(p.applyProgress)
	p.applyProgress(p.scroll.Progress())
}

// applyProgress is the scroll progress callback: it updates the progress
// bar, the background band and flips the mode on crossing ModeThreshold.
func (p *Page) applyProgress(progress float64) {
	p.state.Progress = progress
	p.theme = ThemeFor(progress)

	m := ModeFor(progress)
	if !p.field.SetMode(m) {
		return
	}
	p.glow.SetTint(glowTint(m))
	p.emit(EventModeChange, m.String())
	if p.debug {
		p.logf("mode -> %s at progress %.3f", m, progress)
	}
}

// Update implements ebiten.Game.
func (p *Page) Update() error {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.processInput()
	p.Tick(1.0 / float64(ebiten.TPS()))
	if p.quit {
		return ebiten.Termination
	}
	return nil
}

// Tick advances everything except input and particle frames by dt seconds.
func (p *Page) Tick(dt float64) {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	fdt := float32(dt)
	p.music.Poll()
	p.tweens.update(fdt)
	p.glow.update(fdt)
	p.bursts.Tick(time.Duration(dt * float64(time.Second)))
	p.emitter.Update()

	scrollY, viewH := p.scroll.Offset(), p.scroll.ViewHeight()
	for _, s := range p.sections {
		if p.animating {
			s.title.sync(scrollY, viewH)
			for _, it := range s.parallax {
				it.step(&p.spring, scrollY, viewH)
			}
		}
		s.title.update(fdt)
	}

	if p.statusLeft > 0 {
		p.statusLeft -= dt
		if p.statusLeft <= 0 {
			p.status = ""
		}
	}
	p.fps.tick(dt)

	if p.debug {
		p.debugLog(debugStats{
			updateTime: time.Since(t0),
			particles:  p.field.Len(),
			confetti:   p.emitter.AliveCount(),
			bursts:     p.bursts.Len(),
			tweens:     p.tweens.len(),
		})
	}
}

// Layout implements ebiten.Game. A new outside size resizes the drawing
// surface; particles keep their positions.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Resize is the window resize handler.
func (p *Page) Resize(w, h int) {
	p.resize(w, h)
}

func (p *Page) resize(w, h int) {
	p.width, p.height = w, h
	p.field.Resize(float64(w), float64(h))
	p.emitter.Resize(float64(w), float64(h))
	if r, ok := p.surface.(interface{ Resize(w, h int) }); ok {
		r.Resize(w, h)
	}
	docH := p.layout()
	p.scroll.SetExtent(docH, float64(h))
}

// SetEventSink sets the optional event bridge.
func (p *Page) SetEventSink(sink EventSink) {
	p.store = sink
}

func (p *Page) emit(name, arg string) {
	if p.store == nil {
		return
	}
	p.store.EmitTrigger(TriggerEvent{
		Name:     name,
		Arg:      arg,
		Progress: p.state.Progress,
		Mode:     p.field.Mode(),
	})
}

// SetDebugMode enables or disables per-frame timing logs.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// SetLogOutput redirects log lines; nil discards them.
func (p *Page) SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	p.logOut = w
}

func (p *Page) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.logOut, "[sparkle] "+format+"\n", args...)
}

func (p *Page) showStatus(msg string) {
	p.status = msg
	p.statusLeft = statusDuration
}

// State returns a copy of the shared page state.
func (p *Page) State() State {
	return p.state
}

// Field returns the particle field.
func (p *Page) Field() *Field {
	return p.field
}

// Loop returns the particle frame loop.
func (p *Page) Loop() *Loop {
	return p.loop
}

// Frames returns the frame queue the loop schedules itself on. The host
// fires it once per displayed frame.
func (p *Page) Frames() *FrameQueue {
	return &p.frames
}

// Scroll returns the scroll tracker.
func (p *Page) Scroll() *ScrollTracker {
	return &p.scroll
}

// Music returns the music toggle.
func (p *Page) Music() *MusicToggle {
	return p.music
}

// Glow returns the cursor glow.
func (p *Page) Glow() *Glow {
	return p.glow
}

// Theme returns the current background gradient.
func (p *Page) Theme() Gradient {
	return p.theme
}

// Buttons returns every button, fixed ones last. The returned slice MUST
// NOT be mutated.
func (p *Page) Buttons() []*Button {
	return p.buttons
}

// Loaded reports whether the loader is gone and scroll animations run.
func (p *Page) Loaded() bool {
	return p.animating
}

// Status returns the transient status line, empty when none is showing.
func (p *Page) Status() string {
	return p.status
}

// ActiveBursts returns the number of running burst timers.
func (p *Page) ActiveBursts() int {
	return p.bursts.Len()
}
