package sparkle

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

const (
	celebrateDuration = 6 * time.Second
	celebrateInterval = 250 * time.Millisecond
	// celebrateBase is the per-side piece count at the start of a celebration.
	celebrateBase = 60.0
	// celebrateFlareChance is the per-interval chance of an extra center burst.
	celebrateFlareChance = 0.2

	popDuration = 400 * time.Millisecond

	charmScale    = 1.3
	charmDuration = 0.2

	surpriseTurns    = 2
	surpriseScale    = 1.4
	surpriseDuration = 1.0
)

var (
	spellColors = map[string][]Color{
		"wingardium": {ColorWhite, ColorGold},
		"lumos":      {ColorWhite, rgbHex(0xffffcc)},
		"alohomora":  {ColorGold, rgbHex(0x664400)},
	}
	popColors      = []Color{rgbHex(0xff007f), rgbHex(0x00f2ff), rgbHex(0xfee440), rgbHex(0xff85a1)}
	surpriseColors = []Color{rgbHex(0xff007f), ColorGold, ColorWhite, rgbHex(0x00f2ff)}
)

// celebrateBurst is the shared shape of the celebration fireworks.
func celebrateBurst() BurstOptions {
	o := DefaultBurst()
	o.StartVelocity = 40
	o.Spread = 360
	o.Ticks = 100
	return o
}

func (p *Page) playSfx(id string) {
	if err := p.sounds.Play(id); err != nil {
		p.logf("sfx %s blocked: %v", id, err)
	}
}

func (p *Page) randomIn(lo, hi float64) float64 {
	return Range{lo, hi}.Random(p.rng)
}

// Celebrate plays fireworks for six seconds: every 250ms two bursts from
// random points on the left and right, tapering linearly to nothing, with an
// occasional heavy burst from the center.
func (p *Page) Celebrate() {
	p.emit(ActionCelebrate, "")
	p.playSfx(SfxFirework)
	p.playSfx(SfxConfetti)
	p.playSfx(SfxCheer)

	p.bursts.Add(NewIntervalBurst(celebrateDuration, celebrateInterval, func(left time.Duration) {
		o := celebrateBurst()
		o.ParticleCount = taper(celebrateBase, left, celebrateDuration)

		o.Origin = Vec2{p.randomIn(0.1, 0.4), p.rng.Float64() - 0.2}
		p.confetti.Burst(o)
		o.Origin = Vec2{p.randomIn(0.6, 0.9), p.rng.Float64() - 0.2}
		p.confetti.Burst(o)

		if p.rng.Float64() > 1-celebrateFlareChance {
			flare := celebrateBurst()
			flare.ParticleCount = 30
			flare.Origin = Vec2{0.5, 0.5}
			flare.Gravity = 0.5
			flare.Scalar = 2
			p.confetti.Burst(flare)
		}
	}))
}

// PopEffect fires small bursts from both side edges every frame for 400ms.
func (p *Page) PopEffect(emoji string) {
	p.emit(ActionPop, emoji)
	p.playSfx(SfxConfetti)

	b := p.bursts.Add(NewFrameBurst(popDuration, func(time.Duration) {
		o := DefaultBurst()
		o.ParticleCount = 2
		o.Angle = 60
		o.Spread = 55
		o.Origin = Vec2{0, 0.5}
		o.Colors = popColors
		p.confetti.Burst(o)

		o.Angle = 120
		o.Origin.X = 1
		p.confetti.Burst(o)
	}))
	b.Tick(0)
}

// CastSpell fires a small burst in the spell's palette and bounces every
// charm button once.
func (p *Page) CastSpell(kind string) {
	p.emit(ActionSpell, kind)
	p.playSfx(SfxMagic)
	p.playSfx(SfxConfetti)
	p.playSfx(SfxCheer)

	colors, ok := spellColors[kind]
	if !ok {
		colors = []Color{ColorWhite}
	}
	o := DefaultBurst()
	o.ParticleCount = 20
	o.Spread = 50
	o.Origin.Y = 0.6
	o.Colors = colors
	p.confetti.Burst(o)

	for _, b := range p.buttonsFor(ActionSpell) {
		p.tweens.add(FromTo(charmDuration, ease.Linear, []float64{1},
			Target{&b.Scale, charmScale},
		).Yoyo(1))
	}
}

// FinalSurprise fires one large burst and spins the surprise element.
func (p *Page) FinalSurprise() {
	p.emit(ActionSurprise, "")
	p.playSfx(SfxConfetti)

	o := DefaultBurst()
	o.ParticleCount = 150
	o.Spread = 100
	o.Origin.Y = 0.6
	o.Colors = surpriseColors
	p.confetti.Burst(o)

	for _, b := range p.buttonsFor(ActionSurprise) {
		p.tweens.add(NewTween(surpriseDuration, ease.OutElastic,
			Target{&b.Rotation, surpriseTurns * 2 * math.Pi},
			Target{&b.Scale, surpriseScale},
		))
	}
}

// ToggleMusic is the music button handler.
func (p *Page) ToggleMusic() {
	p.emit(ActionMusic, "")
	p.music.Click()
}

// Trigger runs the handler for a button action.
func (p *Page) Trigger(action, arg string) {
	switch action {
	case ActionCelebrate:
		p.Celebrate()
	case ActionPop:
		p.PopEffect(arg)
	case ActionSpell:
		p.CastSpell(arg)
	case ActionSurprise:
		p.FinalSurprise()
	case ActionMusic:
		p.ToggleMusic()
	default:
		p.logf("unknown trigger %q", action)
	}
}
