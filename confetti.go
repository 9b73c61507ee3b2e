package sparkle

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// BurstOptions describes one confetti burst. Start from DefaultBurst and
// override fields; every field is used as given.
type BurstOptions struct {
	// ParticleCount is the number of pieces to spawn. Negative means zero.
	ParticleCount int
	// Angle is the launch direction in degrees, 90 being straight up.
	Angle float64
	// Spread is the cone width in degrees around Angle.
	Spread float64
	// StartVelocity is the nominal launch speed in pixels per tick.
	StartVelocity float64
	// Decay multiplies the velocity every tick.
	Decay float64
	// Gravity pulls pieces down; 1 is normal.
	Gravity float64
	// Drift pushes pieces sideways every tick.
	Drift float64
	// Ticks is the lifetime of each piece in ticks.
	Ticks int
	// Origin is the launch point in viewport-normalized coordinates.
	Origin Vec2
	// Colors is the palette pieces pick from.
	Colors []Color
	// Scalar scales piece size.
	Scalar float64
}

// DefaultConfettiColors is the palette used when a burst names none.
var DefaultConfettiColors = []Color{
	rgbHex(0x26ccff), rgbHex(0xa25afd), rgbHex(0xff5e7e), rgbHex(0x88ff5a),
	rgbHex(0xfcff42), rgbHex(0xffa62d), rgbHex(0xff36ff),
}

// DefaultBurst returns the baseline burst: 50 pieces straight up from the
// viewport center.
func DefaultBurst() BurstOptions {
	return BurstOptions{
		ParticleCount: 50,
		Angle:         90,
		Spread:        45,
		StartVelocity: 45,
		Decay:         0.9,
		Gravity:       1,
		Drift:         0,
		Ticks:         200,
		Origin:        Vec2{0.5, 0.5},
		Colors:        DefaultConfettiColors,
		Scalar:        1,
	}
}

// Confetti accepts bursts.
type Confetti interface {
	Burst(opts BurstOptions)
}

// confettiPiece holds per-piece simulation state. Managed by ConfettiEmitter.
type confettiPiece struct {
	x, y        float64
	velocity    float64
	angle       float64 // radians, screen space
	decay       float64
	drift       float64
	gravity     float64
	wobble      float64
	wobbleSpeed float64
	tilt        float64
	scalar      float64
	tick        int
	totalTicks  int
	color       Color
}

// ConfettiEmitter manages a fixed pool of confetti pieces simulated once per
// tick. New pieces are silently dropped when the pool is full.
type ConfettiEmitter struct {
	pieces        []confettiPiece
	alive         int
	width, height float64
	rng           *rand.Rand
}

// NewConfettiEmitter creates an emitter with a preallocated pool.
func NewConfettiEmitter(maxPieces int, rng *rand.Rand) *ConfettiEmitter {
	if maxPieces <= 0 {
		maxPieces = 1024
	}
	if rng == nil {
		rng = newRand()
	}
	return &ConfettiEmitter{
		pieces: make([]confettiPiece, maxPieces),
		rng:    rng,
	}
}

// Resize sets the viewport the normalized burst origin maps onto.
func (e *ConfettiEmitter) Resize(w, h float64) {
	e.width, e.height = w, h
}

// AliveCount returns the number of live pieces.
func (e *ConfettiEmitter) AliveCount() int {
	return e.alive
}

// Reset kills every live piece.
func (e *ConfettiEmitter) Reset() {
	e.alive = 0
}

// Burst spawns opts.ParticleCount pieces at the burst origin.
func (e *ConfettiEmitter) Burst(opts BurstOptions) {
	colors := opts.Colors
	if len(colors) == 0 {
		colors = DefaultConfettiColors
	}
	ticks := opts.Ticks
	if ticks <= 0 {
		ticks = 1
	}
	radAngle := opts.Angle * math.Pi / 180
	radSpread := opts.Spread * math.Pi / 180

	for i := 0; i < opts.ParticleCount; i++ {
		if e.alive >= len(e.pieces) {
			return
		}
		p := &e.pieces[e.alive]
		p.x = opts.Origin.X * e.width
		p.y = opts.Origin.Y * e.height
		p.velocity = opts.StartVelocity*0.5 + e.rng.Float64()*opts.StartVelocity
		p.angle = -radAngle + (0.5*radSpread - e.rng.Float64()*radSpread)
		p.decay = opts.Decay
		p.drift = opts.Drift
		p.gravity = opts.Gravity * 3
		p.wobble = e.rng.Float64() * 10
		p.wobbleSpeed = min(0.11, e.rng.Float64()*0.1+0.05)
		p.tilt = (e.rng.Float64()*0.5 + 0.25) * math.Pi
		p.scalar = opts.Scalar
		p.tick = 0
		p.totalTicks = ticks
		p.color = colors[e.rng.IntN(len(colors))]
		e.alive++
	}
}

// Update advances every piece one tick and swap-removes expired ones.
func (e *ConfettiEmitter) Update() {
	i := 0
	for i < e.alive {
		p := &e.pieces[i]
		p.tick++
		if p.tick >= p.totalTicks {
			e.alive--
			e.pieces[i] = e.pieces[e.alive]
			continue
		}

		p.x += math.Cos(p.angle)*p.velocity + p.drift
		p.y += math.Sin(p.angle)*p.velocity + p.gravity
		p.velocity *= p.decay
		p.wobble += p.wobbleSpeed
		p.tilt += 0.1

		i++
	}
}

// Draw renders every live piece as a tilted, fading quad.
func (e *ConfettiEmitter) Draw(dst *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := 0; i < e.alive; i++ {
		p := &e.pieces[i]
		size := 10 * p.scalar
		w := size
		h := size * (0.6 + 0.4*math.Abs(math.Sin(p.wobble)))
		alpha := 1 - float64(p.tick)/float64(p.totalTicks)

		op.GeoM.Reset()
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(p.tilt)
		op.GeoM.Translate(p.x, p.y)
		op.ColorScale.Reset()
		op.ColorScale.Scale(
			float32(p.color.R*alpha), float32(p.color.G*alpha),
			float32(p.color.B*alpha), float32(alpha),
		)
		dst.DrawImage(WhitePixel, &op)
	}
}
