package sparkle

import (
	"math"
	"math/rand/v2"
)

const (
	// DefaultParticleCount is the size of the ambient field.
	DefaultParticleCount = 150
	// AttractionRadius is the pointer distance below which particles are pulled.
	AttractionRadius = 150.0
	// AttractionPull is the fraction of the raw pointer offset applied per update.
	AttractionPull = 0.01
)

var (
	// ColorGold is the fixed particle color in ModeMagic.
	ColorGold = rgbHex(0xD4AF37)

	particleSpeed   = Range{-0.25, 0.25}
	particleOpacity = Range{0.1, 0.6}
	magicSize       = Range{0.5, 2.5}
	popSize         = Range{0.5, 5.5}
	popHue          = Range{320, 380}
)

// goldHue is the hue of ColorGold in degrees.
const goldHue = 46

// Particle is one ambient point of the field. Size is the circle radius and
// Hue is the unwrapped hue the color was sampled from.
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Size           float64
	Opacity        float64
	Hue            float64
	Color          Color
}

// Field owns a fixed-size particle collection and the current Mode. The
// collection never grows or shrinks; Reset rewrites a particle in place.
type Field struct {
	particles     []Particle
	width, height float64
	mode          Mode
	rng           *rand.Rand
}

// NewField creates count particles, each independently reset within a
// width x height surface. count <= 0 selects DefaultParticleCount and a nil
// rng selects a randomly seeded source.
func NewField(count int, width, height float64, rng *rand.Rand) *Field {
	if count <= 0 {
		count = DefaultParticleCount
	}
	if rng == nil {
		rng = newRand()
	}
	f := &Field{
		particles: make([]Particle, count),
		width:     width,
		height:    height,
		rng:       rng,
	}
	f.ResetAll()
	return f
}

// Reset gives p a fresh random state for the current mode and bounds.
func (f *Field) Reset(p *Particle) {
	p.X = f.rng.Float64() * f.width
	p.Y = f.rng.Float64() * f.height
	p.SpeedX = particleSpeed.Random(f.rng)
	p.SpeedY = particleSpeed.Random(f.rng)
	p.Opacity = particleOpacity.Random(f.rng)

	switch f.mode {
	case ModePop:
		p.Size = popSize.Random(f.rng)
		p.Hue = popHue.Random(f.rng)
		p.Color = hslColor(p.Hue, 1, 0.65)
	default:
		p.Size = magicSize.Random(f.rng)
		p.Hue = goldHue
		p.Color = ColorGold
	}
}

// ResetAll resets every particle in collection order.
func (f *Field) ResetAll() {
	for i := range f.particles {
		f.Reset(&f.particles[i])
	}
}

// Update pulls p toward pointer when it is within AttractionRadius, then
// advances it by its velocity. A particle that leaves the bounds on either
// axis is reset rather than clamped or wrapped. Update reports whether a
// reset happened.
//
// The pull is proportional to the raw offset, so particles near the edge of
// the radius move further per update than particles close to the pointer.
func (f *Field) Update(p *Particle, pointer Vec2) bool {
	dx := pointer.X - p.X
	dy := pointer.Y - p.Y
	if math.Hypot(dx, dy) < AttractionRadius {
		p.X += dx * AttractionPull
		p.Y += dy * AttractionPull
	}

	p.X += p.SpeedX
	p.Y += p.SpeedY

	if !f.InBounds(p.X, p.Y) {
		f.Reset(p)
		return true
	}
	return false
}

// Render paints p onto s. The surface is not cleared.
func (f *Field) Render(p *Particle, s Surface) {
	s.FillCircle(p.X, p.Y, p.Size, p.Color.WithAlpha(p.Color.A*p.Opacity))
}

// InBounds reports whether (x, y) lies in [0, width) x [0, height).
func (f *Field) InBounds(x, y float64) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// SetMode switches the field's mode and resets every particle so the new
// style applies uniformly. Setting the current mode again is a no-op.
// SetMode reports whether the mode changed.
func (f *Field) SetMode(m Mode) bool {
	if m == f.mode {
		return false
	}
	f.mode = m
	f.ResetAll()
	return true
}

// Mode returns the current mode.
func (f *Field) Mode() Mode {
	return f.mode
}

// Resize changes the bounds. Particle positions are left as they are, so
// after a shrink some particles sit outside until their next update resets
// them.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Bounds returns the current width and height.
func (f *Field) Bounds() (float64, float64) {
	return f.width, f.height
}

// Particles returns the particle collection. The returned slice MUST NOT be
// resized.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the fixed particle count.
func (f *Field) Len() int {
	return len(f.particles)
}
