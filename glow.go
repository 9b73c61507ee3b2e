package sparkle

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

const (
	glowFollowDuration = 0.6
	glowTintDuration   = 1.0
	glowRings          = 10
	// glowFade is the fraction of the radius at which the glow is transparent.
	glowFade = 0.7
)

var (
	glowMagic = Color{R: 212.0 / 255, G: 175.0 / 255, B: 55.0 / 255, A: 0.1}
	glowPop   = Color{R: 1, G: 0, B: 127.0 / 255, A: 0.15}
)

// glowTint returns the cursor glow color for a mode.
func glowTint(m Mode) Color {
	if m == ModePop {
		return glowPop
	}
	return glowMagic
}

// Glow is the soft light that trails the pointer.
type Glow struct {
	Pos    Vec2
	Color  Color
	Radius float64

	move *TweenGroup
	tint *TweenGroup
}

func newGlow(radius float64) *Glow {
	return &Glow{Color: glowMagic, Radius: radius}
}

// Follow restarts the trailing animation toward the pointer, dropping any
// animation already in progress.
func (g *Glow) Follow(to Vec2) {
	g.move = TweenPosition(&g.Pos, to, glowFollowDuration, ease.OutQuart)
}

// SetTint fades the glow to c.
func (g *Glow) SetTint(c Color) {
	g.tint = TweenColor(&g.Color, c, glowTintDuration, ease.OutQuad)
}

func (g *Glow) update(dt float32) {
	if g.move != nil {
		g.move.Update(dt)
		if g.move.Done {
			g.move = nil
		}
	}
	if g.tint != nil {
		g.tint.Update(dt)
		if g.tint.Done {
			g.tint = nil
		}
	}
}

// draw approximates a radial gradient with stacked translucent discs.
func (g *Glow) draw(dst *ebiten.Image) {
	step := g.Color.A / glowRings
	for i := 0; i < glowRings; i++ {
		r := g.Radius * glowFade * (1 - float64(i)/glowRings)
		c := g.Color.WithAlpha(step)
		vector.DrawFilledCircle(dst, float32(g.Pos.X), float32(g.Pos.Y), float32(r), c.toRGBA(), true)
	}
}
