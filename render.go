package sparkle

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	debugGlyphW      = 6
	debugGlyphH      = 16
	progressBarH     = 3
	buttonGlowRadius = 20
)

var (
	colorPanel     = Color{R: 1, G: 1, B: 1, A: 0.06}
	colorButton    = Color{R: 0.12, G: 0.1, B: 0.25, A: 0.85}
	colorButtonHi  = Color{R: 0.83, G: 0.69, B: 0.22, A: 0.9}
	colorLoader    = rgbHex(0x0a0a0f)
	colorStatusBg  = Color{R: 0, G: 0, B: 0, A: 0.6}
	colorMusicGlow = Color{R: 212.0 / 255, G: 175.0 / 255, B: 55.0 / 255, A: 0.4}
)

// iconText maps music icons to glyphs the debug font can draw.
var iconText = map[string]string{
	IconSpeaker: "<))",
	IconPause:   "||",
	IconWarning: "!",
}

// Draw implements ebiten.Game. The particle frame requested by the loop runs
// here, once per displayed frame.
func (p *Page) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	drawGradient(screen, p.theme)
	p.drawSections(screen)
	p.drawButtons(screen)

	p.frames.Fire()
	if is, ok := p.surface.(*ImageSurface); ok && is.Image() != nil {
		screen.DrawImage(is.Image(), nil)
	}

	p.glow.draw(screen)
	p.emitter.Draw(screen)
	p.drawProgressBar(screen)
	p.drawMusicButton(screen)
	p.drawLoader(screen)
	p.drawStatus(screen)
	if p.cfg.ShowFPS {
		p.fps.draw(screen)
	}

	p.flushScreenshots(screen)

	if p.debug {
		p.debugLog(debugStats{drawTime: time.Since(t0)})
	}
}

func (p *Page) drawSections(dst *ebiten.Image) {
	scrollY := p.scroll.Offset()
	vw := float64(p.width)
	for _, s := range p.sections {
		top := s.docY - scrollY
		if top > float64(p.height) || top+s.height < 0 {
			continue
		}
		for i, it := range s.parallax {
			pc := s.pcfg[i]
			x := pc.X * vw
			y := it.DocY + pc.Size - scrollY + it.Offset
			c := glowTint(p.field.Mode()).WithAlpha(0.25)
			vector.DrawFilledCircle(dst, float32(x), float32(y), float32(pc.Size), c.toRGBA(), true)
		}

		r := s.title
		if r.Alpha <= 0.01 {
			continue
		}
		y := r.DocY - scrollY + r.OffsetY
		panel := colorPanel.WithAlpha(colorPanel.A * r.Alpha)
		vector.DrawFilledRect(dst, float32(vw*0.15), float32(y-12), float32(vw*0.7), 64, panel.toRGBA(), false)
		if r.Alpha > 0.5 {
			drawCenteredText(dst, s.cfg.Title, vw/2, y+4)
			if s.cfg.Body != "" {
				drawCenteredText(dst, s.cfg.Body, vw/2, y+26)
			}
		}
	}
}

func (p *Page) drawButtons(dst *ebiten.Image) {
	scrollY := p.scroll.Offset()
	for _, b := range p.buttons {
		if b.Fixed {
			continue
		}
		r := b.ScreenRect(scrollY)
		if r.Y > float64(p.height) || r.Y+r.Height < 0 {
			continue
		}
		c := colorButton
		if p.pressed == b {
			c = colorButtonHi
		}
		drawQuad(dst, r, b.Scale, b.Rotation, c)
		center := r.Center()
		drawCenteredText(dst, b.Label, center.X, center.Y-debugGlyphH/2)
	}
}

func (p *Page) drawMusicButton(dst *ebiten.Image) {
	b := p.musicButton
	c := b.Rect.Center()
	radius := float32(b.Rect.Width / 2)
	if p.music.Glowing() {
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), radius+buttonGlowRadius, colorMusicGlow.WithAlpha(0.15).toRGBA(), true)
	}
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), radius, colorButton.toRGBA(), true)
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y), radius, 1, colorButtonHi.toRGBA(), true)
	drawCenteredText(dst, iconText[p.music.Icon()], c.X, c.Y-debugGlyphH/2)
}

func (p *Page) drawProgressBar(dst *ebiten.Image) {
	w := float32(p.state.Progress * float64(p.width))
	if w <= 0 {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, w, progressBarH, glowTint(p.field.Mode()).WithAlpha(1).toRGBA(), false)
}

func (p *Page) drawLoader(dst *ebiten.Image) {
	if !p.loader.Visible {
		return
	}
	c := colorLoader.WithAlpha(p.loader.Alpha)
	vector.DrawFilledRect(dst, 0, 0, float32(p.width), float32(p.height), c.toRGBA(), false)
	if p.loader.Alpha > 0.5 {
		drawCenteredText(dst, "Loading...", float64(p.width)/2, float64(p.height)/2)
	}
}

func (p *Page) drawStatus(dst *ebiten.Image) {
	if p.status == "" {
		return
	}
	w := float64(len(p.status)*debugGlyphW + 16)
	x := (float64(p.width) - w) / 2
	y := float64(p.height) - 48
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), 24, colorStatusBg.toRGBA(), false)
	ebitenutil.DebugPrintAt(dst, p.status, int(x)+8, int(y)+4)
}

// drawQuad draws r scaled and rotated about its center.
func drawQuad(dst *ebiten.Image, r Rect, scale, rotation float64, c Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width*scale, r.Height*scale)
	op.GeoM.Translate(-r.Width*scale/2, -r.Height*scale/2)
	op.GeoM.Rotate(rotation)
	center := r.Center()
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(WhitePixel, &op)
}

func drawCenteredText(dst *ebiten.Image, s string, cx, y float64) {
	x := cx - float64(len(s)*debugGlyphW)/2
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}
