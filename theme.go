package sparkle

import "github.com/hajimehoshi/ebiten/v2"

// ModeThreshold is the scroll progress above which the page is in ModePop.
const ModeThreshold = 0.5

// Gradient is a vertical two-stop background.
type Gradient struct {
	Top, Bottom Color
}

var themeBands = [3]Gradient{
	{Top: rgbHex(0x0a0a0f), Bottom: rgbHex(0x0f0c29)},
	{Top: rgbHex(0x0f0c29), Bottom: rgbHex(0x1a1b3a)},
	{Top: rgbHex(0x1a1b3a), Bottom: rgbHex(0x2e1a3a)},
}

// ThemeFor returns the background for a scroll progress: one band below
// 0.3, one for [0.3, 0.7) and one from 0.7 up.
func ThemeFor(progress float64) Gradient {
	switch {
	case progress < 0.3:
		return themeBands[0]
	case progress < 0.7:
		return themeBands[1]
	default:
		return themeBands[2]
	}
}

// ModeFor returns the mode a progress value selects. There is a single
// threshold and no hysteresis.
func ModeFor(progress float64) Mode {
	if progress > ModeThreshold {
		return ModePop
	}
	return ModeMagic
}

// drawGradient fills dst with g using a vertex-colored quad.
func drawGradient(dst *ebiten.Image, g Gradient) {
	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	top, bot := g.Top, g.Bottom
	vs := []ebiten.Vertex{
		{DstX: 0, DstY: 0, SrcX: 0, SrcY: 0, ColorR: float32(top.R), ColorG: float32(top.G), ColorB: float32(top.B), ColorA: 1},
		{DstX: w, DstY: 0, SrcX: 1, SrcY: 0, ColorR: float32(top.R), ColorG: float32(top.G), ColorB: float32(top.B), ColorA: 1},
		{DstX: 0, DstY: h, SrcX: 0, SrcY: 1, ColorR: float32(bot.R), ColorG: float32(bot.G), ColorB: float32(bot.B), ColorA: 1},
		{DstX: w, DstY: h, SrcX: 1, SrcY: 1, ColorR: float32(bot.R), ColorG: float32(bot.G), ColorB: float32(bot.B), ColorA: 1},
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 1, 2, 3}, WhitePixel, nil)
}
