package sparkle

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsCounter caches the FPS/TPS readout, refreshed about every 0.5 seconds.
type fpsCounter struct {
	since float64
	text  string
}

func (f *fpsCounter) tick(dt float64) {
	f.since += dt
	if f.since < 0.5 && f.text != "" {
		return
	}
	f.since = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsCounter) draw(dst *ebiten.Image) {
	ebitenutil.DebugPrintAt(dst, f.text, 8, dst.Bounds().Dy()-40)
}
