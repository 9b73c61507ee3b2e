package sparkle

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a resizable window for p, starts the loader fade and runs the
// game loop until the window closes.
func Run(p *Page) error {
	ebiten.SetWindowTitle(p.cfg.Title)
	ebiten.SetWindowSize(p.cfg.Width, p.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	p.Load()
	if err := ebiten.RunGame(p); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	p.loop.Stop()
	return nil
}
