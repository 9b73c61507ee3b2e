package sparkle

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// processInput is called from Page.Update to handle pointer, wheel and
// keyboard input. Injected events take precedence over the real mouse.
func (p *Page) processInput() {
	if p.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	p.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.scroll.ScrollBy(-wy * p.cfg.ScrollStep)
	}

	page := float64(p.height) * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		p.scroll.ScrollBy(p.cfg.ScrollStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		p.scroll.ScrollBy(-p.cfg.ScrollStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.scroll.ScrollBy(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		p.scroll.ScrollBy(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		p.scroll.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		p.scroll.ScrollTo(p.scroll.maxOffset())
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.quit = true
	}
}

// processPointer feeds one pointer sample: a position change is a pointer
// move, and a release over the button that received the press is a click.
func (p *Page) processPointer(x, y float64, pressed bool) {
	if x != p.state.Pointer.X || y != p.state.Pointer.Y {
		p.pointerMove(x, y)
	}

	switch {
	case pressed && !p.pointerDown:
		p.pressed = p.hitTest(x, y)
	case !pressed && p.pointerDown:
		if hit := p.hitTest(x, y); hit != nil && hit == p.pressed {
			p.click(hit)
		}
		p.pressed = nil
	}
	p.pointerDown = pressed
}

func (p *Page) pointerMove(x, y float64) {
	p.state.Pointer = Vec2{x, y}
	p.glow.Follow(p.state.Pointer)
}

func (p *Page) click(b *Button) {
	if p.debug {
		p.logf("click %q (%s %s)", b.Label, b.Action, b.Arg)
	}
	p.Trigger(b.Action, b.Arg)
}
