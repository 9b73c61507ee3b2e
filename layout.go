package sparkle

const (
	defaultButtonW    = 140.0
	defaultButtonH    = 44.0
	musicButtonSize   = 50.0
	musicButtonMargin = 20.0
	// titleY is where a section's title sits, as a fraction of its height.
	titleY = 0.2
)

// Button is a clickable trigger. Rect is in document coordinates, or in
// screen coordinates when Fixed is set. Scale and Rotation are animated by
// the charm and surprise triggers.
type Button struct {
	Label    string
	Action   string
	Arg      string
	Rect     Rect
	Fixed    bool
	Scale    float64
	Rotation float64

	cfg ButtonConfig
}

// ScreenRect returns the button rectangle in screen coordinates for a scroll
// offset.
func (b *Button) ScreenRect(scrollY float64) Rect {
	r := b.Rect
	if !b.Fixed {
		r.Y -= scrollY
	}
	return r
}

// section is one laid-out block of the page.
type section struct {
	cfg      SectionConfig
	docY     float64
	height   float64
	title    *Reveal
	parallax []*ParallaxItem
	pcfg     []ParallaxConfig
}

// buildSections creates sections, buttons and the fixed music button. Geometry
// is filled in by layout.
func (p *Page) buildSections() {
	p.sections = p.sections[:0]
	p.buttons = p.buttons[:0]
	for _, sc := range p.cfg.Sections {
		s := &section{cfg: sc, title: newReveal(0), pcfg: sc.Parallax}
		for _, pc := range sc.Parallax {
			s.parallax = append(s.parallax, &ParallaxItem{Speed: pc.Speed, Height: pc.Size * 2})
		}
		for _, bc := range sc.Buttons {
			p.buttons = append(p.buttons, &Button{
				Label:  bc.Label,
				Action: bc.Action,
				Arg:    bc.Arg,
				Scale:  1,
				cfg:    bc,
			})
		}
		p.sections = append(p.sections, s)
	}
	p.musicButton = &Button{Label: "music", Action: ActionMusic, Fixed: true, Scale: 1}
	p.buttons = append(p.buttons, p.musicButton)
}

// layout positions everything for the current viewport and returns the
// document height.
func (p *Page) layout() float64 {
	vw, vh := float64(p.width), float64(p.height)
	y := 0.0
	bi := 0
	for _, s := range p.sections {
		s.docY = y
		s.height = s.cfg.Height * vh
		s.title.DocY = y + s.height*titleY
		for i, it := range s.parallax {
			pc := s.pcfg[i]
			it.DocY = y + pc.Y*s.height - pc.Size
		}
		for range s.cfg.Buttons {
			b := p.buttons[bi]
			bi++
			w, h := b.cfg.Width, b.cfg.Height
			if w <= 0 {
				w = defaultButtonW
			}
			if h <= 0 {
				h = defaultButtonH
			}
			b.Rect = Rect{
				X:      b.cfg.X*vw - w/2,
				Y:      y + b.cfg.Y*s.height - h/2,
				Width:  w,
				Height: h,
			}
		}
		y += s.height
	}
	p.musicButton.Rect = Rect{
		X:      vw - musicButtonSize - musicButtonMargin,
		Y:      musicButtonMargin,
		Width:  musicButtonSize,
		Height: musicButtonSize,
	}
	return y
}

// hitTest returns the topmost button under the screen point, fixed buttons
// first.
func (p *Page) hitTest(x, y float64) *Button {
	scrollY := p.scroll.Offset()
	for i := len(p.buttons) - 1; i >= 0; i-- {
		b := p.buttons[i]
		if b.Fixed && b.ScreenRect(scrollY).Contains(x, y) {
			return b
		}
	}
	for i := len(p.buttons) - 1; i >= 0; i-- {
		b := p.buttons[i]
		if !b.Fixed && b.ScreenRect(scrollY).Contains(x, y) {
			return b
		}
	}
	return nil
}

// buttonsFor returns every button bound to action.
func (p *Page) buttonsFor(action string) []*Button {
	var out []*Button
	for _, b := range p.buttons {
		if b.Action == action {
			out = append(out, b)
		}
	}
	return out
}
