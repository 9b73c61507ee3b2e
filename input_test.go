package sparkle

import "testing"

func TestProcessPointerClickOnRelease(t *testing.T) {
	tp := newTestPage()
	c := tp.buttonCenter(t, ActionCelebrate)

	tp.processPointer(c.X, c.Y, true)
	if tp.pressed == nil || tp.pressed.Action != ActionCelebrate {
		t.Fatalf("pressed = %+v, want celebrate button", tp.pressed)
	}
	if tp.ActiveBursts() != 0 {
		t.Fatal("celebration started on press")
	}
	tp.processPointer(c.X, c.Y, false)
	if tp.ActiveBursts() != 1 {
		t.Errorf("bursts = %d after release, want 1", tp.ActiveBursts())
	}
	if tp.pressed != nil {
		t.Error("pressed not cleared after release")
	}
}

func TestProcessPointerDragOffAndBack(t *testing.T) {
	tp := newTestPage()
	c := tp.buttonCenter(t, ActionSurprise)

	tp.processPointer(c.X, c.Y, true)
	tp.processPointer(2, 2, true)
	tp.processPointer(c.X+1, c.Y+1, true)
	tp.processPointer(c.X+1, c.Y+1, false)
	if got := len(tp.sink.named(ActionSurprise)); got != 1 {
		t.Errorf("surprise events = %d, want 1", got)
	}
}

func TestProcessPointerHeldDoesNotRepeat(t *testing.T) {
	tp := newTestPage()
	c := tp.buttonCenter(t, ActionSurprise)
	for i := 0; i < 5; i++ {
		tp.processPointer(c.X, c.Y, true)
	}
	tp.processPointer(c.X, c.Y, false)
	tp.processPointer(c.X, c.Y, false)
	if got := len(tp.sink.named(ActionSurprise)); got != 1 {
		t.Errorf("surprise events = %d, want 1", got)
	}
}

func TestButtonScreenRect(t *testing.T) {
	b := &Button{Rect: Rect{X: 10, Y: 500, Width: 100, Height: 40}}
	if r := b.ScreenRect(200); r.Y != 300 {
		t.Errorf("ScreenRect.Y = %v, want 300", r.Y)
	}
	b.Fixed = true
	if r := b.ScreenRect(200); r.Y != 500 {
		t.Errorf("fixed ScreenRect.Y = %v, want 500", r.Y)
	}
}

func TestLayoutStacksSections(t *testing.T) {
	tp := newTestPage()
	y := 0.0
	for i, s := range tp.sections {
		if s.docY != y {
			t.Errorf("section %d docY = %v, want %v", i, s.docY, y)
		}
		y += s.cfg.Height * float64(tp.height)
	}
	if want := y - float64(tp.height); tp.Scroll().maxOffset() != want {
		t.Errorf("max offset = %v, want %v", tp.Scroll().maxOffset(), want)
	}
}
