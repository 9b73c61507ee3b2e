package sparkle

// syntheticEvent represents a single injected input event in screen
// coordinates. Wheel events carry a scroll delta in pixels instead.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	wheel   bool
	dy      float64
}

// InjectMove queues a pointer move to the given screen coordinates with no
// button held. The event is consumed on the next frame's processInput call.
func (p *Page) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectPress queues a pointer press at the given screen coordinates.
func (p *Page) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (p *Page) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (p *Page) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectScroll queues a scroll by dy pixels. Positive scrolls down.
func (p *Page) InjectScroll(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{wheel: true, dy: dy})
}

// InjectPending returns the number of queued synthetic events.
func (p *Page) InjectPending() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same path as real input. Returns true if an event was consumed
// (real mouse input should be skipped).
func (p *Page) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	if evt.wheel {
		p.scroll.ScrollBy(evt.dy)
		return true
	}
	p.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
