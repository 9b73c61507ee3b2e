package sparkle

// ScrollTracker maps a scroll offset over a document taller than the
// viewport to a progress value in [0, 1]. Progress is 0 with the document
// top at the viewport top and 1 with the document bottom at the viewport
// bottom.
type ScrollTracker struct {
	offset     float64
	docHeight  float64
	viewHeight float64
	last       float64
	listeners  []func(progress float64)
}

// OnUpdate registers fn to receive progress every time it changes.
func (t *ScrollTracker) OnUpdate(fn func(progress float64)) {
	t.listeners = append(t.listeners, fn)
}

// SetExtent sets document and viewport heights and re-clamps the offset.
func (t *ScrollTracker) SetExtent(docHeight, viewHeight float64) {
	t.docHeight = docHeight
	t.viewHeight = viewHeight
	t.ScrollTo(t.offset)
}

// ScrollBy moves the offset by dy pixels.
func (t *ScrollTracker) ScrollBy(dy float64) {
	t.ScrollTo(t.offset + dy)
}

// ScrollTo moves the offset to y, clamped to the scrollable range, and
// notifies listeners when progress changed.
func (t *ScrollTracker) ScrollTo(y float64) {
	t.offset = min(max(y, 0), t.maxOffset())
	p := t.Progress()
	if p == t.last {
		return
	}
	t.last = p
	for _, fn := range t.listeners {
		fn(p)
	}
}

// Offset returns the scroll offset in pixels.
func (t *ScrollTracker) Offset() float64 {
	return t.offset
}

// ViewHeight returns the viewport height.
func (t *ScrollTracker) ViewHeight() float64 {
	return t.viewHeight
}

// Progress returns the normalized scroll position.
func (t *ScrollTracker) Progress() float64 {
	m := t.maxOffset()
	if m <= 0 {
		return 0
	}
	return clamp01(t.offset / m)
}

func (t *ScrollTracker) maxOffset() float64 {
	return max(t.docHeight-t.viewHeight, 0)
}
