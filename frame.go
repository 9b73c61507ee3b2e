package sparkle

// Surface is the raster target particles are painted onto.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// FillCircle paints a filled circle of the given radius and color.
	FillCircle(x, y, radius float64, c Color)
}

// Scheduler runs a callback on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a one-slot Scheduler. The host fires it once per displayed
// frame (Page.Draw does so); tests fire it by hand.
type FrameQueue struct {
	next func()
}

// RequestFrame stores fn as the pending callback, replacing any earlier one.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.next = fn
}

// Pending returns the number of outstanding requests (0 or 1).
func (q *FrameQueue) Pending() int {
	if q.next != nil {
		return 1
	}
	return 0
}

// Fire runs the pending callback, if any, and reports whether one ran. The
// slot is emptied before the callback runs so it may request again.
func (q *FrameQueue) Fire() bool {
	fn := q.next
	if fn == nil {
		return false
	}
	q.next = nil
	fn()
	return true
}

// State is the page-wide mutable state shared by the orchestrator and the
// particle loop. It is only touched from the UI goroutine.
type State struct {
	Pointer  Vec2
	Progress float64
	Playing  bool
}

// Loop is the self-rescheduling particle frame driver.
type Loop struct {
	field   *Field
	surface Surface
	state   *State
	sched   Scheduler
	frames  int
	stopped bool
}

// NewLoop creates a loop that draws field onto surface, reading the pointer
// from state and rescheduling itself through sched.
func NewLoop(field *Field, surface Surface, state *State, sched Scheduler) *Loop {
	return &Loop{
		field:   field,
		surface: surface,
		state:   state,
		sched:   sched,
	}
}

// Start requests the first frame.
func (l *Loop) Start() {
	l.stopped = false
	l.sched.RequestFrame(l.RunFrame)
}

// Stop tears the loop down. A frame already requested becomes a no-op.
func (l *Loop) Stop() {
	l.stopped = true
}

// RunFrame clears the surface, updates and renders every particle in
// collection order, then requests the next frame. Work is bounded by the
// particle count and nothing blocks.
func (l *Loop) RunFrame() {
	if l.stopped {
		return
	}
	l.surface.Clear()
	ps := l.field.particles
	for i := range ps {
		l.field.Update(&ps[i], l.state.Pointer)
		l.field.Render(&ps[i], l.surface)
	}
	l.frames++
	l.sched.RequestFrame(l.RunFrame)
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() int {
	return l.frames
}
