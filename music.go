package sparkle

// Music button icons.
const (
	IconSpeaker = "🔊"
	IconPause   = "⏸"
	IconWarning = "⚠️"
)

// MusicToggle is the two-state background music button. At most one play
// request is in flight; its result is collected by Poll on the UI goroutine.
type MusicToggle struct {
	track   MusicTrack
	state   *State
	pending <-chan error
	icon    string
	glow    bool

	// OnError receives every failed play or load attempt.
	OnError func(err error)
	// OnStart runs after playback starts.
	OnStart func()
}

// NewMusicToggle binds a toggle to track. The playing flag lives in state.
func NewMusicToggle(track MusicTrack, state *State) *MusicToggle {
	return &MusicToggle{track: track, state: state, icon: IconSpeaker}
}

// Click toggles playback. While a play request is in flight, clicks are
// ignored.
func (m *MusicToggle) Click() {
	if m.pending != nil {
		return
	}
	if m.state.Playing {
		m.track.Pause()
		m.icon = IconSpeaker
		m.glow = false
		m.state.Playing = false
		return
	}
	if !m.track.Ready() {
		if err := m.track.Load(); err != nil {
			m.fail(err)
			return
		}
	}
	m.pending = m.track.Play()
}

// Poll collects the result of an in-flight play request without blocking.
func (m *MusicToggle) Poll() {
	if m.pending == nil {
		return
	}
	select {
	case err := <-m.pending:
		m.pending = nil
		if err != nil {
			m.fail(err)
			return
		}
		m.icon = IconPause
		m.glow = true
		m.state.Playing = true
		if m.OnStart != nil {
			m.OnStart()
		}
	default:
	}
}

func (m *MusicToggle) fail(err error) {
	m.icon = IconWarning
	if m.OnError != nil {
		m.OnError(err)
	}
}

// Icon returns the current button glyph.
func (m *MusicToggle) Icon() string {
	return m.icon
}

// Glowing reports whether the button glow is on.
func (m *MusicToggle) Glowing() bool {
	return m.glow
}

// Pending reports whether a play request is in flight.
func (m *MusicToggle) Pending() bool {
	return m.pending != nil
}
