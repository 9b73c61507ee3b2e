package sparkle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// SampleRate is the audio context rate used by the demo program.
const SampleRate = 44100

// playTimeout bounds how long a play request waits for the audio context to
// be unlocked by the host.
const playTimeout = 2 * time.Second

var (
	// ErrAudioUnavailable is returned when no audio context exists.
	ErrAudioUnavailable = errors.New("audio unavailable")
	// ErrAudioBlocked is returned when the host keeps the context suspended.
	ErrAudioBlocked = errors.New("audio blocked by host")
)

// MusicTrack is the background music element.
type MusicTrack interface {
	// Ready reports whether the track is loaded.
	Ready() bool
	// Load prepares the track for playback.
	Load() error
	// Play requests playback. The channel yields exactly one result.
	Play() <-chan error
	// Pause stops playback, keeping the position.
	Pause()
}

// SoundBank plays short one-shot effects by id.
type SoundBank interface {
	Play(id string) error
}

// Track is a looping MusicTrack on an ebiten audio context. With a path it
// decodes that MP3 file; without one it plays a synthesized melody.
type Track struct {
	ctx    *audio.Context
	path   string
	player *audio.Player
}

// NewTrack creates an unloaded track. ctx may be nil, in which case every
// load fails with ErrAudioUnavailable.
func NewTrack(ctx *audio.Context, path string) *Track {
	return &Track{ctx: ctx, path: path}
}

// Ready reports whether Load succeeded.
func (t *Track) Ready() bool {
	return t.player != nil
}

// Load decodes the track and creates its player.
func (t *Track) Load() error {
	if t.ctx == nil {
		return ErrAudioUnavailable
	}

	var loop *audio.InfiniteLoop
	if t.path != "" {
		data, err := os.ReadFile(t.path)
		if err != nil {
			return fmt.Errorf("load track: %w", err)
		}
		stream, err := mp3.DecodeWithSampleRate(t.ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode track %s: %w", t.path, err)
		}
		loop = audio.NewInfiniteLoop(stream, stream.Length())
	} else {
		pcm, err := synthMelody(t.ctx.SampleRate())
		if err != nil {
			return fmt.Errorf("synthesize track: %w", err)
		}
		loop = audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	}

	player, err := t.ctx.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	player.SetVolume(0.6)
	if t.player != nil {
		_ = t.player.Close()
	}
	t.player = player
	return nil
}

// Play starts the player and reports, asynchronously, whether the context
// became ready within playTimeout.
func (t *Track) Play() <-chan error {
	done := make(chan error, 1)
	if t.player == nil {
		done <- ErrAudioUnavailable
		return done
	}
	t.player.Play()
	go func() {
		deadline := time.Now().Add(playTimeout)
		for !t.ctx.IsReady() {
			if time.Now().After(deadline) {
				t.player.Pause()
				done <- fmt.Errorf("play: %w", ErrAudioBlocked)
				return
			}
			time.Sleep(20 * time.Millisecond)
		}
		done <- nil
	}()
	return done
}

// Pause pauses the player.
func (t *Track) Pause() {
	if t.player != nil {
		t.player.Pause()
	}
}

// SoundEffects is a SoundBank of synthesized one-shot players.
type SoundEffects struct {
	ctx     *audio.Context
	players map[string]*audio.Player
}

// NewSoundEffects synthesizes every effect in sfxDefs. A nil ctx yields a
// bank whose Play always fails with ErrAudioUnavailable.
func NewSoundEffects(ctx *audio.Context) (*SoundEffects, error) {
	s := &SoundEffects{ctx: ctx, players: map[string]*audio.Player{}}
	if ctx == nil {
		return s, nil
	}
	for id, def := range sfxDefs {
		pcm, err := def.render(ctx.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("sfx %s: %w", id, err)
		}
		s.players[id] = ctx.NewPlayerFromBytes(pcm)
	}
	return s, nil
}

// Play rewinds and plays the effect. Unknown ids are ignored.
func (s *SoundEffects) Play(id string) error {
	if s.ctx == nil {
		return ErrAudioUnavailable
	}
	p, ok := s.players[id]
	if !ok {
		return nil
	}
	if !s.ctx.IsReady() {
		return fmt.Errorf("sfx %s: %w", id, ErrAudioBlocked)
	}
	if err := p.SetPosition(0); err != nil {
		return fmt.Errorf("sfx %s: rewind: %w", id, err)
	}
	p.Play()
	return nil
}
