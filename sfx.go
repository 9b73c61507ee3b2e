package sparkle

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound effect ids.
const (
	SfxMagic    = "magic"
	SfxConfetti = "confetti"
	SfxCheer    = "cheer"
	SfxFirework = "firework"
)

// voice is one enveloped tone or noise layer of an effect.
type voice struct {
	freq     float64 // 0 selects white noise
	start    time.Duration
	length   time.Duration
	decay    float64 // exponential decay per second
	gain     float64
	attackMs float64
}

type sfxDef struct {
	voices []voice
}

var sfxDefs = map[string]sfxDef{
	SfxMagic: {voices: []voice{
		{freq: 987.77, length: 120 * time.Millisecond, decay: 8, gain: 0.5, attackMs: 4},
		{freq: 1318.51, start: 90 * time.Millisecond, length: 140 * time.Millisecond, decay: 8, gain: 0.45, attackMs: 4},
		{freq: 1975.53, start: 190 * time.Millisecond, length: 320 * time.Millisecond, decay: 6, gain: 0.35, attackMs: 4},
	}},
	SfxConfetti: {voices: []voice{
		{freq: 0, length: 180 * time.Millisecond, decay: 22, gain: 0.6, attackMs: 1},
		{freq: 220, length: 80 * time.Millisecond, decay: 30, gain: 0.4, attackMs: 1},
	}},
	SfxCheer: {voices: []voice{
		{freq: 0, length: 900 * time.Millisecond, decay: 2.5, gain: 0.35, attackMs: 120},
		{freq: 523.25, length: 600 * time.Millisecond, decay: 4, gain: 0.15, attackMs: 40},
		{freq: 659.25, start: 60 * time.Millisecond, length: 600 * time.Millisecond, decay: 4, gain: 0.12, attackMs: 40},
	}},
	SfxFirework: {voices: []voice{
		{freq: 70, length: 350 * time.Millisecond, decay: 9, gain: 0.8, attackMs: 2},
		{freq: 0, start: 40 * time.Millisecond, length: 700 * time.Millisecond, decay: 5, gain: 0.45, attackMs: 6},
	}},
}

// melodyNotes is the fallback background loop, one note per beat.
var melodyNotes = []float64{261.63, 329.63, 392.00, 523.25, 493.88, 440.00, 392.00, 329.63}

const melodyBeat = 400 * time.Millisecond

// render mixes the voices into 16-bit little-endian stereo PCM.
func (d sfxDef) render(rate int) ([]byte, error) {
	sr := beep.SampleRate(rate)
	var total time.Duration
	for _, v := range d.voices {
		total = max(total, v.start+v.length)
	}

	layers := make([]beep.Streamer, 0, len(d.voices))
	for _, v := range d.voices {
		s, err := v.streamer(sr)
		if err != nil {
			return nil, err
		}
		layers = append(layers, beep.Seq(beep.Silence(sr.N(v.start)), s))
	}
	return renderPCM(beep.Mix(layers...), sr.N(total)), nil
}

// streamer returns the voice as a finite, enveloped streamer.
func (v voice) streamer(sr beep.SampleRate) (beep.Streamer, error) {
	var src beep.Streamer
	if v.freq > 0 {
		tone, err := generators.SineTone(sr, v.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", v.freq, err)
		}
		src = tone
	} else {
		src = noise()
	}
	n := sr.N(v.length)
	shaped := envelope(beep.Take(n, src), sr, v.attackMs, v.decay)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(v.gain)}, nil
}

// noise is an endless white noise streamer.
func noise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

// envelope applies a linear attack followed by exponential decay.
func envelope(s beep.Streamer, sr beep.SampleRate, attackMs, decay float64) beep.Streamer {
	attack := float64(sr) * attackMs / 1000
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			t := float64(pos) / float64(sr)
			g := math.Exp(-decay * t)
			if attack > 0 && float64(pos) < attack {
				g *= float64(pos) / attack
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// synthMelody renders the fallback background loop.
func synthMelody(rate int) ([]byte, error) {
	sr := beep.SampleRate(rate)
	notes := make([]beep.Streamer, 0, len(melodyNotes))
	for _, f := range melodyNotes {
		root, err := voice{freq: f, length: melodyBeat, decay: 1.5, gain: 0.25, attackMs: 10}.streamer(sr)
		if err != nil {
			return nil, err
		}
		third, err := voice{freq: f * 1.25, length: melodyBeat, decay: 1.5, gain: 0.12, attackMs: 10}.streamer(sr)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Mix(root, third))
	}
	return renderPCM(beep.Seq(notes...), sr.N(melodyBeat)*len(melodyNotes)), nil
}

// renderPCM drains up to n samples from s into 16-bit little-endian stereo.
func renderPCM(s beep.Streamer, n int) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, n*4)
	for n > 0 {
		chunk := buf[:min(len(buf), n)]
		got, ok := s.Stream(chunk)
		for _, smp := range chunk[:got] {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Max(-1, math.Min(1, smp[ch])) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		n -= got
		if !ok || got == 0 {
			break
		}
	}
	return out
}
