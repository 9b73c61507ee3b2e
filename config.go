package sparkle

import (
	"encoding/json"
	"fmt"
)

// Button actions.
const (
	ActionCelebrate = "celebrate"
	ActionPop       = "pop"
	ActionSpell     = "spell"
	ActionSurprise  = "surprise"
	ActionMusic     = "music"
)

// ButtonConfig places a trigger button inside a section. X and Y are
// fractions of the section's width and height locating the button center.
type ButtonConfig struct {
	Label  string  `json:"label"`
	Action string  `json:"action"`
	Arg    string  `json:"arg,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// ParallaxConfig places a drifting decoration inside a section. X and Y are
// section fractions; Size is the radius in pixels.
type ParallaxConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Speed float64 `json:"speed,omitempty"`
}

// SectionConfig is one block of the scrolling page. Height is measured in
// viewport heights.
type SectionConfig struct {
	Title    string           `json:"title"`
	Body     string           `json:"body,omitempty"`
	Height   float64          `json:"height"`
	Buttons  []ButtonConfig   `json:"buttons,omitempty"`
	Parallax []ParallaxConfig `json:"parallax,omitempty"`
}

// Config holds every tunable of a Page and its window.
type Config struct {
	Title         string          `json:"title"`
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	ParticleCount int             `json:"particleCount"`
	MaxConfetti   int             `json:"maxConfetti"`
	MusicPath     string          `json:"musicPath,omitempty"`
	ScrollStep    float64         `json:"scrollStep"`
	GlowRadius    float64         `json:"glowRadius"`
	ShowFPS       bool            `json:"showFPS"`
	Debug         bool            `json:"debug"`
	ScreenshotDir string          `json:"screenshotDir"`
	Sections      []SectionConfig `json:"sections"`
}

// DefaultConfig returns the built-in page.
func DefaultConfig() Config {
	return Config{
		Title:         "Sparkle",
		Width:         1024,
		Height:        720,
		ParticleCount: DefaultParticleCount,
		MaxConfetti:   4096,
		ScrollStep:    60,
		GlowRadius:    200,
		ScreenshotDir: "screenshots",
		Sections: []SectionConfig{
			{
				Title:  "A little bit of magic",
				Body:   "Scroll down. Move the mouse to stir the sparks.",
				Height: 1,
				Parallax: []ParallaxConfig{
					{X: 0.15, Y: 0.7, Size: 18, Speed: 0.3},
					{X: 0.85, Y: 0.4, Size: 28, Speed: 0.8},
				},
			},
			{
				Title:  "Cast a charm",
				Height: 1,
				Buttons: []ButtonConfig{
					{Label: "Wingardium", Action: ActionSpell, Arg: "wingardium", X: 0.25, Y: 0.55},
					{Label: "Lumos", Action: ActionSpell, Arg: "lumos", X: 0.5, Y: 0.55},
					{Label: "Alohomora", Action: ActionSpell, Arg: "alohomora", X: 0.75, Y: 0.55},
				},
				Parallax: []ParallaxConfig{{X: 0.1, Y: 0.2, Size: 22}},
			},
			{
				Title:  "Time to celebrate",
				Height: 1,
				Buttons: []ButtonConfig{
					{Label: "Celebrate!", Action: ActionCelebrate, X: 0.5, Y: 0.45},
					{Label: "Balloon", Action: ActionPop, Arg: "🎈", X: 0.35, Y: 0.7},
					{Label: "Party", Action: ActionPop, Arg: "🎉", X: 0.65, Y: 0.7},
				},
				Parallax: []ParallaxConfig{
					{X: 0.9, Y: 0.8, Size: 34, Speed: 0.6},
				},
			},
			{
				Title:  "One more thing",
				Body:   "Open the gift.",
				Height: 1.2,
				Buttons: []ButtonConfig{
					{Label: "Surprise", Action: ActionSurprise, X: 0.5, Y: 0.55, Width: 120, Height: 120},
				},
			},
		},
	}
}

// LoadConfig overlays JSON onto DefaultConfig and validates the result.
// A "sections" key replaces the default sections entirely.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	case c.ParticleCount < 0:
		return fmt.Errorf("config: particleCount %d is negative", c.ParticleCount)
	case c.MaxConfetti < 0:
		return fmt.Errorf("config: maxConfetti %d is negative", c.MaxConfetti)
	case c.ScrollStep <= 0:
		return fmt.Errorf("config: scrollStep %v must be positive", c.ScrollStep)
	case len(c.Sections) == 0:
		return fmt.Errorf("config: no sections")
	}
	for i, s := range c.Sections {
		if s.Height <= 0 {
			return fmt.Errorf("config: section %d: height %v must be positive", i, s.Height)
		}
		for j, b := range s.Buttons {
			switch b.Action {
			case ActionCelebrate, ActionPop, ActionSpell, ActionSurprise, ActionMusic:
			default:
				return fmt.Errorf("config: section %d button %d: unknown action %q", i, j, b.Action)
			}
		}
	}
	return nil
}
