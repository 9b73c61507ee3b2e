// Package sparkle is a scrolling celebration page for [Ebitengine].
//
// A [Page] layers an ambient particle field over a tall, scrollable document
// of titled sections and trigger buttons. Scrolling past the halfway point
// switches the field from gold "magic" sparks to larger pink "pop" bubbles,
// and the buttons fire confetti effects, bounce charms and toggle background
// music.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	page := sparkle.NewPage(sparkle.DefaultConfig(), sparkle.Options{})
//	if err := sparkle.Run(page); err != nil {
//		log.Fatal(err)
//	}
//
// [Page] implements [ebiten.Game], so it can also be embedded in a host game
// that calls Update, Draw and Layout itself.
//
// # Particle field
//
// [Field] owns a fixed set of [Particle] values. Each frame the [Loop] clears
// its [Surface], updates every particle (pointer attraction, drift, reset on
// leaving the bounds) and paints it. The loop reschedules itself through a
// [Scheduler]; a [FrameQueue] holds at most one pending frame and the page
// fires it once per Draw.
//
// # Scroll and mode
//
// [ScrollTracker] maps the scroll offset to a progress value in [0, 1].
// [ThemeFor] picks the background band and [ModeFor] the particle mode; a
// mode change resets every particle so the new style applies at once.
//
// # Triggers
//
// Buttons call [Page.Celebrate], [Page.PopEffect], [Page.CastSpell],
// [Page.FinalSurprise] and [Page.ToggleMusic]. Confetti comes from a
// [Confetti] implementation, by default the pooled [ConfettiEmitter]. Timed
// effects run on [BurstTimer] values driven by the page tick, and tweens
// use [gween].
//
// # Audio
//
// [Track] plays an MP3 file or a built-in melody on an ebiten audio context;
// [SoundEffects] synthesizes one-shot effects with [beep]. Both sit behind
// the [MusicTrack] and [SoundBank] interfaces so tests can fake them.
//
// # Automation
//
// Input can be injected with [Page.InjectClick] and friends, and a
// [TestRunner] loaded from JSON sequences moves, clicks, scrolls, triggers
// and screenshots across frames. Trigger and mode change events can be
// forwarded to a [Donburi] world with the adapter in sparkle/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [beep]: https://github.com/gopxl/beep
// [Donburi]: https://github.com/yohamta/donburi
package sparkle
