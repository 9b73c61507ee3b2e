// celebration runs the full scrolling celebration page: ambient sparks that
// switch style halfway down, fireworks, charms, a final surprise and
// background music. Pass -script to drive it from a JSON test script.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/phanxgames/sparkle"
)

func main() {
	configPath := flag.String("config", "", "JSON page config overlaid on the defaults")
	musicPath := flag.String("music", "", "MP3 background track (default: built-in melody)")
	scriptPath := flag.String("script", "", "JSON test script to run")
	debug := flag.Bool("debug", false, "log per-frame timings")
	showFPS := flag.Bool("fps", false, "show the FPS counter")
	flag.Parse()

	cfg := sparkle.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if cfg, err = sparkle.LoadConfig(data); err != nil {
			log.Fatal(err)
		}
	}
	if *musicPath != "" {
		cfg.MusicPath = *musicPath
	}
	cfg.Debug = cfg.Debug || *debug
	cfg.ShowFPS = cfg.ShowFPS || *showFPS

	ctx := audio.NewContext(sparkle.SampleRate)
	sounds, err := sparkle.NewSoundEffects(ctx)
	if err != nil {
		log.Fatalf("sound effects: %v", err)
	}

	page := sparkle.NewPage(cfg, sparkle.Options{
		Music:  sparkle.NewTrack(ctx, cfg.MusicPath),
		Sounds: sounds,
	})

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := sparkle.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		page.SetTestRunner(runner)
	}

	if err := sparkle.Run(page); err != nil {
		log.Fatal(err)
	}
}
