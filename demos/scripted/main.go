// Scripted plays a JSON scenario against an ink blot without opening a
// window and writes the screenshots it asks for. It steps at a fixed 60 Hz
// so runs are reproducible.
//
//	go run ./demos/scripted -script demos/scripted/tour.json -out docs/demos/scripted
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/phanxgames/inkblot"
)

const (
	tps       = 60
	maxFrames = 60 * 60
)

func main() {
	scriptPath := flag.String("script", "demos/scripted/tour.json", "JSON scenario script")
	configPath := flag.String("config", "", "TOML config file")
	outDir := flag.String("out", "screenshots", "screenshot directory")
	debug := flag.Bool("debug", false, "log sequence and render diagnostics")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	inkblot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := inkblot.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = inkblot.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	cfg.Debug = cfg.Debug || *debug

	data, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("failed to read script: %v", err)
	}
	runner, err := inkblot.LoadScenario(data)
	if err != nil {
		log.Fatal(err)
	}

	d := inkblot.NewDriver(cfg)
	d.ScreenshotDir = *outDir

	const dt = 1.0 / tps
	for !runner.Done() && d.Frame() < maxFrames {
		runner.Step(d)
		d.Step(dt)
	}
	if !runner.Done() {
		log.Fatalf("scenario did not finish within %d frames", maxFrames)
	}
	inkblot.Logger().Info("scenario finished", slog.Int("frames", d.Frame()))
}
