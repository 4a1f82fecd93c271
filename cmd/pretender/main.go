// Pretender runs the living street: villagers drift left along a street
// band under a CRT filter while the light cycles between day and night.
// Click a villager to retire it.
//
// Usage:
//
//	pretender [-config pretender.yaml] [-seed village] [-script session.yaml] [-debug]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/pretender"
)

func main() {
	configPath := flag.String("config", "pretender.yaml", "path to the YAML config (missing file uses defaults)")
	seed := flag.String("seed", "", "random seed; overrides the config")
	script := flag.String("script", "", "session script to run; overrides the config")
	debug := flag.Bool("debug", false, "show the FPS overlay and log per-frame stats")
	flag.Parse()

	if err := run(*configPath, *seed, *script, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "pretender:", err)
		os.Exit(1)
	}
}

func run(configPath, seed, script string, debug bool) error {
	cfg, err := pretender.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if seed != "" {
		cfg.Seed = seed
	}
	if script != "" {
		cfg.Script = script
	}
	if debug {
		cfg.Debug = true
		cfg.Log.Level = "debug"
	}

	a, cleanup, err := initApp(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer cleanup()

	a.logger.Info("starting",
		zap.String("config", configPath),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("debug", cfg.Debug))

	err = pretender.Run(a.scene, a.run)

	c := a.census.Snapshot()
	a.logger.Info("stopped",
		zap.Float64("elapsed", a.scene.Elapsed()),
		zap.Int("spawned", c.Spawned),
		zap.Int("killed", c.Killed),
		zap.Int("departed", c.Departed),
		zap.Int("live", c.Live()))
	return err
}
