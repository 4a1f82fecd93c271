package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/phanxgames/pretender"
	"github.com/phanxgames/pretender/ecs"
)

// sessionID tags every log line of one run.
type sessionID string

type app struct {
	scene  *pretender.Scene
	census *ecs.CensusTracker
	run    pretender.RunConfig
	logger *zap.Logger
}

func newApp(scene *pretender.Scene, census *ecs.CensusTracker, cfg pretender.Config, logger *zap.Logger) *app {
	return &app{
		scene:  scene,
		census: census,
		run:    pretender.RunConfigFrom(cfg),
		logger: logger,
	}
}

func provideSession() sessionID {
	return sessionID(uuid.NewString())
}

func provideLogger(cfg pretender.Config, session sessionID) (*zap.Logger, func(), error) {
	logger, err := cfg.Log.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	logger = logger.With(zap.String("session", string(session)))
	return logger, func() { _ = logger.Sync() }, nil
}

func provideRand(cfg pretender.Config) *rand.Rand {
	return cfg.NewRand()
}

func provideStage() (*pretender.ShaderStage, func(), error) {
	stage, err := pretender.NewShaderStage(pretender.DefaultCRTShader)
	if err != nil {
		return nil, nil, err
	}
	return stage, stage.Dispose, nil
}

func provideTextures(ctx context.Context, cfg pretender.Config, rng *rand.Rand) (*pretender.TexturePool, func(), error) {
	seed, _ := cfg.SeedValues()
	pool, err := pretender.NewTexturePool(ctx, cfg.Textures, seed, rng)
	if err != nil {
		return nil, nil, err
	}
	return pool, pool.Dispose, nil
}

func provideBackdrop(cfg pretender.Config, rng *rand.Rand) (pretender.Backdrop, func()) {
	w, h := cfg.Window.Width, cfg.Window.Height
	b := pretender.NewBackdrop(w, h, cfg.Street.Rect(w, h), cfg.Backdrop, rng)
	return b, b.Dispose
}

func provideWorld() donburi.World {
	return donburi.NewWorld()
}

func provideSink(world donburi.World) *ecs.DonburiSink {
	return ecs.NewDonburiSink(world)
}

func provideCensus(world donburi.World) *ecs.CensusTracker {
	return ecs.NewCensus(world)
}

func provideScript(cfg pretender.Config) (*pretender.Script, error) {
	if cfg.Script == "" {
		return nil, nil
	}
	return pretender.LoadScript(cfg.Script)
}

func provideScene(opts pretender.SceneOptions) (*pretender.Scene, func(), error) {
	scene, err := pretender.NewScene(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("creating scene: %w", err)
	}
	return scene, scene.Dispose, nil
}
