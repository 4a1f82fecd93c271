//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/phanxgames/pretender"
	"github.com/phanxgames/pretender/ecs"
)

func initApp(ctx context.Context, cfg pretender.Config) (*app, func(), error) {
	wire.Build(
		provideSession,
		provideLogger,
		provideRand,
		provideStage,
		provideTextures,
		provideBackdrop,
		provideWorld,
		provideSink,
		provideCensus,
		provideScript,
		provideScene,
		wire.Bind(new(pretender.PostProcess), new(*pretender.ShaderStage)),
		wire.Bind(new(pretender.TextureSource), new(*pretender.TexturePool)),
		wire.Bind(new(pretender.EventSink), new(*ecs.DonburiSink)),
		wire.Struct(new(pretender.SceneOptions), "*"),
		newApp,
	)
	return nil, nil, nil
}
