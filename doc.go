// Package pretender is an ambient "living street" simulation for [Ebitengine].
//
// Villagers spawn at the right edge of a street band, wander left in small
// eased steps, and are retired when they leave the street or are clicked.
// The street is drawn into an offscreen buffer and presented through a
// post-process shader whose ambient tint drifts between day and night.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage, _ := pretender.NewShaderStage(pretender.DefaultCRTShader)
//	cfg := pretender.DefaultConfig()
//	scene, err := pretender.NewScene(pretender.SceneOptions{Config: cfg, Stage: stage})
//	if err != nil {
//		log.Fatal(err)
//	}
//	pretender.Run(scene, pretender.RunConfigFrom(cfg))
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Tick order
//
// [Scene.Update] runs, in order: the deferred registry flush, the session
// script, the [Spawner], every villager's behavior, the [TweenManager]
// (positions and the ambient color), animation frames, and off-street
// retirement. [Scene.Draw] then runs the [Compositor]'s two passes.
//
// # Building blocks
//
// Entities live in a [Registry] and are recycled through a [Pool]. Removal
// is deferred: [Registry.Remove] marks an entity and [Registry.Flush]
// compacts at the start of the next tick, so passes over the registry are
// never disturbed mid-iteration. A [Detector] answers point queries with a
// linear scan and strict-interior containment.
//
// Motion and color changes are [Tween]s on typed targets ([EntityTarget],
// [ColorTarget]) built on [gween]. The [DayNightCycle] is three infinite
// yoyo tweens, one per color channel.
//
// Lifecycle events go to an [EventSink]; the pretender/ecs package publishes
// them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package pretender
