package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Carmen-Shannon/oxy-stride/config"
	"github.com/Carmen-Shannon/oxy-stride/engine"
	"github.com/Carmen-Shannon/oxy-stride/engine/loader"
	"github.com/Carmen-Shannon/oxy-stride/engine/renderer"
	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
	"github.com/Carmen-Shannon/oxy-stride/engine/window"
)

// measure loads the three meshes the scene is laid out from.
func measure(cfg *config.Config) (scene.Measurements, error) {
	l := loader.NewLoader(loader.BackendTypeOBJ, loader.WithAssetDir(cfg.Assets.Dir))

	var m scene.Measurements
	for _, mesh := range []struct {
		file string
		out  *loader.Measurement
	}{
		{cfg.Assets.Goal, &m.Goal},
		{cfg.Assets.Dummy, &m.Dummy},
		{cfg.Assets.World, &m.World},
	} {
		measured, err := l.Measure(mesh.file)
		if err != nil {
			return scene.Measurements{}, err
		}
		*mesh.out = measured
	}
	return m, nil
}

// newScene builds a scene from measurements that were already taken.
func newScene(cfg *config.Config, m scene.Measurements) (scene.Scene, error) {
	opts, err := cfg.SceneOptions(len(m.Dummy.Parts))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Dummy.Name, err)
	}
	return scene.NewScene(m, opts...)
}

func runCommand(configs []string, assets string, frames uint64) error {
	cfg, err := loadConfig(configs, assets)
	if err != nil {
		return err
	}

	m, err := measure(cfg)
	if err != nil {
		return err
	}
	s, err := newScene(cfg, m)
	if err != nil {
		return err
	}

	for _, slot := range cfg.Textures() {
		log.Debug().Str("slot", slot.Name).Str("file", cfg.Assets.Path(slot.File)).Msg("texture")
	}
	for face, file := range cfg.Skybox().Faces {
		log.Debug().Int("face", face).Str("file", cfg.Assets.Path(file)).Msg("skybox")
	}

	w := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight),
	)
	defer w.Close()

	rec := renderer.NewRecorder(renderer.WithKeepLast(1))
	e := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithScene(s),
		engine.WithRenderer(rec),
		engine.WithProfiling(cfg.Window.Profile),
		engine.WithRenderFrameLimit(cfg.Window.FrameLimit),
		engine.WithMaxFrames(frames),
	)
	if err := e.Run(); err != nil {
		return err
	}

	log.Info().
		Uint64("frames", s.FrameCount()).
		Int("rendered", rec.Rendered()).
		Msg("window closed")
	return nil
}
