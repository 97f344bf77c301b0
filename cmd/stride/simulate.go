package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
	"github.com/Carmen-Shannon/oxy-stride/engine/script"
)

func simulateCommand(configs []string, assets string, scripts []string, workers int, out string) error {
	cfg, err := loadConfig(configs, assets)
	if err != nil {
		return err
	}
	m, err := measure(cfg)
	if err != nil {
		return err
	}

	jobs := make([]script.Job, 0, len(scripts))
	for _, path := range scripts {
		s, err := script.LoadFile(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, script.Job{
			Script: s,
			NewScene: func() (scene.Scene, error) {
				return newScene(cfg, m)
			},
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := script.NewRunner(workers)
	results := runner.Run(ctx, jobs)

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := script.WriteTraces(w, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error().Err(r.Err).Str("script", r.Name).Msg("replay failed")
			continue
		}
		log.Info().Str("script", r.Name).Int("frames", len(r.Trace)).Msg("replayed")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(results))
	}
	return nil
}
