package script

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
)

// Job is one script to replay against a freshly built scene.
type Job struct {
	Script   Script
	NewScene func() (scene.Scene, error)
}

// Result is the outcome of one Job.
type Result struct {
	Name  string       `yaml:"name"`
	Trace []TraceFrame `yaml:"trace"`
	Err   error        `yaml:"-"`
	Error string       `yaml:"error,omitempty"`
}

// Runner replays scripts on one worker pool that lives as long as the Runner.
// Build one per process and reuse it; each Run shares the same workers.
type Runner struct {
	pool    worker.DynamicWorkerPool
	workers int
}

// NewRunner creates a Runner and starts its workers.
//
// Parameters:
//   - workers: the pool size, at least 1
//
// Returns:
//   - *Runner: the runner
func NewRunner(workers int) *Runner {
	workers = max(1, workers)
	return &Runner{
		pool:    worker.NewDynamicWorkerPool(workers, 256, 1*time.Second),
		workers: workers,
	}
}

// Workers returns the pool size.
func (r *Runner) Workers() int {
	return r.workers
}

// Run replays jobs concurrently and returns their results in job order.
// Each job gets its own scene, so scenes are never shared between goroutines.
//
// Parameters:
//   - ctx: cancels jobs that have not finished
//   - jobs: the jobs to run
//
// Returns:
//   - []Result: one result per job, in the same order
func (r *Runner) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		idx, j := i, job
		r.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				results[idx] = runJob(ctx, j)
				return nil, results[idx].Err
			},
		})
	}
	wg.Wait()
	return results
}

func runJob(ctx context.Context, j Job) (res Result) {
	res.Name = j.Script.Name
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("script %q panicked: %v", j.Script.Name, r)
			res.Error = res.Err.Error()
		}
	}()

	sc, err := j.NewScene()
	if err == nil {
		res.Trace, err = replay(ctx, sc, j.Script)
	}
	if err != nil {
		res.Err = fmt.Errorf("script %q: %w", j.Script.Name, err)
		res.Error = res.Err.Error()
		log.Error().Err(err).Str("script", j.Script.Name).Msg("replay failed")
		return res
	}
	log.Info().Str("script", j.Script.Name).Int("frames", len(res.Trace)).Msg("replay finished")
	return res
}

// WriteTraces encodes results as a YAML document.
//
// Parameters:
//   - w: the destination
//   - results: the results to write
//
// Returns:
//   - error: an encoding or write error
func WriteTraces(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode traces: %w", err)
	}
	return enc.Close()
}
