package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Stage is one batch step of the data pipeline
type Stage interface {
	// Name returns the stage name used in logs
	Name() string

	// Run executes the stage to completion
	Run(ctx context.Context) error
}

type funcStage struct {
	name string
	fn   func(ctx context.Context) error
}

func (s *funcStage) Name() string                  { return s.name }
func (s *funcStage) Run(ctx context.Context) error { return s.fn(ctx) }

// NewStage wraps a function as a named stage
func NewStage(name string, fn func(ctx context.Context) error) Stage {
	return &funcStage{name: name, fn: fn}
}

// Runner executes registered stages strictly in registration order.
// The first failing stage aborts the run; later stages are not
// started. Context cancellation is honored between stages.
type Runner struct {
	stages []Stage
	logger *zap.Logger
}

// NewRunner creates a new Runner
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		stages: make([]Stage, 0),
		logger: logger,
	}
}

// Register appends a stage to the run order
func (r *Runner) Register(s Stage) {
	r.stages = append(r.stages, s)
	r.logger.Info("Stage registered", zap.String("name", s.Name()))
}

// Run executes all registered stages sequentially
func (r *Runner) Run(ctx context.Context) error {
	if len(r.stages) == 0 {
		return fmt.Errorf("no stages registered")
	}

	r.logger.Info("Starting pipeline", zap.Int("stages", len(r.stages)))
	start := time.Now()

	for _, stage := range r.stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline canceled before stage %s: %w", stage.Name(), err)
		}

		r.logger.Info("Starting stage", zap.String("name", stage.Name()))
		stageStart := time.Now()

		if err := stage.Run(ctx); err != nil {
			r.logger.Error("Stage failed",
				zap.String("name", stage.Name()),
				zap.Error(err))
			return fmt.Errorf("stage %s: %w", stage.Name(), err)
		}

		r.logger.Info("Stage complete",
			zap.String("name", stage.Name()),
			zap.Duration("elapsed", time.Since(stageStart)))
	}

	r.logger.Info("Pipeline complete",
		zap.Int("stages", len(r.stages)),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}
