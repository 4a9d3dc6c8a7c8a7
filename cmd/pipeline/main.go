package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/config"
	"github.com/tokyo-toilet-data/internal/pipeline"
	"github.com/tokyo-toilet-data/internal/pkg/logger"
	"github.com/tokyo-toilet-data/internal/repository/csvfile"
	"github.com/tokyo-toilet-data/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()
	log = log.With(zap.String("run_id", uuid.NewString()))

	tables := csvfile.New(log)

	transformUC := usecase.NewTransformUseCase(tables, log,
		cfg.Transform.MissingValue, cfg.Transform.EnglishHeaders)
	pinUC := usecase.NewPinUseCase(tables, log, cfg.Pin.Color)
	wardUC := usecase.NewWardSplitUseCase(tables, log)
	regionUC := usecase.NewRegionSplitUseCase(tables, log)
	lightweightUC := usecase.NewLightweightUseCase(tables, log,
		cfg.Lightweight.MaxPublicItems,
		cfg.Lightweight.MaxStationItems,
		cfg.Lightweight.DedupTolerance)

	runner := pipeline.NewRunner(log)
	runner.Register(pipeline.NewStage("schema_transform", func(ctx context.Context) error {
		return transformUC.Run(ctx, cfg.Transform.Input, cfg.Transform.Output)
	}))
	runner.Register(pipeline.NewStage("pin_format", func(ctx context.Context) error {
		return pinUC.Run(ctx, cfg.Pin.Input, cfg.Pin.Output)
	}))
	runner.Register(pipeline.NewStage("ward_split", func(ctx context.Context) error {
		if err := wardUC.Run(ctx, cfg.Wards.PublicInput, cfg.Wards.PublicOutputDir); err != nil {
			return err
		}
		return wardUC.Run(ctx, cfg.Wards.StationInput, cfg.Wards.StationOutputDir)
	}))
	runner.Register(pipeline.NewStage("region_split", func(ctx context.Context) error {
		inputs := []string{cfg.Regions.PublicInput, cfg.Regions.StationInput}
		return regionUC.Run(ctx, inputs, cfg.Regions.OutputDir, cfg.Regions.IntegratedDir)
	}))
	runner.Register(pipeline.NewStage("lightweight", func(ctx context.Context) error {
		return lightweightUC.Run(ctx,
			cfg.Lightweight.PublicInput,
			cfg.Lightweight.StationInput,
			cfg.Lightweight.OutputDir)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal")
		cancel()
	}()

	if err := runner.Run(ctx); err != nil {
		log.Fatal("Pipeline failed", zap.Error(err))
	}
}
