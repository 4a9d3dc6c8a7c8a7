package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/config"
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

	log.Info("Starting lightweight extractor",
		zap.String("output_dir", cfg.Lightweight.OutputDir),
		zap.Int("max_public_items", cfg.Lightweight.MaxPublicItems),
		zap.Int("max_station_items", cfg.Lightweight.MaxStationItems),
		zap.Float64("dedup_tolerance", cfg.Lightweight.DedupTolerance))

	tables := csvfile.New(log)
	uc := usecase.NewLightweightUseCase(tables, log,
		cfg.Lightweight.MaxPublicItems,
		cfg.Lightweight.MaxStationItems,
		cfg.Lightweight.DedupTolerance)

	err = uc.Run(context.Background(),
		cfg.Lightweight.PublicInput,
		cfg.Lightweight.StationInput,
		cfg.Lightweight.OutputDir)
	if err != nil {
		log.Fatal("Lightweight extraction failed", zap.Error(err))
	}
}
