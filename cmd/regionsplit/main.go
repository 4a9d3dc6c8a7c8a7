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

	log.Info("Starting region splitter",
		zap.String("output_dir", cfg.Regions.OutputDir))

	tables := csvfile.New(log)
	uc := usecase.NewRegionSplitUseCase(tables, log)

	inputs := []string{cfg.Regions.PublicInput, cfg.Regions.StationInput}
	if err := uc.Run(context.Background(), inputs, cfg.Regions.OutputDir, cfg.Regions.IntegratedDir); err != nil {
		log.Fatal("Region split failed", zap.Error(err))
	}
}
