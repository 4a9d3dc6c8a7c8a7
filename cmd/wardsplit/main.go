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

	log.Info("Starting ward splitter")

	tables := csvfile.New(log)
	uc := usecase.NewWardSplitUseCase(tables, log)
	ctx := context.Background()

	if err := uc.Run(ctx, cfg.Wards.PublicInput, cfg.Wards.PublicOutputDir); err != nil {
		log.Fatal("Ward split failed",
			zap.String("input", cfg.Wards.PublicInput),
			zap.Error(err))
	}
	if err := uc.Run(ctx, cfg.Wards.StationInput, cfg.Wards.StationOutputDir); err != nil {
		log.Fatal("Ward split failed",
			zap.String("input", cfg.Wards.StationInput),
			zap.Error(err))
	}
}
