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

	log.Info("Starting pin formatter",
		zap.String("input", cfg.Pin.Input),
		zap.String("output", cfg.Pin.Output))

	tables := csvfile.New(log)
	uc := usecase.NewPinUseCase(tables, log, cfg.Pin.Color)

	if err := uc.Run(context.Background(), cfg.Pin.Input, cfg.Pin.Output); err != nil {
		log.Fatal("Pin conversion failed", zap.Error(err))
	}
}
