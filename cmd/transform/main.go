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

	log.Info("Starting schema transformer",
		zap.String("input", cfg.Transform.Input),
		zap.String("output", cfg.Transform.Output),
		zap.Bool("english_headers", cfg.Transform.EnglishHeaders))

	tables := csvfile.New(log)
	uc := usecase.NewTransformUseCase(tables, log,
		cfg.Transform.MissingValue, cfg.Transform.EnglishHeaders)

	if err := uc.Run(context.Background(), cfg.Transform.Input, cfg.Transform.Output); err != nil {
		log.Fatal("Transformation failed", zap.Error(err))
	}
}
