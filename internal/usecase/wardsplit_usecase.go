package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	"github.com/tokyo-toilet-data/internal/domain/repository"
)

// WardSplitUseCase partitions a pin-format dataset into one file per
// special ward. Rows outside every ward fall into the "other" bucket,
// which is dropped; its size is surfaced in the run summary.
type WardSplitUseCase struct {
	tables     repository.TableRepository
	logger     *zap.Logger
	classifier *domain.Classifier
}

// NewWardSplitUseCase creates a new WardSplitUseCase
func NewWardSplitUseCase(tables repository.TableRepository, logger *zap.Logger) *WardSplitUseCase {
	return &WardSplitUseCase{
		tables:     tables,
		logger:     logger,
		classifier: domain.WardClassifier(),
	}
}

// Run splits one input file into per-ward files under outputDir
func (uc *WardSplitUseCase) Run(ctx context.Context, input, outputDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := uc.tables.Load(input)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}
	if !src.HasColumn(domain.PinColAddress) {
		return fmt.Errorf("%s: missing %q column", input, domain.PinColAddress)
	}

	groups := make(map[string]*domain.Table)
	var order []string
	other := 0

	for _, row := range src.Rows {
		areaType, ward := uc.classifier.Classify(row[domain.PinColAddress])
		if areaType == domain.AreaOther {
			other++
			continue
		}
		g, ok := groups[ward]
		if !ok {
			g = domain.NewTable(src.Header)
			groups[ward] = g
			order = append(order, ward)
		}
		g.Append(row)
	}

	for _, ward := range order {
		path := filepath.Join(outputDir, ward+".csv")
		if err := uc.tables.Save(path, groups[ward]); err != nil {
			return fmt.Errorf("save ward file: %w", err)
		}
		uc.logger.Info("Ward file written",
			zap.String("ward", ward),
			zap.Int("records", groups[ward].Len()),
			zap.String("path", path))
	}

	uc.logger.Info("Ward split complete",
		zap.String("input", input),
		zap.Int("wards", len(order)),
		zap.Int("dropped_other", other))

	return nil
}
