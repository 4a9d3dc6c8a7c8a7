package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	"github.com/tokyo-toilet-data/internal/domain/repository"
	apperrors "github.com/tokyo-toilet-data/internal/pkg/errors"
	"github.com/tokyo-toilet-data/internal/pkg/utils"
)

// Lightweight output file names
const (
	YamanoteInnerPublicFile  = "yamanote_inner_public.csv"
	YamanoteInnerStationFile = "yamanote_inner_station.csv"
	PriorityPublicFile       = "priority_public.csv"
	PriorityStationFile      = "priority_station.csv"
	IntegratedPublicFile     = "integrated_public.csv"
	IntegratedStationFile    = "integrated_station.csv"
)

// LightweightUseCase builds the reduced datasets served to low-end
// clients: the inner-ward subset, the priority-scored subset, and
// their coordinate-deduplicated union.
type LightweightUseCase struct {
	tables     repository.TableRepository
	logger     *zap.Logger
	maxPublic  int
	maxStation int
	tolerance  float64
}

// NewLightweightUseCase creates a new LightweightUseCase. maxPublic
// and maxStation cap the priority subsets; tolerance is the per-axis
// coordinate distance under which two rows count as duplicates.
func NewLightweightUseCase(
	tables repository.TableRepository,
	logger *zap.Logger,
	maxPublic int,
	maxStation int,
	tolerance float64,
) *LightweightUseCase {
	return &LightweightUseCase{
		tables:     tables,
		logger:     logger,
		maxPublic:  maxPublic,
		maxStation: maxStation,
		tolerance:  tolerance,
	}
}

// Run builds all six lightweight files under outputDir from the
// public and station pin-format inputs
func (uc *LightweightUseCase) Run(ctx context.Context, publicInput, stationInput, outputDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	steps := []struct {
		input  string
		output string
		run    func(input, output string) (int, error)
	}{
		{publicInput, YamanoteInnerPublicFile, uc.filterInnerWards},
		{stationInput, YamanoteInnerStationFile, uc.filterInnerWards},
		{publicInput, PriorityPublicFile, func(in, out string) (int, error) {
			return uc.filterPriority(in, out, uc.maxPublic)
		}},
		{stationInput, PriorityStationFile, func(in, out string) (int, error) {
			return uc.filterPriority(in, out, uc.maxStation)
		}},
	}
	for _, step := range steps {
		output := filepath.Join(outputDir, step.output)
		count, err := step.run(step.input, output)
		if err != nil {
			return fmt.Errorf("build %s: %w", step.output, err)
		}
		uc.logger.Info("Lightweight file written",
			zap.String("output", output),
			zap.Int("records", count))
	}

	// Union of the inner-ward and priority subsets, first-seen wins.
	merges := []struct {
		sources []string
		output  string
	}{
		{[]string{YamanoteInnerPublicFile, PriorityPublicFile}, IntegratedPublicFile},
		{[]string{YamanoteInnerStationFile, PriorityStationFile}, IntegratedStationFile},
	}
	for _, m := range merges {
		sources := make([]string, len(m.sources))
		for i, s := range m.sources {
			sources[i] = filepath.Join(outputDir, s)
		}
		if err := uc.merge(sources, filepath.Join(outputDir, m.output)); err != nil {
			return fmt.Errorf("build %s: %w", m.output, err)
		}
	}

	return nil
}

// filterInnerWards keeps rows whose address lies in an inner ward
func (uc *LightweightUseCase) filterInnerWards(input, output string) (int, error) {
	src, err := uc.tables.Load(input)
	if err != nil {
		return 0, fmt.Errorf("load source: %w", err)
	}

	out := domain.NewTable(src.Header)
	for _, row := range src.Rows {
		address := row[domain.PinColAddress]
		for _, ward := range domain.InnerWards {
			if strings.Contains(address, ward) {
				out.Append(row)
				break
			}
		}
	}

	if err := uc.tables.Save(output, out); err != nil {
		return 0, fmt.Errorf("save filtered data: %w", err)
	}
	return out.Len(), nil
}

// filterPriority keeps the top maxItems rows by priority score.
// The sort is stable: equal scores preserve encounter order.
func (uc *LightweightUseCase) filterPriority(input, output string, maxItems int) (int, error) {
	src, err := uc.tables.Load(input)
	if err != nil {
		return 0, fmt.Errorf("load source: %w", err)
	}

	type scoredRow struct {
		score int
		row   domain.Record
	}
	var scored []scoredRow
	for _, row := range src.Rows {
		score := domain.PriorityScore(row[domain.PinColName], row[domain.PinColAddress])
		if score > 0 {
			scored = append(scored, scoredRow{score: score, row: row})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxItems {
		scored = scored[:maxItems]
	}

	out := domain.NewTable(src.Header)
	for _, s := range scored {
		out.Append(s.row)
	}

	if err := uc.tables.Save(output, out); err != nil {
		return 0, fmt.Errorf("save priority data: %w", err)
	}
	return out.Len(), nil
}

// merge folds the source files into one dataset, dropping rows whose
// coordinates fall within tolerance of an already-kept row. A
// non-numeric coordinate aborts the run: silently coercing it would
// corrupt the geographic dedup.
func (uc *LightweightUseCase) merge(sources []string, output string) error {
	seen := utils.NewCoordSet(uc.tolerance)
	var merged *domain.Table
	duplicates := 0

	for _, source := range sources {
		t, err := uc.tables.Load(source)
		if err != nil {
			return fmt.Errorf("load %s: %w", source, err)
		}
		if merged == nil {
			merged = domain.NewTable(t.Header)
		}

		for _, row := range t.Rows {
			lat, lng, err := utils.ParseLatLon(row[domain.PinColLat], row[domain.PinColLng])
			if err != nil {
				return apperrors.InvalidCoordinate(
					"coordinate", row[domain.PinColLat]+","+row[domain.PinColLng], err)
			}
			if !utils.ValidateCoordinates(lat, lng) {
				return apperrors.InvalidCoordinate(
					"coordinate", row[domain.PinColLat]+","+row[domain.PinColLng],
					fmt.Errorf("out of range"))
			}
			if seen.Contains(lat, lng) {
				duplicates++
				continue
			}
			seen.Add(lat, lng)
			merged.Append(row)
		}
	}

	if merged == nil || merged.Len() == 0 {
		uc.logger.Info("No source data, integrated file skipped",
			zap.String("output", output))
		return nil
	}

	if err := uc.tables.Save(output, merged); err != nil {
		return fmt.Errorf("save integrated data: %w", err)
	}
	uc.logger.Info("Integrated file written",
		zap.String("output", output),
		zap.Int("records", merged.Len()),
		zap.Int("duplicates_dropped", duplicates))

	return nil
}
