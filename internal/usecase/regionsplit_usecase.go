package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	"github.com/tokyo-toilet-data/internal/domain/repository"
)

// Integrated output file names
const (
	TamaMajorCitiesFile     = "tama_major_cities.csv"
	IslandsIntegratedFile   = "islands_integrated.csv"
	NishitamaIntegratedFile = "nishi_tama_integrated.csv"
)

// regionDirs maps each non-ward area type to its output directory name
var regionDirs = map[domain.AreaType]string{
	domain.AreaTamaCity:  "tama_cities",
	domain.AreaNishitama: "nishi_tama",
	domain.AreaIsland:    "islands",
}

// RegionSplitUseCase partitions the datasets lying outside the 23
// wards into per-municipality files (Tama cities, Nishitama towns,
// islands), then builds the three integrated aggregates by re-reading
// the per-area files from disk. Inputs are split in order into the
// same directories, so a later input overwrites same-area files; the
// aggregates reflect whatever is on disk afterwards.
type RegionSplitUseCase struct {
	tables     repository.TableRepository
	logger     *zap.Logger
	classifier *domain.Classifier
}

// NewRegionSplitUseCase creates a new RegionSplitUseCase
func NewRegionSplitUseCase(tables repository.TableRepository, logger *zap.Logger) *RegionSplitUseCase {
	return &RegionSplitUseCase{
		tables:     tables,
		logger:     logger,
		classifier: domain.RegionClassifier(),
	}
}

// Run splits every input under baseDir, then writes the integrated
// files under integratedDir
func (uc *RegionSplitUseCase) Run(ctx context.Context, inputs []string, baseDir, integratedDir string) error {
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := uc.splitInput(input, baseDir); err != nil {
			return fmt.Errorf("split %s: %w", input, err)
		}
	}
	return uc.integrate(baseDir, integratedDir)
}

func (uc *RegionSplitUseCase) splitInput(input, baseDir string) error {
	src, err := uc.tables.Load(input)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}
	if !src.HasColumn(domain.PinColAddress) {
		return fmt.Errorf("%s: missing %q column", input, domain.PinColAddress)
	}

	type areaKey struct {
		Type domain.AreaType
		Name string
	}
	groups := make(map[areaKey]*domain.Table)
	var order []areaKey
	counts := make(map[domain.AreaType]int)

	for _, row := range src.Rows {
		areaType, name := uc.classifier.Classify(row[domain.PinColAddress])
		if areaType == domain.AreaWard {
			// Ward rows are the ward splitter's concern.
			continue
		}
		counts[areaType]++
		if areaType == domain.AreaOther {
			continue
		}
		key := areaKey{Type: areaType, Name: name}
		g, ok := groups[key]
		if !ok {
			g = domain.NewTable(src.Header)
			groups[key] = g
			order = append(order, key)
		}
		g.Append(row)
	}

	for _, key := range order {
		path := filepath.Join(baseDir, regionDirs[key.Type], key.Name+".csv")
		if err := uc.tables.Save(path, groups[key]); err != nil {
			return fmt.Errorf("save area file: %w", err)
		}
		uc.logger.Info("Area file written",
			zap.String("area", key.Name),
			zap.String("category", string(key.Type)),
			zap.Int("records", groups[key].Len()),
			zap.String("path", path))
	}

	uc.logger.Info("Region split complete",
		zap.String("input", input),
		zap.Int("tama_city", counts[domain.AreaTamaCity]),
		zap.Int("nishi_tama", counts[domain.AreaNishitama]),
		zap.Int("island", counts[domain.AreaIsland]),
		zap.Int("dropped_other", counts[domain.AreaOther]))

	return nil
}

func (uc *RegionSplitUseCase) integrate(baseDir, integratedDir string) error {
	// Major Tama cities: the fixed subset, in catalog order.
	var majorPaths []string
	for _, city := range domain.MajorTamaCities {
		path := filepath.Join(baseDir, regionDirs[domain.AreaTamaCity], city+".csv")
		if uc.tables.Exists(path) {
			majorPaths = append(majorPaths, path)
		}
	}
	if err := uc.concat(majorPaths, filepath.Join(integratedDir, TamaMajorCitiesFile)); err != nil {
		return err
	}

	// Islands and Nishitama: every per-area file on disk.
	for _, agg := range []struct {
		areaType domain.AreaType
		output   string
	}{
		{domain.AreaIsland, IslandsIntegratedFile},
		{domain.AreaNishitama, NishitamaIntegratedFile},
	} {
		paths, err := uc.tables.List(filepath.Join(baseDir, regionDirs[agg.areaType]))
		if err != nil {
			return fmt.Errorf("list %s files: %w", agg.areaType, err)
		}
		if err := uc.concat(paths, filepath.Join(integratedDir, agg.output)); err != nil {
			return err
		}
	}

	return nil
}

// concat unions the rows of the given files, no deduplication. The
// output is written only when there is source data.
func (uc *RegionSplitUseCase) concat(paths []string, output string) error {
	var merged *domain.Table
	for _, path := range paths {
		t, err := uc.tables.Load(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		if merged == nil {
			merged = domain.NewTable(t.Header)
		}
		merged.Rows = append(merged.Rows, t.Rows...)
	}

	if merged == nil || merged.Len() == 0 {
		uc.logger.Info("No source data, integrated file skipped",
			zap.String("output", output))
		return nil
	}

	if err := uc.tables.Save(output, merged); err != nil {
		return fmt.Errorf("save integrated file: %w", err)
	}
	uc.logger.Info("Integrated file written",
		zap.String("output", output),
		zap.Int("records", merged.Len()),
		zap.Int("sources", len(paths)))

	return nil
}
