package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	"github.com/tokyo-toilet-data/internal/domain/repository"
	apperrors "github.com/tokyo-toilet-data/internal/pkg/errors"
)

// TransformUseCase normalizes the government source dataset: it keeps
// the 31 mapped columns, converts ○/× markers to boolean strings,
// drops unnamed rows and prepends the blank row the downstream map
// format expects.
type TransformUseCase struct {
	tables         repository.TableRepository
	logger         *zap.Logger
	missingValue   string
	englishHeaders bool
}

// NewTransformUseCase creates a new TransformUseCase. missingValue is
// substituted for source columns absent from the input; englishHeaders
// selects the normalized English header names over the original ones.
func NewTransformUseCase(
	tables repository.TableRepository,
	logger *zap.Logger,
	missingValue string,
	englishHeaders bool,
) *TransformUseCase {
	return &TransformUseCase{
		tables:         tables,
		logger:         logger,
		missingValue:   missingValue,
		englishHeaders: englishHeaders,
	}
}

// Run transforms one source file into the normalized schema
func (uc *TransformUseCase) Run(ctx context.Context, input, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := uc.tables.Load(input)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	out := domain.NewTable(uc.header())

	// Blank first data row: the legacy consumer expects one.
	out.Append(out.EmptyRecord())

	dropped := 0
	for _, row := range src.Rows {
		if row.Get(domain.ColFacilityName) == "" {
			dropped++
			continue
		}

		rec := make(domain.Record, len(domain.ColumnMapping))
		for _, m := range domain.ColumnMapping {
			value, ok := row[m.Source]
			if !ok {
				value = uc.missingValue
			}
			if domain.IsBooleanColumn(m.Source) {
				value = domain.BoolString(value)
			}
			rec[uc.columnName(m)] = value
		}
		out.Append(rec)
	}

	if err := uc.tables.Save(output, out); err != nil {
		return apperrors.Transformation("save transformed data", err)
	}

	uc.logger.Info("Transformation complete",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("records", out.Len()-1),
		zap.Int("dropped_unnamed", dropped))

	return nil
}

func (uc *TransformUseCase) header() []string {
	cols := make([]string, len(domain.ColumnMapping))
	for i, m := range domain.ColumnMapping {
		cols[i] = uc.columnName(m)
	}
	return cols
}

func (uc *TransformUseCase) columnName(m domain.ColumnMap) string {
	if uc.englishHeaders {
		return m.Target
	}
	return m.Source
}
