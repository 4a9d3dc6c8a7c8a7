package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	"github.com/tokyo-toilet-data/internal/domain/repository"
)

// PinUseCase converts the normalized dataset into the eight-field map
// pin format, synthesizing a human-readable note from the feature,
// door, operating-hour and remarks columns.
type PinUseCase struct {
	tables repository.TableRepository
	logger *zap.Logger
	color  string
}

// NewPinUseCase creates a new PinUseCase; color is the fixed pin color
func NewPinUseCase(tables repository.TableRepository, logger *zap.Logger, color string) *PinUseCase {
	return &PinUseCase{
		tables: tables,
		logger: logger,
		color:  color,
	}
}

// Run converts one normalized file to the pin format
func (uc *PinUseCase) Run(ctx context.Context, input, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := uc.tables.Load(input)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	out := domain.NewTable(domain.PinColumns)
	for _, row := range src.Rows {
		name := row.Get(domain.ColFacilityName)
		if name == "" {
			continue
		}

		address := strings.TrimSpace(
			row.Get(domain.ColPrefecture) + " " + row.Get(domain.ColMunicipality))

		out.Append(domain.Record{
			domain.PinColName:       name,
			domain.PinColAddress:    address,
			domain.PinColFloor:      row.Get(domain.ColFloor),
			domain.PinColToiletName: row.Get(domain.ColToiletName),
			domain.PinColNote:       buildNote(row),
			domain.PinColColor:      uc.color,
			domain.PinColLng:        row.Get(domain.ColLongitude),
			domain.PinColLat:        row.Get(domain.ColLatitude),
		})
	}

	if err := uc.tables.Save(output, out); err != nil {
		return fmt.Errorf("save pin data: %w", err)
	}

	uc.logger.Info("Pin conversion complete",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("records", out.Len()))

	return nil
}

// maxNoteHours caps the operating-hour entries so notes stay short
const maxNoteHours = 3

// buildNote joins the non-empty note sections with " | ". Sections
// with no contributing data are omitted entirely.
func buildNote(row domain.Record) string {
	var parts []string

	var features []string
	for _, f := range domain.PinFeatures {
		if row[f.Column] == "TRUE" {
			features = append(features, f.Label)
		}
	}
	if len(features) > 0 {
		parts = append(parts, "設備: "+strings.Join(features, ", "))
	}

	if door := row.Get(domain.ColDoorType); door != "" {
		parts = append(parts, "扉: "+door)
	}

	var hours []string
	for _, day := range domain.DayColumns {
		if h := row.Get(day); h != "" {
			hours = append(hours, day+": "+h)
		}
	}
	if len(hours) > 0 {
		if len(hours) > maxNoteHours {
			hours = hours[:maxNoteHours]
		}
		parts = append(parts, "営業時間: "+strings.Join(hours, ", "))
	}

	if remarks := row.Get(domain.ColRemarks); remarks != "" {
		parts = append(parts, "備考: "+remarks)
	}

	return strings.Join(parts, " | ")
}
