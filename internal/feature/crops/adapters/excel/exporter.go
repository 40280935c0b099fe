// Package excel renders crops into an .xlsx workbook.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"cropscience_backend/internal/feature/crops/domain/entity"
	"cropscience_backend/internal/feature/crops/usecase"
)

const (
	sheetName = "Crops"

	// timestampFormat fixes how created/updated times render in cells.
	timestampFormat = "2006-01-02 15:04:05"
)

// headers is the fixed column order of the export.
var headers = []interface{}{
	"ID",
	"Name",
	"Scientific Name",
	"Category",
	"Description",
	"Growth Duration (days)",
	"Water Requirements",
	"Created At",
	"Updated At",
}

// Exporter writes crop workbooks with excelize.
type Exporter struct{}

// Compile-time check to ensure Exporter implements CropExporter.
var _ usecase.CropExporter = (*Exporter)(nil)

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// WriteCrops renders one header row plus one row per crop, in input order,
// and returns the serialized workbook.
func (e *Exporter) WriteCrops(crops []entity.Crop) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is renamed rather than deleted and recreated.
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, crop := range crops {
		row := []interface{}{
			crop.ID,
			crop.Name,
			crop.ScientificName,
			crop.Category.Name,
			crop.Description,
			crop.GrowthDurationDays,
			string(crop.WaterRequirements),
			crop.CreatedAt.Format(timestampFormat),
			crop.UpdatedAt.Format(timestampFormat),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
