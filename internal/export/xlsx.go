package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"covidstats/internal/transform"
)

// WriteXLSX writes the dataset to Sheet1 of a new workbook, mirroring the
// CSV layout. Counts are written as numbers, not strings.
func WriteXLSX(path string, ds transform.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return err
	}
	for i, row := range ds {
		cells := make([]any, 0, len(row.Counts)+1)
		cells = append(cells, row.Date)
		for _, n := range row.Counts {
			cells = append(cells, n)
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Sheet1", anchor, &cells); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
