// Package export writes the dataset out as tabular artifacts and renders
// it on the console.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"covidstats/internal/transform"
)

// Columns is the header row shared by the tabular exports, date first.
var Columns = []string{"Date", "New staff cases", "New student cases"}

// WriteCSV writes the dataset with the standard header row, one record
// per typed row in dataset order.
func WriteCSV(path string, ds transform.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}
	for _, row := range ds {
		if err := w.Write(record(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func record(row transform.TypedRow) []string {
	rec := make([]string, 0, len(row.Counts)+1)
	rec = append(rec, row.Date)
	for _, n := range row.Counts {
		rec = append(rec, strconv.Itoa(n))
	}
	return rec
}
