package transform

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"covidstats/internal/table"
)

// ISODate is the render format for normalized dates. ISO-8601 strings sort
// chronologically, so the dataset's natural order is chronological order.
const ISODate = "2006-01-02"

var (
	// ErrDateParse reports a date cell no known format matches.
	ErrDateParse = errors.New("transform: unparseable date")
	// ErrNumericParse reports a count cell that is not a base-10 integer.
	ErrNumericParse = errors.New("transform: unparseable count")
	// ErrRowShape reports a row whose cell count differs from the schema.
	ErrRowShape = errors.New("transform: unexpected cell count")
)

// TypedRow pairs an ISO-8601 date with the numeric cells that followed it.
type TypedRow struct {
	Date   string
	Counts []int
}

// MarshalJSON renders the row as a flat array, date first:
// ["2020-10-12",3,5].
func (r TypedRow) MarshalJSON() ([]byte, error) {
	cells := make([]any, 0, len(r.Counts)+1)
	cells = append(cells, r.Date)
	for _, n := range r.Counts {
		cells = append(cells, n)
	}
	return json.Marshal(cells)
}

// Dataset is the pipeline output: typed rows sorted ascending by natural
// tuple order.
type Dataset []TypedRow

// Dates returns the date column in dataset order.
func (d Dataset) Dates() []string {
	dates := make([]string, len(d))
	for i, row := range d {
		dates[i] = row.Date
	}
	return dates
}

// Transform coerces validated rows into typed form and sorts the result.
// Every row must have exactly columns cells: the date plus columns-1
// counts. Any coercion failure aborts with no partial dataset.
func Transform(rows []table.ValidatedRow, columns int) (Dataset, error) {
	ds := make(Dataset, 0, len(rows))
	for i, row := range rows {
		if len(row) != columns {
			return nil, fmt.Errorf("row %d: %w: got %d cells, want %d", i, ErrRowShape, len(row), columns)
		}
		t, err := dateparse.ParseAny(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %q", i, ErrDateParse, row[0])
		}
		typed := TypedRow{Date: t.Format(ISODate), Counts: make([]int, 0, columns-1)}
		for _, cell := range row[1:] {
			n, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w: %q", i, ErrNumericParse, cell)
			}
			typed.Counts = append(typed.Counts, n)
		}
		ds = append(ds, typed)
	}
	slices.SortFunc(ds, compareRows)
	return ds, nil
}

// compareRows orders by date, then by each count in turn. The count keys
// only matter on exact date collisions, which valid input does not have.
func compareRows(a, b TypedRow) int {
	if c := strings.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	for i := 0; i < len(a.Counts) && i < len(b.Counts); i++ {
		if c := cmp.Compare(a.Counts[i], b.Counts[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Counts), len(b.Counts))
}
