package table

import (
	"errors"
	"fmt"
	"strings"
)

// ValidatedRow is a row confirmed to be data rather than a header, with
// footnote markers stripped from every cell.
type ValidatedRow []string

// ErrSchemaMismatch reports a header row whose column labels do not match
// the expected table layout.
var ErrSchemaMismatch = errors.New("table: header schema mismatch")

const (
	headerMarker = "Day"
	staffLabel   = "New staff"
	studentLabel = "New student"
	footnoteMark = "*"
)

// rowKind classifies a raw row exactly once, before any cleaning happens.
type rowKind int

const (
	kindData rowKind = iota
	kindHeader
	kindEmpty
)

func classify(row RawRow) rowKind {
	if len(row) == 0 {
		return kindEmpty
	}
	if strings.Contains(row[0], headerMarker) {
		return kindHeader
	}
	return kindData
}

// Validate drops header rows and strips a single trailing footnote marker
// from each cell of the remaining rows, preserving their relative order.
// A detected header row must carry the expected column labels; anything
// else fails the whole run. Rows that are merely short or empty are not
// rejected here, they pass through and fail at the transform stage.
func Validate(rows []RawRow) ([]ValidatedRow, error) {
	validated := make([]ValidatedRow, 0, len(rows))
	for i, row := range rows {
		switch classify(row) {
		case kindHeader:
			if err := checkHeader(row); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		case kindEmpty:
			validated = append(validated, ValidatedRow{})
		case kindData:
			validated = append(validated, stripMarkers(row))
		}
	}
	return validated, nil
}

func checkHeader(row RawRow) error {
	if len(row) < 3 {
		return fmt.Errorf("%w: header has %d cells, want at least 3", ErrSchemaMismatch, len(row))
	}
	if !strings.Contains(row[1], staffLabel) {
		return fmt.Errorf("%w: column 1 is %q, want %q", ErrSchemaMismatch, row[1], staffLabel)
	}
	if !strings.Contains(row[2], studentLabel) {
		return fmt.Errorf("%w: column 2 is %q, want %q", ErrSchemaMismatch, row[2], studentLabel)
	}
	return nil
}

// stripMarkers removes exactly one trailing footnote marker per cell.
func stripMarkers(row RawRow) ValidatedRow {
	out := make(ValidatedRow, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSuffix(cell, footnoteMark)
	}
	return out
}
