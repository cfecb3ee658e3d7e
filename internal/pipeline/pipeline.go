// Package pipeline composes extraction, validation, and transformation
// into a single call from raw page text to the final dataset.
package pipeline

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"covidstats/internal/table"
	"covidstats/internal/transform"
)

// Run turns raw page HTML into the sorted dataset: parse the document
// tree, extract every table row, drop headers and footnote markers, then
// coerce and sort. Failures from any stage propagate unchanged; there are
// no partial results.
func Run(page []byte, columns int) (transform.Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	validated, err := table.Validate(table.Extract(doc))
	if err != nil {
		return nil, err
	}
	return transform.Transform(validated, columns)
}
