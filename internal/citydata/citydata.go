// Package citydata consumes the city-wide daily cases API, the secondary
// series used only for the comparison chart.
package citydata

import (
	"encoding/json"
	"fmt"
)

// Point is one day of the city-wide series. A nil NewCases means the API
// published a null for that day.
type Point struct {
	Date     string `json:"date"`
	NewCases *int   `json:"newCases"`
}

// Series is the secondary date-indexed case series, oldest first.
type Series []Point

type envelope struct {
	Data []Point `json:"data"`
}

// ParseSeries decodes the API payload and reverses it into chronological
// order; the API returns newest first.
func ParseSeries(body []byte) (Series, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode city data: %w", err)
	}
	series := make(Series, 0, len(env.Data))
	for i := len(env.Data) - 1; i >= 0; i-- {
		series = append(series, env.Data[i])
	}
	return series, nil
}

// FilterByDates keeps only the points whose date appears in dates,
// preserving order.
func (s Series) FilterByDates(dates []string) Series {
	keep := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		keep[d] = struct{}{}
	}
	out := make(Series, 0, len(s))
	for _, pt := range s {
		if _, ok := keep[pt.Date]; ok {
			out = append(out, pt)
		}
	}
	return out
}
