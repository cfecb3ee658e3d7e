package export

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"covidstats/internal/citydata"
	"covidstats/internal/transform"
)

// PrintDataset renders the dataset to w as a console table followed by a
// one-line summary.
func PrintDataset(w io.Writer, ds transform.Dataset) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	header := table.Row{}
	for _, c := range Columns {
		header = append(header, c)
	}
	tw.AppendHeader(header)
	for _, row := range ds {
		r := table.Row{row.Date}
		for _, n := range row.Counts {
			r = append(r, n)
		}
		tw.AppendRow(r)
	}
	tw.Render()
	fmt.Fprintln(w, Summary(ds))
}

// PrintSeries renders the city-wide series to w. Null counts show as "-".
func PrintSeries(w io.Writer, s citydata.Series) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Date", "New cases"})
	for _, pt := range s {
		if pt.NewCases == nil {
			tw.AppendRow(table.Row{pt.Date, "-"})
			continue
		}
		tw.AppendRow(table.Row{pt.Date, *pt.NewCases})
	}
	tw.Render()
}

// Summary reports row count, total cases, daily mean, and the peak day,
// summed across the staff and student columns.
func Summary(ds transform.Dataset) string {
	if len(ds) == 0 {
		return "no data rows"
	}
	daily := make([]float64, len(ds))
	total := 0
	for i, row := range ds {
		sum := 0
		for _, n := range row.Counts {
			sum += n
		}
		daily[i] = float64(sum)
		total += sum
	}
	mean, _ := stats.Mean(daily)
	peak, _ := stats.Max(daily)
	peakDate := ds[0].Date
	for i, v := range daily {
		if v == peak {
			peakDate = ds[i].Date
			break
		}
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d rows, %d cases total, %.1f per day mean, peak %d on %s",
		len(ds), total, mean, int(peak), peakDate)
}
