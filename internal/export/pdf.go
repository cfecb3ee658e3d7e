package export

import (
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"covidstats/internal/transform"
)

// WritePDF renders the dataset as a minimal tabular PDF report. Layout is
// intentionally simple: a title, a bordered header row, one row per date.
func WritePDF(path string, ds transform.Dataset) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.AddPage()
	pdf.CellFormat(0, 9, "Staff and student COVID-19 cases", "", 1, "L", false, 0, "")

	widths := []float64{40, 45, 45}
	pdf.SetFont("Helvetica", "B", 10)
	for i, c := range Columns {
		pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range ds {
		pdf.CellFormat(widths[0], 6, row.Date, "1", 0, "L", false, 0, "")
		for i, n := range row.Counts {
			w := widths[len(widths)-1]
			if i+1 < len(widths) {
				w = widths[i+1]
			}
			pdf.CellFormat(w, 6, strconv.Itoa(n), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.OutputFileAndClose(path)
}
