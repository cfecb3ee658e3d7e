// Package chart renders the staff/student/city comparison artifact: a
// grouped bar panel of absolute counts above a 100%-stacked panel of each
// population's share of the city-wide count.
package chart

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"covidstats/internal/citydata"
	"covidstats/internal/transform"
)

// Filename returns the dated artifact name for a run on day now.
func Filename(now time.Time) string {
	return now.Format(transform.ISODate) + "-staff-student-covid-cases.png"
}

// Render draws both panels and writes the PNG to path. Only dates present
// in both the dataset and the city series are drawn; having none in
// common is an error since the chart would be empty.
func Render(ds transform.Dataset, city citydata.Series, path string) error {
	dates, staff, student, cityCounts := align(ds, city)
	if len(dates) == 0 {
		return errors.New("chart: no dates shared between datasets")
	}

	top, err := absolutePanel(dates, staff, student)
	if err != nil {
		return fmt.Errorf("absolute panel: %w", err)
	}
	bottom, err := sharePanel(dates, staff, student, cityCounts)
	if err != nil {
		return fmt.Errorf("share panel: %w", err)
	}
	return writePNG(top, bottom, path)
}

// align projects the two series onto their shared dates, in dataset
// order. City days with a null count are treated as absent.
func align(ds transform.Dataset, city citydata.Series) (dates []string, staff, student, cityCounts []float64) {
	byDate := make(map[string]int, len(city))
	for _, pt := range city {
		if pt.NewCases != nil {
			byDate[pt.Date] = *pt.NewCases
		}
	}
	for _, row := range ds {
		n, ok := byDate[row.Date]
		if !ok || len(row.Counts) < 2 {
			continue
		}
		dates = append(dates, row.Date)
		staff = append(staff, float64(row.Counts[0]))
		student = append(student, float64(row.Counts[1]))
		cityCounts = append(cityCounts, float64(n))
	}
	return dates, staff, student, cityCounts
}

func absolutePanel(dates []string, staff, student []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Number of cases in staff and student populations"
	p.Y.Label.Text = "Cases"

	width := vg.Points(12)
	staffBars, err := plotter.NewBarChart(plotter.Values(staff), width)
	if err != nil {
		return nil, err
	}
	staffBars.Offset = -width / 2
	staffBars.Color = plotutil.Color(0)

	studentBars, err := plotter.NewBarChart(plotter.Values(student), width)
	if err != nil {
		return nil, err
	}
	studentBars.Offset = width / 2
	studentBars.Color = plotutil.Color(1)

	p.Add(staffBars, studentBars)
	p.Legend.Add("Staff", staffBars)
	p.Legend.Add("Students", studentBars)
	p.Legend.Top = true
	p.NominalX(dates...)

	labels, err := barLabels(staff, student)
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return p, nil
}

// barLabels annotates every bar with its count, staff left of each date
// tick and students right.
func barLabels(staff, student []float64) (*plotter.Labels, error) {
	xys := make(plotter.XYs, 0, 2*len(staff))
	names := make([]string, 0, 2*len(staff))
	for i := range staff {
		xys = append(xys, plotter.XY{X: float64(i) - 0.18, Y: staff[i]})
		names = append(names, strconv.Itoa(int(staff[i])))
		xys = append(xys, plotter.XY{X: float64(i) + 0.18, Y: student[i]})
		names = append(names, strconv.Itoa(int(student[i])))
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	return labels, nil
}

func sharePanel(dates []string, staff, student, city []float64) (*plot.Plot, error) {
	n := len(dates)
	staffPct := make([]float64, n)
	studentPct := make([]float64, n)
	rest := make([]float64, n)
	floats.DivTo(staffPct, staff, city)
	floats.DivTo(studentPct, student, city)
	floats.Scale(100, staffPct)
	floats.Scale(100, studentPct)
	for i := range rest {
		rest[i] = 100 - staffPct[i] - studentPct[i]
	}

	p := plot.New()
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Relative cases [%]"
	p.Y.Min = 0
	p.Y.Max = 100

	width := vg.Points(16)
	staffBars, err := plotter.NewBarChart(plotter.Values(staffPct), width)
	if err != nil {
		return nil, err
	}
	staffBars.Color = plotutil.Color(0)

	studentBars, err := plotter.NewBarChart(plotter.Values(studentPct), width)
	if err != nil {
		return nil, err
	}
	studentBars.Color = plotutil.Color(1)
	studentBars.StackOn(staffBars)

	restBars, err := plotter.NewBarChart(plotter.Values(rest), width)
	if err != nil {
		return nil, err
	}
	restBars.Color = plotutil.Color(2)
	restBars.StackOn(studentBars)

	p.Add(staffBars, studentBars, restBars)
	p.Legend.Add("Staff", staffBars)
	p.Legend.Add("Students", studentBars)
	p.Legend.Add("Rest of city", restBars)
	p.NominalX(dates...)
	return p, nil
}

func writePNG(top, bottom *plot.Plot, path string) error {
	img := vgimg.New(10*vg.Inch, 6*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: 2 * vg.Millimeter}
	canvases := plot.Align([][]*plot.Plot{{top}, {bottom}}, tiles, dc)
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
