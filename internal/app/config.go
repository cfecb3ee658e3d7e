package app

import "time"

// Defaults for the two public data sources. Both are plain configuration
// so tests and other deployments can point the pipeline at fixtures.
const (
	DefaultSourceURL = "https://www.sheffield.ac.uk/autumn-term-2020/covid-19-statistics/"
	DefaultCityURL   = "https://api.coronavirus.data.gov.uk/v1/data?" +
		`filters=areaType=ltla;areaName=sheffield&structure={"date":"date","newCases":"newCasesByPublishDate"}`

	// DefaultColumns is the expected cells per data row: the date plus the
	// staff and student counts.
	DefaultColumns = 3

	DefaultUserAgent = "covidstats/1.0"
	DefaultTimeout   = 30 * time.Second
)

// Config holds runtime configuration for one ingest run.
type Config struct {
	SourceURL string
	CityURL   string
	Columns   int

	UserAgent string
	Timeout   time.Duration

	// Export targets. CSV and JSON are mutually exclusive in effect: when
	// both are set only the CSV is written.
	CSVPath  string
	JSONPath string
	XLSXPath string
	PDFPath  string

	ChartDir string
	NoChart  bool

	Verbose bool
}
