package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"covidstats/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env is optional; real env and flags still win.
	_ = godotenv.Load()

	var (
		csvPath    string
		jsonPath   string
		xlsxPath   string
		pdfPath    string
		configPath string
		sourceURL  string
		cityURL    string
		columns    int
		userAgent  string
		timeout    time.Duration
		chartDir   string
		noChart    bool
		verbose    bool
	)

	flag.StringVar(&csvPath, "csv", "", "Store the dataset in a .csv file at the given path")
	flag.StringVar(&jsonPath, "json", "", "Store the dataset in a .json file at the given path")
	flag.StringVar(&xlsxPath, "xlsx", "", "Store the dataset in a .xlsx workbook at the given path")
	flag.StringVar(&pdfPath, "pdf", "", "Write a PDF report to the given path")
	flag.StringVar(&configPath, "config", os.Getenv("COVIDSTATS_CONFIG"), "Optional YAML or JSON config file")
	flag.StringVar(&sourceURL, "source.url", envDefault("COVIDSTATS_SOURCE_URL", app.DefaultSourceURL), "Statistics page URL")
	flag.StringVar(&cityURL, "city.url", envDefault("COVIDSTATS_CITY_URL", app.DefaultCityURL), "City-wide cases API URL")
	flag.IntVar(&columns, "columns", app.DefaultColumns, "Expected cells per data row (date plus numeric columns)")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent for both fetches")
	flag.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Per-request timeout")
	flag.StringVar(&chartDir, "chart.dir", ".", "Directory for the comparison chart PNG")
	flag.BoolVar(&noChart, "no-chart", false, "Skip rendering the comparison chart")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		SourceURL: sourceURL,
		CityURL:   cityURL,
		Columns:   columns,
		UserAgent: userAgent,
		Timeout:   timeout,
		CSVPath:   csvPath,
		JSONPath:  jsonPath,
		XLSXPath:  xlsxPath,
		PDFPath:   pdfPath,
		ChartDir:  chartDir,
		NoChart:   noChart,
		Verbose:   verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
