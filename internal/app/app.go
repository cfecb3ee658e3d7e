// Package app wires the fetch, pipeline, chart, and export stages into a
// single run-to-completion ingest.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"covidstats/internal/chart"
	"covidstats/internal/citydata"
	"covidstats/internal/export"
	"covidstats/internal/fetch"
	"covidstats/internal/pipeline"
	"covidstats/internal/transform"
)

type App struct {
	cfg     Config
	fetcher *fetch.Client

	// Out receives the console tables; stdout unless a test overrides it.
	Out io.Writer
	// Now supplies the chart filename date; overridable for tests.
	Now func() time.Time
}

func New(cfg Config) *App {
	return &App{
		cfg:     cfg,
		fetcher: fetch.New(cfg.UserAgent, cfg.Timeout),
		Out:     os.Stdout,
		Now:     time.Now,
	}
}

// Run executes one ingest: fetch the statistics page, build the dataset,
// print it, fetch and print the city series, render the comparison chart,
// then write any requested exports. Every failure is fatal; nothing is
// written once a stage has failed.
func (a *App) Run(ctx context.Context) error {
	log.Info().Str("url", a.cfg.SourceURL).Msg("fetching statistics page")
	page, err := a.fetcher.Page(ctx, a.cfg.SourceURL)
	if err != nil {
		return fmt.Errorf("fetch page: %w", err)
	}

	ds, err := pipeline.Run(page, a.cfg.Columns)
	if err != nil {
		return err
	}
	log.Info().Int("rows", len(ds)).Msg("dataset ready")

	fmt.Fprintln(a.Out, "---- University data ----")
	export.PrintDataset(a.Out, ds)

	if a.cfg.CityURL != "" {
		series, err := a.citySeries(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "---- City data ----")
		export.PrintSeries(a.Out, series)

		if !a.cfg.NoChart {
			path := filepath.Join(a.cfg.ChartDir, chart.Filename(a.Now()))
			if err := chart.Render(ds, series.FilterByDates(ds.Dates()), path); err != nil {
				return fmt.Errorf("render chart: %w", err)
			}
			log.Info().Str("out", path).Msg("wrote chart")
		}
	}

	return a.export(ds)
}

func (a *App) citySeries(ctx context.Context) (citydata.Series, error) {
	log.Info().Str("url", a.cfg.CityURL).Msg("fetching city data")
	body, err := a.fetcher.JSON(ctx, a.cfg.CityURL)
	if err != nil {
		return nil, fmt.Errorf("fetch city data: %w", err)
	}
	return citydata.ParseSeries(body)
}

// export writes at most one of CSV/JSON (CSV wins when both were given)
// plus the optional spreadsheet and PDF artifacts.
func (a *App) export(ds transform.Dataset) error {
	switch {
	case a.cfg.CSVPath != "":
		if err := export.WriteCSV(a.cfg.CSVPath, ds); err != nil {
			return err
		}
		log.Info().Str("out", a.cfg.CSVPath).Msg("wrote csv")
	case a.cfg.JSONPath != "":
		if err := export.WriteJSON(a.cfg.JSONPath, ds); err != nil {
			return err
		}
		log.Info().Str("out", a.cfg.JSONPath).Msg("wrote json")
	}
	if a.cfg.XLSXPath != "" {
		if err := export.WriteXLSX(a.cfg.XLSXPath, ds); err != nil {
			return err
		}
		log.Info().Str("out", a.cfg.XLSXPath).Msg("wrote xlsx")
	}
	if a.cfg.PDFPath != "" {
		if err := export.WritePDF(a.cfg.PDFPath, ds); err != nil {
			return err
		}
		log.Info().Str("out", a.cfg.PDFPath).Msg("wrote pdf")
	}
	return nil
}
