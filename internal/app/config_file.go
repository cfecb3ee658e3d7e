package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the flag surface.
type FileConfig struct {
	Source struct {
		URL       string `yaml:"url" json:"url"`
		Columns   int    `yaml:"columns" json:"columns"`
		UserAgent string `yaml:"userAgent" json:"userAgent"`
		// Timeout is a duration string such as "30s".
		Timeout string `yaml:"timeout" json:"timeout"`
	} `yaml:"source" json:"source"`

	City struct {
		URL string `yaml:"url" json:"url"`
	} `yaml:"city" json:"city"`

	Export struct {
		CSV  string `yaml:"csv" json:"csv"`
		JSON string `yaml:"json" json:"json"`
		XLSX string `yaml:"xlsx" json:"xlsx"`
		PDF  string `yaml:"pdf" json:"pdf"`
	} `yaml:"export" json:"export"`

	Chart struct {
		Dir     string `yaml:"dir" json:"dir"`
		Disable bool   `yaml:"disable" json:"disable"`
	} `yaml:"chart" json:"chart"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields the
// flags left at their defaults, so explicit flags keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.SourceURL == "" || cfg.SourceURL == DefaultSourceURL) && fc.Source.URL != "" {
		cfg.SourceURL = fc.Source.URL
	}
	if (cfg.Columns == 0 || cfg.Columns == DefaultColumns) && fc.Source.Columns > 0 {
		cfg.Columns = fc.Source.Columns
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.Source.UserAgent != "" {
		cfg.UserAgent = fc.Source.UserAgent
	}
	if (cfg.Timeout == 0 || cfg.Timeout == DefaultTimeout) && fc.Source.Timeout != "" {
		if d, err := time.ParseDuration(fc.Source.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if (cfg.CityURL == "" || cfg.CityURL == DefaultCityURL) && fc.City.URL != "" {
		cfg.CityURL = fc.City.URL
	}

	if cfg.CSVPath == "" && fc.Export.CSV != "" {
		cfg.CSVPath = fc.Export.CSV
	}
	if cfg.JSONPath == "" && fc.Export.JSON != "" {
		cfg.JSONPath = fc.Export.JSON
	}
	if cfg.XLSXPath == "" && fc.Export.XLSX != "" {
		cfg.XLSXPath = fc.Export.XLSX
	}
	if cfg.PDFPath == "" && fc.Export.PDF != "" {
		cfg.PDFPath = fc.Export.PDF
	}

	if (cfg.ChartDir == "" || cfg.ChartDir == ".") && fc.Chart.Dir != "" {
		cfg.ChartDir = fc.Chart.Dir
	}
	if !cfg.NoChart && fc.Chart.Disable {
		cfg.NoChart = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation before a run starts.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.SourceURL) == "" {
		return errors.New("config: source url is required")
	}
	if strings.TrimSpace(cfg.CityURL) == "" && !cfg.NoChart {
		return errors.New("config: city url is required unless the chart is disabled")
	}
	if cfg.Columns < 2 {
		return errors.New("config: columns must cover a date and at least one count")
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	return nil
}
