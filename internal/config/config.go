package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Ledger source
	SourceBackend string // xlsx, csv, or sheets
	SourcePath    string // path to the workbook/CSV for file backends

	// Export target directory. Defaults to the source file's directory
	// for file backends, the working directory otherwise.
	ExportDir string

	// Google Sheets (sheets backend; credentials are read from the
	// environment by the sheets client itself)
	GoogleSpreadsheetID string
	GoogleSheetName     string
}

func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8081"),
		SourceBackend: getEnv("SOURCE_BACKEND", "xlsx"),
		SourcePath:    getEnv("SOURCE_PATH", "./data/Snacks_Fund.xlsx"),
		ExportDir:     getEnv("EXPORT_DIR", ""),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", ""),
	}
	if cfg.ExportDir == "" {
		if cfg.SourceBackend == "sheets" {
			cfg.ExportDir = "."
		} else {
			cfg.ExportDir = filepath.Dir(cfg.SourcePath)
		}
	}
	return cfg
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"xlsx", "csv", "sheets"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.SourceBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errs = append(errs, fmt.Sprintf("invalid source backend '%s': must be one of %v", c.SourceBackend, validBackends))
	}

	switch c.SourceBackend {
	case "xlsx", "csv":
		if c.SourcePath == "" {
			errs = append(errs, fmt.Sprintf("source path cannot be empty when using %s backend", c.SourceBackend))
		}
	case "sheets":
		if c.GoogleSpreadsheetID == "" {
			errs = append(errs, "Google Spreadsheet ID is required when using sheets backend")
		}
	}

	if c.ExportDir != "" {
		if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
			errs = append(errs, fmt.Sprintf("export dir '%s' is not a directory", c.ExportDir))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
