package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid xlsx backend",
			config: Config{
				Port:          "8081",
				SourceBackend: "xlsx",
				SourcePath:    "./data/Snacks_Fund.xlsx",
			},
			wantErr: false,
		},
		{
			name: "valid csv backend",
			config: Config{
				Port:          "8081",
				SourceBackend: "csv",
				SourcePath:    "./data/fund.csv",
			},
			wantErr: false,
		},
		{
			name: "valid sheets backend",
			config: Config{
				Port:                "8081",
				SourceBackend:       "sheets",
				GoogleSpreadsheetID: "123456789",
				GoogleSheetName:     "Fund",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:          "abc",
				SourceBackend: "xlsx",
				SourcePath:    "./fund.xlsx",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:          "70000",
				SourceBackend: "xlsx",
				SourcePath:    "./fund.xlsx",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid source backend",
			config: Config{
				Port:          "8080",
				SourceBackend: "parquet",
				SourcePath:    "./fund.parquet",
			},
			wantErr:     true,
			errorString: "invalid source backend 'parquet'",
		},
		{
			name: "xlsx backend missing source path",
			config: Config{
				Port:          "8080",
				SourceBackend: "xlsx",
				SourcePath:    "",
			},
			wantErr:     true,
			errorString: "source path cannot be empty when using xlsx backend",
		},
		{
			name: "sheets backend missing spreadsheet ID",
			config: Config{
				Port:          "8080",
				SourceBackend: "sheets",
			},
			wantErr:     true,
			errorString: "Google Spreadsheet ID is required when using sheets backend",
		},
		{
			name: "multiple problems reported together",
			config: Config{
				Port:          "abc",
				SourceBackend: "parquet",
			},
			wantErr:     true,
			errorString: "invalid source backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{Port: "abc", SourceBackend: "parquet"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port 'abc'", "invalid source backend 'parquet'"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestValidateExportDirNotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	cfg := Config{Port: "8080", SourceBackend: "xlsx", SourcePath: "./fund.xlsx", ExportDir: file}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "is not a directory") {
		t.Fatalf("expected export dir error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	originalVars := map[string]string{
		"PORT":           os.Getenv("PORT"),
		"SOURCE_BACKEND": os.Getenv("SOURCE_BACKEND"),
		"SOURCE_PATH":    os.Getenv("SOURCE_PATH"),
		"EXPORT_DIR":     os.Getenv("EXPORT_DIR"),
	}
	for key := range originalVars {
		os.Unsetenv(key)
	}
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()
		if cfg.Port != "8081" {
			t.Errorf("Load() Port = %v, want 8081", cfg.Port)
		}
		if cfg.SourceBackend != "xlsx" {
			t.Errorf("Load() SourceBackend = %v, want xlsx", cfg.SourceBackend)
		}
		if cfg.SourcePath != "./data/Snacks_Fund.xlsx" {
			t.Errorf("Load() SourcePath = %v, want ./data/Snacks_Fund.xlsx", cfg.SourcePath)
		}
		if cfg.ExportDir != "data" {
			t.Errorf("Load() ExportDir = %v, want data (source directory)", cfg.ExportDir)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("PORT", "9090")
		os.Setenv("SOURCE_BACKEND", "csv")
		os.Setenv("SOURCE_PATH", "/tmp/fund.csv")
		os.Setenv("EXPORT_DIR", "/tmp/exports")

		cfg := Load()
		if cfg.Port != "9090" {
			t.Errorf("Load() Port = %v, want 9090", cfg.Port)
		}
		if cfg.SourceBackend != "csv" {
			t.Errorf("Load() SourceBackend = %v, want csv", cfg.SourceBackend)
		}
		if cfg.SourcePath != "/tmp/fund.csv" {
			t.Errorf("Load() SourcePath = %v, want /tmp/fund.csv", cfg.SourcePath)
		}
		if cfg.ExportDir != "/tmp/exports" {
			t.Errorf("Load() ExportDir = %v, want /tmp/exports", cfg.ExportDir)
		}
	})
}
