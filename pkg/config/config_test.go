package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FileExtension != ".zip" {
		t.Errorf("FileExtension = %q, want .zip", cfg.FileExtension)
	}
	if cfg.FileDelimiter != "," || cfg.OutputDelimiter != "," {
		t.Errorf("delimiters = %q/%q, want commas", cfg.FileDelimiter, cfg.OutputDelimiter)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	content := `file_folder: /data/drops
file_prefix: Trades
file_date: "20240101"
output_folder: /data/out
output_columns: 0,1,3-5
output_delimiter: tsv
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FileFolder != "/data/drops" || cfg.FilePrefix != "Trades" {
		t.Errorf("file selection = %q/%q, want values from the file", cfg.FileFolder, cfg.FilePrefix)
	}
	if cfg.FileExtension != ".zip" {
		t.Errorf("FileExtension = %q, want the default preserved", cfg.FileExtension)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.OutputDelim() != '\t' {
		t.Errorf("OutputDelim() = %q, want tab from the tsv alias", cfg.OutputDelim())
	}
	if cfg.Columns() == nil {
		t.Error("Columns() = nil, want the parsed spec")
	}
	if len(cfg.Dates()) != 1 {
		t.Errorf("Dates() has %d entries, want 1", len(cfg.Dates()))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for a missing config file")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CSVSIFT_FILE_FOLDER", "/env/drops")
	t.Setenv("CSVSIFT_FILE_DELIMITER", "tsv")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FileFolder != "/env/drops" {
		t.Errorf("FileFolder = %q, want the environment value", cfg.FileFolder)
	}
	if cfg.FileDelimiter != "tsv" {
		t.Errorf("FileDelimiter = %q, want the environment value", cfg.FileDelimiter)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.FileFolder = "/data/drops"
		cfg.OutputFolder = "/data/out"
		cfg.FileDate = "20240101"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "minimal valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing file folder",
			mutate:  func(c *Config) { c.FileFolder = "" },
			wantErr: true,
		},
		{
			name:    "missing output folder",
			mutate:  func(c *Config) { c.OutputFolder = "" },
			wantErr: true,
		},
		{
			name:    "no date selection",
			mutate:  func(c *Config) { c.FileDate = "" },
			wantErr: true,
		},
		{
			name: "range form alone is enough",
			mutate: func(c *Config) {
				c.FileDate = ""
				c.FileStartDate = "20240101"
				c.FileEndDate = "20240103"
			},
		},
		{
			name:    "multi character file delimiter",
			mutate:  func(c *Config) { c.FileDelimiter = "||" },
			wantErr: true,
		},
		{
			name:    "multi character output delimiter",
			mutate:  func(c *Config) { c.OutputDelimiter = "ab" },
			wantErr: true,
		},
		{
			name:   "csv alias normalizes",
			mutate: func(c *Config) { c.FileDelimiter = "csv" },
		},
		{
			name:    "bad output column range",
			mutate:  func(c *Config) { c.OutputColumns = "0,5-2" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSelection_SkipsOutputChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FileFolder = "/data/drops"
	cfg.FileDate = "20240101"
	// No output folder; selection-only validation should not care.

	if err := ValidateSelection(cfg); err != nil {
		t.Errorf("ValidateSelection() error = %v", err)
	}
	if cfg.FileDelim() != ',' {
		t.Errorf("FileDelim() = %q, want comma", cfg.FileDelim())
	}
}
