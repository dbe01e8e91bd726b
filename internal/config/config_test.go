package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	// Load config without a file (should use defaults)
	cfg, err := Load(New(), filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if cfg.Report.SampleRows != 2 {
		t.Errorf("Expected SampleRows 2, got %d", cfg.Report.SampleRows)
	}
	if cfg.Report.SampleColumns != 10 {
		t.Errorf("Expected SampleColumns 10, got %d", cfg.Report.SampleColumns)
	}
	if cfg.Report.TruncateLength != 20 {
		t.Errorf("Expected TruncateLength 20, got %d", cfg.Report.TruncateLength)
	}
	if cfg.Report.BannerWidth != 80 {
		t.Errorf("Expected BannerWidth 80, got %d", cfg.Report.BannerWidth)
	}
	if cfg.Analysis.FileIDColumn != "file id" {
		t.Errorf("Expected FileIDColumn 'file id', got %q", cfg.Analysis.FileIDColumn)
	}
	if len(cfg.Analysis.Rules) != len(DefaultRules()) {
		t.Errorf("Expected %d default rules, got %d", len(DefaultRules()), len(cfg.Analysis.Rules))
	}
	if !cfg.UI.Progress {
		t.Error("Expected progress to be enabled by default")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
report:
  sample_rows: 5
  truncate_length: 12

analysis:
  file_id_column: "case #"
  detect_contact_fields: true
  rules:
    - keyword: "invoice"
      category: "document"
    - keyword: "tenant"
      category: "contact"

log:
  verbose: true
`
	path := filepath.Join(t.TempDir(), "workbook-recon.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Report.SampleRows != 5 {
		t.Errorf("Expected SampleRows 5, got %d", cfg.Report.SampleRows)
	}
	if cfg.Report.TruncateLength != 12 {
		t.Errorf("Expected TruncateLength 12, got %d", cfg.Report.TruncateLength)
	}
	// Unset keys keep their defaults
	if cfg.Report.SampleColumns != 10 {
		t.Errorf("Expected SampleColumns 10, got %d", cfg.Report.SampleColumns)
	}
	if cfg.Analysis.FileIDColumn != "case #" {
		t.Errorf("Expected FileIDColumn 'case #', got %q", cfg.Analysis.FileIDColumn)
	}
	if !cfg.Analysis.DetectContactFields {
		t.Error("Expected DetectContactFields to be true")
	}
	if len(cfg.Analysis.Rules) != 2 || cfg.Analysis.Rules[1].Keyword != "tenant" {
		t.Errorf("Unexpected rules: %+v", cfg.Analysis.Rules)
	}
	if !cfg.Log.Verbose {
		t.Error("Expected Verbose to be true")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("WORKBOOK_RECON_REPORT_SAMPLE_ROWS", "7")

	cfg, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Report.SampleRows != 7 {
		t.Errorf("Expected SampleRows 7 from env, got %d", cfg.Report.SampleRows)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("report: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(New(), path); err == nil {
		t.Error("Expected an error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"zero sample rows", func(c *Config) { c.Report.SampleRows = 0 }, ""},
		{"negative sample rows", func(c *Config) { c.Report.SampleRows = -1 }, "sample_rows"},
		{"zero sample columns", func(c *Config) { c.Report.SampleColumns = 0 }, "sample_columns"},
		{"zero truncate", func(c *Config) { c.Report.TruncateLength = 0 }, "truncate_length"},
		{"zero banner", func(c *Config) { c.Report.BannerWidth = 0 }, "banner_width"},
		{"empty keyword", func(c *Config) {
			c.Analysis.Rules = []RuleConfig{{Keyword: " ", Category: CategoryDocument}}
		}, "keyword"},
		{"unknown category", func(c *Config) {
			c.Analysis.Rules = []RuleConfig{{Keyword: "bill", Category: "invoice"}}
		}, "unknown category"},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		err := cfg.Validate()
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: expected error containing %q, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Default().Print(&buf)

	out := buf.String()
	if !strings.Contains(out, `"pm info" -> contact`) {
		t.Errorf("Print output missing rule: %s", out)
	}
	if !strings.Contains(out, "Sample Rows:      2") {
		t.Errorf("Print output missing sample rows: %s", out)
	}
}
