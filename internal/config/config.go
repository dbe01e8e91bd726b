package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultConfigFile is looked up in the working directory when no path is given
const DefaultConfigFile = "workbook-recon.yaml"

// EnvPrefix prefixes environment overrides, e.g. WORKBOOK_RECON_REPORT_SAMPLE_ROWS
const EnvPrefix = "WORKBOOK_RECON"

// Categories a keyword rule may assign
const (
	CategoryDocument = "document"
	CategoryContact  = "contact"
)

// Config represents the application configuration
type Config struct {
	Report   ReportConfig   `mapstructure:"report"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// ReportConfig holds the limits of the per-sheet report block
type ReportConfig struct {
	SampleRows     int `mapstructure:"sample_rows"`     // Data rows shown in the sample block
	SampleColumns  int `mapstructure:"sample_columns"`  // Columns shown per sample row
	TruncateLength int `mapstructure:"truncate_length"` // Longer string values are cut to this many characters
	BannerWidth    int `mapstructure:"banner_width"`    // Width the sheet banner is centered in
}

// AnalysisConfig holds the heuristic analysis settings
type AnalysisConfig struct {
	Rules               []RuleConfig `mapstructure:"rules"`
	FileIDColumn        string       `mapstructure:"file_id_column"`        // Header counted for unique file IDs
	DetectContactFields bool         `mapstructure:"detect_contact_fields"` // List email/phone/... columns in contact sheets
	Sheets              []string     `mapstructure:"sheets"`                // Restrict the report to these sheets
}

// RuleConfig maps a sheet-name keyword to an analysis category
type RuleConfig struct {
	Keyword  string `mapstructure:"keyword"`
	Category string `mapstructure:"category"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File    string `mapstructure:"file"`    // Optional log file; empty logs to stderr only
	Verbose bool   `mapstructure:"verbose"` // Show DEBUG logs on stderr
}

// UIConfig holds terminal UI settings
type UIConfig struct {
	Progress bool `mapstructure:"progress"` // Show a progress bar on stderr when it is a terminal
}

// DefaultRules are the sheet-name keywords checked when no rules are configured
func DefaultRules() []RuleConfig {
	return []RuleConfig{
		{Keyword: "document", Category: CategoryDocument},
		{Keyword: "summons", Category: CategoryDocument},
		{Keyword: "aff", Category: CategoryDocument},
		{Keyword: "pm info", Category: CategoryContact},
		{Keyword: "client", Category: CategoryContact},
		{Keyword: "contact", Category: CategoryContact},
	}
}

// New returns a viper instance with defaults and environment overrides set.
// Callers may bind flags to it before passing it to Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file into v and unmarshals it.
// A missing file is not an error: defaults apply.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigFile
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Analysis.Rules) == 0 {
		cfg.Analysis.Rules = DefaultRules()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults alone always decode
	_ = v.Unmarshal(&cfg)
	cfg.Analysis.Rules = DefaultRules()
	return &cfg
}

// setDefaults configures the default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("report.sample_rows", 2)
	v.SetDefault("report.sample_columns", 10)
	v.SetDefault("report.truncate_length", 20)
	v.SetDefault("report.banner_width", 80)

	v.SetDefault("analysis.file_id_column", "file id")
	v.SetDefault("analysis.detect_contact_fields", false)
	v.SetDefault("analysis.sheets", []string{})

	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)

	v.SetDefault("ui.progress", true)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Report.SampleRows < 0 {
		return fmt.Errorf("report.sample_rows must not be negative")
	}
	if c.Report.SampleColumns <= 0 {
		return fmt.Errorf("report.sample_columns must be positive")
	}
	if c.Report.TruncateLength <= 0 {
		return fmt.Errorf("report.truncate_length must be positive")
	}
	if c.Report.BannerWidth <= 0 {
		return fmt.Errorf("report.banner_width must be positive")
	}

	for i, rule := range c.Analysis.Rules {
		if strings.TrimSpace(rule.Keyword) == "" {
			return fmt.Errorf("analysis.rules[%d]: keyword cannot be empty", i)
		}
		switch rule.Category {
		case CategoryDocument, CategoryContact:
		default:
			return fmt.Errorf("analysis.rules[%d]: unknown category %q", i, rule.Category)
		}
	}

	return nil
}

// Print writes the effective configuration
func (c *Config) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Workbook Recon Configuration ===")
	fmt.Fprintf(w, "Sample Rows:      %d\n", c.Report.SampleRows)
	fmt.Fprintf(w, "Sample Columns:   %d\n", c.Report.SampleColumns)
	fmt.Fprintf(w, "Truncate Length:  %d\n", c.Report.TruncateLength)
	fmt.Fprintf(w, "Banner Width:     %d\n", c.Report.BannerWidth)
	for _, rule := range c.Analysis.Rules {
		fmt.Fprintf(w, "Rule:             %q -> %s\n", rule.Keyword, rule.Category)
	}
	fmt.Fprintf(w, "File ID Column:   %s\n", c.Analysis.FileIDColumn)
	fmt.Fprintf(w, "Contact Fields:   %v\n", c.Analysis.DetectContactFields)
	fmt.Fprintf(w, "Sheets:           %v\n", c.Analysis.Sheets)
	fmt.Fprintf(w, "Log File:         %s\n", c.Log.File)
	fmt.Fprintln(w, "====================================")
}
