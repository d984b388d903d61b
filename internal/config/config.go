package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bre.yaml configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Policy  Policy        `yaml:"policy"`
}

// InputConfig locates the bureau report files.
type InputConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig names the generated report files.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	ResultsCSV  string `yaml:"results_csv"`
	FilteredCSV string `yaml:"filtered_csv"`
	ResultsJSON string `yaml:"results_json"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Policy holds the underwriting rule constants. The rule book does not fix
// these values, so they are configuration, not code.
type Policy struct {
	MaxDPD              int     `yaml:"max_dpd"`
	MinVintageMonths    int     `yaml:"min_vintage_months"`
	EnquiryWindowMonths int     `yaml:"enquiry_window_months"`
	MaxEnquiries        int     `yaml:"max_enquiries"`
	SecuredWeight       float64 `yaml:"secured_weight"`
	UnsecuredWeight     float64 `yaml:"unsecured_weight"`
	LimitFloor          float64 `yaml:"limit_floor"`
	LimitCeiling        float64 `yaml:"limit_ceiling"`
}

// Validate rejects policy values that can only come from a bad config edit.
// A failure here is fatal before any report file is touched.
func (p Policy) Validate() error {
	if p.MaxDPD < 0 {
		return fmt.Errorf("max_dpd must be >= 0, got %d", p.MaxDPD)
	}
	if p.MinVintageMonths < 0 {
		return fmt.Errorf("min_vintage_months must be >= 0, got %d", p.MinVintageMonths)
	}
	if p.EnquiryWindowMonths <= 0 {
		return fmt.Errorf("enquiry_window_months must be > 0, got %d", p.EnquiryWindowMonths)
	}
	if p.MaxEnquiries < 0 {
		return fmt.Errorf("max_enquiries must be >= 0, got %d", p.MaxEnquiries)
	}
	if p.SecuredWeight < 0 || p.UnsecuredWeight < 0 {
		return fmt.Errorf("category weights must be >= 0, got secured=%v unsecured=%v", p.SecuredWeight, p.UnsecuredWeight)
	}
	if p.LimitFloor < 0 {
		return fmt.Errorf("limit_floor must be >= 0, got %v", p.LimitFloor)
	}
	if p.LimitCeiling < p.LimitFloor {
		return fmt.Errorf("limit_ceiling (%v) must be >= limit_floor (%v)", p.LimitCeiling, p.LimitFloor)
	}
	return nil
}

// Load reads a bre.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the stock policy constants.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir: "files",
		},
		Output: OutputConfig{
			Dir:         "output",
			ResultsCSV:  "bre_results.csv",
			FilteredCSV: "bre_results_filtered.csv",
			ResultsJSON: "bre_results.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Policy: Policy{
			MaxDPD:              30,
			MinVintageMonths:    6,
			EnquiryWindowMonths: 6,
			MaxEnquiries:        10,
			SecuredWeight:       0.50,
			UnsecuredWeight:     0.30,
			LimitFloor:          50000,
			LimitCeiling:        300000,
		},
	}
}
