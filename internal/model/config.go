package model

import "time"

// Config holds the complete configuration for a run
type Config struct {
	Input     InputConfig     `yaml:"input" mapstructure:"input"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Aggregate AggregateConfig `yaml:"aggregate" mapstructure:"aggregate"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// InputConfig locates the input tables (.csv or .xlsx)
type InputConfig struct {
	Questionnaire string `yaml:"questionnaire" mapstructure:"questionnaire"` // Context definitions, shared by all languages
	Examples      string `yaml:"examples" mapstructure:"examples"`           // Per-language example table
	Evidence      string `yaml:"evidence" mapstructure:"evidence"`           // Per-language evidence table
	Merged        string `yaml:"merged" mapstructure:"merged"`               // Cross-language summary read by the checker
}

// OutputConfig controls where tables are written
type OutputConfig struct {
	Summary    string `yaml:"summary" mapstructure:"summary"`         // Summary path for a single language
	Dir        string `yaml:"dir" mapstructure:"dir"`                 // Output directory for batch runs
	NullMarker string `yaml:"null_marker" mapstructure:"null_marker"` // Rendered for null cells
}

// AggregateConfig tunes the judgment aggregator
type AggregateConfig struct {
	EvidenceRefColumn string `yaml:"evidence_ref_column" mapstructure:"evidence_ref_column"` // Evidence row identifier column
	Strict            bool   `yaml:"strict" mapstructure:"strict"`                           // Fail on heterogeneous groups
}

// CacheConfig controls the in-memory table cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// LogConfig controls logging
type LogConfig struct {
	JSON    bool `yaml:"json" mapstructure:"json"`
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Questionnaire: "questionnaire_table.csv",
			Examples:      "examples.csv",
			Evidence:      "evidence.csv",
			Merged:        "merged_output_vertical.csv",
		},
		Output: OutputConfig{
			Summary:    "summary_generated.csv",
			Dir:        "./summaries",
			NullMarker: "NaN",
		},
		Aggregate: AggregateConfig{
			EvidenceRefColumn: "ref",
			Strict:            false,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Log: LogConfig{
			JSON:    false,
			Verbose: false,
		},
	}
}
