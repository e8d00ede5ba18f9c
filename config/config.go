// Package config loads processing configuration from YAML.
//
// The zero value of every field means "use the default", so a partial
// config file only overrides what it names. Defaults are applied both
// by [Default] and after loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/shatranj/logging"
)

// Config represents the full processing configuration.
type Config struct {
	// Layout configures the geometric grouping stages
	Layout LayoutConfig `yaml:"layout" json:"layout"`

	// Chess configures content classification
	Chess ChessConfig `yaml:"chess" json:"chess"`

	// Translate configures the translation stages
	Translate TranslateConfig `yaml:"translate" json:"translate"`

	// Pipeline configures page-level execution
	Pipeline PipelineConfig `yaml:"pipeline" json:"pipeline"`

	// Logging configures log output
	Logging logging.Config `yaml:"logging" json:"logging"`
}

// LayoutConfig configures the geometric grouping stages.
type LayoutConfig struct {
	// LineTolerance is the vertical band, in layout units, within which
	// tokens belong to the same line
	LineTolerance float64 `yaml:"line_tolerance" json:"line_tolerance"`

	// BlockMergeDistance is the maximum vertical distance between a
	// block's first line and a candidate line
	BlockMergeDistance float64 `yaml:"block_merge_distance" json:"block_merge_distance"`

	// MinBlockTokens drops blocks holding fewer tokens
	MinBlockTokens int `yaml:"min_block_tokens" json:"min_block_tokens"`

	// MergeMaxGap is the maximum vertical gap between same-type blocks
	// fused by the merger
	MergeMaxGap float64 `yaml:"merge_max_gap" json:"merge_max_gap"`

	// ColumnBucketWidth is the horizontal bucket size for column detection
	ColumnBucketWidth float64 `yaml:"column_bucket_width" json:"column_bucket_width"`

	// ColumnMinTokens is the minimum token count for a bucket to count
	// as a column
	ColumnMinTokens int `yaml:"column_min_tokens" json:"column_min_tokens"`

	// HeadingMaxWords is the word limit for the short-capitalized
	// heading rule
	HeadingMaxWords int `yaml:"heading_max_words" json:"heading_max_words"`

	// HeadingMinFontSize marks blocks set larger than this as headings
	HeadingMinFontSize float64 `yaml:"heading_min_font_size" json:"heading_min_font_size"`

	// HeadingLevel1FontSize and HeadingLevel2FontSize split headings
	// into levels by size
	HeadingLevel1FontSize float64 `yaml:"heading_level1_font_size" json:"heading_level1_font_size"`
	HeadingLevel2FontSize float64 `yaml:"heading_level2_font_size" json:"heading_level2_font_size"`
}

// ChessConfig configures content classification.
type ChessConfig struct {
	// MinDiagramLines is the line threshold for diagram detection
	MinDiagramLines int `yaml:"min_diagram_lines" json:"min_diagram_lines"`

	// ExtraKeywords extends the reserved chess vocabulary
	ExtraKeywords []string `yaml:"extra_keywords,omitempty" json:"extra_keywords,omitempty"`
}

// TranslateConfig configures the translation stages.
type TranslateConfig struct {
	// SourceLanguage is the language translated from (e.g., "en")
	SourceLanguage string `yaml:"source_language" json:"source_language"`

	// TargetLanguage is the language translated to (e.g., "ar")
	TargetLanguage string `yaml:"target_language" json:"target_language"`

	// Attempts is the number of tries per text
	Attempts int `yaml:"attempts" json:"attempts"`

	// Backoff is the pause between attempts (Go duration format, e.g., "1s")
	Backoff string `yaml:"backoff" json:"backoff"`

	// RequestsPerMinute throttles calls to the translation service
	// (0 = unlimited)
	RequestsPerMinute int `yaml:"requests_per_minute" json:"requests_per_minute"`

	// CacheCapacity bounds the in-memory translation cache
	CacheCapacity int `yaml:"cache_capacity" json:"cache_capacity"`
}

// PipelineConfig configures page-level execution.
type PipelineConfig struct {
	// Workers bounds the number of pages processed concurrently
	Workers int `yaml:"workers" json:"workers"`
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse loads configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&config)
	return &config, nil
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	var config Config
	ApplyDefaults(&config)
	return &config
}

// ApplyDefaults fills zero values with defaults. Load, Parse and
// Default call it automatically; call it directly when assembling a
// Config literal in code.
func ApplyDefaults(c *Config) {
	if c.Layout.LineTolerance == 0 {
		c.Layout.LineTolerance = 3.0
	}
	if c.Layout.BlockMergeDistance == 0 {
		c.Layout.BlockMergeDistance = 20.0
	}
	if c.Layout.MinBlockTokens == 0 {
		c.Layout.MinBlockTokens = 2
	}
	if c.Layout.MergeMaxGap == 0 {
		c.Layout.MergeMaxGap = 30.0
	}
	if c.Layout.ColumnBucketWidth == 0 {
		c.Layout.ColumnBucketWidth = 50.0
	}
	if c.Layout.ColumnMinTokens == 0 {
		c.Layout.ColumnMinTokens = 3
	}
	if c.Layout.HeadingMaxWords == 0 {
		c.Layout.HeadingMaxWords = 10
	}
	if c.Layout.HeadingMinFontSize == 0 {
		c.Layout.HeadingMinFontSize = 12.0
	}
	if c.Layout.HeadingLevel1FontSize == 0 {
		c.Layout.HeadingLevel1FontSize = 18.0
	}
	if c.Layout.HeadingLevel2FontSize == 0 {
		c.Layout.HeadingLevel2FontSize = 14.0
	}

	if c.Chess.MinDiagramLines == 0 {
		c.Chess.MinDiagramLines = 8
	}

	if c.Translate.SourceLanguage == "" {
		c.Translate.SourceLanguage = "en"
	}
	if c.Translate.TargetLanguage == "" {
		c.Translate.TargetLanguage = "ar"
	}
	if c.Translate.Attempts == 0 {
		c.Translate.Attempts = 3
	}
	if c.Translate.Backoff == "" {
		c.Translate.Backoff = "1s"
	}
	if c.Translate.CacheCapacity == 0 {
		c.Translate.CacheCapacity = 1000
	}

	if c.Pipeline.Workers == 0 {
		c.Pipeline.Workers = 4
	}

	if c.Logging.Style == "" {
		c.Logging.Style = logging.StyleTerminal
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
