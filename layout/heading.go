package layout

import (
	"strings"
	"unicode"

	"github.com/tsawler/shatranj/model"
)

// HeadingConfig holds configuration for heading detection.
type HeadingConfig struct {
	// MaxWords is the maximum word count for a short capitalized block
	// to qualify as a heading. Default: 10.
	MaxWords int

	// MinFontSize is the font size above which a block qualifies as a
	// heading regardless of wording. Default: 12.
	MinFontSize float64

	// Level1FontSize and Level2FontSize assign heading levels: sizes
	// above Level1FontSize map to level 1, above Level2FontSize to
	// level 2, and everything else to level 3.
	// Defaults: 18 and 14.
	Level1FontSize float64
	Level2FontSize float64
}

// DefaultHeadingConfig returns sensible default configuration.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MaxWords:       10,
		MinFontSize:    12.0,
		Level1FontSize: 18.0,
		Level2FontSize: 14.0,
	}
}

// HeadingDetector flags blocks that look like section headings: short
// capitalized runs, all-caps text, oversized fonts, or bold faces.
type HeadingDetector struct {
	config HeadingConfig
}

// NewHeadingDetector creates a new heading detector with default configuration.
func NewHeadingDetector() *HeadingDetector {
	return &HeadingDetector{
		config: DefaultHeadingConfig(),
	}
}

// NewHeadingDetectorWithConfig creates a heading detector with custom configuration.
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	if config.MaxWords <= 0 {
		config.MaxWords = DefaultHeadingConfig().MaxWords
	}
	if config.MinFontSize <= 0 {
		config.MinFontSize = DefaultHeadingConfig().MinFontSize
	}
	if config.Level1FontSize <= 0 {
		config.Level1FontSize = DefaultHeadingConfig().Level1FontSize
	}
	if config.Level2FontSize <= 0 {
		config.Level2FontSize = DefaultHeadingConfig().Level2FontSize
	}
	return &HeadingDetector{
		config: config,
	}
}

// IsHeading reports whether a block looks like a heading.
func (d *HeadingDetector) IsHeading(block *model.Block) bool {
	if block == nil {
		return false
	}
	text := strings.TrimSpace(block.Text)
	if text == "" {
		return false
	}
	if isAllUpper(text) {
		return true
	}
	if len(strings.Fields(text)) <= d.config.MaxWords && startsUpper(text) {
		return true
	}
	if block.FontSize > d.config.MinFontSize {
		return true
	}
	return isBoldFont(block.FontName)
}

// Level returns the heading level for a block, 1 for the largest fonts
// down to 3. The block is assumed to have passed IsHeading.
func (d *HeadingDetector) Level(block *model.Block) int {
	if block == nil {
		return 0
	}
	if block.FontSize > d.config.Level1FontSize {
		return 1
	}
	if block.FontSize > d.config.Level2FontSize {
		return 2
	}
	return 3
}

// Annotate stamps the heading level into the metadata of every prose
// block that looks like a heading and returns the number of headings
// found. Chess and diagram blocks are never headings.
func (d *HeadingDetector) Annotate(blocks []model.Block) int {
	count := 0
	for i := range blocks {
		if blocks[i].Type != model.BlockTypeProse {
			continue
		}
		if !d.IsHeading(&blocks[i]) {
			continue
		}
		blocks[i].Metadata.HeadingLevel = d.Level(&blocks[i])
		count++
	}
	return count
}

// isAllUpper reports whether the text contains at least one letter and
// no lowercase letters.
func isAllUpper(text string) bool {
	hasUpper := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// startsUpper reports whether the first rune is an uppercase letter.
func startsUpper(text string) bool {
	for _, r := range text {
		return unicode.IsUpper(r)
	}
	return false
}

// isBoldFont reports whether a font name advertises a bold face.
func isBoldFont(name string) bool {
	return strings.Contains(strings.ToLower(name), "bold")
}
