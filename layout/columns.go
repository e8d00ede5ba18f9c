package layout

import (
	"math"
	"sort"

	"github.com/tsawler/shatranj/model"
)

// Column represents a detected text column on a page.
type Column struct {
	// BBox is the bounding box of the column's content
	BBox model.BBox

	// Tokens are the member tokens, sorted top to bottom
	Tokens []model.Token

	// Index is the column's position (0-based, left to right)
	Index int
}

// AverageTokenWidth returns the mean width of the column's tokens.
func (c *Column) AverageTokenWidth() float64 {
	if c == nil || len(c.Tokens) == 0 {
		return 0
	}
	total := 0.0
	for _, tok := range c.Tokens {
		total += tok.BBox.Width()
	}
	return total / float64(len(c.Tokens))
}

// ColumnLayout represents the detected column structure of a page.
type ColumnLayout struct {
	// Columns are the detected columns, sorted left to right
	Columns []Column

	// PageWidth is the width of the page
	PageWidth float64

	// PageHeight is the height of the page
	PageHeight float64

	// Config is the configuration used for detection
	Config ColumnConfig
}

// ColumnConfig holds configuration for column detection.
type ColumnConfig struct {
	// BucketWidth is the width, in layout units, of the vertical strips
	// token centers are histogrammed into. Default: 50.
	BucketWidth float64

	// MinTokens is the minimum number of tokens a strip needs before it
	// counts as a column. Strips below this are stray marginalia or
	// page numbers, not body text. Default: 3.
	MinTokens int
}

// DefaultColumnConfig returns sensible default configuration.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		BucketWidth: 50.0,
		MinTokens:   3,
	}
}

// ColumnDetector detects multi-column layouts from token positions.
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a new column detector with default configuration.
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{
		config: DefaultColumnConfig(),
	}
}

// NewColumnDetectorWithConfig creates a column detector with custom configuration.
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	if config.BucketWidth <= 0 {
		config.BucketWidth = DefaultColumnConfig().BucketWidth
	}
	if config.MinTokens <= 0 {
		config.MinTokens = DefaultColumnConfig().MinTokens
	}
	return &ColumnDetector{
		config: config,
	}
}

// Detect histograms token horizontal centers into vertical strips of
// BucketWidth units and keeps every strip populated by at least
// MinTokens tokens as a column.
func (d *ColumnDetector) Detect(tokens []model.Token, pageWidth, pageHeight float64) *ColumnLayout {
	layout := &ColumnLayout{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Config:     d.config,
	}
	if len(tokens) == 0 {
		return layout
	}

	// Step 1: Histogram token centers into strips
	buckets := make(map[float64][]model.Token)
	for _, tok := range tokens {
		key := math.Floor(tok.BBox.Center().X/d.config.BucketWidth) * d.config.BucketWidth
		buckets[key] = append(buckets[key], tok)
	}

	// Step 2: Keep populated strips as columns, left to right
	keys := make([]float64, 0, len(buckets))
	for key, members := range buckets {
		if len(members) >= d.config.MinTokens {
			keys = append(keys, key)
		}
	}
	sort.Float64s(keys)

	for i, key := range keys {
		members := make([]model.Token, len(buckets[key]))
		copy(members, buckets[key])
		sort.SliceStable(members, func(a, b int) bool {
			if members[a].BBox.Top != members[b].BBox.Top {
				return members[a].BBox.Top < members[b].BBox.Top
			}
			return members[a].BBox.X0 < members[b].BBox.X0
		})
		layout.Columns = append(layout.Columns, Column{
			BBox:   tokensBBox(members),
			Tokens: members,
			Index:  i,
		})
	}

	return layout
}

// ColumnLayout methods

// ColumnCount returns the number of detected columns.
func (l *ColumnLayout) ColumnCount() int {
	if l == nil {
		return 0
	}
	return len(l.Columns)
}

// IsSingleColumn returns true if at most one column was detected.
func (l *ColumnLayout) IsSingleColumn() bool {
	return l.ColumnCount() <= 1
}

// IsMultiColumn returns true if multiple columns were detected.
func (l *ColumnLayout) IsMultiColumn() bool {
	return l.ColumnCount() > 1
}

// GetColumn returns a specific column by index.
func (l *ColumnLayout) GetColumn(index int) *Column {
	if l == nil || index < 0 || index >= len(l.Columns) {
		return nil
	}
	return &l.Columns[index]
}
