package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/shatranj/model"
)

// LineConfig holds configuration for line detection.
type LineConfig struct {
	// YTolerance is the vertical band, in layout units, within which
	// tokens belong to the same line. The comparison is inclusive so a
	// token sitting exactly on the boundary still attaches, which
	// avoids spurious line splits from anti-aliased glyph metrics.
	YTolerance float64
}

// DefaultLineConfig returns sensible default configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		YTolerance: 3.0,
	}
}

// LineLayout represents the detected line structure of a page.
type LineLayout struct {
	// Lines are the detected text lines (sorted top to bottom)
	Lines []model.Line

	// PageWidth is the width of the page
	PageWidth float64

	// PageHeight is the height of the page
	PageHeight float64

	// Config is the configuration used for detection
	Config LineConfig
}

// LineDetector groups normalized tokens into text lines.
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration.
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration.
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	if config.YTolerance <= 0 {
		config.YTolerance = DefaultLineConfig().YTolerance
	}
	return &LineDetector{
		config: config,
	}
}

// Detect groups tokens into lines. Tokens are sorted by (top, x0), then
// walked once: a token within YTolerance of the current line's
// reference top joins that line, anything further starts a new line.
// The reference is the top of the line's first token, so a line cannot
// creep downward as members accumulate. Finished lines hold their
// tokens sorted by x0 ascending; right-to-left blocks reverse that
// order later during text assembly.
func (d *LineDetector) Detect(tokens []model.Token, pageWidth, pageHeight float64) *LineLayout {
	layout := &LineLayout{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Config:     d.config,
	}
	if len(tokens) == 0 {
		return layout
	}

	// Step 1: Sort by vertical position, then horizontal
	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Top != sorted[j].BBox.Top {
			return sorted[i].BBox.Top < sorted[j].BBox.Top
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	// Step 2: Group into lines against each line's first-token top
	var groups [][]model.Token
	var current []model.Token
	referenceTop := 0.0

	for _, tok := range sorted {
		if len(current) == 0 {
			current = []model.Token{tok}
			referenceTop = tok.BBox.Top
			continue
		}
		if absFloat64(tok.BBox.Top-referenceTop) <= d.config.YTolerance {
			current = append(current, tok)
			continue
		}
		groups = append(groups, current)
		current = []model.Token{tok}
		referenceTop = tok.BBox.Top
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	// Step 3: Build Line values with geometry and direction
	layout.Lines = make([]model.Line, 0, len(groups))
	for i, group := range groups {
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].BBox.X0 < group[b].BBox.X0
		})
		layout.Lines = append(layout.Lines, model.Line{
			Tokens:    group,
			BBox:      tokensBBox(group),
			Direction: lineDirection(group),
			Index:     i,
		})
	}

	return layout
}

// lineDirection derives a line's direction from the language of its
// majority token.
func lineDirection(tokens []model.Token) model.Direction {
	arabic := 0
	english := 0
	for _, tok := range tokens {
		switch tok.Language {
		case model.LanguageArabic:
			arabic++
		case model.LanguageEnglish:
			english++
		}
	}
	if arabic > english {
		return model.RTL
	}
	if english > 0 {
		return model.LTR
	}
	return model.Neutral
}

// LineLayout methods

// LineCount returns the number of detected lines.
func (l *LineLayout) LineCount() int {
	if l == nil {
		return 0
	}
	return len(l.Lines)
}

// GetLine returns a specific line by index.
func (l *LineLayout) GetLine(index int) *model.Line {
	if l == nil || index < 0 || index >= len(l.Lines) {
		return nil
	}
	return &l.Lines[index]
}

// GetText returns all line text in stored order, one line per row.
func (l *LineLayout) GetText() string {
	if l == nil || len(l.Lines) == 0 {
		return ""
	}
	parts := make([]string, len(l.Lines))
	for i := range l.Lines {
		parts[i] = l.Lines[i].Text()
	}
	return strings.Join(parts, "\n")
}

// Shared geometry helpers

// tokensBBox returns the component-wise union of the token boxes.
func tokensBBox(tokens []model.Token) model.BBox {
	if len(tokens) == 0 {
		return model.BBox{}
	}
	box := tokens[0].BBox
	for _, tok := range tokens[1:] {
		box = box.Union(tok.BBox)
	}
	return box
}

// absFloat64 returns the absolute value of a float64.
func absFloat64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
