package layout

import (
	"strings"

	"github.com/tsawler/shatranj/model"
)

// BlockConfig holds configuration for block detection.
type BlockConfig struct {
	// MergeDistance is the maximum vertical gap, in layout units,
	// between an incoming line and the block's reference position for
	// the line to join the block. The comparison is inclusive.
	MergeDistance float64

	// MinBlockTokens is the minimum number of tokens a block needs to
	// survive. Smaller groups are usually page furniture or specks and
	// are dropped.
	MinBlockTokens int
}

// DefaultBlockConfig returns sensible default configuration.
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		MergeDistance:  20.0,
		MinBlockTokens: 2,
	}
}

// BlockLayout represents the detected block structure of a page.
type BlockLayout struct {
	// Blocks are the detected content blocks in reading order
	Blocks []model.Block

	// Dropped is the number of groups discarded for holding fewer
	// than MinBlockTokens tokens
	Dropped int

	// PageWidth is the width of the page
	PageWidth float64

	// PageHeight is the height of the page
	PageHeight float64

	// Config is the configuration used for detection
	Config BlockConfig
}

// BlockDetector groups consecutive lines into content blocks.
type BlockDetector struct {
	config BlockConfig
}

// NewBlockDetector creates a new block detector with default configuration.
func NewBlockDetector() *BlockDetector {
	return &BlockDetector{
		config: DefaultBlockConfig(),
	}
}

// NewBlockDetectorWithConfig creates a block detector with custom configuration.
func NewBlockDetectorWithConfig(config BlockConfig) *BlockDetector {
	if config.MergeDistance <= 0 {
		config.MergeDistance = DefaultBlockConfig().MergeDistance
	}
	if config.MinBlockTokens <= 0 {
		config.MinBlockTokens = DefaultBlockConfig().MinBlockTokens
	}
	return &BlockDetector{
		config: config,
	}
}

// Detect groups lines into blocks. A line joins the open block while
// the vertical distance between its first token and the block's
// reference position, the top of the block's first line, stays within
// MergeDistance. The reference does not advance as lines append, so a
// block's vertical reach is bounded by its opening line.
func (d *BlockDetector) Detect(lines []model.Line, pageWidth, pageHeight float64) *BlockLayout {
	layout := &BlockLayout{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Config:     d.config,
	}
	if len(lines) == 0 {
		return layout
	}

	// Step 1: Partition lines against each block's opening position
	var groups [][]model.Line
	var current []model.Line
	referenceTop := 0.0

	for _, line := range lines {
		if line.TokenCount() == 0 {
			continue
		}
		top := lineTop(line)
		if len(current) == 0 {
			current = []model.Line{line}
			referenceTop = top
			continue
		}
		if absFloat64(top-referenceTop) <= d.config.MergeDistance {
			current = append(current, line)
			continue
		}
		groups = append(groups, current)
		current = []model.Line{line}
		referenceTop = top
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	// Step 2: Build blocks, dropping groups under the token minimum
	for _, group := range groups {
		block, ok := d.buildBlock(group)
		if !ok {
			layout.Dropped++
			continue
		}
		block.Index = len(layout.Blocks)
		layout.Blocks = append(layout.Blocks, block)
	}

	return layout
}

// buildBlock assembles one block from its member lines. The boolean is
// false when the group holds too few tokens.
func (d *BlockDetector) buildBlock(lines []model.Line) (model.Block, bool) {
	total := 0
	for _, line := range lines {
		total += len(line.Tokens)
	}
	if total < d.config.MinBlockTokens {
		return model.Block{}, false
	}

	tokens := make([]model.Token, 0, total)
	for _, line := range lines {
		tokens = append(tokens, line.Tokens...)
	}

	language := dominantLanguage(tokens)
	direction := directionFor(language)
	font, size := dominantFont(tokens)

	// Re-index member lines within the block
	members := make([]model.Line, len(lines))
	copy(members, lines)
	for i := range members {
		members[i].Index = i
	}

	box := members[0].BBox
	for _, line := range members[1:] {
		box = box.Union(line.BBox)
	}

	return model.Block{
		Text:      blockText(members, direction),
		BBox:      box,
		FontName:  font,
		FontSize:  size,
		Language:  language,
		Direction: direction,
		Lines:     members,
	}, true
}

// blockText joins member lines with newlines. Lines store tokens left
// to right; in a right-to-left block each line is read in reverse so
// the assembled text follows reading order.
func blockText(lines []model.Line, direction model.Direction) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = lineText(line, direction)
	}
	return strings.Join(parts, "\n")
}

func lineText(line model.Line, direction model.Direction) string {
	n := len(line.Tokens)
	words := make([]string, n)
	if direction == model.RTL {
		for i, tok := range line.Tokens {
			words[n-1-i] = tok.Text
		}
	} else {
		for i, tok := range line.Tokens {
			words[i] = tok.Text
		}
	}
	return strings.Join(words, " ")
}

// lineTop returns the vertical position of a line's first token.
func lineTop(line model.Line) float64 {
	return line.Tokens[0].BBox.Top
}

// dominantLanguage picks the majority token language. English wins
// ties so a stray Arabic glyph in an English block does not flip the
// whole block to right-to-left.
func dominantLanguage(tokens []model.Token) model.Language {
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
		return model.LanguageArabic
	}
	if english > 0 {
		return model.LanguageEnglish
	}
	return model.LanguageUnknown
}

func directionFor(lang model.Language) model.Direction {
	switch lang {
	case model.LanguageArabic:
		return model.RTL
	case model.LanguageEnglish:
		return model.LTR
	default:
		return model.Neutral
	}
}

// dominantFont picks the most frequent font name and size among the
// tokens, breaking ties in favor of first appearance.
func dominantFont(tokens []model.Token) (string, float64) {
	if len(tokens) == 0 {
		return "", 0
	}

	nameCounts := make(map[string]int)
	sizeCounts := make(map[float64]int)
	name := tokens[0].FontName
	size := tokens[0].FontSize

	for _, tok := range tokens {
		nameCounts[tok.FontName]++
		if nameCounts[tok.FontName] > nameCounts[name] {
			name = tok.FontName
		}
		sizeCounts[tok.FontSize]++
		if sizeCounts[tok.FontSize] > sizeCounts[size] {
			size = tok.FontSize
		}
	}
	return name, size
}

// BlockLayout methods

// BlockCount returns the number of detected blocks.
func (l *BlockLayout) BlockCount() int {
	if l == nil {
		return 0
	}
	return len(l.Blocks)
}

// GetBlock returns a specific block by index.
func (l *BlockLayout) GetBlock(index int) *model.Block {
	if l == nil || index < 0 || index >= len(l.Blocks) {
		return nil
	}
	return &l.Blocks[index]
}

// GetText returns the text of every block separated by blank lines.
func (l *BlockLayout) GetText() string {
	if l == nil || len(l.Blocks) == 0 {
		return ""
	}
	parts := make([]string, len(l.Blocks))
	for i := range l.Blocks {
		parts[i] = l.Blocks[i].Text
	}
	return strings.Join(parts, "\n\n")
}
