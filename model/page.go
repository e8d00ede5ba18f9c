package model

// PageStats holds the per-page counters surfaced to document reporting
type PageStats struct {
	// Blocks is the total number of blocks on the page
	Blocks int `json:"blocks" yaml:"blocks"`

	// ProseBlocks, ChessBlocks and DiagramBlocks count blocks by type
	ProseBlocks   int `json:"prose_blocks" yaml:"prose_blocks"`
	ChessBlocks   int `json:"chess_blocks" yaml:"chess_blocks"`
	DiagramBlocks int `json:"diagram_blocks" yaml:"diagram_blocks"`

	// Headings counts blocks recognized as headings
	Headings int `json:"headings" yaml:"headings"`

	// MovesFound, VariationsFound and AnnotationsFound count classified
	// chess elements across the page
	MovesFound       int `json:"moves_found" yaml:"moves_found"`
	VariationsFound  int `json:"variations_found" yaml:"variations_found"`
	AnnotationsFound int `json:"annotations_found" yaml:"annotations_found"`

	// Translated counts blocks whose translation succeeded
	Translated int `json:"translated" yaml:"translated"`

	// TranslationsFailed counts blocks degraded to their original text
	// after the retry budget was exhausted
	TranslationsFailed int `json:"translations_failed" yaml:"translations_failed"`

	// CacheHits counts translations served from the cache
	CacheHits int `json:"cache_hits" yaml:"cache_hits"`

	// DroppedWords counts raw words discarded during normalization
	DroppedWords int `json:"dropped_words" yaml:"dropped_words"`

	// Columns is the number of detected text columns
	Columns int `json:"columns" yaml:"columns"`

	// DominantFont and DominantFontSize describe the most frequent font on
	// the page
	DominantFont     string  `json:"dominant_font,omitempty" yaml:"dominant_font,omitempty"`
	DominantFontSize float64 `json:"dominant_font_size,omitempty" yaml:"dominant_font_size,omitempty"`
}

// Add accumulates another stats record into this one. Column and font
// fields are not merged; they stay page-local.
func (s *PageStats) Add(other PageStats) {
	s.Blocks += other.Blocks
	s.ProseBlocks += other.ProseBlocks
	s.ChessBlocks += other.ChessBlocks
	s.DiagramBlocks += other.DiagramBlocks
	s.Headings += other.Headings
	s.MovesFound += other.MovesFound
	s.VariationsFound += other.VariationsFound
	s.AnnotationsFound += other.AnnotationsFound
	s.Translated += other.Translated
	s.TranslationsFailed += other.TranslationsFailed
	s.CacheHits += other.CacheHits
	s.DroppedWords += other.DroppedWords
}

// Page is the per-page aggregate: the ordered sequence of classified blocks
// plus page metadata. It is created once per page and read-only after
// assembly.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the page dimensions in layout units
	Width  float64
	Height float64

	// Blocks are the page's blocks in reading order
	Blocks []Block

	// Direction is the dominant text direction across the page
	Direction Direction

	// Stats are the per-page counters
	Stats PageStats
}

// BlockCount returns the number of blocks on the page
func (p *Page) BlockCount() int {
	if p == nil {
		return 0
	}
	return len(p.Blocks)
}

// GetBlock returns a specific block by index
func (p *Page) GetBlock(index int) *Block {
	if p == nil || index < 0 || index >= len(p.Blocks) {
		return nil
	}
	return &p.Blocks[index]
}

// BlocksByType returns the page's blocks of a given type, in reading order
func (p *Page) BlocksByType(t BlockType) []Block {
	if p == nil {
		return nil
	}
	var result []Block
	for _, b := range p.Blocks {
		if b.Type == t {
			result = append(result, b)
		}
	}
	return result
}

// Text returns the final text of all blocks in reading order, separated by
// blank lines. Translated blocks contribute their translated text.
func (p *Page) Text() string {
	if p == nil || len(p.Blocks) == 0 {
		return ""
	}

	var result string
	for i := range p.Blocks {
		blockText := p.Blocks[i].FinalText()
		result += blockText
		if i < len(p.Blocks)-1 && blockText != "" {
			result += "\n\n"
		}
	}
	return result
}
