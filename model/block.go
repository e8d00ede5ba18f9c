package model

import "strings"

// BlockType classifies the content of a block
type BlockType int

const (
	// BlockTypeProse is ordinary text content
	BlockTypeProse BlockType = iota
	// BlockTypeChess is chess notation content (moves, results, annotations)
	BlockTypeChess
	// BlockTypeDiagram is a board diagram rendered as glyph lines
	BlockTypeDiagram
)

// String returns a string representation of the block type
func (t BlockType) String() string {
	switch t {
	case BlockTypeChess:
		return "chess"
	case BlockTypeDiagram:
		return "diagram"
	default:
		return "prose"
	}
}

// Line represents a single line of text: an ordered run of tokens sharing a
// vertical band. Tokens are stored in left-to-right geometric order;
// right-to-left rendering is applied when block text is assembled.
type Line struct {
	// Tokens are the member tokens, sorted by X0 ascending
	Tokens []Token

	// BBox is the union of the member token boxes
	BBox BBox

	// Direction is the reading direction derived from the language of the
	// line's majority token
	Direction Direction

	// Index is the line's position on the page (0-based, top to bottom)
	Index int
}

// TokenCount returns the number of tokens in the line
func (l *Line) TokenCount() int {
	if l == nil {
		return 0
	}
	return len(l.Tokens)
}

// Text returns the space-joined token texts in stored (geometric) order
func (l *Line) Text() string {
	if l == nil || len(l.Tokens) == 0 {
		return ""
	}
	parts := make([]string, len(l.Tokens))
	for i, tok := range l.Tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

// IsEmpty returns true if the line has no text content
func (l *Line) IsEmpty() bool {
	if l == nil {
		return true
	}
	for _, tok := range l.Tokens {
		if strings.TrimSpace(tok.Text) != "" {
			return false
		}
	}
	return true
}

// Metadata carries classification details attached to a block
type Metadata struct {
	// Matches maps a pattern category name (moves, castling, evaluation,
	// annotation, variation, ...) to the elements matched in the block text
	Matches map[string][]string

	// DiagramLines is the number of lines recognized as diagram content
	DiagramLines int

	// HeadingLevel is 1..3 for heading blocks, 0 otherwise
	HeadingLevel int
}

// MatchCount returns the number of matches recorded for a category
func (m Metadata) MatchCount(category string) int {
	return len(m.Matches[category])
}

// TotalMatches returns the number of matches across all categories
func (m Metadata) TotalMatches() int {
	total := 0
	for _, matches := range m.Matches {
		total += len(matches)
	}
	return total
}

// Block represents a geometrically and semantically coherent group of text
// lines on a page. A Block exclusively owns its Lines and their Tokens.
// Blocks are immutable after classification except for the translation
// fields, which are set once when a translation succeeds.
type Block struct {
	// ID is the block identifier, unique within its page
	ID string

	// Text is the assembled text: lines joined by newlines, tokens within a
	// line ordered by the block's reading direction
	Text string

	// BBox is the union of the member token boxes
	BBox BBox

	// FontName is the dominant font across member tokens
	FontName string

	// FontSize is the dominant font size across member tokens
	FontSize float64

	// Language is the dominant language across member tokens
	Language Language

	// Direction is the dominant reading direction
	Direction Direction

	// Lines are the member lines in top-to-bottom order
	Lines []Line

	// Type is the classified content type
	Type BlockType

	// Metadata carries classification details
	Metadata Metadata

	// Index is the block's position in reading order (0-based)
	Index int

	// NeedsTranslation is true for prose blocks in the source language
	NeedsTranslation bool

	// TranslatedText is the translated block text, empty until a
	// translation succeeds
	TranslatedText string

	// OriginalText preserves the pre-translation text once TranslatedText
	// is set
	OriginalText string
}

// LineCount returns the number of lines in the block
func (b *Block) LineCount() int {
	if b == nil {
		return 0
	}
	return len(b.Lines)
}

// TokenCount returns the number of tokens across all lines
func (b *Block) TokenCount() int {
	if b == nil {
		return 0
	}
	count := 0
	for i := range b.Lines {
		count += len(b.Lines[i].Tokens)
	}
	return count
}

// Tokens returns all member tokens in reading order
func (b *Block) Tokens() []Token {
	if b == nil {
		return nil
	}
	var result []Token
	for i := range b.Lines {
		result = append(result, b.Lines[i].Tokens...)
	}
	return result
}

// FinalText returns the translated text when present, the original text
// otherwise
func (b *Block) FinalText() string {
	if b == nil {
		return ""
	}
	if b.TranslatedText != "" {
		return b.TranslatedText
	}
	return b.Text
}

// IsTranslated returns true once a translation has been recorded
func (b *Block) IsTranslated() bool {
	if b == nil {
		return false
	}
	return b.TranslatedText != ""
}

// IsHeading returns true if the block was recognized as a heading
func (b *Block) IsHeading() bool {
	if b == nil {
		return false
	}
	return b.Metadata.HeadingLevel > 0
}
