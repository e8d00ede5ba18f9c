package chess

import (
	"strings"

	"github.com/tsawler/shatranj/model"
)

// ClassifierConfig holds configuration for content classification.
type ClassifierConfig struct {
	// MinDiagramLines is the minimum number of lines a block must span,
	// and the minimum number of those lines that must carry a diagram
	// glyph, for the block to classify as a diagram. The default is 8,
	// one line per board rank.
	MinDiagramLines int

	// Keywords are tokens whose standalone presence marks a block as
	// chess content even when no notation pattern matches. Matching is
	// exact per whitespace-separated token.
	Keywords []string

	// SourceLanguage is the language translation starts from. Prose
	// blocks detected in this language are flagged for translation.
	SourceLanguage model.Language
}

// DefaultClassifierConfig returns a ClassifierConfig with sensible
// defaults for chess book pages.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MinDiagramLines: 8,
		Keywords:        ReservedTerms(),
		SourceLanguage:  model.LanguageEnglish,
	}
}

// Classifier assigns a content type to each block and collects the
// notation statistics that drive the rest of the pipeline. Type
// priority is fixed: diagram beats chess beats prose, so a board
// rendering full of figurine characters is never mistaken for a line
// of moves.
type Classifier struct {
	config   ClassifierConfig
	registry *Registry
	keywords map[string]struct{}
}

// NewClassifier creates a Classifier with default configuration and a
// default pattern registry.
func NewClassifier() *Classifier {
	return NewClassifierWithRegistry(DefaultClassifierConfig(), NewRegistry())
}

// NewClassifierWithConfig creates a Classifier with custom
// configuration and a default pattern registry.
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return NewClassifierWithRegistry(config, NewRegistry())
}

// NewClassifierWithRegistry creates a Classifier that shares the given
// pattern registry. Sharing one registry with the notation guard keeps
// the two stages in agreement about what counts as notation.
func NewClassifierWithRegistry(config ClassifierConfig, registry *Registry) *Classifier {
	if config.MinDiagramLines <= 0 {
		config.MinDiagramLines = 8
	}
	if registry == nil {
		registry = NewRegistry()
	}
	kw := make(map[string]struct{}, len(config.Keywords))
	for _, k := range config.Keywords {
		kw[k] = struct{}{}
	}
	return &Classifier{config: config, registry: registry, keywords: kw}
}

// Registry returns the pattern registry the classifier consults.
func (c *Classifier) Registry() *Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// chessTriggers are the categories whose presence classifies a block
// as chess content. Squares alone do not qualify because coordinates
// like "d4" appear in running prose about the board.
var chessTriggers = []string{
	CategoryPieceMoves,
	CategoryPawnMoves,
	CategoryCastling,
	CategoryEvaluation,
	CategoryAnnotation,
	CategoryResult,
	CategoryNAG,
}

// Classify determines the block's content type and metadata. The block
// itself is not modified; the caller applies the result.
//
// A diagram requires at least MinDiagramLines lines of which at least
// MinDiagramLines carry a diagram glyph. A chess block contains a
// notation pattern or a reserved keyword token. Everything else is
// prose, and prose in the configured source language is flagged for
// translation.
func (c *Classifier) Classify(block *model.Block) (model.BlockType, model.Metadata) {
	if c == nil || block == nil {
		return model.BlockTypeProse, model.Metadata{}
	}

	lines := blockLines(block)
	if len(lines) >= c.config.MinDiagramLines {
		if n := CountDiagramLines(lines); n >= c.config.MinDiagramLines {
			return model.BlockTypeDiagram, model.Metadata{DiagramLines: n}
		}
	}

	if c.isChess(block.Text) {
		return model.BlockTypeChess, model.Metadata{Matches: c.registry.FindAll(block.Text)}
	}

	return model.BlockTypeProse, model.Metadata{}
}

// ClassifyText determines the content type of bare text. Used when
// merging blocks, where a tentative type is needed before the final
// classification pass.
func (c *Classifier) ClassifyText(text string) model.BlockType {
	if c == nil {
		return model.BlockTypeProse
	}
	lines := strings.Split(text, "\n")
	if len(lines) >= c.config.MinDiagramLines {
		if n := CountDiagramLines(lines); n >= c.config.MinDiagramLines {
			return model.BlockTypeDiagram
		}
	}
	if c.isChess(text) {
		return model.BlockTypeChess
	}
	return model.BlockTypeProse
}

// NeedsTranslation reports whether a block of the given type and
// language should be sent to the translator. Only prose in the source
// language qualifies; chess and diagram blocks never do.
func (c *Classifier) NeedsTranslation(blockType model.BlockType, lang model.Language) bool {
	if c == nil {
		return false
	}
	return blockType == model.BlockTypeProse && lang == c.config.SourceLanguage
}

func (c *Classifier) isChess(text string) bool {
	for _, name := range chessTriggers {
		if c.registry.Matches(name, text) {
			return true
		}
	}
	if len(c.keywords) == 0 {
		return false
	}
	for _, tok := range strings.Fields(text) {
		if _, ok := c.keywords[tok]; ok {
			return true
		}
	}
	return false
}

// blockLines returns the text of each member line, falling back to
// splitting the block text when no line structure survived.
func blockLines(block *model.Block) []string {
	if len(block.Lines) > 0 {
		out := make([]string, len(block.Lines))
		for i := range block.Lines {
			out[i] = block.Lines[i].Text()
		}
		return out
	}
	return strings.Split(block.Text, "\n")
}
