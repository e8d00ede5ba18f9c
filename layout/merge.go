package layout

import (
	"github.com/tsawler/shatranj/chess"
	"github.com/tsawler/shatranj/model"
)

// MergerConfig holds configuration for block merging.
type MergerConfig struct {
	// MaxGap is the maximum vertical gap, in layout units, between two
	// consecutive blocks for them to be fused. It is deliberately looser
	// than the block detector's MergeDistance so paragraphs split by the
	// detector's bounded reach can be reunited.
	MaxGap float64
}

// DefaultMergerConfig returns sensible default configuration.
func DefaultMergerConfig() MergerConfig {
	return MergerConfig{
		MaxGap: 30.0,
	}
}

// Merger fuses consecutive blocks that sit close together and carry the
// same kind of content. It runs after block detection and before final
// classification, using a tentative classification of each block's text
// to decide compatibility.
type Merger struct {
	config     MergerConfig
	classifier *chess.Classifier
}

// NewMerger creates a merger with default configuration.
func NewMerger() *Merger {
	return NewMergerWithConfig(DefaultMergerConfig())
}

// NewMergerWithConfig creates a merger with custom configuration.
func NewMergerWithConfig(config MergerConfig) *Merger {
	return NewMergerWithClassifier(config, chess.NewClassifier())
}

// NewMergerWithClassifier creates a merger that shares the caller's
// classifier, so tentative and final classification see the same
// patterns and keywords.
func NewMergerWithClassifier(config MergerConfig, classifier *chess.Classifier) *Merger {
	if config.MaxGap <= 0 {
		config.MaxGap = DefaultMergerConfig().MaxGap
	}
	if classifier == nil {
		classifier = chess.NewClassifier()
	}
	return &Merger{
		config:     config,
		classifier: classifier,
	}
}

// Merge walks the blocks in reading order and fuses each pair of
// neighbors whose vertical gap is within MaxGap and whose tentative
// content types agree. Diagram blocks never merge; fusing two halves of
// a board diagram with surrounding text would corrupt both. The second
// return value is the number of fusions performed.
func (m *Merger) Merge(blocks []model.Block) ([]model.Block, int) {
	if len(blocks) <= 1 {
		return blocks, 0
	}

	merged := make([]model.Block, 0, len(blocks))
	current := blocks[0]
	currentType := m.classifier.ClassifyText(current.Text)
	fused := 0

	for _, next := range blocks[1:] {
		nextType := m.classifier.ClassifyText(next.Text)
		if m.compatible(current, currentType, next, nextType) {
			current = fuse(current, next)
			// Fusing can push the block across a classification
			// boundary, an assembled diagram most of all, so the
			// running type must track the fused text.
			currentType = m.classifier.ClassifyText(current.Text)
			fused++
			continue
		}
		merged = append(merged, current)
		current = next
		currentType = nextType
	}
	merged = append(merged, current)

	for i := range merged {
		merged[i].Index = i
	}
	return merged, fused
}

// compatible reports whether two consecutive blocks may be fused.
func (m *Merger) compatible(a model.Block, aType model.BlockType, b model.Block, bType model.BlockType) bool {
	if aType == model.BlockTypeDiagram || bType == model.BlockTypeDiagram {
		return false
	}
	if aType != bType {
		return false
	}
	return a.BBox.VerticalGap(b.BBox) <= m.config.MaxGap
}

// fuse combines two blocks. Texts are joined with a paragraph
// separator, member lines are re-indexed, and the dominant language,
// direction and font are re-derived over the combined token set. When
// the blocks carry no tokens, the first block's properties win.
func fuse(a, b model.Block) model.Block {
	lines := make([]model.Line, 0, len(a.Lines)+len(b.Lines))
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	for i := range lines {
		lines[i].Index = i
	}

	var tokens []model.Token
	for i := range lines {
		tokens = append(tokens, lines[i].Tokens...)
	}

	merged := model.Block{
		Text:  a.Text + "\n\n" + b.Text,
		BBox:  a.BBox.Union(b.BBox),
		Lines: lines,
	}

	if len(tokens) == 0 {
		merged.FontName = a.FontName
		merged.FontSize = a.FontSize
		merged.Language = a.Language
		merged.Direction = a.Direction
		return merged
	}

	merged.Language = dominantLanguage(tokens)
	merged.Direction = directionFor(merged.Language)
	merged.FontName, merged.FontSize = dominantFont(tokens)
	return merged
}
