package layout

import (
	"testing"

	"github.com/tsawler/shatranj/model"
)

// makeProseBlock builds a classified prose block for heading tests
func makeProseBlock(text string, fontSize float64, fontName string) model.Block {
	return model.Block{
		Text:     text,
		FontName: fontName,
		FontSize: fontSize,
		Type:     model.BlockTypeProse,
	}
}

func TestHeadingDetector_AllCaps(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeProseBlock("THE SICILIAN DEFENSE", 10, "Times")

	if !detector.IsHeading(&block) {
		t.Error("All-caps text should be a heading")
	}
}

func TestHeadingDetector_ShortCapitalized(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeProseBlock("Chapter overview", 10, "Times")

	if !detector.IsHeading(&block) {
		t.Error("Short capitalized text should be a heading")
	}
}

func TestHeadingDetector_LongLowercaseProse(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeProseBlock(
		"the position demands patience from both players and neither side can make progress without first improving the worst placed piece on the board",
		10, "Times")

	if detector.IsHeading(&block) {
		t.Error("Long lowercase prose should not be a heading")
	}
}

func TestHeadingDetector_LongCapitalizedProse(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeProseBlock(
		"White keeps a small but persistent edge thanks to the bishop pair and the half open file against the enemy king",
		10, "Times")

	if detector.IsHeading(&block) {
		t.Error("Capitalized text past the word limit should not be a heading")
	}
}

func TestHeadingDetector_LargeFont(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeProseBlock("a quiet line without any capital letters to speak of but set very large indeed on the page itself", 14, "Times")

	if !detector.IsHeading(&block) {
		t.Error("Oversized font should make a heading")
	}
}

func TestHeadingDetector_BoldFont(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeProseBlock("a bold line that is neither short nor capitalized nor large but set in a bold face all the same here", 10, "Helvetica-BoldOblique")

	if !detector.IsHeading(&block) {
		t.Error("Bold face should make a heading")
	}
}

func TestHeadingDetector_EmptyBlock(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeProseBlock("   ", 20, "Times-Bold")

	if detector.IsHeading(&block) {
		t.Error("Blank text should never be a heading")
	}
}

func TestHeadingDetector_Levels(t *testing.T) {
	detector := NewHeadingDetector()

	tests := []struct {
		name     string
		fontSize float64
		want     int
	}{
		{"chapter size", 24, 1},
		{"just above level one", 18.5, 1},
		{"section size", 16, 2},
		{"exactly eighteen", 18, 2},
		{"subsection size", 12, 3},
		{"exactly fourteen", 14, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := makeProseBlock("HEADING", tt.fontSize, "Times")
			if got := detector.Level(&block); got != tt.want {
				t.Errorf("Level() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHeadingDetector_Annotate(t *testing.T) {
	detector := NewHeadingDetector()
	blocks := []model.Block{
		makeProseBlock("THE ENDGAME", 20, "Times-Bold"),
		makeProseBlock(
			"neither king can approach the passed pawn without allowing the defending rook behind it to give an endless stream of checks",
			10, "Times"),
	}

	count := detector.Annotate(blocks)

	if count != 1 {
		t.Errorf("Expected 1 heading, got %d", count)
	}
	if blocks[0].Metadata.HeadingLevel != 1 {
		t.Errorf("Expected level 1, got %d", blocks[0].Metadata.HeadingLevel)
	}
	if blocks[1].Metadata.HeadingLevel != 0 {
		t.Errorf("Expected level 0 for body text, got %d", blocks[1].Metadata.HeadingLevel)
	}
}

func TestHeadingDetector_AnnotateSkipsNotation(t *testing.T) {
	detector := NewHeadingDetector()

	chess := makeProseBlock("1.E4 E5 2.NF3", 20, "Times")
	chess.Type = model.BlockTypeChess
	diagram := makeProseBlock("DIAGRAM GLYPHS", 20, "Times")
	diagram.Type = model.BlockTypeDiagram

	blocks := []model.Block{chess, diagram}
	count := detector.Annotate(blocks)

	if count != 0 {
		t.Errorf("Expected 0 headings among notation blocks, got %d", count)
	}
	if blocks[0].Metadata.HeadingLevel != 0 || blocks[1].Metadata.HeadingLevel != 0 {
		t.Error("Notation blocks should not carry heading levels")
	}
}

func TestHeadingDetector_ArabicTextIsNotCaseHeading(t *testing.T) {
	detector := NewHeadingDetector()

	// Arabic has no letter case, so only font size or weight can mark
	// an Arabic heading.
	small := makeProseBlock("نهاية اللعبة", 10, "Amiri")
	if detector.IsHeading(&small) {
		t.Error("Small plain Arabic text should not be a heading")
	}

	large := makeProseBlock("نهاية اللعبة", 16, "Amiri")
	if !detector.IsHeading(&large) {
		t.Error("Large Arabic text should be a heading")
	}
}

func TestHeadingDetector_NilBlock(t *testing.T) {
	detector := NewHeadingDetector()

	if detector.IsHeading(nil) {
		t.Error("Nil block should not be a heading")
	}
	if detector.Level(nil) != 0 {
		t.Error("Nil block should have level 0")
	}
}

func TestNewHeadingDetectorWithConfig_ZeroFallsBack(t *testing.T) {
	detector := NewHeadingDetectorWithConfig(HeadingConfig{})
	def := DefaultHeadingConfig()

	if detector.config.MaxWords != def.MaxWords {
		t.Errorf("Expected default word limit, got %d", detector.config.MaxWords)
	}
	if detector.config.Level1FontSize != def.Level1FontSize {
		t.Errorf("Expected default level thresholds, got %v", detector.config.Level1FontSize)
	}
}

func TestIsAllUpper(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"THE OPENING", true},
		{"CHAPTER 12", true},
		{"Mixed Case", false},
		{"lowercase", false},
		{"1234", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isAllUpper(tt.text); got != tt.want {
			t.Errorf("isAllUpper(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
