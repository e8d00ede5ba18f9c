package text

import (
	"testing"

	"github.com/tsawler/shatranj/model"
)

// makeWord creates a raw extracted word with sane geometry.
func makeWord(txt string, x0, top float64) model.Word {
	return model.Word{
		Text:     txt,
		X0:       x0,
		Top:      top,
		X1:       x0 + 40,
		Bottom:   top + 12,
		FontName: "Times",
		FontSize: 10,
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "knight", "knight"},
		{"collapse spaces", "two   words", "two words"},
		{"collapse tabs and newlines", "a\tb\nc", "a b c"},
		{"strip controls", "ab\x01\x02c", "abc"},
		{"trim", "  padded  ", "padded"},
		{"short castle digits", "0-0", "O-O"},
		{"long castle digits", "0-0-0", "O-O-O"},
		{"castle in context", "12.0-0-0 Rb8", "12.O-O-O Rb8"},
		{"empty", "", ""},
		{"whitespace only", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanText_NFCComposition(t *testing.T) {
	// e + combining acute accent composes to a single rune.
	got := CleanText("café")

	if got != "café" {
		t.Errorf("Expected composed form, got %q", got)
	}
}

func TestNormalizer_BasicWord(t *testing.T) {
	normalizer := NewNormalizer()

	tok, ok := normalizer.Normalize(makeWord("knight", 100, 50))

	if !ok {
		t.Fatal("Expected word to survive normalization")
	}

	if tok.Text != "knight" {
		t.Errorf("Expected 'knight', got '%s'", tok.Text)
	}

	if tok.Language != model.LanguageEnglish {
		t.Errorf("Expected English, got %v", tok.Language)
	}

	if tok.IsChess {
		t.Error("Expected plain word not flagged as chess")
	}

	if tok.FontName != "Times" || tok.FontSize != 10 {
		t.Errorf("Font attributes not carried over: %s %.1f", tok.FontName, tok.FontSize)
	}
}

func TestNormalizer_ChessFlag(t *testing.T) {
	normalizer := NewNormalizer()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"piece move", "Nf3", true},
		{"pawn move", "e4", true},
		{"castling digits", "0-0", true},
		{"annotated move", "Bxf7+!", true},
		{"plain word", "strategy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := normalizer.Normalize(makeWord(tt.text, 0, 0))
			if !ok {
				t.Fatal("Expected word to survive normalization")
			}
			if tok.IsChess != tt.want {
				t.Errorf("IsChess(%q) = %v, want %v", tt.text, tok.IsChess, tt.want)
			}
		})
	}
}

func TestNormalizer_ArabicWord(t *testing.T) {
	normalizer := NewNormalizer()

	tok, ok := normalizer.Normalize(makeWord("حصان", 200, 50))

	if !ok {
		t.Fatal("Expected word to survive normalization")
	}

	if tok.Language != model.LanguageArabic {
		t.Errorf("Expected Arabic, got %v", tok.Language)
	}
}

func TestNormalizer_DropsEmptyText(t *testing.T) {
	normalizer := NewNormalizer()

	if _, ok := normalizer.Normalize(makeWord("  \x01 ", 0, 0)); ok {
		t.Error("Expected control-only word dropped")
	}
}

func TestNormalizer_DropsBadGeometry(t *testing.T) {
	normalizer := NewNormalizer()

	word := model.Word{Text: "ok", X0: 100, Top: 50, X1: 90, Bottom: 60}

	if _, ok := normalizer.Normalize(word); ok {
		t.Error("Expected inverted box dropped")
	}
}

func TestNormalizer_BBoxCarriedOver(t *testing.T) {
	normalizer := NewNormalizer()

	tok, ok := normalizer.Normalize(makeWord("e4", 10, 20))

	if !ok {
		t.Fatal("Expected word to survive normalization")
	}

	want := model.BBox{X0: 10, Top: 20, X1: 50, Bottom: 32}
	if tok.BBox != want {
		t.Errorf("BBox = %+v, want %+v", tok.BBox, want)
	}
}

func TestNormalizer_NormalizeAll(t *testing.T) {
	normalizer := NewNormalizer()

	words := []model.Word{
		makeWord("White", 10, 20),
		makeWord("", 60, 20),
		makeWord("plays", 110, 20),
		makeWord("\x05", 160, 20),
		makeWord("Nf3", 210, 20),
	}

	tokens, dropped := normalizer.NormalizeAll(words)

	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}

	if dropped != 2 {
		t.Errorf("Expected 2 dropped words, got %d", dropped)
	}

	if tokens[0].Text != "White" || tokens[2].Text != "Nf3" {
		t.Errorf("Token order not preserved: %v", []string{tokens[0].Text, tokens[1].Text, tokens[2].Text})
	}
}

func TestNormalizer_NormalizeAllEmpty(t *testing.T) {
	normalizer := NewNormalizer()

	tokens, dropped := normalizer.NormalizeAll(nil)

	if tokens != nil || dropped != 0 {
		t.Errorf("Expected nil tokens and 0 dropped, got %v %d", tokens, dropped)
	}
}
