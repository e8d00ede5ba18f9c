package text

import (
	"testing"

	"github.com/tsawler/shatranj/model"
)

func TestCharDirection(t *testing.T) {
	tests := []struct {
		name string
		char rune
		want model.Direction
	}{
		// Arabic
		{"Arabic alif", 'ا', model.RTL}, // U+0627
		{"Arabic baa", 'ب', model.RTL},  // U+0628
		{"Arabic seen", 'س', model.RTL}, // U+0633
		{"Arabic lam", 'ل', model.RTL},  // U+0644
		{"Arabic meem", 'م', model.RTL}, // U+0645

		// Hebrew
		{"Hebrew alef", 'א', model.RTL}, // U+05D0
		{"Hebrew shin", 'ש', model.RTL}, // U+05E9

		// Latin (LTR)
		{"Latin A", 'A', model.LTR},
		{"Latin a", 'a', model.LTR},
		{"Latin é", 'é', model.LTR}, // U+00E9

		// Cyrillic and CJK read left to right
		{"Cyrillic я", 'я', model.LTR}, // U+044F
		{"CJK 中", '中', model.LTR},      // U+4E2D

		// Neutral characters
		{"Space", ' ', model.Neutral},
		{"Digit 5", '5', model.Neutral},
		{"Period", '.', model.Neutral},
		{"Exclamation", '!', model.Neutral},
		{"Question", '?', model.Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CharDirection(tt.char)
			if got != tt.want {
				t.Errorf("CharDirection(%q U+%04X) = %v, want %v",
					tt.char, tt.char, got, tt.want)
			}
		})
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Direction
	}{
		// Pure LTR
		{"English", "Hello World", model.LTR},
		{"Russian", "Привет мир", model.LTR},

		// Pure RTL
		{"Arabic hello", "مرحبا", model.RTL},
		{"Arabic greeting", "السلام عليكم", model.RTL},
		{"Hebrew shalom", "שלום", model.RTL},

		// Bidirectional (mixed)
		{"English with Arabic", "Hello مرحبا World", model.LTR},
		{"Arabic with English", "مرحبا Hello عليكم", model.RTL},

		// Neutral only
		{"Numbers only", "12345", model.Neutral},
		{"Punctuation", "...", model.Neutral},
		{"Empty string", "", model.Neutral},

		// Mixed with numbers
		{"English + numbers", "Hello 123", model.LTR},
		{"Arabic + numbers", "مرحبا 123", model.RTL},

		// Chess notation is direction neutral
		{"Bare notation", "1.e4 e5 2.Nf3", model.LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDirection(tt.text)
			if got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Language
	}{
		{"English word", "knight", model.LanguageEnglish},
		{"Arabic word", "حصان", model.LanguageArabic},
		{"Mixed leans Arabic", "the حصان", model.LanguageArabic},
		{"Presentation forms", "ﻟﻠ", model.LanguageArabic},
		{"Digits only", "1234", model.LanguageUnknown},
		{"Punctuation only", "?!", model.LanguageUnknown},
		{"Figurines only", "♔♕♖", model.LanguageUnknown},
		{"Empty", "", model.LanguageUnknown},
		{"Notation with letters", "Nf3", model.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestContainsArabic(t *testing.T) {
	if !ContainsArabic("مرحبا world") {
		t.Error("Expected Arabic detected in mixed text")
	}

	if ContainsArabic("hello world") {
		t.Error("Expected no Arabic in Latin text")
	}
}

func TestDirectionForLanguage(t *testing.T) {
	if got := DirectionForLanguage(model.LanguageArabic); got != model.RTL {
		t.Errorf("Expected RTL for Arabic, got %v", got)
	}

	if got := DirectionForLanguage(model.LanguageEnglish); got != model.LTR {
		t.Errorf("Expected LTR for English, got %v", got)
	}

	if got := DirectionForLanguage(model.LanguageUnknown); got != model.Neutral {
		t.Errorf("Expected Neutral for unknown, got %v", got)
	}
}
