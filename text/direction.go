package text

import (
	"unicode"

	"github.com/tsawler/shatranj/model"
)

// DetectDirection analyzes a string and returns its dominant text direction
// based on Unicode character properties. It counts strong directional
// characters and returns the direction with the higher count, or Neutral if
// no strong directional characters are present.
func DetectDirection(text string) model.Direction {
	if text == "" {
		return model.Neutral
	}

	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch CharDirection(r) {
		case model.LTR:
			ltrCount++
		case model.RTL:
			rtlCount++
		}
	}

	// If no strong directional characters, it's neutral
	if ltrCount == 0 && rtlCount == 0 {
		return model.Neutral
	}

	// Return the dominant direction
	if rtlCount > ltrCount {
		return model.RTL
	}
	return model.LTR
}

// CharDirection returns the inherent direction of a single Unicode character.
// Digits, punctuation, whitespace, and symbols are Neutral; RTL scripts
// (Arabic, Hebrew, Syriac, Thaana) return RTL; all other scripts return LTR.
func CharDirection(r rune) model.Direction {
	// Numbers and neutral characters (check first, before script checks)
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return model.Neutral
	}

	// RTL scripts
	if isArabic(r) || isHebrew(r) || isSyriac(r) || isThaana(r) {
		return model.RTL
	}

	// Everything else, Latin included, reads left to right
	return model.LTR
}

// DetectLanguage classifies a piece of text for the translation stage.
// Any character in an Arabic block makes the text Arabic, text with any
// other letters is English, and text with no letters at all (numbers,
// punctuation, figurines) is Unknown so it never queues for translation.
func DetectLanguage(text string) model.Language {
	hasLetter := false
	for _, r := range text {
		if isArabic(r) {
			return model.LanguageArabic
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	if hasLetter {
		return model.LanguageEnglish
	}
	return model.LanguageUnknown
}

// ContainsArabic reports whether text contains at least one character
// from an Arabic Unicode block.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if isArabic(r) {
			return true
		}
	}
	return false
}

// DirectionForLanguage returns the writing direction implied by a
// detected language. Unknown text is neutral.
func DirectionForLanguage(lang model.Language) model.Direction {
	switch lang {
	case model.LanguageArabic:
		return model.RTL
	case model.LanguageEnglish:
		return model.LTR
	default:
		return model.Neutral
	}
}

// isArabic reports whether r is in an Arabic Unicode block.
// This includes:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
//
// The presentation forms matter here because OCR output for Arabic
// books frequently carries shaped glyphs rather than base letters.
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// isHebrew reports whether r is in a Hebrew Unicode block.
// This includes:
//   - Hebrew: U+0590–U+05FF
//   - Hebrew Presentation Forms: U+FB1D–U+FB4F
func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

// isSyriac reports whether r is in the Syriac Unicode block (U+0700–U+074F).
func isSyriac(r rune) bool {
	return r >= 0x0700 && r <= 0x074F
}

// isThaana reports whether r is in the Thaana Unicode block (U+0780–U+07BF).
func isThaana(r rune) bool {
	return r >= 0x0780 && r <= 0x07BF
}
