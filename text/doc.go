// Package text normalizes extracted words and detects script
// properties.
//
// This package is the first pipeline stage: it takes the raw word
// records a word extraction service produced and turns them into clean
// tokens, dropping words that carry no usable text or geometry.
//
// # Normalization
//
// The [Normalizer] type cleans one word at a time:
//
//	normalizer := text.NewNormalizer()
//	tokens, dropped := normalizer.NormalizeAll(words)
//
// Cleaning applies NFC composition, collapses runs of whitespace,
// strips control characters, and repairs castling written with digit
// zeros (0-0 and 0-0-0) to letter O notation. Each surviving token
// carries its detected language and a flag telling the later stages
// whether it contains chess notation.
//
// # Text Direction
//
// The package detects bidirectional text using Unicode script ranges:
//
//   - LTR - left-to-right (Latin, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - direction-neutral characters (numbers, punctuation)
//
// [DetectDirection] votes over the strong directional characters of a
// string, and [DetectLanguage] classifies text as Arabic, English or
// unknown for the translation stage. Arabic detection covers the
// presentation form blocks because OCR output for Arabic books often
// carries shaped glyphs.
package text
