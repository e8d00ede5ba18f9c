// Package chess recognizes, protects and expands chess notation in
// extracted book text.
//
// # Pattern Registry
//
// [Registry] holds the named recognizers for algebraic notation: piece
// and pawn moves, castling, move numbers, results, quality glyphs,
// evaluation symbols, NAG codes, squares, figurine characters,
// variations and braced comments. The classifier and the notation
// guard consult the same registry, so everything counted during
// classification is protectable during translation.
//
// # Classification
//
// [Classifier] assigns each block a content type with fixed priority:
// diagram beats chess beats prose. Diagrams are recognized by counting
// lines that carry figurine or board-drawing characters, chess content
// by notation patterns and reserved keyword tokens. Prose in the
// configured source language is flagged for translation.
//
// # Notation Guard
//
// [Guard] shields notation from the translator by swapping each
// occurrence for a placeholder token before translation and swapping
// it back afterwards. Placeholder numbering is deterministic, restore
// is idempotent, and whitespace is preserved exactly, so protecting
// and restoring with an identity translator returns the input
// unchanged.
//
// # Expansion
//
// [Expander] rewrites chess commentary for readers after translation:
// parenthesized variation groups become labeled sections with nesting
// levels, quality glyphs and NAG codes become glossary phrases, and an
// optional term table substitutes vocabulary. English glossaries are
// the default; Arabic tables matching printed Arabic chess literature
// ship alongside them.
package chess
