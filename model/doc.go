// Package model provides the intermediate representation (IR) for page
// content flowing through the layout and translation pipeline.
//
// This package defines the user-facing data structures every pipeline stage
// produces and consumes: raw extracted words, normalized tokens, lines,
// classified blocks, and the per-page aggregate. All analysis operations
// ultimately produce these types, making them the primary API for consuming
// processed content.
//
// # Coordinate System
//
// All geometry uses the extractor's convention: origin at the top-left of
// the page, y growing downward. A [BBox] is stored as its four edges
// (X0, Top, X1, Bottom), matching the word dictionaries delivered by word
// extraction services. No coordinate flipping happens anywhere in the
// pipeline; the word source is authoritative.
//
// # Content Flow
//
// A [Word] is the raw record handed over by a word extraction service.
// Normalization turns it into a [Token] tagged with a [Language] and a
// chess-notation flag. Tokens are grouped into [Line] values, lines into
// [Block] values. A Block is immutable after creation except for the
// translation fields (TranslatedText, OriginalText) set once when a
// translation succeeds.
//
// # Block Types
//
// Every block is classified as exactly one [BlockType]:
//
//   - [BlockTypeProse] - ordinary text, the only type eligible for translation
//   - [BlockTypeChess] - chess notation content (moves, results, annotations)
//   - [BlockTypeDiagram] - a board diagram rendered as glyph lines
//
// # Pages
//
// The [Page] type aggregates the ordered blocks of one page together with
// page dimensions, the dominant text direction, and [PageStats] counters
// used for document reporting.
package model
