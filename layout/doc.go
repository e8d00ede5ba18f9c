// Package layout reconstructs page structure from positioned tokens.
//
// This package turns the flat token stream produced by normalization
// into lines, blocks, columns and headings, preserving the geometry the
// tokens arrived with.
//
// # Detectors
//
// The package includes specialized detectors:
//
//   - [LineDetector] - groups tokens sharing a vertical band into lines
//   - [BlockDetector] - groups consecutive lines into content blocks
//   - [Merger] - fuses adjacent blocks carrying the same kind of content
//   - [ColumnDetector] - detects multi-column layouts
//   - [HeadingDetector] - flags blocks that look like section headings
//
// # Grouping Rules
//
// Line and block grouping both measure distance against the group's
// first member, not its most recent one, so a group's vertical reach is
// bounded no matter how many members it accumulates. Comparisons are
// inclusive at the configured threshold.
//
// # Text Direction
//
// Lines store their tokens in geometric (left to right) order. A
// block's reading direction comes from its dominant token language, and
// right-to-left blocks reverse each line's token order when the block
// text is assembled:
//
//	detector := layout.NewBlockDetector()
//	blocks := detector.Detect(lines, pageWidth, pageHeight)
//	text := blocks.GetText()
//
// # Configuration
//
// Each detector can be configured independently:
//
//	config := layout.DefaultBlockConfig()
//	config.MergeDistance = 25
//	detector := layout.NewBlockDetectorWithConfig(config)
package layout
