package chess

import "strings"

// DiagramGlyphs is the set of characters whose presence marks a line as
// part of a board diagram: the twelve figurine pieces plus the drawing
// characters used for empty squares and frames.
const DiagramGlyphs = "♔♕♖♗♘♙♚♛♜♝♞♟.|-+"

// IsDiagramLine reports whether the line contains at least one diagram
// glyph.
func IsDiagramLine(line string) bool {
	return strings.ContainsAny(line, DiagramGlyphs)
}

// CountDiagramLines returns how many of the given lines contain a
// diagram glyph.
func CountDiagramLines(lines []string) int {
	n := 0
	for _, line := range lines {
		if IsDiagramLine(line) {
			n++
		}
	}
	return n
}

// DescribeDiagram replaces each figurine piece character in a diagram
// with a bracketed piece name from the given table, leaving every other
// character in place. Pieces absent from the table pass through
// unchanged.
func DescribeDiagram(text string, names map[rune]string) string {
	if len(names) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if name, ok := names[r]; ok {
			b.WriteString("[" + name + "]")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
