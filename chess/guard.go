package chess

import (
	"fmt"
	"strings"
	"unicode"
)

// PlaceholderMap records the protected substrings of one text, keyed by
// the placeholder token that replaced each of them. Maps are scoped to
// a single Protect call and are not safe to reuse across texts.
type PlaceholderMap map[string]string

// reservedTerms are standalone tokens that must never reach the
// translator: piece letters, notation punctuation and the en passant
// abbreviations.
var reservedTerms = map[string]struct{}{
	"K": {}, "Q": {}, "R": {}, "B": {}, "N": {},
	"+": {}, "#": {}, "x": {}, "=": {},
	"e.p.": {}, "ep": {},
}

// ReservedTerms returns the reserved term tokens in a stable order.
func ReservedTerms() []string {
	return []string{"K", "Q", "R", "B", "N", "+", "#", "x", "=", "e.p.", "ep"}
}

// Guard shields chess notation from the translator. Protect swaps every
// notation occurrence for a synthetic placeholder, and Restore swaps
// the placeholders back after translation. As long as the translator
// leaves the placeholder tokens intact, notation survives translation
// byte for byte.
type Guard struct {
	registry *Registry
}

// NewGuard creates a Guard with a default pattern registry.
func NewGuard() *Guard {
	return &Guard{registry: NewRegistry()}
}

// NewGuardWithRegistry creates a Guard that shares the given registry
// with other stages.
func NewGuardWithRegistry(registry *Registry) *Guard {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Guard{registry: registry}
}

// Registry returns the pattern registry the guard consults.
func (g *Guard) Registry() *Registry {
	if g == nil {
		return nil
	}
	return g.registry
}

// Protect replaces every protected notation occurrence in text with a
// placeholder of the form [CHESS_n], then replaces every reserved term
// token with a placeholder of the form [TERM_n]. One counter spans both
// passes, and categories are scanned in registry order, so numbering is
// deterministic for a given input.
//
// Whitespace is preserved exactly, which makes Restore a strict inverse
// when the translator is the identity. Input that already contains
// bracket tokens shaped like placeholders is not defended against;
// keeping one PlaceholderMap per call keeps any collision local to that
// text.
func (g *Guard) Protect(text string) (string, PlaceholderMap) {
	placeholders := make(PlaceholderMap)
	if g == nil || text == "" {
		return text, placeholders
	}

	counter := 0
	for _, p := range g.registry.Protected() {
		text = protectPattern(text, p, placeholders, &counter)
	}
	return protectTerms(text, placeholders, &counter), placeholders
}

// Restore replaces every placeholder in text with its recorded
// original. Placeholders are unique within a map, so replacement order
// does not matter. Map entries absent from the text are ignored, and
// bracket tokens absent from the map pass through untouched, which
// makes Restore idempotent.
func (g *Guard) Restore(text string, placeholders PlaceholderMap) string {
	if text == "" || len(placeholders) == 0 {
		return text
	}
	for placeholder, original := range placeholders {
		text = strings.ReplaceAll(text, placeholder, original)
	}
	return text
}

// protectPattern replaces each match of one pattern in place, scanning
// forward past every inserted placeholder so a placeholder is never
// rescanned.
func protectPattern(text string, p Pattern, placeholders PlaceholderMap, counter *int) string {
	var b strings.Builder
	for len(text) > 0 {
		loc := p.Regex.FindStringIndex(text)
		if loc == nil {
			break
		}
		match := text[loc[0]:loc[1]]
		placeholder := fmt.Sprintf("[CHESS_%d]", *counter)
		*counter++
		placeholders[placeholder] = match

		b.WriteString(text[:loc[0]])
		b.WriteString(placeholder)
		text = text[loc[1]:]
	}
	if b.Len() == 0 {
		return text
	}
	b.WriteString(text)
	return b.String()
}

// protectTerms replaces whitespace-delimited reserved term tokens,
// keeping the delimiters themselves untouched.
func protectTerms(text string, placeholders PlaceholderMap, counter *int) string {
	var b strings.Builder
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		if _, ok := reservedTerms[word]; ok {
			placeholder := fmt.Sprintf("[TERM_%d]", *counter)
			*counter++
			placeholders[placeholder] = word
			b.WriteString(placeholder)
		} else {
			b.WriteString(word)
		}
		start = -1
	}

	for i, r := range text {
		if unicode.IsSpace(r) {
			flush(i)
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(text))
	return b.String()
}
