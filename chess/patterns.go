package chess

import "regexp"

// Category names for the pattern registry. The names double as keys in
// block metadata, so renaming one changes the reported statistics.
const (
	// CategoryPieceMoves covers piece moves in algebraic notation,
	// including captures, promotions, checks and mates (Nf3, Qxe7+, e8=Q#).
	CategoryPieceMoves = "piece_moves"
	// CategoryPawnMoves covers plain pawn pushes and pawn captures
	// (e4, exd5, axb8=Q+).
	CategoryPawnMoves = "pawn_moves"
	// CategoryCastling covers short and long castling (O-O, O-O-O).
	CategoryCastling = "castling"
	// CategoryMoveNumbers covers move numbers, including the
	// black-to-move ellipsis form (12. and 12...).
	CategoryMoveNumbers = "move_numbers"
	// CategoryResult covers game results (1-0, 0-1, 1/2-1/2 and the
	// typographic draw sign).
	CategoryResult = "result"
	// CategoryAnnotation covers move quality glyphs (!, ?, !!, ??, !?, ?!).
	CategoryAnnotation = "annotation"
	// CategoryEvaluation covers positional evaluation symbols and
	// numeric engine scores (±, ∞, +0.5, -1.2).
	CategoryEvaluation = "evaluation"
	// CategoryNAG covers numeric annotation glyphs ($1 through $36).
	CategoryNAG = "nag"
	// CategorySquares covers bare square names (a1 through h8).
	CategorySquares = "squares"
	// CategoryPieceSymbols covers figurine piece characters (♔ through ♟).
	CategoryPieceSymbols = "piece_symbols"
	// CategoryVariations covers parenthesized variation groups.
	CategoryVariations = "variations"
	// CategoryComments covers braced commentary ({...}).
	CategoryComments = "comments"
)

// Pattern is one named recognizer in the registry.
type Pattern struct {
	// Name is the category name, one of the Category constants.
	Name string

	// Regex recognizes occurrences of the category in block text.
	Regex *regexp.Regexp

	// Protect marks categories whose matches the notation guard
	// replaces with placeholders before translation.
	Protect bool
}

// Registry is the shared set of chess notation recognizers. The
// classifier and the notation guard consult the same registry, so any
// element counted during classification is also protectable during
// translation.
//
// Categories are held in a fixed order. The guard walks protected
// categories in that order, which makes placeholder numbering
// deterministic for a given input.
type Registry struct {
	patterns []Pattern
	byName   map[string]int
}

// NewRegistry returns a registry with the default pattern set.
func NewRegistry() *Registry {
	return newRegistry([]Pattern{
		{CategoryPieceMoves, regexp.MustCompile(`\b([KQRBN][a-h]?[1-8]?x?[a-h][1-8](?:=[QRBN])?[+#]?)\b`), true},
		{CategoryPawnMoves, regexp.MustCompile(`\b([a-h][1-8]|[a-h]x[a-h][1-8](?:=[QRBN])?[+#]?)\b`), true},
		{CategoryCastling, regexp.MustCompile(`\b(O-O(?:-O)?)[+#]?\b`), true},
		{CategoryMoveNumbers, regexp.MustCompile(`\b\d+\.(?:\.\.)?`), true},
		// \b in Go is ASCII-only, so the figurine draw sign sits outside
		// the word-boundary alternation.
		{CategoryResult, regexp.MustCompile(`\b(?:1-0|0-1|1/2-1/2)\b|½-½`), true},
		{CategoryAnnotation, regexp.MustCompile(`[!?]{1,2}`), true},
		{CategoryEvaluation, regexp.MustCompile(`[±∓⩲⩱∞=⟳↑↓⇆]{1,2}|[+\-](?:\d+\.?\d*|\.\d+)`), false},
		{CategoryNAG, regexp.MustCompile(`\$\d+`), false},
		{CategorySquares, regexp.MustCompile(`\b[a-h][1-8]\b`), false},
		{CategoryPieceSymbols, regexp.MustCompile(`[♔♕♖♗♘♙♚♛♜♝♞♟]`), false},
		{CategoryVariations, regexp.MustCompile(`\([^)]+\)`), false},
		{CategoryComments, regexp.MustCompile(`\{[^}]*\}`), false},
	})
}

func newRegistry(patterns []Pattern) *Registry {
	byName := make(map[string]int, len(patterns))
	for i, p := range patterns {
		byName[p.Name] = i
	}
	return &Registry{patterns: patterns, byName: byName}
}

// Patterns returns every pattern in registry order.
func (r *Registry) Patterns() []Pattern {
	if r == nil {
		return nil
	}
	out := make([]Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Protected returns the protected patterns in registry order.
func (r *Registry) Protected() []Pattern {
	if r == nil {
		return nil
	}
	var out []Pattern
	for _, p := range r.patterns {
		if p.Protect {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the pattern for the given category name, or nil if the
// registry has no such category.
func (r *Registry) Get(name string) *Pattern {
	if r == nil {
		return nil
	}
	i, ok := r.byName[name]
	if !ok {
		return nil
	}
	return &r.patterns[i]
}

// Names returns the category names in registry order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.patterns))
	for i, p := range r.patterns {
		out[i] = p.Name
	}
	return out
}

// Matches reports whether text contains at least one occurrence of the
// named category.
func (r *Registry) Matches(name, text string) bool {
	p := r.Get(name)
	if p == nil {
		return false
	}
	return p.Regex.MatchString(text)
}

// MatchesAny reports whether text contains an occurrence of any
// category in the registry.
func (r *Registry) MatchesAny(text string) bool {
	if r == nil {
		return false
	}
	for _, p := range r.patterns {
		if p.Regex.MatchString(text) {
			return true
		}
	}
	return false
}

// FindAll returns every match in text grouped by category name.
// Categories with no matches are absent from the result.
func (r *Registry) FindAll(text string) map[string][]string {
	if r == nil {
		return nil
	}
	found := make(map[string][]string)
	for _, p := range r.patterns {
		if m := p.Regex.FindAllString(text, -1); len(m) > 0 {
			found[p.Name] = m
		}
	}
	if len(found) == 0 {
		return nil
	}
	return found
}
