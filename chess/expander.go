package chess

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ExpanderConfig holds the substitution tables and labels used when
// expanding chess commentary into reader-facing text.
type ExpanderConfig struct {
	// VariationLabel is the fmt verb emitted when a variation opens.
	// It receives the nesting level as its only argument.
	VariationLabel string

	// VariationEnd is the marker emitted when a variation closes.
	VariationEnd string

	// Annotations maps move quality glyphs to phrases.
	Annotations map[string]string

	// NAGs maps numeric annotation glyphs ($n) to phrases.
	NAGs map[string]string

	// Terms maps chess vocabulary to replacement vocabulary,
	// substituted as whole words. Empty means no term substitution.
	Terms map[string]string
}

// DefaultExpanderConfig returns an ExpanderConfig with English labels
// and glossaries.
func DefaultExpanderConfig() ExpanderConfig {
	return ExpanderConfig{
		VariationLabel: "Variation %d: ",
		VariationEnd:   "End of variation",
		Annotations:    DefaultAnnotationGlossary(),
		NAGs:           DefaultNAGGlossary(),
	}
}

// ArabicExpanderConfig returns an ExpanderConfig with Arabic labels and
// glossaries, including the term table that renders English chess
// vocabulary in Arabic.
func ArabicExpanderConfig() ExpanderConfig {
	return ExpanderConfig{
		VariationLabel: "التنويع %d: ",
		VariationEnd:   "نهاية التنويع",
		Annotations:    ArabicAnnotationGlossary(),
		NAGs:           ArabicNAGGlossary(),
		Terms:          ArabicTermGlossary(),
	}
}

// ExpandResult is the outcome of one expansion pass.
type ExpandResult struct {
	// Text is the expanded text.
	Text string

	// Variations is the number of variation groups opened.
	Variations int

	// Unbalanced is the number of stray closing parentheses found at
	// nesting level zero. Each one is skipped rather than driving the
	// level negative.
	Unbalanced int

	// Unclosed is the nesting level left open at end of text.
	Unclosed int
}

// annotationOrder fixes glyph substitution order. Two-character glyphs
// come first so "!?" is never consumed as "!" followed by "?".
var annotationOrder = []string{"!!", "??", "!?", "?!", "!", "?"}

var nagPattern = regexp.MustCompile(`\$\d+`)

type termSub struct {
	re   *regexp.Regexp
	repl string
}

// Expander rewrites chess commentary for readers: parenthesized
// variation groups become labeled sections, quality glyphs and NAG
// codes become phrases, and vocabulary is substituted when a term
// table is installed. Expansion runs after translation, on blocks the
// classifier marked as chess.
//
// Expansion is not idempotent. The phrases it inserts are themselves
// parenthesized, so feeding expanded text back through Expand would
// relabel them as variations.
type Expander struct {
	config ExpanderConfig
	terms  []termSub
}

// NewExpander creates an Expander with English labels and glossaries.
func NewExpander() *Expander {
	return NewExpanderWithConfig(DefaultExpanderConfig())
}

// NewExpanderWithConfig creates an Expander with custom configuration.
func NewExpanderWithConfig(config ExpanderConfig) *Expander {
	if config.VariationLabel == "" {
		config.VariationLabel = "Variation %d: "
	}
	if config.VariationEnd == "" {
		config.VariationEnd = "End of variation"
	}
	e := &Expander{config: config}
	e.compileTerms()
	return e
}

// compileTerms builds word-bounded matchers for the term table, longest
// term first so "winning advantage" is substituted before "advantage".
func (e *Expander) compileTerms() {
	if len(e.config.Terms) == 0 {
		return
	}
	keys := make([]string, 0, len(e.config.Terms))
	for k := range e.config.Terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	e.terms = make([]termSub, 0, len(keys))
	for _, k := range keys {
		e.terms = append(e.terms, termSub{
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
			repl: e.config.Terms[k],
		})
	}
}

// Expand runs the full expansion: the variation scan first, then term
// substitution, then annotation and NAG substitution. Variations run
// first so the parenthesized phrases the glossaries insert are not
// themselves relabeled as variations.
func (e *Expander) Expand(text string) ExpandResult {
	if e == nil {
		return ExpandResult{Text: text}
	}
	res := e.ExpandVariations(text)
	res.Text = e.ExpandTerms(res.Text)
	res.Text = e.ExpandAnnotations(res.Text)
	return res
}

// ExpandTerms substitutes installed vocabulary as whole words.
func (e *Expander) ExpandTerms(text string) string {
	if e == nil || len(e.terms) == 0 || text == "" {
		return text
	}
	for _, t := range e.terms {
		text = t.re.ReplaceAllString(text, t.repl)
	}
	return text
}

// ExpandAnnotations replaces quality glyphs and NAG codes with
// parenthesized phrases. Unknown NAG codes pass through unchanged.
func (e *Expander) ExpandAnnotations(text string) string {
	if e == nil || text == "" {
		return text
	}
	for _, glyph := range annotationOrder {
		phrase, ok := e.config.Annotations[glyph]
		if !ok {
			continue
		}
		text = strings.ReplaceAll(text, glyph, " ("+phrase+") ")
	}
	if len(e.config.NAGs) > 0 {
		text = nagPattern.ReplaceAllStringFunc(text, func(nag string) string {
			phrase, ok := e.config.NAGs[nag]
			if !ok {
				return nag
			}
			return " (" + phrase + ") "
		})
	}
	return text
}

// ExpandVariations rewrites parenthesized variation groups as labeled
// sections. Each opening parenthesis emits the variation label with the
// new nesting level, and each closing parenthesis emits the end marker.
// A closing parenthesis at level zero is counted in Unbalanced and the
// level stays at zero; levels still open at end of text are reported in
// Unclosed.
func (e *Expander) ExpandVariations(text string) ExpandResult {
	var res ExpandResult
	if e == nil || text == "" {
		res.Text = text
		return res
	}

	var out, buf strings.Builder
	out.Grow(len(text))
	level := 0
	flush := func() {
		if buf.Len() > 0 {
			out.WriteString(buf.String())
			buf.Reset()
		}
	}

	for _, r := range text {
		switch r {
		case '(':
			flush()
			level++
			res.Variations++
			out.WriteByte('\n')
			fmt.Fprintf(&out, e.config.VariationLabel, level)
		case ')':
			flush()
			if level == 0 {
				res.Unbalanced++
			} else {
				level--
			}
			out.WriteByte('\n')
			out.WriteString(e.config.VariationEnd)
			out.WriteByte('\n')
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	res.Unclosed = level
	res.Text = out.String()
	return res
}
