package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/shatranj/chess"
	"github.com/tsawler/shatranj/model"
)

// controlChars matches C0 and C1 control characters that survive PDF
// and OCR extraction, minus tab, newline and carriage return which the
// whitespace collapse already handles.
var controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x9f]`)

// Normalizer turns raw extracted words into tokens the layout stages
// can trust: composed Unicode, no control characters, collapsed
// whitespace, castling digits repaired, language detected and chess
// content flagged.
type Normalizer struct {
	registry *chess.Registry
}

// NewNormalizer creates a Normalizer with a default pattern registry.
func NewNormalizer() *Normalizer {
	return &Normalizer{registry: chess.NewRegistry()}
}

// NewNormalizerWithRegistry creates a Normalizer that shares the given
// pattern registry with the classifier and guard.
func NewNormalizerWithRegistry(registry *chess.Registry) *Normalizer {
	if registry == nil {
		registry = chess.NewRegistry()
	}
	return &Normalizer{registry: registry}
}

// Normalize cleans one extracted word and converts it to a token. The
// second return value is false when the word should be dropped: text
// that is empty after cleaning, or geometry with no positive extent.
func (n *Normalizer) Normalize(word model.Word) (model.Token, bool) {
	cleaned := CleanText(word.Text)
	if cleaned == "" {
		return model.Token{}, false
	}

	bbox := word.BBox()
	if !bbox.IsValid() {
		return model.Token{}, false
	}

	return model.Token{
		Text:     cleaned,
		BBox:     bbox,
		FontName: word.FontName,
		FontSize: word.FontSize,
		Language: DetectLanguage(cleaned),
		IsChess:  n.registry.MatchesAny(cleaned),
	}, true
}

// NormalizeAll normalizes a page worth of words, preserving input
// order. The second return value is the number of words dropped.
func (n *Normalizer) NormalizeAll(words []model.Word) ([]model.Token, int) {
	if len(words) == 0 {
		return nil, 0
	}

	tokens := make([]model.Token, 0, len(words))
	dropped := 0
	for _, w := range words {
		tok, ok := n.Normalize(w)
		if !ok {
			dropped++
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, dropped
}

// CleanText normalizes raw extracted text: NFC composition, collapsed
// whitespace, control characters removed, and digit-written castling
// repaired to letter O notation. Long castles are repaired before
// short ones so "0-0-0" never decays to "O-O-0".
func CleanText(text string) string {
	text = norm.NFC.String(text)
	text = strings.Join(strings.Fields(text), " ")
	text = controlChars.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "0-0-0", "O-O-O")
	text = strings.ReplaceAll(text, "0-0", "O-O")
	return strings.TrimSpace(text)
}
