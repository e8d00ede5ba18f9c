package model

// Language identifies the detected language of a token or block.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageArabic
	LanguageEnglish
)

// String returns the ISO 639-1 style code for the language
func (l Language) String() string {
	switch l {
	case LanguageArabic:
		return "ar"
	case LanguageEnglish:
		return "en"
	default:
		return "unknown"
	}
}

// ParseLanguage converts a language code to a Language.
// Unrecognized codes map to LanguageUnknown.
func ParseLanguage(code string) Language {
	switch code {
	case "ar", "ara", "arabic":
		return LanguageArabic
	case "en", "eng", "english":
		return LanguageEnglish
	default:
		return LanguageUnknown
	}
}

// Direction represents the dominant reading direction of text
type Direction int

const (
	// LTR is left-to-right text direction
	LTR Direction = iota
	// RTL is right-to-left text direction
	RTL
	// Neutral indicates no strong directional content
	Neutral
)

// String returns a string representation of the direction
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "neutral"
	}
}

// Word is a raw extracted word exactly as delivered by a word extraction
// service: glyph text plus authoritative geometry and font attributes.
type Word struct {
	// Text is the raw glyph text
	Text string

	// X0, Top, X1, Bottom are the word's bounding box edges
	X0     float64
	Top    float64
	X1     float64
	Bottom float64

	// FontName is the font the word was set in (may be empty)
	FontName string

	// FontSize is the nominal font size in layout units
	FontSize float64
}

// BBox returns the word's bounding box
func (w Word) BBox() BBox {
	return BBox{X0: w.X0, Top: w.Top, X1: w.X1, Bottom: w.Bottom}
}

// Token is a normalized word. It is immutable once produced by the
// normalizer and is owned by the line it belongs to.
type Token struct {
	// Text is the cleaned text
	Text string

	// BBox is the token's bounding box (copied unchanged from the Word)
	BBox BBox

	// FontName is the font the token was set in
	FontName string

	// FontSize is the nominal font size in layout units
	FontSize float64

	// Language is the detected language
	Language Language

	// IsChess is true when the text matches a chess notation pattern
	IsChess bool
}
