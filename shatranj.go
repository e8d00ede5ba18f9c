// Package shatranj reconstructs the layout of scanned chess book pages
// and prepares them for translation. It clusters raw word geometry into
// lines and content blocks, classifies each block as prose, chess
// notation or board diagram, shields the notation from the translation
// backend behind placeholders, and expands variations and annotation
// symbols into readable text afterwards.
//
// Basic usage:
//
//	pages, warnings, err := shatranj.Open("book.hocr").Process()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", shatranj.FormatWarnings(warnings))
//	}
//
// With options:
//
//	pages, _, err := shatranj.Open("book.hocr").
//	    Pages(1, 2, 3).
//	    WithTranslator(backend).
//	    ArabicOutput().
//	    Process()
//
// For advanced use cases, the lower-level layout, chess and translate
// packages are also available.
package shatranj

import (
	"fmt"
	"strings"

	"github.com/tsawler/shatranj/model"
)

// PageSource supplies the word geometry the pipeline consumes. Words
// returns the raw words of a 1-based page together with the page width
// and height. The geometry is treated as authoritative; the pipeline
// never re-measures it. hocr.Document satisfies this interface, as does
// any extractor that reports top-left-origin word boxes.
type PageSource interface {
	PageCount() int
	Words(page int) ([]model.Word, float64, float64, error)
}

// Open opens an hOCR document and returns a Processor for fluent
// configuration. The file is read and parsed on the first terminal
// operation, so configuration errors surface before I/O errors.
//
// Example:
//
//	pages, warnings, err := shatranj.Open("book.hocr").Process()
func Open(filename string) *Processor {
	return &Processor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates a Processor from an already-built word source.
// This is the entry point for word geometry that does not come from an
// hOCR file, such as a PDF word extractor or an in-memory fixture.
//
// Example:
//
//	doc, err := hocr.Open("book.hocr")
//	if err != nil {
//	    // handle error
//	}
//	pages, warnings, err := shatranj.FromSource(doc).Process()
func FromSource(source PageSource) *Processor {
	return &Processor{
		source:       source,
		sourceLoaded: source != nil,
		options:      defaultOptions(),
	}
}

// Warning describes a non-fatal condition encountered while processing
// a page: dropped words, a failed translation, an unbalanced variation.
// Processing continued past it; the result may be imperfect.
type Warning struct {
	// Stage is the pipeline stage that raised the warning, such as
	// "extract", "normalize", "translate" or "expand"
	Stage string

	// Page is the 1-based page number, 0 when not tied to a page
	Page int

	// Message describes what happened
	Message string
}

// String renders the warning as a single log-friendly line.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d [%s]: %s", w.Page, w.Stage, w.Message)
	}
	return fmt.Sprintf("[%s]: %s", w.Stage, w.Message)
}

// FormatWarnings renders warnings one per line, for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := shatranj.Must(shatranj.Open("book.hocr").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Process() and
// panics if the error is non-nil. It discards warnings and returns just
// the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	text := shatranj.MustText(shatranj.Open("book.hocr").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
