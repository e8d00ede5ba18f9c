// Package hocr parses hOCR output into positioned words.
//
// hOCR is the HTML-based format OCR engines emit: nested elements
// classed ocr_page, ocr_line and ocrx_word, each carrying its geometry
// in a title attribute ("bbox x0 y0 x1 y1; x_wconf 95"). This package
// extracts the word layer, which is all the layout pipeline needs.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/shatranj/model"
)

// ParseConfig holds configuration for hOCR parsing.
type ParseConfig struct {
	// MinConfidence drops words whose x_wconf falls below the given
	// value. Zero keeps every word, including those without a
	// confidence annotation.
	MinConfidence float64
}

// Page is one hOCR page: its dimensions and the words found on it.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are taken from the page's bbox
	Width  float64
	Height float64

	// Words are the recognized words in document order
	Words []model.Word
}

// Document is a parsed hOCR file.
type Document struct {
	// Pages in document order
	Pages []Page
}

// Open parses an hOCR file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses hOCR from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return ParseWithConfig(r, ParseConfig{})
}

// ParseWithConfig parses hOCR from an io.Reader with custom configuration.
func ParseWithConfig(r io.Reader, config ParseConfig) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hocr: %w", err)
	}

	doc := &Document{}
	collectPages(root, doc, config)

	// Some emitters skip the ocr_page wrapper; treat the whole file as
	// a single page then.
	if len(doc.Pages) == 0 {
		words := collectWords(root, config)
		if len(words) > 0 {
			doc.Pages = append(doc.Pages, Page{Number: 1, Words: words})
		}
	}

	return doc, nil
}

// collectPages walks the tree gathering ocr_page elements.
func collectPages(n *html.Node, doc *Document, config ParseConfig) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
		page := Page{Number: len(doc.Pages) + 1}
		if box, ok := parseBBox(titleProperties(attr(n, "title"))["bbox"]); ok {
			page.Width = box.Width()
			page.Height = box.Height()
		}
		page.Words = collectWords(n, config)
		doc.Pages = append(doc.Pages, page)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectPages(c, doc, config)
	}
}

// collectWords gathers every ocrx_word underneath a node.
func collectWords(n *html.Node, config ParseConfig) []model.Word {
	var words []model.Word
	walkWords(n, 0, config, &words)
	return words
}

// walkWords descends the tree carrying the font size of the nearest
// enclosing line, which is where hOCR records it.
func walkWords(n *html.Node, lineSize float64, config ParseConfig, words *[]model.Word) {
	if n.Type == html.ElementNode {
		props := titleProperties(attr(n, "title"))

		if hasClass(n, "ocr_line") || hasClass(n, "ocr_header") || hasClass(n, "ocr_caption") {
			if size, ok := floatProperty(props, "x_size"); ok {
				lineSize = size
			}
		}

		if hasClass(n, "ocrx_word") {
			if word, ok := buildWord(n, props, lineSize, config); ok {
				*words = append(*words, word)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkWords(c, lineSize, config, words)
	}
}

// buildWord assembles a word from an ocrx_word element. The boolean is
// false when the element has no text, no usable bbox, or falls below
// the confidence floor.
func buildWord(n *html.Node, props map[string][]string, lineSize float64, config ParseConfig) (model.Word, bool) {
	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return model.Word{}, false
	}

	box, ok := parseBBox(props["bbox"])
	if !ok {
		return model.Word{}, false
	}

	if config.MinConfidence > 0 {
		if conf, ok := floatProperty(props, "x_wconf"); ok && conf < config.MinConfidence {
			return model.Word{}, false
		}
	}

	return model.Word{
		Text:     text,
		X0:       box.X0,
		Top:      box.Top,
		X1:       box.X1,
		Bottom:   box.Bottom,
		FontSize: lineSize,
	}, true
}

// titleProperties splits an hOCR title attribute into its named fields.
// "bbox 1 2 3 4; x_wconf 95" becomes {"bbox": [1 2 3 4], "x_wconf": [95]}.
func titleProperties(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 2 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

// parseBBox reads the four "bbox x0 y0 x1 y1" values.
func parseBBox(values []string) (model.BBox, bool) {
	if len(values) != 4 {
		return model.BBox{}, false
	}
	nums := make([]float64, 4)
	for i, v := range values {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return model.BBox{}, false
		}
		nums[i] = n
	}
	return model.NewBBox(nums[0], nums[1], nums[2], nums[3]), true
}

// floatProperty reads a single-valued numeric title property.
func floatProperty(props map[string][]string, key string) (float64, bool) {
	values := props[key]
	if len(values) == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// attr returns the value of a node attribute.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether a node carries the given class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent returns the concatenated text beneath a node.
func textContent(n *html.Node) string {
	var sb strings.Builder
	appendText(n, &sb)
	return sb.String()
}

func appendText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, sb)
	}
}

// Document methods

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// GetPage returns a page by 1-based number.
func (d *Document) GetPage(number int) *Page {
	if d == nil || number < 1 || number > len(d.Pages) {
		return nil
	}
	return &d.Pages[number-1]
}

// Words returns the words and dimensions of a page by 1-based number.
// It satisfies the page source contract of the processing pipeline.
func (d *Document) Words(number int) ([]model.Word, float64, float64, error) {
	page := d.GetPage(number)
	if page == nil {
		return nil, 0, 0, fmt.Errorf("hocr: no page %d", number)
	}
	return page.Words, page.Width, page.Height, nil
}

// WordCount returns the number of words across all pages.
func (d *Document) WordCount() int {
	if d == nil {
		return 0
	}
	total := 0
	for i := range d.Pages {
		total += len(d.Pages[i].Words)
	}
	return total
}
