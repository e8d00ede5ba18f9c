package hocr

import (
	"strings"
	"testing"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
<head>
<meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
<meta name="ocr-system" content="tesseract 5.3.0"/>
</head>
<body>
<div class="ocr_page" id="page_1" title="image &quot;scan.png&quot;; bbox 0 0 612 792; ppageno 0">
<div class="ocr_carea" id="block_1_1" title="bbox 72 80 540 120">
<p class="ocr_par" id="par_1_1" lang="eng" title="bbox 72 80 540 120">
<span class="ocr_line" id="line_1_1" title="bbox 72 80 540 100; baseline 0 -3; x_size 12.5; x_descenders 2.5; x_ascenders 3">
<span class="ocrx_word" id="word_1_1" title="bbox 72 80 130 100; x_wconf 96">White</span>
<span class="ocrx_word" id="word_1_2" title="bbox 140 80 210 100; x_wconf 94">resigned</span>
</span>
<span class="ocr_line" id="line_1_2" title="bbox 72 105 540 120; baseline 0 -3; x_size 10">
<span class="ocrx_word" id="word_1_3" title="bbox 72 105 120 120; x_wconf 91">after</span>
<span class="ocrx_word" id="word_1_4" title="bbox 130 105 180 120; x_wconf 40">the</span>
</span>
</p>
</div>
</div>
<div class="ocr_page" id="page_2" title="image &quot;scan2.png&quot;; bbox 0 0 612 792; ppageno 1">
<div class="ocr_carea" id="block_2_1" title="bbox 72 80 300 100">
<span class="ocr_line" id="line_2_1" title="bbox 72 80 300 100; x_size 11">
<span class="ocrx_word" id="word_2_1" title="bbox 72 80 150 100; x_wconf 88">Chapter</span>
</span>
</div>
</div>
</body>
</html>`

func TestParse_PageDimensions(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.PageCount() != 2 {
		t.Fatalf("Expected 2 pages, got %d", doc.PageCount())
	}

	page := doc.GetPage(1)
	if page.Number != 1 {
		t.Errorf("Expected page number 1, got %d", page.Number)
	}
	if page.Width != 612 {
		t.Errorf("Expected page width 612, got %.1f", page.Width)
	}
	if page.Height != 792 {
		t.Errorf("Expected page height 792, got %.1f", page.Height)
	}
}

func TestParse_WordGeometry(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	page := doc.GetPage(1)
	if len(page.Words) != 4 {
		t.Fatalf("Expected 4 words on page 1, got %d", len(page.Words))
	}

	w := page.Words[0]
	if w.Text != "White" {
		t.Errorf("Expected first word 'White', got %q", w.Text)
	}
	if w.X0 != 72 || w.Top != 80 || w.X1 != 130 || w.Bottom != 100 {
		t.Errorf("Expected bbox (72, 80, 130, 100), got (%.0f, %.0f, %.0f, %.0f)",
			w.X0, w.Top, w.X1, w.Bottom)
	}
}

func TestParse_FontSizeFromLine(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	words := doc.GetPage(1).Words
	if words[0].FontSize != 12.5 {
		t.Errorf("Expected first line words at size 12.5, got %.1f", words[0].FontSize)
	}
	if words[2].FontSize != 10 {
		t.Errorf("Expected second line words at size 10, got %.1f", words[2].FontSize)
	}
}

func TestParse_ConfidenceFilter(t *testing.T) {
	doc, err := ParseWithConfig(strings.NewReader(sampleHOCR), ParseConfig{MinConfidence: 50})
	if err != nil {
		t.Fatalf("ParseWithConfig failed: %v", err)
	}

	words := doc.GetPage(1).Words
	if len(words) != 3 {
		t.Fatalf("Expected 3 words above confidence 50, got %d", len(words))
	}
	for _, w := range words {
		if w.Text == "the" {
			t.Errorf("Expected low-confidence word 'the' to be dropped")
		}
	}
}

func TestParse_SkipsEmptyWords(t *testing.T) {
	input := `<div class="ocr_page" title="bbox 0 0 100 100">
<span class="ocrx_word" title="bbox 1 2 3 4">   </span>
<span class="ocrx_word" title="bbox 5 6 7 8">kept</span>
</div>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	words := doc.GetPage(1).Words
	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}
	if words[0].Text != "kept" {
		t.Errorf("Expected 'kept', got %q", words[0].Text)
	}
}

func TestParse_SkipsMalformedBBox(t *testing.T) {
	input := `<div class="ocr_page" title="bbox 0 0 100 100">
<span class="ocrx_word" title="bbox a b c d">bad</span>
<span class="ocrx_word" title="x_wconf 90">missing</span>
<span class="ocrx_word" title="bbox 5 6 7 8">good</span>
</div>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	words := doc.GetPage(1).Words
	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}
	if words[0].Text != "good" {
		t.Errorf("Expected 'good', got %q", words[0].Text)
	}
}

func TestParse_NoPageWrapper(t *testing.T) {
	input := `<span class="ocrx_word" title="bbox 10 20 60 40">orphan</span>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.PageCount() != 1 {
		t.Fatalf("Expected orphan words wrapped in 1 page, got %d pages", doc.PageCount())
	}
	page := doc.GetPage(1)
	if page.Number != 1 {
		t.Errorf("Expected page number 1, got %d", page.Number)
	}
	if len(page.Words) != 1 || page.Words[0].Text != "orphan" {
		t.Errorf("Expected single word 'orphan', got %v", page.Words)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.PageCount() != 0 {
		t.Errorf("Expected 0 pages for empty input, got %d", doc.PageCount())
	}
}

func TestDocument_Words(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	words, width, height, err := doc.Words(1)
	if err != nil {
		t.Fatalf("Words(1) failed: %v", err)
	}
	if len(words) != 4 {
		t.Errorf("Expected 4 words, got %d", len(words))
	}
	if width != 612 || height != 792 {
		t.Errorf("Expected dimensions 612x792, got %.0fx%.0f", width, height)
	}

	if _, _, _, err := doc.Words(3); err == nil {
		t.Errorf("Expected error for out-of-range page")
	}
}

func TestDocument_WordCount(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.WordCount() != 5 {
		t.Errorf("Expected 5 words across the document, got %d", doc.WordCount())
	}
}

func TestDocument_NilSafety(t *testing.T) {
	var doc *Document

	if doc.PageCount() != 0 {
		t.Errorf("Expected 0 pages for nil document")
	}
	if doc.GetPage(1) != nil {
		t.Errorf("Expected nil page for nil document")
	}
	if doc.WordCount() != 0 {
		t.Errorf("Expected 0 words for nil document")
	}
}

func TestTitleProperties(t *testing.T) {
	props := titleProperties("bbox 1 2 3 4; x_wconf 95; baseline 0 -3")

	if got := props["bbox"]; len(got) != 4 || got[0] != "1" || got[3] != "4" {
		t.Errorf("Expected bbox values [1 2 3 4], got %v", got)
	}
	if got := props["x_wconf"]; len(got) != 1 || got[0] != "95" {
		t.Errorf("Expected x_wconf [95], got %v", got)
	}
	if got := props["baseline"]; len(got) != 2 {
		t.Errorf("Expected baseline to keep both values, got %v", got)
	}
}
