package report

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/shatranj/model"
)

func sampleStats() model.PageStats {
	return model.PageStats{
		Blocks:        5,
		ProseBlocks:   3,
		ChessBlocks:   1,
		DiagramBlocks: 1,
		Headings:      1,
		MovesFound:    12,
		Translated:    3,
		CacheHits:     2,
	}
}

func TestNew_AssignsRunID(t *testing.T) {
	first := New("book.pdf")
	second := New("book.pdf")

	if first.RunID == "" {
		t.Fatal("Expected non-empty run ID")
	}
	if first.RunID == second.RunID {
		t.Errorf("Expected distinct run IDs, both were %s", first.RunID)
	}
	if first.Source != "book.pdf" {
		t.Errorf("Expected source 'book.pdf', got %q", first.Source)
	}
}

func TestFinalize_TotalsAndOrdering(t *testing.T) {
	r := New("book.pdf")
	r.AddPage(2, sampleStats(), 10*time.Millisecond, nil)
	r.AddPage(1, sampleStats(), 12*time.Millisecond, []string{"one block degraded"})
	r.AddFailure(3, errors.New("unreadable page"))
	r.Finalize()

	if r.PagesProcessed != 2 {
		t.Errorf("Expected 2 processed pages, got %d", r.PagesProcessed)
	}
	if r.PagesFailed != 1 {
		t.Errorf("Expected 1 failed page, got %d", r.PagesFailed)
	}

	if r.Pages[0].Page != 1 || r.Pages[1].Page != 2 || r.Pages[2].Page != 3 {
		t.Errorf("Expected pages sorted by number, got %d, %d, %d",
			r.Pages[0].Page, r.Pages[1].Page, r.Pages[2].Page)
	}

	if r.Totals.Blocks != 10 {
		t.Errorf("Expected 10 total blocks, got %d", r.Totals.Blocks)
	}
	if r.Totals.MovesFound != 24 {
		t.Errorf("Expected 24 total moves, got %d", r.Totals.MovesFound)
	}
	if r.Totals.CacheHits != 4 {
		t.Errorf("Expected 4 total cache hits, got %d", r.Totals.CacheHits)
	}
}

func TestFinalize_FailedPagesExcludedFromTotals(t *testing.T) {
	r := New("")
	r.AddPage(1, sampleStats(), time.Millisecond, nil)
	r.AddFailure(2, errors.New("boom"))
	r.Finalize()

	if r.Totals.Blocks != 5 {
		t.Errorf("Expected failed page excluded from totals, got %d blocks", r.Totals.Blocks)
	}
}

func TestFinalize_IsRepeatable(t *testing.T) {
	r := New("")
	r.AddPage(1, sampleStats(), time.Millisecond, nil)
	r.Finalize()
	r.Finalize()

	if r.Totals.Blocks != 5 {
		t.Errorf("Expected totals not to double on repeat Finalize, got %d", r.Totals.Blocks)
	}
	if r.PagesProcessed != 1 {
		t.Errorf("Expected 1 processed page after repeat Finalize, got %d", r.PagesProcessed)
	}
}

func TestToJSON(t *testing.T) {
	r := New("book.pdf")
	r.AddPage(1, sampleStats(), time.Millisecond, nil)
	r.Finalize()

	data, err := r.ToJSON(true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	if decoded.RunID != r.RunID {
		t.Errorf("Expected run ID %s, got %s", r.RunID, decoded.RunID)
	}
	if decoded.Totals.MovesFound != 12 {
		t.Errorf("Expected 12 moves in decoded report, got %d", decoded.Totals.MovesFound)
	}
}

func TestPrintTo(t *testing.T) {
	r := New("book.pdf")
	r.AddPage(1, sampleStats(), time.Millisecond, []string{"block 4 kept original text"})
	r.AddFailure(2, errors.New("unreadable page"))
	r.Finalize()

	var sb strings.Builder
	r.PrintTo(&sb)
	out := sb.String()

	for _, want := range []string{
		"Document Report",
		"Source: book.pdf",
		"Pages: 1 processed, 1 failed",
		"block 4 kept original text",
		"FAILED: unreadable page",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\ngot:\n%s", want, out)
		}
	}
}

func TestSaveToFile(t *testing.T) {
	r := New("book.pdf")
	r.AddPage(1, sampleStats(), time.Millisecond, nil)
	r.Finalize()

	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "report.json")
	if err := r.SaveToFile(jsonPath, "json", true); err != nil {
		t.Fatalf("SaveToFile json failed: %v", err)
	}

	yamlPath := filepath.Join(dir, "report.yaml")
	if err := r.SaveToFile(yamlPath, "yaml", false); err != nil {
		t.Fatalf("SaveToFile yaml failed: %v", err)
	}

	if err := r.SaveToFile(filepath.Join(dir, "report.xml"), "xml", false); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
