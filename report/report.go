// Package report aggregates per-page processing statistics into a
// document-level report that can be printed or saved as JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/shatranj/model"
)

// PageReport is the record kept for one processed page.
type PageReport struct {
	// Page is the 1-based page number
	Page int `json:"page" yaml:"page"`

	// Stats are the page's counters
	Stats model.PageStats `json:"stats" yaml:"stats"`

	// Duration is how long the page took to process
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Warnings lists non-fatal recoveries hit on the page
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Error is set when the page failed outright
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the document-level aggregate.
type Report struct {
	// RunID uniquely identifies this processing run
	RunID string `json:"run_id" yaml:"run_id"`

	// Source names the document that was processed
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Timestamp is when processing started
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Duration is the total processing time, set by Finalize
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Pages holds the per-page records in page order after Finalize
	Pages []PageReport `json:"pages" yaml:"pages"`

	// Totals accumulates the page counters, set by Finalize
	Totals model.PageStats `json:"totals" yaml:"totals"`

	// PagesProcessed and PagesFailed count outcomes
	PagesProcessed int `json:"pages_processed" yaml:"pages_processed"`
	PagesFailed    int `json:"pages_failed" yaml:"pages_failed"`
}

// New creates a report for one processing run.
func New(source string) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		Source:    source,
		Timestamp: time.Now(),
	}
}

// AddPage records a successfully processed page.
func (r *Report) AddPage(number int, stats model.PageStats, duration time.Duration, warnings []string) {
	r.Pages = append(r.Pages, PageReport{
		Page:     number,
		Stats:    stats,
		Duration: duration,
		Warnings: warnings,
	})
}

// AddFailure records a page that could not be processed.
func (r *Report) AddFailure(number int, err error) {
	page := PageReport{Page: number}
	if err != nil {
		page.Error = err.Error()
	}
	r.Pages = append(r.Pages, page)
}

// Finalize sorts the pages, accumulates the totals and stamps the total
// duration. Call it once, after the last page is recorded.
func (r *Report) Finalize() {
	sort.Slice(r.Pages, func(i, j int) bool {
		return r.Pages[i].Page < r.Pages[j].Page
	})

	r.Totals = model.PageStats{}
	r.PagesProcessed = 0
	r.PagesFailed = 0
	for i := range r.Pages {
		if r.Pages[i].Error != "" {
			r.PagesFailed++
			continue
		}
		r.PagesProcessed++
		r.Totals.Add(r.Pages[i].Stats)
	}

	r.Duration = time.Since(r.Timestamp)
}

// Print prints the report to stdout in a human-readable format.
func (r *Report) Print() {
	r.PrintTo(os.Stdout)
}

// PrintTo prints the report to the specified writer.
func (r *Report) PrintTo(w io.Writer) {
	fmt.Fprintf(w, "Document Report\n")
	fmt.Fprintf(w, "===============\n\n")

	fmt.Fprintf(w, "Run: %s\n", r.RunID)
	if r.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", r.Source)
	}
	fmt.Fprintf(w, "Timestamp: %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n\n", r.Duration)

	fmt.Fprintf(w, "Pages: %d processed, %d failed\n\n", r.PagesProcessed, r.PagesFailed)

	fmt.Fprintf(w, "Totals\n")
	fmt.Fprintf(w, "------\n")
	fmt.Fprintf(w, "Blocks: %d (prose %d, chess %d, diagram %d)\n",
		r.Totals.Blocks, r.Totals.ProseBlocks, r.Totals.ChessBlocks, r.Totals.DiagramBlocks)
	fmt.Fprintf(w, "Headings: %d\n", r.Totals.Headings)
	fmt.Fprintf(w, "Moves: %d, Variations: %d, Annotations: %d\n",
		r.Totals.MovesFound, r.Totals.VariationsFound, r.Totals.AnnotationsFound)
	fmt.Fprintf(w, "Translated: %d (%d failed, %d cache hits)\n",
		r.Totals.Translated, r.Totals.TranslationsFailed, r.Totals.CacheHits)
	fmt.Fprintf(w, "Dropped words: %d\n", r.Totals.DroppedWords)

	warned := 0
	for _, page := range r.Pages {
		for _, warning := range page.Warnings {
			if warned == 0 {
				fmt.Fprintf(w, "\nWarnings\n")
				fmt.Fprintf(w, "--------\n")
			}
			warned++
			fmt.Fprintf(w, "page %d: %s\n", page.Page, warning)
		}
		if page.Error != "" {
			if warned == 0 {
				fmt.Fprintf(w, "\nWarnings\n")
				fmt.Fprintf(w, "--------\n")
			}
			warned++
			fmt.Fprintf(w, "page %d: FAILED: %s\n", page.Page, page.Error)
		}
	}
}

// ToJSON converts the report to JSON.
func (r *Report) ToJSON(pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// ToYAML converts the report to YAML.
func (r *Report) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// SaveToFile saves the report to a file in the specified format.
func (r *Report) SaveToFile(path string, format string, pretty bool) error {
	var data []byte
	var err error

	switch format {
	case "json":
		data, err = r.ToJSON(pretty)
	case "yaml", "yml":
		data, err = r.ToYAML()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("failed to convert report to %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to file: %w", err)
	}

	return nil
}
