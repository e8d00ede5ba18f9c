package shatranj

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/shatranj/chess"
	"github.com/tsawler/shatranj/config"
	"github.com/tsawler/shatranj/hocr"
	"github.com/tsawler/shatranj/layout"
	"github.com/tsawler/shatranj/model"
	"github.com/tsawler/shatranj/report"
	"github.com/tsawler/shatranj/text"
	"github.com/tsawler/shatranj/translate"
)

// translationWorkers caps the block-level translation fan-out within a
// single page. Page-level parallelism is configured separately through
// Workers.
const translationWorkers = 10

// Processor provides a fluent API for reconstructing and translating
// scanned chess book pages.
//
// Create a Processor with Open or FromSource, chain configuration
// methods, and call a terminal operation (Process, Text, Blocks,
// Report). Configuration methods return a new Processor, so partially
// configured processors can be reused safely:
//
//	base := shatranj.Open("book.hocr").WithTranslator(backend)
//	intro, _, _ := base.Pages(1, 2, 3).Process()
//	games, _, _ := base.PageRange(10, 50).Process()
type Processor struct {
	// Source
	filename string
	source   PageSource

	// Lifecycle
	sourceLoaded bool

	// Configuration
	options ProcessOptions
	ctx     context.Context // applied to translation calls; nil means Background

	// Accumulated error from the configuration chain. Terminal
	// operations return it without starting any work.
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone returns a copy of the Processor for the builder pattern.
// The page source is shared; options are deep-copied so the clones
// cannot affect each other.
func (p *Processor) clone() *Processor {
	return &Processor{
		filename:     p.filename,
		source:       p.source,
		sourceLoaded: p.sourceLoaded,
		options:      p.options.clone(),
		ctx:          p.ctx,
		err:          p.err,
		warnings:     append([]Warning(nil), p.warnings...),
	}
}

// ensureSource opens and parses the hOCR file if the Processor was
// created with Open. The whole document is parsed up front and the
// file handle released, so no Close call is needed afterwards.
func (p *Processor) ensureSource() error {
	if p.sourceLoaded {
		return nil
	}

	if p.filename == "" {
		return fmt.Errorf("no word source specified")
	}

	doc, err := hocr.Open(p.filename)
	if err != nil {
		return fmt.Errorf("failed to open hOCR document: %w", err)
	}

	p.source = doc
	p.sourceLoaded = true
	return nil
}

// ============================================================================
// Configuration Methods (return new Processor instance)
// ============================================================================

// Pages selects specific pages to process (1-indexed). Duplicates are
// removed and the pages are processed in ascending order regardless of
// the order given here.
//
// Example:
//
//	pages, _, err := shatranj.Open("book.hocr").Pages(1, 3, 5).Process()
func (p *Processor) Pages(pages ...int) *Processor {
	newProc := p.clone()
	newProc.options.pages = append([]int(nil), pages...)
	return newProc
}

// PageRange selects an inclusive range of pages to process (1-indexed).
//
// Example:
//
//	pages, _, err := shatranj.Open("book.hocr").PageRange(10, 20).Process()
func (p *Processor) PageRange(start, end int) *Processor {
	newProc := p.clone()
	if start < 1 || end < start {
		if newProc.err == nil {
			newProc.err = fmt.Errorf("invalid page range %d-%d", start, end)
		}
		return newProc
	}

	pages := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}
	newProc.options.pages = pages
	return newProc
}

// WithTranslator installs the translation backend used for prose
// blocks. The backend is wrapped with retry, rate limiting and a
// shared cache according to the active configuration.
//
// Without a translator the pipeline runs layout reconstruction and
// classification only, and every block keeps its original text.
//
// Example:
//
//	pages, _, err := shatranj.Open("book.hocr").
//		WithTranslator(myBackend).
//		Process()
func (p *Processor) WithTranslator(t translate.Translator) *Processor {
	newProc := p.clone()
	newProc.options.translator = t
	return newProc
}

// WithLogger sets the logger used during processing. By default the
// pipeline is silent.
func (p *Processor) WithLogger(log *zap.Logger) *Processor {
	newProc := p.clone()
	newProc.options.logger = log
	return newProc
}

// WithConfig applies a full configuration, usually loaded from a YAML
// file. Values not present in the configuration keep their defaults.
// Later configuration methods override what WithConfig set.
//
// Example:
//
//	cfg, err := config.Load("shatranj.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	pages, _, err := shatranj.Open("book.hocr").WithConfig(cfg).Process()
func (p *Processor) WithConfig(cfg config.Config) *Processor {
	newProc := p.clone()
	newProc.options = newProc.options.withConfig(cfg)
	return newProc
}

// WithContext sets the context for translation calls, allowing
// cancellation and deadlines while a document is being translated.
// Layout analysis itself is CPU-bound and runs to completion per page.
func (p *Processor) WithContext(ctx context.Context) *Processor {
	newProc := p.clone()
	newProc.ctx = ctx
	return newProc
}

// Languages sets the source and target language codes for translation
// ("en" and "ar" are supported). An unrecognized code fails the chain;
// the error is reported by the terminal operation.
//
// Example:
//
//	pages, _, err := shatranj.Open("book.hocr").
//		WithTranslator(backend).
//		Languages("en", "ar").
//		Process()
func (p *Processor) Languages(source, target string) *Processor {
	newProc := p.clone()

	src := model.ParseLanguage(source)
	if src == model.LanguageUnknown {
		if newProc.err == nil {
			newProc.err = fmt.Errorf("unsupported source language %q", source)
		}
		return newProc
	}

	tgt := model.ParseLanguage(target)
	if tgt == model.LanguageUnknown {
		if newProc.err == nil {
			newProc.err = fmt.Errorf("unsupported target language %q", target)
		}
		return newProc
	}

	newProc.options.source = src
	newProc.options.target = tgt
	newProc.options.classifierConfig.SourceLanguage = src
	return newProc
}

// Workers sets how many pages are processed concurrently. Values
// below 1 are ignored.
func (p *Processor) Workers(n int) *Processor {
	newProc := p.clone()
	if n >= 1 {
		newProc.options.workers = n
	}
	return newProc
}

// ArabicOutput configures the pipeline to emit Arabic-ready chess
// content. Expanded variations and annotations use Arabic phrasing,
// and diagram glyphs are described with Arabic piece names.
//
// Example:
//
//	pages, _, err := shatranj.Open("book.hocr").
//		WithTranslator(backend).
//		ArabicOutput().
//		Process()
func (p *Processor) ArabicOutput() *Processor {
	newProc := p.clone()
	newProc.options.expanderConfig = chess.ArabicExpanderConfig()
	newProc.options.diagramNames = chess.ArabicDiagramNames()
	return newProc
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Process runs the full pipeline and returns the reconstructed pages
// in ascending page order, together with any warnings gathered along
// the way. A page whose words cannot be extracted yields an empty page
// and a warning rather than failing the whole run.
//
// Example:
//
//	pages, warnings, err := shatranj.Open("book.hocr").Process()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, page := range pages {
//		fmt.Printf("page %d: %d blocks\n", page.Number, len(page.Blocks))
//	}
func (p *Processor) Process() ([]model.Page, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	outcomes, err := p.run()
	if err != nil {
		return nil, nil, err
	}

	pages := make([]model.Page, len(outcomes))
	warnings := append([]Warning(nil), p.warnings...)
	for i, out := range outcomes {
		pages[i] = out.page
		if out.err != nil {
			warnings = append(warnings, Warning{
				Stage:   "extract",
				Page:    out.number,
				Message: out.err.Error(),
			})
			continue
		}
		warnings = append(warnings, out.warnings...)
	}

	return pages, warnings, nil
}

// Text runs the pipeline and returns the final text of the whole
// document. Translated blocks contribute their translation, untouched
// blocks their original text. Pages are separated by blank lines.
//
// Example:
//
//	text, _, err := shatranj.Open("book.hocr").WithTranslator(backend).Text()
func (p *Processor) Text() (string, []Warning, error) {
	pages, warnings, err := p.Process()
	if err != nil {
		return "", warnings, err
	}

	var result strings.Builder
	for i := range pages {
		pageText := pages[i].Text()
		if pageText == "" {
			continue
		}
		if result.Len() > 0 {
			result.WriteString("\n\n")
		}
		result.WriteString(pageText)
	}

	return result.String(), warnings, nil
}

// Blocks runs the pipeline and returns every block of the selected
// pages in reading order, pages ascending.
//
// Example:
//
//	blocks, _, err := shatranj.Open("book.hocr").Blocks()
//	for _, b := range blocks {
//		fmt.Printf("%s [%s]: %s\n", b.ID, b.Type, b.FinalText())
//	}
func (p *Processor) Blocks() ([]model.Block, []Warning, error) {
	pages, warnings, err := p.Process()
	if err != nil {
		return nil, warnings, err
	}

	var blocks []model.Block
	for i := range pages {
		blocks = append(blocks, pages[i].Blocks...)
	}

	return blocks, warnings, nil
}

// Report runs the pipeline and returns a processing report with
// per-page statistics, timings and warnings instead of the page
// content itself.
//
// Example:
//
//	rep, _, err := shatranj.Open("book.hocr").Report()
//	if err != nil {
//		log.Fatal(err)
//	}
//	rep.Print()
func (p *Processor) Report() (*report.Report, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	outcomes, err := p.run()
	if err != nil {
		return nil, nil, err
	}

	rep := report.New(p.filename)
	warnings := append([]Warning(nil), p.warnings...)
	for _, out := range outcomes {
		if out.err != nil {
			rep.AddFailure(out.number, out.err)
			warnings = append(warnings, Warning{
				Stage:   "extract",
				Page:    out.number,
				Message: out.err.Error(),
			})
			continue
		}

		var messages []string
		for _, w := range out.warnings {
			messages = append(messages, w.Stage+": "+w.Message)
		}
		rep.AddPage(out.number, out.page.Stats, out.duration, messages)
		warnings = append(warnings, out.warnings...)
	}
	rep.Finalize()

	return rep, warnings, nil
}

// PageCount returns the number of pages in the word source.
// Note: This does NOT consume the processor; further operations may
// be chained afterwards.
func (p *Processor) PageCount() (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if err := p.ensureSource(); err != nil {
		return 0, err
	}
	return p.source.PageCount(), nil
}

// ============================================================================
// Pipeline Internals
// ============================================================================

// pageOutcome carries one page's result through the fan-in.
type pageOutcome struct {
	number   int
	page     model.Page
	warnings []Warning
	duration time.Duration
	err      error
}

// run processes the selected pages over a bounded worker pool. Results
// land in a page-indexed slice written by exactly one worker each, so
// the translation cache is the only shared mutable state.
func (p *Processor) run() ([]pageOutcome, error) {
	if err := p.ensureSource(); err != nil {
		return nil, err
	}

	pageNumbers, err := p.resolvePages()
	if err != nil {
		return nil, err
	}

	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	pl := newPipeline(p.options)

	workers := p.options.workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	outcomes := make([]pageOutcome, len(pageNumbers))
	for i, number := range pageNumbers {
		wg.Add(1)
		go func(idx, pageNum int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			words, width, height, err := p.source.Words(pageNum)
			if err != nil {
				outcomes[idx] = pageOutcome{
					number:   pageNum,
					page:     model.Page{Number: pageNum},
					duration: time.Since(start),
					err:      err,
				}
				return
			}

			page, pageWarnings := pl.processPage(ctx, pageNum, words, width, height)
			outcomes[idx] = pageOutcome{
				number:   pageNum,
				page:     page,
				warnings: pageWarnings,
				duration: time.Since(start),
			}
		}(i, number)
	}
	wg.Wait()

	return outcomes, nil
}

// resolvePages validates the requested 1-indexed page numbers against
// the source. If no pages were specified, all pages are processed.
func (p *Processor) resolvePages() ([]int, error) {
	pageCount := p.source.PageCount()

	// If no pages specified, use all pages
	if len(p.options.pages) == 0 {
		pageNumbers := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageNumbers[i] = i + 1
		}
		return pageNumbers, nil
	}

	// Validate and dedupe
	seen := make(map[int]bool)
	var pageNumbers []int
	for _, n := range p.options.pages {
		if n < 1 || n > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", n, pageCount)
		}
		if !seen[n] {
			seen[n] = true
			pageNumbers = append(pageNumbers, n)
		}
	}

	sort.Ints(pageNumbers)
	return pageNumbers, nil
}

// pipeline holds the stage objects for one run. The stages carry no
// per-page state and are shared by every page worker. All chess-aware
// stages share a single pattern registry so a notation form is
// recognized identically at every step.
type pipeline struct {
	normalizer *text.Normalizer
	lines      *layout.LineDetector
	blocks     *layout.BlockDetector
	merger     *layout.Merger
	classifier *chess.Classifier
	headings   *layout.HeadingDetector
	columns    *layout.ColumnDetector
	guard      *chess.Guard
	expander   *chess.Expander
	cache      *translate.Cache

	diagramNames map[rune]string
	source       model.Language
	target       model.Language
	log          *zap.Logger
}

func newPipeline(o ProcessOptions) *pipeline {
	registry := chess.NewRegistry()
	classifier := chess.NewClassifierWithRegistry(o.classifierConfig, registry)

	log := o.logger
	if log == nil {
		log = zap.NewNop()
	}

	pl := &pipeline{
		normalizer:   text.NewNormalizerWithRegistry(registry),
		lines:        layout.NewLineDetectorWithConfig(o.lineConfig),
		blocks:       layout.NewBlockDetectorWithConfig(o.blockConfig),
		merger:       layout.NewMergerWithClassifier(o.mergerConfig, classifier),
		classifier:   classifier,
		headings:     layout.NewHeadingDetectorWithConfig(o.headingConfig),
		columns:      layout.NewColumnDetectorWithConfig(o.columnConfig),
		guard:        chess.NewGuardWithRegistry(registry),
		expander:     chess.NewExpanderWithConfig(o.expanderConfig),
		diagramNames: o.diagramNames,
		source:       o.source,
		target:       o.target,
		log:          log,
	}

	if o.translator != nil {
		retrier := translate.NewRetrier(o.translator, o.retryConfig, log)
		pl.cache = translate.NewCache(retrier, o.cacheConfig)
	}

	return pl
}

// processPage runs the per-page stages in order: normalize words into
// tokens, group tokens into lines and blocks, merge blocks split by
// vertical offsets, classify, annotate headings, measure columns,
// translate prose and expand chess content.
func (pl *pipeline) processPage(ctx context.Context, number int, words []model.Word, width, height float64) (model.Page, []Warning) {
	start := time.Now()
	var warnings []Warning

	page := model.Page{
		Number: number,
		Width:  width,
		Height: height,
	}

	tokens, dropped := pl.normalizer.NormalizeAll(words)
	page.Stats.DroppedWords = dropped
	if len(tokens) == 0 {
		if dropped > 0 {
			warnings = append(warnings, Warning{
				Stage:   "normalize",
				Page:    number,
				Message: fmt.Sprintf("all %d words dropped during normalization", dropped),
			})
		}
		return page, warnings
	}

	lineLayout := pl.lines.Detect(tokens, width, height)
	blockLayout := pl.blocks.Detect(lineLayout.Lines, width, height)
	blocks, fused := pl.merger.Merge(blockLayout.Blocks)

	for i := range blocks {
		blockType, metadata := pl.classifier.Classify(&blocks[i])
		blocks[i].Type = blockType
		blocks[i].Metadata = metadata
		blocks[i].NeedsTranslation = pl.classifier.NeedsTranslation(blockType, blocks[i].Language)
		blocks[i].ID = fmt.Sprintf("block_%d_%d", number, i)
	}

	headings := pl.headings.Annotate(blocks)
	columnLayout := pl.columns.Detect(tokens, width, height)

	warnings = append(warnings, pl.translateBlocks(ctx, number, blocks, &page.Stats)...)
	warnings = append(warnings, pl.expandBlocks(number, blocks)...)

	page.Blocks = blocks
	page.Direction = pageDirection(tokens)
	page.Stats.Blocks = len(blocks)
	page.Stats.Headings = headings
	page.Stats.Columns = columnLayout.ColumnCount()
	page.Stats.DominantFont, page.Stats.DominantFontSize = dominantPageFont(tokens)

	for i := range blocks {
		switch blocks[i].Type {
		case model.BlockTypeChess:
			page.Stats.ChessBlocks++
		case model.BlockTypeDiagram:
			page.Stats.DiagramBlocks++
		default:
			page.Stats.ProseBlocks++
		}

		m := blocks[i].Metadata
		page.Stats.MovesFound += m.MatchCount(chess.CategoryPieceMoves) +
			m.MatchCount(chess.CategoryPawnMoves) +
			m.MatchCount(chess.CategoryCastling)
		page.Stats.VariationsFound += m.MatchCount(chess.CategoryVariations)
		page.Stats.AnnotationsFound += m.MatchCount(chess.CategoryAnnotation) +
			m.MatchCount(chess.CategoryNAG)
	}

	pl.log.Debug("page processed",
		zap.Int("page", number),
		zap.Int("blocks", len(blocks)),
		zap.Int("fused", fused),
		zap.Int("dropped_words", dropped),
		zap.Duration("elapsed", time.Since(start)))

	return page, warnings
}

// translateBlocks translates the prose blocks flagged by the
// classifier. Blocks fan out over a bounded worker set; each worker
// writes only its own block and outcome slot, so the counters are
// merged after the wait. A block whose translation fails keeps its
// original text and is counted in the page statistics. Chess and
// diagram blocks never reach the translator.
func (pl *pipeline) translateBlocks(ctx context.Context, number int, blocks []model.Block, stats *model.PageStats) []Warning {
	if pl.cache == nil {
		return nil
	}

	var queue []int
	for i := range blocks {
		if blocks[i].NeedsTranslation {
			queue = append(queue, i)
		}
	}
	if len(queue) == 0 {
		return nil
	}

	type outcome struct {
		translated bool
		hit        bool
		failed     bool
		message    string
	}
	outcomes := make([]outcome, len(queue))

	workers := translationWorkers
	if len(queue) < workers {
		workers = len(queue)
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for qi, bi := range queue {
		wg.Add(1)
		go func(slot, index int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			block := &blocks[index]

			// Shield notation behind placeholders so the backend
			// cannot mangle moves embedded in prose.
			protected, placeholders := pl.guard.Protect(block.Text)

			translated, hit, err := pl.cache.TranslateCached(ctx, protected, pl.source, pl.target)
			if err != nil {
				outcomes[slot] = outcome{
					failed:  true,
					message: fmt.Sprintf("block %s: %v", block.ID, err),
				}
				return
			}

			restored := pl.guard.Restore(translated, placeholders)
			if restored != "" && restored != block.Text {
				block.TranslatedText = restored
				block.OriginalText = block.Text
				outcomes[slot] = outcome{translated: true, hit: hit}
				return
			}
			outcomes[slot] = outcome{hit: hit}
		}(qi, bi)
	}
	wg.Wait()

	var warnings []Warning
	for _, out := range outcomes {
		if out.translated {
			stats.Translated++
		}
		if out.hit {
			stats.CacheHits++
		}
		if out.failed {
			stats.TranslationsFailed++
			warnings = append(warnings, Warning{
				Stage:   "translate",
				Page:    number,
				Message: out.message,
			})
		}
	}

	return warnings
}

// expandBlocks rewrites chess notation blocks into their readable form
// and describes diagram glyphs when a piece name table is installed.
// The rewritten text lands in TranslatedText with the notation kept in
// OriginalText, so FinalText picks up the readable form.
func (pl *pipeline) expandBlocks(number int, blocks []model.Block) []Warning {
	var warnings []Warning

	for i := range blocks {
		block := &blocks[i]
		switch block.Type {
		case model.BlockTypeChess:
			res := pl.expander.Expand(block.Text)
			if res.Unbalanced > 0 {
				warnings = append(warnings, Warning{
					Stage:   "expand",
					Page:    number,
					Message: fmt.Sprintf("block %s: %d closing parentheses with no open variation", block.ID, res.Unbalanced),
				})
			}
			if res.Unclosed > 0 {
				warnings = append(warnings, Warning{
					Stage:   "expand",
					Page:    number,
					Message: fmt.Sprintf("block %s: %d variations left open at end of block", block.ID, res.Unclosed),
				})
			}
			if res.Text != block.Text {
				block.TranslatedText = res.Text
				block.OriginalText = block.Text
			}
		case model.BlockTypeDiagram:
			if len(pl.diagramNames) == 0 {
				continue
			}
			described := chess.DescribeDiagram(block.Text, pl.diagramNames)
			if described != block.Text {
				block.TranslatedText = described
				block.OriginalText = block.Text
			}
		}
	}

	return warnings
}

// pageDirection derives the page reading direction from the token
// language majority.
func pageDirection(tokens []model.Token) model.Direction {
	arabic := 0
	english := 0
	for _, tok := range tokens {
		switch tok.Language {
		case model.LanguageArabic:
			arabic++
		case model.LanguageEnglish:
			english++
		}
	}

	if arabic > english {
		return model.RTL
	}
	if english > 0 {
		return model.LTR
	}
	return model.Neutral
}

// dominantPageFont picks the most frequent font name and size across
// the page's tokens.
func dominantPageFont(tokens []model.Token) (string, float64) {
	if len(tokens) == 0 {
		return "", 0
	}

	nameCounts := make(map[string]int)
	sizeCounts := make(map[float64]int)
	name := tokens[0].FontName
	size := tokens[0].FontSize
	for _, tok := range tokens {
		nameCounts[tok.FontName]++
		if nameCounts[tok.FontName] > nameCounts[name] {
			name = tok.FontName
		}
		sizeCounts[tok.FontSize]++
		if sizeCounts[tok.FontSize] > sizeCounts[size] {
			size = tok.FontSize
		}
	}

	return name, size
}
