package shatranj

import (
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/shatranj/chess"
	"github.com/tsawler/shatranj/config"
	"github.com/tsawler/shatranj/layout"
	"github.com/tsawler/shatranj/logging"
	"github.com/tsawler/shatranj/model"
	"github.com/tsawler/shatranj/translate"
)

// ProcessOptions holds configuration for page processing.
type ProcessOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Layout tuning
	lineConfig    layout.LineConfig
	blockConfig   layout.BlockConfig
	mergerConfig  layout.MergerConfig
	columnConfig  layout.ColumnConfig
	headingConfig layout.HeadingConfig

	// Classification
	classifierConfig chess.ClassifierConfig

	// Translation
	translator  translate.Translator // nil means layout and classification only
	retryConfig translate.RetryConfig
	cacheConfig translate.CacheConfig
	source      model.Language
	target      model.Language

	// Output shaping
	expanderConfig chess.ExpanderConfig
	diagramNames   map[rune]string // nil leaves diagram glyphs untouched

	// Concurrency
	workers int

	// Logging
	logger *zap.Logger
}

// defaultOptions returns the default processing options.
func defaultOptions() ProcessOptions {
	return ProcessOptions{
		pages:            nil, // nil means all pages
		lineConfig:       layout.DefaultLineConfig(),
		blockConfig:      layout.DefaultBlockConfig(),
		mergerConfig:     layout.DefaultMergerConfig(),
		columnConfig:     layout.DefaultColumnConfig(),
		headingConfig:    layout.DefaultHeadingConfig(),
		classifierConfig: chess.DefaultClassifierConfig(),
		translator:       nil,
		retryConfig:      translate.DefaultRetryConfig(),
		cacheConfig:      translate.DefaultCacheConfig(),
		source:           model.LanguageEnglish,
		target:           model.LanguageArabic,
		expanderConfig:   chess.DefaultExpanderConfig(),
		diagramNames:     nil,
		workers:          4,
		logger:           nil, // nil means no logging
	}
}

// clone creates a deep copy of ProcessOptions. The translator and
// logger are shared handles, not copied.
func (o ProcessOptions) clone() ProcessOptions {
	newOpts := o

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	// Deep copy keyword slice
	if o.classifierConfig.Keywords != nil {
		newOpts.classifierConfig.Keywords = make([]string, len(o.classifierConfig.Keywords))
		copy(newOpts.classifierConfig.Keywords, o.classifierConfig.Keywords)
	}

	// Deep copy diagram name table
	if o.diagramNames != nil {
		newOpts.diagramNames = make(map[rune]string, len(o.diagramNames))
		for r, name := range o.diagramNames {
			newOpts.diagramNames[r] = name
		}
	}

	return newOpts
}

// withConfig maps a loaded configuration file onto the options. Every
// section overrides the corresponding option group; the logging section
// builds a new logger. A backoff that fails to parse keeps the current
// retry backoff.
func (o ProcessOptions) withConfig(cfg config.Config) ProcessOptions {
	config.ApplyDefaults(&cfg)

	o.lineConfig.YTolerance = cfg.Layout.LineTolerance
	o.blockConfig.MergeDistance = cfg.Layout.BlockMergeDistance
	o.blockConfig.MinBlockTokens = cfg.Layout.MinBlockTokens
	o.mergerConfig.MaxGap = cfg.Layout.MergeMaxGap
	o.columnConfig.BucketWidth = cfg.Layout.ColumnBucketWidth
	o.columnConfig.MinTokens = cfg.Layout.ColumnMinTokens
	o.headingConfig.MaxWords = cfg.Layout.HeadingMaxWords
	o.headingConfig.MinFontSize = cfg.Layout.HeadingMinFontSize
	o.headingConfig.Level1FontSize = cfg.Layout.HeadingLevel1FontSize
	o.headingConfig.Level2FontSize = cfg.Layout.HeadingLevel2FontSize

	o.classifierConfig.MinDiagramLines = cfg.Chess.MinDiagramLines
	o.classifierConfig.Keywords = append(chess.ReservedTerms(), cfg.Chess.ExtraKeywords...)

	o.source = model.ParseLanguage(cfg.Translate.SourceLanguage)
	o.target = model.ParseLanguage(cfg.Translate.TargetLanguage)
	o.classifierConfig.SourceLanguage = o.source
	o.retryConfig.Attempts = cfg.Translate.Attempts
	if d, err := time.ParseDuration(cfg.Translate.Backoff); err == nil && d > 0 {
		o.retryConfig.Backoff = d
	}
	o.retryConfig.RequestsPerMinute = cfg.Translate.RequestsPerMinute
	o.cacheConfig.Capacity = cfg.Translate.CacheCapacity

	o.workers = cfg.Pipeline.Workers
	o.logger = logging.NewLogger(&cfg.Logging)

	return o
}
