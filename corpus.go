// Package corpus turns a directory of Markdown tutorial pages with YAML front
// matter and embedded quizdown shortcodes into parsed documents, validated
// quiz questions, and a queryable catalog.
package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/docworks/go-corpus/internal/catalog"
	"github.com/docworks/go-corpus/internal/logging"
	"github.com/docworks/go-corpus/internal/logging/gologger"
	"github.com/docworks/go-corpus/internal/markdown"
	"github.com/docworks/go-corpus/internal/quiz"
	"github.com/docworks/go-corpus/internal/validation"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

// MarkdownService exports the page loading and rendering contract.
type MarkdownService = interfaces.MarkdownService

// CatalogService exports the catalog import contract.
type CatalogService = interfaces.CatalogService

// QuizExtractor exports the quiz extraction contract.
type QuizExtractor = interfaces.QuizExtractor

// MetadataValidator exports the JSON Schema metadata validator.
type MetadataValidator = validation.MetadataValidator

// Document exports the parsed page DTO.
type Document = interfaces.Document

// FrontMatter exports the page metadata DTO.
type FrontMatter = interfaces.FrontMatter

// QuizBlock exports the extracted quiz region DTO.
type QuizBlock = interfaces.QuizBlock

// QuizQuestion exports the decoded question DTO.
type QuizQuestion = interfaces.QuizQuestion

// QuizOption exports the decoded answer option DTO.
type QuizOption = interfaces.QuizOption

// PageRepository exports the catalog persistence contract.
type PageRepository = catalog.PageRepository

// PageRecord exports the persisted page model.
type PageRecord = catalog.PageRecord

// QuizQuestionRecord exports the persisted question model.
type QuizQuestionRecord = catalog.QuizQuestionRecord

// LoadOptions exports per-call loading overrides.
type LoadOptions = interfaces.LoadOptions

// ParseOptions exports Markdown rendering options.
type ParseOptions = interfaces.ParseOptions

// ImportOptions exports catalog import flags.
type ImportOptions = interfaces.ImportOptions

// SyncOptions exports catalog sync flags.
type SyncOptions = interfaces.SyncOptions

// ImportResult exports the catalog import outcome.
type ImportResult = interfaces.ImportResult

// SyncResult exports the catalog sync outcome.
type SyncResult = interfaces.SyncResult

// ErrPageNotFound is returned by PageRepository implementations when a slug
// has no catalog record.
var ErrPageNotFound = catalog.ErrPageNotFound

// Module is the top level corpus runtime facade.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	markdown  interfaces.MarkdownService
	extractor interfaces.QuizExtractor
	validator *validation.MetadataValidator
	catalog   interfaces.CatalogService
	db        *bun.DB
}

// Option overrides a dependency during module construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider   interfaces.LoggerProvider
	parser     interfaces.MarkdownParser
	extractor  interfaces.QuizExtractor
	repository catalog.PageRepository
}

// WithLoggerProvider injects a custom logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithMarkdownParser overrides the Goldmark-backed Markdown parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(o *moduleOptions) {
		o.parser = parser
	}
}

// WithQuizExtractor overrides the quizdown extractor.
func WithQuizExtractor(extractor interfaces.QuizExtractor) Option {
	return func(o *moduleOptions) {
		o.extractor = extractor
	}
}

// WithPageRepository overrides the catalog persistence layer, bypassing the
// SQLite handle the module would otherwise open.
func WithPageRepository(repo catalog.PageRepository) Option {
	return func(o *moduleOptions) {
		o.repository = repo
	}
}

// New constructs a corpus module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	overrides := moduleOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	m := &Module{cfg: cfg}

	provider := overrides.provider
	if provider == nil && cfg.Features.Logger && strings.EqualFold(strings.TrimSpace(cfg.Logging.Provider), "gologger") {
		built, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}
	m.provider = provider

	extractor := overrides.extractor
	if extractor == nil && cfg.Features.Quiz {
		extractor = quiz.NewExtractor(
			quiz.WithShortcodeName(cfg.Quiz.ShortcodeName),
			quiz.WithLogger(logging.QuizLogger(provider)),
		)
	}
	m.extractor = extractor

	if cfg.Markdown.Enabled {
		service, err := markdown.NewService(markdown.Config{
			BasePath:        cfg.Markdown.ContentDir,
			DefaultSection:  cfg.Markdown.DefaultSection,
			Sections:        cfg.Markdown.Sections,
			SectionPatterns: cfg.Markdown.SectionPatterns,
			Pattern:         cfg.Markdown.Pattern,
			Recursive:       cfg.Markdown.Recursive,
			Parser: interfaces.ParseOptions{
				Extensions: cfg.Markdown.Parser.Extensions,
				Sanitize:   cfg.Markdown.Parser.Sanitize,
				HardWraps:  cfg.Markdown.Parser.HardWraps,
				SafeMode:   cfg.Markdown.Parser.SafeMode,
			},
		}, overrides.parser, extractor)
		if err != nil {
			return nil, err
		}
		m.markdown = service
	}

	if cfg.Features.Validation {
		validator, err := validation.NewMetadataValidatorFromFile(cfg.Validation.SchemaPath)
		if err != nil {
			return nil, err
		}
		m.validator = validator
	}

	if cfg.Features.Catalog {
		repo := overrides.repository
		if repo == nil {
			db, err := catalog.OpenSQLite(cfg.Catalog.DSN)
			if err != nil {
				return nil, err
			}
			if err := catalog.EnsureSchema(context.Background(), db); err != nil {
				db.Close()
				return nil, fmt.Errorf("corpus: prepare catalog schema: %w", err)
			}
			m.db = db
			repo = catalog.NewBunPageRepository(db)
		}
		m.catalog = catalog.NewImporter(catalog.ImporterConfig{
			Repository: repo,
			Extractor:  extractor,
			Logger:     logging.CatalogLogger(provider),
		})
	}

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Markdown returns the page loading service, or nil when markdown is disabled.
func (m *Module) Markdown() interfaces.MarkdownService {
	if m == nil {
		return nil
	}
	return m.markdown
}

// Quizzes returns the quiz extractor, or nil when the quiz feature is disabled.
func (m *Module) Quizzes() interfaces.QuizExtractor {
	if m == nil {
		return nil
	}
	return m.extractor
}

// Catalog returns the catalog import service, or nil when the catalog feature is disabled.
func (m *Module) Catalog() interfaces.CatalogService {
	if m == nil {
		return nil
	}
	return m.catalog
}

// Validator returns the metadata schema validator, or nil when validation is disabled.
func (m *Module) Validator() *validation.MetadataValidator {
	if m == nil {
		return nil
	}
	return m.validator
}

// LoggerProvider returns the configured provider, which may be nil when logging is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// Logger returns the root module logger.
func (m *Module) Logger() interfaces.Logger {
	if m == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(m.provider, "")
}

// Close releases the catalog database handle when the module owns one.
func (m *Module) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}
