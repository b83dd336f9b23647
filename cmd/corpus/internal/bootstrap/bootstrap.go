package bootstrap

import (
	"fmt"
	"strings"

	corpus "github.com/docworks/go-corpus"
	corpuscmd "github.com/docworks/go-corpus/internal/commands/corpus"
	"github.com/docworks/go-corpus/internal/logging"
	"github.com/docworks/go-corpus/internal/util"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

// Options captures configuration for corpus CLI bootstraps.
type Options struct {
	ContentDir       string
	Pattern          string
	Recursive        bool
	DefaultSection   string
	Sections         []string
	CatalogDSN       string
	EnableCatalog    bool
	EnableValidation bool
	SchemaPath       string
	LogLevel         string
	LogFormat        string
	LoggerProvider   interfaces.LoggerProvider
}

// Module wraps the corpus module and the services the CLIs operate on.
type Module struct {
	Module    *corpus.Module
	Markdown  interfaces.MarkdownService
	Catalog   interfaces.CatalogService
	Validator corpuscmd.MetadataValidator
	Logger    interfaces.Logger
}

// BuildModule constructs a corpus module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := corpus.DefaultConfig()
	cfg.Markdown.ContentDir = util.FirstNonEmpty(strings.TrimSpace(opts.ContentDir), "content")
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	cfg.Markdown.Recursive = opts.Recursive
	if section := strings.TrimSpace(opts.DefaultSection); section != "" {
		cfg.Markdown.DefaultSection = section
	}
	if len(opts.Sections) > 0 {
		cfg.Markdown.Sections = cloneStrings(opts.Sections)
	}

	cfg.Features.Catalog = opts.EnableCatalog
	if dsn := strings.TrimSpace(opts.CatalogDSN); dsn != "" {
		cfg.Catalog.DSN = dsn
	}

	cfg.Features.Validation = opts.EnableValidation
	cfg.Validation.SchemaPath = strings.TrimSpace(opts.SchemaPath)

	cfg.Features.Logger = true
	cfg.Logging.Format = "console"
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	moduleOpts := []corpus.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, corpus.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := corpus.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise corpus module: %w", err)
	}

	service := module.Markdown()
	if service == nil {
		return nil, fmt.Errorf("markdown service not configured; ensure Markdown.Enabled is set")
	}

	built := &Module{
		Module:   module,
		Markdown: service,
		Catalog:  module.Catalog(),
		Logger:   logging.MarkdownLogger(module.LoggerProvider()),
	}
	if validator := module.Validator(); validator != nil {
		built.Validator = validator
	}
	return built, nil
}

// SplitSections parses a comma separated section list into a trimmed slice.
func SplitSections(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sections = append(sections, trimmed)
		}
	}
	return sections
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
