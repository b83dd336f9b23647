package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMarkdownContentDirRequired = errors.New("corpus config: markdown content directory is required when markdown is enabled")
var ErrQuizRequiresMarkdown = errors.New("corpus config: quiz extraction requires markdown to be enabled")
var ErrQuizShortcodeNameRequired = errors.New("corpus config: quiz shortcode name is required when quiz extraction is enabled")
var ErrCatalogDSNRequired = errors.New("corpus config: catalog DSN is required when the catalog is enabled")
var ErrCatalogDriverUnknown = errors.New("corpus config: catalog driver is invalid")
var ErrLoggingProviderRequired = errors.New("corpus config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("corpus config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("corpus config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("corpus config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the corpus module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled    bool
	Markdown   MarkdownConfig
	Quiz       QuizConfig
	Catalog    CatalogConfig
	Validation ValidationConfig
	Features   Features
	Commands   CommandsConfig
	Logging    LoggingConfig
}

// Features toggles module functionality.
type Features struct {
	Quiz       bool
	Catalog    bool
	Validation bool
	Logger     bool
}

// MarkdownConfig captures filesystem and parser behaviour for page ingestion.
type MarkdownConfig struct {
	Enabled         bool
	ContentDir      string
	Pattern         string
	Recursive       bool
	DefaultSection  string
	Sections        []string
	SectionPatterns map[string]string
	Parser          MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// QuizConfig controls shortcode scanning for embedded quizzes.
type QuizConfig struct {
	ShortcodeName string
}

// CatalogConfig captures persistence settings for imported pages.
type CatalogConfig struct {
	Driver string
	DSN    string
}

// ValidationConfig controls JSON Schema validation of page metadata.
// When SchemaPath is empty the built-in metadata schema applies.
type ValidationConfig struct {
	SchemaPath string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a local corpus checkout.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Markdown: MarkdownConfig{
			Enabled:         true,
			ContentDir:      "content",
			Pattern:         "*.md",
			Recursive:       true,
			SectionPatterns: map[string]string{},
		},
		Quiz: QuizConfig{
			ShortcodeName: "quizdown",
		},
		Catalog: CatalogConfig{
			Driver: "sqlite",
			DSN:    "corpus.db",
		},
		Features: Features{
			Quiz: true,
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Markdown.Enabled {
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Quiz {
		if !cfg.Markdown.Enabled {
			return ErrQuizRequiresMarkdown
		}
		if strings.TrimSpace(cfg.Quiz.ShortcodeName) == "" {
			return ErrQuizShortcodeNameRequired
		}
	}
	if cfg.Features.Catalog {
		driver := strings.ToLower(strings.TrimSpace(cfg.Catalog.Driver))
		if driver != "" && driver != "sqlite" {
			return fmt.Errorf("%w: %s", ErrCatalogDriverUnknown, driver)
		}
		if strings.TrimSpace(cfg.Catalog.DSN) == "" {
			return ErrCatalogDSNRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
