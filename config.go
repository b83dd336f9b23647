package corpus

import "github.com/docworks/go-corpus/internal/runtimeconfig"

var (
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrQuizRequiresMarkdown       = runtimeconfig.ErrQuizRequiresMarkdown
	ErrQuizShortcodeNameRequired  = runtimeconfig.ErrQuizShortcodeNameRequired
	ErrCatalogDSNRequired         = runtimeconfig.ErrCatalogDSNRequired
	ErrCatalogDriverUnknown       = runtimeconfig.ErrCatalogDriverUnknown
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	QuizConfig           = runtimeconfig.QuizConfig
	CatalogConfig        = runtimeconfig.CatalogConfig
	ValidationConfig     = runtimeconfig.ValidationConfig
	Features             = runtimeconfig.Features
	CommandsConfig       = runtimeconfig.CommandsConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
