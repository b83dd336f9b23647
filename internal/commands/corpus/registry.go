package corpuscmd

import (
	"errors"

	"github.com/docworks/go-corpus/internal/commands"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the corpus command handlers produced by RegisterCorpusCommands.
type HandlerSet struct {
	Import   *ImportDirectoryHandler
	Sync     *SyncDirectoryHandler
	Validate *ValidateDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	importHandlerOpts   []commands.HandlerOption[ImportDirectoryCommand]
	syncHandlerOpts     []commands.HandlerOption[SyncDirectoryCommand]
	validateHandlerOpts []commands.HandlerOption[ValidateDirectoryCommand]
	validator           MetadataValidator
}

// WithImportHandlerOptions forwards options to the ImportDirectoryHandler constructor.
func WithImportHandlerOptions(opts ...commands.HandlerOption[ImportDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.importHandlerOpts = append(cfg.importHandlerOpts, opts...)
	}
}

// WithSyncHandlerOptions forwards options to the SyncDirectoryHandler constructor.
func WithSyncHandlerOptions(opts ...commands.HandlerOption[SyncDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.syncHandlerOpts = append(cfg.syncHandlerOpts, opts...)
	}
}

// WithValidateHandlerOptions forwards options to the ValidateDirectoryHandler constructor.
func WithValidateHandlerOptions(opts ...commands.HandlerOption[ValidateDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.validateHandlerOpts = append(cfg.validateHandlerOpts, opts...)
	}
}

// WithMetadataValidator supplies the schema validator used by the validate handler.
func WithMetadataValidator(validator MetadataValidator) Option {
	return func(cfg *options) {
		cfg.validator = validator
	}
}

// RegisterCorpusCommands builds corpus command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can wire
// additional integrations (dispatcher, cron) as needed.
func RegisterCorpusCommands(reg CommandRegistry, markdown interfaces.MarkdownService, catalog interfaces.CatalogService, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if markdown == nil {
		return nil, errors.New("corpus command registration: markdown service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "corpus")

	importHandler := NewImportDirectoryHandler(markdown, catalog, logger, gates, cfg.importHandlerOpts...)
	syncHandler := NewSyncDirectoryHandler(markdown, catalog, logger, gates, cfg.syncHandlerOpts...)
	validateHandler := NewValidateDirectoryHandler(markdown, cfg.validator, logger, gates, cfg.validateHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(importHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(syncHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(validateHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Import:   importHandler,
		Sync:     syncHandler,
		Validate: validateHandler,
	}, nil
}
