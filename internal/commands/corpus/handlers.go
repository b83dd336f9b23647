package corpuscmd

import (
	"context"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"

	"github.com/docworks/go-corpus/internal/commands"
	"github.com/docworks/go-corpus/internal/logging"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

const (
	importOperation   = "corpus.import_directory"
	syncOperation     = "corpus.sync_directory"
	validateOperation = "corpus.validate_directory"
)

var (
	// ErrCatalogFeatureDisabled is returned when the catalog feature flag is disabled at runtime.
	ErrCatalogFeatureDisabled = errors.New("corpus command: catalog feature disabled")
	// ErrValidationFeatureDisabled is returned when the validation feature flag is disabled at runtime.
	ErrValidationFeatureDisabled = errors.New("corpus command: validation feature disabled")
)

var (
	_ command.Commander[ImportDirectoryCommand]   = (*ImportDirectoryHandler)(nil)
	_ command.Commander[SyncDirectoryCommand]     = (*SyncDirectoryHandler)(nil)
	_ command.Commander[ValidateDirectoryCommand] = (*ValidateDirectoryHandler)(nil)
)

// MetadataValidator checks page front matter against the metadata schema.
type MetadataValidator interface {
	Validate(payload map[string]any) error
}

// ImportDirectoryHandler loads pages from disk and persists them into the catalog.
type ImportDirectoryHandler struct {
	inner *commands.Handler[ImportDirectoryCommand]
}

// NewImportDirectoryHandler creates a handler bound to the supplied services.
func NewImportDirectoryHandler(markdown interfaces.MarkdownService, catalog interfaces.CatalogService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		if !gates.catalogEnabled() {
			return ErrCatalogFeatureDisabled
		}

		docs, err := markdown.LoadDirectory(ctx, msg.Directory, interfaces.LoadOptions{})
		if err != nil {
			return err
		}

		result, err := catalog.ImportDocuments(ctx, docs, interfaces.ImportOptions{
			UpdateExisting: msg.UpdateExisting,
			DryRun:         msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count": len(result.CreatedPageIDs),
				"updated_count": len(result.UpdatedPageIDs),
				"skipped_count": len(result.SkippedPageIDs),
				"quiz_count":    result.QuizQuestions,
				"error_count":   len(result.Errors),
				"dry_run":       msg.DryRun,
			}).Info("corpus.command.import_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](baseLogger),
		commands.WithOperation[ImportDirectoryCommand](importOperation),
		commands.WithMessageFields(func(msg ImportDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportDirectoryCommand].
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SyncDirectoryHandler reconciles the catalog with the pages found on disk.
type SyncDirectoryHandler struct {
	inner *commands.Handler[SyncDirectoryCommand]
}

// NewSyncDirectoryHandler creates a handler bound to the supplied services.
func NewSyncDirectoryHandler(markdown interfaces.MarkdownService, catalog interfaces.CatalogService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncDirectoryCommand]) *SyncDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncDirectoryCommand) error {
		if !gates.catalogEnabled() {
			return ErrCatalogFeatureDisabled
		}

		docs, err := markdown.LoadDirectory(ctx, msg.Directory, interfaces.LoadOptions{})
		if err != nil {
			return err
		}

		result, err := catalog.Sync(ctx, docs, interfaces.SyncOptions{
			ImportOptions: interfaces.ImportOptions{
				UpdateExisting: msg.UpdateExisting,
				DryRun:         msg.DryRun,
			},
			DeleteOrphaned: msg.DeleteOrphaned,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count":   result.Created,
				"updated_count":   result.Updated,
				"deleted_count":   result.Deleted,
				"skipped_count":   result.Skipped,
				"quiz_count":      result.Quizzes,
				"error_count":     len(result.Errors),
				"dry_run":         msg.DryRun,
				"delete_orphans":  msg.DeleteOrphaned,
				"update_existing": msg.UpdateExisting,
			}).Info("corpus.command.sync_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncDirectoryCommand]{
		commands.WithLogger[SyncDirectoryCommand](baseLogger),
		commands.WithOperation[SyncDirectoryCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.DeleteOrphaned {
				fields["delete_orphaned"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncDirectoryCommand].
func (h *SyncDirectoryHandler) Execute(ctx context.Context, msg SyncDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateDirectoryHandler checks page metadata and quiz grammar without writing anything.
type ValidateDirectoryHandler struct {
	inner *commands.Handler[ValidateDirectoryCommand]
}

// NewValidateDirectoryHandler creates a handler bound to the supplied services. The
// validator may be nil, in which case only quiz grammar is checked.
func NewValidateDirectoryHandler(markdown interfaces.MarkdownService, validator MetadataValidator, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ValidateDirectoryCommand]) *ValidateDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ValidateDirectoryCommand) error {
		if !gates.validationEnabled() {
			return ErrValidationFeatureDisabled
		}

		docs, err := markdown.LoadDirectory(ctx, msg.Directory, interfaces.LoadOptions{})
		if err != nil {
			return err
		}

		var failures []error
		questions := 0
		for _, doc := range docs {
			if validator != nil {
				if err := validator.Validate(doc.FrontMatter.Raw); err != nil {
					failures = append(failures, fmt.Errorf("%s: %w", doc.FilePath, err))
				}
			}
			blocks, err := markdown.ExtractQuizzes(ctx, doc)
			if err != nil {
				failures = append(failures, fmt.Errorf("%s: %w", doc.FilePath, err))
				continue
			}
			for _, block := range blocks {
				questions += len(block.Questions)
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"page_count":    len(docs),
			"quiz_count":    questions,
			"failure_count": len(failures),
		}).Info("corpus.command.validate_directory.completed")

		return errors.Join(failures...)
	}

	handlerOpts := []commands.HandlerOption[ValidateDirectoryCommand]{
		commands.WithLogger[ValidateDirectoryCommand](baseLogger),
		commands.WithOperation[ValidateDirectoryCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateDirectoryCommand) map[string]any {
			return map[string]any{"directory": msg.Directory}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateDirectoryCommand].
func (h *ValidateDirectoryHandler) Execute(ctx context.Context, msg ValidateDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
