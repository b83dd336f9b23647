package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// CatalogService persists parsed corpus pages and their quiz questions so a
// rendering layer can query them without touching the filesystem.
type CatalogService interface {
	Import(ctx context.Context, doc *Document, opts ImportOptions) (*ImportResult, error)
	ImportDocuments(ctx context.Context, docs []*Document, opts ImportOptions) (*ImportResult, error)
	Sync(ctx context.Context, docs []*Document, opts SyncOptions) (*SyncResult, error)
}

// ImportOptions controls how documents are converted into catalog records.
type ImportOptions struct {
	// UpdateExisting overwrites records whose checksum differs from the
	// incoming document. When false, changed documents are skipped.
	UpdateExisting bool
	// DryRun collects the would-be outcome without persisting anything.
	DryRun bool
}

// SyncOptions extends ImportOptions to handle delete semantics for repeated
// synchronisation runs.
type SyncOptions struct {
	ImportOptions
	// DeleteOrphaned removes catalog records without a matching document.
	DeleteOrphaned bool
}

// ImportResult reports the outcome of an import, exposing counts and IDs so
// callers can audit behaviour or trigger follow-up actions.
type ImportResult struct {
	CreatedPageIDs []uuid.UUID
	UpdatedPageIDs []uuid.UUID
	SkippedPageIDs []uuid.UUID
	QuizQuestions  int
	Errors         []error
}

// SyncResult summarises a bulk sync run across many files.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
	Skipped int
	Quizzes int
	Errors  []error
}
