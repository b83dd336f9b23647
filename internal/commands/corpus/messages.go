package corpuscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	importDirectoryMessageType   = "corpus.pages.import_directory"
	syncDirectoryMessageType     = "corpus.pages.sync_directory"
	validateDirectoryMessageType = "corpus.pages.validate_directory"
)

// ImportDirectoryCommand triggers a filesystem walk for Markdown pages under
// the provided Directory and persists them into the catalog. Options map
// directly onto interfaces.ImportOptions.
type ImportDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load pages from.
	Directory string `json:"directory"`
	// UpdateExisting overwrites catalog records when page checksums have changed.
	UpdateExisting bool `json:"update_existing,omitempty"`
	// DryRun toggles preview mode to collect import diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory(importDirectoryMessageType))),
	)
}

// SyncDirectoryCommand orchestrates a full sync run for the provided
// Directory, applying deletion or update flags consistent with
// interfaces.SyncOptions.
type SyncDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load pages from.
	Directory string `json:"directory"`
	// UpdateExisting overwrites catalog records when page checksums have changed.
	UpdateExisting bool `json:"update_existing,omitempty"`
	// DryRun toggles preview mode to collect sync diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// DeleteOrphaned removes catalog records without matching pages when true.
	DeleteOrphaned bool `json:"delete_orphaned,omitempty"`
}

// Type implements command.Message.
func (SyncDirectoryCommand) Type() string { return syncDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SyncDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory(syncDirectoryMessageType))),
	)
}

// ValidateDirectoryCommand checks every page under Directory against the
// metadata schema and quiz grammar without touching the catalog.
type ValidateDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load pages from.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (ValidateDirectoryCommand) Type() string { return validateDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ValidateDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory(validateDirectoryMessageType))),
	)
}

func requireDirectory(messageType string) func(value any) error {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(messageType+".directory_required", "directory is required")
		}
		return nil
	}
}
