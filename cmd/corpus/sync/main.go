package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/docworks/go-corpus/cmd/corpus/internal/bootstrap"
	corpuscmd "github.com/docworks/go-corpus/internal/commands/corpus"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("corpus sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("corpus-sync", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the corpus content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering pages")
	sections := fs.String("sections", "", "Comma separated list of known sections")
	defaultSection := fs.String("default-section", "", "Section assigned when none can be inferred")
	directory := fs.String("directory", ".", "Directory to sync, relative to the content root")
	dsn := fs.String("dsn", "corpus.db", "SQLite DSN for the page catalog")
	updateExisting := fs.Bool("update-existing", true, "Overwrite catalog records when page checksums changed")
	deleteOrphaned := fs.Bool("delete-orphaned", false, "Delete catalog records without matching pages")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting pages")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:     *contentDir,
		Pattern:        *pattern,
		Recursive:      true,
		DefaultSection: *defaultSection,
		Sections:       bootstrap.SplitSections(*sections),
		CatalogDSN:     *dsn,
		EnableCatalog:  true,
		LogLevel:       *logLevel,
		LogFormat:      *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Catalog == nil {
		return fmt.Errorf("catalog service not configured; ensure Features.Catalog is enabled")
	}
	defer module.Module.Close()

	handler := corpuscmd.NewSyncDirectoryHandler(module.Markdown, module.Catalog, module.Logger, corpuscmd.FeatureGates{})
	cmd := corpuscmd.SyncDirectoryCommand{
		Directory:      *directory,
		UpdateExisting: *updateExisting,
		DeleteOrphaned: *deleteOrphaned,
		DryRun:         *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "corpus sync command executed successfully")

	return nil
}
