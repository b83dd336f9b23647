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
	if err := runValidate(os.Args[1:]); err != nil {
		log.Fatalf("corpus validate: %v", err)
	}
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("corpus-validate", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the corpus content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering pages")
	sections := fs.String("sections", "", "Comma separated list of known sections")
	defaultSection := fs.String("default-section", "", "Section assigned when none can be inferred")
	directory := fs.String("directory", ".", "Directory to validate, relative to the content root")
	schema := fs.String("schema", "", "Path to a JSON Schema overriding the built-in metadata schema")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:       *contentDir,
		Pattern:          *pattern,
		Recursive:        true,
		DefaultSection:   *defaultSection,
		Sections:         bootstrap.SplitSections(*sections),
		EnableValidation: true,
		SchemaPath:       *schema,
		LogLevel:         *logLevel,
		LogFormat:        *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Validator == nil {
		return fmt.Errorf("metadata validator not configured; ensure Features.Validation is enabled")
	}
	defer module.Module.Close()

	handler := corpuscmd.NewValidateDirectoryHandler(module.Markdown, module.Validator, module.Logger, corpuscmd.FeatureGates{})
	cmd := corpuscmd.ValidateDirectoryCommand{
		Directory: *directory,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("validate corpus: %w", err)
	}
	fmt.Fprintln(os.Stdout, "corpus validate command executed successfully")

	return nil
}
