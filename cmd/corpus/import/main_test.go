package main

import (
	"context"
	"testing"

	"github.com/docworks/go-corpus/cmd/corpus/internal/bootstrap"
	"github.com/docworks/go-corpus/internal/logging"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

type stubMarkdownService struct {
	loadCalls int
	loadDir   string
}

func (s *stubMarkdownService) Load(context.Context, string, interfaces.LoadOptions) (*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMarkdownService) LoadDirectory(_ context.Context, dir string, _ interfaces.LoadOptions) ([]*interfaces.Document, error) {
	s.loadCalls++
	s.loadDir = dir
	return []*interfaces.Document{{FilePath: "reference/page.md"}}, nil
}

func (s *stubMarkdownService) Render(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMarkdownService) RenderDocument(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMarkdownService) ExtractQuizzes(context.Context, *interfaces.Document) ([]interfaces.QuizBlock, error) {
	return nil, nil
}

type stubCatalogService struct {
	importCalls int
	importOpts  interfaces.ImportOptions
}

func (s *stubCatalogService) Import(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	return s.ImportDocuments(ctx, []*interfaces.Document{doc}, opts)
}

func (s *stubCatalogService) ImportDocuments(_ context.Context, _ []*interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	s.importCalls++
	s.importOpts = opts
	return &interfaces.ImportResult{}, nil
}

func (s *stubCatalogService) Sync(context.Context, []*interfaces.Document, interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	return &interfaces.SyncResult{}, nil
}

func TestRunImportUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	markdown := &stubMarkdownService{}
	catalog := &stubCatalogService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Markdown: markdown,
			Catalog:  catalog,
			Logger:   logging.NoOp(),
		}, nil
	}

	if err := runImport([]string{
		"-directory", "docs",
		"-update-existing",
		"-dry-run",
	}); err != nil {
		t.Fatalf("runImport returned error: %v", err)
	}
	if markdown.loadCalls != 1 {
		t.Fatalf("expected directory load once, got %d", markdown.loadCalls)
	}
	if markdown.loadDir != "docs" {
		t.Fatalf("expected load directory docs, got %s", markdown.loadDir)
	}
	if catalog.importCalls != 1 {
		t.Fatalf("expected import to be called once, got %d", catalog.importCalls)
	}
	if !catalog.importOpts.UpdateExisting || !catalog.importOpts.DryRun {
		t.Fatalf("expected flags forwarded, got %+v", catalog.importOpts)
	}
}
