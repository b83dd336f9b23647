package corpus_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	corpus "github.com/docworks/go-corpus"
)

const samplePage = `---
title: Sequences
slug: sequences
nav_weight: 4
---

# Sequences

Most collection functions return lazy sequences.

{{< quizdown >}}
### Which function realises a lazy sequence?

- [ ] map
- [x] doall
- [ ] filter

> doall walks the sequence and retains the realised elements.
{{< /quizdown >}}
`

type memoryRepository struct {
	pages     map[string]*corpus.PageRecord
	questions map[uuid.UUID]int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		pages:     map[string]*corpus.PageRecord{},
		questions: map[uuid.UUID]int{},
	}
}

func (r *memoryRepository) GetBySlug(_ context.Context, slug string) (*corpus.PageRecord, error) {
	page, ok := r.pages[slug]
	if !ok {
		return nil, corpus.ErrPageNotFound
	}
	return page, nil
}

func (r *memoryRepository) List(context.Context) ([]*corpus.PageRecord, error) {
	out := make([]*corpus.PageRecord, 0, len(r.pages))
	for _, page := range r.pages {
		out = append(out, page)
	}
	return out, nil
}

func (r *memoryRepository) Create(_ context.Context, page *corpus.PageRecord, questions []*corpus.QuizQuestionRecord) error {
	r.pages[page.Slug] = page
	r.questions[page.ID] = len(questions)
	return nil
}

func (r *memoryRepository) Update(_ context.Context, page *corpus.PageRecord, questions []*corpus.QuizQuestionRecord) error {
	r.pages[page.Slug] = page
	r.questions[page.ID] = len(questions)
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	for slug, page := range r.pages {
		if page.ID == id {
			delete(r.pages, slug)
		}
	}
	delete(r.questions, id)
	return nil
}

func writeContentDir(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "reference"), 0o755); err != nil {
		tb.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "reference", "sequences.md"), []byte(samplePage), 0o644); err != nil {
		tb.Fatalf("write fixture: %v", err)
	}
	return dir
}

func testConfig(dir string) corpus.Config {
	cfg := corpus.DefaultConfig()
	cfg.Markdown.ContentDir = dir
	cfg.Markdown.DefaultSection = "reference"
	cfg.Markdown.Sections = []string{"reference"}
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := corpus.DefaultConfig()
	cfg.Markdown.ContentDir = ""

	if _, err := corpus.New(cfg); !errors.Is(err, corpus.ErrMarkdownContentDirRequired) {
		t.Fatalf("expected ErrMarkdownContentDirRequired, got %v", err)
	}
}

func TestModuleLoadsPagesAndExtractsQuizzes(t *testing.T) {
	dir := writeContentDir(t)

	module, err := corpus.New(testConfig(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { module.Close() })

	docs, err := module.Markdown().LoadDirectory(context.Background(), ".", corpus.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	doc := docs[0]
	if doc.Section != "reference" {
		t.Fatalf("expected reference section, got %q", doc.Section)
	}
	if doc.FrontMatter.Title != "Sequences" {
		t.Fatalf("unexpected title %q", doc.FrontMatter.Title)
	}

	blocks, err := module.Markdown().ExtractQuizzes(context.Background(), doc)
	if err != nil {
		t.Fatalf("ExtractQuizzes: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 quiz block, got %d", len(blocks))
	}
	q := blocks[0].Questions[0]
	if q.Prompt != "Which function realises a lazy sequence?" {
		t.Fatalf("unexpected prompt %q", q.Prompt)
	}
	if len(q.Options) != 3 || q.CorrectCount() != 1 {
		t.Fatalf("unexpected options %#v", q.Options)
	}
}

func TestModuleImportsIntoCatalog(t *testing.T) {
	dir := writeContentDir(t)
	cfg := testConfig(dir)
	cfg.Features.Catalog = true

	repo := newMemoryRepository()
	module, err := corpus.New(cfg, corpus.WithPageRepository(repo))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { module.Close() })

	docs, err := module.Markdown().LoadDirectory(context.Background(), ".", corpus.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	result, err := module.Catalog().ImportDocuments(context.Background(), docs, corpus.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportDocuments: %v", err)
	}
	if len(result.CreatedPageIDs) != 1 {
		t.Fatalf("expected 1 created page, got %+v", result)
	}
	if result.QuizQuestions != 1 {
		t.Fatalf("expected 1 quiz question, got %d", result.QuizQuestions)
	}

	page, ok := repo.pages["sequences"]
	if !ok {
		t.Fatalf("expected page stored under slug sequences, have %v", repo.pages)
	}
	if repo.questions[page.ID] != 1 {
		t.Fatalf("expected 1 stored question, got %d", repo.questions[page.ID])
	}

	// Re-import without changes skips on matching checksum.
	again, err := module.Catalog().ImportDocuments(context.Background(), docs, corpus.ImportOptions{UpdateExisting: true})
	if err != nil {
		t.Fatalf("second ImportDocuments: %v", err)
	}
	if len(again.SkippedPageIDs) != 1 {
		t.Fatalf("expected unchanged page to be skipped, got %+v", again)
	}
}

func TestModuleValidatorAcceptsCorpusMetadata(t *testing.T) {
	dir := writeContentDir(t)
	cfg := testConfig(dir)
	cfg.Features.Validation = true

	module, err := corpus.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { module.Close() })

	docs, err := module.Markdown().LoadDirectory(context.Background(), ".", corpus.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if err := module.Validator().Validate(docs[0].FrontMatter.Raw); err != nil {
		t.Fatalf("expected metadata to validate, got %v", err)
	}
	if err := module.Validator().Validate(map[string]any{"slug": "untitled"}); err == nil {
		t.Fatal("expected missing title to fail validation")
	}
}
