package catalog

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/docworks/go-corpus/internal/logging"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

// ImporterConfig encapsulates the dependencies required to persist corpus
// documents.
type ImporterConfig struct {
	Repository PageRepository
	Extractor  interfaces.QuizExtractor
	Logger     interfaces.Logger
}

// Importer converts parsed documents into catalog records, skipping pages
// whose checksum has not changed since the previous run.
type Importer struct {
	repo      PageRepository
	extractor interfaces.QuizExtractor
	logger    interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		repo:      cfg.Repository,
		extractor: cfg.Extractor,
		logger:    logger,
	}
}

// Import imports a single document.
func (i *Importer) Import(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	return i.ImportDocuments(ctx, []*interfaces.Document{doc}, opts)
}

// ImportDocuments imports a slice of documents in deterministic path order.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if i.repo == nil {
		return nil, ErrRepositoryRequired
	}

	acc := newImportAccumulator()
	for _, doc := range sortDocuments(docs) {
		if err := i.applyDocument(ctx, doc, opts, acc); err != nil {
			acc.addError(fmt.Errorf("catalog: import %s: %w", documentPath(doc), err))
		}
	}
	return acc.result(), firstError(acc.errors)
}

// Sync imports every supplied document and optionally deletes catalog records
// without a matching document.
func (i *Importer) Sync(ctx context.Context, docs []*interfaces.Document, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	if i.repo == nil {
		return nil, ErrRepositoryRequired
	}

	acc := newSyncAccumulator()

	importResult, err := i.ImportDocuments(ctx, docs, opts.ImportOptions)
	if importResult != nil {
		acc.merge(importResult)
	}
	if err != nil {
		return acc.result(), err
	}

	if opts.DeleteOrphaned {
		if err := i.deleteOrphaned(ctx, docs, opts, acc); err != nil {
			acc.addError(err)
		}
	}

	return acc.result(), firstError(acc.errors)
}

func (i *Importer) applyDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions, acc *importAccumulator) error {
	if doc == nil {
		return errors.New("nil document")
	}

	pageSlug, err := i.resolveSlug(doc)
	if err != nil {
		return err
	}

	page, questions, err := i.buildRecords(ctx, doc, pageSlug)
	if err != nil {
		return err
	}

	existing, err := i.repo.GetBySlug(ctx, pageSlug)
	if err != nil && !errors.Is(err, ErrPageNotFound) {
		return err
	}

	logger := logging.WithDocumentContext(i.logger, doc.FilePath, doc.Section, "")

	if existing == nil {
		if opts.DryRun {
			acc.skip(uuid.Nil)
			return nil
		}
		if err := i.repo.Create(ctx, page, questions); err != nil {
			return err
		}
		logger.Info("catalog.page.created", "slug", pageSlug, "questions", len(questions))
		acc.created(page.ID)
		acc.quizzes += len(questions)
		return nil
	}

	if existing.Checksum == page.Checksum {
		acc.skip(existing.ID)
		return nil
	}
	if !opts.UpdateExisting {
		logger.Debug("catalog.page.changed_but_frozen", "slug", pageSlug)
		acc.skip(existing.ID)
		return nil
	}
	if opts.DryRun {
		acc.skip(existing.ID)
		return nil
	}

	page.ID = existing.ID
	page.CreatedAt = existing.CreatedAt
	for _, q := range questions {
		q.PageID = existing.ID
	}
	if err := i.repo.Update(ctx, page, questions); err != nil {
		return err
	}
	logger.Info("catalog.page.updated", "slug", pageSlug, "questions", len(questions))
	acc.updated(existing.ID)
	acc.quizzes += len(questions)
	return nil
}

func (i *Importer) deleteOrphaned(ctx context.Context, docs []*interfaces.Document, opts interfaces.SyncOptions, acc *syncAccumulator) error {
	existing, err := i.repo.List(ctx)
	if err != nil {
		return err
	}

	keep := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		pageSlug, err := i.resolveSlug(doc)
		if err != nil {
			continue
		}
		keep[pageSlug] = struct{}{}
	}

	for _, record := range existing {
		if _, ok := keep[record.Slug]; ok {
			continue
		}
		if opts.DryRun {
			acc.deleted++
			continue
		}
		if err := i.repo.Delete(ctx, record.ID); err != nil {
			return fmt.Errorf("catalog: delete orphan %s: %w", record.Slug, err)
		}
		i.logger.Info("catalog.page.deleted", "slug", record.Slug)
		acc.deleted++
	}
	return nil
}

func (i *Importer) resolveSlug(doc *interfaces.Document) (string, error) {
	if doc == nil {
		return "", ErrSlugMissing
	}
	if explicit := strings.TrimSpace(doc.FrontMatter.Slug); explicit != "" {
		if !slug.IsValid(explicit) {
			normalized, err := slug.Normalize(explicit)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrSlugMissing, err)
			}
			return normalized, nil
		}
		return explicit, nil
	}
	title := strings.TrimSpace(doc.FrontMatter.Title)
	if title == "" {
		return "", ErrSlugMissing
	}
	normalized, err := slug.Normalize(title)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSlugMissing, err)
	}
	return normalized, nil
}

func (i *Importer) buildRecords(ctx context.Context, doc *interfaces.Document, pageSlug string) (*PageRecord, []*QuizQuestionRecord, error) {
	now := time.Now().UTC()
	pageID := uuid.New()

	var questions []*QuizQuestionRecord
	if i.extractor != nil {
		blocks, err := i.extractor.Extract(ctx, doc.Body)
		if err != nil {
			return nil, nil, err
		}
		for blockIdx, block := range blocks {
			for pos, q := range block.Questions {
				options := make([]any, 0, len(q.Options))
				for _, opt := range q.Options {
					options = append(options, map[string]any{
						"text":    opt.Text,
						"correct": opt.Correct,
					})
				}
				questions = append(questions, &QuizQuestionRecord{
					ID:          uuid.New(),
					PageID:      pageID,
					BlockIndex:  blockIdx,
					Position:    pos,
					Prompt:      q.Prompt,
					Options:     options,
					Explanation: q.Explanation,
					CreatedAt:   now,
				})
			}
		}
	}

	page := &PageRecord{
		ID:            pageID,
		Slug:          pageSlug,
		Section:       doc.Section,
		Title:         strings.TrimSpace(doc.FrontMatter.Title),
		Description:   optionalString(doc.FrontMatter.Description),
		Path:          doc.FilePath,
		Checksum:      hex.EncodeToString(doc.Checksum),
		NavWeight:     doc.FrontMatter.NavWeight,
		FrontMatter:   doc.FrontMatter.Raw,
		Body:          string(doc.Body),
		BodyHTML:      string(doc.BodyHTML),
		QuestionCount: len(questions),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return page, questions, nil
}

func sortDocuments(docs []*interfaces.Document) []*interfaces.Document {
	sorted := append([]*interfaces.Document(nil), docs...)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a] == nil || sorted[b] == nil {
			return false
		}
		return sorted[a].FilePath < sorted[b].FilePath
	})
	return sorted
}

func documentPath(doc *interfaces.Document) string {
	if doc == nil {
		return "<nil>"
	}
	return doc.FilePath
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

type importAccumulator struct {
	createdIDs []uuid.UUID
	updatedIDs []uuid.UUID
	skippedIDs []uuid.UUID
	quizzes    int
	errors     []error
}

func newImportAccumulator() *importAccumulator {
	return &importAccumulator{
		createdIDs: []uuid.UUID{},
		updatedIDs: []uuid.UUID{},
		skippedIDs: []uuid.UUID{},
		errors:     []error{},
	}
}

func (a *importAccumulator) created(id uuid.UUID) {
	if id != uuid.Nil {
		a.createdIDs = append(a.createdIDs, id)
	}
}

func (a *importAccumulator) updated(id uuid.UUID) {
	if id != uuid.Nil {
		a.updatedIDs = append(a.updatedIDs, id)
	}
}

func (a *importAccumulator) skip(id uuid.UUID) {
	if id != uuid.Nil {
		a.skippedIDs = append(a.skippedIDs, id)
	}
}

func (a *importAccumulator) addError(err error) {
	if err != nil {
		a.errors = append(a.errors, err)
	}
}

func (a *importAccumulator) result() *interfaces.ImportResult {
	return &interfaces.ImportResult{
		CreatedPageIDs: a.createdIDs,
		UpdatedPageIDs: a.updatedIDs,
		SkippedPageIDs: a.skippedIDs,
		QuizQuestions:  a.quizzes,
		Errors:         a.errors,
	}
}

type syncAccumulator struct {
	created int
	updated int
	deleted int
	skipped int
	quizzes int
	errors  []error
}

func newSyncAccumulator() *syncAccumulator {
	return &syncAccumulator{
		errors: []error{},
	}
}

func (s *syncAccumulator) merge(res *interfaces.ImportResult) {
	if res == nil {
		return
	}
	s.created += len(res.CreatedPageIDs)
	s.updated += len(res.UpdatedPageIDs)
	s.skipped += len(res.SkippedPageIDs)
	s.quizzes += res.QuizQuestions
	s.errors = append(s.errors, res.Errors...)
}

func (s *syncAccumulator) addError(err error) {
	if err != nil {
		s.errors = append(s.errors, err)
	}
}

func (s *syncAccumulator) result() *interfaces.SyncResult {
	return &interfaces.SyncResult{
		Created: s.created,
		Updated: s.updated,
		Deleted: s.deleted,
		Skipped: s.skipped,
		Quizzes: s.quizzes,
		Errors:  s.errors,
	}
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

var _ interfaces.CatalogService = (*Importer)(nil)
