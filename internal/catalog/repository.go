package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// PageRepository abstracts catalog persistence so the importer can be tested
// against in-memory fakes.
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*PageRecord, error)
	List(ctx context.Context) ([]*PageRecord, error)
	Create(ctx context.Context, page *PageRecord, questions []*QuizQuestionRecord) error
	Update(ctx context.Context, page *PageRecord, questions []*QuizQuestionRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BunPageRepository stores pages and quiz questions through bun.
type BunPageRepository struct {
	db *bun.DB
}

// NewBunPageRepository wraps the supplied database handle.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return &BunPageRepository{db: db}
}

// OpenSQLite opens (or creates) a SQLite-backed catalog at the supplied DSN.
// Use ":memory:" for throwaway catalogs.
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: open sqlite %s: %w", dsn, err)
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// ResetSchema creates the catalog tables, dropping any existing ones.
func ResetSchema(ctx context.Context, db *bun.DB) error {
	models := []any{(*PageRecord)(nil), (*QuizQuestionRecord)(nil)}
	for _, model := range models {
		if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("catalog: drop table: %w", err)
		}
		if _, err := db.NewCreateTable().Model(model).Exec(ctx); err != nil {
			return fmt.Errorf("catalog: create table: %w", err)
		}
	}
	return nil
}

// EnsureSchema creates the catalog tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{(*PageRecord)(nil), (*QuizQuestionRecord)(nil)}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("catalog: ensure table: %w", err)
		}
	}
	return nil
}

// GetBySlug returns the page stored under slug, or ErrPageNotFound.
func (r *BunPageRepository) GetBySlug(ctx context.Context, slug string) (*PageRecord, error) {
	page := new(PageRecord)
	err := r.db.NewSelect().Model(page).Where("slug = ?", slug).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("catalog: get page %s: %w", slug, err)
	}
	return page, nil
}

// List returns every stored page ordered by slug.
func (r *BunPageRepository) List(ctx context.Context) ([]*PageRecord, error) {
	var pages []*PageRecord
	if err := r.db.NewSelect().Model(&pages).Order("slug ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("catalog: list pages: %w", err)
	}
	return pages, nil
}

// Create inserts a page and its questions in one transaction.
func (r *BunPageRepository) Create(ctx context.Context, page *PageRecord, questions []*QuizQuestionRecord) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(page).Exec(ctx); err != nil {
			return fmt.Errorf("catalog: insert page %s: %w", page.Slug, err)
		}
		if len(questions) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&questions).Exec(ctx); err != nil {
			return fmt.Errorf("catalog: insert questions for %s: %w", page.Slug, err)
		}
		return nil
	})
}

// Update rewrites a page and replaces its questions in one transaction.
func (r *BunPageRepository) Update(ctx context.Context, page *PageRecord, questions []*QuizQuestionRecord) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model(page).WherePK().Exec(ctx); err != nil {
			return fmt.Errorf("catalog: update page %s: %w", page.Slug, err)
		}
		if _, err := tx.NewDelete().Model((*QuizQuestionRecord)(nil)).
			Where("page_id = ?", page.ID).Exec(ctx); err != nil {
			return fmt.Errorf("catalog: clear questions for %s: %w", page.Slug, err)
		}
		if len(questions) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&questions).Exec(ctx); err != nil {
			return fmt.Errorf("catalog: insert questions for %s: %w", page.Slug, err)
		}
		return nil
	})
}

// Delete removes a page and its questions.
func (r *BunPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*QuizQuestionRecord)(nil)).
			Where("page_id = ?", id).Exec(ctx); err != nil {
			return fmt.Errorf("catalog: delete questions: %w", err)
		}
		if _, err := tx.NewDelete().Model((*PageRecord)(nil)).
			Where("id = ?", id).Exec(ctx); err != nil {
			return fmt.Errorf("catalog: delete page: %w", err)
		}
		return nil
	})
}

var _ PageRepository = (*BunPageRepository)(nil)
