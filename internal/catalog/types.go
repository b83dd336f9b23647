package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PageRecord is the persisted form of a corpus page.
type PageRecord struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID            uuid.UUID      `bun:",pk,type:uuid"                json:"id"`
	Slug          string         `bun:"slug,notnull,unique"          json:"slug"`
	Section       string         `bun:"section"                      json:"section"`
	Title         string         `bun:"title,notnull"                json:"title"`
	Description   *string        `bun:"description"                  json:"description,omitempty"`
	Path          string         `bun:"path,notnull"                 json:"path"`
	Checksum      string         `bun:"checksum,notnull"             json:"checksum"`
	NavWeight     int            `bun:"nav_weight"                   json:"nav_weight"`
	FrontMatter   map[string]any `bun:"front_matter,type:jsonb"      json:"front_matter,omitempty"`
	Body          string         `bun:"body,notnull"                 json:"body"`
	BodyHTML      string         `bun:"body_html"                    json:"body_html,omitempty"`
	QuestionCount int            `bun:"question_count"               json:"question_count"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// QuizQuestionRecord is the persisted form of a single quiz question.
// Options are stored as a JSON array of {text, correct} objects in document
// order so reassembly preserves option ordering.
type QuizQuestionRecord struct {
	bun.BaseModel `bun:"table:quiz_questions,alias:q"`

	ID          uuid.UUID `bun:",pk,type:uuid"            json:"id"`
	PageID      uuid.UUID `bun:"page_id,notnull,type:uuid" json:"page_id"`
	BlockIndex  int       `bun:"block_index,notnull"      json:"block_index"`
	Position    int       `bun:"position,notnull"         json:"position"`
	Prompt      string    `bun:"prompt,notnull"           json:"prompt"`
	Options     []any     `bun:"options,type:jsonb"       json:"options"`
	Explanation string    `bun:"explanation,notnull"      json:"explanation"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}
