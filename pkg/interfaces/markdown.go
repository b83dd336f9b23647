package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across documents, exposing extension
// toggles so hosts can tailor rendering without rewriting the core service.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the high-level file workflows for a documentation
// corpus: loading pages, converting their bodies into HTML, and extracting
// the quiz blocks embedded within them.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	ExtractQuizzes(ctx context.Context, doc *Document) ([]QuizBlock, error)
}

// Document represents a corpus page with parsed metadata and content. The
// struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Section      string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically SHA-256)
	// so sync workflows can detect changes without re-importing unchanged files.
	Checksum []byte
}

// FrontMatter models the metadata block leading every corpus page. Fields
// mirror the keys the corpus actually carries and remain flexible thanks to
// the Custom map for site- or theme-specific values. Raw preserves every key
// as parsed so serialisation round-trips are lossless.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	LinkTitle   string         `yaml:"linkTitle" json:"link_title"`
	Description string         `yaml:"description" json:"description"`
	Slug        string         `yaml:"slug" json:"slug"`
	Type        string         `yaml:"type" json:"type"`
	Categories  []string       `yaml:"categories" json:"categories"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Date        time.Time      `yaml:"date" json:"date"`
	NavWeight   int            `yaml:"nav_weight" json:"nav_weight"`
	Canonical   string         `yaml:"canonical" json:"canonical"`
	License     string         `yaml:"license" json:"license"`
	Draft       bool           `yaml:"draft" json:"draft"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive       *bool
	Pattern         string
	SectionPatterns map[string]string
	Parser          ParseOptions
}
