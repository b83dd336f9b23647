package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/docworks/go-corpus/internal/util"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

// ErrFrontMatterMissing is returned when a document does not start with a
// front-matter delimiter or the block is never terminated.
var ErrFrontMatterMissing = errors.New("markdown: front matter missing or unterminated")

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front-matter, the Markdown
// body without delimiters, and an error when the leading metadata block is
// absent or malformed.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.MustParse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("%w: %v", ErrFrontMatterMissing, err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// section, raw content, and modification time. BodyHTML is intentionally left
// empty so callers can render lazily.
func BuildDocument(path string, section string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("markdown: document %s: %w", path, err)
	}

	return &interfaces.Document{
		FilePath:     path,
		Section:      section,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title       string         `yaml:"title"`
	LinkTitle   string         `yaml:"linkTitle"`
	Description string         `yaml:"description"`
	Slug        string         `yaml:"slug"`
	Type        string         `yaml:"type"`
	Categories  []string       `yaml:"categories"`
	Tags        []string       `yaml:"tags"`
	Date        time.Time      `yaml:"date"`
	NavWeight   int            `yaml:"nav_weight"`
	Canonical   string         `yaml:"canonical"`
	License     string         `yaml:"license"`
	Draft       bool           `yaml:"draft"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+12)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.LinkTitle != "" {
		raw["linkTitle"] = env.LinkTitle
	}
	if env.Description != "" {
		raw["description"] = env.Description
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Type != "" {
		raw["type"] = env.Type
	}
	if len(env.Categories) > 0 {
		raw["categories"] = append([]string(nil), env.Categories...)
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	if env.NavWeight != 0 {
		raw["nav_weight"] = env.NavWeight
	}
	if env.Canonical != "" {
		raw["canonical"] = env.Canonical
	}
	if env.License != "" {
		raw["license"] = env.License
	}
	if env.Draft {
		raw["draft"] = env.Draft
	}

	return interfaces.FrontMatter{
		Title:       env.Title,
		LinkTitle:   env.LinkTitle,
		Description: env.Description,
		Slug:        env.Slug,
		Type:        env.Type,
		Categories:  append([]string(nil), env.Categories...),
		Tags:        append([]string(nil), env.Tags...),
		Date:        env.Date,
		NavWeight:   env.NavWeight,
		Canonical:   env.Canonical,
		License:     env.License,
		Draft:       env.Draft,
		Custom:      util.CloneAnyMap(env.Custom),
		Raw:         raw,
	}
}
