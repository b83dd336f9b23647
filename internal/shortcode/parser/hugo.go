// Package parser scans document bodies for Hugo-style shortcode regions
// ({{< name param >}} ... {{< /name >}}) without interpreting their contents.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/docworks/go-corpus/pkg/interfaces"
)

var (
	startTagPattern = regexp.MustCompile(`{{<\s*([^\s/>]+)([^>]*)>}}`)
	endTagPattern   = regexp.MustCompile(`{{<\s*/\s*([^\s>]+)\s*>}}`)
)

var (
	// ErrUnterminatedShortcode is returned when an opening tag never finds
	// its closing counterpart.
	ErrUnterminatedShortcode = errors.New("shortcode: unterminated region")
	// ErrMismatchedShortcode is returned when a closing tag does not match
	// the most recently opened region.
	ErrMismatchedShortcode = errors.New("shortcode: mismatched end tag")
	// ErrUnexpectedClose is returned when a closing tag appears without an
	// open region.
	ErrUnexpectedClose = errors.New("shortcode: unexpected end tag")
)

// placeholderFormat is the marker emitted in place of an extracted region.
const placeholderFormat = "<!-- shortcode:%d -->"

// HugoParser parses Hugo-style shortcodes. It is stateless and safe for
// concurrent use.
type HugoParser struct {
}

// NewHugoParser creates a parser instance.
func NewHugoParser() *HugoParser {
	return &HugoParser{}
}

// Parse returns the list of parsed shortcodes in the content.
func (p *HugoParser) Parse(content string) ([]interfaces.ParsedShortcode, error) {
	_, shortcodes, err := p.Extract(content)
	return shortcodes, err
}

// Extract replaces shortcode regions with placeholders and returns both the
// transformed content and the extracted definitions. Inner text is preserved
// exactly as it appears between the tags.
func (p *HugoParser) Extract(content string) (string, []interfaces.ParsedShortcode, error) {
	type stackEntry struct {
		name       string
		startIndex int
		params     map[string]any
	}

	var (
		result     []rune
		shortcodes []interfaces.ParsedShortcode
		stack      []stackEntry
		position   int
	)

	appendString := func(s string) {
		result = append(result, []rune(s)...)
	}

	for position < len(content) {
		loc := startTagPattern.FindStringIndex(content[position:])
		endLoc := endTagPattern.FindStringIndex(content[position:])

		if loc == nil && endLoc == nil {
			appendString(content[position:])
			break
		}

		startPos := -1
		if loc != nil {
			startPos = position + loc[0]
		}

		endPos := -1
		if endLoc != nil {
			endPos = position + endLoc[0]
		}

		if startPos >= 0 && (endPos == -1 || startPos < endPos) {
			// append text preceding tag
			appendString(content[position:startPos])

			matches := startTagPattern.FindStringSubmatch(content[startPos:])
			name := matches[1]
			rawParams := strings.TrimSpace(matches[2])

			// Only the explicit {{< name />}} form is self-closing. An open
			// tag without a matching close is reported as unterminated once
			// the scan completes.
			selfClosing := strings.HasSuffix(rawParams, "/")
			if selfClosing {
				rawParams = strings.TrimSpace(strings.TrimSuffix(rawParams, "/"))
			}
			params := parseParams(rawParams)

			if selfClosing {
				placeholder := fmt.Sprintf(placeholderFormat, len(shortcodes))
				appendString(placeholder)
				shortcodes = append(shortcodes, interfaces.ParsedShortcode{
					Name:   name,
					Params: params,
				})
				position = startPos + len(matches[0])
				continue
			}

			stack = append(stack, stackEntry{
				name:       name,
				startIndex: len(result),
				params:     params,
			})

			position = startPos + len(matches[0])
			continue
		}

		if endPos >= 0 {
			appendString(content[position:endPos])

			matches := endTagPattern.FindStringSubmatch(content[endPos:])
			name := matches[1]
			if len(stack) == 0 {
				return "", nil, fmt.Errorf("%w: %s at position %d", ErrUnexpectedClose, name, endPos)
			}

			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if entry.name != name {
				return "", nil, fmt.Errorf("%w: got %s, expected %s", ErrMismatchedShortcode, name, entry.name)
			}

			inner := string(result[entry.startIndex:])
			result = result[:entry.startIndex]

			placeholder := fmt.Sprintf(placeholderFormat, len(shortcodes))
			appendString(placeholder)

			shortcodes = append(shortcodes, interfaces.ParsedShortcode{
				Name:   name,
				Params: entry.params,
				Inner:  inner,
			})

			position = endPos + len(matches[0])
			continue
		}
	}

	if len(stack) > 0 {
		return "", nil, fmt.Errorf("%w: %s", ErrUnterminatedShortcode, stack[len(stack)-1].name)
	}

	return string(result), shortcodes, nil
}

func parseParams(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	parts := strings.Fields(raw)
	params := make(map[string]any, len(parts))
	for _, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 {
			key := strings.TrimSpace(kv[0])
			value := strings.Trim(kv[1], `"`)
			params[key] = value
		} else {
			params[fmt.Sprintf("param%d", len(params)+1)] = strings.Trim(part, `"`)
		}
	}
	return params
}
