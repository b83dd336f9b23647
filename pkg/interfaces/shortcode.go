package interfaces

// ShortcodeParser extracts shortcode invocations from arbitrary content.
type ShortcodeParser interface {
	Parse(content string) ([]ParsedShortcode, error)
	Extract(content string) (placeholders string, shortcodes []ParsedShortcode, err error)
}

// ParsedShortcode represents a parsed invocation discovered by the parser
// layer. Inner carries the raw text between the opening and closing tags,
// untouched, so callers can re-embed it byte for byte.
type ParsedShortcode struct {
	Name   string
	Params map[string]any
	Inner  string
}
