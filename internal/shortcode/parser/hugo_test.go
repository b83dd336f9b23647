package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestHugoParser_Extract(t *testing.T) {
	parser := NewHugoParser()

	input := "Intro text.\n\n{{< quizdown >}}\n### Q1\n{{< /quizdown >}}\n\n{{< ref \"glossary.md\" />}}\n"

	content, shortcodes, err := parser.Extract(input)
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}

	if len(shortcodes) != 2 {
		t.Fatalf("expected 2 shortcodes, got %d", len(shortcodes))
	}
	if shortcodes[0].Name != "quizdown" {
		t.Fatalf("expected first shortcode quizdown, got %s", shortcodes[0].Name)
	}
	if shortcodes[0].Inner != "\n### Q1\n" {
		t.Fatalf("expected inner content preserved verbatim, got %q", shortcodes[0].Inner)
	}
	if shortcodes[1].Name != "ref" {
		t.Fatalf("expected self-closing ref shortcode, got %s", shortcodes[1].Name)
	}
	if shortcodes[1].Params["param1"] != "glossary.md" {
		t.Fatalf("expected positional param, got %#v", shortcodes[1].Params)
	}
	if len(shortcodes[1].Params) != 1 {
		t.Fatalf("expected closing slash excluded from params, got %#v", shortcodes[1].Params)
	}

	if !strings.Contains(content, "<!-- shortcode:0 -->") || !strings.Contains(content, "<!-- shortcode:1 -->") {
		t.Fatalf("expected placeholders in transformed content, got %q", content)
	}
	if strings.Contains(content, "quizdown") {
		t.Fatalf("expected quizdown region removed from content, got %q", content)
	}
}

func TestHugoParser_NamedParams(t *testing.T) {
	parser := NewHugoParser()

	shortcodes, err := parser.Parse(`{{< quizdown shuffle="true" limit=3 >}}inner{{< /quizdown >}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(shortcodes) != 1 {
		t.Fatalf("expected 1 shortcode, got %d", len(shortcodes))
	}
	if shortcodes[0].Params["shuffle"] != "true" {
		t.Fatalf("expected shuffle param, got %#v", shortcodes[0].Params)
	}
	if shortcodes[0].Params["limit"] != "3" {
		t.Fatalf("expected limit param, got %#v", shortcodes[0].Params)
	}
}

func TestHugoParser_Mismatched(t *testing.T) {
	parser := NewHugoParser()
	input := "{{< alert type=\"warning\" >}}Oops{{< /quizdown >}}"

	_, _, err := parser.Extract(input)
	if err == nil {
		t.Fatal("expected error for mismatched shortcode closure")
	}
	if !errors.Is(err, ErrMismatchedShortcode) {
		t.Fatalf("expected ErrMismatchedShortcode, got %v", err)
	}
}

func TestHugoParser_Unterminated(t *testing.T) {
	parser := NewHugoParser()
	input := "{{< quizdown >}}\n### Q1\n- [x] yes\n- [ ] no\n> because"

	_, _, err := parser.Extract(input)
	if !errors.Is(err, ErrUnterminatedShortcode) {
		t.Fatalf("expected ErrUnterminatedShortcode, got %v", err)
	}
}

func TestHugoParser_UnexpectedClose(t *testing.T) {
	parser := NewHugoParser()

	_, _, err := parser.Extract("No open tag here {{< /quizdown >}}")
	if !errors.Is(err, ErrUnexpectedClose) {
		t.Fatalf("expected ErrUnexpectedClose, got %v", err)
	}
}
