package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	shortcodeparser "github.com/docworks/go-corpus/internal/shortcode/parser"
)

const pageBody = `
## Closures

A closure captures its lexical environment.

{{< quizdown >}}

### Which form creates a closure?

- [ ] defn
- [x] fn capturing its environment
- [ ] let
- [ ] quote

> A closure captures bindings from its lexical scope.

{{< /quizdown >}}

More prose follows the quiz.

{{< quizdown >}}

### What does lein do?

- [x] Builds and manages Clojure projects
- [ ] Formats source files
- [ ] Hosts documentation
- [ ] Runs Kubernetes clusters

> Leiningen is the de facto Clojure build tool.

{{< /quizdown >}}
`

func TestExtractorFindsAllBlocks(t *testing.T) {
	extractor := NewExtractor()

	blocks, err := extractor.Extract(context.Background(), []byte(pageBody))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if len(blocks[0].Questions) != 1 || len(blocks[1].Questions) != 1 {
		t.Fatalf("expected 1 question per block, got %d and %d",
			len(blocks[0].Questions), len(blocks[1].Questions))
	}
	if blocks[0].Questions[0].Prompt != "Which form creates a closure?" {
		t.Fatalf("unexpected prompt: %q", blocks[0].Questions[0].Prompt)
	}

	// Raw inner text is retained so re-embedding is byte identical.
	if !strings.Contains(pageBody, EmbedBlock(blocks[0])) {
		t.Fatal("expected re-embedded block to appear verbatim in the source")
	}
}

func TestExtractorIgnoresOtherShortcodes(t *testing.T) {
	extractor := NewExtractor()

	body := "{{< alert >}}Heads up{{< /alert >}}\n\nNo quizzes here.\n"
	blocks, err := extractor.Extract(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestExtractorRejectsInvalidQuestion(t *testing.T) {
	extractor := NewExtractor()

	body := `{{< quizdown >}}
### No winners here

- [ ] first
- [ ] second

> Nothing is marked correct.
{{< /quizdown >}}`

	_, err := extractor.Extract(context.Background(), []byte(body))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "at least one correct option") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractorPropagatesParserErrors(t *testing.T) {
	extractor := NewExtractor()

	_, err := extractor.Extract(context.Background(), []byte("{{< quizdown >}}### Q{{< /alert >}}{{< /quizdown >}}"))
	if err == nil {
		t.Fatal("expected parser error")
	}
	if !errors.Is(err, shortcodeparser.ErrMismatchedShortcode) {
		t.Fatalf("expected ErrMismatchedShortcode, got %v", err)
	}
}

func TestExtractorReportsUnterminatedBlock(t *testing.T) {
	extractor := NewExtractor()

	body := "{{< quizdown >}}\n### Q1\n- [x] yes\n- [ ] no\n> because"
	_, err := extractor.Extract(context.Background(), []byte(body))
	if !errors.Is(err, shortcodeparser.ErrUnterminatedShortcode) {
		t.Fatalf("expected ErrUnterminatedShortcode, got %v", err)
	}
}

func TestExtractorHonoursContext(t *testing.T) {
	extractor := NewExtractor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := extractor.Extract(ctx, []byte(pageBody)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
