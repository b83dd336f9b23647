package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/docworks/go-corpus/internal/logging"
	shortcodeparser "github.com/docworks/go-corpus/internal/shortcode/parser"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

// ShortcodeName is the shortcode under which the corpus embeds its quizzes.
const ShortcodeName = "quizdown"

// Extractor finds quizdown regions in page bodies and decodes them into
// validated question records.
type Extractor struct {
	parser interfaces.ShortcodeParser
	logger interfaces.Logger
	name   string
}

// ExtractorOption customises extractor behaviour.
type ExtractorOption func(*Extractor)

// WithParser overrides the shortcode parser used to locate quiz regions.
func WithParser(parser interfaces.ShortcodeParser) ExtractorOption {
	return func(e *Extractor) {
		if parser != nil {
			e.parser = parser
		}
	}
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ExtractorOption {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithShortcodeName overrides the shortcode under which quizzes are embedded.
func WithShortcodeName(name string) ExtractorOption {
	return func(e *Extractor) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			e.name = trimmed
		}
	}
}

// NewExtractor constructs an extractor backed by the Hugo shortcode parser.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	extractor := &Extractor{
		parser: shortcodeparser.NewHugoParser(),
		logger: logging.NoOp(),
		name:   ShortcodeName,
	}
	for _, opt := range opts {
		opt(extractor)
	}
	return extractor
}

// Extract satisfies interfaces.QuizExtractor. Every quizdown region must
// decode and validate; a malformed question aborts the extraction instead of
// being dropped.
func (e *Extractor) Extract(ctx context.Context, body []byte) ([]interfaces.QuizBlock, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	shortcodes, err := e.parser.Parse(string(body))
	if err != nil {
		return nil, err
	}

	var blocks []interfaces.QuizBlock
	for _, sc := range shortcodes {
		if !strings.EqualFold(sc.Name, e.name) {
			continue
		}

		questions, err := DecodeQuestions(sc.Inner)
		if err != nil {
			return nil, fmt.Errorf("quiz block %d: %w", len(blocks), err)
		}
		if err := ValidateQuestions(questions); err != nil {
			return nil, fmt.Errorf("quiz block %d: %w", len(blocks), err)
		}

		e.logger.Debug("quiz.block.extracted",
			"questions", len(questions),
		)

		blocks = append(blocks, interfaces.QuizBlock{
			Inner:     sc.Inner,
			Questions: questions,
		})
	}

	return blocks, nil
}

var _ interfaces.QuizExtractor = (*Extractor)(nil)
