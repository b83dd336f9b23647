package interfaces

import "context"

// QuizExtractor scans a document body for quiz shortcode regions and decodes
// the question records embedded within them.
type QuizExtractor interface {
	Extract(ctx context.Context, body []byte) ([]QuizBlock, error)
}

// QuizBlock groups the questions found inside a single shortcode region.
// Inner preserves the raw text between the delimiters so that re-embedding a
// block reproduces the original source byte for byte.
type QuizBlock struct {
	Inner     string
	Questions []QuizQuestion
}

// QuizQuestion is a single multiple-choice question: a prompt, an ordered set
// of options with one or more marked correct, and a mandatory explanation.
type QuizQuestion struct {
	Prompt      string
	Options     []QuizOption
	Explanation string
}

// QuizOption is one selectable answer within a question.
type QuizOption struct {
	Text    string
	Correct bool
}

// CorrectCount reports how many options are marked correct.
func (q QuizQuestion) CorrectCount() int {
	count := 0
	for _, opt := range q.Options {
		if opt.Correct {
			count++
		}
	}
	return count
}
