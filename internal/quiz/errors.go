package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyBlock            = errors.New("quiz: block contains no questions")
	ErrPromptRequired        = errors.New("quiz: question prompt is required")
	ErrOptionsRequired       = errors.New("quiz: question requires at least two options")
	ErrNoCorrectOption       = errors.New("quiz: question requires at least one correct option")
	ErrExplanationRequired   = errors.New("quiz: question explanation is required")
	ErrMalformedOption       = errors.New("quiz: malformed option line")
	ErrUnexpectedLine        = errors.New("quiz: unexpected line")
	ErrOptionOutsideQuestion = errors.New("quiz: option before any question heading")
)

// QuestionValidationError reports which question inside a block failed
// validation and why.
type QuestionValidationError struct {
	Index  int
	Prompt string
	Reason error
}

func (e *QuestionValidationError) Error() string {
	prompt := strings.TrimSpace(e.Prompt)
	if prompt == "" {
		return fmt.Sprintf("question %d: %v", e.Index, e.Reason)
	}
	return fmt.Sprintf("question %d (%s): %v", e.Index, prompt, e.Reason)
}

func (e *QuestionValidationError) Unwrap() error {
	return e.Reason
}

// DecodeError reports a syntax problem at a specific line of a quizdown block.
type DecodeError struct {
	Line   int
	Text   string
	Reason error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Reason, e.Text)
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}
