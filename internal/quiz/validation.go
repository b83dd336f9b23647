package quiz

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/docworks/go-corpus/pkg/interfaces"
)

// ValidateQuestion checks the structural invariants every corpus question
// must satisfy: a prompt, at least two options, at least one correct option,
// and a non-empty explanation.
func ValidateQuestion(q interfaces.QuizQuestion) error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Prompt, validation.By(func(any) error {
			if strings.TrimSpace(q.Prompt) == "" {
				return ErrPromptRequired
			}
			return nil
		})),
		validation.Field(&q.Options, validation.By(func(any) error {
			if len(q.Options) < 2 {
				return ErrOptionsRequired
			}
			if q.CorrectCount() == 0 {
				return ErrNoCorrectOption
			}
			return nil
		})),
		validation.Field(&q.Explanation, validation.By(func(any) error {
			if strings.TrimSpace(q.Explanation) == "" {
				return ErrExplanationRequired
			}
			return nil
		})),
	)
}

// ValidateQuestions validates a decoded block, reporting the first failing
// question with its index and prompt for context.
func ValidateQuestions(questions []interfaces.QuizQuestion) error {
	for i, q := range questions {
		if err := ValidateQuestion(q); err != nil {
			return &QuestionValidationError{
				Index:  i,
				Prompt: firstLine(q.Prompt),
				Reason: err,
			}
		}
	}
	return nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
