package quiz

import (
	"regexp"
	"strings"

	"github.com/docworks/go-corpus/pkg/interfaces"
)

var (
	headingPattern = regexp.MustCompile(`^#{2,4}\s+(.*)$`)
	optionPattern  = regexp.MustCompile(`^-\s+\[([ xX])\]\s+(.*)$`)
)

// DecodeQuestions parses the inner text of a quizdown region into question
// records. Questions open with a Markdown heading, list their options as a
// task list, and close with a blockquote explanation:
//
//	### Which form creates a closure?
//
//	- [ ] defn
//	- [x] fn capturing its environment
//
//	> fn closes over bindings in its lexical scope.
//
// Decoding is strict: a line that fits none of those shapes fails with a
// DecodeError rather than being dropped.
func DecodeQuestions(inner string) ([]interfaces.QuizQuestion, error) {
	var (
		questions []interfaces.QuizQuestion
		current   *interfaces.QuizQuestion
		prompt    []string
		expl      []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Prompt = strings.Join(prompt, "\n")
		current.Explanation = strings.Join(expl, "\n")
		questions = append(questions, *current)
		current = nil
		prompt = nil
		expl = nil
	}

	lines := strings.Split(inner, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lineNo := i + 1

		switch {
		case trimmed == "":
			continue

		case headingPattern.MatchString(trimmed):
			flush()
			current = &interfaces.QuizQuestion{}
			prompt = []string{headingPattern.FindStringSubmatch(trimmed)[1]}

		case strings.HasPrefix(trimmed, "- ["):
			if current == nil {
				return nil, &DecodeError{Line: lineNo, Text: trimmed, Reason: ErrOptionOutsideQuestion}
			}
			matches := optionPattern.FindStringSubmatch(trimmed)
			if matches == nil {
				return nil, &DecodeError{Line: lineNo, Text: trimmed, Reason: ErrMalformedOption}
			}
			current.Options = append(current.Options, interfaces.QuizOption{
				Text:    matches[2],
				Correct: matches[1] != " ",
			})

		case strings.HasPrefix(trimmed, ">"):
			if current == nil {
				return nil, &DecodeError{Line: lineNo, Text: trimmed, Reason: ErrUnexpectedLine}
			}
			expl = append(expl, strings.TrimSpace(strings.TrimPrefix(trimmed, ">")))

		default:
			// Plain text extends the prompt while the option list has not
			// started; anywhere else it is a syntax error.
			if current != nil && len(current.Options) == 0 && len(expl) == 0 {
				prompt = append(prompt, trimmed)
				continue
			}
			return nil, &DecodeError{Line: lineNo, Text: trimmed, Reason: ErrUnexpectedLine}
		}
	}
	flush()

	if len(questions) == 0 {
		return nil, ErrEmptyBlock
	}
	return questions, nil
}

// EncodeQuestion renders a question in canonical quizdown form. Decoding the
// output yields the question unchanged, and encoding is a fixed point:
// encoding a decoded canonical block reproduces it byte for byte.
func EncodeQuestion(q interfaces.QuizQuestion) string {
	var b strings.Builder

	promptLines := strings.Split(q.Prompt, "\n")
	b.WriteString("### ")
	b.WriteString(promptLines[0])
	b.WriteByte('\n')
	for _, line := range promptLines[1:] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for _, opt := range q.Options {
		if opt.Correct {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(opt.Text)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for _, line := range strings.Split(q.Explanation, "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// EncodeBlock renders questions as a full shortcode region in canonical form.
func EncodeBlock(questions []interfaces.QuizQuestion) string {
	var b strings.Builder
	b.WriteString("{{< quizdown >}}\n\n")
	for _, q := range questions {
		b.WriteString(EncodeQuestion(q))
		b.WriteByte('\n')
	}
	b.WriteString("{{< /quizdown >}}")
	return b.String()
}

// EmbedBlock re-embeds a previously extracted block using its raw inner text,
// reproducing the original source byte for byte.
func EmbedBlock(block interfaces.QuizBlock) string {
	return "{{< quizdown >}}" + block.Inner + "{{< /quizdown >}}"
}
