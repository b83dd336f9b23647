package quiz

import (
	"errors"
	"testing"

	"github.com/docworks/go-corpus/pkg/interfaces"
)

const sampleInner = `
### Which form creates a closure?

- [ ] defn
- [x] fn capturing its environment
- [ ] let
- [ ] quote

> A closure captures bindings from its lexical scope.

### What does lein do?

Pick the best description.

- [x] Builds and manages Clojure projects
- [ ] Formats source files
- [ ] Hosts documentation
- [ ] Runs Kubernetes clusters

> Leiningen is the de facto Clojure build tool.
`

func TestDecodeQuestions(t *testing.T) {
	questions, err := DecodeQuestions(sampleInner)
	if err != nil {
		t.Fatalf("DecodeQuestions: %v", err)
	}

	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	first := questions[0]
	if first.Prompt != "Which form creates a closure?" {
		t.Fatalf("unexpected prompt: %q", first.Prompt)
	}
	if len(first.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(first.Options))
	}
	if !first.Options[1].Correct || first.Options[0].Correct {
		t.Fatalf("correct flags misplaced: %#v", first.Options)
	}
	if first.Explanation != "A closure captures bindings from its lexical scope." {
		t.Fatalf("unexpected explanation: %q", first.Explanation)
	}

	second := questions[1]
	if second.Prompt != "What does lein do?\nPick the best description." {
		t.Fatalf("expected prompt continuation, got %q", second.Prompt)
	}
	if second.CorrectCount() != 1 {
		t.Fatalf("expected one correct option, got %d", second.CorrectCount())
	}
}

func TestDecodeQuestionsVariableOptionCount(t *testing.T) {
	inner := `
### True or false: maps are values?

- [x] True
- [ ] False

> Clojure maps are immutable values.
`
	questions, err := DecodeQuestions(inner)
	if err != nil {
		t.Fatalf("DecodeQuestions: %v", err)
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(questions[0].Options))
	}
}

func TestDecodeQuestionsMalformedOption(t *testing.T) {
	inner := `
### Broken

- [y] not a valid marker

> explanation
`
	_, err := DecodeQuestions(inner)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, ErrMalformedOption) {
		t.Fatalf("expected ErrMalformedOption, got %v", err)
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %T", err)
	}
	if decodeErr.Line != 4 {
		t.Fatalf("expected line 4, got %d", decodeErr.Line)
	}
}

func TestDecodeQuestionsOptionBeforeHeading(t *testing.T) {
	_, err := DecodeQuestions("- [x] stray option\n")
	if !errors.Is(err, ErrOptionOutsideQuestion) {
		t.Fatalf("expected ErrOptionOutsideQuestion, got %v", err)
	}
}

func TestDecodeQuestionsEmptyBlock(t *testing.T) {
	_, err := DecodeQuestions("\n\n")
	if !errors.Is(err, ErrEmptyBlock) {
		t.Fatalf("expected ErrEmptyBlock, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	question := interfaces.QuizQuestion{
		Prompt: "Which macro threads a value through forms?",
		Options: []interfaces.QuizOption{
			{Text: "->", Correct: true},
			{Text: "doseq", Correct: false},
			{Text: "cond", Correct: false},
			{Text: "->> as well", Correct: true},
		},
		Explanation: "Both thread-first and thread-last macros qualify.",
	}

	encoded := EncodeQuestion(question)
	decoded, err := DecodeQuestions(encoded)
	if err != nil {
		t.Fatalf("DecodeQuestions: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 question, got %d", len(decoded))
	}
	got := decoded[0]
	if got.Prompt != question.Prompt || got.Explanation != question.Explanation {
		t.Fatalf("round trip mutated question: %#v", got)
	}
	if len(got.Options) != len(question.Options) {
		t.Fatalf("round trip lost options: %#v", got.Options)
	}
	for i, opt := range got.Options {
		if opt != question.Options[i] {
			t.Fatalf("option %d mismatch: got %#v want %#v", i, opt, question.Options[i])
		}
	}

	// Canonical encoding is a fixed point.
	if again := EncodeQuestion(got); again != encoded {
		t.Fatalf("encoding not stable:\n got: %q\nwant: %q", again, encoded)
	}
}

func TestEmbedBlockIsByteIdentical(t *testing.T) {
	block := interfaces.QuizBlock{Inner: sampleInner}
	embedded := EmbedBlock(block)
	want := "{{< quizdown >}}" + sampleInner + "{{< /quizdown >}}"
	if embedded != want {
		t.Fatalf("EmbedBlock mismatch:\n got: %q\nwant: %q", embedded, want)
	}
}

func TestEncodeBlockRoundTrip(t *testing.T) {
	questions, err := DecodeQuestions(sampleInner)
	if err != nil {
		t.Fatalf("DecodeQuestions: %v", err)
	}

	encoded := EncodeBlock(questions)
	inner := encoded[len("{{< quizdown >}}") : len(encoded)-len("{{< /quizdown >}}")]
	decoded, err := DecodeQuestions(inner)
	if err != nil {
		t.Fatalf("DecodeQuestions(encoded): %v", err)
	}
	if len(decoded) != len(questions) {
		t.Fatalf("expected %d questions, got %d", len(questions), len(decoded))
	}
	if again := EncodeBlock(decoded); again != encoded {
		t.Fatalf("EncodeBlock not stable:\n got: %q\nwant: %q", again, encoded)
	}
}
