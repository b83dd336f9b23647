package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/docworks/go-corpus/pkg/interfaces"
)

func TestSerializeFrontMatterIsIdempotent(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	first, err := SerializeFrontMatter(fm)
	if err != nil {
		t.Fatalf("SerializeFrontMatter: %v", err)
	}

	reparsed, _, err := ParseFrontMatter(append(first, []byte("\nbody\n")...))
	if err != nil {
		t.Fatalf("re-parse serialized front matter: %v", err)
	}

	second, err := SerializeFrontMatter(reparsed)
	if err != nil {
		t.Fatalf("second SerializeFrontMatter: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("serialization is not a fixed point:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestSerializeFrontMatterOmitsZeroValues(t *testing.T) {
	source := "---\ntitle: Minimal\n---\n\nbody\n"

	fm, _, err := ParseFrontMatter([]byte(source))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	out, err := SerializeFrontMatter(fm)
	if err != nil {
		t.Fatalf("SerializeFrontMatter: %v", err)
	}

	got := string(out)
	if !strings.Contains(got, "title: Minimal") {
		t.Fatalf("expected title in output, got %q", got)
	}
	for _, absent := range []string{"draft", "nav_weight", "tags", "categories", "date"} {
		if strings.Contains(got, absent) {
			t.Fatalf("expected %q to be omitted from output, got %q", absent, got)
		}
	}
}

func TestSerializeDocumentRoundTripsBody(t *testing.T) {
	body := "# Heading\n\nParagraph content stays byte for byte.\n"
	source := "---\ntitle: Round Trip\nslug: round-trip\n---\n" + body

	fm, parsedBody, err := ParseFrontMatter([]byte(source))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	doc := &interfaces.Document{
		FilePath:    "round-trip.md",
		FrontMatter: fm,
		Body:        parsedBody,
	}

	out, err := SerializeDocument(doc)
	if err != nil {
		t.Fatalf("SerializeDocument: %v", err)
	}

	refm, rebody, err := ParseFrontMatter(out)
	if err != nil {
		t.Fatalf("re-parse serialized document: %v", err)
	}
	if refm.Title != "Round Trip" || refm.Slug != "round-trip" {
		t.Fatalf("metadata changed across round trip: %#v", refm)
	}
	if !bytes.Equal(rebody, parsedBody) {
		t.Fatalf("body changed across round trip:\nbefore: %q\nafter:  %q", parsedBody, rebody)
	}
}

func TestSerializeDocumentNil(t *testing.T) {
	if _, err := SerializeDocument(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
}
