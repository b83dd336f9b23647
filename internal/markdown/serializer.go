package markdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/docworks/go-corpus/pkg/interfaces"
)

const frontMatterDelimiter = "---"

// SerializeFrontMatter renders the metadata block back into its delimited
// YAML form. Keys are emitted in sorted order so serialisation is
// deterministic: parsing the output and serialising again yields the same
// bytes.
func SerializeFrontMatter(meta interfaces.FrontMatter) ([]byte, error) {
	payload := meta.Raw
	if payload == nil {
		payload = map[string]any{}
	}

	encoded, err := yaml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("markdown: serialize front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.Write(encoded)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// SerializeDocument reassembles a full page source: the front-matter block
// followed by the Markdown body exactly as parsed.
func SerializeDocument(doc *interfaces.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("markdown: serialize nil document")
	}

	head, err := SerializeFrontMatter(doc.FrontMatter)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(head)+len(doc.Body))
	out = append(out, head...)
	out = append(out, doc.Body...)
	return out, nil
}
