package serialization

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	yamlDelimiter = "---"
)

// Document is a file made of a YAML header and a free-form body
type Document struct {
	Frontmatter []byte
	Content     string
}

// ParseFrontmatter splits a document into its YAML header and body.
// A file that does not start with "---" is all body. Lines may be of
// any length.
func ParseFrontmatter(data []byte) (*Document, error) {
	doc := &Document{}
	if len(data) == 0 {
		return doc, nil // Empty file
	}

	first, rest, _ := bytes.Cut(data, []byte("\n"))
	if strings.TrimSpace(string(first)) != yamlDelimiter {
		doc.Content = strings.TrimSpace(string(data))
		return doc, nil
	}

	var header [][]byte
	closed := false
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = bytes.Cut(rest, []byte("\n"))
		if strings.TrimSpace(string(line)) == yamlDelimiter {
			closed = true
			break
		}
		header = append(header, bytes.TrimSuffix(line, []byte("\r")))
	}
	if !closed {
		return nil, fmt.Errorf("unterminated frontmatter")
	}

	doc.Frontmatter = bytes.Join(header, []byte("\n"))
	doc.Content = strings.TrimSpace(string(rest))

	return doc, nil
}

// Decode unmarshals the YAML header into out
func (d *Document) Decode(out interface{}) error {
	if len(bytes.TrimSpace(d.Frontmatter)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(d.Frontmatter, out); err != nil {
		return fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}
	return nil
}

// SerializeFrontmatter writes frontmatter as a YAML header followed by content
func SerializeFrontmatter(frontmatter interface{}, content string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(yamlDelimiter)
	buf.WriteString("\n")

	yamlData, err := yaml.Marshal(frontmatter)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}
	buf.Write(yamlData)

	buf.WriteString(yamlDelimiter)
	buf.WriteString("\n")

	if content != "" {
		buf.WriteString(content)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}
