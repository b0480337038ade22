package document

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoPath is returned by Save when the document was not loaded from a file.
var ErrNoPath = errors.New("document has no file path")

// Document is a parsed YAML document: a root section plus the file path it
// was loaded from, if any.
type Document struct {
	*Section
	path string
}

// New creates an empty in-memory document.
func New() *Document {
	return &Document{Section: NewSection()}
}

// Parse builds a document from raw YAML bytes. The top level must be a
// mapping; empty input yields an empty document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return New(), nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing document: top level is not a mapping")
	}
	section, err := sectionFromMapping(top)
	if err != nil {
		return nil, err
	}
	return &Document{Section: section}, nil
}

// Load reads and parses the YAML file at path. The document remembers the
// path so Save can write back to it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// Path returns the file path the document was loaded from, or "".
func (d *Document) Path() string { return d.path }

// Bytes serializes the document to YAML, preserving comments and key order.
func (d *Document) Bytes() ([]byte, error) {
	if d.Section.Len() == 0 {
		return []byte{}, nil
	}
	node, err := mappingNode(d.Section)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return out, nil
}

// Save writes the document back to the file it was loaded from.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.SaveTo(d.path)
}

// SaveTo writes the document to path and remembers it for future saves.
func (d *Document) SaveTo(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	d.path = path
	return nil
}
