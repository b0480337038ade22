// Package document provides the comment-carrying document tree the updater
// operates on, together with a yaml.v3 bridge that loads and saves trees
// without losing comments or key order.
package document

// Comments holds the comment text attached to a block. Comments belong to
// exactly one block; cloning a block copies them.
type Comments struct {
	// Before holds the comment lines preceding the block.
	Before []string
	// Inline is the comment on the same line as the block's key or value.
	Inline string
	// After holds the comment lines following the block.
	After []string
}

func (c Comments) clone() Comments {
	copied := Comments{Inline: c.Inline}
	if len(c.Before) > 0 {
		copied.Before = append([]string(nil), c.Before...)
	}
	if len(c.After) > 0 {
		copied.After = append([]string(nil), c.After...)
	}
	return copied
}

// Block is a node in the document tree: either an Entry (leaf value) or a
// Section (ordered mapping of child blocks). Every block carries its own
// comments.
type Block interface {
	// Comments returns the block's comments for reading or mutation.
	Comments() *Comments
	// Clone returns a deep copy with no aliasing of values or comments.
	Clone() Block
}

// Entry is a leaf block holding a scalar or sequence value.
type Entry struct {
	comments Comments
	value    any
}

// NewEntry creates an entry holding the given value.
func NewEntry(value any) *Entry {
	return &Entry{value: value}
}

// Comments returns the entry's comments.
func (e *Entry) Comments() *Comments { return &e.comments }

// Value returns the stored value.
func (e *Entry) Value() any { return e.value }

// SetValue replaces the stored value, keeping the entry's comments.
func (e *Entry) SetValue(value any) { e.value = value }

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() Block {
	return &Entry{comments: e.comments.clone(), value: cloneValue(e.value)}
}

// cloneValue deep-copies decoded YAML values: scalars are returned as-is,
// sequences and nested mappings are copied recursively.
func cloneValue(value any) any {
	switch v := value.(type) {
	case []any:
		copied := make([]any, len(v))
		for i, item := range v {
			copied[i] = cloneValue(item)
		}
		return copied
	case map[string]any:
		copied := make(map[string]any, len(v))
		for k, item := range v {
			copied[k] = cloneValue(item)
		}
		return copied
	default:
		return value
	}
}
