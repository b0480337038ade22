package document

import "github.com/yamlkeep/yamlkeep/route"

// Section is an internal block: an ordered mapping of keys to child blocks.
// Child order is insertion order and survives serialization.
type Section struct {
	comments Comments
	keys     []string
	children map[string]Block
}

// NewSection creates an empty section.
func NewSection() *Section {
	return &Section{children: make(map[string]Block)}
}

// Comments returns the section's comments.
func (s *Section) Comments() *Comments { return &s.comments }

// Clone returns a deep copy of the section and all descendants.
func (s *Section) Clone() Block {
	copied := NewSection()
	copied.comments = s.comments.clone()
	for _, key := range s.keys {
		copied.SetChild(key, s.children[key].Clone())
	}
	return copied
}

// Len returns the number of direct children.
func (s *Section) Len() int { return len(s.keys) }

// Keys returns the child keys in insertion order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Child returns the direct child stored under key.
func (s *Section) Child(key string) (Block, bool) {
	b, ok := s.children[key]
	return b, ok
}

// SetChild stores a direct child, appending the key if it is new and keeping
// its position if it already exists.
func (s *Section) SetChild(key string, block Block) {
	if _, ok := s.children[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.children[key] = block
}

// RemoveChild removes and returns the direct child stored under key.
func (s *Section) RemoveChild(key string) (Block, bool) {
	block, ok := s.children[key]
	if !ok {
		return nil, false
	}
	delete(s.children, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return block, true
}

// Get resolves rt relative to this section. The root route resolves to the
// section itself.
func (s *Section) Get(rt route.Route) (Block, bool) {
	if rt.IsRoot() {
		return s, true
	}
	current := s
	for i := 0; i < rt.Len()-1; i++ {
		child, ok := current.children[rt.Key(i)]
		if !ok {
			return nil, false
		}
		section, ok := child.(*Section)
		if !ok {
			return nil, false
		}
		current = section
	}
	block, ok := current.children[rt.Last()]
	return block, ok
}

// Has reports whether rt resolves to a block.
func (s *Section) Has(rt route.Route) bool {
	_, ok := s.Get(rt)
	return ok
}

// GetSection resolves rt to a section.
func (s *Section) GetSection(rt route.Route) (*Section, bool) {
	block, ok := s.Get(rt)
	if !ok {
		return nil, false
	}
	section, ok := block.(*Section)
	return section, ok
}

// GetValue resolves rt to an entry and returns its value.
func (s *Section) GetValue(rt route.Route) (any, bool) {
	block, ok := s.Get(rt)
	if !ok {
		return nil, false
	}
	entry, ok := block.(*Entry)
	if !ok {
		return nil, false
	}
	return entry.Value(), true
}

// GetString resolves rt to an entry holding a string value.
func (s *Section) GetString(rt route.Route) (string, bool) {
	value, ok := s.GetValue(rt)
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

// Set stores block at rt, creating intermediate sections as needed. Any
// non-section block standing in the way is replaced by a fresh section.
func (s *Section) Set(rt route.Route, block Block) {
	current := s
	for i := 0; i < rt.Len()-1; i++ {
		key := rt.Key(i)
		child, ok := current.children[key]
		section, isSection := child.(*Section)
		if !ok || !isSection {
			section = NewSection()
			current.SetChild(key, section)
		}
		current = section
	}
	current.SetChild(rt.Last(), block)
}

// SetValue stores value at rt. An existing entry keeps its comments; a
// missing one is created.
func (s *Section) SetValue(rt route.Route, value any) {
	if block, ok := s.Get(rt); ok {
		if entry, isEntry := block.(*Entry); isEntry {
			entry.SetValue(value)
			return
		}
	}
	s.Set(rt, NewEntry(value))
}

// Remove removes and returns the block at rt. Intermediate sections are left
// in place even when emptied.
func (s *Section) Remove(rt route.Route) (Block, bool) {
	if rt.IsRoot() {
		return nil, false
	}
	parent, ok := s.GetSection(rt.Parent())
	if !ok {
		return nil, false
	}
	return parent.RemoveChild(rt.Last())
}
