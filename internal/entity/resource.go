package entity

// Resource is the ordered sequence of entries of one parsed localization
// document. Insertion order matches the source document and is preserved;
// it defines the order in which comparison results are reported.
//
// A Resource may contain several entities with the same key. Lookup always
// answers with the first occurrence; duplicate detection is left to the
// consumer, which needs the later positions anyway.
type Resource struct {
	Path    string
	Entries []Entry

	index map[string]*Entity
}

// NewResource builds a Resource and its first-wins key index.
func NewResource(path string, entries []Entry) *Resource {
	r := &Resource{
		Path:    path,
		Entries: entries,
		index:   make(map[string]*Entity),
	}
	for _, en := range entries {
		if e, ok := en.(*Entity); ok {
			if _, seen := r.index[e.Key]; !seen {
				r.index[e.Key] = e
			}
		}
	}
	return r
}

// Lookup returns the first entity with the given key.
func (r *Resource) Lookup(key string) (*Entity, bool) {
	e, ok := r.index[key]
	return e, ok
}

// Entities returns the translatable entries in document order, skipping
// comments and junk.
func (r *Resource) Entities() []*Entity {
	out := make([]*Entity, 0, len(r.index))
	for _, en := range r.Entries {
		if e, ok := en.(*Entity); ok {
			out = append(out, e)
		}
	}
	return out
}
