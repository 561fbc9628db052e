package tags

import "sort"

// Set is a collection of distinct tag entries. Entries collapse only when
// they are Equal.
type Set struct {
	entries map[string]TagEntry
}

// NewSet creates a set holding the given entries.
func NewSet(entries ...TagEntry) *Set {
	s := &Set{entries: make(map[string]TagEntry, len(entries))}
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// Add inserts the entry and reports whether it was not already present.
func (s *Set) Add(entry TagEntry) bool {
	key := entry.Key()
	if _, exists := s.entries[key]; exists {
		return false
	}
	s.entries[key] = entry
	return true
}

// Contains reports whether an equal entry is in the set.
func (s *Set) Contains(entry TagEntry) bool {
	_, ok := s.entries[entry.Key()]
	return ok
}

// Len returns the number of distinct entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns the entries ordered by their encoded form, then by key.
func (s *Set) Entries() []TagEntry {
	type sortable struct {
		line, key string
		entry     TagEntry
	}
	items := make([]sortable, 0, len(s.entries))
	for k, e := range s.entries {
		items = append(items, sortable{line: e.Encode(), key: k, entry: e})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].line != items[j].line {
			return items[i].line < items[j].line
		}
		return items[i].key < items[j].key
	})

	out := make([]TagEntry, 0, len(items))
	for _, it := range items {
		out = append(out, it.entry)
	}
	return out
}

// Equal reports whether both sets hold the same entries.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k := range s.entries {
		if _, ok := other.entries[k]; !ok {
			return false
		}
	}
	return true
}
