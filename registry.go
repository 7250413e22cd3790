package rct

import (
	"fmt"
	"sort"
)

// Registry is an immutable two-index lookup of ObjectInfo entries, by
// numeric id and by name. Both indexes are populated at construction and
// never mutated, so a Registry is safe to share across goroutines.
type Registry struct {
	byID   map[uint32]*ObjectInfo
	byName map[string]*ObjectInfo
}

// NewRegistry builds a registry from the given entries. Construction fails
// on a duplicate id or name; a lookup must never be ambiguous.
func NewRegistry(entries ...*ObjectInfo) (*Registry, error) {
	r := &Registry{
		byID:   make(map[uint32]*ObjectInfo, len(entries)),
		byName: make(map[string]*ObjectInfo, len(entries)),
	}
	for _, entry := range entries {
		if dup, ok := r.byID[entry.ObjectID]; ok {
			return nil, fmt.Errorf("duplicate object id 0x%08X (%q and %q)",
				entry.ObjectID, dup.Name, entry.Name)
		}
		if _, ok := r.byName[entry.Name]; ok {
			return nil, fmt.Errorf("duplicate object name %q", entry.Name)
		}
		r.byID[entry.ObjectID] = entry
		r.byName[entry.Name] = entry
	}
	return r, nil
}

// ByID looks an entry up by object id.
func (r *Registry) ByID(id uint32) (*ObjectInfo, error) {
	entry, ok := r.byID[id]
	if !ok {
		return nil, &LookupError{ID: id}
	}
	return entry, nil
}

// ByName looks an entry up by its dotted-path name.
func (r *Registry) ByName(name string) (*ObjectInfo, error) {
	entry, ok := r.byName[name]
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return entry, nil
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.byID)
}

// All returns the entries ordered by object id.
func (r *Registry) All() []*ObjectInfo {
	entries := make([]*ObjectInfo, 0, len(r.byID))
	for _, entry := range r.byID {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ObjectID < entries[j].ObjectID
	})
	return entries
}
