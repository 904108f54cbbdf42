package injector

import "sync"

// table is the mapping table: identifier → Mapping. Identifiers are unique
// within a table; set replaces any prior entry. The same table backs both
// declared mappings and the singleton write-back cache, which keeps a cached
// singleton indistinguishable from a plain value mapping.
type table struct {
	mu      sync.RWMutex
	entries map[string]Mapping
}

func newTable() *table {
	return &table{entries: make(map[string]Mapping)}
}

// exists reports whether an entry is present for id.
func (t *table) exists(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[id]
	return ok
}

// get returns the entry for id, or a [NotFoundError] when absent.
func (t *table) get(id string) (Mapping, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.entries[id]
	if !ok {
		return nil, NotFoundError{Identifier: id}
	}
	return m, nil
}

// lookup is the combined exists+get used on the resolution hot path.
func (t *table) lookup(id string) (Mapping, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.entries[id]
	return m, ok
}

// set inserts or replaces the entry for id.
func (t *table) set(id string, m Mapping) {
	t.mu.Lock()
	t.entries[id] = m
	t.mu.Unlock()
}

// identifiers returns a copy of the table's keys.
func (t *table) identifiers() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.entries))
	for id := range t.entries {
		out = append(out, id)
	}
	return out
}
