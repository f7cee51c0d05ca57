// Package table provides the read-only lookup table used by the id number
// call sites, and loaders for table files.
package table

// Map is a read-only key to value mapping.
// It satisfies propagate.Getter.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// New creates a Map holding a copy of entries.
func New[K comparable, V any](entries map[K]V) *Map[K, V] {
	m := &Map[K, V]{entries: make(map[K]V, len(entries))}
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

// Get returns the value stored for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// IDs is the table type used for id numbers.
type IDs = Map[uint32, uint32]

// Default returns the built-in id table.
func Default() *IDs {
	return New(map[uint32]uint32{
		41: 76,
		42: 77,
	})
}
