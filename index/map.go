package index

// MapIndex is the default Indexer, backed by a Go map.
type MapIndex struct {
	entries map[string]int64
}

func NewMap() *MapIndex {
	return &MapIndex{entries: make(map[string]int64)}
}

func (m *MapIndex) Put(key []byte, offset int64) {
	m.entries[string(key)] = offset
}

func (m *MapIndex) Get(key []byte) (int64, bool) {
	offset, ok := m.entries[string(key)]
	return offset, ok
}

func (m *MapIndex) Delete(key []byte) bool {
	if _, ok := m.entries[string(key)]; !ok {
		return false
	}
	delete(m.entries, string(key))
	return true
}

func (m *MapIndex) Size() int {
	return len(m.entries)
}

func (m *MapIndex) Ascend(fn func(key []byte, offset int64) bool) {
	for k, offset := range m.entries {
		if !fn([]byte(k), offset) {
			return
		}
	}
}

func (m *MapIndex) Clear() {
	m.entries = make(map[string]int64)
}
