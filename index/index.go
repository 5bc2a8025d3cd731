package index

// Indexer is the in-memory mapping from key to the byte offset of the
// key's most recently appended record.
//
// An Indexer is a strictly derived cache: it holds no durable state,
// starts empty, and is populated only by replaying the log or by
// successful appends. Implementations are not safe for concurrent use;
// the store serializes access to them.
type Indexer interface {
	// Put stores the offset for key, overwriting any prior offset.
	Put(key []byte, offset int64)

	// Get returns the offset recorded for key.
	Get(key []byte) (int64, bool)

	// Delete removes key from the index and reports whether it was present.
	Delete(key []byte) bool

	// Size returns the number of indexed keys.
	Size() int

	// Ascend visits entries until fn returns false. MapIndex visits in
	// arbitrary order, BTreeIndex in ascending key order.
	Ascend(fn func(key []byte, offset int64) bool)

	// Clear discards every entry.
	Clear()
}

type IndexType = int8

const (
	// Map is a plain hash map, the default
	Map IndexType = iota + 1

	// BTree keeps keys ordered for sorted iteration
	BTree
)

// NewIndexer initializes an index of the given type.
func NewIndexer(typ IndexType) Indexer {
	switch typ {
	case Map:
		return NewMap()
	case BTree:
		return NewBTree()
	default:
		panic("unsupported index type")
	}
}
