package index

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexer_PutGetDelete(t *testing.T) {
	for _, typ := range []IndexType{Map, BTree} {
		t.Run(fmt.Sprintf("type-%d", typ), func(t *testing.T) {
			idx := NewIndexer(typ)

			_, ok := idx.Get([]byte("missing"))
			assert.False(t, ok)

			idx.Put([]byte("a"), 0)
			idx.Put([]byte("b"), 17)

			offset, ok := idx.Get([]byte("a"))
			assert.True(t, ok)
			assert.Equal(t, int64(0), offset)

			// later puts win
			idx.Put([]byte("a"), 42)
			offset, ok = idx.Get([]byte("a"))
			assert.True(t, ok)
			assert.Equal(t, int64(42), offset)
			assert.Equal(t, 2, idx.Size())

			assert.True(t, idx.Delete([]byte("a")))
			assert.False(t, idx.Delete([]byte("a")))
			_, ok = idx.Get([]byte("a"))
			assert.False(t, ok)
			assert.Equal(t, 1, idx.Size())
		})
	}
}

func TestIndexer_Clear(t *testing.T) {
	for _, typ := range []IndexType{Map, BTree} {
		t.Run(fmt.Sprintf("type-%d", typ), func(t *testing.T) {
			idx := NewIndexer(typ)
			for i := 0; i < 10; i++ {
				idx.Put([]byte(fmt.Sprintf("key-%d", i)), int64(i))
			}
			assert.Equal(t, 10, idx.Size())

			idx.Clear()
			assert.Equal(t, 0, idx.Size())
			_, ok := idx.Get([]byte("key-3"))
			assert.False(t, ok)
		})
	}
}

func TestBTreeIndex_AscendIsSorted(t *testing.T) {
	idx := NewBTree()
	idx.Put([]byte("carrot"), 2)
	idx.Put([]byte("apple"), 0)
	idx.Put([]byte("banana"), 1)

	var keys []string
	idx.Ascend(func(key []byte, offset int64) bool {
		keys = append(keys, string(key))
		return true
	})

	assert.Equal(t, []string{"apple", "banana", "carrot"}, keys)
}

func TestIndexer_AscendEarlyStop(t *testing.T) {
	for _, typ := range []IndexType{Map, BTree} {
		t.Run(fmt.Sprintf("type-%d", typ), func(t *testing.T) {
			idx := NewIndexer(typ)
			for i := 0; i < 5; i++ {
				idx.Put([]byte(fmt.Sprintf("key-%d", i)), int64(i))
			}

			visited := 0
			idx.Ascend(func(key []byte, offset int64) bool {
				visited++
				return visited < 2
			})
			assert.Equal(t, 2, visited)
		})
	}
}

func TestBTreeIndex_PutCopiesKey(t *testing.T) {
	idx := NewBTree()
	key := []byte("mutable")
	idx.Put(key, 7)

	key[0] = 'X'

	offset, ok := idx.Get([]byte("mutable"))
	assert.True(t, ok)
	assert.Equal(t, int64(7), offset)
}
