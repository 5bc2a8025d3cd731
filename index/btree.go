package index

import (
	"bytes"

	"github.com/google/btree"
)

// BTreeIndex keeps entries in key order, which makes Ascend produce
// sorted output. Lookups cost O(log n) instead of the map's O(1).
type BTreeIndex struct {
	tree *btree.BTree
}

type item struct {
	key    []byte
	offset int64
}

func (it *item) Less(other btree.Item) bool {
	return bytes.Compare(it.key, other.(*item).key) == -1
}

func NewBTree() *BTreeIndex {
	return &BTreeIndex{tree: btree.New(32)}
}

func (bt *BTreeIndex) Put(key []byte, offset int64) {
	bt.tree.ReplaceOrInsert(&item{key: bytes.Clone(key), offset: offset})
}

func (bt *BTreeIndex) Get(key []byte) (int64, bool) {
	found := bt.tree.Get(&item{key: key})
	if found == nil {
		return 0, false
	}
	return found.(*item).offset, true
}

func (bt *BTreeIndex) Delete(key []byte) bool {
	return bt.tree.Delete(&item{key: key}) != nil
}

func (bt *BTreeIndex) Size() int {
	return bt.tree.Len()
}

func (bt *BTreeIndex) Ascend(fn func(key []byte, offset int64) bool) {
	bt.tree.Ascend(func(i btree.Item) bool {
		it := i.(*item)
		return fn(it.key, it.offset)
	})
}

func (bt *BTreeIndex) Clear() {
	bt.tree.Clear(false)
}
