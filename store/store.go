// Package store implements a minimal log-structured key/value store.
//
// All data lives in a single append-only file holding a sequence of
// length-prefixed, checksummed records. An in-memory index maps each
// key to the byte offset of its most recently appended record, so a
// lookup is one seek plus one read. The file is the sole source of
// truth; the index is a derived cache rebuilt by replaying the log.
//
// Every mutation is an append. Overwritten and deleted records remain
// in the file forever: there is no compaction, and a delete is a
// record with a zero-length value (a tombstone), which Get reports as
// an empty value rather than an absent key.
//
// A Store owns its file handle exclusively and serializes its own
// operations; opening the same file from several processes is unsafe.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/actionlog/go-actionkv/index"
	"github.com/actionlog/go-actionkv/internal/record"
)

type Store struct {
	mu          sync.Mutex
	f           *os.File
	path        string
	offset      int64 // current end-of-file, next append position
	idx         index.Indexer
	syncOnWrite bool
	closed      bool
}

type Option func(*Store)

// WithIndex selects the index implementation backing the store.
// The default is index.Map.
func WithIndex(typ index.IndexType) Option {
	return func(s *Store) {
		s.idx = index.NewIndexer(typ)
	}
}

// WithSyncOnWrite makes every append fsync before returning.
func WithSyncOnWrite() Option {
	return func(s *Store) {
		s.syncOnWrite = true
	}
}

// Open opens the log file at path, creating it if absent. An existing
// file is never truncated. The returned store has an empty index; call
// Load before issuing lookups.
func Open(path string, opts ...Option) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	// Appends always land at end-of-file (O_APPEND); the tracked
	// offset only tells us where the next record will start.
	offset, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return nil, err
	}

	s := &Store{
		f:      f,
		path:   path,
		offset: offset,
		idx:    index.NewIndexer(index.Map),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Load rebuilds the index by replaying the log from offset 0. Later
// records for the same key win, so after a full replay each key maps
// to its most recent record.
//
// Load fails as a whole on corruption, truncation, or I/O error; the
// partially built index is discarded so the store never serves a
// partial view. An empty file loads successfully with an empty index.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	s.idx.Clear()

	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	r := bufio.NewReader(s.f)
	var offset int64

	for {
		rec, err := record.Read(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.idx.Clear()
			return fmt.Errorf("replaying log at offset %d: %w", offset, err)
		}

		s.idx.Put(rec.Key, offset)
		offset += record.Size(len(rec.Key), len(rec.Value))
	}

	s.offset = offset
	return nil
}

// Get returns the value of the most recent record for key, re-read
// from disk and checksum-verified on every call. A missing key yields
// ErrKeyNotFound. A key that was deleted yields an empty, non-nil
// value: tombstones are indistinguishable from empty values.
func (s *Store) Get(key []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if len(key) == 0 {
		return nil, ErrKeyIsEmpty
	}

	offset, ok := s.idx.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	rec, err := s.readAt(offset)
	if err != nil {
		return nil, err
	}

	return rec.Value, nil
}

// Insert appends a record for the key-value pair and repoints the
// index at it. This is the only mutation path: updates and deletes
// are both expressed through it.
func (s *Store) Insert(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if len(key) == 0 {
		return ErrKeyIsEmpty
	}

	encoded, err := record.Encode(key, value)
	if err != nil {
		return err
	}

	offset := s.offset
	n, err := s.f.Write(encoded)
	if err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	s.offset += int64(n)

	if s.syncOnWrite {
		if err := s.f.Sync(); err != nil {
			return err
		}
	}

	s.idx.Put(key, offset)
	return nil
}

// Update is Insert: every write is an append plus an index repoint.
func (s *Store) Update(key, value []byte) error {
	return s.Insert(key, value)
}

// Delete appends a tombstone, a record with a zero-length value. The
// index keeps pointing at it, so a subsequent Get returns an empty
// value rather than ErrKeyNotFound.
func (s *Store) Delete(key []byte) error {
	return s.Insert(key, nil)
}

// Find scans the whole log from offset 0 and returns the most recent
// record whose value equals target, or ErrValueNotFound if no record
// matches. Later records shadow earlier ones, the same recency rule
// the index applies to keys.
func (s *Store) Find(target []byte) (*record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	r := bufio.NewReader(s.f)
	var found *record.Record
	var offset int64

	for {
		rec, err := record.Read(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scanning log at offset %d: %w", offset, err)
		}

		offset += record.Size(len(rec.Key), len(rec.Value))
		if bytes.Equal(rec.Value, target) {
			found = rec
		}
	}

	if found == nil {
		return nil, ErrValueNotFound
	}
	return found, nil
}

// Offset returns the byte offset of the most recent record for key.
// Exposed for diagnostics and tests.
func (s *Store) Offset(key []byte) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Get(key)
}

// Keys returns every indexed key, deleted keys included (their index
// entries point at tombstones). With a B-tree index the keys come back
// in ascending order.
func (s *Store) Keys() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([][]byte, 0, s.idx.Size())
	s.idx.Ascend(func(key []byte, offset int64) bool {
		keys = append(keys, bytes.Clone(key))
		return true
	})
	return keys
}

// Len returns the number of indexed keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Size()
}

// Path returns the path of the backing log file.
func (s *Store) Path() string {
	return s.path
}

// Sync flushes the log file to stable storage.
func (s *Store) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	return s.f.Sync()
}

// Close syncs and closes the backing file. Every operation after
// Close returns ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.f.Sync(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// readAt decodes the record starting at offset. An end-of-file hit at
// an indexed offset means the file shrank under us, which is reported
// as truncation, not as a clean end-of-log.
func (s *Store) readAt(offset int64) (*record.Record, error) {
	sr := io.NewSectionReader(s.f, offset, math.MaxInt64-offset)

	rec, err := record.Read(sr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading record at offset %d: %w", offset, record.ErrTruncated)
		}
		return nil, fmt.Errorf("reading record at offset %d: %w", offset, err)
	}
	return rec, nil
}
