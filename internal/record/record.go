package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Record is a single key-value entry in the on-disk form used by the log:
// a fixed header followed by the raw key and value bytes.
type Record struct {
	Checksum uint32 // CRC32 of Key followed by Value
	Key      []byte
	Value    []byte
}

// Checksum (4) + KeySize (4) + ValueSize (4)
const HeaderSize = 12

// ErrTruncated reports a stream that ended partway through a record,
// either inside the header or inside the key/value payload. It is
// distinct from a clean end of the log, which Read reports as io.EOF.
var ErrTruncated = errors.New("record truncated")

// CorruptError reports a fully read record whose stored checksum does
// not match the checksum computed over its key and value bytes.
type CorruptError struct {
	Stored   uint32
	Computed uint32
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("record corrupted: checksum %08x stored, %08x computed", e.Stored, e.Computed)
}

// Encode serializes a key-value pair into its on-disk form.
//
// The layout is:
//
//	<checksum:uint32><key_size:uint32><value_size:uint32><key><value>
//
// All header fields are encoded using little-endian byte order. There
// is no alignment or padding, and no record-level terminator; the
// header sizes alone delimit the record.
func Encode(key, value []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(int(Size(len(key), len(value))))

	if err := binary.Write(buf, binary.LittleEndian, Checksum(key, value)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(key))); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(value))); err != nil {
		return nil, err
	}
	if _, err := buf.Write(key); err != nil {
		return nil, err
	}
	if _, err := buf.Write(value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Read decodes the next record from r and verifies its checksum.
//
// If r is exhausted before any header byte is read, Read returns
// io.EOF: the caller has reached a clean end of the log. If r ends
// inside the header or inside the payload, Read returns an error
// wrapping ErrTruncated. If the stored checksum does not match the
// checksum computed over the key and value, Read returns a
// *CorruptError carrying both values; the read position is unusable
// after that and callers must not attempt to resynchronize.
func Read(r io.Reader) (*Record, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: stream ended inside header", ErrTruncated)
		}
		return nil, err
	}

	stored := binary.LittleEndian.Uint32(header[0:4])
	keySize := binary.LittleEndian.Uint32(header[4:8])
	valueSize := binary.LittleEndian.Uint32(header[8:12])

	data := make([]byte, int(keySize)+int(valueSize))
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: stream ended inside payload", ErrTruncated)
		}
		return nil, err
	}

	key := data[:keySize:keySize]
	value := data[keySize:]

	if !Validate(key, value, stored) {
		return nil, &CorruptError{Stored: stored, Computed: Checksum(key, value)}
	}

	return &Record{
		Checksum: stored,
		Key:      key,
		Value:    value,
	}, nil
}

// Size returns the number of bytes a record with the given key and
// value lengths occupies on disk.
func Size(keySize, valueSize int) int64 {
	return int64(HeaderSize + keySize + valueSize)
}
