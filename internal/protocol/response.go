package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"net"
)

// Status classifies a server response.
type Status uint8

const (
	StatusOK       Status = iota // payload is the result (may be empty)
	StatusNotFound               // no matching key or value
	StatusErr                    // payload is an error message
)

// EncodeResponse serializes a server response into its wire format:
//
//	<status:uint8><payload_len:uint32><payload>
//
// The length field is encoded using big-endian byte order. The payload
// is raw bytes, so binary values survive the wire unchanged.
func EncodeResponse(status Status, payload []byte) ([]byte, error) {
	buf := &bytes.Buffer{}

	buf.WriteByte(byte(status))
	if err := binary.Write(buf, binary.BigEndian, uint32(len(payload))); err != nil {
		return nil, err
	}

	buf.Write(payload)

	return buf.Bytes(), nil
}

// DecodeResponse reads and decodes a response from a TCP connection.
// It blocks until the full response has been read or an error occurs.
func DecodeResponse(conn net.Conn) (Status, []byte, error) {
	var status uint8
	var payloadLen uint32

	if err := binary.Read(conn, binary.BigEndian, &status); err != nil {
		return 0, nil, err
	}
	if err := binary.Read(conn, binary.BigEndian, &payloadLen); err != nil {
		return 0, nil, err
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(conn, payload); err != nil {
		return 0, nil, err
	}

	return Status(status), payload, nil
}

// EncodeKeyList serializes a list of keys as a big-endian uint32 count
// followed by a length-prefixed entry per key. Keys are raw bytes and
// may contain any byte value.
func EncodeKeyList(keys [][]byte) ([]byte, error) {
	buf := &bytes.Buffer{}

	if err := binary.Write(buf, binary.BigEndian, uint32(len(keys))); err != nil {
		return nil, err
	}
	for _, key := range keys {
		if err := binary.Write(buf, binary.BigEndian, uint32(len(key))); err != nil {
			return nil, err
		}
		buf.Write(key)
	}

	return buf.Bytes(), nil
}

// DecodeKeyList parses a payload produced by EncodeKeyList.
func DecodeKeyList(data []byte) ([][]byte, error) {
	r := bytes.NewReader(data)

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("invalid key list: %w", err)
	}

	keys := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		var keyLen uint32
		if err := binary.Read(r, binary.BigEndian, &keyLen); err != nil {
			return nil, fmt.Errorf("invalid key list entry %d: %w", i, err)
		}
		key := make([]byte, keyLen)
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, fmt.Errorf("invalid key list entry %d: %w", i, err)
		}
		keys = append(keys, key)
	}

	return keys, nil
}
