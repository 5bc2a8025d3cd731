package record

import "hash/crc32"

// Checksum computes the CRC32 checksum of the key-value pair using the IEEE polynomial.
func Checksum(key, value []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(key)
	h.Write(value)
	return h.Sum32()
}

// Validate returns true if the provided checksum matches the computed CRC32 of the key-value pair
func Validate(key, value []byte, checksum uint32) bool {
	return Checksum(key, value) == checksum
}
