package store

import "errors"

var (
	ErrKeyIsEmpty    = errors.New("the key is empty")
	ErrKeyNotFound   = errors.New("key not found in store")
	ErrValueNotFound = errors.New("no record with a matching value")
	ErrStoreClosed   = errors.New("store is closed")
)
