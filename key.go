// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import (
	"bytes"

	"github.com/alecthomas/binary"
	"github.com/pkg/errors"
)

// KeyEncoder serializes Go values into keys, for tables keyed by numbers or
// small structs. The buffer is reused, so a key is only valid until the next call,
// which is fine for Insert, Get, Replace and Remove since the table copies keys.
type KeyEncoder struct {
	buf     bytes.Buffer
	encoder *binary.Encoder
}

// NewKeyEncoder returns a ready to use KeyEncoder.
func NewKeyEncoder() *KeyEncoder {
	e := &KeyEncoder{}
	e.encoder = binary.NewEncoder(&e.buf)
	return e
}

// Key encodes v.
func (e *KeyEncoder) Key(v interface{}) ([]byte, error) {
	e.buf.Reset()
	if err := e.encoder.Encode(v); err != nil {
		return nil, errors.Wrapf(err, "KeyEncoder: %T", v)
	}
	return e.buf.Bytes(), nil
}

// MustKey is Key for values that are known to encode, it panics on error.
func (e *KeyEncoder) MustKey(v interface{}) []byte {
	k, err := e.Key(v)
	if err != nil {
		panic(err)
	}
	return k
}
