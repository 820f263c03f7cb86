package record

import (
	"github.com/matsmattsson/nibsqueeze/errs"
	"github.com/matsmattsson/nibsqueeze/varint"
)

// Key is a single entry in the keys table: a non-empty, opaque byte-string
// addressed by its index in the table. The format does not require keys to
// be unique.
type Key struct {
	Name []byte
}

// NewKey constructs a Key from raw bytes, rejecting an empty name since the
// format requires keys to be non-empty.
func NewKey(name []byte) (Key, error) {
	if len(name) == 0 {
		return Key{}, errs.ErrKeyInvalidClass
	}

	return Key{Name: name}, nil
}

// EncodedLen returns the number of bytes Key occupies on the wire.
func (k Key) EncodedLen() int {
	return varint.SerializedLength(uint64(len(k.Name))) + len(k.Name)
}

// AppendTo appends the wire encoding of k to buf and returns the grown slice.
func (k Key) AppendTo(buf []byte) []byte {
	buf = varint.Append(buf, uint64(len(k.Name)))
	buf = append(buf, k.Name...)

	return buf
}

// ParseKey reads a Key record from buf starting at *offset.
func ParseKey(buf []byte, offset *int) (Key, error) {
	length, err := varint.Read(buf, offset)
	if err != nil {
		return Key{}, errs.ErrInvalidData
	}

	end := *offset + int(length)
	if end < *offset || end > len(buf) {
		return Key{}, errs.ErrInvalidData
	}

	name := buf[*offset:end]
	*offset = end

	return Key{Name: name}, nil
}
