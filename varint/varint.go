// Package varint implements the NIBArchive variable-length integer encoding.
//
// A non-negative integer is encoded as a little-endian sequence of one or
// more bytes, each contributing 7 payload bits. The high bit of every byte
// except the last is 0; the last byte has its high bit set to mark the END
// of the integer. This is the opposite convention from the LEB128 scheme
// used by encoding/binary's Uvarint/AppendUvarint (continuation bit set on
// every byte but the last) and from multiformats/go-varint, so neither is
// wire-compatible here and the codec is hand-rolled bit manipulation rather
// than built on a dependency.
//
//	0   -> [0x80]
//	1   -> [0x81]
//	127 -> [0xFF]
//	128 -> [0x00, 0x81]
package varint

import "github.com/matsmattsson/nibsqueeze/errs"

const (
	continueMask = 0x7F
	terminator   = 0x80
)

// SerializedLength returns the number of bytes needed to encode v.
//
// The minimum length is 1 byte, including for v == 0.
func SerializedLength(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}

	return n
}

// Read decodes a VarInt from buf starting at *offset, advancing *offset past
// the terminator byte.
//
// Read fails with errs.ErrInvalidData if the buffer is exhausted before a
// terminator byte is found, or if the accumulated value overflows 64 bits.
func Read(buf []byte, offset *int) (uint64, error) {
	var result uint64
	var shift uint

	pos := *offset
	for {
		if pos >= len(buf) {
			return 0, errs.ErrInvalidData
		}

		b := buf[pos]
		pos++

		if shift >= 64 {
			return 0, errs.ErrInvalidData
		}

		payload := uint64(b & continueMask)
		if shift == 63 && payload > 1 {
			// Only bit 63 is available at this shift; any other payload bit
			// would be silently shifted off the top of a uint64.
			return 0, errs.ErrInvalidData
		}

		result |= payload << shift
		shift += 7

		if b&terminator != 0 {
			*offset = pos

			return result, nil
		}
	}
}

// Write encodes v into buf starting at *offset, advancing *offset past the
// bytes written.
//
// Write fails with errs.ErrInvalidData if buf does not have enough room
// starting at *offset to hold the encoded value.
func Write(buf []byte, offset *int, v uint64) error {
	n := SerializedLength(v)
	if *offset+n > len(buf) {
		return errs.ErrInvalidData
	}

	pos := *offset
	for i := 0; i < n; i++ {
		b := byte(v & continueMask)
		v >>= 7
		if i == n-1 {
			b |= terminator
		}
		buf[pos] = b
		pos++
	}

	*offset = pos

	return nil
}

// Append encodes v and appends it to buf, returning the grown slice.
//
// This mirrors the style of encoding/binary's AppendUvarint for callers
// building up a buffer incrementally rather than writing into a
// pre-sized slice.
func Append(buf []byte, v uint64) []byte {
	n := SerializedLength(v)
	start := len(buf)
	buf = append(buf, make([]byte, n)...)

	for i := 0; i < n; i++ {
		b := byte(v & continueMask)
		v >>= 7
		if i == n-1 {
			b |= terminator
		}
		buf[start+i] = b
	}

	return buf
}
