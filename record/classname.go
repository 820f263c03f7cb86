package record

import (
	"bytes"
	"encoding/binary"

	"github.com/matsmattsson/nibsqueeze/errs"
	"github.com/matsmattsson/nibsqueeze/varint"
)

// ClassName is a single entry in the class-names table: a name string and
// an ordered, possibly-empty list of fallback class indices whose
// interpretation is opaque to the codec.
//
// Name excludes the NUL terminator that is present on the wire; the
// terminator is accounted for in the encoded length but never exposed.
type ClassName struct {
	Name                 []byte
	FallbackClassIndices []uint32
}

// NewClassName constructs a ClassName, rejecting a name containing an
// embedded NUL byte since that cannot round-trip through the NUL-terminated
// wire representation.
func NewClassName(name []byte, fallback []uint32) (ClassName, error) {
	if bytes.IndexByte(name, 0x00) != -1 {
		return ClassName{}, errs.ErrObjectInvalidClass
	}

	return ClassName{Name: name, FallbackClassIndices: fallback}, nil
}

// EncodedLen returns the number of bytes c occupies on the wire.
func (c ClassName) EncodedLen() int {
	nameLen := len(c.Name) + 1 // + NUL terminator
	n := varint.SerializedLength(uint64(nameLen))
	n += varint.SerializedLength(uint64(len(c.FallbackClassIndices)))
	n += 4 * len(c.FallbackClassIndices)
	n += nameLen

	return n
}

// AppendTo appends the wire encoding of c to buf and returns the grown
// slice.
func (c ClassName) AppendTo(buf []byte) []byte {
	nameLen := len(c.Name) + 1
	buf = varint.Append(buf, uint64(nameLen))
	buf = varint.Append(buf, uint64(len(c.FallbackClassIndices)))

	for _, idx := range c.FallbackClassIndices {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], idx)
		buf = append(buf, b[:]...)
	}

	buf = append(buf, c.Name...)
	buf = append(buf, 0x00)

	return buf
}

// ParseClassName reads a ClassName record from buf starting at *offset.
func ParseClassName(buf []byte, offset *int) (ClassName, error) {
	nameLen, err := varint.Read(buf, offset)
	if err != nil {
		return ClassName{}, errs.ErrInvalidData
	}
	if nameLen == 0 {
		return ClassName{}, errs.ErrInvalidData
	}

	fallbackCount, err := varint.Read(buf, offset)
	if err != nil {
		return ClassName{}, errs.ErrInvalidData
	}

	fallbackEnd := *offset + int(fallbackCount)*4
	if fallbackEnd < *offset || fallbackEnd > len(buf) {
		return ClassName{}, errs.ErrInvalidData
	}

	var fallback []uint32
	if fallbackCount > 0 {
		fallback = make([]uint32, fallbackCount)
		for i := range fallback {
			start := *offset + i*4
			fallback[i] = binary.LittleEndian.Uint32(buf[start : start+4])
		}
	}
	*offset = fallbackEnd

	nameEnd := *offset + int(nameLen)
	if nameEnd < *offset || nameEnd > len(buf) {
		return ClassName{}, errs.ErrInvalidData
	}

	raw := buf[*offset:nameEnd]
	if raw[len(raw)-1] != 0x00 {
		return ClassName{}, errs.ErrInvalidData
	}
	*offset = nameEnd

	return ClassName{Name: raw[:len(raw)-1], FallbackClassIndices: fallback}, nil
}
