package record

import (
	"github.com/matsmattsson/nibsqueeze/errs"
	"github.com/matsmattsson/nibsqueeze/varint"
)

// Object is a single entry in the objects table: an index into the
// class-names table plus a (offset, count) window into the values table.
type Object struct {
	ClassNameIndex uint32
	ValuesOffset   uint32
	ValuesCount    uint32
}

// EncodedLen returns the number of bytes o occupies on the wire.
func (o Object) EncodedLen() int {
	return varint.SerializedLength(uint64(o.ClassNameIndex)) +
		varint.SerializedLength(uint64(o.ValuesOffset)) +
		varint.SerializedLength(uint64(o.ValuesCount))
}

// AppendTo appends the wire encoding of o to buf and returns the grown
// slice.
func (o Object) AppendTo(buf []byte) []byte {
	buf = varint.Append(buf, uint64(o.ClassNameIndex))
	buf = varint.Append(buf, uint64(o.ValuesOffset))
	buf = varint.Append(buf, uint64(o.ValuesCount))

	return buf
}

// ParseObject reads an Object record from buf starting at *offset.
func ParseObject(buf []byte, offset *int) (Object, error) {
	classNameIndex, err := varint.Read(buf, offset)
	if err != nil {
		return Object{}, errs.ErrObjectReadClassNameIndex
	}

	valuesOffset, err := varint.Read(buf, offset)
	if err != nil {
		return Object{}, errs.ErrObjectReadValuesOffset
	}

	valuesCount, err := varint.Read(buf, offset)
	if err != nil {
		return Object{}, errs.ErrObjectReadValuesCount
	}

	if classNameIndex > maxUint32 || valuesOffset > maxUint32 || valuesCount > maxUint32 {
		return Object{}, errs.ErrInvalidData
	}

	return Object{
		ClassNameIndex: uint32(classNameIndex),
		ValuesOffset:   uint32(valuesOffset),
		ValuesCount:    uint32(valuesCount),
	}, nil
}

const maxUint32 = 1<<32 - 1
