package record

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/matsmattsson/nibsqueeze/errs"
	"github.com/matsmattsson/nibsqueeze/valuetype"
	"github.com/matsmattsson/nibsqueeze/varint"
)

// Value is a single entry in the values table: a scalar payload tagged with
// a type and tied to a key by index.
//
// Payload is always the raw on-wire bytes for the type (little-endian for
// the fixed-width numeric types, the 4-byte little-endian object index for
// ObjectReference, empty for True/False/Nil, and the raw content bytes for
// Data). Accessors below decode Payload into a Go-native type; they panic if
// called against a mismatched Type, mirroring how a type switch over a
// wrongly-asserted interface would behave — callers are expected to check
// Type first, exactly as they must check a type discriminator before
// decoding a payload in any tagged-union wire format.
type Value struct {
	KeyIndex uint32
	Type     valuetype.Type
	Payload  []byte
}

// NewValue constructs a Value of typ with the given raw payload, validating
// that the payload length matches what typ requires. Data accepts any
// length; fixed-width types require an exact match.
func NewValue(payload []byte, typ valuetype.Type, keyIndex uint32) (Value, error) {
	if !typ.Valid() {
		return Value{}, errs.ErrObjectInvalidClass
	}

	if typ == valuetype.Data {
		return Value{KeyIndex: keyIndex, Type: typ, Payload: payload}, nil
	}

	want, _ := typ.FixedPayloadLen()
	if len(payload) != want {
		return Value{}, errs.ErrObjectInvalidClass
	}

	return Value{KeyIndex: keyIndex, Type: typ, Payload: payload}, nil
}

// NewObjectReferenceValue constructs a Value of type ObjectReference
// pointing at the object with index ref.
func NewObjectReferenceValue(ref uint32, keyIndex uint32) Value {
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint32(payload, ref)

	return Value{KeyIndex: keyIndex, Type: valuetype.ObjectReference, Payload: payload}
}

// NewDataValue constructs a Value of type Data wrapping the given bytes
// verbatim.
func NewDataValue(data []byte, keyIndex uint32) Value {
	return Value{KeyIndex: keyIndex, Type: valuetype.Data, Payload: data}
}

// NewBoolValue constructs a Value of type True or False.
func NewBoolValue(b bool, keyIndex uint32) Value {
	typ := valuetype.False
	if b {
		typ = valuetype.True
	}

	return Value{KeyIndex: keyIndex, Type: typ, Payload: nil}
}

// NewNilValue constructs a Value of type Nil.
func NewNilValue(keyIndex uint32) Value {
	return Value{KeyIndex: keyIndex, Type: valuetype.Nil, Payload: nil}
}

// AsUint64 decodes a UInt8/UInt16/UInt32/UInt64 payload as a uint64.
func (v Value) AsUint64() uint64 {
	switch v.Type {
	case valuetype.UInt8:
		return uint64(v.Payload[0])
	case valuetype.UInt16:
		return uint64(binary.LittleEndian.Uint16(v.Payload))
	case valuetype.UInt32:
		return uint64(binary.LittleEndian.Uint32(v.Payload))
	case valuetype.UInt64:
		return binary.LittleEndian.Uint64(v.Payload)
	default:
		panic("record: AsUint64 called on non-integer Value")
	}
}

// AsFloat32 decodes a Float payload.
func (v Value) AsFloat32() float32 {
	if v.Type != valuetype.Float {
		panic("record: AsFloat32 called on non-Float Value")
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(v.Payload))
}

// AsFloat64 decodes a Double payload.
func (v Value) AsFloat64() float64 {
	if v.Type != valuetype.Double {
		panic("record: AsFloat64 called on non-Double Value")
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(v.Payload))
}

// AsObjectReference decodes an ObjectReference payload into an object table
// index.
func (v Value) AsObjectReference() uint32 {
	if v.Type != valuetype.ObjectReference {
		panic("record: AsObjectReference called on non-ObjectReference Value")
	}

	return binary.LittleEndian.Uint32(v.Payload)
}

// AsBool reports the boolean value of a True/False Value.
func (v Value) AsBool() bool {
	switch v.Type {
	case valuetype.True:
		return true
	case valuetype.False:
		return false
	default:
		panic("record: AsBool called on non-boolean Value")
	}
}

// AsData returns the raw bytes of a Data Value.
func (v Value) AsData() []byte {
	if v.Type != valuetype.Data {
		panic("record: AsData called on non-Data Value")
	}

	return v.Payload
}

// Equal reports whether v and other carry the same (keyIndex, type, payload)
// triple, per the format's equality contract.
func (v Value) Equal(other Value) bool {
	return v.KeyIndex == other.KeyIndex &&
		v.Type == other.Type &&
		bytes.Equal(v.Payload, other.Payload)
}

// Hash returns a deterministic 64-bit hash over (keyIndex, type, payload),
// consistent with Equal: equal Values always hash equally.
func (v Value) Hash() uint64 {
	var h xxhash.Digest
	h.Reset()

	var head [5]byte
	binary.LittleEndian.PutUint32(head[0:4], v.KeyIndex)
	head[4] = byte(v.Type)

	_, _ = h.Write(head[:])
	_, _ = h.Write(v.Payload)

	return h.Sum64()
}

// EncodedLen returns the number of bytes v occupies on the wire.
func (v Value) EncodedLen() int {
	n := varint.SerializedLength(uint64(v.KeyIndex)) + 1
	if v.Type == valuetype.Data {
		n += varint.SerializedLength(uint64(len(v.Payload))) + len(v.Payload)
	} else {
		n += len(v.Payload)
	}

	return n
}

// AppendTo appends the wire encoding of v to buf and returns the grown
// slice.
func (v Value) AppendTo(buf []byte) []byte {
	buf = varint.Append(buf, uint64(v.KeyIndex))
	buf = append(buf, byte(v.Type))

	if v.Type == valuetype.Data {
		buf = varint.Append(buf, uint64(len(v.Payload)))
	}

	return append(buf, v.Payload...)
}

// ParseValue reads a Value record from buf starting at *offset.
//
// ParseValue only validates the shape of the record (that the type byte is
// one of the eleven defined types and that enough bytes remain for its
// payload); cross-table validation of KeyIndex and, for ObjectReference
// values, the referenced object index, is the Decoder's responsibility.
func ParseValue(buf []byte, offset *int) (Value, error) {
	keyIndex, err := varint.Read(buf, offset)
	if err != nil {
		return Value{}, errs.ErrValueReadKeyIndex
	}
	if keyIndex > math.MaxUint32 {
		return Value{}, errs.ErrValueReadKeyIndex
	}

	if *offset >= len(buf) {
		return Value{}, errs.ErrValueReadType
	}

	typ := valuetype.Type(buf[*offset])
	*offset++

	if !typ.Valid() {
		return Value{}, errs.ErrValueReadType
	}

	var payloadLen int
	if typ == valuetype.Data {
		length, err := varint.Read(buf, offset)
		if err != nil {
			return Value{}, errs.ErrInvalidData
		}
		payloadLen = int(length)
	} else {
		payloadLen, _ = typ.FixedPayloadLen()
	}

	end := *offset + payloadLen
	if end < *offset || end > len(buf) {
		return Value{}, errs.ErrInvalidData
	}

	// A zero-length payload decodes as nil, matching the constructors, so a
	// decoded Value compares equal to the one it was encoded from.
	var payload []byte
	if payloadLen > 0 {
		payload = buf[*offset:end]
	}
	*offset = end

	return Value{KeyIndex: uint32(keyIndex), Type: typ, Payload: payload}, nil
}
