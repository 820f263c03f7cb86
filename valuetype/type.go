// Package valuetype defines the NIBArchive value-type discriminator.
package valuetype

// Type is the single-byte tag that identifies how a Value's payload is
// encoded on the wire. The numeric values match the original format exactly
// (0..10); any other byte read from a stream is not a valid Type.
type Type uint8

const (
	UInt8           Type = 0
	UInt16          Type = 1
	UInt32          Type = 2
	UInt64          Type = 3
	True            Type = 4
	False           Type = 5
	Float           Type = 6
	Double          Type = 7
	Data            Type = 8
	Nil             Type = 9
	ObjectReference Type = 10
)

// maxType is the largest valid Type value.
const maxType = ObjectReference

// Valid reports whether t is one of the eleven defined value types.
func (t Type) Valid() bool {
	return t <= maxType
}

// FixedPayloadLen returns the on-wire payload length for types whose size
// does not depend on the data itself, and false for Data (which is
// length-prefixed) or an invalid type.
func (t Type) FixedPayloadLen() (int, bool) {
	switch t {
	case UInt8:
		return 1, true
	case UInt16:
		return 2, true
	case UInt32:
		return 4, true
	case UInt64:
		return 8, true
	case True, False, Nil:
		return 0, true
	case Float:
		return 4, true
	case Double:
		return 8, true
	case ObjectReference:
		return 4, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case True:
		return "True"
	case False:
		return "False"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case Data:
		return "Data"
	case Nil:
		return "Nil"
	case ObjectReference:
		return "ObjectReference"
	default:
		return "Unknown"
	}
}
