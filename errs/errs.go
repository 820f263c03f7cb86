// Package errs defines the flat, numerically-coded error taxonomy shared by
// the varint, record, decode, encode, and archive packages.
//
// Every error the codec can produce is a package-level sentinel comparable
// with errors.Is. There is no wrapping or chaining inside the codec itself:
// a decode or encode operation fails with exactly one of these values, never
// a derived or annotated error. Codes are assigned in the same order as the
// original implementation's error enum so the two can be cross-referenced
// directly.
package errs

import "fmt"

// Domain identifies this codec in error messages and structured logging.
const Domain = "nibsqueeze"

// Code is the stable numeric identifier carried by every CodecError.
type Code int

const (
	CodeSuccess Code = iota
	CodeInvalidHeader
	CodeInvalidData
	CodeObjectReadClassNameIndex
	CodeObjectReadValuesOffset
	CodeObjectReadValuesCount
	CodeObjectInvalidClassNameIndex
	CodeObjectInvalidValuesOffset
	CodeObjectInvalidValuesCount
	CodeObjectInvalidClass
	CodeValueReadKeyIndex
	CodeValueReadType
	CodeValueInvalidKeyIndex
	CodeValueInvalidObjectReference
	CodeKeyInvalidClass
)

// CodecError is the concrete type behind every sentinel in this package.
type CodecError struct {
	code Code
	msg  string
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	return fmt.Sprintf("%s: %s", Domain, e.msg)
}

// Code returns the stable numeric code for programmatic inspection.
func (e *CodecError) Code() Code {
	return e.code
}

// Domain returns the domain name identifying this codec.
func (e *CodecError) Domain() string {
	return Domain
}

func newErr(code Code, msg string) *CodecError {
	return &CodecError{code: code, msg: msg}
}

// Sentinel errors, one per failure site named in the specification.
var (
	ErrInvalidHeader                = newErr(CodeInvalidHeader, "invalid header")
	ErrInvalidData                  = newErr(CodeInvalidData, "invalid data")
	ErrObjectReadClassNameIndex     = newErr(CodeObjectReadClassNameIndex, "failed to read object class name index")
	ErrObjectReadValuesOffset       = newErr(CodeObjectReadValuesOffset, "failed to read object values offset")
	ErrObjectReadValuesCount        = newErr(CodeObjectReadValuesCount, "failed to read object values count")
	ErrObjectInvalidClassNameIndex  = newErr(CodeObjectInvalidClassNameIndex, "object class name index out of range")
	ErrObjectInvalidValuesOffset    = newErr(CodeObjectInvalidValuesOffset, "object values offset out of range")
	ErrObjectInvalidValuesCount     = newErr(CodeObjectInvalidValuesCount, "object values count out of range")
	ErrObjectInvalidClass           = newErr(CodeObjectInvalidClass, "object has invalid shape")
	ErrValueReadKeyIndex            = newErr(CodeValueReadKeyIndex, "failed to read value key index")
	ErrValueReadType                = newErr(CodeValueReadType, "failed to read value type")
	ErrValueInvalidKeyIndex         = newErr(CodeValueInvalidKeyIndex, "value key index out of range")
	ErrValueInvalidObjectReference  = newErr(CodeValueInvalidObjectReference, "value object reference out of range")
	ErrKeyInvalidClass              = newErr(CodeKeyInvalidClass, "key has invalid shape")
)
