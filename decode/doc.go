// Package decode implements the NIBArchive Decoder: parsing a byte buffer
// into a validated header plus the four record tables (objects, keys,
// values, classNames).
//
// Per-record shape validation (malformed VarInts, truncated payloads,
// unknown value types) lives in package record, one level down. Once all
// four tables are parsed, this package runs record.ValidateCrossTable (the
// same check the Encoder runs before encoding):
// object.classNameIndex against |classNames|, object.valuesOffset+Count
// against |values|, value.keyIndex against |keys|, and ObjectReference
// targets against |objects|.
package decode
