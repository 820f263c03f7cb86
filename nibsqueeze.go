// Package nibsqueeze implements the NIBArchive binary format: the header
// and four-section layout used by compiled Interface Builder archives
// (objects, keys, values, class names), plus VarInt and per-record codecs.
//
// # Basic usage
//
// Decoding an existing archive:
//
//	data, _ := os.ReadFile("keyedobjects.nib")
//	a, err := nibsqueeze.FromBuffer(data)
//	if err != nil {
//	    return err
//	}
//	for _, obj := range a.Objects() {
//	    _ = obj.ClassNameIndex
//	}
//
// Building one from scratch:
//
//	key, _ := record.NewKey([]byte("UINibEncoderEmptyKey"))
//	className, _ := record.NewClassName([]byte("NSObject"), nil)
//	value, _ := record.NewValue(nil, valuetype.Nil, 0)
//	tables := record.Tables{
//	    Objects:    []record.Object{{ClassNameIndex: 0, ValuesOffset: 0, ValuesCount: 1}},
//	    Keys:       []record.Key{key},
//	    Values:     []record.Value{value},
//	    ClassNames: []record.ClassName{className},
//	}
//	a, err := nibsqueeze.FromTables(tables)
//
// The top-level package is a thin wrapper over the richer archive, decode,
// encode, and record packages; reach for those directly for lower-level
// control (record-level parsing and encoding, direct Decoder/Encoder use,
// custom transport codecs).
package nibsqueeze

import (
	"github.com/matsmattsson/nibsqueeze/archive"
	"github.com/matsmattsson/nibsqueeze/decode"
	"github.com/matsmattsson/nibsqueeze/record"
	"github.com/matsmattsson/nibsqueeze/transport"
)

// Archive is the immutable façade over a NIBArchive's buffer and tables.
type Archive = archive.Archive

// New returns an empty Archive.
func New() Archive {
	return archive.New()
}

// FromBuffer decodes data into an Archive.
func FromBuffer(data []byte, opts ...decode.Option) (Archive, error) {
	return archive.FromBuffer(data, opts...)
}

// FromTables encodes tables into an Archive.
func FromTables(tables record.Tables) (Archive, error) {
	return archive.FromTables(tables)
}

// FromCompressedBuffer decompresses data with codec and decodes the result.
func FromCompressedBuffer(data []byte, codec transport.Codec, opts ...decode.Option) (Archive, error) {
	return archive.FromCompressedBuffer(data, codec, opts...)
}

// WithStrictValidation rejects duplicate keys/class-names and overlapping
// object value-windows during decode, which are accepted by default.
func WithStrictValidation() decode.Option {
	return decode.WithStrictValidation()
}
