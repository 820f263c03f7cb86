package archive

import (
	"github.com/matsmattsson/nibsqueeze/decode"
	"github.com/matsmattsson/nibsqueeze/encode"
	"github.com/matsmattsson/nibsqueeze/internal/hash"
	"github.com/matsmattsson/nibsqueeze/record"
	"github.com/matsmattsson/nibsqueeze/transport"
)

// Archive is the immutable, construct-once view of a NIBArchive: its
// canonical buffer plus the four tables parsed or encoded from it.
//
// An Archive has no mutation operations; building a different archive
// means constructing a new one.
type Archive struct {
	buf    []byte
	header record.Header
	tables record.Tables
}

// New returns an empty Archive: four empty tables and an empty buffer. No
// encoding is performed.
func New() Archive {
	return Archive{}
}

// FromBuffer decodes data into an Archive. The Archive keeps its own copy
// of data; callers may reuse or zero the slice they passed in once
// FromBuffer returns.
func FromBuffer(data []byte, opts ...decode.Option) (Archive, error) {
	buf := make([]byte, len(data))
	copy(buf, data)

	dec, err := decode.New(buf, opts...)
	if err != nil {
		return Archive{}, err
	}

	header, tables, err := dec.Decode()
	if err != nil {
		return Archive{}, err
	}

	return Archive{buf: buf, header: header, tables: tables}, nil
}

// FromTables encodes the given tables into an Archive, keeping the
// produced buffer alongside the tables it was built from.
func FromTables(tables record.Tables) (Archive, error) {
	buf, err := encode.Encode(tables)
	if err != nil {
		return Archive{}, err
	}

	header, err := record.ParseHeader(buf)
	if err != nil {
		return Archive{}, err
	}

	return Archive{buf: buf, header: header, tables: tables}, nil
}

// Bytes returns the archive's canonical buffer.
func (a Archive) Bytes() []byte {
	return a.buf
}

// Objects returns the archive's objects table.
func (a Archive) Objects() []record.Object {
	return a.tables.Objects
}

// Keys returns the archive's keys table.
func (a Archive) Keys() []record.Key {
	return a.tables.Keys
}

// Values returns the archive's values table.
func (a Archive) Values() []record.Value {
	return a.tables.Values
}

// ClassNames returns the archive's class names table.
func (a Archive) ClassNames() []record.ClassName {
	return a.tables.ClassNames
}

// Tables returns the archive's four tables together.
func (a Archive) Tables() record.Tables {
	return a.tables
}

// Checksum returns the xxHash64 of the archive's canonical buffer, a cheap
// integrity fingerprint that does not require re-parsing.
func (a Archive) Checksum() uint64 {
	return hash.Bytes(a.buf)
}

// Compress compresses the archive's canonical buffer with codec, for
// transport or storage. It never alters what Bytes() or FromBuffer
// observe; it operates strictly outside the codec's byte-exactness
// contract.
func (a Archive) Compress(codec transport.Codec) ([]byte, error) {
	return codec.Compress(a.buf)
}

// FromCompressedBuffer decompresses data with codec and decodes the result
// as a NIBArchive buffer.
func FromCompressedBuffer(data []byte, codec transport.Codec, opts ...decode.Option) (Archive, error) {
	raw, err := codec.Decompress(data)
	if err != nil {
		return Archive{}, err
	}

	return FromBuffer(raw, opts...)
}
