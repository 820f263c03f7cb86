package encode

import (
	"github.com/matsmattsson/nibsqueeze/internal/pool"
	"github.com/matsmattsson/nibsqueeze/record"
)

// Encoder turns a set of record tables into a canonical NIBArchive buffer.
//
// An Encoder is not reusable beyond a single Encode call and is not safe
// for concurrent use.
type Encoder struct {
	tables record.Tables
}

// New creates an Encoder for the given tables. The tables are not copied;
// callers should not mutate them after passing them to New.
func New(tables record.Tables) *Encoder {
	return &Encoder{tables: tables}
}

// Encode validates e's tables, computes the canonical layout, and emits the
// header followed by the four sections in objects, keys, values,
// classNames order.
func (e *Encoder) Encode() ([]byte, error) {
	if err := record.ValidateShape(e.tables); err != nil {
		return nil, err
	}

	if err := record.ValidateCrossTable(e.tables); err != nil {
		return nil, err
	}

	objLen, keyLen, valLen, classLen := e.sectionLengths()
	total := record.HeaderSize + objLen + keyLen + valLen + classLen

	buf := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(buf)
	buf.Grow(total)

	header := e.header(objLen, keyLen, valLen, classLen)
	buf.MustWrite(header.Bytes())

	for _, o := range e.tables.Objects {
		buf.B = o.AppendTo(buf.B)
	}
	for _, k := range e.tables.Keys {
		buf.B = k.AppendTo(buf.B)
	}
	for _, v := range e.tables.Values {
		buf.B = v.AppendTo(buf.B)
	}
	for _, c := range e.tables.ClassNames {
		buf.B = c.AppendTo(buf.B)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func (e *Encoder) sectionLengths() (objLen, keyLen, valLen, classLen int) {
	for _, o := range e.tables.Objects {
		objLen += o.EncodedLen()
	}
	for _, k := range e.tables.Keys {
		keyLen += k.EncodedLen()
	}
	for _, v := range e.tables.Values {
		valLen += v.EncodedLen()
	}
	for _, c := range e.tables.ClassNames {
		classLen += c.EncodedLen()
	}

	return objLen, keyLen, valLen, classLen
}

func (e *Encoder) header(objLen, keyLen, valLen, classLen int) record.Header {
	objOffset := uint32(record.HeaderSize)
	keyOffset := objOffset + uint32(objLen)
	valOffset := keyOffset + uint32(keyLen)
	classOffset := valOffset + uint32(valLen)

	return record.Header{
		MajorVersion: record.MajorVersion,
		MinorVersion: record.MinorVersion,
		Objects:      record.SectionLayout{Count: uint32(len(e.tables.Objects)), Offset: objOffset},
		Keys:         record.SectionLayout{Count: uint32(len(e.tables.Keys)), Offset: keyOffset},
		Values:       record.SectionLayout{Count: uint32(len(e.tables.Values)), Offset: valOffset},
		ClassNames:   record.SectionLayout{Count: uint32(len(e.tables.ClassNames)), Offset: classOffset},
	}
}

// Encode is a convenience wrapper equivalent to New(tables).Encode().
func Encode(tables record.Tables) ([]byte, error) {
	return New(tables).Encode()
}
