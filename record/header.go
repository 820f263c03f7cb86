package record

import (
	"encoding/binary"

	"github.com/matsmattsson/nibsqueeze/errs"
)

// Magic is the 10-byte ASCII signature every NIBArchive buffer starts with.
const Magic = "NIBArchive"

// MajorVersion and MinorVersion are the only header version numbers this
// codec accepts. Schema evolution beyond these is out of scope.
const (
	MajorVersion uint32 = 1
	MinorVersion uint32 = 9
)

// HeaderSize is the fixed size, in bytes, of the NIBArchive header: the
// 10-byte magic, two version words, and four (count, offset) pairs.
const HeaderSize = 10 + 4 + 4 + 4*(4+4)

// SectionLayout records the (count, offset) pair for a single section as
// read from, or to be written to, the header.
type SectionLayout struct {
	Count  uint32
	Offset uint32
}

// Header is the fixed preamble of a NIBArchive buffer.
type Header struct {
	MajorVersion uint32
	MinorVersion uint32
	Objects      SectionLayout
	Keys         SectionLayout
	Values       SectionLayout
	ClassNames   SectionLayout
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:10], Magic)
	binary.LittleEndian.PutUint32(buf[10:14], h.MajorVersion)
	binary.LittleEndian.PutUint32(buf[14:18], h.MinorVersion)
	binary.LittleEndian.PutUint32(buf[18:22], h.Objects.Count)
	binary.LittleEndian.PutUint32(buf[22:26], h.Objects.Offset)
	binary.LittleEndian.PutUint32(buf[26:30], h.Keys.Count)
	binary.LittleEndian.PutUint32(buf[30:34], h.Keys.Offset)
	binary.LittleEndian.PutUint32(buf[34:38], h.Values.Count)
	binary.LittleEndian.PutUint32(buf[38:42], h.Values.Offset)
	binary.LittleEndian.PutUint32(buf[42:46], h.ClassNames.Count)
	binary.LittleEndian.PutUint32(buf[46:50], h.ClassNames.Offset)

	return buf
}

// ParseHeader reads and validates the fixed header at the start of buf.
//
// It verifies the magic signature and that the major/minor version match
// the only version this codec supports, but does not validate that section
// offsets fall within buf — that requires knowing buf's total length, which
// the caller (the Decoder) checks against each SectionLayout.Offset.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, errs.ErrInvalidHeader
	}

	if string(buf[0:10]) != Magic {
		return Header{}, errs.ErrInvalidHeader
	}

	h := Header{
		MajorVersion: binary.LittleEndian.Uint32(buf[10:14]),
		MinorVersion: binary.LittleEndian.Uint32(buf[14:18]),
		Objects: SectionLayout{
			Count:  binary.LittleEndian.Uint32(buf[18:22]),
			Offset: binary.LittleEndian.Uint32(buf[22:26]),
		},
		Keys: SectionLayout{
			Count:  binary.LittleEndian.Uint32(buf[26:30]),
			Offset: binary.LittleEndian.Uint32(buf[30:34]),
		},
		Values: SectionLayout{
			Count:  binary.LittleEndian.Uint32(buf[34:38]),
			Offset: binary.LittleEndian.Uint32(buf[38:42]),
		},
		ClassNames: SectionLayout{
			Count:  binary.LittleEndian.Uint32(buf[42:46]),
			Offset: binary.LittleEndian.Uint32(buf[46:50]),
		},
	}

	if h.MajorVersion != MajorVersion || h.MinorVersion != MinorVersion {
		return Header{}, errs.ErrInvalidHeader
	}

	return h, nil
}
