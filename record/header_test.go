package record

import (
	"testing"

	"github.com/matsmattsson/nibsqueeze/errs"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		MajorVersion: MajorVersion,
		MinorVersion: MinorVersion,
		Objects:      SectionLayout{Count: 1, Offset: 50},
		Keys:         SectionLayout{Count: 2, Offset: 60},
		Values:       SectionLayout{Count: 3, Offset: 70},
		ClassNames:   SectionLayout{Count: 4, Offset: 80},
	}

	buf := h.Bytes()
	require.Len(t, buf, HeaderSize)

	got, err := ParseHeader(buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderSizeIsFiftyBytes(t *testing.T) {
	require.Equal(t, 50, HeaderSize)
}

func TestParseHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestParseHeaderBadMagic(t *testing.T) {
	h := Header{MajorVersion: MajorVersion, MinorVersion: MinorVersion}
	buf := h.Bytes()
	copy(buf[0:10], "WRONGMAGIC")

	_, err := ParseHeader(buf)
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestParseHeaderBadVersion(t *testing.T) {
	h := Header{MajorVersion: 99, MinorVersion: MinorVersion}
	buf := h.Bytes()

	_, err := ParseHeader(buf)
	require.ErrorIs(t, err, errs.ErrInvalidHeader)

	h2 := Header{MajorVersion: MajorVersion, MinorVersion: 0}
	buf2 := h2.Bytes()

	_, err = ParseHeader(buf2)
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}
