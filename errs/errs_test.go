package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodecError_ErrorIncludesDomain(t *testing.T) {
	assert.Contains(t, ErrInvalidHeader.Error(), Domain)
	assert.Contains(t, ErrInvalidHeader.Error(), "invalid header")
}

func TestCodecError_Code(t *testing.T) {
	assert.Equal(t, CodeInvalidHeader, ErrInvalidHeader.Code())
	assert.Equal(t, CodeObjectInvalidClass, ErrObjectInvalidClass.Code())
	assert.Equal(t, CodeKeyInvalidClass, ErrKeyInvalidClass.Code())
}

func TestCodecError_Domain(t *testing.T) {
	assert.Equal(t, Domain, ErrInvalidData.Domain())
}

func TestSentinelsAreComparableWithErrorsIs(t *testing.T) {
	wrapped := fmtWrap(ErrInvalidHeader)
	assert.True(t, errors.Is(wrapped, ErrInvalidHeader))
	assert.False(t, errors.Is(wrapped, ErrInvalidData))
}

func fmtWrap(err error) error {
	return &wrapper{err: err}
}

type wrapper struct{ err error }

func (w *wrapper) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapper) Unwrap() error { return w.err }

func TestSentinelCodesAreUnique(t *testing.T) {
	all := []*CodecError{
		ErrInvalidHeader, ErrInvalidData,
		ErrObjectReadClassNameIndex, ErrObjectReadValuesOffset, ErrObjectReadValuesCount,
		ErrObjectInvalidClassNameIndex, ErrObjectInvalidValuesOffset, ErrObjectInvalidValuesCount,
		ErrObjectInvalidClass,
		ErrValueReadKeyIndex, ErrValueReadType, ErrValueInvalidKeyIndex, ErrValueInvalidObjectReference,
		ErrKeyInvalidClass,
	}

	seen := make(map[Code]bool, len(all))
	for _, e := range all {
		assert.False(t, seen[e.Code()], "duplicate code %d", e.Code())
		seen[e.Code()] = true
	}
}
