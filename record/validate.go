package record

import (
	"bytes"

	"github.com/matsmattsson/nibsqueeze/errs"
	"github.com/matsmattsson/nibsqueeze/valuetype"
)

// ValidateShape checks that every record in t is individually well-formed,
// the same checks the New* constructors apply, but run again here because
// Tables can be assembled directly from struct literals without going
// through a constructor.
func ValidateShape(t Tables) error {
	for _, k := range t.Keys {
		if len(k.Name) == 0 {
			return errs.ErrKeyInvalidClass
		}
	}

	for _, c := range t.ClassNames {
		if bytes.IndexByte(c.Name, 0x00) != -1 {
			return errs.ErrObjectInvalidClass
		}
	}

	for _, v := range t.Values {
		if !v.Type.Valid() {
			return errs.ErrObjectInvalidClass
		}

		if v.Type == valuetype.Data {
			continue
		}

		want, _ := v.Type.FixedPayloadLen()
		if len(v.Payload) != want {
			return errs.ErrObjectInvalidClass
		}
	}

	return nil
}

// ValidateCrossTable checks the invariants that relate the four tables to
// one another, aborting on the first violation encountered. Used by both
// the decoder (after parsing) and the encoder (before laying out a buffer).
func ValidateCrossTable(t Tables) error {
	numClassNames := uint32(len(t.ClassNames))
	numValues := uint32(len(t.Values))

	for _, obj := range t.Objects {
		if obj.ClassNameIndex >= numClassNames {
			return errs.ErrObjectInvalidClassNameIndex
		}

		if obj.ValuesOffset > numValues {
			return errs.ErrObjectInvalidValuesOffset
		}

		end := obj.ValuesOffset + obj.ValuesCount
		if end < obj.ValuesOffset || end > numValues {
			return errs.ErrObjectInvalidValuesCount
		}
	}

	numKeys := uint32(len(t.Keys))
	numObjects := uint32(len(t.Objects))

	for _, v := range t.Values {
		if v.KeyIndex >= numKeys {
			return errs.ErrValueInvalidKeyIndex
		}

		if v.Type == valuetype.ObjectReference && v.AsObjectReference() >= numObjects {
			return errs.ErrValueInvalidObjectReference
		}
	}

	return nil
}
