package decode

import (
	"github.com/matsmattsson/nibsqueeze/errs"
	"github.com/matsmattsson/nibsqueeze/record"
)

// Tables holds the four parsed record tables of a NIBArchive buffer, in
// canonical section order.
type Tables = record.Tables

// Decoder parses a single NIBArchive buffer into a Header and Tables.
//
// A Decoder is not reusable beyond a single Decode call and is not
// safe for concurrent use.
type Decoder struct {
	data []byte
	cfg  config
}

// New creates a Decoder for data. It does not parse anything yet; call
// Decode to run the full parse and validation pipeline.
func New(data []byte, opts ...Option) (*Decoder, error) {
	d := &Decoder{data: data}
	for _, opt := range opts {
		opt(&d.cfg)
	}

	return d, nil
}

// Decode parses the header and all four sections, then runs cross-table
// validation. It aborts and returns the first error encountered.
func (d *Decoder) Decode() (record.Header, Tables, error) {
	header, err := record.ParseHeader(d.data)
	if err != nil {
		return record.Header{}, Tables{}, err
	}

	if err := d.checkSectionBounds(header); err != nil {
		return record.Header{}, Tables{}, err
	}

	objects, err := d.parseObjects(header)
	if err != nil {
		return record.Header{}, Tables{}, err
	}

	keys, err := d.parseKeys(header)
	if err != nil {
		return record.Header{}, Tables{}, err
	}

	values, err := d.parseValues(header)
	if err != nil {
		return record.Header{}, Tables{}, err
	}

	classNames, err := d.parseClassNames(header)
	if err != nil {
		return record.Header{}, Tables{}, err
	}

	tables := Tables{Objects: objects, Keys: keys, Values: values, ClassNames: classNames}

	if err := record.ValidateCrossTable(tables); err != nil {
		return record.Header{}, Tables{}, err
	}

	if d.cfg.strict {
		if err := validateStrict(tables); err != nil {
			return record.Header{}, Tables{}, err
		}
	}

	return header, tables, nil
}

// checkSectionBounds verifies every section offset lies at or after the end
// of the header and within the buffer before any section is parsed.
func (d *Decoder) checkSectionBounds(h record.Header) error {
	n := len(d.data)
	for _, layout := range []record.SectionLayout{h.Objects, h.Keys, h.Values, h.ClassNames} {
		if int(layout.Offset) < record.HeaderSize || int(layout.Offset) > n {
			return errs.ErrInvalidHeader
		}
	}

	return nil
}

func (d *Decoder) parseObjects(h record.Header) ([]record.Object, error) {
	objects := make([]record.Object, h.Objects.Count)
	offset := int(h.Objects.Offset)

	for i := range objects {
		obj, err := record.ParseObject(d.data, &offset)
		if err != nil {
			return nil, err
		}
		objects[i] = obj
	}

	return objects, nil
}

func (d *Decoder) parseKeys(h record.Header) ([]record.Key, error) {
	keys := make([]record.Key, h.Keys.Count)
	offset := int(h.Keys.Offset)

	for i := range keys {
		k, err := record.ParseKey(d.data, &offset)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	return keys, nil
}

func (d *Decoder) parseValues(h record.Header) ([]record.Value, error) {
	values := make([]record.Value, h.Values.Count)
	offset := int(h.Values.Offset)

	for i := range values {
		v, err := record.ParseValue(d.data, &offset)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

func (d *Decoder) parseClassNames(h record.Header) ([]record.ClassName, error) {
	classNames := make([]record.ClassName, h.ClassNames.Count)
	offset := int(h.ClassNames.Offset)

	for i := range classNames {
		c, err := record.ParseClassName(d.data, &offset)
		if err != nil {
			return nil, err
		}
		classNames[i] = c
	}

	return classNames, nil
}

// validateStrict applies the opt-in checks enabled by WithStrictValidation:
// no duplicate key names, no duplicate class names, and no two objects
// whose value-windows overlap.
func validateStrict(t Tables) error {
	seenKeys := make(map[string]struct{}, len(t.Keys))
	for _, k := range t.Keys {
		name := string(k.Name)
		if _, ok := seenKeys[name]; ok {
			return errs.ErrInvalidData
		}
		seenKeys[name] = struct{}{}
	}

	seenClasses := make(map[string]struct{}, len(t.ClassNames))
	for _, c := range t.ClassNames {
		name := string(c.Name)
		if _, ok := seenClasses[name]; ok {
			return errs.ErrInvalidData
		}
		seenClasses[name] = struct{}{}
	}

	type window struct{ start, end uint32 }
	windows := make([]window, 0, len(t.Objects))
	for _, obj := range t.Objects {
		if obj.ValuesCount == 0 {
			continue
		}
		windows = append(windows, window{start: obj.ValuesOffset, end: obj.ValuesOffset + obj.ValuesCount})
	}

	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if windows[i].start < windows[j].end && windows[j].start < windows[i].end {
				return errs.ErrInvalidData
			}
		}
	}

	return nil
}
