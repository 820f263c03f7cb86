package archive

import (
	"testing"

	"github.com/matsmattsson/nibsqueeze/decode"
	"github.com/matsmattsson/nibsqueeze/record"
	"github.com/matsmattsson/nibsqueeze/transport"
	"github.com/matsmattsson/nibsqueeze/valuetype"
	"github.com/stretchr/testify/require"
)

func sampleTables(t *testing.T) record.Tables {
	t.Helper()

	key, err := record.NewKey([]byte("title"))
	require.NoError(t, err)

	className, err := record.NewClassName([]byte("NSObject"), nil)
	require.NoError(t, err)

	value, err := record.NewValue([]byte("hello"), valuetype.Data, 0)
	require.NoError(t, err)

	return record.Tables{
		Objects:    []record.Object{{ClassNameIndex: 0, ValuesOffset: 0, ValuesCount: 1}},
		Keys:       []record.Key{key},
		Values:     []record.Value{value},
		ClassNames: []record.ClassName{className},
	}
}

func TestEmptyArchive(t *testing.T) {
	a := New()
	require.Empty(t, a.Bytes())
	require.Empty(t, a.Objects())
	require.Empty(t, a.Keys())
	require.Empty(t, a.Values())
	require.Empty(t, a.ClassNames())
}

func TestFromTablesThenFromBuffer(t *testing.T) {
	tables := sampleTables(t)

	built, err := FromTables(tables)
	require.NoError(t, err)
	require.NotEmpty(t, built.Bytes())

	reloaded, err := FromBuffer(built.Bytes())
	require.NoError(t, err)

	require.Equal(t, built.Bytes(), reloaded.Bytes())
	require.Equal(t, built.Tables(), reloaded.Tables())
}

func TestFromBufferDoesNotAliasCallerBuffer(t *testing.T) {
	tables := sampleTables(t)
	built, err := FromTables(tables)
	require.NoError(t, err)

	src := make([]byte, len(built.Bytes()))
	copy(src, built.Bytes())

	a, err := FromBuffer(src)
	require.NoError(t, err)

	want := a.Bytes()
	wantKey := append([]byte(nil), a.Keys()[0].Name...)
	wantClass := append([]byte(nil), a.ClassNames()[0].Name...)
	wantValue := append([]byte(nil), a.Values()[0].Payload...)

	for i := range src {
		src[i] = 0xAA
	}

	require.Equal(t, want, a.Bytes())
	require.Equal(t, wantKey, a.Keys()[0].Name)
	require.Equal(t, wantClass, a.ClassNames()[0].Name)
	require.Equal(t, wantValue, a.Values()[0].Payload)
}

func TestFromBufferPropagatesDecodeError(t *testing.T) {
	_, err := FromBuffer([]byte("not an archive"))
	require.Error(t, err)
}

func TestFromTablesPropagatesEncodeError(t *testing.T) {
	tables := sampleTables(t)
	tables.Objects[0].ClassNameIndex = 99

	_, err := FromTables(tables)
	require.Error(t, err)
}

func TestFromBufferWithStrictValidation(t *testing.T) {
	tables := sampleTables(t)
	tables.Keys = append(tables.Keys, tables.Keys[0])
	buf, err := func() ([]byte, error) {
		built, err := FromTables(tables)
		if err != nil {
			return nil, err
		}
		return built.Bytes(), nil
	}()
	require.NoError(t, err)

	_, err = FromBuffer(buf, decode.WithStrictValidation())
	require.Error(t, err)

	_, err = FromBuffer(buf)
	require.NoError(t, err)
}

func TestChecksumIsStableAndSensitive(t *testing.T) {
	tables := sampleTables(t)
	a, err := FromTables(tables)
	require.NoError(t, err)

	require.Equal(t, a.Checksum(), a.Checksum())

	other := New()
	require.NotEqual(t, a.Checksum(), other.Checksum())
}

func TestCompressRoundTrip(t *testing.T) {
	tables := sampleTables(t)
	a, err := FromTables(tables)
	require.NoError(t, err)

	for _, algo := range []transport.Algorithm{transport.None, transport.Zstd, transport.S2, transport.LZ4} {
		codec, err := transport.New(algo)
		require.NoError(t, err)

		compressed, err := a.Compress(codec)
		require.NoError(t, err)

		restored, err := FromCompressedBuffer(compressed, codec)
		require.NoError(t, err)
		require.Equal(t, a.Bytes(), restored.Bytes())
	}
}
