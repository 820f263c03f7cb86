package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesIsDeterministic(t *testing.T) {
	data := []byte("NIBArchive checksum input")

	require.Equal(t, Bytes(data), Bytes(data))
}

func TestBytesDistinguishesInput(t *testing.T) {
	require.NotEqual(t, Bytes([]byte("a")), Bytes([]byte("b")))
}

func TestBytesEmpty(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), Bytes(nil))
}

func BenchmarkBytes(b *testing.B) {
	data := make([]byte, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Bytes(data)
	}
}
