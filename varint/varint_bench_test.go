package varint

import "testing"

func BenchmarkWrite(b *testing.B) {
	buf := make([]byte, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := 0
		_ = Write(buf, &offset, 123456789)
	}
}

func BenchmarkRead(b *testing.B) {
	buf := make([]byte, 10)
	offset := 0
	_ = Write(buf, &offset, 123456789)
	buf = buf[:offset]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		readOffset := 0
		_, _ = Read(buf, &readOffset)
	}
}

func BenchmarkSerializedLength(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SerializedLength(uint64(i))
	}
}
