package encode

import (
	"testing"

	"github.com/matsmattsson/nibsqueeze/record"
	"github.com/matsmattsson/nibsqueeze/valuetype"
)

func buildTables(n int) record.Tables {
	objects := make([]record.Object, n)
	values := make([]record.Value, n)
	for i := 0; i < n; i++ {
		objects[i] = record.Object{ClassNameIndex: 0, ValuesOffset: uint32(i), ValuesCount: 1}
		values[i], _ = record.NewValue([]byte{byte(i)}, valuetype.UInt8, 0)
	}

	key, _ := record.NewKey([]byte("flags"))
	className, _ := record.NewClassName([]byte("NSObject"), nil)

	return record.Tables{
		Objects:    objects,
		Keys:       []record.Key{key},
		Values:     values,
		ClassNames: []record.ClassName{className},
	}
}

func BenchmarkEncode(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, n := range sizes {
		tables := buildTables(n)

		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Encode(tables); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchName(n int) string {
	switch n {
	case 10:
		return "10objects"
	case 100:
		return "100objects"
	default:
		return "1000objects"
	}
}
