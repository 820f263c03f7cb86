package transport

import "fmt"

// Algorithm identifies a whole-buffer compression scheme.
type Algorithm uint8

const (
	// None performs no compression; Compress/Decompress are pass-throughs.
	None Algorithm = iota
	// Zstd trades compression speed for ratio, good for cold storage.
	Zstd
	// S2 balances speed and ratio.
	S2
	// LZ4 favors fast decompression over ratio.
	LZ4
)

// String returns the algorithm's name.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Codec compresses and decompresses whole archive buffers.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var builtin = map[Algorithm]Codec{
	None: NoOpCodec{},
	Zstd: ZstdCodec{},
	S2:   S2Codec{},
	LZ4:  LZ4Codec{},
}

// New returns the built-in Codec for algo.
func New(algo Algorithm) (Codec, error) {
	codec, ok := builtin[algo]
	if !ok {
		return nil, fmt.Errorf("transport: unsupported compression algorithm: %s", algo)
	}

	return codec, nil
}
