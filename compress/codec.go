package compress

import (
	"fmt"

	"github.com/arloliu/mgjson/format"
)

// Compressor compresses a serialized document.
type Compressor interface {
	// Compress compresses data and returns the result. The input slice is
	// not modified; the returned slice is owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a serialized document from its compressed form.
type Decompressor interface {
	// Decompress decompresses data previously compressed with the same
	// algorithm. It returns an error if the input is corrupted or was
	// compressed with an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given compression type.
//
// Returns:
//   - Codec: Codec instance for the specified algorithm
//   - error: Error if the compression type is unknown
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid compression type: %s", compressionType)
	}
}
