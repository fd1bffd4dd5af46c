//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// zstdLevel is the default libzstd compression level; level 3 is the usual
// speed/ratio sweet spot for text payloads.
const zstdLevel = 3

// Compress compresses the input data using libzstd.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses Zstd-compressed data using libzstd.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
