package compress

// NoOpCodec passes data through unchanged. It is the codec behind
// format.CompressionNone and keeps MarshalCompressed total when compression
// is disabled.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that bypasses compression.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is without copying.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
