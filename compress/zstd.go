package compress

// ZstdCodec compresses documents with Zstandard. It offers the best
// compression ratio of the supported algorithms and is the right choice for
// archival and network transfer of large documents.
//
// Two implementations exist behind build tags: cgo builds use valyala/gozstd
// (libzstd bindings), pure-Go builds fall back to klauspost/compress/zstd.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
