// Package compress provides compression codecs for serialized mgjson
// documents.
//
// The mgjson format is verbose by design: every sample carries a 24-character
// timestamp string and a 20-character numberString value, so serialized
// documents compress extremely well. This package offers a small set of
// codecs for storing or transmitting documents in compressed form:
//
//   - None: bypass, no compression
//   - Zstd: best ratio, moderate speed (cgo builds use gozstd, pure-Go
//     builds use klauspost/compress/zstd)
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// The document package uses this package for Document.MarshalCompressed;
// configure the algorithm with document.WithCompression.
package compress
