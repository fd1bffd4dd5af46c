// Package encoding provides the pure text codecs used by the mgjson document
// encoders.
//
// The mgjson schema does not store sample values as native JSON numbers.
// Instead every numeric sample is a fixed-width signed decimal string
// (the "numberString" representation), and every sample time is an absolute
// UTC timestamp string at millisecond precision. This package implements both
// transformations as stateless functions:
//
//   - EncodeNumber: float64 -> "+001.000000000000000"
//   - EncodeTimestamp: seconds from epoch -> "1970-01-01T00:00:01.000Z"
//
// Most users should use the high-level document package instead, which calls
// these codecs while encoding streams.
package encoding
