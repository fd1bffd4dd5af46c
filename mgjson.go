// Package mgjson encodes application data (scalar properties and numeric
// time-series streams) into mgjson 2.0 documents, the schema-versioned JSON
// dialect used to exchange static metadata and dynamic sampled data between
// tools.
//
// # Core Features
//
//   - Static properties: integers, booleans, and strings with derived type
//     metadata (digit counts, value ranges, string lengths)
//   - Dynamic streams: timestamped numeric samples encoded as fixed-width
//     numberStrings with millisecond-precision UTC timestamps
//   - Declaration-order preservation across the data outline
//   - Idempotent serialization with automatic envelope shape selection
//     (dynamic vs static-only)
//   - Optional compression of serialized documents (Zstd, S2, LZ4)
//
// # Basic Usage
//
//	import "github.com/arloliu/mgjson"
//
//	doc, _ := mgjson.New()
//
//	// Static properties
//	_ = doc.AddProperty("numberOfCats", mgjson.Int(3))
//	_ = doc.AddProperty("isItTrue", mgjson.Bool(false))
//	_ = doc.AddProperty("title", mgjson.Str("A new adventure awaits!"))
//
//	// Dynamic data (time series)
//	_ = doc.AddStream("temperature", []document.DataPoint{
//	    {Offset: 0.0, Value: 1.0},
//	    {Offset: 2.23, Value: 0.777},
//	})
//
//	data, _ := doc.Marshal()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the document
// package, simplifying the most common use cases. For fine-grained control
// such as incremental stream building, per-stream interpolation, or
// compression, use the document package directly.
package mgjson

import (
	"github.com/arloliu/mgjson/document"
	"github.com/arloliu/mgjson/internal/hash"
)

// New creates an empty mgjson document with the given options.
//
// Available options:
//   - document.WithCreator(tag)
//   - document.WithCompactOutput()
//   - document.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - document.WithUniqueMatchNames()
//   - document.WithStrictLegalRange()
//
// Returns:
//   - *document.Document: The created document.
//   - error: An error if the configuration is invalid.
//
// Example:
//
//	doc, err := mgjson.New(
//	    document.WithCreator("telemetry-exporter"),
//	    document.WithUniqueMatchNames(),
//	)
func New(opts ...document.DocumentOption) (*document.Document, error) {
	return document.New(opts...)
}

// Int creates an integer property value for Document.AddProperty.
func Int(v int64) document.Value {
	return document.Int(v)
}

// Bool creates a boolean property value for Document.AddProperty.
func Bool(v bool) document.Value {
	return document.Bool(v)
}

// Str creates a string property value for Document.AddProperty.
func Str(v string) document.Value {
	return document.String(v)
}

// MatchID converts a match name to its 64-bit xxHash64 identifier.
//
// Match names are schema-external identifiers: the document format carries
// them as strings and does not require uniqueness. Applications that manage
// their own match-name registries can use MatchID to index names in
// fixed-size structures, with the same hash the library uses internally for
// duplicate detection under document.WithUniqueMatchNames.
func MatchID(name string) uint64 {
	return hash.ID(name)
}
