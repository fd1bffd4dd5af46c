// Package schema defines the wire-format structures and constants of the
// mgjson 2.0 document format.
//
// The types here map one-to-one onto the JSON shapes exchanged between tools:
// the top-level Envelope, the heterogeneous dataOutline array (StaticOutline
// and StreamOutline entries in declaration order), and the dataDynamicSamples
// array (one SampleSet per stream, joined to its outline entry by sample set
// ID).
//
// This package contains no encoding logic. The document package builds these
// structures; serialization is plain encoding/json marshaling.
package schema
