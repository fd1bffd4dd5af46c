// Package document provides the mgjson document assembler and the encoders
// that turn raw application values into schema-compliant structures.
//
// A Document collects two ordered sequences: data outline entries (type and
// range metadata for every property and stream, in declaration order) and
// sample sets (the encoded samples of each stream). Entries are encoded
// eagerly as they are added; Marshal is a pure projection of the collected
// entries into the top-level envelope and can be called any number of times.
//
// # Static properties
//
// Static properties are scalars: integers, booleans, or strings. The value
// kind is an explicit tagged union decided at the call boundary:
//
//	doc, _ := document.New()
//	_ = doc.AddProperty("numberOfCats", document.Int(3))
//	_ = doc.AddProperty("isItTrue", document.Bool(false))
//	_ = doc.AddProperty("title", document.String("A new adventure awaits!"))
//
// AddPropertyValue accepts untyped values for callers bridging dynamic data,
// at the cost of a runtime ErrUnsupportedType for anything outside
// {integer, boolean, string}.
//
// # Streams
//
// Streams are time-ordered sequences of numeric samples, added either in one
// call or incrementally:
//
//	_ = doc.AddStream("temperature", []document.DataPoint{
//	    {Offset: 0.0, Value: 1.0},
//	    {Offset: 2.23, Value: 0.777},
//	})
//
//	enc, _ := doc.NewStream("altitude", document.WithInterpolation(format.InterpolationLinear))
//	_ = enc.AddDataPoint(0.0, 120.5)
//	_ = enc.AddDataPoint(1.0, 121.0)
//	_ = enc.Finish()
//
// Each stream produces one outline entry and one sample set, appended
// atomically; the two halves are joined by the stream's match name.
package document
