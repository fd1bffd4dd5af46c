// Package errs defines the sentinel error values returned by the mgjson library.
//
// All errors are detected synchronously before any mutation of a document, so a
// failed Add operation never leaves a partially-added entry behind. Callers can
// match errors with errors.Is:
//
//	err := doc.AddPropertyValue("ratio", 3.14)
//	if errors.Is(err, errs.ErrUnsupportedType) {
//	    // handle unsupported property type
//	}
package errs

import "errors"

var (
	// ErrUnsupportedType is returned when a static property value is not an
	// integer, boolean, or string. No other value type is representable in the
	// data outline.
	ErrUnsupportedType = errors.New("unsupported property value type")

	// ErrEmptyStream is returned when a stream is added with zero data points.
	// The occurring value range is undefined over an empty sample sequence.
	ErrEmptyStream = errors.New("stream has no data points")

	// ErrNonFiniteValue is returned when a NaN or infinite value reaches the
	// number or timestamp codec. The fixed-width numberString representation
	// has no encoding for non-finite values.
	ErrNonFiniteValue = errors.New("non-finite numeric value")

	// ErrInvalidMatchName is returned when a property or stream is added with
	// an empty match name.
	ErrInvalidMatchName = errors.New("invalid match name")

	// ErrDuplicateMatchName is returned when unique match-name tracking is
	// enabled and a match name is reused within the same document.
	ErrDuplicateMatchName = errors.New("duplicate match name")

	// ErrValueOutOfRange is returned when strict legal-range validation is
	// enabled and a value falls outside the schema's fixed legal range.
	ErrValueOutOfRange = errors.New("value outside legal range")

	// ErrStreamFinished is returned when a StreamEncoder is used after its
	// Finish method has been called.
	ErrStreamFinished = errors.New("stream encoder already finished")
)
