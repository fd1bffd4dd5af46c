package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/mgjson/errs"
)

// numberStringFormat renders a signed decimal with a mandatory sign, the
// integer part zero-padded to a minimum total width of 20 characters, and
// exactly 15 digits after the decimal point. Values whose integer part needs
// more than 3 digits grow beyond 20 characters; the width is a minimum.
const numberStringFormat = "%+020.15f"

// EncodeNumber encodes a finite float64 into the schema's fixed-width
// numberString representation.
//
// The result always starts with '+' or '-' and carries 15 fractional digits,
// e.g. EncodeNumber(1.0) returns "+001.000000000000000".
//
// Returns:
//   - string: Encoded numberString
//   - error: ErrNonFiniteValue for NaN or infinite inputs
func EncodeNumber(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %f", errs.ErrNonFiniteValue, v)
	}

	return fmt.Sprintf(numberStringFormat, v), nil
}
