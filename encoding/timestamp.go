package encoding

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/mgjson/errs"
)

// timestampLayout renders millisecond precision with a trailing "Z" for UTC.
// Go truncates fractional seconds when formatting, which is what the schema
// requires: sub-millisecond parts are dropped, not rounded.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// EncodeTimestamp converts a relative offset in seconds from the epoch origin
// (1970-01-01T00:00:00 UTC) into an absolute UTC timestamp string at
// millisecond precision.
//
// The offset may be fractional. It is resolved to whole microseconds before
// formatting so that values such as 2.23 land on the expected millisecond
// instead of drifting one microsecond short in float arithmetic.
//
// Returns:
//   - string: Timestamp in the form "1970-01-01T00:00:02.230Z"
//   - error: ErrNonFiniteValue for NaN or infinite offsets
func EncodeTimestamp(offsetSec float64) (string, error) {
	if math.IsNaN(offsetSec) || math.IsInf(offsetSec, 0) {
		return "", fmt.Errorf("%w: offset %f", errs.ErrNonFiniteValue, offsetSec)
	}

	us := int64(math.Round(offsetSec * 1e6))

	return time.UnixMicro(us).UTC().Format(timestampLayout), nil
}
