package schema

// Schema identification constants.
const (
	// Version is the mgjson schema revision emitted in every document.
	Version = "MGJSON2.0.0"

	// DefaultCreator is the creator tag emitted when the caller does not
	// override it.
	DefaultCreator = "mgjson-go"
)

// Object type tags for data outline entries.
const (
	ObjectTypeStatic  = "dataStatic"
	ObjectTypeDynamic = "dataDynamic"
)

// Data type tags.
const (
	TypeNumber       = "number"
	TypeBoolean      = "boolean"
	TypeString       = "string"
	TypeNumberString = "numberString"
)

// Fixed numeric descriptor constants.
//
// The legal range is a schema-level claim, not derived from data. The schema
// uses an asymmetric bound: the positive limit is 2147483648, one above
// math.MaxInt32.
const (
	LegalRangeMin = -2147483648
	LegalRangeMax = 2147483648

	// StreamDigitsInteger and StreamDigitsDecimal form the fixed digit
	// pattern declared for every stream, regardless of actual magnitude.
	// They match the numberString codec output: minimum 3 integer digits
	// and exactly 15 decimal digits.
	StreamDigitsInteger = 3
	StreamDigitsDecimal = 15

	// MaxDigitsInStrLength is the fixed string-length descriptor constant
	// for static string properties.
	MaxDigitsInStrLength = 2

	// UTCPrecisionLength is the number of fractional digits in sample
	// timestamps (millisecond precision).
	UTCPrecisionLength = 3
)
