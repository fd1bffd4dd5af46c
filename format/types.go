package format

type (
	ValueKind       uint8
	Interpolation   string
	CompressionType uint8
)

const (
	KindInvalid ValueKind = 0x0 // KindInvalid represents an unset or unsupported value kind.
	KindInteger ValueKind = 0x1 // KindInteger represents an integer static property.
	KindBoolean ValueKind = 0x2 // KindBoolean represents a boolean static property.
	KindString  ValueKind = 0x3 // KindString represents a string static property.

	// InterpolationHold tells consumers to hold the previous sample value
	// until the next sample. It is the default interpolation mode.
	InterpolationHold Interpolation = "hold"
	// InterpolationLinear tells consumers to interpolate linearly between samples.
	InterpolationLinear Interpolation = "linear"

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	default:
		return "Invalid"
	}
}

// String returns the interpolation mode as it appears in the document.
// Values other than InterpolationHold and InterpolationLinear pass through
// verbatim; the schema does not restrict the field to a closed enum.
func (i Interpolation) String() string {
	return string(i)
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
