package document

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/mgjson/errs"
	"github.com/arloliu/mgjson/format"
	"github.com/arloliu/mgjson/schema"
)

// buildStaticOutline encodes a static property into its outline entry. It
// performs all validation before returning, so the caller can append the
// result without risk of partial mutation.
func (d *Document) buildStaticOutline(name string, value Value, cfg propertyConfig) (schema.StaticOutline, error) {
	displayName := cfg.displayName
	if displayName == "" {
		displayName = defaultDisplayName(name)
	}

	switch value.Kind() {
	case format.KindInteger:
		if d.strictRange && (value.num < schema.LegalRangeMin || value.num > schema.LegalRangeMax) {
			return schema.StaticOutline{}, fmt.Errorf("%w: property %q value %d", errs.ErrValueOutOfRange, name, value.num)
		}

		return newNumberOutline(name, displayName, value.num), nil
	case format.KindBoolean:
		return newBoolOutline(name, displayName, value.b), nil
	case format.KindString:
		return newStringOutline(name, displayName, value.str), nil
	default:
		return schema.StaticOutline{}, fmt.Errorf("%w: property %q", errs.ErrUnsupportedType, name)
	}
}

// newNumberOutline describes an integer property. The digit pattern is
// derived from the value itself; the occurring range collapses to the single
// value, and the legal range is the schema's fixed claim.
func newNumberOutline(name string, displayName string, v int64) schema.StaticOutline {
	return schema.StaticOutline{
		ObjectType:  schema.ObjectTypeStatic,
		DisplayName: displayName,
		Name:        name,
		DataType: schema.DataType{
			Type: schema.TypeNumber,
			NumberStringProperties: &schema.NumberStringProperties{
				Pattern: schema.Pattern{
					IsSigned:      true,
					DigitsInteger: decimalDigits(v),
					DigitsDecimal: 0,
				},
				Range: schema.Range{
					Occuring: schema.MinMax{Min: float64(v), Max: float64(v)},
					Legal:    legalRange(),
				},
			},
		},
		Value: v,
	}
}

// newStringOutline describes a string property by its character length.
func newStringOutline(name string, displayName string, v string) schema.StaticOutline {
	return schema.StaticOutline{
		ObjectType:  schema.ObjectTypeStatic,
		DisplayName: displayName,
		Name:        name,
		DataType: schema.DataType{
			Type: schema.TypeString,
			PaddedStringProperties: &schema.PaddedStringProperties{
				MaxLen:               utf8.RuneCountInString(v),
				MaxDigitsInStrLength: schema.MaxDigitsInStrLength,
				EventMarkerB:         false,
			},
		},
		Value: v,
	}
}

// newBoolOutline describes a boolean property. Booleans carry only the base
// type tag, no shape metadata.
func newBoolOutline(name string, displayName string, v bool) schema.StaticOutline {
	return schema.StaticOutline{
		ObjectType:  schema.ObjectTypeStatic,
		DisplayName: displayName,
		Name:        name,
		DataType: schema.DataType{
			Type: schema.TypeBoolean,
		},
		Value: v,
	}
}

// legalRange returns the schema's fixed legal range claim.
func legalRange() schema.MinMax {
	return schema.MinMax{Min: schema.LegalRangeMin, Max: schema.LegalRangeMax}
}

// decimalDigits counts the decimal digits of v, sign excluded.
func decimalDigits(v int64) int {
	s := strconv.FormatInt(v, 10)
	if v < 0 {
		return len(s) - 1
	}

	return len(s)
}

// defaultDisplayName derives a display name from a match name: first
// character upper-cased, remainder lower-cased.
func defaultDisplayName(name string) string {
	if name == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}
