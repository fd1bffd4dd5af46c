package document

import (
	"fmt"

	"github.com/arloliu/mgjson/encoding"
	"github.com/arloliu/mgjson/errs"
	"github.com/arloliu/mgjson/format"
	"github.com/arloliu/mgjson/schema"
)

// DataPoint is one raw stream sample: a relative time offset in seconds from
// the epoch origin and the numeric value at that instant.
type DataPoint struct {
	Offset float64
	Value  float64
}

// buildStream encodes a stream into its outline entry and sample set.
// Everything is validated and encoded before either half is returned, so the
// caller appends both atomically or neither.
func (d *Document) buildStream(name string, points []DataPoint, cfg streamConfig) (schema.StreamOutline, schema.SampleSet, error) {
	if len(points) == 0 {
		return schema.StreamOutline{}, schema.SampleSet{}, fmt.Errorf("%w: stream %q", errs.ErrEmptyStream, name)
	}

	minVal := points[0].Value
	maxVal := points[0].Value
	samples := make([]schema.Sample, 0, len(points))

	for i, point := range points {
		if d.strictRange && (point.Value < schema.LegalRangeMin || point.Value > schema.LegalRangeMax) {
			return schema.StreamOutline{}, schema.SampleSet{},
				fmt.Errorf("%w: stream %q point %d value %f", errs.ErrValueOutOfRange, name, i, point.Value)
		}

		ts, err := encoding.EncodeTimestamp(point.Offset)
		if err != nil {
			return schema.StreamOutline{}, schema.SampleSet{}, fmt.Errorf("stream %q point %d: %w", name, i, err)
		}

		value, err := encoding.EncodeNumber(point.Value)
		if err != nil {
			return schema.StreamOutline{}, schema.SampleSet{}, fmt.Errorf("stream %q point %d: %w", name, i, err)
		}

		if point.Value < minVal {
			minVal = point.Value
		}
		if point.Value > maxVal {
			maxVal = point.Value
		}

		samples = append(samples, schema.Sample{Time: ts, Value: value})
	}

	displayName := cfg.displayName
	if displayName == "" {
		displayName = defaultDisplayName(name)
	}

	interpolation := cfg.interpolation
	if interpolation == "" {
		interpolation = format.InterpolationHold
	}

	outline := schema.StreamOutline{
		ObjectType:  schema.ObjectTypeDynamic,
		DisplayName: displayName,
		SampleSetID: name,
		DataType: schema.DataType{
			Type: schema.TypeNumberString,
			NumberStringProperties: &schema.NumberStringProperties{
				// The digit pattern for streams is a fixed schema constant
				// matching the numberString codec, not derived from data.
				Pattern: schema.Pattern{
					IsSigned:      true,
					DigitsInteger: schema.StreamDigitsInteger,
					DigitsDecimal: schema.StreamDigitsDecimal,
				},
				Range: schema.Range{
					Occuring: schema.MinMax{Min: minVal, Max: maxVal},
					Legal:    legalRange(),
				},
			},
			PaddedStringProperties: &schema.PaddedStringProperties{},
		},
		Interpolation:         interpolation.String(),
		HasExpectedFrequencyB: false,
		SampleCount:           len(points),
		Name:                  name,
	}

	sampleSet := schema.SampleSet{
		SampleSetID: name,
		Samples:     samples,
	}

	return outline, sampleSet, nil
}

// AddStreamFromRows transforms row-based data and adds it as a stream.
//
// The extract function is called once per row to produce the time offset in
// seconds and the sample value, eliminating the intermediate DataPoint slice
// construction at call sites that hold their own sample types.
//
// Example:
//
//	type Reading struct {
//	    At  time.Duration
//	    Val float64
//	}
//
//	readings := []Reading{{At: 0, Val: 1.0}, {At: 2230 * time.Millisecond, Val: 0.777}}
//	err := document.AddStreamFromRows(doc, "temperature", readings, func(r Reading) (float64, float64) {
//	    return r.At.Seconds(), r.Val
//	})
func AddStreamFromRows[T any](
	doc *Document,
	name string,
	rows []T,
	extract func(T) (offsetSec float64, value float64),
	opts ...StreamOption,
) error {
	points := make([]DataPoint, len(rows))
	for i, row := range rows {
		points[i].Offset, points[i].Value = extract(row)
	}

	return doc.AddStream(name, points, opts...)
}
