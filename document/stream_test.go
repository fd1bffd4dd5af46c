package document

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mgjson/errs"
	"github.com/arloliu/mgjson/format"
	"github.com/arloliu/mgjson/schema"
)

func streamOutlineAt(t *testing.T, doc *Document, index int) schema.StreamOutline {
	require.Greater(t, len(doc.outlines), index)
	entry, ok := doc.outlines[index].(schema.StreamOutline)
	require.True(t, ok, "outline entry %d is not a StreamOutline", index)

	return entry
}

func TestDocument_AddStream(t *testing.T) {
	t.Run("BasicStream", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("temperature", []DataPoint{
			{Offset: 0.0, Value: 1.0},
			{Offset: 2.23, Value: 0.777},
		})
		require.NoError(t, err)
		require.Equal(t, 1, doc.StreamCount())
		require.True(t, doc.HasDynamicSamples())

		outline := streamOutlineAt(t, doc, 0)
		require.Equal(t, schema.ObjectTypeDynamic, outline.ObjectType)
		require.Equal(t, "Temperature", outline.DisplayName)
		require.Equal(t, "temperature", outline.SampleSetID)
		require.Equal(t, "temperature", outline.Name)
		require.Equal(t, 2, outline.SampleCount)
		require.Equal(t, "hold", outline.Interpolation)
		require.False(t, outline.HasExpectedFrequencyB)

		props := outline.DataType.NumberStringProperties
		require.NotNil(t, props)
		require.Equal(t, schema.MinMax{Min: 0.777, Max: 1.0}, props.Range.Occuring)

		// The stream digit pattern is a fixed schema constant, not derived
		// from the data.
		require.True(t, props.Pattern.IsSigned)
		require.Equal(t, schema.StreamDigitsInteger, props.Pattern.DigitsInteger)
		require.Equal(t, schema.StreamDigitsDecimal, props.Pattern.DigitsDecimal)

		require.NotNil(t, outline.DataType.PaddedStringProperties)
		require.Equal(t, schema.PaddedStringProperties{}, *outline.DataType.PaddedStringProperties)

		require.Len(t, doc.sampleSets, 1)
		set := doc.sampleSets[0]
		require.Equal(t, "temperature", set.SampleSetID)
		require.Len(t, set.Samples, 2)
		require.Equal(t, schema.Sample{Time: "1970-01-01T00:00:00.000Z", Value: "+001.000000000000000"}, set.Samples[0])
		require.Equal(t, schema.Sample{Time: "1970-01-01T00:00:02.230Z", Value: "+000.777000000000000"}, set.Samples[1])
	})

	t.Run("SampleOrderPreserved", func(t *testing.T) {
		doc := createTestDocument(t)

		points := make([]DataPoint, 100)
		for i := range points {
			points[i] = DataPoint{Offset: float64(i), Value: float64(i) * 0.5}
		}

		require.NoError(t, doc.AddStream("ramp", points))

		set := doc.sampleSets[0]
		require.Len(t, set.Samples, 100)
		for i, sample := range set.Samples {
			want, err := timestampFor(float64(i))
			require.NoError(t, err)
			require.Equal(t, want, sample.Time, "sample %d out of order", i)
		}
	})

	t.Run("MinMaxScan", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("wave", []DataPoint{
			{Offset: 0, Value: -3.5},
			{Offset: 1, Value: 12.25},
			{Offset: 2, Value: 0.0},
			{Offset: 3, Value: -8.75},
		})
		require.NoError(t, err)

		outline := streamOutlineAt(t, doc, 0)
		require.Equal(t, schema.MinMax{Min: -8.75, Max: 12.25}, outline.DataType.NumberStringProperties.Range.Occuring)
	})

	t.Run("EmptyStream", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("empty", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrEmptyStream)
		require.Equal(t, 0, doc.StreamCount())
		require.Empty(t, doc.outlines)
	})

	t.Run("NonFiniteValue", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("bad", []DataPoint{
			{Offset: 0, Value: 1.0},
			{Offset: 1, Value: math.NaN()},
		})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNonFiniteValue)

		// No partial mutation: neither half of the stream was added.
		require.Empty(t, doc.outlines)
		require.Empty(t, doc.sampleSets)
	})

	t.Run("NonFiniteOffset", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("bad", []DataPoint{{Offset: math.Inf(1), Value: 1.0}})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNonFiniteValue)
	})

	t.Run("Interpolation", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("altitude", []DataPoint{{Offset: 0, Value: 1}},
			WithInterpolation(format.InterpolationLinear))
		require.NoError(t, err)

		outline := streamOutlineAt(t, doc, 0)
		require.Equal(t, "linear", outline.Interpolation)
	})

	t.Run("CustomDisplayName", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("gpsSpeed", []DataPoint{{Offset: 0, Value: 1}},
			WithStreamDisplayName("GPS Speed"))
		require.NoError(t, err)

		outline := streamOutlineAt(t, doc, 0)
		require.Equal(t, "GPS Speed", outline.DisplayName)
	})

	t.Run("EmptyMatchName", func(t *testing.T) {
		doc := createTestDocument(t)

		err := doc.AddStream("", []DataPoint{{Offset: 0, Value: 1}})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidMatchName)
	})

	t.Run("StrictRangeRejectsOutOfRange", func(t *testing.T) {
		doc := createTestDocument(t, WithStrictLegalRange())

		err := doc.AddStream("huge", []DataPoint{{Offset: 0, Value: 1e12}})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueOutOfRange)
		require.Empty(t, doc.outlines)
	})
}

func TestAddStreamFromRows(t *testing.T) {
	type reading struct {
		at  time.Duration
		val float64
	}

	doc := createTestDocument(t)

	readings := []reading{
		{at: 0, val: 1.0},
		{at: 2230 * time.Millisecond, val: 0.777},
	}

	err := AddStreamFromRows(doc, "temperature", readings, func(r reading) (float64, float64) {
		return r.at.Seconds(), r.val
	})
	require.NoError(t, err)
	require.Equal(t, 1, doc.StreamCount())

	set := doc.sampleSets[0]
	require.Equal(t, "1970-01-01T00:00:02.230Z", set.Samples[1].Time)
	require.Equal(t, "+000.777000000000000", set.Samples[1].Value)
}

// timestampFor mirrors the codec for order-preservation assertions.
func timestampFor(offsetSec float64) (string, error) {
	return time.UnixMicro(int64(math.Round(offsetSec * 1e6))).UTC().Format("2006-01-02T15:04:05.000Z07:00"), nil
}
