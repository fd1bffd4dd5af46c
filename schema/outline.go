package schema

// OutlineEntry is a data outline entry: the type and range metadata for one
// static property or one stream, independent of any sample values.
//
// It is a sealed union over StaticOutline and StreamOutline so that the
// dataOutline array can hold both shapes in declaration order.
type OutlineEntry interface {
	// MatchName returns the schema-external identifier joining this entry to
	// its data (for streams, to the sample set with the same ID).
	MatchName() string

	outlineEntry()
}

// StaticOutline describes a single static property and carries its value.
type StaticOutline struct {
	ObjectType  string   `json:"objectType"`
	DisplayName string   `json:"displayName"`
	Name        string   `json:"matchName"`
	DataType    DataType `json:"dataType"`
	Value       any      `json:"value"`
}

// StreamOutline describes one stream of timestamped numeric samples. The
// sample values themselves live in the SampleSet with the same SampleSetID.
type StreamOutline struct {
	ObjectType  string   `json:"objectType"`
	DisplayName string   `json:"displayName"`
	SampleSetID string   `json:"sampleSetID"`
	DataType    DataType `json:"dataType"`
	// Interpolation hints how consumers interpolate between samples,
	// normally "hold" or "linear".
	Interpolation string `json:"interpolation"`
	// HasExpectedFrequencyB is always false: streams carry explicit
	// per-sample timestamps instead of a fixed sample rate. The JSON key
	// spelling ("Frequecy") is the schema's, not ours.
	HasExpectedFrequencyB bool   `json:"hasExpectedFrequecyB"`
	SampleCount           int    `json:"sampleCount"`
	Name                  string `json:"matchName"`
}

// DataType describes the value type of an outline entry. The two property
// blocks are optional; which of them is present depends on Type.
type DataType struct {
	Type                   string                  `json:"type"`
	NumberStringProperties *NumberStringProperties `json:"numberStringProperties,omitempty"`
	PaddedStringProperties *PaddedStringProperties `json:"paddedStringProperties,omitempty"`
}

// NumberStringProperties describes a numeric value: its digit pattern and its
// occurring and legal ranges.
type NumberStringProperties struct {
	Pattern Pattern `json:"pattern"`
	Range   Range   `json:"range"`
}

// Pattern is the fixed-width digit pattern of a numeric value.
type Pattern struct {
	IsSigned      bool `json:"isSigned"`
	DigitsInteger int  `json:"digitsInteger"`
	DigitsDecimal int  `json:"digitsDecimal"`
}

// Range pairs the observed value range with the schema's fixed legal range.
type Range struct {
	Occuring MinMax `json:"occuring"`
	Legal    MinMax `json:"legal"`
}

// MinMax is an inclusive numeric range.
type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PaddedStringProperties describes a string value or, with zero values, the
// unused string descriptor block required on stream outlines.
type PaddedStringProperties struct {
	MaxLen               int  `json:"maxLen"`
	MaxDigitsInStrLength int  `json:"maxDigitsInStrLength"`
	EventMarkerB         bool `json:"eventMarkerB"`
}

// MatchName implements OutlineEntry.
func (o StaticOutline) MatchName() string { return o.Name }

// MatchName implements OutlineEntry.
func (o StreamOutline) MatchName() string { return o.Name }

func (StaticOutline) outlineEntry() {}
func (StreamOutline) outlineEntry() {}
