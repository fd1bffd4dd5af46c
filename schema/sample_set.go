package schema

// SampleSet holds the encoded samples for one stream. Its SampleSetID matches
// the SampleSetID (and match name) of the corresponding StreamOutline entry.
type SampleSet struct {
	SampleSetID string   `json:"sampleSetID"`
	Samples     []Sample `json:"samples"`
}

// Sample is one encoded data point: an absolute UTC timestamp string and a
// fixed-width numberString value.
type Sample struct {
	Time  string `json:"time"`
	Value string `json:"value"`
}
