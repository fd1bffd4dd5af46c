package schema

// Envelope is the top-level mgjson document.
//
// Two shapes exist: the dynamic shape carries DynamicDataInfo and
// DataDynamicSamples alongside the outline, the static-only shape omits both.
// DynamicSamplesPresentB selects between them.
type Envelope struct {
	Version                string           `json:"version"`
	Creator                string           `json:"creator"`
	DynamicSamplesPresentB bool             `json:"dynamicSamplesPresentB"`
	DynamicDataInfo        *DynamicDataInfo `json:"dynamicDataInfo,omitempty"`
	DataOutline            []OutlineEntry   `json:"dataOutline"`
	DataDynamicSamples     []SampleSet      `json:"dataDynamicSamples,omitempty"`
}

// DynamicDataInfo is the fixed metadata block present on dynamic documents.
type DynamicDataInfo struct {
	UseTimecodeB bool    `json:"useTimecodeB"`
	UTCInfo      UTCInfo `json:"utcInfo"`
}

// UTCInfo describes how sample timestamps are rendered.
type UTCInfo struct {
	PrecisionLength int  `json:"precisionLength"`
	IsGMT           bool `json:"isGMT"`
}

// NewDynamicDataInfo returns the fixed dynamic metadata block: UTC timestamps
// at millisecond precision, no timecode.
func NewDynamicDataInfo() *DynamicDataInfo {
	return &DynamicDataInfo{
		UseTimecodeB: false,
		UTCInfo: UTCInfo{
			PrecisionLength: UTCPrecisionLength,
			IsGMT:           true,
		},
	}
}
