package document

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/mgjson/errs"
	"github.com/arloliu/mgjson/internal/hash"
	"github.com/arloliu/mgjson/internal/options"
	"github.com/arloliu/mgjson/schema"
)

// marshalIndent is the indentation unit for the default output form.
const marshalIndent = "    "

// Document accumulates encoded outline entries and sample sets and projects
// them into the mgjson envelope on Marshal.
//
// A Document is mutated only by the Add operations; Marshal never mutates and
// may be called repeatedly with identical results. Failed Add operations
// leave the document unchanged.
//
// Note: A Document is NOT safe for concurrent use. Each instance should be
// populated by a single goroutine at a time; distinct instances share no
// state and are independently safe.
type Document struct {
	*DocumentConfig

	outlines   []schema.OutlineEntry
	sampleSets []schema.SampleSet

	// usedNames tracks match-name hashes, allocated lazily when unique
	// match-name checking is enabled.
	usedNames map[uint64]struct{}
}

// New creates an empty Document with the given options.
//
// Returns:
//   - *Document: New document ready for Add operations
//   - error: Configuration error if invalid options provided
func New(opts ...DocumentOption) (*Document, error) {
	config := NewDocumentConfig()

	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Document{
		DocumentConfig: config,
		outlines:       make([]schema.OutlineEntry, 0, initialOutlineCapacity),
	}, nil
}

// AddProperty encodes a static property and appends its outline entry to the
// document.
//
// Parameters:
//   - name: Match name identifying the property (must be non-empty)
//   - value: Property value, one of Int, Bool, or String
//   - opts: Optional per-property settings (WithDisplayName)
//
// Returns:
//   - error: ErrInvalidMatchName, ErrUnsupportedType, ErrDuplicateMatchName
//     or ErrValueOutOfRange depending on document options; the document is
//     unchanged on error
func (d *Document) AddProperty(name string, value Value, opts ...PropertyOption) error {
	var cfg propertyConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	if err := d.validateName(name); err != nil {
		return err
	}

	entry, err := d.buildStaticOutline(name, value, cfg)
	if err != nil {
		return err
	}

	d.recordName(name)
	d.outlines = append(d.outlines, entry)

	return nil
}

// AddPropertyValue encodes a static property from an untyped value.
//
// It accepts int, int32, int64, bool, and string values and maps them onto
// the corresponding Value kind. Any other type fails with ErrUnsupportedType.
// Callers with statically-typed values should prefer AddProperty, which rules
// the error out at compile time.
func (d *Document) AddPropertyValue(name string, value any, opts ...PropertyOption) error {
	var v Value

	switch val := value.(type) {
	case int:
		v = Int(int64(val))
	case int32:
		v = Int(int64(val))
	case int64:
		v = Int(val)
	case bool:
		v = Bool(val)
	case string:
		v = String(val)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedType, value)
	}

	return d.AddProperty(name, v, opts...)
}

// AddStream encodes a time-ordered sequence of numeric samples and appends
// its outline entry and sample set to the document atomically.
//
// The input is assumed already time-ordered; it is not sorted. Each data
// point is encoded independently: the offset through the timestamp codec, the
// value through the numberString codec.
//
// Parameters:
//   - name: Match name identifying the stream, also used as sample set ID
//   - points: Non-empty sequence of (offset, value) data points
//   - opts: Optional per-stream settings (WithStreamDisplayName, WithInterpolation)
//
// Returns:
//   - error: ErrInvalidMatchName, ErrEmptyStream, ErrNonFiniteValue,
//     ErrDuplicateMatchName or ErrValueOutOfRange depending on document
//     options; the document is unchanged on error
func (d *Document) AddStream(name string, points []DataPoint, opts ...StreamOption) error {
	var cfg streamConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	if err := d.validateName(name); err != nil {
		return err
	}

	outline, sampleSet, err := d.buildStream(name, points, cfg)
	if err != nil {
		return err
	}

	d.recordName(name)
	d.outlines = append(d.outlines, outline)
	d.sampleSets = append(d.sampleSets, sampleSet)

	return nil
}

// Marshal serializes the document to JSON text.
//
// The envelope shape depends on whether any stream was added: with streams
// present the dynamic shape carries the fixed UTC metadata block and the
// sample sets; without streams the static-only shape omits both. Output is
// 4-space indented unless WithCompactOutput was set.
//
// Marshal is a pure projection: it never mutates the document, and repeated
// calls on an unmodified document yield identical output.
func (d *Document) Marshal() ([]byte, error) {
	envelope := schema.Envelope{
		Version:                schema.Version,
		Creator:                d.creator,
		DynamicSamplesPresentB: d.HasDynamicSamples(),
		DataOutline:            d.outlines,
	}

	if d.HasDynamicSamples() {
		envelope.DynamicDataInfo = schema.NewDynamicDataInfo()
		envelope.DataDynamicSamples = d.sampleSets
	}

	if d.compact {
		return json.Marshal(envelope)
	}

	return json.MarshalIndent(envelope, "", marshalIndent)
}

// MarshalCompressed serializes the document and compresses the result with
// the codec configured via WithCompression. With the default
// format.CompressionNone it returns the plain JSON text.
func (d *Document) MarshalCompressed() ([]byte, error) {
	data, err := d.Marshal()
	if err != nil {
		return nil, err
	}

	compressed, err := d.codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress document: %w", err)
	}

	return compressed, nil
}

// PropertyCount returns the number of static properties added so far.
func (d *Document) PropertyCount() int {
	return len(d.outlines) - len(d.sampleSets)
}

// StreamCount returns the number of streams added so far.
func (d *Document) StreamCount() int {
	return len(d.sampleSets)
}

// HasDynamicSamples reports whether any stream was added. It selects the
// envelope shape on Marshal.
func (d *Document) HasDynamicSamples() bool {
	return len(d.sampleSets) > 0
}

// validateName checks a match name before any mutation takes place.
func (d *Document) validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: match name is empty", errs.ErrInvalidMatchName)
	}

	if d.uniqueNames {
		if _, exists := d.usedNames[hash.ID(name)]; exists {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateMatchName, name)
		}
	}

	return nil
}

// recordName marks a match name as used. Called only after the entry built
// for it is known to be valid.
func (d *Document) recordName(name string) {
	if !d.uniqueNames {
		return
	}

	if d.usedNames == nil {
		d.usedNames = make(map[uint64]struct{})
	}
	d.usedNames[hash.ID(name)] = struct{}{}
}
