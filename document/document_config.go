package document

import (
	"github.com/arloliu/mgjson/compress"
	"github.com/arloliu/mgjson/format"
	"github.com/arloliu/mgjson/internal/options"
	"github.com/arloliu/mgjson/schema"
)

// initialOutlineCapacity is the initial capacity of the outline sequence.
// Most documents declare a handful of properties and streams.
const initialOutlineCapacity = 8

// DocumentConfig holds the document-level configuration applied at creation
// time: creator tag, output shape, compression, and validation policies.
type DocumentConfig struct {
	creator     string
	compact     bool
	uniqueNames bool
	strictRange bool
	compression format.CompressionType
	codec       compress.Codec
}

// NewDocumentConfig creates a DocumentConfig with default settings: the
// default creator tag, indented output, no compression, and the schema's
// observed lenient validation behavior.
func NewDocumentConfig() *DocumentConfig {
	return &DocumentConfig{
		creator:     schema.DefaultCreator,
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCodec(),
	}
}

// Creator returns the creator tag emitted in the document envelope.
func (c *DocumentConfig) Creator() string {
	return c.creator
}

// Compression returns the compression type used by MarshalCompressed.
func (c *DocumentConfig) Compression() format.CompressionType {
	return c.compression
}

// setCompression sets the compression type and resolves its codec.
func (c *DocumentConfig) setCompression(compressionType format.CompressionType) error {
	codec, err := compress.CreateCodec(compressionType)
	if err != nil {
		return err
	}

	c.compression = compressionType
	c.codec = codec

	return nil
}

// DocumentOption represents a functional option for configuring a Document.
type DocumentOption = options.Option[*DocumentConfig]

// WithCreator sets the creator tag emitted in the document envelope.
func WithCreator(creator string) DocumentOption {
	return options.NoError(func(c *DocumentConfig) {
		c.creator = creator
	})
}

// WithCompactOutput makes Marshal emit compact JSON instead of the default
// 4-space indented form.
func WithCompactOutput() DocumentOption {
	return options.NoError(func(c *DocumentConfig) {
		c.compact = true
	})
}

// WithCompression sets the compression algorithm used by MarshalCompressed.
// The default is format.CompressionNone.
func WithCompression(compressionType format.CompressionType) DocumentOption {
	return options.New(func(c *DocumentConfig) error {
		return c.setCompression(compressionType)
	})
}

// WithUniqueMatchNames enables duplicate match-name detection. The schema
// treats match names as externally-managed identifiers and does not require
// uniqueness, so tracking is off by default. With tracking enabled, reusing a
// match name fails with ErrDuplicateMatchName before any mutation.
func WithUniqueMatchNames() DocumentOption {
	return options.NoError(func(c *DocumentConfig) {
		c.uniqueNames = true
	})
}

// WithStrictLegalRange rejects values outside the schema's fixed legal range
// [-2147483648, 2147483648] with ErrValueOutOfRange. By default out-of-range
// values are accepted and emitted unchanged, matching observed producer
// behavior, even though the resulting document then carries an inconsistent
// legal-range claim.
func WithStrictLegalRange() DocumentOption {
	return options.NoError(func(c *DocumentConfig) {
		c.strictRange = true
	})
}

// propertyConfig holds per-property settings.
type propertyConfig struct {
	displayName string
}

// streamConfig holds per-stream settings.
type streamConfig struct {
	displayName   string
	interpolation format.Interpolation
}

// PropertyOption represents a functional option for a single AddProperty or
// AddPropertyValue call.
type PropertyOption = options.Option[*propertyConfig]

// StreamOption represents a functional option for a single AddStream or
// NewStream call.
type StreamOption = options.Option[*streamConfig]

// WithDisplayName overrides the display name of a static property. Without
// it, the display name defaults to the match name with its first character
// upper-cased and the remainder lower-cased.
func WithDisplayName(displayName string) PropertyOption {
	return options.NoError(func(c *propertyConfig) {
		c.displayName = displayName
	})
}

// WithStreamDisplayName overrides the display name of a stream. The same
// default rule as WithDisplayName applies.
func WithStreamDisplayName(displayName string) StreamOption {
	return options.NoError(func(c *streamConfig) {
		c.displayName = displayName
	})
}

// WithInterpolation sets the stream's interpolation hint. The default is
// format.InterpolationHold. The value is emitted verbatim; the schema does
// not restrict the field to a closed enum.
func WithInterpolation(interpolation format.Interpolation) StreamOption {
	return options.NoError(func(c *streamConfig) {
		c.interpolation = interpolation
	})
}
