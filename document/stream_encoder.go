package document

import (
	"fmt"
	"math"

	"github.com/arloliu/mgjson/errs"
	"github.com/arloliu/mgjson/internal/options"
)

// StreamEncoder builds one stream incrementally. Data points accumulate in
// the encoder and nothing touches the document until Finish, which appends
// the outline entry and sample set atomically.
//
// A StreamEncoder is single-use: after Finish (successful or not for
// validation reasons other than lifecycle), create a new encoder for the next
// stream. Like the Document it belongs to, it is not safe for concurrent use.
type StreamEncoder struct {
	doc      *Document
	name     string
	cfg      streamConfig
	points   []DataPoint
	finished bool
}

// NewStream creates a StreamEncoder that will add a stream with the given
// match name to the document on Finish.
//
// Returns:
//   - *StreamEncoder: Encoder ready for AddDataPoint calls
//   - error: ErrInvalidMatchName, ErrDuplicateMatchName, or option errors
func (d *Document) NewStream(name string, opts ...StreamOption) (*StreamEncoder, error) {
	var cfg streamConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := d.validateName(name); err != nil {
		return nil, err
	}

	return &StreamEncoder{
		doc:  d,
		name: name,
		cfg:  cfg,
	}, nil
}

// AddDataPoint appends one sample to the stream being built. Samples must be
// added in time order; the encoder does not sort them.
//
// Returns:
//   - error: ErrStreamFinished after Finish, or ErrNonFiniteValue for NaN or
//     infinite inputs
func (s *StreamEncoder) AddDataPoint(offsetSec float64, value float64) error {
	if s.finished {
		return fmt.Errorf("%w: stream %q", errs.ErrStreamFinished, s.name)
	}

	if math.IsNaN(offsetSec) || math.IsInf(offsetSec, 0) {
		return fmt.Errorf("%w: stream %q offset %f", errs.ErrNonFiniteValue, s.name, offsetSec)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: stream %q value %f", errs.ErrNonFiniteValue, s.name, value)
	}

	s.points = append(s.points, DataPoint{Offset: offsetSec, Value: value})

	return nil
}

// Count returns the number of data points added so far.
func (s *StreamEncoder) Count() int {
	return len(s.points)
}

// Finish encodes the accumulated samples and appends the stream's outline
// entry and sample set to the document in one step.
//
// Returns:
//   - error: ErrStreamFinished on reuse, ErrEmptyStream when no data points
//     were added, ErrDuplicateMatchName if the name was claimed by another
//     entry since NewStream, or encoding errors; the document is unchanged
//     on error
func (s *StreamEncoder) Finish() error {
	if s.finished {
		return fmt.Errorf("%w: stream %q", errs.ErrStreamFinished, s.name)
	}

	// The name was validated in NewStream, but another entry may have claimed
	// it while this encoder accumulated data points.
	if err := s.doc.validateName(s.name); err != nil {
		return err
	}

	outline, sampleSet, err := s.doc.buildStream(s.name, s.points, s.cfg)
	if err != nil {
		return err
	}

	s.finished = true
	s.doc.recordName(s.name)
	s.doc.outlines = append(s.doc.outlines, outline)
	s.doc.sampleSets = append(s.doc.sampleSets, sampleSet)

	return nil
}
