package dataset

import (
	"math/rand"

	"github.com/AIdirectory/DeepJ/internal/encoding"
)

// Sample is one training example: a consistency-repaired window of
// event codes, the style tag of its source composition, and the
// progress rows matching the window's source positions.
type Sample struct {
	Events   []int
	Style    int
	Progress [][]float64
}

// Sampler draws windows from the compositions of one split side. The
// random source is owned by the caller; a Sampler is safe for
// concurrent use only when each goroutine gets its own rand.Rand.
type Sampler struct {
	codec    encoding.Codec
	comps    []*Composition
	maxShift int
	rng      *rand.Rand
}

// NewSampler binds a sampler to the given compositions. Fails with
// InsufficientDataError up front rather than on the first draw.
func NewSampler(codec encoding.Codec, comps []*Composition, maxShift int, rng *rand.Rand) (*Sampler, error) {
	if len(comps) == 0 {
		return nil, &InsufficientDataError{Context: "no compositions to sample from"}
	}
	return &Sampler{codec: codec, comps: comps, maxShift: maxShift, rng: rng}, nil
}

// Sample draws one random composition, extracts a random window of
// seqLen events, transposes it, and slices the matching progress rows.
func (s *Sampler) Sample(seqLen int) (Sample, error) {
	comp := s.comps[s.rng.Intn(len(s.comps))]

	window, start, end, err := RandomWindow(s.codec, comp.Events, seqLen, s.rng)
	if err != nil {
		return Sample{}, err
	}

	return Sample{
		Events:   Transpose(s.codec, window, s.maxShift, s.rng),
		Style:    comp.Style,
		Progress: comp.Progress[start:end],
	}, nil
}
