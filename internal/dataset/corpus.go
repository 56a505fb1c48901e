// Package dataset prepares event-encoded compositions for model
// training: it loads a corpus of styled music sequences, partitions it
// into training and validation sets, and samples fixed-length,
// musically-consistent windows with pitch augmentation and positional
// progress labels.
package dataset

import (
	"github.com/AIdirectory/DeepJ/internal/encoding"
)

// Composition is one full piece: its ordered event codes, the style it
// was loaded under, and its precomputed progress labels. Immutable once
// the corpus is built.
type Composition struct {
	Events []int
	// Style indexes the corpus's ordered style list.
	Style int
	// Progress is len(Events) rows of one-hot position categories.
	Progress [][]float64
}

// Corpus owns every loaded composition. Read-only during sampling, so
// concurrent samplers need no locking.
type Corpus struct {
	Styles       []string
	Compositions []*Composition

	codec encoding.Codec
}

func (c *Corpus) Codec() encoding.Codec { return c.codec }

// Len returns the number of loaded compositions.
func (c *Corpus) Len() int { return len(c.Compositions) }
