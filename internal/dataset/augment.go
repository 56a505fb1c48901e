package dataset

import (
	"math/rand"

	"github.com/AIdirectory/DeepJ/internal/encoding"
)

// Transpose shifts every pitch-bearing event in the window by a single
// random number of semitones; time shifts pass through untouched. The
// draw range starts at [-maxShift, maxShift] and is narrowed to the
// transpositions that keep every note in the window inside the codec's
// note range, so the result never needs clamping. A draw of zero
// returns the window unmodified.
func Transpose(c encoding.Codec, window []int, maxShift int, rng *rand.Rand) []int {
	lo, hi := -maxShift, maxShift
	for _, code := range window {
		if !c.IsPitchBearing(code) {
			continue
		}
		note := code - c.NoteOnOffset()
		if code >= c.NoteOffOffset() {
			note = code - c.NoteOffOffset()
		}
		if -note > lo {
			lo = -note
		}
		if room := c.NumNotes() - 1 - note; room < hi {
			hi = room
		}
	}
	if lo > hi {
		return window
	}

	t := lo + rng.Intn(hi-lo+1)
	if t == 0 {
		return window
	}

	out := make([]int, len(window))
	for i, code := range window {
		if c.IsPitchBearing(code) {
			// Shifting the raw code shifts the note number for both
			// note-ons and note-offs.
			out[i] = code + t
		} else {
			out[i] = code
		}
	}
	return out
}
