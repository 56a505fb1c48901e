package dataset

import (
	"fmt"
	"math/rand"

	"github.com/AIdirectory/DeepJ/internal/encoding"
)

// RandomWindow extracts a window of exactly length events from seq,
// starting at a position drawn uniformly from [0, len(seq)-length].
// It returns the window and the source index range [start, end) that
// slices the matching progress rows.
//
// The window is repaired to look like a musically valid excerpt:
// note-offs whose matching note-on lies before the window start are
// dropped without consuming an output slot, and if the source runs out
// before the window fills, the remaining slots are padded with
// maximum-silence time shifts. A single pass with one sounding-note
// set and two cursors (source, output) that diverge only when orphan
// note-offs are skipped.
func RandomWindow(c encoding.Codec, seq []int, length int, rng *rand.Rand) (window []int, start, end int, err error) {
	if length < 1 || length > len(seq) {
		return nil, 0, 0, fmt.Errorf("window length %d out of range for sequence of %d events", length, len(seq))
	}

	start = rng.Intn(len(seq) - length + 1)
	window, err = WindowAt(c, seq, length, start)
	if err != nil {
		return nil, 0, 0, err
	}
	return window, start, start + length, nil
}

// WindowAt extracts the repaired window of exactly length events
// beginning at the given source position. Starts close enough to the
// track end that the source runs out are legal; the shortfall is
// padded.
func WindowAt(c encoding.Codec, seq []int, length, start int) ([]int, error) {
	window := make([]int, 0, length)
	sounding := make(map[int]struct{})

	cur := start
	for len(window) < length {
		if cur >= len(seq) {
			// Ran out of events because orphan note-offs were skipped.
			// Pad with max silence for end of track.
			window = append(window, c.MaxSilence())
			cur++
			continue
		}

		code := seq[cur]
		ev, err := c.Classify(code)
		if err != nil {
			return nil, err
		}

		switch ev.Kind {
		case encoding.KindNoteOff:
			if _, ok := sounding[ev.Note]; !ok {
				// The matching note-on precedes the window: drop the
				// orphan and retry this slot with the next source event.
				cur++
				continue
			}
			delete(sounding, ev.Note)
		case encoding.KindNoteOn:
			sounding[ev.Note] = struct{}{}
		}

		window = append(window, code)
		cur++
	}

	return window, nil
}
