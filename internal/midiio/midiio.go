// Package midiio parses standard MIDI files into the pipeline's
// integer event encoding.
package midiio

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/AIdirectory/DeepJ/internal/encoding"
)

// ParseError reports an unreadable or corrupt score file. Callers skip
// the file and keep loading.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser reads SMF files and flattens them into ordered event-code
// sequences: note-ons, note-offs, and quantized time shifts between
// them.
type Parser struct {
	codec encoding.Codec
}

func NewParser(codec encoding.Codec) *Parser {
	return &Parser{codec: codec}
}

// noteEvent is a note message with its absolute tick position.
type noteEvent struct {
	tick uint64
	key  uint8
	off  bool
}

// Parse reads the MIDI file at path and returns its event codes in
// playback order. Notes outside the codec's note range are dropped;
// elapsed ticks between messages are rounded to a sixteenth-note grid
// and emitted as time shifts.
func (p *Parser) Parse(path string) ([]int, error) {
	data, err := smf.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	ticks, ok := data.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unsupported time format %v", data.TimeFormat)}
	}

	// Merge note messages from all tracks into absolute-tick order.
	// GetNoteEnd also covers running-status note-ons with velocity 0.
	var notes []noteEvent
	for _, track := range data.Tracks {
		var tick uint64
		var ch, key, vel uint8
		for _, ev := range track {
			tick += uint64(ev.Delta)
			switch {
			case ev.Message.GetNoteStart(&ch, &key, &vel):
				notes = append(notes, noteEvent{tick: tick, key: key})
			case ev.Message.GetNoteEnd(&ch, &key):
				notes = append(notes, noteEvent{tick: tick, key: key, off: true})
			}
		}
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].tick < notes[j].tick })

	// Sixteenth-note quantization grid.
	step := uint64(ticks) / 4
	if step == 0 {
		step = 1
	}

	var out []int
	var last uint64
	for _, n := range notes {
		out = p.appendShifts(out, n.tick-last, step)
		last = n.tick

		if int(n.key) >= p.codec.NumNotes() {
			continue
		}
		if n.off {
			out = append(out, p.codec.NoteOff(int(n.key)))
		} else {
			out = append(out, p.codec.NoteOn(int(n.key)))
		}
	}
	return out, nil
}

// appendShifts emits time-shift events covering delta ticks, rounded
// to the grid. Bucket b spans b+1 grid steps, so a single shift covers
// at most TimeQuantization steps and longer silences chain.
func (p *Parser) appendShifts(out []int, delta, step uint64) []int {
	units := int((delta + step/2) / step)
	for units > 0 {
		n := units
		if n > p.codec.TimeQuantization() {
			n = p.codec.TimeQuantization()
		}
		out = append(out, p.codec.TimeShift(n-1))
		units -= n
	}
	return out
}
