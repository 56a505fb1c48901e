// Package encoding defines the integer event encoding shared by the
// MIDI parser and the sampling pipeline. The legal code space is three
// contiguous ranges: note-ons, note-offs, then quantized time shifts.
package encoding

import "fmt"

// Kind identifies which range an event code falls in.
type Kind int

const (
	KindNoteOn Kind = iota
	KindNoteOff
	KindTimeShift
)

func (k Kind) String() string {
	switch k {
	case KindNoteOn:
		return "note-on"
	case KindNoteOff:
		return "note-off"
	case KindTimeShift:
		return "time-shift"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a classified event code.
// Note is set for note-ons and note-offs, Shift for time shifts.
type Event struct {
	Kind  Kind
	Note  int
	Shift int
}

// InvalidEventCodeError reports a code outside every configured range.
// It indicates a parser/config mismatch, not malformed input, so
// ingestion of the offending composition is aborted.
type InvalidEventCodeError struct {
	Code       int
	NumActions int
}

func (e *InvalidEventCodeError) Error() string {
	return fmt.Sprintf("invalid event code %d (legal range [0, %d))", e.Code, e.NumActions)
}

// Codec interprets raw integer event codes. The zero value is not
// usable; construct one with New.
type Codec struct {
	numNotes         int
	timeQuantization int
}

func New(numNotes, timeQuantization int) Codec {
	return Codec{numNotes: numNotes, timeQuantization: timeQuantization}
}

func (c Codec) NumNotes() int { return c.numNotes }

func (c Codec) TimeQuantization() int { return c.timeQuantization }

// NoteOnOffset is the first note-on code. Note-ons occupy
// [NoteOnOffset, NoteOffOffset).
func (c Codec) NoteOnOffset() int { return 0 }

// NoteOffOffset is the first note-off code. Note-offs occupy
// [NoteOffOffset, TimeOffset).
func (c Codec) NoteOffOffset() int { return c.numNotes }

// TimeOffset is the first time-shift code. Time shifts occupy
// [TimeOffset, NumActions).
func (c Codec) TimeOffset() int { return 2 * c.numNotes }

// NumActions is the size of the legal code space.
func (c Codec) NumActions() int { return 2*c.numNotes + c.timeQuantization }

// MaxSilence is the longest time-shift code, used to pad windows that
// run past the end of a track.
func (c Codec) MaxSilence() int { return c.TimeOffset() + c.timeQuantization - 1 }

// NoteOn returns the code for a note-on of the given note number.
func (c Codec) NoteOn(note int) int { return c.NoteOnOffset() + note }

// NoteOff returns the code for a note-off of the given note number.
func (c Codec) NoteOff(note int) int { return c.NoteOffOffset() + note }

// TimeShift returns the code for the given quantization bucket.
func (c Codec) TimeShift(bucket int) int { return c.TimeOffset() + bucket }

// Classify maps a raw code to its event. Every code in
// [0, NumActions) maps to exactly one variant.
func (c Codec) Classify(code int) (Event, error) {
	switch {
	case code < 0 || code >= c.NumActions():
		return Event{}, &InvalidEventCodeError{Code: code, NumActions: c.NumActions()}
	case code < c.NoteOffOffset():
		return Event{Kind: KindNoteOn, Note: code - c.NoteOnOffset()}, nil
	case code < c.TimeOffset():
		return Event{Kind: KindNoteOff, Note: code - c.NoteOffOffset()}, nil
	default:
		return Event{Kind: KindTimeShift, Shift: code - c.TimeOffset()}, nil
	}
}

// IsPitchBearing reports whether the code is a note-on or note-off,
// i.e. whether pitch transposition applies to it.
func (c Codec) IsPitchBearing(code int) bool {
	return code >= 0 && code < c.TimeOffset()
}
