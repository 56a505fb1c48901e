package midiio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/AIdirectory/DeepJ/internal/encoding"
)

const testTPQ = 480 // ticks per quarter; the parser's grid step is a sixteenth (120)

type timedMessage struct {
	delta uint32
	msg   midi.Message
}

func writeSMF(t *testing.T, msgs []timedMessage) string {
	t.Helper()

	var tr smf.Track
	for _, m := range msgs {
		tr.Add(m.delta, m.msg)
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(testTPQ)
	s.Add(tr)

	path := filepath.Join(t.TempDir(), "test.mid")
	require.NoError(t, s.WriteFile(path))
	return path
}

func TestParse_NotesAndTimeShifts(t *testing.T) {
	codec := encoding.New(128, 32)

	// One quarter note on middle C, then an eighth-note gap, then a
	// quarter on E.
	path := writeSMF(t, []timedMessage{
		{delta: 0, msg: midi.NoteOn(0, 60, 100)},
		{delta: 480, msg: midi.NoteOff(0, 60)},
		{delta: 240, msg: midi.NoteOn(0, 64, 100)},
		{delta: 480, msg: midi.NoteOff(0, 64)},
	})

	seq, err := NewParser(codec).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []int{
		codec.NoteOn(60),
		codec.TimeShift(3), // 480 ticks = 4 sixteenth steps
		codec.NoteOff(60),
		codec.TimeShift(1), // 240 ticks = 2 steps
		codec.NoteOn(64),
		codec.TimeShift(3),
		codec.NoteOff(64),
	}, seq)
}

func TestParse_LongSilenceChains(t *testing.T) {
	// 8 quarters of silence = 32 sixteenth steps with an 8-bucket
	// codec: the shift must chain, 8+8+8+8.
	codec := encoding.New(128, 8)

	path := writeSMF(t, []timedMessage{
		{delta: 0, msg: midi.NoteOn(0, 60, 100)},
		{delta: 8 * 480, msg: midi.NoteOff(0, 60)},
	})

	seq, err := NewParser(codec).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []int{
		codec.NoteOn(60),
		codec.TimeShift(7),
		codec.TimeShift(7),
		codec.TimeShift(7),
		codec.TimeShift(7),
		codec.NoteOff(60),
	}, seq)
}

func TestParse_VelocityZeroNoteOnEndsTheNote(t *testing.T) {
	codec := encoding.New(128, 32)

	path := writeSMF(t, []timedMessage{
		{delta: 0, msg: midi.NoteOn(0, 60, 100)},
		{delta: 480, msg: midi.NoteOn(0, 60, 0)},
	})

	seq, err := NewParser(codec).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []int{
		codec.NoteOn(60),
		codec.TimeShift(3),
		codec.NoteOff(60),
	}, seq)
}

func TestParse_DropsNotesOutsideRange(t *testing.T) {
	// A 64-note codec cannot represent key 100.
	codec := encoding.New(64, 32)

	path := writeSMF(t, []timedMessage{
		{delta: 0, msg: midi.NoteOn(0, 100, 100)},
		{delta: 0, msg: midi.NoteOn(0, 40, 100)},
		{delta: 480, msg: midi.NoteOff(0, 100)},
		{delta: 0, msg: midi.NoteOff(0, 40)},
	})

	seq, err := NewParser(codec).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []int{
		codec.NoteOn(40),
		codec.TimeShift(3),
		codec.NoteOff(40),
	}, seq)
}

func TestParse_MissingFile(t *testing.T) {
	codec := encoding.New(128, 32)

	_, err := NewParser(codec).Parse(filepath.Join(t.TempDir(), "nope.mid"))
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestParse_CorruptFile(t *testing.T) {
	codec := encoding.New(128, 32)

	path := filepath.Join(t.TempDir(), "garbage.mid")
	require.NoError(t, os.WriteFile(path, []byte("this is not a MIDI file"), 0o644))

	_, err := NewParser(codec).Parse(path)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}
