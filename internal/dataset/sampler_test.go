package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampler_SampleShapeAndAlignment(t *testing.T) {
	c := testCodec()
	rng := rand.New(rand.NewSource(11))

	events := testComposition(c, 100, rng)
	comp := &Composition{
		Events:   events,
		Style:    2,
		Progress: ProgressMatrix(len(events), 3),
	}

	s, err := NewSampler(c, []*Composition{comp}, 4, rng)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		sample, err := s.Sample(32)
		require.NoError(t, err)

		assert.Len(t, sample.Events, 32)
		assert.Equal(t, 2, sample.Style)
		require.Len(t, sample.Progress, 32, "progress rows must align with the window")
		for _, row := range sample.Progress {
			assert.Len(t, row, 3)
		}
	}
}

func TestNewSampler_EmptySplit(t *testing.T) {
	c := testCodec()
	rng := rand.New(rand.NewSource(11))

	_, err := NewSampler(c, nil, 4, rng)
	assert.Error(t, err)
}

func TestBatcher_Shapes(t *testing.T) {
	c := testCodec()
	rng := rand.New(rand.NewSource(5))

	events := testComposition(c, 10, rng)
	require.GreaterOrEqual(t, len(events), 20)
	comp := &Composition{
		Events:   events[:20],
		Style:    3,
		Progress: ProgressMatrix(20, 3),
	}

	s, err := NewSampler(c, []*Composition{comp}, 4, rng)
	require.NoError(t, err)

	b, err := NewBatcher(s).Batch(4, 8)
	require.NoError(t, err)

	require.Len(t, b.Events, 4)
	require.Len(t, b.Styles, 4)
	require.Len(t, b.Progress, 4)
	for i := 0; i < 4; i++ {
		assert.Len(t, b.Events[i], 8)
		assert.Equal(t, 3, b.Styles[i], "single-composition corpus: every tag matches")
		require.Len(t, b.Progress[i], 8)
		for _, row := range b.Progress[i] {
			assert.Len(t, row, 3)
		}
	}
}
