package counter_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rookpad/counter"
)

// TestSequences_LengthTwo materializes every two-digit sequence and checks
// each against the start rule and the blocked keys.
func TestSequences_LengthTwo(t *testing.T) {
	e := newEngine(t)
	seqs, err := e.Sequences(2)
	require.NoError(t, err)
	require.Len(t, seqs, 35)

	// Start 2 comes first, in direction order: down 5 8 0, right 3, left 1.
	assert.Equal(t, []string{"25", "28", "20", "23", "21"}, seqs[:5])

	seen := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
		assert.NotContains(t, "01", s[:1], "invalid start in %s", s)
		assert.False(t, strings.ContainsAny(s, "*#"), "blocked key in %s", s)
	}
}

func TestSequences_NonPositive(t *testing.T) {
	e := newEngine(t)
	seqs, err := e.Sequences(0)
	assert.NoError(t, err)
	assert.Empty(t, seqs)
}

func TestEnumeration_MaxLength(t *testing.T) {
	e := newEngine(t, counter.WithMaxLength(4))

	_, err := e.Count(4, counter.Enumeration)
	assert.NoError(t, err)

	_, err = e.Count(5, counter.Enumeration)
	assert.ErrorIs(t, err, counter.ErrLengthLimit)

	// DP ignores the enumeration bound.
	got, err := e.Count(5, counter.DynamicProgramming)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2702), got)
}

func TestEnumeration_MaxResults(t *testing.T) {
	e := newEngine(t)

	got, err := e.Count(3, counter.Enumeration, counter.WithMaxResults(148))
	require.NoError(t, err)
	assert.Equal(t, uint64(148), got)

	got, err = e.Count(3, counter.Enumeration, counter.WithMaxResults(100))
	assert.ErrorIs(t, err, counter.ErrResultLimit)
	assert.Equal(t, uint64(100), got)

	_, err = e.Sequences(3, counter.WithMaxResults(10))
	assert.ErrorIs(t, err, counter.ErrResultLimit)
}

// TestEnumeration_OnSequence verifies the hook sees every sequence and
// that a hook error aborts the walk.
func TestEnumeration_OnSequence(t *testing.T) {
	e := newEngine(t)

	var n int
	got, err := e.Count(3, counter.Enumeration, counter.WithOnSequence(func(seq string) error {
		assert.Len(t, seq, 3)
		n++
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(n), got)

	stop := errors.New("stop")
	_, err = e.Count(3, counter.Enumeration, counter.WithOnSequence(func(seq string) error {
		if seq == "258" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestEnumeration_Cancelled(t *testing.T) {
	e := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Count(6, counter.Enumeration, counter.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
