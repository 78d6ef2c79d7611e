package counter_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rookpad/counter"
)

// TestDistribution_LengthTwo checks the per-digit vector after one step.
// Each digit's count equals the number of valid starts that reach it.
func TestDistribution_LengthTwo(t *testing.T) {
	e := newEngine(t)
	got, err := e.Distribution(2)
	require.NoError(t, err)
	assert.Equal(t, [10]uint64{3, 4, 3, 3, 3, 4, 4, 3, 4, 4}, got)
}

func TestDistribution_LengthOne(t *testing.T) {
	e := newEngine(t)
	got, err := e.Distribution(1)
	require.NoError(t, err)
	assert.Equal(t, [10]uint64{0, 0, 1, 1, 1, 1, 1, 1, 1, 1}, got)

	zero, err := e.Distribution(0)
	require.NoError(t, err)
	assert.Equal(t, [10]uint64{}, zero)
}

// TestDistribution_MatchesEnumeration tallies the last digit of every
// enumerated sequence and compares with the DP vector.
func TestDistribution_MatchesEnumeration(t *testing.T) {
	e := newEngine(t)
	for l := 1; l <= 5; l++ {
		var tally [10]uint64
		_, err := e.Count(l, counter.Enumeration, counter.WithOnSequence(func(seq string) error {
			tally[seq[len(seq)-1]-'0']++
			return nil
		}))
		require.NoError(t, err)

		dist, err := e.Distribution(l)
		require.NoError(t, err)
		assert.Equal(t, tally, dist, "length %d", l)
	}
}

func TestEndingDigits(t *testing.T) {
	e := newEngine(t)
	dist, err := e.Distribution(2)
	require.NoError(t, err)
	m := counter.EndingDigits(dist)
	assert.Len(t, m, 10)
	assert.Equal(t, uint64(4), m['5'])
	assert.Equal(t, uint64(3), m['0'])
}

// TestCountBig agrees with the uint64 path where it fits and keeps going
// past the overflow boundary.
func TestCountBig(t *testing.T) {
	e := newEngine(t)
	for l := 0; l <= 30; l++ {
		want, err := e.Count(l, counter.DynamicProgramming)
		require.NoError(t, err)
		got := e.CountBig(l)
		assert.Equal(t, 0, new(big.Int).SetUint64(want).Cmp(got), "length %d: %s vs %d", l, got, want)
	}

	limit := new(big.Int).SetUint64(^uint64(0))
	assert.Equal(t, 1, e.CountBig(31).Cmp(limit), "length 31 exceeds uint64")
	assert.Equal(t, 0, e.CountBig(-3).Sign())
}

func TestDP_Cancelled(t *testing.T) {
	e := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Count(5, counter.DynamicProgramming, counter.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// Length 1 takes no steps, so it never observes the context.
	got, err := e.Count(1, counter.DynamicProgramming, counter.WithContext(ctx))
	assert.NoError(t, err)
	assert.Equal(t, uint64(8), got)
}
