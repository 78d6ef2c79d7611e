package counter

import (
	"fmt"
	"math/big"
	"math/bits"

	"go.uber.org/zap"

	"github.com/katalvlaran/rookpad/keypad"
)

// Distribution returns, for each digit 0..9, the number of sequences of the
// given length ending on that digit. A length ≤ 0 yields the zero vector.
func (e *Engine) Distribution(length int, opts ...Option) ([10]uint64, error) {
	if length <= 0 {
		return [10]uint64{}, nil
	}

	return e.propagate(length, e.resolve(opts))
}

// propagate runs the recurrence up to length and returns the final count
// vector. Only the previous vector is kept between steps.
func (e *Engine) propagate(length int, o Options) ([10]uint64, error) {
	var counts [10]uint64
	for _, d := range e.starts {
		counts[d] = 1
	}

	for step := 2; step <= length; step++ {
		select {
		case <-o.Ctx.Done():
			return [10]uint64{}, o.Ctx.Err()
		default:
		}

		var next [10]uint64
		for from, c := range counts {
			if c == 0 {
				continue
			}
			for _, k := range e.adj.FromDigit(from) {
				to, _ := k.Digit()
				s, carry := bits.Add64(next[to], c, 0)
				if carry != 0 {
					return [10]uint64{}, fmt.Errorf("counter: length %d, digit %s: %w", step, k, ErrOverflow)
				}
				next[to] = s
			}
		}
		counts = next

		if ce := o.Logger.Check(zap.DebugLevel, "dp step"); ce != nil {
			ce.Write(zap.Int("length", step), zap.Uint64s("counts", counts[:]))
		}
	}

	return counts, nil
}

// sum totals a count vector, reporting ErrOverflow if it exceeds uint64.
func sum(counts [10]uint64, length int) (uint64, error) {
	var total uint64
	for _, c := range counts {
		var carry uint64
		total, carry = bits.Add64(total, c, 0)
		if carry != 0 {
			return 0, fmt.Errorf("counter: total for length %d: %w", length, ErrOverflow)
		}
	}

	return total, nil
}

// CountBig runs the DP recurrence with arbitrary precision. It never
// overflows; a length ≤ 0 yields 0.
func (e *Engine) CountBig(length int) *big.Int {
	total := new(big.Int)
	if length <= 0 {
		return total
	}

	var counts [10]*big.Int
	for d := range counts {
		counts[d] = new(big.Int)
	}
	for _, d := range e.starts {
		counts[d].SetInt64(1)
	}

	for step := 2; step <= length; step++ {
		var next [10]*big.Int
		for d := range next {
			next[d] = new(big.Int)
		}
		for from, c := range counts {
			if c.Sign() == 0 {
				continue
			}
			for _, k := range e.adj.FromDigit(from) {
				to, _ := k.Digit()
				next[to].Add(next[to], c)
			}
		}
		counts = next
	}

	for _, c := range counts {
		total.Add(total, c)
	}

	return total
}

// EndingDigits pairs each digit key with its entry in a Distribution vector.
func EndingDigits(counts [10]uint64) map[keypad.Key]uint64 {
	m := make(map[keypad.Key]uint64, len(counts))
	for d, c := range counts {
		m[keypad.DigitKey(d)] = c
	}

	return m
}
