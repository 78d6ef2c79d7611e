package rook

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rookpad/keypad"
)

// Adjacency maps each digit to the digits reachable from it in one slide.
// It is derived from the grid by BuildAdjacency and read-only afterwards,
// so concurrent readers need no locking.
type Adjacency struct {
	next [10][]keypad.Key
}

// BuildAdjacency runs ReachableFrom once per digit and caches the landing
// keys in direction order.
// Complexity: O(10 × (Rows + Cols)).
func BuildAdjacency(kp *keypad.Keypad) (*Adjacency, error) {
	if kp == nil {
		return nil, ErrNilKeypad
	}

	adj := &Adjacency{}
	for _, k := range kp.Digits() {
		pos, err := kp.PositionOf(k)
		if err != nil {
			return nil, fmt.Errorf("rook: BuildAdjacency: %w", err)
		}
		moves, err := ReachableFrom(kp, pos)
		if err != nil {
			return nil, fmt.Errorf("rook: BuildAdjacency: %w", err)
		}
		keys := make([]keypad.Key, 0, len(moves))
		for _, m := range moves {
			to, err := kp.KeyAt(m)
			if err != nil {
				return nil, fmt.Errorf("rook: BuildAdjacency: %w", err)
			}
			keys = append(keys, to)
		}
		d, _ := k.Digit()
		adj.next[d] = keys
	}

	return adj, nil
}

// From returns the keys reachable from k. The slice is shared; callers
// must not modify it.
func (a *Adjacency) From(k keypad.Key) ([]keypad.Key, error) {
	d, ok := k.Digit()
	if !ok {
		return nil, fmt.Errorf("rook: From(%q): %w", rune(k), keypad.ErrUnknownKey)
	}

	return a.next[d], nil
}

// FromDigit is From indexed by digit value. d must be in 0..9.
func (a *Adjacency) FromDigit(d int) []keypad.Key {
	return a.next[d]
}

// Degree returns the number of one-move targets from k, or 0 for non-digits.
func (a *Adjacency) Degree(k keypad.Key) int {
	d, ok := k.Digit()
	if !ok {
		return 0
	}

	return len(a.next[d])
}

// Reaches reports whether to is one slide away from from.
func (a *Adjacency) Reaches(from, to keypad.Key) bool {
	d, ok := from.Digit()
	if !ok {
		return false
	}
	for _, k := range a.next[d] {
		if k == to {
			return true
		}
	}

	return false
}

// AsymmetricPairs lists every (a, b) where b is reachable from a but a is
// not reachable from b.
func (a *Adjacency) AsymmetricPairs() [][2]keypad.Key {
	var pairs [][2]keypad.Key
	for d := range a.next {
		from := keypad.DigitKey(d)
		for _, to := range a.next[d] {
			if !a.Reaches(to, from) {
				pairs = append(pairs, [2]keypad.Key{from, to})
			}
		}
	}

	return pairs
}

// String renders one "k: a b c" line per digit, 0 through 9.
func (a *Adjacency) String() string {
	var sb strings.Builder
	for d := range a.next {
		fmt.Fprintf(&sb, "%d:", d)
		for _, k := range a.next[d] {
			sb.WriteByte(' ')
			sb.WriteByte(byte(k))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
