package rook

import (
	"fmt"

	"github.com/katalvlaran/rookpad/keypad"
)

// ReachableFrom returns every position a rook at p reaches in one slide.
// For each direction it steps outward, accepting in-bounds, unblocked cells
// and stopping that direction at the first rejection.
// A fresh slice is returned on every call.
// Complexity: O(Rows + Cols).
func ReachableFrom(kp *keypad.Keypad, p keypad.Position) ([]keypad.Position, error) {
	if kp == nil {
		return nil, ErrNilKeypad
	}
	if !kp.InBounds(p) {
		return nil, fmt.Errorf("rook: ReachableFrom%s: %w", p, keypad.ErrOutOfRange)
	}

	out := make([]keypad.Position, 0, keypad.Rows+keypad.Cols)
	for _, d := range Directions {
		out = slide(kp, p, d, out)
	}

	return out, nil
}

// Slide returns the positions passed over when moving from p in direction d.
func Slide(kp *keypad.Keypad, p keypad.Position, d Direction) ([]keypad.Position, error) {
	if kp == nil {
		return nil, ErrNilKeypad
	}
	if !kp.InBounds(p) {
		return nil, fmt.Errorf("rook: Slide%s: %w", p, keypad.ErrOutOfRange)
	}
	if d == (Direction{}) {
		return nil, nil
	}

	return slide(kp, p, d, nil), nil
}

// slide appends the landing cells along d to out.
func slide(kp *keypad.Keypad, p keypad.Position, d Direction, out []keypad.Position) []keypad.Position {
	for next := p.Add(d.DRow, d.DCol); ; next = next.Add(d.DRow, d.DCol) {
		k, err := kp.KeyAt(next)
		if err != nil || kp.Blocked(k) {
			return out
		}
		out = append(out, next)
	}
}
