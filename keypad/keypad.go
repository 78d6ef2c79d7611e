package keypad

import (
	"fmt"
	"strings"
)

// layout is the telephone keypad in reading order.
var layout = [Rows][Cols]Key{
	{'1', '2', '3'},
	{'4', '5', '6'},
	{'7', '8', '9'},
	{Star, '0', Hash},
}

// Keypad is the fixed telephone grid. It is immutable once built and safe
// to share between goroutines.
type Keypad struct {
	cells      [Rows][Cols]Key
	validStart [10]bool
}

// New returns the standard telephone keypad with the valid-start set
// {2,3,4,5,6,7,8,9}.
// Complexity: O(1).
func New() *Keypad {
	kp := &Keypad{cells: layout}
	for d := 2; d <= 9; d++ {
		kp.validStart[d] = true
	}

	return kp
}

// InBounds reports whether p lies within the 4×3 grid.
// Complexity: O(1).
func (kp *Keypad) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// PositionOf returns the grid position holding k. Blocked keys are found
// like any other. For keys outside the alphabet it returns InvalidPosition
// together with ErrUnknownKey.
// Complexity: O(Rows×Cols).
func (kp *Keypad) PositionOf(k Key) (Position, error) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if kp.cells[r][c] == k {
				return Position{Row: r, Col: c}, nil
			}
		}
	}

	return InvalidPosition, fmt.Errorf("keypad: PositionOf(%q): %w", rune(k), ErrUnknownKey)
}

// KeyAt returns the key at p, or ErrOutOfRange if p is off the grid.
// Complexity: O(1).
func (kp *Keypad) KeyAt(p Position) (Key, error) {
	if !kp.InBounds(p) {
		return 0, fmt.Errorf("keypad: KeyAt%s: %w", p, ErrOutOfRange)
	}

	return kp.cells[p.Row][p.Col], nil
}

// Blocked reports whether k may never be landed on.
func (kp *Keypad) Blocked(k Key) bool {
	return k == Star || k == Hash
}

// IsValidStart reports whether k may open a sequence.
// Complexity: O(1).
func (kp *Keypad) IsValidStart(k Key) bool {
	d, ok := k.Digit()

	return ok && kp.validStart[d]
}

// ValidStarts returns the valid-start keys in ascending order.
func (kp *Keypad) ValidStarts() []Key {
	keys := make([]Key, 0, len(kp.validStart))
	for d, ok := range kp.validStart {
		if ok {
			keys = append(keys, DigitKey(d))
		}
	}

	return keys
}

// Keys returns all 12 keys in reading order.
func (kp *Keypad) Keys() []Key {
	keys := make([]Key, 0, Rows*Cols)
	for r := 0; r < Rows; r++ {
		keys = append(keys, kp.cells[r][:]...)
	}

	return keys
}

// Digits returns the ten digit keys '0'..'9'.
func (kp *Keypad) Digits() []Key {
	keys := make([]Key, 10)
	for d := range keys {
		keys[d] = DigitKey(d)
	}

	return keys
}

// String draws the grid, one row per line.
func (kp *Keypad) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(kp.cells[r][c]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
