package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad lookups.
var (
	// ErrUnknownKey indicates a key outside the 12-symbol keypad alphabet.
	ErrUnknownKey = errors.New("keypad: key not on keypad")
	// ErrOutOfRange indicates a row or column outside the 4×3 grid.
	ErrOutOfRange = errors.New("keypad: position out of range")
)

const (
	// Rows is the number of keypad rows.
	Rows = 4
	// Cols is the number of keypad columns.
	Cols = 3
	// NotFound is the coordinate sentinel carried by InvalidPosition.
	NotFound = -1
)

// Blocked keys: present on the grid, never landed on.
const (
	Star Key = '*'
	Hash Key = '#'
)

// InvalidPosition denotes an unresolved lookup.
var InvalidPosition = Position{Row: NotFound, Col: NotFound}

// Key is a single keypad symbol.
type Key byte

// IsDigit reports whether k is one of '0'..'9'.
func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// Digit returns the numeric value of k. ok is false for non-digit keys.
func (k Key) Digit() (d int, ok bool) {
	if !k.IsDigit() {
		return 0, false
	}

	return int(k - '0'), true
}

// DigitKey returns the key for digit d (0..9).
func DigitKey(d int) Key {
	return Key('0' + d)
}

// String renders the key as a one-character string.
func (k Key) String() string {
	return string(rune(k))
}

// Position is a 0-indexed (row, column) pair on the grid.
type Position struct {
	Row, Col int
}

// Valid reports whether p carries no NotFound coordinate.
func (p Position) Valid() bool {
	return p.Row != NotFound && p.Col != NotFound
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
