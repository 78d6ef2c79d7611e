package rook

import "errors"

// ErrNilKeypad is returned when a nil *keypad.Keypad is supplied.
var ErrNilKeypad = errors.New("rook: keypad is nil")

// Direction is a unit step along a single axis.
type Direction struct{ DRow, DCol int }

var (
	Down  = Direction{DRow: +1}
	Up    = Direction{DRow: -1}
	Right = Direction{DCol: +1}
	Left  = Direction{DCol: -1}
)

// Directions lists the four rook directions in enumeration order.
var Directions = [4]Direction{Down, Up, Right, Left}

// String names the direction.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	}

	return "none"
}
