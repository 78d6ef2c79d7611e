// Package rook generates rook moves on the telephone keypad and derives the
// one-move adjacency map the counting engine runs on.
//
// A rook move is an unbounded straight slide in one of four orthogonal
// directions. Every cell passed over is also a legal landing cell, so a
// slide from 2 downward yields 5, 8 and 0. A slide stops in its direction
// at the first cell that is off the grid or blocked (* or #); other
// directions are unaffected.
//
// Direction order is fixed (Down, Up, Right, Left) so enumeration order is
// deterministic.
//
// Complexity:
//
//   - ReachableFrom: O(Rows + Cols) per call.
//   - BuildAdjacency: O(10 × (Rows + Cols)), performed once.
//
// Errors:
//
//   - ErrNilKeypad: no keypad supplied.
//   - keypad.ErrOutOfRange: origin outside the grid.
//   - keypad.ErrUnknownKey: adjacency queried with a non-digit key.
package rook
