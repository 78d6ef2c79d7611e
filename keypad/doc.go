// Package keypad models the fixed 4×3 telephone keypad used by the rook
// counting engine.
//
// What:
//
//   - Keypad wraps the immutable grid
//
//	1 2 3
//	4 5 6
//	7 8 9
//	* 0 #
//
//   - Key→Position and Position→Key lookups over that grid.
//   - The valid-start set {2,3,4,5,6,7,8,9}. Digits 0 and 1 may appear
//     inside a sequence but never open one.
//   - Blocked keys (* and #) are part of the grid and can be looked up,
//     but a piece may never land on them.
//
// Complexity:
//
//   - PositionOf: O(R×C) scan over 12 cells.
//   - KeyAt, InBounds, IsValidStart: O(1).
//
// Errors:
//
//   - ErrUnknownKey: key is not one of the 12 keypad symbols.
//   - ErrOutOfRange: position lies outside the 4×3 grid.
package keypad
