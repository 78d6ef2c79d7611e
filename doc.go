// Package rookpad counts the phone numbers a chess rook can dial on a
// telephone keypad.
//
// 🚀 What is rookpad?
//
//	A rook sits on a key and slides any distance up, down, left or right,
//	landing only on digits. Each landing dials that digit. Sequences open
//	on 2–9; * and # are never dialled.
//
//	    1 2 3
//	    4 5 6
//	    7 8 9
//	    * 0 #
//
// Under the hood, everything is organized under three subpackages:
//
//	keypad/  — the fixed grid, key↔position lookups, valid-start rule
//	rook/    — rook slides and the derived one-move adjacency map
//	counter/ — the counting engine: enumeration and dynamic programming
//
// The root package exposes Count over a shared engine. The rookpad command
// under cmd/rookpad prints counts for a length or a range of lengths.
//
//	go get github.com/katalvlaran/rookpad
package rookpad
