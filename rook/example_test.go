package rook_test

import (
	"fmt"

	"github.com/katalvlaran/rookpad/keypad"
	"github.com/katalvlaran/rookpad/rook"
)

// ExampleReachableFrom lists the keys a rook on 2 can dial next.
//
//	1 [2] 3
//	4  5  6
//	7  8  9
//	*  0  #
//
// Down slides through 5 and 8 onto 0; right reaches 3; left reaches 1.
func ExampleReachableFrom() {
	kp := keypad.New()
	from, _ := kp.PositionOf('2')

	moves, err := rook.ReachableFrom(kp, from)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range moves {
		k, _ := kp.KeyAt(p)
		fmt.Print(k, " ")
	}
	fmt.Println()
	// Output:
	// 5 8 0 3 1
}
