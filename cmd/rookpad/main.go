// Command rookpad prints how many phone numbers a rook can dial on a
// telephone keypad, for one length or a range of lengths.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
