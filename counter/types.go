package counter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStrategy indicates a Strategy outside the defined set.
	ErrUnknownStrategy = errors.New("counter: unknown strategy")

	// ErrLengthLimit indicates an enumeration longer than MaxLength.
	ErrLengthLimit = errors.New("counter: length exceeds enumeration limit")

	// ErrResultLimit indicates an enumeration produced more than MaxResults sequences.
	ErrResultLimit = errors.New("counter: result limit reached")

	// ErrOverflow indicates a count that does not fit in uint64.
	ErrOverflow = errors.New("counter: count overflows uint64")
)

// Strategy selects a counting algorithm. The zero value is DynamicProgramming.
type Strategy int

const (
	// DynamicProgramming runs the linear count-vector recurrence.
	DynamicProgramming Strategy = iota
	// Enumeration walks every sequence depth-first.
	Enumeration
)

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case DynamicProgramming:
		return "dynamic_programming"
	case Enumeration:
		return "enumeration"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a user-facing name to a Strategy. Matching ignores
// case and surrounding space.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dp", "dynamic", "dynamic_programming", "dynamic-programming":
		return DynamicProgramming, nil
	case "enum", "enumeration", "brute", "bruteforce", "brute-force", "dfs":
		return Enumeration, nil
	}

	return 0, fmt.Errorf("counter: ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// Result pairs a requested length with its count.
type Result struct {
	Length int
	Count  uint64
}
