// Package counter counts the digit sequences a rook can dial on the
// telephone keypad.
//
// What:
//
//   - Engine builds the keypad and its rook adjacency map once and answers
//     Count(length, strategy) queries against it.
//   - Two interchangeable strategies that agree on every length ≥ 1:
//   - Enumeration: depth-first walk over every sequence from each valid
//     start key. Exponential in length; a reference oracle.
//   - DynamicProgramming: propagates a per-digit count vector length-1
//     times. Linear in length.
//   - CountBig and Distribution expose the recurrence with arbitrary
//     precision and per-ending-digit breakdown.
//   - CountRange evaluates a span of lengths concurrently.
//
// Algorithm Outline (DynamicProgramming):
//  1. counts[d] = 1 for every valid start digit d, else 0.
//  2. Repeat length-1 times:
//     next[to] += counts[from] for every from and every to in adj[from].
//     counts = next
//  3. total = Σ counts[d].
//
// Options:
//
//   - WithContext(ctx)        cancellation for long enumerations and ranges.
//   - WithLogger(l)           debug tracing of construction and DP steps.
//   - WithMaxLength(n)        reject enumeration requests longer than n.
//   - WithMaxResults(n)       abort enumeration after n sequences.
//   - WithOnSequence(fn)      hook receiving each enumerated sequence.
//   - WithParallelism(n)      bound goroutines used by CountRange.
//
// Errors:
//
//   - ErrUnknownStrategy: strategy value or name not recognized.
//   - ErrLengthLimit:     enumeration length exceeds MaxLength.
//   - ErrResultLimit:     enumeration produced more than MaxResults.
//   - ErrOverflow:        DP total does not fit in uint64 (first at length 31).
//
// Non-positive lengths are not errors: both strategies return 0.
package counter
