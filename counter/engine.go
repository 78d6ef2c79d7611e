package counter

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/rookpad/keypad"
	"github.com/katalvlaran/rookpad/rook"
)

// Engine answers count queries over a fixed keypad. It is immutable after
// New and safe for concurrent use.
type Engine struct {
	kp     *keypad.Keypad
	adj    *rook.Adjacency
	starts []int // valid start digits, ascending
	opts   Options
}

// New builds the keypad and its adjacency map. opts become the defaults for
// every query on the returned engine.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	kp := keypad.New()
	adj, err := rook.BuildAdjacency(kp)
	if err != nil {
		return nil, fmt.Errorf("counter: New: %w", err)
	}

	starts := make([]int, 0, 10)
	for _, k := range kp.ValidStarts() {
		d, _ := k.Digit()
		starts = append(starts, d)
	}

	o.Logger.Debug("engine ready",
		zap.Int("valid_starts", len(starts)),
		zap.Stringer("adjacency", adj))

	return &Engine{kp: kp, adj: adj, starts: starts, opts: o}, nil
}

// Keypad returns the engine's keypad.
func (e *Engine) Keypad() *keypad.Keypad { return e.kp }

// Adjacency returns the engine's cached adjacency map.
func (e *Engine) Adjacency() *rook.Adjacency { return e.adj }

// Count returns the number of sequences of the given length under strategy s.
// A length ≤ 0 yields 0 and no error for either strategy.
func (e *Engine) Count(length int, s Strategy, opts ...Option) (uint64, error) {
	o := e.resolve(opts)
	if s != DynamicProgramming && s != Enumeration {
		return 0, fmt.Errorf("counter: Count(%d, %v): %w", length, s, ErrUnknownStrategy)
	}
	if length <= 0 {
		return 0, nil
	}

	if s == Enumeration {
		return e.enumerate(length, o, nil)
	}
	counts, err := e.propagate(length, o)
	if err != nil {
		return 0, err
	}

	return sum(counts, length)
}

// resolve layers per-call options over the engine defaults.
func (e *Engine) resolve(opts []Option) Options {
	o := e.opts
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
