package counter

import (
	"fmt"

	"github.com/katalvlaran/rookpad/keypad"
)

// enumWalker holds the state of one depth-first enumeration.
type enumWalker struct {
	e      *Engine
	opts   Options
	length int
	buf    []byte    // sequence under construction
	count  uint64    // completed sequences so far
	out    *[]string // non-nil when sequences are materialized
}

// Sequences returns every sequence of the given length, in start-key then
// direction order. Intended for small lengths: output grows roughly 4.3×
// per digit. Use WithMaxResults to bound memory.
func (e *Engine) Sequences(length int, opts ...Option) ([]string, error) {
	o := e.resolve(opts)
	if length <= 0 {
		return nil, nil
	}
	var out []string
	if _, err := e.enumerate(length, o, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// enumerate walks every sequence of the given length and returns how many
// completed. Sequences are appended to out when it is non-nil.
func (e *Engine) enumerate(length int, o Options, out *[]string) (uint64, error) {
	if o.MaxLength >= 0 && length > o.MaxLength {
		return 0, fmt.Errorf("counter: enumerate length %d (max %d): %w", length, o.MaxLength, ErrLengthLimit)
	}

	w := &enumWalker{
		e:      e,
		opts:   o,
		length: length,
		buf:    make([]byte, length),
		out:    out,
	}
	for _, d := range e.starts {
		if err := w.walk(d, 0); err != nil {
			return w.count, err
		}
	}

	return w.count, nil
}

// walk places digit d at index depth and recurses over its rook moves.
func (w *enumWalker) walk(d, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.buf[depth] = byte(keypad.DigitKey(d))
	if depth == w.length-1 {
		return w.emit()
	}

	for _, k := range w.e.adj.FromDigit(d) {
		next, _ := k.Digit()
		if err := w.walk(next, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// emit records one completed sequence.
func (w *enumWalker) emit() error {
	if w.opts.MaxResults >= 0 && w.count >= uint64(w.opts.MaxResults) {
		return fmt.Errorf("counter: enumerate length %d after %d sequences: %w", w.length, w.count, ErrResultLimit)
	}
	w.count++

	if w.opts.OnSequence == nil && w.out == nil {
		return nil
	}
	seq := string(w.buf)
	if w.opts.OnSequence != nil {
		if err := w.opts.OnSequence(seq); err != nil {
			return fmt.Errorf("counter: OnSequence hook for %q: %w", seq, err)
		}
	}
	if w.out != nil {
		*w.out = append(*w.out, seq)
	}

	return nil
}
