package rookpad

import (
	"sync"

	"github.com/katalvlaran/rookpad/counter"
)

var (
	defaultOnce   sync.Once
	defaultEngine *counter.Engine
	defaultErr    error
)

// Engine returns the process-wide engine, building it on first use.
func Engine() (*counter.Engine, error) {
	defaultOnce.Do(func() {
		defaultEngine, defaultErr = counter.New()
	})

	return defaultEngine, defaultErr
}

// Count returns how many sequences of the given length the rook can dial
// under strategy s. Lengths ≤ 0 yield 0.
func Count(length int, s counter.Strategy) (uint64, error) {
	e, err := Engine()
	if err != nil {
		return 0, err
	}

	return e.Count(length, s)
}
