package main

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/rookpad/counter"
)

// settings is the resolved run plan handed to runCount.
type settings struct {
	Min, Max   int
	Strategy   counter.Strategy
	MaxResults int64 // -1: unbounded
	Parallel   int   // ≤ 0: one goroutine per length
	Breakdown  bool
}

// defaultSettings reproduces the classic report: lengths 1..7 counted with
// dynamic programming.
func defaultSettings() settings {
	return settings{
		Min:        1,
		Max:        7,
		Strategy:   counter.DynamicProgramming,
		MaxResults: -1,
	}
}

// resolveSettings layers the config file (if any) and then the flags over
// the defaults. Malformed values are logged and ignored; only an unreadable
// config file is an error.
func resolveSettings(f rawFlags, logger *zap.Logger) (settings, error) {
	s := defaultSettings()

	if f.config != "" {
		cfg, err := loadConfig(f.config)
		if err != nil {
			return s, err
		}
		cfg.apply(&s, logger)
	}

	l := lenient{logger: logger}
	if v, ok := l.positive("min", f.min); ok {
		s.Min = v
	}
	if v, ok := l.positive("max", f.max); ok {
		s.Max = v
	}
	if lo, hi, ok := l.span("range", f.span); ok {
		s.Min, s.Max = lo, hi
	}
	if v, ok := l.positive("length", f.length); ok {
		s.Min, s.Max = v, v
	}
	if st, ok := l.strategy("strategy", f.strategy); ok {
		s.Strategy = st
	}
	if v, ok := l.positive("max-results", f.maxResults); ok {
		s.MaxResults = int64(v)
	}
	if v, ok := l.positive("parallel", f.parallel); ok {
		s.Parallel = v
	}
	if f.breakdown {
		s.Breakdown = true
	}

	if s.Min > s.Max {
		s.Min, s.Max = s.Max, s.Min
	}

	return s, nil
}

// lenient parses user-supplied values, warning about and discarding
// anything malformed.
type lenient struct {
	logger *zap.Logger
}

func (l lenient) ignore(name, value, reason string) {
	l.logger.Warn("ignoring malformed value, keeping default",
		zap.String("setting", name),
		zap.String("value", value),
		zap.String("reason", reason))
}

// positive parses value as an integer ≥ 1. Empty values are silently absent.
func (l lenient) positive(name, value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		l.ignore(name, value, "not an integer")
		return 0, false
	}
	if n < 1 {
		l.ignore(name, value, "must be at least 1")
		return 0, false
	}

	return n, true
}

// span parses "A-B" into an ordered pair of positive integers.
func (l lenient) span(name, value string) (lo, hi int, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, 0, false
	}
	a, b, found := strings.Cut(value, "-")
	if !found {
		l.ignore(name, value, "expected A-B")
		return 0, 0, false
	}
	if lo, ok = l.positive(name, a); !ok {
		return 0, 0, false
	}
	if hi, ok = l.positive(name, b); !ok {
		return 0, 0, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi, true
}

func (l lenient) strategy(name, value string) (counter.Strategy, bool) {
	if strings.TrimSpace(value) == "" {
		return 0, false
	}
	st, err := counter.ParseStrategy(value)
	if err != nil {
		l.ignore(name, value, "unknown strategy")
		return 0, false
	}

	return st, true
}
