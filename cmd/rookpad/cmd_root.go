package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/rookpad/counter"
)

// rawFlags holds flag values as typed by the user. Numeric flags are kept
// as strings so malformed values can be ignored instead of rejected.
type rawFlags struct {
	config     string
	length     string
	min        string
	max        string
	span       string
	strategy   string
	maxResults string
	parallel   string
	breakdown  bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var flags rawFlags
	command := &cobra.Command{
		Use:           "rookpad",
		Short:         "Count phone numbers dialled by a rook on a keypad",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
			defer logger.Sync() //nolint:errcheck

			s, err := resolveSettings(flags, logger)
			if err != nil {
				return err
			}

			return runCount(cmd.Context(), cmd.OutOrStdout(), s, logger)
		},
	}

	fs := command.Flags()
	fs.StringVarP(&flags.config, "config", "c", "", "HCL file with default settings")
	fs.StringVarP(&flags.length, "length", "l", "", "count a single length")
	fs.StringVar(&flags.min, "min", "", "shortest length to count")
	fs.StringVar(&flags.max, "max", "", "longest length to count")
	fs.StringVarP(&flags.span, "range", "r", "", "inclusive length range, e.g. 3-5")
	fs.StringVarP(&flags.strategy, "strategy", "s", "", "counting strategy: dp or enum (default dp)")
	fs.StringVar(&flags.maxResults, "max-results", "", "abort enumeration after this many sequences")
	fs.StringVar(&flags.parallel, "parallel", "", "lengths evaluated at once (default: all)")
	fs.BoolVar(&flags.breakdown, "breakdown", false, "also print counts per ending digit")
	command.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	command.AddCommand(newLayoutCommand(&flags.verbose))

	return command
}

// newLogger writes console-encoded entries to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	))
}

// runCount evaluates every requested length and prints one line per length.
func runCount(ctx context.Context, w io.Writer, s settings, logger *zap.Logger) error {
	opts := []counter.Option{counter.WithLogger(logger)}
	if s.MaxResults >= 0 {
		opts = append(opts, counter.WithMaxResults(s.MaxResults))
	}
	if s.Parallel > 0 {
		opts = append(opts, counter.WithParallelism(s.Parallel))
	}
	engine, err := counter.New(opts...)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("counting",
		zap.Int("min", s.Min),
		zap.Int("max", s.Max),
		zap.Stringer("strategy", s.Strategy))

	results, err := engine.CountRange(ctx, s.Min, s.Max, s.Strategy)
	switch {
	case err == nil:
		for _, r := range results {
			fmt.Fprintf(w, "Count of valid %d-digit phone numbers: %d\n", r.Length, r.Count)
			if s.Breakdown {
				if err := printBreakdown(w, engine, r.Length); err != nil {
					return err
				}
			}
		}

		return nil
	case errors.Is(err, counter.ErrOverflow) && s.Strategy == counter.DynamicProgramming:
		logger.Debug("uint64 overflow, switching to arbitrary precision", zap.Error(err))

		printBig(w, engine, s, logger)

		return nil
	default:
		return err
	}
}

// printBig prints each length with the arbitrary-precision recurrence.
// Breakdowns past the uint64 range are skipped.
func printBig(w io.Writer, engine *counter.Engine, s settings, logger *zap.Logger) {
	for l := s.Min; l <= s.Max; l++ {
		fmt.Fprintf(w, "Count of valid %d-digit phone numbers: %s\n", l, engine.CountBig(l))
		if s.Breakdown {
			if err := printBreakdown(w, engine, l); err != nil {
				logger.Warn("breakdown skipped", zap.Int("length", l), zap.Error(err))
			}
		}
	}
}

// printBreakdown prints the per-ending-digit counts for length.
func printBreakdown(w io.Writer, engine *counter.Engine, length int) error {
	dist, err := engine.Distribution(length)
	if err != nil {
		return err
	}
	ending := counter.EndingDigits(dist)
	fmt.Fprint(w, "  ending:")
	for _, k := range engine.Keypad().Digits() {
		fmt.Fprintf(w, " %s=%d", k, ending[k])
	}
	fmt.Fprintln(w)

	return nil
}
