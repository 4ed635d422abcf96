package puzzle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Source returns the input text for a day and part.
type Source func(day, part int) (string, error)

// Answer is the outcome of one part.
type Answer struct {
	Day     int
	Part    int
	Value   int
	Elapsed time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for run events. A nil logger has no effect.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithHeaders makes Run print "Day N: Title" before each day's answers.
func WithHeaders() RunnerOption {
	return func(r *Runner) { r.headers = true }
}

// Runner executes days and prints their answers to out.
type Runner struct {
	out     io.Writer
	log     *slog.Logger
	headers bool
}

// NewRunner returns a Runner writing to out. Logging is discarded unless
// WithLogger is given.
func NewRunner(out io.Writer, opts ...RunnerOption) *Runner {
	r := &Runner{
		out: out,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var partNames = [...]string{1: "one", 2: "two"}

// Run solves both parts of d, reading input from src, and prints the answers.
// The first failing part stops the run; its error is wrapped as
// "day N part M: ...". A day without parts returns ErrUnsolved.
func (r *Runner) Run(ctx context.Context, d Day, src Source) ([]Answer, error) {
	if !d.Solved() {
		return nil, fmt.Errorf("day %d: %w", d.Number, ErrUnsolved)
	}
	if r.headers {
		if _, err := fmt.Fprintln(r.out, d); err != nil {
			return nil, err
		}
	}

	answers := make([]Answer, 0, 2)
	for part := 1; part <= 2; part++ {
		if err := ctx.Err(); err != nil {
			return answers, err
		}
		a, err := r.runPart(d, part, src)
		if err != nil {
			return answers, fmt.Errorf("day %d part %d: %w", d.Number, part, err)
		}
		if _, err = fmt.Fprintf(r.out, "Part %s: %d\n", partNames[part], a.Value); err != nil {
			return answers, err
		}
		answers = append(answers, a)
	}

	return answers, nil
}

// RunAll runs each day in order, stopping at the first failure.
func (r *Runner) RunAll(ctx context.Context, days []Day, src Source) ([]Answer, error) {
	var all []Answer
	for _, d := range days {
		answers, err := r.Run(ctx, d, src)
		all = append(all, answers...)
		if err != nil {
			return all, err
		}
	}

	return all, nil
}

func (r *Runner) runPart(d Day, part int, src Source) (Answer, error) {
	solve, err := d.Part(part)
	if err != nil {
		return Answer{}, err
	}
	input, err := src(d.Number, part)
	if err != nil {
		return Answer{}, err
	}

	start := time.Now()
	v, err := solve(input)
	elapsed := time.Since(start)
	if err != nil {
		r.log.Debug("puzzle.failed", "day", d.Number, "part", part, "duration", elapsed, "err", err)
		return Answer{}, err
	}
	r.log.Debug("puzzle.run", "day", d.Number, "part", part, "duration", elapsed, "answer", v)

	return Answer{Day: d.Number, Part: part, Value: v, Elapsed: elapsed}, nil
}
