package calculator

import (
	"context"
	"log/slog"
	"time"
)

// Recorder receives one observation per evaluated operation.
type Recorder interface {
	RecordOperation(operation, outcome string, elapsed time.Duration)
}

// Outcome is a successful evaluation.
type Outcome struct {
	Operation Operation
	A, B      float64
	Value     float64
	// Display is Value rendered by FormatResult.
	Display string
}

// Dispatch resolves name and applies the operation to a and b.
func Dispatch(name string, a, b float64) (float64, error) {
	op, err := ParseOperation(name)
	if err != nil {
		return 0, err
	}
	return op.Apply(a, b)
}

// Evaluator dispatches operations and reports them to an optional Recorder.
type Evaluator struct {
	recorder Recorder
	now      func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRecorder reports every evaluation to r.
func WithRecorder(r Recorder) Option {
	return func(e *Evaluator) {
		e.recorder = r
	}
}

// WithClock overrides the clock used to time evaluations.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// NewEvaluator returns an Evaluator with the given options applied.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the named operation on a and b.
// Unknown names fail with ErrUnknownOperation and are not recorded.
func (e *Evaluator) Evaluate(ctx context.Context, name string, a, b float64) (Outcome, error) {
	op, err := ParseOperation(name)
	if err != nil {
		return Outcome{}, err
	}

	slog.DebugContext(ctx, "Dispatching operation", "operation", op.String(), "a", a, "b", b)

	start := e.now()
	value, err := op.Apply(a, b)
	elapsed := e.now().Sub(start)

	if e.recorder != nil {
		e.recorder.RecordOperation(op.String(), outcomeLabel(err), elapsed)
	}

	if err != nil {
		slog.DebugContext(ctx, "Operation failed", "operation", op.String(), "error", err)
		return Outcome{}, err
	}

	out := Outcome{
		Operation: op,
		A:         a,
		B:         b,
		Value:     value,
		Display:   FormatResult(value),
	}
	slog.DebugContext(ctx, "Operation succeeded", "operation", op.String(), "result", out.Display)
	return out, nil
}
