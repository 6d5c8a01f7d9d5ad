package engine

import (
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matthewgson/quantpolars/formula"
	"github.com/matthewgson/quantpolars/frame"
	"github.com/matthewgson/quantpolars/qlog"
	"github.com/matthewgson/quantpolars/qmetric"
)

// Reason strings attached to failed rows when WithReasons is set.
const (
	ReasonInvalidInput  = "invalid_input"
	ReasonDegenerate    = "numerical_degeneracy"
	ReasonNoConvergence = "no_convergence"
	ReasonPriceBounds   = "price_out_of_bounds"
)

func reasonOf(err error) string {
	switch {
	case errors.Is(err, formula.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.Is(err, formula.ErrDegenerate):
		return ReasonDegenerate
	case errors.Is(err, formula.ErrNoConvergence):
		return ReasonNoConvergence
	case errors.Is(err, formula.ErrPriceBounds):
		return ReasonPriceBounds
	default:
		return "error"
	}
}

// batch runs one operation over every row of a frame. Each row writes
// only its own index in the output buffers, so partitions never
// contend; row errors are recorded and never abort the batch.
type batch struct {
	op      string
	reason  string // reason column name, "" to skip
	opts    options
	eval    func(i int) error     // writes row i of the op's buffers
	outputs func() []*frame.Series
}

func (b batch) run(f *frame.Frame) (*frame.Frame, error) {
	n := f.NumRows()
	start := time.Now()

	var reasons []string
	var reasonValid []bool
	if b.reason != "" {
		reasons = make([]string, n)
		reasonValid = make([]bool, n)
	}

	var failures atomic.Int64
	grp := new(errgroup.Group)
	parts := b.opts.parallelism
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	chunk := (n + parts - 1) / parts
	for p := 0; p < parts; p++ {
		lo := p * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		grp.Go(func() error {
			for i := lo; i < hi; i++ {
				err := b.eval(i)
				if err == nil {
					continue
				}
				failures.Add(1)
				qmetric.IncFailure(b.op, reasonOf(err))
				if reasons != nil {
					reasons[i] = reasonOf(err)
					reasonValid[i] = true
				}
			}
			return nil
		})
	}
	_ = grp.Wait()

	qmetric.AddRows(n, b.op)
	qmetric.ObserveLatencySince(start, b.op)
	qlog.Debug("batch evaluated",
		qlog.String("op", b.op),
		qlog.Int("rows", n),
		qlog.Int64("failures", failures.Load()),
		qlog.Duration("took", time.Since(start)),
	)

	cols := b.outputs()
	if reasons != nil {
		cols = append(cols, frame.NewStringNullable(b.reason, reasons, reasonValid))
	}
	return f.WithColumns(cols...)
}
