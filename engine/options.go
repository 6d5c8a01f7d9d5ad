package engine

import "runtime"

// Option tunes one operation.
type Option func(*options)

type options struct {
	reasons     bool
	outName     string
	parallelism int
}

func buildOptions(opts []Option) options {
	o := options{parallelism: runtime.GOMAXPROCS(0)}
	for _, fn := range opts {
		fn(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	return o
}

// WithReasons appends a string reason column next to the output,
// naming the failure class of every null row ("invalid_input",
// "numerical_degeneracy", "no_convergence", "price_out_of_bounds").
func WithReasons() Option {
	return func(o *options) { o.reasons = true }
}

// WithOutputName renames the operation's primary output column.
// Secondary columns derive from it, so renaming "implied_sigma" to
// "iv" also renames "iv_converged" and "iv_reason". Greeks has five
// fixed outputs and ignores this option.
func WithOutputName(name string) Option {
	return func(o *options) { o.outName = name }
}

// WithParallelism caps the number of partitions evaluated
// concurrently. The default is GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

func (o options) name(def string) string {
	if o.outName != "" {
		return o.outName
	}
	return def
}
