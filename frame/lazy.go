package frame

// Transform is a pure Frame-to-Frame step. Implementations must not
// mutate their input; the valuation operations in the engine package
// are all Transforms.
type Transform func(*Frame) (*Frame, error)

// Apply runs the steps left to right, stopping at the first error.
func Apply(f *Frame, ops ...Transform) (*Frame, error) {
	cur := f
	for _, op := range ops {
		next, err := op(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// LazyFrame is a deferred pipeline over a source Frame. Pipe only
// records steps; nothing runs until Collect. Because the source is
// immutable and every step is pure, Collect is idempotent.
type LazyFrame struct {
	src *Frame
	ops []Transform
}

// Lazy starts a deferred pipeline on f.
func (f *Frame) Lazy() *LazyFrame {
	return &LazyFrame{src: f}
}

// Pipe appends steps to the pipeline description and returns a new
// LazyFrame; the receiver is left usable as a shorter pipeline.
func (l *LazyFrame) Pipe(ops ...Transform) *LazyFrame {
	combined := make([]Transform, 0, len(l.ops)+len(ops))
	combined = append(combined, l.ops...)
	combined = append(combined, ops...)
	return &LazyFrame{src: l.src, ops: combined}
}

// Collect materializes the pipeline.
func (l *LazyFrame) Collect() (*Frame, error) {
	return Apply(l.src, l.ops...)
}
