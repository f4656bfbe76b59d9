package dsl

// Option configures parsing and compilation.
type Option func(*options)

type options struct {
	singleDiagram bool
	maxDepth      int
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSingleDiagram requires the document to contain exactly one top-level
// diagram followed by end of input.
func WithSingleDiagram() Option {
	return func(o *options) { o.singleDiagram = true }
}

// WithMaxDepth limits how deeply brackets may nest. Zero means no limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}
