package btree

type options struct {
	logger       Logger
	freeListSize int
}

func defaultOptions() options {
	return options{
		logger:       DiscardLogger{},
		freeListSize: DefaultFreeListSize,
	}
}

// Option configures a tree using the functional options pattern.
type Option func(*options)

// WithLogger sets the logger that receives height changes. A nil logger discards.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			l = DiscardLogger{}
		}
		o.logger = l
	}
}

// WithFreeListSize sets how many released nodes are kept for reuse.
// Zero disables recycling; negative values are treated as zero.
func WithFreeListSize(n int) Option {
	return func(o *options) {
		o.freeListSize = max(n, 0)
	}
}
