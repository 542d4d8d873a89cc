package paging

// Option configures a Pager.
type Option func(*options)

type options struct {
	pageSize int
	hook     LoadHook
}

// WithPageSize sets the LoadSize passed to the source.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithLoadHook installs a callback invoked after each load completes.
func WithLoadHook(h LoadHook) Option {
	return func(o *options) {
		o.hook = h
	}
}
