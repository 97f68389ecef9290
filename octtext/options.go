package octtext

import "log/slog"

// Option configures a Reader or Writer. Options that only concern one side
// are ignored by the other.
type Option func(*options)

type options struct {
	dims        DimsForm
	compression Compression
	level       int
	logger      *slog.Logger
}

func defaultOptions() *options {
	return &options{
		dims:        DimsLegacy,
		compression: NoCompression,
		logger:      slog.New(slog.DiscardHandler),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDimsForm selects how a Writer writes matrix dimensions. Readers accept
// both forms.
func WithDimsForm(form DimsForm) Option {
	return func(o *options) {
		if form == DimsLegacy || form == DimsNDims {
			o.dims = form
		}
	}
}

// WithCompression makes a Writer compress its output. The level is format
// specific and 0 selects the default. Readers detect compression on their
// own.
func WithCompression(c Compression, level int) Option {
	return func(o *options) {
		o.compression = c
		o.level = level
	}
}

// WithLogger sets the logger for debug diagnostics. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
