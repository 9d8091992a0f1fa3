package loader

import "log/slog"

// Option configures a Loader.
type Option func(l *Loader)

// WithRoot sets the pipelines root directory.
func WithRoot(root string) Option {
	return func(l *Loader) {
		l.root = root
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}
