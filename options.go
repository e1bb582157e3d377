package fragql

import "go.uber.org/zap"

var defaultBorders = [2]string{"(", ")"}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for statement lifecycle events.
// A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log == nil {
			log = zap.NewNop()
		}
		b.log = log
	}
}

// WithBorders sets the default text wrapped around Subquery output.
func WithBorders(open, closing string) Option {
	return func(b *Builder) {
		b.borders = [2]string{open, closing}
	}
}
