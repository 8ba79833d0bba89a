package canvas2d

// ContextOption configures a Context during creation.
//
// Example:
//
//	pm := canvas2d.NewPixmap(500, 350)
//	ctx := canvas2d.NewContext(500, 350, canvas2d.WithPixmap(pm))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap    *Pixmap
	transform Matrix
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		pixmap:    nil, // Will be created if nil
		transform: Identity(),
	}
}

// WithPixmap makes the Context draw into an existing pixmap.
// The Context takes its dimensions from the pixmap; several contexts may
// share one pixmap, as canvas contexts share their element's bitmap.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithTransform sets the initial transformation matrix.
// ResetTransform still returns to the identity.
func WithTransform(m Matrix) ContextOption {
	return func(o *contextOptions) {
		o.transform = m
	}
}
