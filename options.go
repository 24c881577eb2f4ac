package canvas

import "github.com/me-it-is/ladybird/text"

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default: alpha surface, built-in software painter.
//	ctx := canvas.NewContext(800, 600)
//
//	// Opaque surface with a custom paint backend.
//	ctx := canvas.NewContext(800, 600,
//	    canvas.WithAlpha(false),
//	    canvas.WithPainter(myBackend),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	alpha       bool
	painter     func(*Surface) Painter
	face        text.Face
	shaper      text.Shaper
	colorParser ColorParser
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		alpha:       true,
		colorParser: DefaultColorParser,
	}
}

// WithAlpha controls whether the backing surface carries an alpha channel.
// With alpha disabled the surface is opaque: cleared pixels are opaque
// black and alpha written by drawing operations is forced to 255.
func WithAlpha(alpha bool) ContextOption {
	return func(o *contextOptions) {
		o.alpha = alpha
	}
}

// WithPainter injects a paint backend factory. The factory is invoked when
// the backing surface is allocated, and again after every resize. Passing
// nil restores the built-in software painter.
func WithPainter(factory func(*Surface) Painter) ContextOption {
	return func(o *contextOptions) {
		o.painter = factory
	}
}

// WithFace sets the font face used by text operations. Without a face,
// text operations are no-ops and measurements return zeros.
func WithFace(face text.Face) ContextOption {
	return func(o *contextOptions) {
		o.face = face
	}
}

// WithShaper sets the shaper used to lay out text. The default is the
// process-wide shaper from [text.GetShaper].
func WithShaper(s text.Shaper) ContextOption {
	return func(o *contextOptions) {
		o.shaper = s
	}
}

// WithColorParser overrides how style strings are parsed into colors.
// The default understands hex notations and the CSS named colors.
func WithColorParser(p ColorParser) ContextOption {
	return func(o *contextOptions) {
		if p != nil {
			o.colorParser = p
		}
	}
}
