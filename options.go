package voronoi

import "log"

// config collects everything Build's functional options can tune.
type config struct {
	margin              float64
	dropUnresolvedEdges bool
	observer            StepObserver
	logger              *log.Logger
}

// defaultConfig returns the configuration Build uses when no Option
// overrides it: a 2-unit bounding box margin, unbounded edges kept, no
// observer, and logging disabled.
func defaultConfig() config {
	return config{margin: 2}
}

// Option configures a call to Build.
type Option func(*config)

// WithMargin sets the padding added around the input sites' bounding box
// before it's used to close unbounded edges. The default is 2.
func WithMargin(margin float64) Option {
	return func(c *config) { c.margin = margin }
}

// WithDropUnresolvedEdges discards edges whose both endpoints were still
// undefined when the finishing pass began: edges never closed at either
// end by a circle event, contributing only a direction rather than a
// segment.
func WithDropUnresolvedEdges() Option {
	return func(c *config) { c.dropUnresolvedEdges = true }
}

// WithObserver attaches o to the sweep; its Observe method is called once
// per processed event, plus once more after the finishing pass closes
// remaining open edges.
func WithObserver(o StepObserver) Option {
	return func(c *config) { c.observer = o }
}

// WithLogger enables step-by-step tracing of the sweep through l. By
// default Build logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}
