package modorder

import (
	"context"
	"log/slog"

	"github.com/albertocavalcante/go-modorder/depgraph"
)

// Option configures resolver behavior.
type Option func(*resolverConfig) error

// resolverConfig holds all resolver configuration.
type resolverConfig struct {
	policy      depgraph.Policy
	allowCycles bool

	// logger is the structured logger for debug/info output.
	// If nil, logging is disabled (silent mode).
	//
	// Design decision: We use *slog.Logger (Go 1.21+ stdlib) rather than a
	// custom interface because slog provides frontend/backend separation by
	// design. Users can plug in any backend (zap, zerolog, etc.) via slog
	// handlers. See: https://go.dev/blog/slog
	logger *slog.Logger
}

// WithPolicy sets how edges to undeclared modules are treated.
// The default is depgraph.Strict.
func WithPolicy(p depgraph.Policy) Option {
	return func(c *resolverConfig) error {
		c.policy = p
		return nil
	}
}

// WithAllowCycles skips cycle detection during BuildDependencyGraph.
// Load ordering still fails hard on a cyclic graph; this only lets a
// graph with known cycles pass validation for inspection purposes.
func WithAllowCycles(allow bool) Option {
	return func(c *resolverConfig) error {
		c.allowCycles = allow
		return nil
	}
}

// WithLogger sets a structured logger for resolution diagnostics.
// If not set, logging is disabled (silent mode).
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	r, _ := modorder.New(modorder.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(c *resolverConfig) error {
		c.logger = l
		return nil
	}
}

// log returns the configured logger, or a no-op logger if none was set.
// This allows internal code to call logging methods without nil checks.
func (c *resolverConfig) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// newResolverConfig applies the given options over the defaults.
func newResolverConfig(opts ...Option) (*resolverConfig, error) {
	c := &resolverConfig{policy: depgraph.Strict}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
