package symdq

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"time"

	"github.com/aretw0/symdq/pkg/adapters/memory"
	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/ports"
	"github.com/aretw0/symdq/pkg/scalar"
)

// Domain names accepted by WithDomain.
const (
	DomainSymbolic = chain.DomainSymbolic
	DomainNumeric  = chain.DomainNumeric
)

// Engine is the high-level entry point for the symdq library. It takes
// expressions as strings, evaluates them in the configured scalar domain
// and renders results back to strings.
// An Engine is safe for concurrent use.
type Engine struct {
	domain    string
	tolerance float64
	bindings  map[string]float64
	store     ports.ChainStore
	hooks     Hooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithDomain selects "symbolic" (default) or "numeric" evaluation.
func WithDomain(name string) Option {
	return func(e *Engine) {
		e.domain = name
	}
}

// WithTolerance sets the equality tolerance of the numeric domain.
func WithTolerance(tol float64) Option {
	return func(e *Engine) {
		e.tolerance = tol
	}
}

// WithBindings sets symbol values used by the numeric domain. Chain
// documents may add their own. The map is copied.
func WithBindings(b map[string]float64) Option {
	b = maps.Clone(b)
	return func(e *Engine) {
		e.bindings = b
	}
}

// WithStore injects the chain store. The default is an in-memory store.
func WithStore(s ports.ChainStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		domain:    DomainSymbolic,
		tolerance: scalar.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(eng)
	}

	switch eng.domain {
	case DomainSymbolic, DomainNumeric:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, eng.domain)
	}
	if eng.tolerance <= 0 {
		return nil, fmt.Errorf("tolerance must be positive, got %g", eng.tolerance)
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("domain", eng.domain)

	return eng, nil
}

// Domain returns the configured domain name.
func (e *Engine) Domain() string { return e.domain }

// Store returns the chain store.
func (e *Engine) Store() ports.ChainStore { return e.store }

// numeric builds the float domain with the engine bindings overlaid by extra.
func (e *Engine) numeric(extra map[string]float64) *scalar.Float {
	b := make(map[string]float64, len(e.bindings)+len(extra))
	for k, v := range e.bindings {
		b[k] = v
	}
	for k, v := range extra {
		b[k] = v
	}
	return scalar.NewFloat(scalar.WithTolerance(e.tolerance), scalar.WithBindings(b))
}

// dispatch runs num or sym depending on the domain name.
func dispatch[R any](e *Engine, domain string, bindings map[string]float64,
	num func(*scalar.Float) (R, error), sym func(scalar.Symbolic) (R, error),
) (R, error) {
	switch domain {
	case DomainNumeric:
		return num(e.numeric(bindings))
	case DomainSymbolic:
		return sym(scalar.NewSymbolic())
	}
	var zero R
	return zero, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}

// observe logs the call and fires the hook.
func (e *Engine) observe(ctx context.Context, op, domain string, start time.Time, err error) {
	ev := &OperationEvent{Operation: op, Domain: domain, Duration: time.Since(start), Err: err}
	if err != nil {
		e.logger.DebugContext(ctx, "operation failed", "op", op, "error", err)
	} else {
		e.logger.DebugContext(ctx, "operation", "op", op, "duration", ev.Duration)
	}
	if e.hooks.OnOperation != nil {
		e.hooks.OnOperation(ctx, ev)
	}
}
