package symdq

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/symdq/pkg/cas"
	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/ports"
	"github.com/aretw0/symdq/pkg/scalar"
)

// EvaluateDocument composes the chain in doc. The document's domain wins
// over the engine's; its bindings are added to the engine's for numeric
// evaluation.
func (e *Engine) EvaluateDocument(ctx context.Context, doc *chain.Document) (res *ChainResult, err error) {
	domain := doc.DomainOr(e.domain)
	start := time.Now()
	defer func() { e.observe(ctx, OpEvaluate, domain, start, err) }()

	doc, err = sanitizeDocument(doc)
	if err != nil {
		return nil, err
	}
	return dispatch(e, domain, doc.Bindings,
		func(d *scalar.Float) (*ChainResult, error) { return evaluateOp[float64](d, doc) },
		func(d scalar.Symbolic) (*ChainResult, error) { return evaluateOp[cas.Expr](d, doc) },
	)
}

func evaluateOp[S any](dom scalar.Domain[S], doc *chain.Document) (*ChainResult, error) {
	d, err := chain.Build(dom, doc)
	if err != nil {
		return nil, err
	}
	c := codec[S]{dom: dom}
	res := &ChainResult{
		Name:        doc.Name,
		Result:      *c.result(d),
		Unit:        d.IsUnit(),
		Translation: c.formatVector(simplifyVector(dom, d.TranslationVector())),
	}
	for i, row := range d.RotationMatrix() {
		res.Rotation[i] = c.formatVector(simplifyVector(dom, row))
	}
	return res, nil
}

func simplifyVector[S any](dom scalar.Domain[S], v [3]S) [3]S {
	for i := range v {
		v[i] = dom.TrigSimplify(v[i])
	}
	return v
}

// EvaluateChain loads the named chain from the store and evaluates it.
func (e *Engine) EvaluateChain(ctx context.Context, name string) (*ChainResult, error) {
	doc, err := e.LoadChain(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.EvaluateDocument(ctx, doc)
}

// ChainTwist returns the twist of the named chain with respect to one
// joint variable. Differentiation needs the symbolic domain, so the chain
// is always built symbolically; numeric bindings are not applied.
func (e *Engine) ChainTwist(ctx context.Context, name, variable string) (*Result, error) {
	doc, err := e.LoadChain(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.DocumentTwist(ctx, doc, variable)
}

// DocumentTwist is ChainTwist for a document that is not stored.
func (e *Engine) DocumentTwist(ctx context.Context, doc *chain.Document, variable string) (res *Result, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpTwist, DomainSymbolic, start, err) }()

	if variable == "" {
		return nil, &InputError{Field: "variable", Err: fmt.Errorf("required")}
	}
	doc, err = sanitizeDocument(doc)
	if err != nil {
		return nil, err
	}
	dom := scalar.NewSymbolic()
	d, err := chain.Build[cas.Expr](dom, doc)
	if err != nil {
		return nil, err
	}
	tw, err := chain.Twist[cas.Expr](dom, d, variable)
	if err != nil {
		return nil, err
	}
	return codec[cas.Expr]{dom: dom}.result(tw), nil
}

// SaveChain validates doc and stores it under doc.Name.
func (e *Engine) SaveChain(ctx context.Context, doc *chain.Document) (err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpSave, doc.DomainOr(e.domain), start, err) }()

	if err := ports.ValidateName(doc.Name); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	clean, err := sanitizeDocument(doc)
	if err != nil {
		return err
	}
	return e.store.Save(ctx, clean.Name, clean)
}

// LoadChain returns the stored chain. Unknown names fail with
// ports.ErrChainNotFound.
func (e *Engine) LoadChain(ctx context.Context, name string) (doc *chain.Document, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpLoad, e.domain, start, err) }()

	doc, err = e.store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load chain %q: %w", name, err)
	}
	return doc, nil
}

// ListChains returns the stored chain names.
func (e *Engine) ListChains(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpList, e.domain, start, err) }()
	return e.store.List(ctx)
}

// DeleteChain removes a stored chain.
func (e *Engine) DeleteChain(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpDelete, e.domain, start, err) }()

	if err := ports.ValidateName(name); err != nil {
		return err
	}
	return e.store.Delete(ctx, name)
}
