package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

type Chain struct {
	ctx context.Context
	out outcome.Outcome
}

func Start(ctx context.Context, o outcome.Outcome) Chain {
	return Chain{ctx: ctx, out: o}
}

func FromBool(ctx context.Context, good bool) Chain {
	return Start(ctx, outcome.FromBool(good))
}

func (c Chain) Outcome() outcome.Outcome {
	return c.out
}

// Then runs next only while the chain is successful
func (c Chain) Then(next func(ctx context.Context) outcome.Outcome) Chain {
	return Chain{ctx: c.ctx, out: solo.AndThen(c.ctx, c.out, next)}
}

// Otherwise runs fallback only when the chain has failed
func (c Chain) Otherwise(fallback func(ctx context.Context) outcome.Outcome) Chain {
	return Chain{ctx: c.ctx, out: solo.OrThen(c.ctx, c.out, fallback)}
}

// And keeps the receiver's context.
func (c Chain) And(required Chain) Chain {
	return Chain{ctx: c.ctx, out: c.out.And(required.out)}
}

func (c Chain) Or(alternative Chain) Chain {
	return Chain{ctx: c.ctx, out: c.out.Or(alternative.out)}
}

// Ensure triggers side effects for success/failure without changing the outcome
func (c Chain) Ensure(onSuccess, onFailure func(context.Context)) Chain {
	if c.out.IsSuccess() {
		if onSuccess != nil {
			onSuccess(c.ctx)
		}
		return c
	}

	if onFailure != nil {
		onFailure(c.ctx)
	}
	return c
}

// Finally collapses the chain to a final outcome, delegating to solo.Finally
func (c Chain) Finally(onSuccess, onFailure func(context.Context) outcome.Outcome) outcome.Outcome {
	return solo.Finally(c.ctx, c.out, onSuccess, onFailure)
}
