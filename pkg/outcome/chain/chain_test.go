package chain

import (
	"context"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func always(o outcome.Outcome) func(context.Context) outcome.Outcome {
	return func(context.Context) outcome.Outcome { return o }
}

func TestStartAndOutcome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := Start(ctx, outcome.Success).Outcome(); got != outcome.Success {
		t.Fatalf("expected Success, got %v", got)
	}
	if got := FromBool(ctx, false).Outcome(); got != outcome.Failure {
		t.Fatalf("expected Failure, got %v", got)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false

	out := FromBool(context.Background(), false).
		Then(func(context.Context) outcome.Outcome {
			called = true
			return outcome.Success
		}).
		Outcome()

	if out != outcome.Failure {
		t.Fatalf("expected Failure, got %v", out)
	}
	if called {
		t.Fatalf("next should not be called when the chain has failed")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	out := FromBool(context.Background(), true).
		Then(always(outcome.Success)).
		Then(always(outcome.Failure)).
		Outcome()

	if out != outcome.Failure {
		t.Fatalf("expected Failure from last step, got %v", out)
	}
}

func TestOtherwise(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false

	out := Start(ctx, outcome.Success).
		Otherwise(func(context.Context) outcome.Outcome {
			called = true
			return outcome.Failure
		}).
		Outcome()
	if out != outcome.Success || called {
		t.Fatalf("expected Success without fallback, got %v called=%v", out, called)
	}

	out = Start(ctx, outcome.Failure).Otherwise(always(outcome.Success)).Outcome()
	if out != outcome.Success {
		t.Fatalf("expected fallback Success, got %v", out)
	}
}

func TestAndOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ok := Start(ctx, outcome.Success)
	failed := Start(ctx, outcome.Failure)

	if got := ok.And(failed).Outcome(); got != outcome.Failure {
		t.Fatalf("Success AND Failure: got %v", got)
	}
	if got := ok.And(ok).Outcome(); got != outcome.Success {
		t.Fatalf("Success AND Success: got %v", got)
	}
	if got := failed.Or(ok).Outcome(); got != outcome.Success {
		t.Fatalf("Failure OR Success: got %v", got)
	}
	if got := failed.Or(failed).Outcome(); got != outcome.Failure {
		t.Fatalf("Failure OR Failure: got %v", got)
	}
}

func TestAnd_KeepsReceiverContext(t *testing.T) {
	t.Parallel()
	type key struct{}
	first := context.WithValue(context.Background(), key{}, "first")
	second := context.WithValue(context.Background(), key{}, "second")

	var seen any
	Start(first, outcome.Success).
		And(Start(second, outcome.Success)).
		Ensure(func(ctx context.Context) { seen = ctx.Value(key{}) }, nil)

	if seen != "first" {
		t.Fatalf("expected receiver context, got %v", seen)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var ok, failed int
	onSuccess := func(context.Context) { ok++ }
	onFailure := func(context.Context) { failed++ }

	Start(ctx, outcome.Success).Ensure(onSuccess, onFailure)
	Start(ctx, outcome.Failure).Ensure(onSuccess, onFailure)
	Start(ctx, outcome.Failure).Ensure(onSuccess, nil)

	if ok != 1 || failed != 1 {
		t.Fatalf("expected one call each, got success=%d failure=%d", ok, failed)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Start(ctx, outcome.Failure).Finally(always(outcome.Failure), always(outcome.Success))
	if got != outcome.Success {
		t.Fatalf("expected onFailure handler result, got %v", got)
	}
}
