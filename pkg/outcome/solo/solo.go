package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) bool) outcome.Outcome {
	return outcome.FromBool(validate(ctx, input))
}

func Try(ctx context.Context, onTryExecute func(ctx context.Context) error) outcome.Outcome {
	return outcome.FromError(onTryExecute(ctx))
}

// AndThen is outcome.Outcome.AndThen that also refuses to call next once ctx is done.
func AndThen(ctx context.Context, input outcome.Outcome,
	next func(ctx context.Context) outcome.Outcome) outcome.Outcome {

	if input.IsFailure() || ctx.Err() != nil {
		return outcome.Failure
	}
	return next(ctx)
}

// OrThen is outcome.Outcome.OrThen; a done ctx turns a pending fallback into Failure.
func OrThen(ctx context.Context, input outcome.Outcome,
	fallback func(ctx context.Context) outcome.Outcome) outcome.Outcome {

	if input.IsSuccess() {
		return outcome.Success
	}
	if ctx.Err() != nil {
		return outcome.Failure
	}
	return fallback(ctx)
}

func Tee(ctx context.Context, input outcome.Outcome,
	onSuccess func(ctx context.Context)) outcome.Outcome {

	if input.IsSuccess() && onSuccess != nil {
		onSuccess(ctx)
	}
	return input
}

// DoubleTee calls onSuccess or onFailure; nil handlers are skipped.
func DoubleTee(ctx context.Context, input outcome.Outcome,
	onSuccess func(ctx context.Context),
	onFailure func(ctx context.Context)) outcome.Outcome {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx)
		}
		return input
	}

	if onFailure != nil {
		onFailure(ctx)
	}
	return input
}

func Finally[Out any](ctx context.Context, input outcome.Outcome,
	onSuccess func(ctx context.Context) Out,
	onFailure func(ctx context.Context) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx)
	}
	return onFailure(ctx)
}

func Join(ctx context.Context,
	breakOnFailure bool, // exit on first failure
	steps ...func(ctx context.Context) outcome.Outcome) outcome.Outcome {

	final := outcome.Success
	for _, step := range steps {
		if ctx.Err() != nil {
			return outcome.Failure
		}

		final = final.And(step(ctx))
		if final.IsFailure() && breakOnFailure {
			return final
		}
	}
	return final
}
