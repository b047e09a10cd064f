package outcome

import "github.com/samber/mo"

// OrNone maps Success to Some(v) and Failure to None.
func OrNone[T any](o Outcome, v T) mo.Option[T] {
	if o.IsSuccess() {
		return mo.Some(v)
	}
	return mo.None[T]()
}

// OrErr maps Success to (good, nil) and Failure to (zero T, err).
// A nil err on Failure is reported as ErrFailure.
func OrErr[T any](o Outcome, good T, err error) (T, error) {
	if o.IsSuccess() {
		return good, nil
	}
	var zero T
	return zero, failureErr(err)
}

// OrResult is OrErr packaged as a Result.
func OrResult[T any](o Outcome, good T, err error) Result[T] {
	if o.IsSuccess() {
		return Ok(good)
	}
	return Err[T](err)
}

// OrPanic returns good if o is Success. It panics with OrPanicMessage otherwise,
// so call it only where the outcome is already known to be Success.
func OrPanic[T any](o Outcome, good T) T {
	if o.IsFailure() {
		panic(OrPanicMessage)
	}
	return good
}

// Match calls onSuccess or onFailure depending on o and returns what it returns.
func Match[R any](o Outcome, onSuccess func() R, onFailure func() R) R {
	if o.IsSuccess() {
		return onSuccess()
	}
	return onFailure()
}

// All folds outcomes with And. It returns Success for no outcomes.
func All(outcomes ...Outcome) Outcome {
	res := Success
	for _, o := range outcomes {
		res = res.And(o)
	}
	return res
}

// Any folds outcomes with Or. It returns Failure for no outcomes.
func Any(outcomes ...Outcome) Outcome {
	res := Failure
	for _, o := range outcomes {
		res = res.Or(o)
	}
	return res
}
