package outcome

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrFailure stands in for a missing error on a Failure, so a failed
// outcome never reads as success through a nil error.
var ErrFailure = errors.New("outcome: failure")

func failureErr(err error) error {
	if err == nil {
		return ErrFailure
	}
	return err
}

// Result pairs an Outcome with a value on Success or an error on Failure.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	outcome   Outcome
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		outcome:   Success,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err builds a failed Result. A nil err is replaced by ErrFailure.
func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       failureErr(err),
		outcome:   Failure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Outcome() Outcome {
	return r.outcome
}

func (r Result[T]) IsSuccess() bool {
	return r.outcome.IsSuccess()
}

func (r Result[T]) IsFailure() bool {
	return r.outcome.IsFailure()
}

// Unwrap returns the value and error in the usual Go order.
func (r Result[T]) Unwrap() (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, failureErr(r.err)
	}
	return r.value, nil
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
