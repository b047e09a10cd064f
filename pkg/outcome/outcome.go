package outcome

// Outcome is either Success or Failure. The zero value is Failure.
type Outcome uint8

const (
	// Failure is the unsuccessful variant.
	Failure Outcome = iota
	// Success is the successful variant.
	Success
)

// OrPanicMessage is the panic value of OrPanic on a Failure. The text is fixed
// so callers recovering from the panic can compare against it.
const OrPanicMessage = "called OrPanic on a Failure value"

// FromBool returns Success if good is true, otherwise Failure.
func FromBool(good bool) Outcome {
	if good {
		return Success
	}
	return Failure
}

// FromError returns Success for a nil error, otherwise Failure.
func FromError(err error) Outcome {
	return FromBool(err == nil)
}

func (o Outcome) IsSuccess() bool {
	return o == Success
}

func (o Outcome) IsFailure() bool {
	return !o.IsSuccess()
}

// Bool reports the outcome as a plain bool.
func (o Outcome) Bool() bool {
	return o.IsSuccess()
}

// Not swaps Success and Failure.
func (o Outcome) Not() Outcome {
	return FromBool(o.IsFailure())
}

// And returns Failure if o is Failure, otherwise other.
func (o Outcome) And(other Outcome) Outcome {
	if o.IsFailure() {
		return Failure
	}
	return other
}

// Or returns Success if o is Success, otherwise other.
func (o Outcome) Or(other Outcome) Outcome {
	if o.IsSuccess() {
		return Success
	}
	return other
}

// Xor returns Success when exactly one of o and other is Success.
func (o Outcome) Xor(other Outcome) Outcome {
	return FromBool(o.IsSuccess() != other.IsSuccess())
}

// AndThen returns Failure if o is Failure, otherwise calls f and returns its result.
func (o Outcome) AndThen(f func() Outcome) Outcome {
	if o.IsFailure() {
		return Failure
	}
	return f()
}

// OrThen returns Success if o is Success, otherwise calls f and returns its result.
func (o Outcome) OrThen(f func() Outcome) Outcome {
	if o.IsSuccess() {
		return Success
	}
	return f()
}

func (o Outcome) String() string {
	if o.IsSuccess() {
		return "Success"
	}
	return "Failure"
}
