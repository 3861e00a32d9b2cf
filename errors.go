package stash

// WithCause is implemented by errors that carry an underlying cause.
type WithCause interface{ Cause() error }

// InvalidArgumentError indicates misuse of the API: invalid construction
// options or invalid arguments to an operation. It is returned
// immediately from the offending call and is meant to be fixed by the
// caller, not handled per-call.
type InvalidArgumentError struct {
	msg string
}

func NewInvalidArgumentError(msg string) InvalidArgumentError {
	return InvalidArgumentError{msg: msg}
}

func (e InvalidArgumentError) Error() string {
	return e.msg
}

// RuntimeError indicates an operational failure: anything raised by the
// backing driver or by value encoding/decoding during an operation. It
// wraps the original cause.
type RuntimeError struct {
	msg   string
	cause error
}

func NewRuntimeError(msg string, cause error) RuntimeError {
	return RuntimeError{msg: msg, cause: cause}
}

func (e RuntimeError) Error() string {
	return e.msg
}

func (e RuntimeError) Cause() error {
	return e.cause
}

func (e RuntimeError) Unwrap() error {
	return e.cause
}
