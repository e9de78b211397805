package result

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Result is either a value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

type (
	okJSON struct {
		Status string `json:"status"`
		Value  any    `json:"value"`
	}
	errorJSON struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed result. A nil error yields a successful zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Status() string {
	if r.err != nil {
		return StatusError
	}
	return StatusOK
}

// Value returns the carried value, the zero value for failures.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Unwrap converts the result back into the usual value, error pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(errorJSON{Status: StatusError, Error: r.err.Error()})
	}
	return json.Marshal(okJSON{Status: StatusOK, Value: r.value})
}
