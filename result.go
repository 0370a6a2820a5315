// Package hresult carries either a value or an HRESULT-style status code
// through a call chain.
//
// A result is built once by a named constructor and never changes. Reading
// the value of a failed result, or the code of a successful one, is a bug in
// the caller and panics with a *ContractViolation. The represented failure
// itself is an ordinary value and is returned, never thrown.
//
//	func openDocument(path string) hresult.Of[*Document] {
//		doc, code := native.Open(path)
//		return hresult.SuccessOrError(doc, code)
//	}
//
//	res := openDocument("a.txt")
//	if doc, ok := res.TryValue(); ok {
//		use(doc)
//	} else {
//		log.Printf("open failed: %v", res.Code())
//	}
package hresult

import "reflect"

type state uint8

const (
	stateUnset state = iota
	stateSuccess
	stateError
)

func (s state) String() string {
	switch s {
	case stateSuccess:
		return "successful"
	case stateError:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Result is a success or a failure status code, with no payload.
type Result struct {
	state state
	code  Code
	cause error
}

// Success returns a successful Result.
func Success() Result {
	return Result{state: stateSuccess}
}

// Error returns a failed Result carrying the generic CodeFail.
func Error() Result {
	return Result{state: stateError, code: CodeFail}
}

// NewError returns a failed Result carrying code.
//
// The code is not checked against Code.Failed; passing a success code
// produces a failed Result whose code reads as success downstream.
func NewError(code Code) Result {
	return Result{state: stateError, code: code}
}

// NewErrorWith returns a failed Result carrying code, with cause kept for
// Err. Like NewError it does not check the code.
func NewErrorWith(code Code, cause error) Result {
	return Result{state: stateError, code: code, cause: cause}
}

// NewErrorFrom returns a failed Result carrying the code Translate assigns
// to err. The error is kept as the cause of Err.
func NewErrorFrom(err error) Result {
	return Result{state: stateError, code: Translate(err), cause: err}
}

// IsSuccess reports whether r is a success.
func (r Result) IsSuccess() bool { return r.state == stateSuccess }

// IsError reports whether r is a failure.
func (r Result) IsError() bool { return r.state == stateError }

// IsValid reports whether r was built by a constructor.
func (r Result) IsValid() bool { return r.state != stateUnset }

// Code returns the status code of a failed Result. It panics if r is not a
// failure.
func (r Result) Code() Code {
	if r.state != stateError {
		violate("Result.Code", r.state)
	}
	return r.code
}

// Err returns nil for a success and a *CodeError for a failure.
func (r Result) Err() error {
	switch r.state {
	case stateSuccess:
		return nil
	case stateError:
		return &CodeError{Code: r.code, Cause: r.cause}
	}
	violate("Result.Err", r.state)
	return nil
}

// Of is either a T value or a failure status code.
type Of[T any] struct {
	state state
	value T
	code  Code
	cause error
}

// Value returns a successful result holding v, as-is.
func Value[T any](v T) Of[T] {
	return Of[T]{state: stateSuccess, value: v}
}

// NonNull returns a successful result holding v, or Error() converted to
// Of[T] when v is a nil pointer, map, slice, channel, function or interface.
func NonNull[T any](v T) Of[T] {
	if isNil(v) {
		return To[T](Error())
	}
	return Value(v)
}

// FromPointer returns a successful result holding *p, or Error() converted
// to Of[T] when p is nil.
func FromPointer[T any](p *T) Of[T] {
	if p == nil {
		return To[T](Error())
	}
	return Value(*p)
}

// SuccessOrError collapses the native "out value plus status" pattern: when
// code succeeded the result holds v, otherwise v is dropped and the result
// carries code.
func SuccessOrError[T any](v T, code Code) Of[T] {
	if code.Succeeded() {
		return Value(v)
	}
	return Of[T]{state: stateError, code: code}
}

// Call runs a native-style function and collapses its output with
// SuccessOrError.
func Call[T any](fn func() (T, Code)) Of[T] {
	v, code := fn()
	return SuccessOrError(v, code)
}

// Wrap converts a Go (value, error) pair. A nil err yields Value(v); any
// other err yields a failure carrying Translate(err) with err as its cause.
func Wrap[T any](v T, err error) Of[T] {
	if err == nil {
		return Value(v)
	}
	return To[T](NewErrorFrom(err))
}

// To converts a failed Result to Of[T], keeping its code and cause. It
// panics if r is not a failure, as there is no value to carry.
func To[T any](r Result) Of[T] {
	if r.state != stateError {
		violate("To", r.state)
	}
	return Of[T]{state: stateError, code: r.code, cause: r.cause}
}

// IsSuccess reports whether r holds a value.
func (r Of[T]) IsSuccess() bool { return r.state == stateSuccess }

// IsError reports whether r holds a status code.
func (r Of[T]) IsError() bool { return r.state == stateError }

// IsValid reports whether r was built by a constructor.
func (r Of[T]) IsValid() bool { return r.state != stateUnset }

// Value returns the payload. It panics if r is not a success.
func (r Of[T]) Value() T {
	if r.state != stateSuccess {
		violate("Of.Value", r.state)
	}
	return r.value
}

// Code returns the status code. It panics if r is not a failure.
func (r Of[T]) Code() Code {
	if r.state != stateError {
		violate("Of.Code", r.state)
	}
	return r.code
}

// ValueOr returns the payload, or fallback if r is not a success.
func (r Of[T]) ValueOr(fallback T) T {
	if r.state == stateSuccess {
		return r.value
	}
	return fallback
}

// ValueOrZero returns the payload, or the zero T if r is not a success.
func (r Of[T]) ValueOrZero() T {
	var zero T
	return r.ValueOr(zero)
}

// TryValue returns the payload and true, or the zero T and false.
func (r Of[T]) TryValue() (T, bool) {
	if r.state == stateSuccess {
		return r.value, true
	}
	var zero T
	return zero, false
}

// Err returns nil for a success and a *CodeError for a failure.
func (r Of[T]) Err() error {
	if !r.IsValid() {
		violate("Of.Err", r.state)
	}
	return r.Result().Err()
}

// Unwrap returns the payload and error in Go's usual form.
func (r Of[T]) Unwrap() (T, error) {
	if !r.IsValid() {
		violate("Of.Unwrap", r.state)
	}
	return r.value, r.Result().Err()
}

// Result drops the payload.
func (r Of[T]) Result() Result {
	return Result{state: r.state, code: r.code, cause: r.cause}
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
