package hresult

import "fmt"

// Guard runs fn and reports its outcome as a Result. A panic inside fn is
// recovered and becomes a failure; contract violations are re-raised.
func Guard(fn func() error) (r Result) {
	defer func() {
		if p := recover(); p != nil {
			r = fromPanic(p)
		}
	}()

	if err := fn(); err != nil {
		return NewErrorFrom(err)
	}
	return Success()
}

// GuardValue is Guard for functions that produce a value.
func GuardValue[T any](fn func() (T, error)) (r Of[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = To[T](fromPanic(p))
		}
	}()

	v, err := fn()
	return Wrap(v, err)
}

func fromPanic(p any) Result {
	if IsContractViolation(p) {
		panic(p)
	}
	if err, ok := p.(error); ok {
		return NewErrorFrom(err)
	}
	return NewErrorWith(CodeUnexpected, fmt.Errorf("panic: %v", p))
}
