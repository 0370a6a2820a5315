package hresult

import "fmt"

// CodeError is the error form of a failed result.
type CodeError struct {
	Code  Code
	Cause error
}

func (e *CodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hresult %s: %v", e.Code, e.Cause)
	}
	return "hresult " + e.Code.String()
}

// HResult lets Translate recover the code from a wrapped CodeError.
func (e *CodeError) HResult() Code {
	return e.Code
}

func (e *CodeError) Unwrap() error {
	return e.Cause
}

// Is matches any *CodeError carrying the same code.
func (e *CodeError) Is(target error) bool {
	t, ok := target.(*CodeError)
	return ok && t.Code == e.Code
}
