package hresult

import (
	"errors"
	"fmt"
)

// ErrContractViolation is matched by every panic raised for reading the
// wrong side of a result.
var ErrContractViolation = errors.New("hresult: contract violation")

// ContractViolation is the panic value raised when a caller reads the value
// of a failed result, the code of a successful one, or anything from a
// result that was never constructed.
type ContractViolation struct {
	Op    string
	State string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("hresult: %s called on %s result", e.Op, e.State)
}

func (e *ContractViolation) Is(target error) bool {
	return target == ErrContractViolation
}

// IsContractViolation reports whether a recovered panic value is a
// contract violation.
func IsContractViolation(recovered any) bool {
	err, ok := recovered.(error)
	return ok && errors.Is(err, ErrContractViolation)
}

func violate(op string, s state) {
	panic(&ContractViolation{Op: op, State: s.String()})
}
