package functions

import (
	"errors"
	"fmt"
)

var (
	ErrNotCallable  = errors.New("target is not callable")
	ErrArgumentType = errors.New("argument type mismatch")
)

// InvocationError reports a wrapper call that could not reach its target.
// Errors returned by the target itself are passed through unwrapped.
type InvocationError struct {
	Target any
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %s: %v", describe(e.Target), e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

func describe(target any) string {
	switch t := target.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", t)
	case *Function:
		if t != nil && t.name != "" {
			return t.name
		}
	}
	return fmt.Sprintf("%T", target)
}
