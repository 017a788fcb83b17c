package functions_test

import (
	"testing"

	"github.com/on-the-ground/lowdash_go/functions"
	"github.com/stretchr/testify/require"
)

func add3(a, b, c int) int { return a + b + c }

// recordCall returns a Func reporting the receiver and arguments it saw.
func recordCall() functions.Func {
	return func(this any, args ...any) (any, error) {
		return call{This: this, Args: args}, nil
	}
}

type call struct {
	This any
	Args []any
}

func sumInts(_ any, args ...any) (any, error) {
	total := 0
	for _, a := range args {
		total += a.(int)
	}
	return total, nil
}

// mustWrapper asserts that a call returned a *functions.Wrapper:
// mustWrapper(t)(w.Invoke(1)).
func mustWrapper(t *testing.T) func(any, error) *functions.Wrapper {
	t.Helper()
	return func(res any, err error) *functions.Wrapper {
		t.Helper()
		require.NoError(t, err)
		w, ok := res.(*functions.Wrapper)
		require.True(t, ok, "expected *functions.Wrapper, got %T", res)
		return w
	}
}
