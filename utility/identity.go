package utility

// Identity returns its argument. It is the default iteratee wherever one is optional.
func Identity[T any](value T) T {
	return value
}

// IdentityFunc is Identity in the native callable signature: it returns
// the first argument, or nil when there is none.
func IdentityFunc(_ any, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[0], nil
}
