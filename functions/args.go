package functions

// combineArgs returns leading ++ call ++ trailing in a new slice. Neither
// input is modified, so metadata slices can be reused across calls.
func combineArgs(leading, call, trailing []any) []any {
	args := make([]any, 0, len(leading)+len(call)+len(trailing))
	args = append(args, leading...)
	args = append(args, call...)
	return append(args, trailing...)
}
