package functions

import "strings"

// Flags is the set of behaviours active on a wrapper.
type Flags uint8

const (
	// FlagBind fixes the receiver to Metadata.Receiver.
	FlagBind Flags = 1 << iota
	// FlagBindKey resolves the target as a property of the receiver at call time.
	FlagBindKey
	// FlagCurry defers invocation until Metadata.Arity call-time arguments arrive.
	FlagCurry
	// FlagCurryBound keeps FlagBind and FlagBindKey across curry re-wraps.
	FlagCurryBound
	// FlagPartial prepends Metadata.Leading.
	FlagPartial
	// FlagPartialRight appends Metadata.Trailing.
	FlagPartialRight
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagBind, "Bind"},
	{FlagBindKey, "BindKey"},
	{FlagCurry, "Curry"},
	{FlagCurryBound, "CurryBound"},
	{FlagPartial, "Partial"},
	{FlagPartialRight, "PartialRight"},
}

// Has reports whether every flag in flags is set.
func (f Flags) Has(flags Flags) bool {
	return f&flags == flags
}

// With returns f with flags set.
func (f Flags) With(flags Flags) Flags {
	return f | flags
}

// Without returns f with flags cleared.
func (f Flags) Without(flags Flags) Flags {
	return f &^ flags
}

func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	names := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
