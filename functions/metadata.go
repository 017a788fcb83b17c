package functions

import "slices"

// Metadata describes the composition state of a wrapper.
//
// Flags decide which of the other fields are consulted: Receiver only with
// FlagBind, Arity only with FlagCurry. With FlagBindKey, Target holds the
// property name to look up on the receiver.
type Metadata struct {
	Target   any
	Flags    Flags
	Arity    int
	Receiver any
	Leading  []any // nil means absent
	Trailing []any // nil means absent
}

// normalized returns a copy that owns its argument slices and has a
// non-negative arity.
func (m Metadata) normalized() Metadata {
	m.Arity = max(0, m.Arity)
	m.Leading = slices.Clone(m.Leading)
	m.Trailing = slices.Clone(m.Trailing)
	return m
}

// curried derives the metadata of the wrapper returned when a curried call
// supplies fewer than Arity arguments. args already holds everything
// collected so far and becomes the new leading arguments.
func (m Metadata) curried(supplied int, args []any) Metadata {
	flags := m.Flags.With(FlagPartial).Without(FlagPartialRight)
	if !m.Flags.Has(FlagCurryBound) {
		flags = flags.Without(FlagBind | FlagBindKey)
	}
	return Metadata{
		Target:   m.Target,
		Flags:    flags,
		Arity:    max(0, m.Arity-supplied),
		Receiver: m.Receiver,
		Leading:  args,
	}
}
