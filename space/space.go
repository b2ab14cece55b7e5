// Package space implements the domains that states and actions live in.
//
// A Space only has to know how to sample a random element. A FiniteSpace
// additionally enumerates its elements in a fixed, deterministic order,
// which is the reference ordering used everywhere else in the library:
// one-hot/block encodings, argmax loops over actions, and tie-breaking
// all walk Enumerate() in the order it returns.
package space

// NotFound is the sentinel index returned by FiniteSpace.Index when the
// queried element is not a member of the space.
const NotFound = -1

// Space describes a domain that can be sampled from.
type Space[T any] interface {
	Sample() T
}

// FiniteSpace is a Space whose elements can be enumerated. Enumerate must
// be deterministic and total: calling it twice yields the same sequence,
// and Index(Enumerate()[i]) == i for every i.
//
// Only spaces of finite size implement FiniteSpace: a non-finite space
// such as Range has no Enumerate method, and the composed spaces
// (Product, Sequence) accept only FiniteSpace components.
type FiniteSpace[T any] interface {
	Space[T]
	Enumerate() []T
	Size() int
	// Index returns the position of e in Enumerate(), or NotFound if e is
	// not a member of the space. Index never panics on a foreign element.
	Index(e T) int
}
