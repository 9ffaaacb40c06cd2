package Sets

import "iter"

// Set of distinct elements. Put reports whether e was added, Remove whether e was present.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	// Take an element, the zero value if the Set is empty.
	Take() E
	// Range calls f on the elements until f returns false.
	Range(func(E) bool)
}

type ExtendedSet[E any] interface {
	PutAll(Set[E]) uint
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	Filter(func(E) bool) ExtendedSet[E]
}

// OrderedSet keeps its elements sorted; Range and All go in ascending order.
type OrderedSet[E any] interface {
	Set[E]
	ExtendedSet[E]
	Minimum() (E, bool)
	Maximum() (E, bool)
	All() iter.Seq[E]
}
