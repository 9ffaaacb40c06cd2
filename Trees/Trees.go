package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Comparator orders a and b: negative if a<b, zero if they are equal, positive if a>b.
// Sorted operations of a Tree take the comparator per call, so the same
// element type can be kept under different orderings. A comparator that
// can't order some pair must report 0 for it, and the pair is then treated as
// equal: PushSortedUnique replaces, GetSorted finds, RemoveSorted removes.
// A Tree stays sorted only while every mutation goes through the sorted
// operations with one consistent comparator; otherwise the results of the
// sorted operations are unspecified, but they never panic.
type Comparator[T any] func(a, b T) int

// Natural ordering of T.
func Natural[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Order of a traversal.
type Order byte

const (
	// BreadthFirst visits level by level, root first, left to right.
	BreadthFirst Order = iota
	// DepthFirstIn visits the left subtree, the value, then the right subtree.
	DepthFirstIn
	// DepthFirstPre visits the value before both subtrees.
	DepthFirstPre
	// DepthFirstPost visits the value after both subtrees.
	DepthFirstPost
)

func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirstIn:
		return "in-order"
	case DepthFirstPre:
		return "pre-order"
	case DepthFirstPost:
		return "post-order"
	default:
		return "unknown"
	}
}

// EmptyTreeError is the panic value when a node is required but the tree is empty.
// The exported operations check for emptiness first, so seeing it means a bug.
type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: no node to split."
}
