package Trees

// A node in the Tree. Both children are owned exclusively by the node, so the
// structure can't form cycles.
type node[T any] struct {
	v    T
	l, r Tree[T]
}

// Tree is a binary tree of T. The zero value is the empty tree.
// A Tree owns its nodes: copying a Tree value and then mutating both copies
// corrupts the structure, so pass *Tree around instead.
type Tree[T any] struct {
	root *node[T]
}

// New empty tree.
func New[T any]() *Tree[T] {
	return new(Tree[T])
}

// From v as a tree with a single leaf.
func From[T any](v T) *Tree[T] {
	return &Tree[T]{&node[T]{v: v}}
}

// Join v with the contents of l and r as its children. l and r are emptied,
// nil means an empty child.
func Join[T any](v T, l, r *Tree[T]) *Tree[T] {
	n := &node[T]{v: v}
	if l != nil {
		n.l, l.root = *l, nil
	}
	if r != nil {
		n.r, r.root = *r, nil
	}
	return &Tree[T]{n}
}

func (u *Tree[T]) IsEmpty() bool {
	return u.root == nil
}

// Clear drops every node.
func (u *Tree[T]) Clear() {
	u.root = nil
}

// view of the root: a copy of the value and the two children. The children must
// only be read.
func (u *Tree[T]) view() (T, *Tree[T], *Tree[T]) {
	n := u.mustRoot()
	return n.v, &n.l, &n.r
}

// split the root into independent mutable handles to the value and the two children.
func (u *Tree[T]) split() (*T, *Tree[T], *Tree[T]) {
	n := u.mustRoot()
	return &n.v, &n.l, &n.r
}

// take the root out of u, leaving u empty, and return what it owned.
func (u *Tree[T]) take() (T, Tree[T], Tree[T]) {
	n := u.mustRoot()
	u.root = nil
	return n.v, n.l, n.r
}

func (u *Tree[T]) mustRoot() *node[T] {
	if u.root == nil {
		panic(&EmptyTreeError{})
	}
	return u.root
}
