package Trees

import (
	"iter"

	"github.com/g-m-twostay/bintree/Queues"
)

// entry in the work queue of a walker. It's either a subtree still to be expanded, or
// a value ready to be yielded when ready is set.
type entry[S, V any] struct {
	sub   S
	v     V
	ready bool
}

// walker is the traversal algorithm shared by all iterators. S is how a subtree is held
// and V is how a value is handed out; split decomposes a subtree and reports false
// if it's empty.
// Breadth-first pops from the front, the depth-first orders pop from the back; all
// push to the back. The push order of value and subtrees alone decides the traversal
// order, see Next.
type walker[S, V any] struct {
	q     Queues.Deque[entry[S, V]]
	split func(S) (V, S, S, bool)
	order Order
}

func makeWalker[S, V any](root S, o Order, split func(S) (V, S, S, bool)) walker[S, V] {
	w := walker[S, V]{split: split, order: o}
	w.q.PushBack(entry[S, V]{sub: root})
	return w
}

func (w *walker[S, V]) push(a, b, c entry[S, V]) {
	w.q.PushBack(a)
	w.q.PushBack(b)
	w.q.PushBack(c)
}

// Next value in the traversal. The second return value is false once the traversal is
// over, and it stays false after that.
// Time: amortized O(1); every node is split exactly once.
func (w *walker[S, V]) Next() (V, bool) {
	for {
		var e entry[S, V]
		var ok bool
		if w.order == BreadthFirst {
			e, ok = w.q.PopFront()
		} else {
			e, ok = w.q.PopBack()
		}
		if !ok {
			return *new(V), false
		} else if e.ready {
			return e.v, true
		}
		v, l, r, ok := w.split(e.sub)
		if !ok {
			continue
		}
		val, left, right := entry[S, V]{v: v, ready: true}, entry[S, V]{sub: l}, entry[S, V]{sub: r}
		switch w.order {
		case BreadthFirst:
			w.push(val, left, right)
		case DepthFirstIn:
			w.push(right, val, left)
		case DepthFirstPre:
			w.push(right, left, val)
		default:
			w.push(val, right, left)
		}
	}
}

// All remaining values as a single-use sequence. Breaking out of the range loop
// leaves the rest of the traversal available to Next.
func (w *walker[S, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := w.Next(); ok; v, ok = w.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iter reads the values of a Tree. The Tree must not be modified while an Iter is
// in use.
type Iter[T any] struct {
	walker[*Tree[T], T]
}

// MutIter hands out pointers to the values of a Tree, so they can be edited in
// place during the traversal. Nothing else may use the Tree until the MutIter is
// exhausted or dropped.
// Editing a value of a sorted Tree can break its order.
type MutIter[T any] struct {
	walker[*Tree[T], *T]
}

// IntoIter owns the nodes it walks. They are released as the traversal goes.
type IntoIter[T any] struct {
	walker[Tree[T], T]
}

func viewOf[T any](t *Tree[T]) (v T, l, r *Tree[T], ok bool) {
	if ok = !t.IsEmpty(); ok {
		v, l, r = t.view()
	}
	return
}

func splitOf[T any](t *Tree[T]) (v *T, l, r *Tree[T], ok bool) {
	if ok = !t.IsEmpty(); ok {
		v, l, r = t.split()
	}
	return
}

func takeOf[T any](t Tree[T]) (v T, l, r Tree[T], ok bool) {
	if ok = !t.IsEmpty(); ok {
		v, l, r = t.take()
	}
	return
}

// Iter over the values in order o.
func (u *Tree[T]) Iter(o Order) *Iter[T] {
	return &Iter[T]{makeWalker(u, o, viewOf[T])}
}

// IterMut over pointers to the values in order o.
func (u *Tree[T]) IterMut(o Order) *MutIter[T] {
	return &MutIter[T]{makeWalker(u, o, splitOf[T])}
}

// IntoIter moves every node of u into the returned iterator, leaving u empty.
func (u *Tree[T]) IntoIter(o Order) *IntoIter[T] {
	var t Tree[T]
	t, u.root = *u, nil
	return &IntoIter[T]{makeWalker(t, o, takeOf[T])}
}

// Collect the values in order o.
func (u *Tree[T]) Collect(o Order) []T {
	var s []T
	for it := u.Iter(o); ; {
		v, ok := it.Next()
		if !ok {
			return s
		}
		s = append(s, v)
	}
}

// ToSlice collects the values in-order. For a sorted tree the result is sorted.
func (u *Tree[T]) ToSlice() []T {
	return u.Collect(DepthFirstIn)
}

// Len counts the nodes.
// Time: O(n)
func (u *Tree[T]) Len() (n int) {
	for it := u.Iter(DepthFirstPre); ; n++ {
		if _, ok := it.Next(); !ok {
			return
		}
	}
}
