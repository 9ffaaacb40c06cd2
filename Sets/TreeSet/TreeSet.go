package TreeSet

import (
	"fmt"
	"iter"

	"github.com/g-m-twostay/bintree/Sets"
	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set over an unbalanced binary search tree. The shape, and so
// the cost of every operation, depends on the order of insertions: O(log n) for random
// orders, O(n) for sorted ones.
type TreeSet[E any] struct {
	t   Trees.Tree[E]
	cmp Trees.Comparator[E]
	sz  uint
}

var _ Sets.OrderedSet[int] = (*TreeSet[int])(nil)

// New TreeSet ordered by cmp. Elements equal under cmp are the same element.
func New[E any](cmp Trees.Comparator[E]) *TreeSet[E] {
	return &TreeSet[E]{cmp: cmp}
}

// NewOrdered TreeSet using the natural order of E.
func NewOrdered[E constraints.Ordered]() *TreeSet[E] {
	return New[E](Trees.Natural[E])
}

// From es, ignoring duplicates.
func From[E any](cmp Trees.Comparator[E], es ...E) *TreeSet[E] {
	u := New[E](cmp)
	for _, e := range es {
		u.Put(e)
	}
	return u
}

func (u *TreeSet[E]) Size() uint {
	return u.sz
}

// Put e into the set. Returns false and keeps the stored element if an equal one is present.
func (u *TreeSet[E]) Put(e E) bool {
	_, inserted := u.t.PushSortedAbsent(e, u.cmp)
	if inserted {
		u.sz++
	}
	return inserted
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.ContainsSorted(e, u.cmp)
}

// Get the stored element equal to e.
func (u *TreeSet[E]) Get(e E) (E, bool) {
	return u.t.GetSorted(e, u.cmp)
}

func (u *TreeSet[E]) Remove(e E) bool {
	if _, ok := u.t.RemoveSorted(e, u.cmp); ok {
		u.sz--
		return true
	}
	return false
}

// Take the smallest element.
func (u *TreeSet[E]) Take() E {
	e, _ := u.t.Minimum()
	return e
}

func (u *TreeSet[E]) Minimum() (E, bool) {
	return u.t.Minimum()
}

func (u *TreeSet[E]) Maximum() (E, bool) {
	return u.t.Maximum()
}

// Range over the elements in ascending order. The set must not be modified from f.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for e := range u.All() {
		if !f(e) {
			return
		}
	}
}

// All elements in ascending order.
func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.t.Iter(Trees.DepthFirstIn).All()
}

// Slice of the elements in ascending order.
func (u *TreeSet[E]) Slice() []E {
	return u.t.ToSlice()
}

func (u *TreeSet[E]) Clear() {
	u.t.Clear()
	u.sz = 0
}

// PutAll elements of s. Returns how many were added.
func (u *TreeSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of s. Returns how many were removed.
func (u *TreeSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	if s == Sets.Set[E](u) {
		n = u.sz
		u.Clear()
		return
	}
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq is true if both sets hold the same elements, judged by this set's comparator.
func (u *TreeSet[E]) Eq(s Sets.Set[E]) bool {
	if u.sz != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect keeps only the elements also in s.
func (u *TreeSet[E]) Intersect(s Sets.Set[E]) {
	var drop []E
	for e := range u.All() {
		if !s.Has(e) {
			drop = append(drop, e)
		}
	}
	for _, e := range drop {
		u.Remove(e)
	}
}

// Filter returns a new TreeSet with the same ordering holding the elements f accepts.
func (u *TreeSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	var keep []E
	for e := range u.All() {
		if f(e) {
			keep = append(keep, e)
		}
	}
	r := New[E](u.cmp)
	r.fill(keep)
	return r
}

// fill u with sorted and distinct es, middle first so that the tree comes out balanced.
func (u *TreeSet[E]) fill(es []E) {
	if len(es) > 0 {
		mid := len(es) >> 1
		u.t.PushSortedUnique(es[mid], u.cmp)
		u.sz++
		u.fill(es[:mid])
		u.fill(es[mid+1:])
	}
}

func (u *TreeSet[E]) String() string {
	return fmt.Sprint(u.Slice())
}
