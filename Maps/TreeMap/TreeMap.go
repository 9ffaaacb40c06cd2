package TreeMap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/g-m-twostay/bintree/Maps"
	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

type pair[K, V any] struct {
	k K
	v V
}

// TreeMap is an ordered map over an unbalanced binary search tree of key-value pairs,
// ordered by the key alone. Like TreeSet.TreeSet, its shape follows the order of
// insertions.
type TreeMap[K, V any] struct {
	t   Trees.Tree[pair[K, V]]
	cmp Trees.Comparator[pair[K, V]]
	sz  uint
}

var (
	_ Maps.Map[int, int] = (*TreeMap[int, int])(nil)
	_ Maps.Swapper[int]  = (*TreeMap[int, int])(nil)
)

// New TreeMap with keys ordered by cmp.
func New[K, V any](cmp Trees.Comparator[K]) *TreeMap[K, V] {
	return &TreeMap[K, V]{cmp: func(a, b pair[K, V]) int {
		return cmp(a.k, b.k)
	}}
}

// NewOrdered TreeMap using the natural order of K.
func NewOrdered[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](Trees.Natural[K])
}

func (u *TreeMap[K, V]) Size() uint {
	return u.sz
}

// Put v at k. An existing entry is overwritten, key included, and its value returned.
func (u *TreeMap[K, V]) Put(k K, v V) (V, bool) {
	old, replaced := u.t.PushSortedUnique(pair[K, V]{k, v}, u.cmp)
	if !replaced {
		u.sz++
	}
	return old.v, replaced
}

func (u *TreeMap[K, V]) Get(k K) (V, bool) {
	p, ok := u.t.GetSorted(pair[K, V]{k: k}, u.cmp)
	return p.v, ok
}

// GetPtr returns a pointer to the value at k, nil if k is absent. The pointer stays
// valid until k is removed.
func (u *TreeMap[K, V]) GetPtr(k K) *V {
	if p := u.t.GetSortedMut(pair[K, V]{k: k}, u.cmp); p != nil {
		return &p.v
	}
	return nil
}

func (u *TreeMap[K, V]) HasKey(k K) bool {
	return u.t.ContainsSorted(pair[K, V]{k: k}, u.cmp)
}

func (u *TreeMap[K, V]) Remove(k K) (V, bool) {
	p, ok := u.t.RemoveSorted(pair[K, V]{k: k}, u.cmp)
	if ok {
		u.sz--
	}
	return p.v, ok
}

// Take the entry with the smallest key.
func (u *TreeMap[K, V]) Take() (K, V) {
	p, _ := u.t.Minimum()
	return p.k, p.v
}

// Swap the values at k1 and k2. Both keys are looked up before anything changes, so a
// *Maps.MissingKeyError leaves the map as it was.
func (u *TreeMap[K, V]) Swap(k1, k2 K) error {
	p1 := u.GetPtr(k1)
	if p1 == nil {
		return &Maps.MissingKeyError{Key: k1}
	}
	p2 := u.GetPtr(k2)
	if p2 == nil {
		return &Maps.MissingKeyError{Key: k2}
	}
	*p1, *p2 = *p2, *p1
	return nil
}

func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
	u.sz = 0
}

// Keys in ascending order.
func (u *TreeMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range u.t.Iter(Trees.DepthFirstIn).All() {
			if !yield(p.k) {
				return
			}
		}
	}
}

// Values in ascending order of their keys.
func (u *TreeMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range u.t.Iter(Trees.DepthFirstIn).All() {
			if !yield(p.v) {
				return
			}
		}
	}
}

// Pairs in ascending order of keys.
func (u *TreeMap[K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range u.t.Iter(Trees.DepthFirstIn).All() {
			if !yield(p.k, p.v) {
				return
			}
		}
	}
}

// Range over the entries in ascending order of keys, with the values open to editing.
// Stops when f returns false. The map must not be modified from f otherwise.
func (u *TreeMap[K, V]) Range(f func(K, *V) bool) {
	for p := range u.t.IterMut(Trees.DepthFirstIn).All() {
		if !f(p.k, &p.v) {
			return
		}
	}
}

func (u *TreeMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for k, v := range u.Pairs() {
		if sb.Len() > len("map[") {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
