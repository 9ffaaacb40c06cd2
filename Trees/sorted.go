package Trees

// search for v from u downwards following cmp. Returns the subtree holding a value
// equal to v, or the empty subtree where v would be placed.
// Time: O(h)
func (u *Tree[T]) search(v T, cmp Comparator[T]) *Tree[T] {
	cur := u
	for !cur.IsEmpty() {
		cv, l, r := cur.view()
		if c := cmp(v, cv); c < 0 {
			cur = l
		} else if c > 0 {
			cur = r
		} else {
			break
		}
	}
	return cur
}

// PushSortedUnique inserts v as a new leaf where cmp places it. If a value equal to v
// under cmp is already present, it's replaced by v and returned with replaced=true,
// so the number of nodes doesn't change.
// Time: O(h)
func (u *Tree[T]) PushSortedUnique(v T, cmp Comparator[T]) (old T, replaced bool) {
	if at := u.search(v, cmp); at.IsEmpty() {
		*at = *From(v)
	} else {
		p, _, _ := at.split()
		old, *p, replaced = *p, v, true
	}
	return
}

// PushSortedAbsent inserts v as a new leaf where cmp places it, unless a value equal
// to v under cmp is already present. In that case the tree is left as it is and the
// stored value is returned with inserted=false.
// Time: O(h)
func (u *Tree[T]) PushSortedAbsent(v T, cmp Comparator[T]) (stored T, inserted bool) {
	at := u.search(v, cmp)
	if at.IsEmpty() {
		*at = *From(v)
		return v, true
	}
	stored, _, _ = at.view()
	return
}

// GetSorted returns the stored value equal to v under cmp.
// Time: O(h)
func (u *Tree[T]) GetSorted(v T, cmp Comparator[T]) (T, bool) {
	if at := u.search(v, cmp); !at.IsEmpty() {
		cv, _, _ := at.view()
		return cv, true
	}
	return *new(T), false
}

// GetSortedMut returns a pointer to the stored value equal to v under cmp, nil if
// there is none. Changing the value so that its order under cmp changes breaks the
// sortedness of the tree.
// Time: O(h)
func (u *Tree[T]) GetSortedMut(v T, cmp Comparator[T]) *T {
	if at := u.search(v, cmp); !at.IsEmpty() {
		p, _, _ := at.split()
		return p
	}
	return nil
}

// ContainsSorted v under cmp.
// Time: O(h)
func (u *Tree[T]) ContainsSorted(v T, cmp Comparator[T]) bool {
	return !u.search(v, cmp).IsEmpty()
}

// RemoveSorted the value equal to v under cmp and return it.
// A node with two children takes the value of its in-order successor, which is then
// removed from the right subtree instead, so an in-order traversal stays sorted.
// Time: O(h)
func (u *Tree[T]) RemoveSorted(v T, cmp Comparator[T]) (T, bool) {
	if at := u.search(v, cmp); !at.IsEmpty() {
		return at.unlink(), true
	}
	return *new(T), false
}

// unlink the root node of u and return its value. u must not be empty.
func (u *Tree[T]) unlink() T {
	p, l, r := u.split()
	if l.IsEmpty() || r.IsEmpty() {
		v, l, r := u.take()
		if l.IsEmpty() {
			*u = r
		} else {
			*u = l
		}
		return v
	}
	succ := r
	for {
		_, sl, _ := succ.view()
		if sl.IsEmpty() {
			break
		}
		succ = sl
	}
	v := *p
	*p = succ.unlink()
	return v
}

// Contains a value equal to v under eq. Unlike ContainsSorted this visits every node
// and doesn't need the tree to be sorted.
// Time: O(n)
func (u *Tree[T]) Contains(v T, eq func(a, b T) bool) bool {
	for it := u.Iter(DepthFirstPre); ; {
		cv, ok := it.Next()
		if !ok {
			return false
		} else if eq(v, cv) {
			return true
		}
	}
}

// Remove the first value equal to v under eq in pre-order and return it. The tree is
// repaired the same way as RemoveSorted does, which keeps a sorted tree sorted.
// Time: O(n)
func (u *Tree[T]) Remove(v T, eq func(a, b T) bool) (T, bool) {
	// walk subtrees rather than values so the matching one can be unlinked in place
	w := makeWalker(u, DepthFirstPre, func(t *Tree[T]) (*Tree[T], *Tree[T], *Tree[T], bool) {
		if t.IsEmpty() {
			return nil, nil, nil, false
		}
		_, l, r := t.view()
		return t, l, r, true
	})
	for {
		at, ok := w.Next()
		if !ok {
			return *new(T), false
		}
		if cv, _, _ := at.view(); eq(v, cv) {
			return at.unlink(), true
		}
	}
}

// Minimum is the leftmost value, the smallest one if the tree is sorted.
// Time: O(h)
func (u *Tree[T]) Minimum() (T, bool) {
	return u.edge(true)
}

// Maximum is the rightmost value, the greatest one if the tree is sorted.
// Time: O(h)
func (u *Tree[T]) Maximum() (T, bool) {
	return u.edge(false)
}

func (u *Tree[T]) edge(left bool) (T, bool) {
	if u.IsEmpty() {
		return *new(T), false
	}
	cur := u
	for {
		v, l, r := cur.view()
		next := r
		if left {
			next = l
		}
		if next.IsEmpty() {
			return v, true
		}
		cur = next
	}
}
