package Trees

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func eqInt(a, b int) bool {
	return a == b
}

// (((3)<=2)<=1=>(4=>((6)<=5)))
func fixed() *Tree[int] {
	return Join(1, Join(2, From(3), nil), Join(4, nil, Join(5, From(6), nil)))
}

var fixedOrders = map[Order][]int{
	BreadthFirst:   {1, 2, 4, 3, 5, 6},
	DepthFirstIn:   {3, 2, 1, 4, 6, 5},
	DepthFirstPre:  {1, 2, 3, 4, 5, 6},
	DepthFirstPost: {3, 2, 6, 5, 4, 1},
}

func TestTree_String(t *testing.T) {
	if s := fixed().String(); s != "(((3)<=2)<=1=>(4=>((6)<=5)))" {
		t.Errorf("wrong format %s", s)
	}
	if s := New[int]().String(); s != "()" {
		t.Errorf("wrong empty format %s", s)
	}
	if s := From("a").String(); s != "(a)" {
		t.Errorf("wrong leaf format %s", s)
	}
}

func TestTree_Diagram(t *testing.T) {
	d := fixed().Diagram()
	lines := strings.Split(strings.TrimRight(d, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("diagram has %d lines, want 6:\n%s", len(lines), d)
	}
	if lines[0] != "1" {
		t.Errorf("wrong root line %q", lines[0])
	}
	if !strings.Contains(d, "[L]") || !strings.Contains(d, "[R]") {
		t.Errorf("children not tagged:\n%s", d)
	}
}

func TestTree_Iter(t *testing.T) {
	tree := fixed()
	for o, want := range fixedOrders {
		if s := tree.Collect(o); !slices.Equal(s, want) {
			t.Errorf("%v is %v, want %v", o, s, want)
		}
	}
	if s := tree.ToSlice(); !slices.Equal(s, fixedOrders[DepthFirstIn]) {
		t.Errorf("to slice is %v", s)
	}
	if tree.Len() != 6 {
		t.Errorf("len is %d, want 6", tree.Len())
	}
}

func TestTree_IterMut(t *testing.T) {
	for o, want := range fixedOrders {
		tree := fixed()
		var s []int
		for p := range tree.IterMut(o).All() {
			s = append(s, *p)
			*p *= 10
		}
		if !slices.Equal(s, want) {
			t.Errorf("%v is %v, want %v", o, s, want)
		}
		if tree.String() != "(((30)<=20)<=10=>(40=>((60)<=50)))" {
			t.Errorf("%v edited to %s", o, tree)
		}
	}
}

func TestTree_IntoIter(t *testing.T) {
	for o, want := range fixedOrders {
		tree := fixed()
		it := tree.IntoIter(o)
		if !tree.IsEmpty() {
			t.Errorf("%v didn't move the tree", o)
		}
		if s := slices.Collect(it.All()); !slices.Equal(s, want) {
			t.Errorf("%v is %v, want %v", o, s, want)
		}
	}
}

func TestTree_IterPartial(t *testing.T) {
	tree := fixed()
	it := tree.IterMut(DepthFirstIn)
	for range 2 {
		p, _ := it.Next()
		*p = -*p
	}
	if s := tree.Collect(DepthFirstIn); !slices.Equal(s, []int{-3, -2, 1, 4, 6, 5}) {
		t.Errorf("partial traversal left %v", s)
	}
	into := tree.IntoIter(BreadthFirst)
	if v, _ := into.Next(); v != 1 {
		t.Errorf("wrong first value %d", v)
	}
	for v := range into.All() {
		if v != -2 {
			t.Errorf("wrong second value %d", v)
		}
		break
	}
	if s := slices.Collect(into.All()); !slices.Equal(s, []int{4, -3, 5, 6}) {
		t.Errorf("rest of traversal is %v", s)
	}
}

func TestTree_IterExhausted(t *testing.T) {
	it := New[int]().Iter(DepthFirstPost)
	for range 3 {
		if _, ok := it.Next(); ok {
			t.Error("empty tree yields a value")
		}
	}
	it = From(7).Iter(BreadthFirst)
	if v, ok := it.Next(); !ok || v != 7 {
		t.Errorf("wrong value %d", v)
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator yields a value")
	}
}

func TestTree_EmptySplit(t *testing.T) {
	defer func() {
		var e *EmptyTreeError
		if err, _ := recover().(error); !errors.As(err, &e) {
			t.Errorf("wrong panic %v", err)
		}
	}()
	New[int]().split()
	t.Error("split of an empty tree should panic")
}

func TestTree_SortedRandom(t *testing.T) {
	tree := New[int]()
	oracle := redblacktree.NewWithIntComparator()
	content := make(map[int]struct{})
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			_, in := content[b]
			if _, replaced := tree.PushSortedUnique(b, Natural[int]); replaced != in {
				t.Errorf("wrong replace for key %v", b)
			}
			content[b] = struct{}{}
			oracle.Put(b, nil)
		}
		for i := range rg.Intn(len(a)) {
			_, in := content[a[i]]
			if v, ok := tree.RemoveSorted(a[i], Natural[int]); ok != in || (ok && v != a[i]) {
				t.Errorf("failed to remove key %v", a[i])
			}
			if _, ok := tree.RemoveSorted(a[i], Natural[int]); ok {
				t.Errorf("removed a second time key %v", a[i])
			}
			delete(content, a[i])
			oracle.Remove(a[i])
		}
	}
	s := tree.ToSlice()
	if len(s) != len(content) || tree.Len() != oracle.Size() {
		t.Errorf("tree size is %d, want %d", len(s), len(content))
	}
	if !slices.IsSorted(s) {
		t.Errorf("in-order is not sorted")
	}
	for i, k := range oracle.Keys() {
		if s[i] != k.(int) {
			t.Fatalf("wrong value at %d: %d, want %d", i, s[i], k)
		}
	}
	for v := range tAddValRange {
		_, in := content[v]
		if got, ok := tree.GetSorted(v, Natural[int]); ok != in || (ok && got != v) {
			t.Errorf("wrong get for key %v", v)
		}
		if tree.ContainsSorted(v, Natural[int]) != in {
			t.Errorf("wrong contains sorted for key %v", v)
		}
	}
	for range 100 {
		v := rg.Intn(tAddValRange)
		_, in := content[v]
		if tree.Contains(v, eqInt) != in {
			t.Errorf("wrong contains for key %v", v)
		}
	}
}

func TestTree_RemoveSortedShape(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 6} {
		tree.PushSortedUnique(v, Natural[int])
	}
	if tree.String() != "(((1)<=3=>(4))<=5=>(((6)<=7)<=8=>(9)))" {
		t.Fatalf("wrong shape %s", tree)
	}
	steps := []struct {
		v    int
		want string
	}{
		{5, "(((1)<=3=>(4))<=6=>((7)<=8=>(9)))"},
		{3, "(((1)<=4)<=6=>((7)<=8=>(9)))"},
		{8, "(((1)<=4)<=6=>((7)<=9))"},
		{2, "(((1)<=4)<=6=>((7)<=9))"},
		{4, "((1)<=6=>((7)<=9))"},
		{9, "((1)<=6=>(7))"},
		{6, "((1)<=7)"},
		{1, "(7)"},
		{7, "()"},
	}
	for _, st := range steps {
		v, ok := tree.RemoveSorted(st.v, Natural[int])
		if ok != (st.v != 2) || (ok && v != st.v) {
			t.Errorf("wrong removal of %d: %d %v", st.v, v, ok)
		}
		if tree.String() != st.want {
			t.Fatalf("after removing %d got %s, want %s", st.v, tree, st.want)
		}
	}
	if !tree.IsEmpty() {
		t.Error("tree should be empty")
	}
}

func TestTree_LengthComparator(t *testing.T) {
	byLen := func(a, b string) int {
		return len(a) - len(b)
	}
	tree := New[string]()
	for _, s := range []string{"hello there!", "hello", "hello my name is Rusty", "hello there"} {
		if _, replaced := tree.PushSortedUnique(s, byLen); replaced {
			t.Errorf("%q should be new", s)
		}
	}
	old, replaced := tree.PushSortedUnique("hello world!", byLen)
	if !replaced || old != "hello there!" {
		t.Errorf("wrong replacement %q %v", old, replaced)
	}
	want := []string{"hello", "hello there", "hello world!", "hello my name is Rusty"}
	if s := tree.ToSlice(); !slices.Equal(s, want) {
		t.Errorf("in-order is %q, want %q", s, want)
	}
	if v, ok := tree.GetSorted("twelve chars", byLen); !ok || v != "hello world!" {
		t.Errorf("wrong get %q", v)
	}
	if _, ok := tree.GetSorted("hi", byLen); ok {
		t.Error("found a length that isn't there")
	}
}

func TestTree_GetSortedMut(t *testing.T) {
	type kv struct{ k, v int }
	byK := func(a, b kv) int {
		return a.k - b.k
	}
	tree := New[kv]()
	for i := range 10 {
		tree.PushSortedUnique(kv{(i * 7) % 10, i}, byK)
	}
	p := tree.GetSortedMut(kv{k: 3}, byK)
	if p == nil || p.v != 9 {
		t.Fatalf("wrong pointer %v", p)
	}
	p.v = 100
	if v, _ := tree.GetSorted(kv{k: 3}, byK); v.v != 100 {
		t.Errorf("edit not visible %v", v)
	}
	if tree.GetSortedMut(kv{k: 11}, byK) != nil {
		t.Error("pointer to a missing key")
	}
}

func TestTree_ReverseComparator(t *testing.T) {
	rev := func(a, b int) int {
		return Natural(b, a)
	}
	tree := New[int]()
	for _, v := range rg.Perm(100) {
		tree.PushSortedUnique(v, rev)
	}
	s := tree.ToSlice()
	if slices.Reverse(s); !slices.IsSorted(s) {
		t.Error("in-order is not descending")
	}
	if v, _ := tree.Minimum(); v != 99 {
		t.Errorf("wrong minimum %d", v)
	}
	if v, _ := tree.Maximum(); v != 0 {
		t.Errorf("wrong maximum %d", v)
	}
	if _, ok := New[int]().Minimum(); ok {
		t.Error("empty tree has a minimum")
	}
}

func TestTree_Incomparable(t *testing.T) {
	partial := func(a, b float64) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
	tree := New[float64]()
	tree.PushSortedUnique(1, partial)
	old, replaced := tree.PushSortedUnique(math.NaN(), partial)
	if !replaced || old != 1 {
		t.Errorf("NaN should replace an incomparable value, got %v %v", old, replaced)
	}
	if tree.Len() != 1 {
		t.Errorf("len is %d, want 1", tree.Len())
	}
	if !tree.ContainsSorted(2, partial) {
		t.Error("2 is incomparable to NaN and should be treated as equal")
	}
	if _, ok := tree.RemoveSorted(3, partial); !ok || !tree.IsEmpty() {
		t.Error("incomparable removal should remove the NaN")
	}
}

func TestTree_RemoveUnsorted(t *testing.T) {
	tree := Join(1, Join(1, From(2), From(1)), Join(3, nil, Join(1, From(4), nil)))
	for i := range 4 {
		if v, ok := tree.Remove(1, eqInt); !ok || v != 1 {
			t.Fatalf("remove %d failed", i)
		}
		if n := tree.Len(); n != 6-i {
			t.Fatalf("len is %d, want %d", n, 6-i)
		}
	}
	if _, ok := tree.Remove(1, eqInt); ok {
		t.Error("removed a missing value")
	}
	rest := tree.Collect(DepthFirstPre)
	slices.Sort(rest)
	if !slices.Equal(rest, []int{2, 3, 4}) {
		t.Errorf("wrong values left %v", rest)
	}
	for _, v := range []int{3, 4, 2} {
		if _, ok := tree.Remove(v, eqInt); !ok {
			t.Errorf("failed to remove %d", v)
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("tree should be empty, has %s", tree)
	}
}

func TestTree_RemoveUnsortedKeepsOrder(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range tAddN / 4 {
		v := rg.Intn(tAddValRange)
		tree.PushSortedUnique(v, Natural[int])
		content[v] = struct{}{}
	}
	for k := range content {
		if rg.Intn(2) == 0 {
			if _, ok := tree.Remove(k, eqInt); !ok {
				t.Fatalf("failed to remove %d", k)
			}
			delete(content, k)
		}
	}
	s := tree.ToSlice()
	if len(s) != len(content) || !slices.IsSorted(s) {
		t.Error("unsorted removal broke the order")
	}
}

func TestTree_Clear(t *testing.T) {
	tree := fixed()
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 || tree.ToSlice() != nil {
		t.Error("not cleared")
	}
}

func TestTree_PushSortedAbsent(t *testing.T) {
	type kv struct{ k, v int }
	calls := 0
	byK := func(a, b kv) int {
		calls++
		return a.k - b.k
	}
	tree := New[kv]()
	for i := range 5 {
		if _, inserted := tree.PushSortedAbsent(kv{i, i}, byK); !inserted {
			t.Errorf("%d should be new", i)
		}
	}
	calls = 0
	if stored, inserted := tree.PushSortedAbsent(kv{2, 100}, byK); inserted || stored.v != 2 {
		t.Errorf("duplicate should keep the stored value, got %v %v", stored, inserted)
	}
	if calls != 3 {
		t.Errorf("found the duplicate in %d comparisons, want 3", calls)
	}
	calls = 0
	if stored, inserted := tree.PushSortedAbsent(kv{5, 5}, byK); !inserted || stored.v != 5 {
		t.Errorf("wrong insertion %v %v", stored, inserted)
	}
	if calls != 5 {
		t.Errorf("inserted in %d comparisons, want 5", calls)
	}
	if v, _ := tree.GetSorted(kv{k: 2}, byK); v.v != 2 || tree.Len() != 6 {
		t.Errorf("tree changed by the duplicate: %v, len %d", v, tree.Len())
	}
}
