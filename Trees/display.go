package Trees

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String formats the tree on one line. A node is written as (v), with its left
// subtree before a "<=" and its right subtree after a "=>" when they aren't empty,
// for example (((3)<=2)<=1=>(4=>((6)<=5))). The empty tree is "()".
// Implemented recursively.
func (u *Tree[T]) String() string {
	if u.IsEmpty() {
		return "()"
	}
	var sb strings.Builder
	u.format(&sb)
	return sb.String()
}

func (u *Tree[T]) format(sb *strings.Builder) {
	v, l, r := u.view()
	sb.WriteByte('(')
	if !l.IsEmpty() {
		l.format(sb)
		sb.WriteString("<=")
	}
	fmt.Fprint(sb, v)
	if !r.IsEmpty() {
		sb.WriteString("=>")
		r.format(sb)
	}
	sb.WriteByte(')')
}

// Diagram draws the tree over multiple lines, one node per line, with children
// tagged [L] or [R]. Implemented recursively.
func (u *Tree[T]) Diagram() string {
	if u.IsEmpty() {
		return treeprint.New().String()
	}
	v, _, _ := u.view()
	p := treeprint.NewWithRoot(v)
	u.draw(p)
	return p.String()
}

func (u *Tree[T]) draw(p treeprint.Tree) {
	_, l, r := u.view()
	if !l.IsEmpty() {
		lv, _, _ := l.view()
		l.draw(p.AddMetaBranch("L", lv))
	}
	if !r.IsEmpty() {
		rv, _, _ := r.view()
		r.draw(p.AddMetaBranch("R", rv))
	}
}
