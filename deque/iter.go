package deque

import (
	"iter"

	"github.com/povarna/linked-lists/cell"
	"github.com/povarna/linked-lists/rc"
)

// IntoIter consumes a deque from either end.
type IntoIter[T any] struct {
	d Deque[T]
}

// IntoIter moves the contents of d into a consuming iterator. d is left
// empty and may be reused. It panics with a *cell.BorrowError, leaving d
// untouched, if a view on either end is still live.
func (d *Deque[T]) IntoIter() *IntoIter[T] {
	mustBeFree(d.head)
	mustBeFree(d.tail)
	it := &IntoIter[T]{d: Deque[T]{head: d.head.Take(), tail: d.tail.Take(), len: d.len}}
	d.len = 0
	return it
}

// mustBeFree panics if h's node is borrowed. Views only ever exist on the
// end nodes, so checking both ends covers the whole list.
func mustBeFree[T any](h rc.Rc[cell.RefCell[node[T]]]) {
	if h.IsNil() {
		return
	}
	m, err := h.Get().TryBorrowMut()
	if err != nil {
		panic(err)
	}
	m.Release()
}

// Next yields the front element.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.d.PopFront()
}

// NextBack yields the back element.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.d.PopBack()
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.d.Len()
}

// All drains the deque front to back. Like IntoIter it panics at call
// time if a view on either end is live.
func (d *Deque[T]) All() iter.Seq[T] {
	it := d.IntoIter()
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward drains the deque back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	it := d.IntoIter()
	return func(yield func(T) bool) {
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Visit calls fn with a copy of each element from front to back until fn
// returns false. Only one node is borrowed at a time and the borrow ends
// before fn runs, so fn may peek at the deque. fn must not push or pop:
// the traversal keeps a handle on the next node.
func (d *Deque[T]) Visit(fn func(T) bool) {
	visit(d.head, func(n *node[T]) rc.Rc[cell.RefCell[node[T]]] { return n.next }, fn)
}

// VisitBackward is Visit from back to front.
func (d *Deque[T]) VisitBackward(fn func(T) bool) {
	visit(d.tail, func(n *node[T]) rc.Rc[cell.RefCell[node[T]]] { return n.prev }, fn)
}

func visit[T any](
	start rc.Rc[cell.RefCell[node[T]]],
	step func(*node[T]) rc.Rc[cell.RefCell[node[T]]],
	fn func(T) bool,
) {
	if start.IsNil() {
		return
	}
	cur := start.Clone()
	for !cur.IsNil() {
		r, err := cur.Get().TryBorrow()
		if err != nil {
			cur.Drop()
			panic(err)
		}
		n := r.Get()
		next := step(&n)
		if !next.IsNil() {
			next = next.Clone()
		}
		r.Release()
		cur.Drop()
		cur = next

		if !fn(n.elem) {
			cur.Drop()
			return
		}
	}
}
