// Package deque is a doubly linked list whose nodes are shared between
// their neighbours and the list ends through reference-counted handles,
// with every access to a node going through a runtime-checked borrow.
//
// Each node is reachable from up to three places: the head or tail slot
// and the link fields of its two neighbours. For adjacent nodes A and B,
// A.next targets B exactly when B.prev targets A.
//
// Only consuming iteration is offered. A borrowing iterator would have to
// keep a node borrowed across calls, which either pins the whole list or
// hands out views the list can invalidate. Visit and VisitBackward hold
// one borrow at a time instead.
//
// A Deque is not safe for concurrent use.
package deque

import (
	"fmt"

	"github.com/povarna/linked-lists/cell"
	"github.com/povarna/linked-lists/rc"
)

type node[T any] struct {
	elem T
	next rc.Rc[cell.RefCell[node[T]]]
	prev rc.Rc[cell.RefCell[node[T]]]
}

func newNode[T any](elem T) rc.Rc[cell.RefCell[node[T]]] {
	return rc.New(cell.New(node[T]{elem: elem}))
}

// Deque is a double-ended queue. The zero value is an empty deque.
type Deque[T any] struct {
	head rc.Rc[cell.RefCell[node[T]]]
	tail rc.Rc[cell.RefCell[node[T]]]
	len  int
}

func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

func (d *Deque[T]) Len() int {
	return d.len
}

func (d *Deque[T]) IsEmpty() bool {
	return d.head.IsNil()
}

// PushFront adds elem before the current head.
func (d *Deque[T]) PushFront(elem T) {
	newHead := newNode(elem)
	if d.head.IsNil() {
		d.tail = newHead.Clone()
		d.head = newHead
		d.len++
		return
	}

	old := d.head.Get().BorrowMut()
	oldHead := d.head.Take()
	old.Value().prev = newHead.Clone()
	old.Release()

	nh := newHead.Get().BorrowMut()
	nh.Value().next = oldHead
	nh.Release()

	d.head = newHead
	d.len++
}

// PushBack adds elem after the current tail.
func (d *Deque[T]) PushBack(elem T) {
	newTail := newNode(elem)
	if d.tail.IsNil() {
		d.head = newTail.Clone()
		d.tail = newTail
		d.len++
		return
	}

	old := d.tail.Get().BorrowMut()
	oldTail := d.tail.Take()
	old.Value().next = newTail.Clone()
	old.Release()

	nt := newTail.Get().BorrowMut()
	nt.Value().prev = oldTail
	nt.Release()

	d.tail = newTail
	d.len++
}

// PopFront removes and returns the head element.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.head.IsNil() {
		var zero T
		return zero, false
	}

	// Both borrows are taken before anything is unlinked so a conflict
	// leaves the list as it was.
	head := d.head.Get().BorrowMut()
	var next *cell.RefMut[node[T]]
	if n := head.Value().next; !n.IsNil() {
		var err error
		if next, err = n.Get().TryBorrowMut(); err != nil {
			head.Release()
			panic(err)
		}
	}

	oldHead := d.head.Take()
	newHead := head.Value().next.Take()
	head.Release()

	if next == nil {
		d.tail.Drop()
	} else {
		next.Value().prev.Drop()
		next.Release()
		d.head = newHead
	}
	d.len--
	return unwrap(&oldHead), true
}

// PopBack removes and returns the tail element.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.tail.IsNil() {
		var zero T
		return zero, false
	}

	tail := d.tail.Get().BorrowMut()
	var prev *cell.RefMut[node[T]]
	if p := tail.Value().prev; !p.IsNil() {
		var err error
		if prev, err = p.Get().TryBorrowMut(); err != nil {
			tail.Release()
			panic(err)
		}
	}

	oldTail := d.tail.Take()
	newTail := tail.Value().prev.Take()
	tail.Release()

	if prev == nil {
		d.head.Drop()
	} else {
		prev.Value().next.Drop()
		prev.Release()
		d.tail = newTail
	}
	d.len--
	return unwrap(&oldTail), true
}

// unwrap extracts the element of a detached node. The caller's handle
// must be the last one; anything else means a link was left behind.
func unwrap[T any](h *rc.Rc[cell.RefCell[node[T]]]) T {
	c, err := rc.TryUnwrap(h)
	if err != nil {
		panic(fmt.Errorf("deque: popped node still linked: %w", err))
	}
	return c.IntoInner().elem
}

// PeekFront borrows the head element for reading. The view must be
// released before the head is mutated or popped.
func (d *Deque[T]) PeekFront() (*cell.Ref[T], bool) {
	return peek(d.head)
}

// PeekBack borrows the tail element for reading.
func (d *Deque[T]) PeekBack() (*cell.Ref[T], bool) {
	return peek(d.tail)
}

// PeekFrontMut borrows the head element for in-place mutation.
func (d *Deque[T]) PeekFrontMut() (*cell.RefMut[T], bool) {
	return peekMut(d.head)
}

// PeekBackMut borrows the tail element for in-place mutation.
func (d *Deque[T]) PeekBackMut() (*cell.RefMut[T], bool) {
	return peekMut(d.tail)
}

func peek[T any](h rc.Rc[cell.RefCell[node[T]]]) (*cell.Ref[T], bool) {
	if h.IsNil() {
		return nil, false
	}
	return cell.MapRef(h.Get().Borrow(), func(n *node[T]) *T { return &n.elem }), true
}

func peekMut[T any](h rc.Rc[cell.RefCell[node[T]]]) (*cell.RefMut[T], bool) {
	if h.IsNil() {
		return nil, false
	}
	return cell.MapRefMut(h.Get().BorrowMut(), func(n *node[T]) *T { return &n.elem }), true
}

// Front returns a copy of the head element.
func (d *Deque[T]) Front() (T, bool) {
	r, ok := d.PeekFront()
	if !ok {
		var zero T
		return zero, false
	}
	defer r.Release()
	return r.Get(), true
}

// Back returns a copy of the tail element.
func (d *Deque[T]) Back() (T, bool) {
	r, ok := d.PeekBack()
	if !ok {
		var zero T
		return zero, false
	}
	defer r.Release()
	return r.Get(), true
}

// Clear pops every element from the front. Unlinking one node at a time
// keeps teardown depth constant however long the list is.
func (d *Deque[T]) Clear() {
	for {
		if _, ok := d.PopFront(); !ok {
			return
		}
	}
}
