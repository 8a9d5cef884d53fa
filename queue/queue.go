// Package queue is a singly linked FIFO queue. The head owns the chain of
// nodes while tail is an unowned alias of the last node, which is what
// makes O(1) pushes at the back possible.
package queue

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// Push appends elem at the back.
func (q *Queue[T]) Push(elem T) {
	n := &node[T]{elem: elem}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Pop removes the front element.
func (q *Queue[T]) Pop() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		// tail aliased the node just removed
		q.tail = nil
	}
	n.next = nil
	q.size--
	return n.elem, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.elem, true
}

func (q *Queue[T]) PeekMut() (*T, bool) {
	if q.head == nil {
		return nil, false
	}
	return &q.head.elem, true
}

func (q *Queue[T]) Clear() {
	for {
		if _, ok := q.Pop(); !ok {
			return
		}
	}
}

type IntoIter[T any] struct {
	q Queue[T]
}

// IntoIter moves the queue into a consuming iterator, leaving q empty.
func (q *Queue[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{q: *q}
	*q = Queue[T]{}
	return it
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.q.Pop()
}

// All yields the elements front to back without removing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

func (q *Queue[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}
