// Package stack is a singly linked LIFO stack in which every node is
// owned by exactly one predecessor, so pushes and pops transfer ownership
// of a node in and out of the head slot.
package stack

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

// Stack is a LIFO stack. The zero value is an empty stack.
type Stack[T any] struct {
	head *node[T]
	len  int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Len() int {
	return s.len
}

func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

func (s *Stack[T]) Push(elem T) {
	s.head = &node[T]{elem: elem, next: s.head}
	s.len++
}

func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.len--
	return n.elem, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// PeekMut returns a pointer to the top element for in-place mutation.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.elem, true
}

// Clear unlinks the nodes one by one.
func (s *Stack[T]) Clear() {
	cur := s.head
	s.head = nil
	s.len = 0
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}

// IntoIter moves the stack into a consuming iterator, leaving s empty.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{s: Stack[T]{head: s.head, len: s.len}}
	s.head = nil
	s.len = 0
	return it
}

type IntoIter[T any] struct {
	s Stack[T]
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.s.Pop()
}

// All yields the elements top to bottom without removing them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// AllMut yields a pointer to each element top to bottom.
func (s *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}
