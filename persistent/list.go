// Package persistent is an immutable singly linked list. Prepend and Tail
// return new lists that share their unchanged suffix with the original,
// so many lists can hang off one chain of nodes.
//
// Nodes are never mutated after creation and their counts are atomic,
// which makes a List safe to share between goroutines.
package persistent

import (
	"iter"

	"github.com/povarna/linked-lists/rc"
)

type node[T any] struct {
	elem T
	next rc.Arc[node[T]]
}

// List is an immutable list handle. The zero value is the empty list.
// Every List returned by this package owns one count on its head node
// and should be Released when no longer needed.
type List[T any] struct {
	head rc.Arc[node[T]]
}

func New[T any]() List[T] {
	return List[T]{}
}

// Prepend returns a list with elem in front of l. l is unchanged.
func (l List[T]) Prepend(elem T) List[T] {
	var next rc.Arc[node[T]]
	if !l.head.IsNil() {
		next = l.head.Clone()
	}
	return List[T]{head: rc.NewArc(node[T]{elem: elem, next: next})}
}

// Tail returns l without its first element. The tail of the empty list
// is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head.IsNil() {
		return List[T]{}
	}
	next := l.head.Get().next
	if next.IsNil() {
		return List[T]{}
	}
	return List[T]{head: next.Clone()}
}

func (l List[T]) Head() (T, bool) {
	if l.head.IsNil() {
		var zero T
		return zero, false
	}
	return l.head.Get().elem, true
}

func (l List[T]) IsEmpty() bool {
	return l.head.IsNil()
}

// All yields the elements front to back.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; !cur.IsNil(); cur = cur.Get().next {
			if !yield(cur.Get().elem) {
				return
			}
		}
	}
}

// Release drops l's hold on its nodes. Nodes are freed front to back
// until one is reached that another list still shares.
func (l *List[T]) Release() {
	head := l.head.Take()
	for !head.IsNil() {
		n, ok := head.IntoInner()
		if !ok {
			return
		}
		head = n.next
	}
}
