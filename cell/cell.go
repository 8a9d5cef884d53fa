// Package cell implements a mutable container whose borrows are checked
// at runtime instead of by the caller's discipline.
//
// Any number of shared borrows may be live at once, or a single exclusive
// one. Starting a borrow that conflicts with a live one panics with a
// *BorrowError. Borrow state is plain bookkeeping, so a RefCell must only
// be used from one goroutine.
package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrBorrowed means an exclusive borrow was requested while any borrow was live.
	ErrBorrowed = errors.New("cell: already borrowed")
	// ErrMutablyBorrowed means a shared borrow was requested while an exclusive one was live.
	ErrMutablyBorrowed = errors.New("cell: already mutably borrowed")
	// ErrReleased is the panic value for access through a released guard.
	ErrReleased = errors.New("cell: guard already released")
)

// State is the borrow state of a RefCell.
type State int

const (
	Unborrowed State = iota
	Shared
	Exclusive
)

func (s State) String() string {
	switch s {
	case Unborrowed:
		return "unborrowed"
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// BorrowError describes a conflicting borrow attempt.
type BorrowError struct {
	Op      string
	Readers int
	Err     error
}

func (e *BorrowError) Error() string {
	if e.Readers > 0 {
		return fmt.Sprintf("%s: %v (%d shared borrows live)", e.Op, e.Err, e.Readers)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BorrowError) Unwrap() error {
	return e.Err
}

// flag counts live borrows: >0 shared, -1 exclusive, 0 none.
type flag struct {
	n int
}

func (f *flag) state() State {
	switch {
	case f.n > 0:
		return Shared
	case f.n < 0:
		return Exclusive
	default:
		return Unborrowed
	}
}

// RefCell holds a value behind runtime-checked borrows.
// The zero RefCell holds the zero value and is unborrowed.
type RefCell[T any] struct {
	flag  flag
	value T
}

func New[T any](v T) RefCell[T] {
	return RefCell[T]{value: v}
}

// State reports the current borrow state.
func (c *RefCell[T]) State() State {
	return c.flag.state()
}

// Borrow starts a shared borrow, panicking on conflict.
func (c *RefCell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrow starts a shared borrow unless an exclusive one is live.
func (c *RefCell[T]) TryBorrow() (*Ref[T], error) {
	if c.flag.n < 0 {
		return nil, &BorrowError{Op: "borrow", Err: ErrMutablyBorrowed}
	}
	c.flag.n++
	return &Ref[T]{value: &c.value, flag: &c.flag}, nil
}

// BorrowMut starts an exclusive borrow, panicking on conflict.
func (c *RefCell[T]) BorrowMut() *RefMut[T] {
	r, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrowMut starts an exclusive borrow unless any borrow is live.
func (c *RefCell[T]) TryBorrowMut() (*RefMut[T], error) {
	if c.flag.n != 0 {
		return nil, conflict("borrow_mut", c.flag.n)
	}
	c.flag.n = -1
	return &RefMut[T]{value: &c.value, flag: &c.flag}, nil
}

// IntoInner returns the held value. The cell must not be borrowed.
func (c *RefCell[T]) IntoInner() T {
	if c.flag.n != 0 {
		panic(conflict("into_inner", c.flag.n))
	}
	v := c.value
	var zero T
	c.value = zero
	return v
}

func conflict(op string, n int) *BorrowError {
	if n < 0 {
		return &BorrowError{Op: op, Err: ErrMutablyBorrowed}
	}
	return &BorrowError{Op: op, Readers: n, Err: ErrBorrowed}
}
