package rc

import "sync/atomic"

type arcBox[T any] struct {
	strong atomic.Int64
	value  T
}

// Arc is the goroutine-safe variant of Rc. The value itself must be
// immutable once shared; Arc only makes the counting atomic.
type Arc[T any] struct {
	b *arcBox[T]
}

// NewArc allocates v and returns its first handle.
func NewArc[T any](v T) Arc[T] {
	b := &arcBox[T]{value: v}
	b.strong.Store(1)
	return Arc[T]{b: b}
}

// IsNil reports whether the handle is absent.
func (a Arc[T]) IsNil() bool {
	return a.b == nil
}

// Clone returns a new handle to the same value.
func (a Arc[T]) Clone() Arc[T] {
	if a.b == nil {
		panic(ErrDropped)
	}
	a.b.strong.Add(1)
	return Arc[T]{b: a.b}
}

// Take moves the handle out of a, leaving a absent.
func (a *Arc[T]) Take() Arc[T] {
	out := *a
	a.b = nil
	return out
}

// Get returns a pointer to the shared value. Callers must not write
// through it while other handles exist.
func (a Arc[T]) Get() *T {
	if a.b == nil {
		panic(ErrDropped)
	}
	return &a.b.value
}

// StrongCount returns the number of live handles, 0 for an absent handle.
func (a Arc[T]) StrongCount() int64 {
	if a.b == nil {
		return 0
	}
	return a.b.strong.Load()
}

// PtrEq reports whether both handles point at the same allocation.
func (a Arc[T]) PtrEq(other Arc[T]) bool {
	return a.b == other.b
}

// Drop releases this handle.
func (a *Arc[T]) Drop() {
	a.IntoInner()
}

// IntoInner drops the handle and, if it was the last one, returns the
// value. When several goroutines race to drop the final handles exactly
// one of them receives the value.
func (a *Arc[T]) IntoInner() (T, bool) {
	var zero T
	if a.b == nil {
		return zero, false
	}
	b := a.b
	a.b = nil
	if b.strong.Add(-1) != 0 {
		return zero, false
	}
	v := b.value
	b.value = zero
	return v, true
}
