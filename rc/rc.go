// Package rc provides reference-counted shared-ownership handles.
//
// An Rc is a handle to a heap value whose lifetime is the union of all
// outstanding handles. Copying an Rc struct moves the handle; Clone is the
// only way to share it. The zero Rc is the absent handle.
//
// Rc is single-goroutine only. Arc is the atomic variant.
package rc

import (
	"errors"
	"fmt"
)

var (
	// ErrShared is returned by TryUnwrap when other handles are still alive.
	ErrShared = errors.New("rc: value is still shared")
	// ErrDropped is the panic value for any use of a dropped or absent handle.
	ErrDropped = errors.New("rc: use of dropped handle")
)

type box[T any] struct {
	strong int
	value  T
}

// Rc is a shared-ownership handle to a value of type T.
type Rc[T any] struct {
	b *box[T]
}

// New allocates v and returns its first handle.
func New[T any](v T) Rc[T] {
	return Rc[T]{b: &box[T]{strong: 1, value: v}}
}

// IsNil reports whether the handle is absent.
func (r Rc[T]) IsNil() bool {
	return r.b == nil
}

// Clone returns a new handle to the same value.
func (r Rc[T]) Clone() Rc[T] {
	r.mustLive()
	r.b.strong++
	return Rc[T]{b: r.b}
}

// Take moves the handle out of r, leaving r absent.
func (r *Rc[T]) Take() Rc[T] {
	out := *r
	r.b = nil
	return out
}

// Drop releases this handle. The value is released once the last handle
// is dropped. Dropping an absent handle does nothing.
func (r *Rc[T]) Drop() {
	if r.b == nil {
		return
	}
	b := r.b
	r.b = nil
	b.strong--
	if b.strong == 0 {
		var zero T
		b.value = zero
	}
}

// Get returns a pointer to the shared value.
func (r Rc[T]) Get() *T {
	r.mustLive()
	return &r.b.value
}

// StrongCount returns the number of live handles, 0 for an absent handle.
func (r Rc[T]) StrongCount() int {
	if r.b == nil {
		return 0
	}
	return r.b.strong
}

// PtrEq reports whether both handles point at the same allocation.
func (r Rc[T]) PtrEq(other Rc[T]) bool {
	return r.b == other.b
}

func (r Rc[T]) mustLive() {
	if r.b == nil || r.b.strong <= 0 {
		panic(ErrDropped)
	}
}

// TryUnwrap returns the value if r is its only handle, consuming r.
// Otherwise the handle is left untouched and ErrShared is returned.
func TryUnwrap[T any](r *Rc[T]) (T, error) {
	var zero T
	if r.b == nil {
		return zero, ErrDropped
	}
	if n := r.b.strong; n != 1 {
		return zero, fmt.Errorf("%w: %d handles alive", ErrShared, n)
	}
	v := r.b.value
	r.b.value = zero
	r.b.strong = 0
	r.b = nil
	return v, nil
}
