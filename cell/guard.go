package cell

// Ref is a live shared borrow. Release it when done; defer is the usual way.
type Ref[T any] struct {
	value *T
	flag  *flag
}

// Get returns a copy of the borrowed value.
func (r *Ref[T]) Get() T {
	if r.flag == nil {
		panic(ErrReleased)
	}
	return *r.value
}

// Release ends the borrow. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.flag == nil {
		return
	}
	r.flag.n--
	r.flag = nil
	r.value = nil
}

// MapRef narrows a shared borrow to part of the value. The borrow moves to
// the returned guard and r becomes released.
func MapRef[T, U any](r *Ref[T], f func(*T) *U) *Ref[U] {
	if r.flag == nil {
		panic(ErrReleased)
	}
	out := &Ref[U]{value: f(r.value), flag: r.flag}
	r.flag = nil
	r.value = nil
	return out
}

// RefMut is a live exclusive borrow.
type RefMut[T any] struct {
	value *T
	flag  *flag
}

func (r *RefMut[T]) Get() T {
	return *r.Value()
}

func (r *RefMut[T]) Set(v T) {
	*r.Value() = v
}

// Value gives in-place access to the borrowed value. The pointer must not
// be used after Release.
func (r *RefMut[T]) Value() *T {
	if r.flag == nil {
		panic(ErrReleased)
	}
	return r.value
}

// Release ends the borrow. Releasing twice is a no-op.
func (r *RefMut[T]) Release() {
	if r.flag == nil {
		return
	}
	r.flag.n = 0
	r.flag = nil
	r.value = nil
}

// MapRefMut narrows an exclusive borrow to part of the value.
func MapRefMut[T, U any](r *RefMut[T], f func(*T) *U) *RefMut[U] {
	if r.flag == nil {
		panic(ErrReleased)
	}
	out := &RefMut[U]{value: f(r.value), flag: r.flag}
	r.flag = nil
	r.value = nil
	return out
}
