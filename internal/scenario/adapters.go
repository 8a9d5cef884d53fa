package scenario

import (
	"github.com/povarna/linked-lists/cell"
	"github.com/povarna/linked-lists/deque"
	"github.com/povarna/linked-lists/internal/models"
	"github.com/povarna/linked-lists/persistent"
	"github.com/povarna/linked-lists/queue"
	"github.com/povarna/linked-lists/stack"
)

type dequeSeq struct {
	d    *deque.Deque[int]
	held []*cell.Ref[int]
}

func newDequeSeq() *dequeSeq {
	return &dequeSeq{d: deque.New[int]()}
}

func (s *dequeSeq) Push(end models.End, v int) error {
	if end == models.Front {
		s.d.PushFront(v)
	} else {
		s.d.PushBack(v)
	}
	return nil
}

func (s *dequeSeq) Pop(end models.End) (int, bool, error) {
	if end == models.Front {
		v, ok := s.d.PopFront()
		return v, ok, nil
	}
	v, ok := s.d.PopBack()
	return v, ok, nil
}

func (s *dequeSeq) Peek(end models.End) (int, bool, error) {
	if end == models.Front {
		v, ok := s.d.Front()
		return v, ok, nil
	}
	v, ok := s.d.Back()
	return v, ok, nil
}

func (s *dequeSeq) Set(end models.End, v int) (bool, error) {
	peek := s.d.PeekFrontMut
	if end == models.Back {
		peek = s.d.PeekBackMut
	}
	m, ok := peek()
	if !ok {
		return false, nil
	}
	*m.Value() = v
	m.Release()
	return true, nil
}

func (s *dequeSeq) Hold(end models.End) error {
	peek := s.d.PeekFront
	if end == models.Back {
		peek = s.d.PeekBack
	}
	if r, ok := peek(); ok {
		s.held = append(s.held, r)
	}
	return nil
}

func (s *dequeSeq) ReleaseHeld() {
	for _, r := range s.held {
		r.Release()
	}
	s.held = nil
}

func (s *dequeSeq) Drain() []int {
	var out []int
	for v := range s.d.All() {
		out = append(out, v)
	}
	return out
}

func (s *dequeSeq) Len() int { return s.d.Len() }

func (s *dequeSeq) Clear() {
	s.ReleaseHeld()
	s.d.Clear()
}

// stackSeq only has a front.
type stackSeq struct {
	s *stack.Stack[int]
}

func newStackSeq() *stackSeq {
	return &stackSeq{s: stack.New[int]()}
}

func (s *stackSeq) Push(end models.End, v int) error {
	if end != models.Front {
		return unsupported("push", end)
	}
	s.s.Push(v)
	return nil
}

func (s *stackSeq) Pop(end models.End) (int, bool, error) {
	if end != models.Front {
		return 0, false, unsupported("pop", end)
	}
	v, ok := s.s.Pop()
	return v, ok, nil
}

func (s *stackSeq) Peek(end models.End) (int, bool, error) {
	if end != models.Front {
		return 0, false, unsupported("peek", end)
	}
	v, ok := s.s.Peek()
	return v, ok, nil
}

func (s *stackSeq) Set(end models.End, v int) (bool, error) {
	if end != models.Front {
		return false, unsupported("set", end)
	}
	p, ok := s.s.PeekMut()
	if ok {
		*p = v
	}
	return ok, nil
}

func (s *stackSeq) Hold(end models.End) error { return unsupported("hold", end) }
func (s *stackSeq) ReleaseHeld()              {}
func (s *stackSeq) Len() int                  { return s.s.Len() }
func (s *stackSeq) Clear()                    { s.s.Clear() }

func (s *stackSeq) Drain() []int {
	var out []int
	it := s.s.IntoIter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// queueSeq pushes at the back and pops from the front.
type queueSeq struct {
	q *queue.Queue[int]
}

func newQueueSeq() *queueSeq {
	return &queueSeq{q: queue.New[int]()}
}

func (s *queueSeq) Push(end models.End, v int) error {
	if end != models.Back {
		return unsupported("push", end)
	}
	s.q.Push(v)
	return nil
}

func (s *queueSeq) Pop(end models.End) (int, bool, error) {
	if end != models.Front {
		return 0, false, unsupported("pop", end)
	}
	v, ok := s.q.Pop()
	return v, ok, nil
}

func (s *queueSeq) Peek(end models.End) (int, bool, error) {
	if end != models.Front {
		return 0, false, unsupported("peek", end)
	}
	v, ok := s.q.Peek()
	return v, ok, nil
}

func (s *queueSeq) Set(end models.End, v int) (bool, error) {
	if end != models.Front {
		return false, unsupported("set", end)
	}
	p, ok := s.q.PeekMut()
	if ok {
		*p = v
	}
	return ok, nil
}

func (s *queueSeq) Hold(end models.End) error { return unsupported("hold", end) }
func (s *queueSeq) ReleaseHeld()              {}
func (s *queueSeq) Len() int                  { return s.q.Len() }
func (s *queueSeq) Clear()                    { s.q.Clear() }

func (s *queueSeq) Drain() []int {
	var out []int
	it := s.q.IntoIter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// persistentSeq rebinds its handle to a new version on every change.
type persistentSeq struct {
	l   persistent.List[int]
	len int
}

func newPersistentSeq() *persistentSeq {
	return &persistentSeq{l: persistent.New[int]()}
}

func (s *persistentSeq) replace(next persistent.List[int]) {
	s.l.Release()
	s.l = next
}

func (s *persistentSeq) Push(end models.End, v int) error {
	if end != models.Front {
		return unsupported("push", end)
	}
	s.replace(s.l.Prepend(v))
	s.len++
	return nil
}

func (s *persistentSeq) Pop(end models.End) (int, bool, error) {
	if end != models.Front {
		return 0, false, unsupported("pop", end)
	}
	v, ok := s.l.Head()
	if !ok {
		return 0, false, nil
	}
	s.replace(s.l.Tail())
	s.len--
	return v, true, nil
}

func (s *persistentSeq) Peek(end models.End) (int, bool, error) {
	if end != models.Front {
		return 0, false, unsupported("peek", end)
	}
	v, ok := s.l.Head()
	return v, ok, nil
}

func (s *persistentSeq) Set(end models.End, v int) (bool, error) {
	if end != models.Front {
		return false, unsupported("set", end)
	}
	if s.l.IsEmpty() {
		return false, nil
	}
	tail := s.l.Tail()
	s.replace(tail.Prepend(v))
	tail.Release()
	return true, nil
}

func (s *persistentSeq) Hold(end models.End) error { return unsupported("hold", end) }
func (s *persistentSeq) ReleaseHeld()              {}
func (s *persistentSeq) Len() int                  { return s.len }

func (s *persistentSeq) Clear() {
	s.l.Release()
	s.len = 0
}

func (s *persistentSeq) Drain() []int {
	var out []int
	for v := range s.l.All() {
		out = append(out, v)
	}
	s.Clear()
	return out
}
