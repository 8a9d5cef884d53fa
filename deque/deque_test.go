package deque

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/povarna/linked-lists/cell"
	"github.com/povarna/linked-lists/rc"
)

type handle = rc.Rc[cell.RefCell[node[int]]]

// checkLinks walks the list in both directions and verifies that the two
// walks visit the same nodes in reverse order, that the ends have no outer
// links and that every node carries the expected number of handles.
func checkLinks(t *testing.T, d *Deque[int]) {
	t.Helper()

	if d.head.IsNil() != d.tail.IsNil() {
		t.Fatalf("head nil=%v but tail nil=%v", d.head.IsNil(), d.tail.IsNil())
	}

	var forward []handle
	for cur := d.head; !cur.IsNil(); cur = links(cur).next {
		forward = append(forward, cur)
		if len(forward) > d.len+1 {
			t.Fatalf("forward walk longer than len %d", d.len)
		}
	}
	var backward []handle
	for cur := d.tail; !cur.IsNil(); cur = links(cur).prev {
		backward = append(backward, cur)
		if len(backward) > d.len+1 {
			t.Fatalf("backward walk longer than len %d", d.len)
		}
	}

	if len(forward) != d.len || len(backward) != d.len {
		t.Fatalf("expected %d nodes both ways, got forward=%d backward=%d", d.len, len(forward), len(backward))
	}
	for i := range forward {
		if !forward[i].PtrEq(backward[len(backward)-1-i]) {
			t.Fatalf("node %d differs between forward and backward walks", i)
		}
		c := forward[i].Get()
		if c.State() != cell.Unborrowed {
			t.Errorf("node %d left %s", i, c.State())
		}
		// head/tail slot or neighbour link on each side.
		if got := forward[i].StrongCount(); got != 2 {
			t.Errorf("node %d: expected 2 handles, got %d", i, got)
		}
	}
	if len(forward) > 0 {
		if !links(forward[0]).prev.IsNil() {
			t.Error("head has a prev link")
		}
		if !links(backward[0]).next.IsNil() {
			t.Error("tail has a next link")
		}
	}
}

// links copies a node's fields under a short-lived shared borrow. The
// copied handles are not counted and must not be dropped.
func links(h handle) node[int] {
	r := h.Get().Borrow()
	defer r.Release()
	return r.Get()
}

func TestBasics(t *testing.T) {
	d := New[int]()

	if _, ok := d.PopFront(); ok {
		t.Error("expected empty pop_front to be absent")
	}

	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)
	checkLinks(t, d)

	expectPop(t, d.PopFront, 3)
	expectPop(t, d.PopFront, 2)

	d.PushFront(4)
	d.PushFront(5)
	checkLinks(t, d)

	expectPop(t, d.PopFront, 5)
	expectPop(t, d.PopFront, 4)
	expectPop(t, d.PopFront, 1)
	if _, ok := d.PopFront(); ok {
		t.Error("expected exhausted pop_front to be absent")
	}
	checkLinks(t, d)

	if _, ok := d.PopBack(); ok {
		t.Error("expected empty pop_back to be absent")
	}

	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	checkLinks(t, d)

	expectPop(t, d.PopBack, 3)
	expectPop(t, d.PopBack, 2)

	d.PushBack(4)
	d.PushBack(5)

	expectPop(t, d.PopBack, 5)
	expectPop(t, d.PopBack, 4)
	expectPop(t, d.PopBack, 1)
	if _, ok := d.PopBack(); ok {
		t.Error("expected exhausted pop_back to be absent")
	}
}

func expectPop(t *testing.T, pop func() (int, bool), want int) {
	t.Helper()
	got, ok := pop()
	if !ok {
		t.Fatalf("expected %d, got absent", want)
	}
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestPopEmptyIsIdempotent(t *testing.T) {
	var d Deque[int]
	for i := 0; i < 5; i++ {
		if _, ok := d.PopFront(); ok {
			t.Fatal("expected absent from pop_front")
		}
		if _, ok := d.PopBack(); ok {
			t.Fatal("expected absent from pop_back")
		}
		if d.Len() != 0 || !d.IsEmpty() {
			t.Fatalf("expected empty deque, got len %d", d.Len())
		}
	}
	checkLinks(t, &d)
}

func TestSingleElement(t *testing.T) {
	d := New[string]()
	d.PushBack("only")

	if !d.head.PtrEq(d.tail) {
		t.Fatal("expected head and tail to share the single node")
	}
	n := d.head.Get().Borrow()
	if !n.Get().next.IsNil() || !n.Get().prev.IsNil() {
		t.Error("expected single node without links")
	}
	n.Release()
	if got := d.head.StrongCount(); got != 2 {
		t.Errorf("expected head and tail handles only, got %d", got)
	}

	got, ok := d.PopBack()
	if !ok || got != "only" {
		t.Errorf("expected only, got %q (%v)", got, ok)
	}
	if !d.head.IsNil() || !d.tail.IsNil() {
		t.Error("expected both ends absent after last pop")
	}
}

func TestPeek(t *testing.T) {
	d := New[int]()
	if _, ok := d.PeekFront(); ok {
		t.Error("expected no front view on empty deque")
	}
	if _, ok := d.PeekBack(); ok {
		t.Error("expected no back view on empty deque")
	}
	if _, ok := d.PeekFrontMut(); ok {
		t.Error("expected no mutable front view on empty deque")
	}
	if _, ok := d.PeekBackMut(); ok {
		t.Error("expected no mutable back view on empty deque")
	}

	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)

	front, _ := d.PeekFront()
	if front.Get() != 3 {
		t.Errorf("expected front 3, got %d", front.Get())
	}
	front.Release()

	back, _ := d.PeekBack()
	if back.Get() != 1 {
		t.Errorf("expected back 1, got %d", back.Get())
	}
	back.Release()

	m, _ := d.PeekFrontMut()
	*m.Value() = 30
	m.Release()

	mb, _ := d.PeekBackMut()
	mb.Set(mb.Get() * 10)
	mb.Release()

	if v, _ := d.Back(); v != 10 {
		t.Errorf("expected back 10, got %d", v)
	}
	expectPop(t, d.PopFront, 30)
	checkLinks(t, d)
}

func TestPeekSharedViewsCoexist(t *testing.T) {
	d := New[int]()
	d.PushBack(7)

	a, _ := d.PeekFront()
	b, _ := d.PeekBack()
	if a.Get() != b.Get() {
		t.Errorf("expected both views to see 7, got %d and %d", a.Get(), b.Get())
	}
	a.Release()
	b.Release()
	checkLinks(t, d)
}

func expectConflict(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected access conflict %v, got none", want)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, r)
		}
		var be *cell.BorrowError
		if !errors.As(err, &be) {
			t.Fatalf("expected *cell.BorrowError, got %T", r)
		}
	}()
	f()
}

func TestPeekConflicts(t *testing.T) {
	d := New[int]()
	d.PushFront(1)
	d.PushFront(2)

	shared, _ := d.PeekFront()
	expectConflict(t, cell.ErrBorrowed, func() { d.PeekFrontMut() })
	if shared.Get() != 2 {
		t.Errorf("expected shared view to still read 2, got %d", shared.Get())
	}
	shared.Release()

	excl, _ := d.PeekBackMut()
	expectConflict(t, cell.ErrMutablyBorrowed, func() { d.PeekBack() })
	expectConflict(t, cell.ErrMutablyBorrowed, func() { d.PeekBackMut() })
	excl.Release()

	// Released views no longer block anything.
	m, _ := d.PeekFrontMut()
	m.Release()
	checkLinks(t, d)
}

func TestMutationWhileViewedAborts(t *testing.T) {
	d := New[int]()
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	front, _ := d.PeekFront()
	expectConflict(t, cell.ErrBorrowed, func() { d.PopFront() })
	expectConflict(t, cell.ErrBorrowed, func() { d.PushFront(0) })
	front.Release()
	checkLinks(t, d)

	back, _ := d.PeekBack()
	expectConflict(t, cell.ErrBorrowed, func() { d.PopBack() })
	expectConflict(t, cell.ErrBorrowed, func() { d.PushBack(4) })
	back.Release()
	checkLinks(t, d)

	// The second node is the new head after a front pop, so a view on it
	// must block the pop before anything is unlinked.
	d.PopBack()
	tail, _ := d.PeekBack()
	expectConflict(t, cell.ErrBorrowed, func() { d.PopFront() })
	tail.Release()
	checkLinks(t, d)

	got := collect(d.All())
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("contents changed by aborted operations (-want +got):\n%s", diff)
	}
}

func TestDrainWhileViewedAborts(t *testing.T) {
	tests := []struct {
		name  string
		view  func(d *Deque[int]) func()
		drain func(d *Deque[int])
		want  error
	}{
		{
			name:  "All with front view",
			view:  func(d *Deque[int]) func() { r, _ := d.PeekFront(); return r.Release },
			drain: func(d *Deque[int]) { d.All() },
			want:  cell.ErrBorrowed,
		},
		{
			name:  "Backward with back view",
			view:  func(d *Deque[int]) func() { r, _ := d.PeekBack(); return r.Release },
			drain: func(d *Deque[int]) { d.Backward() },
			want:  cell.ErrBorrowed,
		},
		{
			name:  "IntoIter with exclusive back view",
			view:  func(d *Deque[int]) func() { m, _ := d.PeekBackMut(); return m.Release },
			drain: func(d *Deque[int]) { d.IntoIter() },
			want:  cell.ErrMutablyBorrowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New[int]()
			d.PushBack(1)
			d.PushBack(2)
			d.PushBack(3)

			release := tt.view(d)
			expectConflict(t, tt.want, func() { tt.drain(d) })
			if d.Len() != 3 {
				t.Errorf("expected len 3 after aborted drain, got %d", d.Len())
			}
			release()
			checkLinks(t, d)

			if diff := cmp.Diff([]int{1, 2, 3}, collect(d.All())); diff != "" {
				t.Errorf("contents changed by aborted drain (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisitConflictKeepsHandleCounts(t *testing.T) {
	d := New[int]()
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	front, _ := d.PeekFrontMut()
	expectConflict(t, cell.ErrMutablyBorrowed, func() {
		d.Visit(func(int) bool { return true })
	})
	front.Release()
	checkLinks(t, d)

	// The walk fails on its last node after visiting the others.
	back, _ := d.PeekBackMut()
	var seen []int
	expectConflict(t, cell.ErrMutablyBorrowed, func() {
		d.Visit(func(v int) bool { seen = append(seen, v); return true })
	})
	back.Release()
	checkLinks(t, d)
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Errorf("visited before conflict (-want +got):\n%s", diff)
	}

	expectPop(t, d.PopFront, 1)
	expectPop(t, d.PopBack, 3)
	expectPop(t, d.PopFront, 2)
}

func TestGuardUseAfterRelease(t *testing.T) {
	d := New[int]()
	d.PushBack(1)
	r, _ := d.PeekFront()
	r.Release()
	r.Release()

	defer func() {
		if rec := recover(); rec != cell.ErrReleased {
			t.Errorf("expected ErrReleased, got %v", rec)
		}
	}()
	r.Get()
}

func TestIntoIterBothEnds(t *testing.T) {
	d := New[int]()
	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)

	it := d.IntoIter()
	if !d.IsEmpty() {
		t.Error("expected source deque to be emptied by IntoIter")
	}
	expectPop(t, it.Next, 3)
	expectPop(t, it.NextBack, 1)
	expectPop(t, it.Next, 2)
	if _, ok := it.NextBack(); ok {
		t.Error("expected back end exhausted")
	}
	if _, ok := it.Next(); ok {
		t.Error("expected front end exhausted")
	}
	if it.Len() != 0 {
		t.Errorf("expected 0 remaining, got %d", it.Len())
	}
}

func TestAllAndBackward(t *testing.T) {
	d := New[int]()
	for i := 1; i <= 4; i++ {
		d.PushBack(i)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, collect(d.All())); diff != "" {
		t.Errorf("All (-want +got):\n%s", diff)
	}

	for i := 1; i <= 4; i++ {
		d.PushBack(i)
	}
	if diff := cmp.Diff([]int{4, 3, 2, 1}, collect(d.Backward())); diff != "" {
		t.Errorf("Backward (-want +got):\n%s", diff)
	}

	for i := 1; i <= 4; i++ {
		d.PushBack(i)
	}
	var first []int
	for v := range d.All() {
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	if diff := cmp.Diff([]int{1, 2}, first); diff != "" {
		t.Errorf("early break (-want +got):\n%s", diff)
	}
}

func collect(seq func(func(int) bool)) []int {
	var out []int
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestVisit(t *testing.T) {
	d := New[int]()
	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}

	var forward []int
	d.Visit(func(v int) bool {
		// Visit holds no borrow while the callback runs.
		m, _ := d.PeekFrontMut()
		m.Release()
		forward = append(forward, v)
		return true
	})
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, forward); diff != "" {
		t.Errorf("Visit (-want +got):\n%s", diff)
	}

	var backward []int
	d.VisitBackward(func(v int) bool {
		backward = append(backward, v)
		return v > 3
	})
	if diff := cmp.Diff([]int{5, 4, 3}, backward); diff != "" {
		t.Errorf("VisitBackward (-want +got):\n%s", diff)
	}

	checkLinks(t, d)
}

// Borrowing iterators are deliberately absent; see the package doc.
func TestNoBorrowingIterator(t *testing.T) {
	typ := reflect.TypeOf(&Deque[int]{})
	for _, name := range []string{"Iter", "IterMut"} {
		if _, ok := typ.MethodByName(name); ok {
			t.Errorf("Deque must not expose %s", name)
		}
	}
}

func TestPushOrderProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		d := New[int]()
		var model []int
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				d.PushFront(i)
				model = append([]int{i}, model...)
			} else {
				d.PushBack(i)
				model = append(model, i)
			}
		}
		checkLinks(t, d)

		var visited []int
		d.Visit(func(v int) bool { visited = append(visited, v); return true })
		if diff := cmp.Diff(model, visited, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round %d: traversal (-want +got):\n%s", round, diff)
		}

		var backward []int
		d.VisitBackward(func(v int) bool { backward = append(backward, v); return true })
		for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
			backward[i], backward[j] = backward[j], backward[i]
		}
		if diff := cmp.Diff(model, backward, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round %d: backward traversal reversed (-want +got):\n%s", round, diff)
		}

		if diff := cmp.Diff(model, collect(d.All()), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round %d: pop_front order (-want +got):\n%s", round, diff)
		}
	}
}

func TestRandomOpsKeepLinksConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := New[int]()
	var model []int
	for i := 0; i < 2000; i++ {
		switch rng.Intn(4) {
		case 0:
			d.PushFront(i)
			model = append([]int{i}, model...)
		case 1:
			d.PushBack(i)
			model = append(model, i)
		case 2:
			got, ok := d.PopFront()
			if len(model) == 0 {
				if ok {
					t.Fatalf("step %d: expected absent, got %d", i, got)
				}
				continue
			}
			if !ok || got != model[0] {
				t.Fatalf("step %d: expected %d, got %d (%v)", i, model[0], got, ok)
			}
			model = model[1:]
		case 3:
			got, ok := d.PopBack()
			if len(model) == 0 {
				if ok {
					t.Fatalf("step %d: expected absent, got %d", i, got)
				}
				continue
			}
			if !ok || got != model[len(model)-1] {
				t.Fatalf("step %d: expected %d, got %d (%v)", i, model[len(model)-1], got, ok)
			}
			model = model[:len(model)-1]
		}
		if d.Len() != len(model) {
			t.Fatalf("step %d: expected len %d, got %d", i, len(model), d.Len())
		}
		if i%100 == 0 {
			checkLinks(t, d)
		}
	}
	checkLinks(t, d)
}

func TestClearLongList(t *testing.T) {
	const n = 1_000_000
	d := New[int]()
	for i := 0; i < n; i++ {
		d.PushBack(i)
	}
	d.Clear()
	if !d.IsEmpty() || d.Len() != 0 {
		t.Fatalf("expected empty deque after Clear, got len %d", d.Len())
	}
	checkLinks(t, d)

	d.PushFront(1)
	expectPop(t, d.PopBack, 1)
}

func TestPoppedNodeStillLinkedPanics(t *testing.T) {
	d := New[int]()
	d.PushBack(1)
	d.PushBack(2)

	// Simulate a broken invariant: an extra handle on the head.
	extra := d.head.Clone()
	defer extra.Drop()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, rc.ErrShared) {
			t.Fatalf("expected rc.ErrShared panic, got %v", r)
		}
	}()
	d.PopFront()
}
