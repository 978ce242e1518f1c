package accumulator

import "github.com/katalvlaran/vsudoku/handler"

// Sentinel values for the intrusive next[] array.
const (
	notInList    = -2
	tailSentinel = -1
)

// Queue is the handler accumulator: a deduplicating FIFO over handler
// indices, with push-to-front for exclusion handlers. It implements
// handler.Accumulator.
type Queue struct {
	set  *handler.Set
	next []int
	head int // index of first queued handler, or -1 if empty
	tail int // index of last queued handler, or -1 if empty
}

// NewQueue builds an empty accumulator over set. set.Handlers is
// fixed for the lifetime of the Queue.
func NewQueue(set *handler.Set) *Queue {
	q := &Queue{set: set, next: make([]int, len(set.Handlers))}
	q.Clear()
	return q
}

// Clear empties the queue, marking every handler not-in-list.
func (q *Queue) Clear() {
	for i := range q.next {
		q.next[i] = notInList
	}
	q.head, q.tail = -1, -1
}

// IsEmpty reports whether the queue has no pending handlers.
func (q *Queue) IsEmpty() bool { return q.head == -1 }

// AddForCell enqueues (at the tail) every ordinary handler registered
// against cell c that is not already pending. Implements
// handler.Accumulator.
func (q *Queue) AddForCell(c int) {
	for _, i := range q.set.OrdinaryByCell[c] {
		q.pushBack(i)
	}
}

// AddAuxForCell enqueues (at the tail) every auxiliary handler
// registered against cell c that is not already pending.
func (q *Queue) AddAuxForCell(c int) {
	for _, i := range q.set.AuxByCell[c] {
		q.pushBack(i)
	}
}

// AddForFixedCell pushes cell c's exclusion enforcer, if any, to the
// head of the queue: exclusion must run before ordinary handlers to
// produce cheap eliminations early.
func (q *Queue) AddForFixedCell(c int) {
	if i := q.set.ExclusionByCell[c]; i >= 0 {
		q.pushFront(i)
	}
}

// TakeNext pops and returns the head handler index. ok is false if the
// queue is empty.
func (q *Queue) TakeNext() (idx int, ok bool) {
	if q.head == -1 {
		return 0, false
	}
	idx = q.head
	nxt := q.next[idx]
	q.next[idx] = notInList
	q.head = nxt
	if q.head == -1 {
		q.tail = -1
	}
	return idx, true
}

func (q *Queue) pushBack(i int) {
	if q.next[i] != notInList {
		return // already queued
	}
	q.next[i] = tailSentinel
	if q.tail == -1 {
		q.head = i
	} else {
		q.next[q.tail] = i
	}
	q.tail = i
}

func (q *Queue) pushFront(i int) {
	if q.next[i] != notInList {
		return // already queued
	}
	if q.head == -1 {
		q.next[i] = tailSentinel
		q.head, q.tail = i, i
		return
	}
	q.next[i] = q.head
	q.head = i
}
