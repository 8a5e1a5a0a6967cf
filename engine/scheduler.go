package engine

import (
	"container/heap"
	"time"
)

// TaskKind classifies scheduled work so state transitions can cancel by category
type TaskKind uint8

const (
	TaskRespawn TaskKind = iota
	TaskBurst
	TaskLoot
	TaskMinion
	TaskSweep
	TaskHazardRoll
	TaskKindCount
)

func (k TaskKind) String() string {
	switch k {
	case TaskRespawn:
		return "respawn"
	case TaskBurst:
		return "burst"
	case TaskLoot:
		return "loot"
	case TaskMinion:
		return "minion"
	case TaskSweep:
		return "sweep"
	case TaskHazardRoll:
		return "hazard_roll"
	}
	return "unknown"
}

// TaskFunc runs scheduled work at the time it fired
type TaskFunc func(now time.Time)

// Handle refers to one scheduled task
// A handle from before CancelAll never matches a live task
type Handle struct {
	id  uint64
	gen uint64
}

// Valid reports whether the handle was ever issued
func (h Handle) Valid() bool {
	return h.id != 0
}

type task struct {
	id    uint64
	seq   uint64 // FIFO tie-break for equal due times
	due   time.Time
	every time.Duration // Zero for one-shot
	kind  TaskKind
	fn    TaskFunc
	index int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a cancellable game-time task queue
// Not safe for concurrent use; the owning World serializes access
// Tasks never run on their own: RunDue executes everything due at a given time
type Scheduler struct {
	queue  taskHeap
	byID   map[uint64]*task
	nextID uint64
	seq    uint64
	gen    uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[uint64]*task),
		gen:  1,
	}
}

func (s *Scheduler) push(due time.Time, every time.Duration, kind TaskKind, fn TaskFunc) Handle {
	s.nextID++
	s.seq++
	t := &task{id: s.nextID, seq: s.seq, due: due, every: every, kind: kind, fn: fn}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return Handle{id: t.id, gen: s.gen}
}

// After schedules fn once at now+delay
func (s *Scheduler) After(now time.Time, delay time.Duration, kind TaskKind, fn TaskFunc) Handle {
	return s.push(now.Add(delay), 0, kind, fn)
}

// Every schedules fn at every interval starting one interval after now
func (s *Scheduler) Every(now time.Time, interval time.Duration, kind TaskKind, fn TaskFunc) Handle {
	if interval <= 0 {
		panic("scheduler: non-positive interval")
	}
	return s.push(now.Add(interval), interval, kind, fn)
}

// Pending reports whether h still refers to a queued task
func (s *Scheduler) Pending(h Handle) bool {
	if h.gen != s.gen {
		return false
	}
	_, ok := s.byID[h.id]
	return ok
}

// Cancel removes the task behind h, returns false for stale or fired handles
func (s *Scheduler) Cancel(h Handle) bool {
	if h.gen != s.gen {
		return false
	}
	t, ok := s.byID[h.id]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byID, t.id)
	return true
}

// CancelKind removes every queued task of kind and returns the count
func (s *Scheduler) CancelKind(kind TaskKind) int {
	n := 0
	for id, t := range s.byID {
		if t.kind != kind {
			continue
		}
		heap.Remove(&s.queue, t.index)
		delete(s.byID, id)
		n++
	}
	return n
}

// CancelAll drops every task and invalidates all outstanding handles
func (s *Scheduler) CancelAll() {
	s.queue = s.queue[:0]
	clear(s.byID)
	s.gen++
}

// RunDue executes tasks due at or before now in due order and returns how many ran
// A periodic task runs at most once per call; after a long gap it resumes one interval from now
// Tasks scheduled by a running task for a time not after now also run in this call
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	for len(s.queue) > 0 {
		t := s.queue[0]
		if t.due.After(now) {
			break
		}
		heap.Pop(&s.queue)

		if t.every > 0 {
			next := t.due.Add(t.every)
			if !next.After(now) {
				next = now.Add(t.every)
			}
			s.seq++
			t.due = next
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.byID, t.id)
		}

		gen := s.gen
		t.fn(now)
		ran++

		// The task reset the world; everything queued before it is gone
		if s.gen != gen {
			break
		}
	}
	return ran
}

// Len returns the number of queued tasks
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// CountKind returns the number of queued tasks of kind
func (s *Scheduler) CountKind(kind TaskKind) int {
	n := 0
	for _, t := range s.byID {
		if t.kind == kind {
			n++
		}
	}
	return n
}

// NextDue returns the earliest due time, false when empty
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}
