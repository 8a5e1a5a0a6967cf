package event

import (
	"sync/atomic"

	"github.com/lixenwraith/flicknfire/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (the game dispatch cycle)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a slot by CAS on tail, writes, then publishes
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true)

		head := eq.head.Load()
		if next-head > parameter.EventQueueSize {
			if eq.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				eq.dropped.Add(1)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order and advances head
// Stops early at a slot whose writer has not published yet
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			out = append(out, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	if n := tail - head; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}

// Dropped returns how many events were overwritten before consumption
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
