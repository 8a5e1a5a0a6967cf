package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/flicknfire/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventTargetHit})
	q.Push(GameEvent{Type: EventBonusHit})

	if q.Len() != 2 {
		t.Fatalf("expected 2 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventTargetHit || got[1].Type != EventBonusHit {
		t.Fatalf("unexpected order: %v", got)
	}
	if q.Consume() != nil {
		t.Error("expected empty queue after consume")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventScoreChanged, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("expected newest frame %d last, got %d", total-1, got[len(got)-1].Frame)
	}
	if q.Dropped() == 0 {
		t.Error("expected dropped counter to advance")
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventFireCue})
			}
		}()
	}
	wg.Wait()

	if n := len(q.Consume()); n != 400 {
		t.Errorf("expected 400 events, got %d", n)
	}
}

type countingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *countingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }
func (h *countingHandler) EventTypes() []EventType  { return h.types }

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	a := &countingHandler{types: []EventType{EventGameOver, EventGameReset}}
	b := &countingHandler{types: []EventType{EventGameOver}}
	r.Register(a)
	r.Register(b)

	r.Dispatch(GameEvent{Type: EventGameOver})
	r.Dispatch(GameEvent{Type: EventGameReset})
	r.Dispatch(GameEvent{Type: EventTargetHit})

	if len(a.seen) != 2 || len(b.seen) != 1 {
		t.Errorf("expected 2 and 1 deliveries, got %d and %d", len(a.seen), len(b.seen))
	}
	if r.HandlerCount(EventGameOver) != 2 {
		t.Errorf("expected 2 handlers, got %d", r.HandlerCount(EventGameOver))
	}
}

func TestTypeNames(t *testing.T) {
	for et := EventType(0); et < eventTypeCount; et++ {
		name := et.String()
		if name == "" {
			t.Errorf("event %d has no name", et)
			continue
		}
		back, ok := ParseType(name)
		if !ok || back != et {
			t.Errorf("%s did not round trip", name)
		}
	}
}
