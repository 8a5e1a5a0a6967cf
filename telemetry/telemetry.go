// Package telemetry exports gameplay counters through OpenTelemetry
// Uses the global meter provider, which is a no-op unless the host installs one
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/flicknfire/event"
)

const instrumentationName = "github.com/lixenwraith/flicknfire/telemetry"

// counted maps the events that feed a counter to their instrument name
var counted = map[event.EventType]string{
	event.EventFireCue:           "game.bursts",
	event.EventProjectileSpawned: "game.projectiles",
	event.EventTargetHit:         "game.targets.hit",
	event.EventTargetExpired:     "game.targets.expired",
	event.EventBonusHit:          "game.bonuses.hit",
	event.EventHazardExploded:    "game.hazards.exploded",
	event.EventBossSpawned:       "game.bosses.spawned",
	event.EventBossVictory:       "game.bosses.defeated",
	event.EventUpgradePurchased:  "game.upgrades",
	event.EventGameOver:          "game.over",
}

// Recorder is a game listener that counts notifications
type Recorder struct {
	counters map[event.EventType]metric.Int64Counter
	score    metric.Int64Histogram

	mu     sync.Mutex
	totals map[event.EventType]int64
}

// New creates a recorder on the global meter provider
func New() (*Recorder, error) {
	return NewWithMeter(otel.Meter(instrumentationName))
}

// NewWithMeter creates a recorder on an explicit meter
func NewWithMeter(m metric.Meter) (*Recorder, error) {
	r := &Recorder{
		counters: make(map[event.EventType]metric.Int64Counter, len(counted)),
		totals:   make(map[event.EventType]int64, len(counted)),
	}

	for typ, name := range counted {
		c, err := m.Int64Counter(name, metric.WithDescription(fmt.Sprintf("Total %s notifications", typ)))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", name, err)
		}
		r.counters[typ] = c
	}

	var err error
	r.score, err = m.Int64Histogram(
		"game.final_score",
		metric.WithDescription("Score at game over"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating final score histogram: %w", err)
	}

	return r, nil
}

// OnEvent implements game.Listener
func (r *Recorder) OnEvent(ev event.GameEvent) {
	c, ok := r.counters[ev.Type]
	if !ok {
		return
	}

	ctx := context.Background()
	var attrs []attribute.KeyValue
	switch p := ev.Payload.(type) {
	case *event.UpgradePayload:
		attrs = append(attrs, attribute.String("upgrade", p.Kind.String()))
	case *event.HazardPayload:
		attrs = append(attrs, attribute.Bool("minion", p.Minion))
	case *event.ScorePayload:
		if ev.Type == event.EventGameOver {
			r.score.Record(ctx, int64(p.Score))
		}
	}
	c.Add(ctx, 1, metric.WithAttributes(attrs...))

	r.mu.Lock()
	r.totals[ev.Type]++
	r.mu.Unlock()
}

// Total returns how many events of a type were recorded
func (r *Recorder) Total(typ event.EventType) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[typ]
}
