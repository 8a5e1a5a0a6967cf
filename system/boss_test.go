package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

func startBoss(t *testing.T, h *harness) *component.Boss {
	t.Helper()
	h.world.Economy.Score = parameter.BossScoreInterval * (h.world.Economy.BossesDefeated + 1)
	h.frame()
	b := h.world.Store.Boss()
	if b == nil {
		t.Fatal("expected boss to spawn at the score threshold")
	}
	return b
}

func TestBossTriggerClearsField(t *testing.T) {
	h := newHarness(t)
	store := h.world.Store
	store.SetTarget(component.Target{ID: store.NewID(), Pos: vmath.Vec2{X: 300, Y: 300}})
	store.AddBonus(component.BonusTarget{ID: store.NewID(), CreatedAt: h.world.Now()})
	store.AddHazard(component.Hazard{ID: store.NewID(), CreatedAt: h.world.Now()})

	b := startBoss(t, h)

	if store.Target() != nil || len(store.Bonuses) != 0 || len(store.Hazards) != 0 {
		t.Error("boss entrance must clear target, bonuses and hazards")
	}
	if b.HP != parameter.BossHP || b.MaxHP != parameter.BossHP || b.Radius != parameter.BossRadius {
		t.Errorf("unexpected boss stats %+v", b)
	}
	if b.Loot >= component.LootCount {
		t.Errorf("invalid loot kind %d", b.Loot)
	}
	if h.boss.Phase() != BossActive {
		t.Errorf("expected active phase, got %s", h.boss.Phase())
	}
	if h.world.Scheduler.CountKind(engine.TaskMinion) != 1 {
		t.Error("expected minion spawner running")
	}
	if h.count(event.EventBossSpawned) != 1 {
		t.Error("expected boss spawned event")
	}

	// Boss presence suppresses target spawning
	h.frame()
	if store.Target() != nil {
		t.Error("target spawned during boss encounter")
	}
}

func TestBossThresholdScalesWithDefeats(t *testing.T) {
	h := newHarness(t)
	h.world.Economy.BossesDefeated = 1
	h.world.Economy.Score = 39
	h.frame()
	if h.world.Store.Boss() != nil {
		t.Fatal("boss spawned below 40 after one defeat")
	}
	h.world.Economy.Score = 40
	h.frame()
	if h.world.Store.Boss() == nil {
		t.Error("expected boss at 40 after one defeat")
	}
}

func TestBossMinionSpawner(t *testing.T) {
	h := newHarness(t)
	b := startBoss(t, h)
	bossPos := b.Pos

	for i := 0; i < 8; i++ {
		h.advance(parameter.MinionInterval)
		h.tick()
		if n := len(h.world.Store.Hazards); n > parameter.MinionMaxLive {
			t.Fatalf("minion cap exceeded: %d", n)
		}
	}
	if n := len(h.world.Store.Hazards); n != parameter.MinionMaxLive {
		t.Fatalf("expected %d minions, got %d", parameter.MinionMaxLive, n)
	}

	for _, m := range h.world.Store.Hazards {
		if !m.Minion || m.Radius != parameter.MinionRadius {
			t.Errorf("unexpected minion %+v", m)
		}
		if d := m.Pos.Distance(bossPos); d < 2*parameter.BossRadius {
			t.Errorf("minion too close to boss: %f", d)
		}
		if math.Abs(m.Vel.X) >= 2 || math.Abs(m.Vel.Y) >= 2 {
			t.Errorf("minion velocity out of range: %+v", m.Vel)
		}
	}
}

func TestBossVictoryGrantsLootAfterDelay(t *testing.T) {
	h := newHarness(t)
	b := startBoss(t, h)
	b.HP = 1
	b.Loot = component.LootCoins
	money := h.world.Economy.Money
	shot(h, b.Pos)

	h.frame()
	if h.world.Store.Boss() != nil {
		t.Fatal("expected victory")
	}
	if h.world.Scheduler.CountKind(engine.TaskMinion) != 0 {
		t.Error("minion spawner must stop on victory")
	}
	if h.world.Economy.Money != money+parameter.BossVictoryMoney {
		t.Errorf("expected victory money only, got %d", h.world.Economy.Money)
	}
	if h.world.Store.Target() == nil {
		t.Error("normal target spawning should resume")
	}

	h.advance(parameter.LootGrantDelay)
	h.tick()
	if h.count(event.EventLootGranted) != 1 {
		t.Fatal("expected loot granted after the delay")
	}
	if want := money + parameter.BossVictoryMoney + parameter.LootCoinsBonus; h.world.Economy.Money != want {
		t.Errorf("expected money %d, got %d", want, h.world.Economy.Money)
	}
}

func TestBossLootCancelledByReset(t *testing.T) {
	h := newHarness(t)
	b := startBoss(t, h)
	b.HP = 1
	shot(h, b.Pos)
	h.frame()

	h.reset()
	h.advance(parameter.LootGrantDelay * 2)
	h.tick()
	if h.count(event.EventLootGranted) != 0 {
		t.Error("loot from the previous game was granted after reset")
	}
	if h.world.Economy.Money != 0 || h.world.Economy.BossesDefeated != 0 {
		t.Errorf("reset left economy dirty: %+v", *h.world.Economy)
	}
}

func TestBossDefeatOnGameOver(t *testing.T) {
	h := newHarness(t)
	startBoss(t, h)

	pos := vmath.Vec2{X: 200, Y: 600}
	h.world.Economy.Lives = 1
	h.world.Store.AddHazard(component.Hazard{ID: h.world.Store.NewID(), Pos: pos, Radius: parameter.MinionRadius, CreatedAt: h.world.Now()})
	shot(h, pos)
	h.frame()

	if !h.world.Economy.GameOver {
		t.Fatal("expected game over")
	}
	if h.world.Store.Boss() != nil {
		t.Error("defeat must clear the boss")
	}
	if h.count(event.EventBossDefeat) != 1 || h.count(event.EventBossVictory) != 0 {
		t.Error("expected defeat path without victory")
	}
	if h.world.Scheduler.CountKind(engine.TaskMinion) != 0 || h.world.Scheduler.CountKind(engine.TaskLoot) != 0 {
		t.Error("defeat must stop minions and grant no loot")
	}
	if h.world.Economy.BossesDefeated != 0 {
		t.Error("defeat must not count as a boss defeated")
	}
}

func TestBossContinuesOnNonFinalLife(t *testing.T) {
	h := newHarness(t)
	startBoss(t, h)

	pos := vmath.Vec2{X: 200, Y: 600}
	h.world.Store.AddHazard(component.Hazard{ID: h.world.Store.NewID(), Pos: pos, Radius: parameter.MinionRadius, CreatedAt: h.world.Now()})
	shot(h, pos)
	h.frame()

	if h.world.Economy.Lives != parameter.LivesStart-1 {
		t.Errorf("expected a life lost, got %d", h.world.Economy.Lives)
	}
	if h.world.Store.Boss() == nil || h.boss.Phase() != BossActive {
		t.Error("encounter should continue after a non-final life")
	}
}

func TestBossSettlesKillWithoutNotification(t *testing.T) {
	h := newHarness(t)
	b := startBoss(t, h)
	b.HP = 0
	money := h.world.Economy.Money

	h.advance(16 * time.Millisecond)
	h.frame()

	if h.world.Store.Boss() != nil {
		t.Fatal("expected a boss at zero hp to be resolved")
	}
	if h.world.Economy.BossesDefeated != 1 || h.world.Economy.Money != money+parameter.BossVictoryMoney {
		t.Errorf("expected victory rewards, got defeated %d money %d", h.world.Economy.BossesDefeated, h.world.Economy.Money)
	}
	if h.count(event.EventBossVictory) != 1 || h.world.Scheduler.CountKind(engine.TaskLoot) != 1 {
		t.Error("expected victory notification and a pending loot grant")
	}
	if h.world.Scheduler.CountKind(engine.TaskMinion) != 0 {
		t.Error("expected minion spawner stopped")
	}
}

func TestBossSettlesGameOverWithoutNotification(t *testing.T) {
	h := newHarness(t)
	startBoss(t, h)
	h.world.Economy.Lives = 0
	h.world.Economy.GameOver = true

	if !h.boss.Settle() {
		t.Fatal("expected settle to end the encounter")
	}
	if h.world.Store.Boss() != nil || h.world.Scheduler.CountKind(engine.TaskMinion) != 0 {
		t.Error("expected boss cleared and minions stopped")
	}
	if h.world.Economy.BossesDefeated != 0 || h.world.Scheduler.CountKind(engine.TaskLoot) != 0 {
		t.Error("defeat must grant nothing")
	}
	if h.boss.Settle() {
		t.Error("second settle should be a no-op")
	}
}
