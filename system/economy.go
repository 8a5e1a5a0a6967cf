package system

import (
	"sync/atomic"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/status"
)

// EconomySystem owns upgrade purchases and publishes economy gauges
type EconomySystem struct {
	world *engine.World

	statScore     *atomic.Int64
	statMoney     *atomic.Int64
	statLives     *atomic.Int64
	statPurchases *atomic.Int64
	statSpeed     *status.Float
}

func NewEconomySystem(world *engine.World) engine.System {
	s := &EconomySystem{
		world: world,
	}

	s.statScore = world.Status.Ints.Get("economy.score")
	s.statMoney = world.Status.Ints.Get("economy.money")
	s.statLives = world.Status.Ints.Get("economy.lives")
	s.statPurchases = world.Status.Ints.Get("economy.purchases")
	s.statSpeed = world.Status.Floats.Get("economy.bullet_speed")

	s.Init()
	return s
}

func (s *EconomySystem) Init() {
	s.statPurchases.Store(0)
	s.publish()
}

func (s *EconomySystem) Name() string {
	return "economy"
}

func (s *EconomySystem) Priority() int {
	return parameter.PriorityEconomy
}

func (s *EconomySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventLivesChanged,
		event.EventGameReset,
	}
}

func (s *EconomySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.publish()
}

func (s *EconomySystem) Update() {
	s.publish()
}

func (s *EconomySystem) publish() {
	econ := s.world.Economy
	s.statScore.Store(int64(econ.Score))
	s.statMoney.Store(int64(econ.Money))
	s.statLives.Store(int64(econ.Lives))
	s.statSpeed.Store(econ.BulletSpeed)
}

// Purchase buys the next level of kind
// Insufficient funds, a maxed track or a finished game are silent no-ops
func (s *EconomySystem) Purchase(kind component.UpgradeKind) bool {
	if !s.world.Active() {
		return false
	}

	econ := s.world.Economy
	cost, ok := econ.Buy(kind)
	if !ok {
		return false
	}
	s.statPurchases.Add(1)

	s.world.PushEvent(event.EventUpgradePurchased, &event.UpgradePayload{
		Kind:  kind,
		Level: econ.Level(kind),
		Cost:  cost,
	})
	s.world.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: econ.Score, Money: econ.Money})

	if s.world.Rand.Float64() < parameter.BonusSpawnChance {
		s.world.PushEvent(event.EventBonusRequest, nil)
	}
	return true
}

// GrantLoot applies boss loot to econ
// Upgrade loot prefers burst, then bullet speed, then falls back to currency
func GrantLoot(econ *engine.Economy, kind component.LootKind) event.LootPayload {
	payload := event.LootPayload{Kind: kind}

	switch kind {
	case component.LootHeart:
		econ.GainLife()
	case component.LootCoins:
		econ.AddMoney(parameter.LootCoinsBonus)
	case component.LootUpgrade:
		switch {
		case econ.GrantLevel(component.UpgradeBurst):
			payload.Upgrade = component.UpgradeBurst
			payload.Leveled = true
		case econ.GrantLevel(component.UpgradeBulletSpeed):
			payload.Upgrade = component.UpgradeBulletSpeed
			payload.Leveled = true
		default:
			econ.AddMoney(parameter.LootUpgradeRefund)
		}
	}

	payload.Money = econ.Money
	payload.Lives = econ.Lives
	return payload
}
