package game

import (
	"github.com/lixenwraith/flicknfire/event"
)

// keeper handles engine-level bookkeeping after the systems: best score, game over cleanup, lifecycle logs
type keeper struct {
	game *Game
}

func (k *keeper) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventGameOver,
		event.EventBossSpawned,
		event.EventBossVictory,
		event.EventBossDefeat,
		event.EventLootGranted,
		event.EventUpgradePurchased,
	}
}

func (k *keeper) HandleEvent(ev event.GameEvent) {
	g := k.game
	w := g.world

	switch ev.Type {
	case event.EventScoreChanged:
		if p, ok := ev.Payload.(*event.ScorePayload); ok {
			k.observeScore(p.Score)
		}

	case event.EventGameOver:
		// No delayed work may outlive the game
		w.Scheduler.CancelAll()
		if p, ok := ev.Payload.(*event.ScorePayload); ok {
			k.observeScore(p.Score)
			g.log.Info().Int("score", p.Score).Int("money", p.Money).Int("best", g.best).Msg("game over")
		}

	case event.EventBossSpawned:
		if p, ok := ev.Payload.(*event.BossPayload); ok {
			g.log.Info().Int("hp", p.HP).Stringer("loot", p.Loot).Int("defeated", w.Economy.BossesDefeated).Msg("boss encounter started")
		}

	case event.EventBossVictory:
		g.log.Info().Int("defeated", w.Economy.BossesDefeated).Int("score", w.Economy.Score).Msg("boss defeated")

	case event.EventBossDefeat:
		g.log.Info().Msg("boss encounter lost")

	case event.EventLootGranted:
		if p, ok := ev.Payload.(*event.LootPayload); ok {
			g.log.Debug().Stringer("loot", p.Kind).Bool("leveled", p.Leveled).Msg("loot granted")
		}

	case event.EventUpgradePurchased:
		if p, ok := ev.Payload.(*event.UpgradePayload); ok {
			g.log.Debug().Stringer("kind", p.Kind).Int("level", p.Level).Int("cost", p.Cost).Msg("upgrade applied")
		}
	}
}

// observeScore raises the best score and announces it for persistence
func (k *keeper) observeScore(score int) {
	g := k.game
	if score <= g.best {
		return
	}
	g.best = score
	g.statBest.Store(int64(score))
	g.world.PushEvent(event.EventBestScore, &event.ScorePayload{Score: score, Money: g.world.Economy.Money})
}
