package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and is never emitted
	EventNone EventType = iota

	// === Fire ===

	// EventFireCue signals a burst was triggered, for muzzle spark and sound
	// Trigger: FireSystem on accepted trigger
	// Consumer: external (audio, render) | Payload: *FireCuePayload
	EventFireCue

	// EventProjectileSpawned signals one staggered projectile of a burst entered the world
	// Trigger: scheduled burst task
	// Consumer: external | Payload: *ProjectilePayload
	EventProjectileSpawned

	// === Collectibles ===

	// EventTargetSpawned signals a new primary target
	// Trigger: SpawnSystem | Payload: *TargetPayload
	EventTargetSpawned

	// EventTargetHit signals a projectile consumed the target, rewards already applied
	// Trigger: CollisionSystem
	// Consumer: SpawnSystem (respawn delay), external | Payload: *TargetPayload
	EventTargetHit

	// EventTargetExpired signals the target timed out unrewarded
	// Trigger: SpawnSystem sweep | Payload: *TargetPayload
	EventTargetExpired

	// EventBonusSpawned signals a bonus target
	// Trigger: SpawnSystem on EventBonusRequest | Payload: *BonusPayload
	EventBonusSpawned

	// EventBonusHit signals a bonus target was collected
	// Trigger: CollisionSystem | Payload: *BonusPayload
	EventBonusHit

	// EventBonusExpired signals a bonus target timed out
	// Trigger: SpawnSystem sweep | Payload: *BonusPayload
	EventBonusExpired

	// EventBonusRequest asks for a bonus target roll
	// Trigger: EconomySystem after a purchase
	// Consumer: SpawnSystem | Payload: nil
	EventBonusRequest

	// === Hazards ===

	// EventHazardSpawned signals an ordinary hazard or boss minion
	// Trigger: SpawnSystem, BossSystem | Payload: *HazardPayload
	EventHazardSpawned

	// EventHazardExploded signals a hazard was shot and cost a life
	// Trigger: CollisionSystem | Payload: *HazardPayload
	EventHazardExploded

	// EventHazardExpired signals a hazard aged out
	// Trigger: PhysicsSystem | Payload: *HazardPayload
	EventHazardExpired

	// === Boss ===

	// EventBossSpawned signals the start of an encounter
	// Trigger: BossSystem | Payload: *BossPayload
	EventBossSpawned

	// EventBossDamaged signals a projectile hit on the boss
	// Trigger: CollisionSystem | Payload: *BossPayload
	EventBossDamaged

	// EventBossKilled signals boss hp reached zero
	// Trigger: CollisionSystem
	// Consumer: BossSystem (victory) | Payload: *BossPayload
	EventBossKilled

	// EventBossVictory signals victory rewards were granted and loot is pending
	// Trigger: BossSystem | Payload: *BossPayload
	EventBossVictory

	// EventBossDefeat signals the encounter ended by game over, without loot
	// Trigger: BossSystem | Payload: *BossPayload
	EventBossDefeat

	// EventLootGranted signals resolved boss loot
	// Trigger: BossSystem loot task
	// Consumer: external (toast) | Payload: *LootPayload
	EventLootGranted

	// === Economy ===

	// EventUpgradePurchased signals a successful purchase or free loot upgrade
	// Trigger: EconomySystem | Payload: *UpgradePayload
	EventUpgradePurchased

	// EventScoreChanged signals score or money changed
	// Trigger: CollisionSystem, BossSystem, EconomySystem
	// Consumer: best score keeper, external | Payload: *ScorePayload
	EventScoreChanged

	// EventLivesChanged signals a life was lost or restored
	// Trigger: CollisionSystem, BossSystem | Payload: *LivesPayload
	EventLivesChanged

	// EventBestScore signals a new persisted best score
	// Trigger: Game best score keeper | Payload: *ScorePayload
	EventBestScore

	// === Lifecycle ===

	// EventGameOver signals the terminal state, emitted exactly once per game
	// Trigger: CollisionSystem when lives reach zero
	// Consumer: BossSystem (defeat path), SpawnSystem, external | Payload: *ScorePayload
	EventGameOver

	// EventGameReset signals restart, every system reinitializes
	// Trigger: Game.Restart | Payload: nil
	EventGameReset

	// EventPaused and EventResumed bracket a pause
	// Trigger: Game.Pause, Game.Resume | Payload: nil
	EventPaused
	EventResumed

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
