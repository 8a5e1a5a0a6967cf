package event

var typeNames = [eventTypeCount]string{
	EventNone:              "none",
	EventFireCue:           "fire_cue",
	EventProjectileSpawned: "projectile_spawned",
	EventTargetSpawned:     "target_spawned",
	EventTargetHit:         "target_hit",
	EventTargetExpired:     "target_expired",
	EventBonusSpawned:      "bonus_spawned",
	EventBonusHit:          "bonus_hit",
	EventBonusExpired:      "bonus_expired",
	EventBonusRequest:      "bonus_request",
	EventHazardSpawned:     "hazard_spawned",
	EventHazardExploded:    "hazard_exploded",
	EventHazardExpired:     "hazard_expired",
	EventBossSpawned:       "boss_spawned",
	EventBossDamaged:       "boss_damaged",
	EventBossKilled:        "boss_killed",
	EventBossVictory:       "boss_victory",
	EventBossDefeat:        "boss_defeat",
	EventLootGranted:       "loot_granted",
	EventUpgradePurchased:  "upgrade_purchased",
	EventScoreChanged:      "score_changed",
	EventLivesChanged:      "lives_changed",
	EventBestScore:         "best_score",
	EventGameOver:          "game_over",
	EventGameReset:         "game_reset",
	EventPaused:            "paused",
	EventResumed:           "resumed",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeNames))
	for i, n := range typeNames {
		m[n] = EventType(i)
	}
	return m
}()

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType returns the EventType for a name produced by String
func ParseType(name string) (EventType, bool) {
	t, ok := nameToType[name]
	return t, ok
}
