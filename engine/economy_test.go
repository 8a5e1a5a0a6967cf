package engine

import (
	"testing"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/parameter"
)

func TestEconomyBuyInsufficientFunds(t *testing.T) {
	e := NewEconomy()
	e.Money = 49

	if _, ok := e.Buy(component.UpgradeBurst); ok {
		t.Fatal("purchase with 49 of 50 should fail")
	}
	if e.BurstLevel != 0 || e.Money != 49 {
		t.Errorf("state changed: level %d money %d", e.BurstLevel, e.Money)
	}
}

func TestEconomyCostCurves(t *testing.T) {
	e := NewEconomy()
	e.Money = 10000

	wantSpeed := []int{20, 35, 50}
	for i, want := range wantSpeed {
		cost, ok := e.Buy(component.UpgradeBulletSpeed)
		if !ok || cost != want {
			t.Fatalf("speed level %d: expected cost %d, got %d ok=%v", i, want, cost, ok)
		}
	}
	if _, ok := e.Buy(component.UpgradeBulletSpeed); ok {
		t.Error("bullet speed beyond max level should fail")
	}
	if e.BulletSpeed != parameter.BulletSpeedBase+3*parameter.BulletSpeedStep {
		t.Errorf("unexpected bullet speed %f", e.BulletSpeed)
	}

	for i := 0; i < parameter.BurstMaxLevel; i++ {
		want := parameter.BurstBaseCost + i*parameter.BurstCostStep
		if cost, ok := e.Buy(component.UpgradeBurst); !ok || cost != want {
			t.Fatalf("burst level %d: expected %d, got %d", i, want, cost)
		}
	}
	if !e.Maxed(component.UpgradeBurst) || e.BurstCount() != 11 {
		t.Errorf("expected maxed burst of 11, got %d", e.BurstCount())
	}

	if cost, ok := e.Buy(component.UpgradeBounce); !ok || cost != parameter.BounceCost || !e.BulletsBounce {
		t.Error("expected one-time bounce purchase")
	}
	before := e.Money
	if _, ok := e.Buy(component.UpgradeBounce); ok || e.Money != before {
		t.Error("bounce is one-time")
	}
}

func TestEconomyLives(t *testing.T) {
	e := NewEconomy()
	e.Lives = 1

	if !e.LoseLife() {
		t.Fatal("losing the last life should report game over")
	}
	if e.LoseLife() {
		t.Error("game over must be reported exactly once")
	}
	if e.Lives != 0 || !e.GameOver {
		t.Errorf("expected 0 lives and game over, got %d %v", e.Lives, e.GameOver)
	}

	e = NewEconomy()
	for i := 0; i < 10; i++ {
		e.GainLife()
	}
	if e.Lives != parameter.LivesMax {
		t.Errorf("expected lives capped at %d, got %d", parameter.LivesMax, e.Lives)
	}
}

func TestEconomyMoneyNeverNegative(t *testing.T) {
	e := NewEconomy()
	e.AddMoney(-100)
	e.AddScore(-5)
	if e.Money != 0 || e.Score != 0 {
		t.Errorf("expected zero floor, got money %d score %d", e.Money, e.Score)
	}
}

func TestEconomyBonusEscalates(t *testing.T) {
	e := NewEconomy()
	if v := e.NextBonusValue(); v != 50 {
		t.Errorf("expected first bonus 50, got %d", v)
	}
	if v := e.NextBonusValue(); v != 55 {
		t.Errorf("expected second bonus 55, got %d", v)
	}
}
