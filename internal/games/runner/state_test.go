package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestState() *State {
	cfg := config.DefaultRunnerConfig()
	return NewState(&cfg)
}

func TestLosingLastLifeEndsRun(t *testing.T) {
	s := newTestState()
	s.Lives = 1

	if !s.TakeDamage(0) {
		t.Fatal("TakeDamage should apply with no buffs active")
	}
	if s.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.Lives)
	}
	if s.Status != StatusGameOver {
		t.Errorf("Status = %v, expected GameOver", s.Status)
	}
	if s.BaseSpeed != 0 {
		t.Errorf("BaseSpeed = %f, expected 0 after game over", s.BaseSpeed)
	}

	// Further damage must be a no-op; lives never go negative
	if s.TakeDamage(0) {
		t.Error("TakeDamage should not apply after game over")
	}
	if s.Lives != 0 {
		t.Errorf("Lives = %d after post-game-over damage, expected 0", s.Lives)
	}
}

func TestDamageIgnoredWhileInvulnerable(t *testing.T) {
	s := newTestState()

	s.ActivateBuff(BuffShield, 0, 10)
	if s.TakeDamage(5) {
		t.Error("TakeDamage should be a no-op while shield is active")
	}
	if s.Lives != s.cfg.Lives.Start {
		t.Errorf("Lives = %d, expected %d", s.Lives, s.cfg.Lives.Start)
	}

	// Past expiry the hit lands
	if !s.TakeDamage(10.1) {
		t.Error("TakeDamage should apply after shield expiry")
	}
}

func TestBuffExpiry(t *testing.T) {
	s := newTestState()
	s.ActivateBuff(BuffMagnet, 2.0, 12.0)

	if !s.BuffActive(BuffMagnet, 2.0) {
		t.Error("Buff should be active immediately after activation")
	}
	if !s.BuffActive(BuffMagnet, 13.9) {
		t.Error("Buff should be active just before expiry")
	}
	if s.BuffActive(BuffMagnet, 14.0) {
		t.Error("Buff should be inactive at its expiry timestamp")
	}

	// Re-activation extends the window
	s.ActivateBuff(BuffMagnet, 13.0, 12.0)
	if !s.BuffActive(BuffMagnet, 20.0) {
		t.Error("Re-activation should extend the buff window")
	}
}

func TestCollectLetterIdempotent(t *testing.T) {
	s := newTestState()
	baseSpeed := s.BaseSpeed

	if !s.CollectLetter(2, 0) {
		t.Fatal("First collection should succeed")
	}
	if s.Score != s.cfg.Scoring.LetterValue {
		t.Errorf("Score = %d, expected %d", s.Score, s.cfg.Scoring.LetterValue)
	}

	wantSpeed := baseSpeed + s.cfg.Scoring.LetterSpeedBonus*baseSpeed
	if math.Abs(s.BaseSpeed-wantSpeed) > 1e-9 {
		t.Errorf("BaseSpeed = %f, expected %f", s.BaseSpeed, wantSpeed)
	}

	// Duplicate collection: no score, no speed change
	if s.CollectLetter(2, 0) {
		t.Error("Duplicate collection should be a no-op")
	}
	if s.Score != s.cfg.Scoring.LetterValue {
		t.Errorf("Score changed on duplicate collection: %d", s.Score)
	}
	if math.Abs(s.BaseSpeed-wantSpeed) > 1e-9 {
		t.Errorf("BaseSpeed changed on duplicate collection: %f", s.BaseSpeed)
	}

	// Out-of-range indices are rejected
	if s.CollectLetter(-1, 0) || s.CollectLetter(WordLength, 0) {
		t.Error("Out-of-range letter index should be rejected")
	}
}

func TestLetterSpeedBonusConcrete(t *testing.T) {
	// Base speed 22.5 with a 10% bonus must land at exactly 24.75.
	s := newTestState()
	s.CollectLetter(0, 0)
	if math.Abs(s.BaseSpeed-24.75) > 1e-9 {
		t.Errorf("BaseSpeed = %f, expected 24.75", s.BaseSpeed)
	}
}

func TestWordComplete(t *testing.T) {
	s := newTestState()
	for i := 0; i < WordLength-1; i++ {
		s.CollectLetter(i, 0)
	}
	if s.WordComplete() {
		t.Error("Word should not be complete with one letter missing")
	}
	if got := s.UncollectedLetters(); len(got) != 1 || got[0] != WordLength-1 {
		t.Errorf("UncollectedLetters() = %v, expected [%d]", got, WordLength-1)
	}

	s.CollectLetter(WordLength-1, 0)
	if !s.WordComplete() {
		t.Error("Word should be complete with all letters collected")
	}
	if got := s.UncollectedLetters(); len(got) != 0 {
		t.Errorf("UncollectedLetters() = %v, expected empty", got)
	}
}

func TestSpeedRampCap(t *testing.T) {
	s := newTestState()
	limit := s.StartBaseSpeed() * s.cfg.Pacing.RampCap

	for i := 0; i < 100; i++ {
		s.AddSpeed(s.cfg.Pacing.RampIncrement)
	}
	if s.BaseSpeed != limit {
		t.Errorf("BaseSpeed = %f, expected capped at %f", s.BaseSpeed, limit)
	}
}

func TestEnterEndlessReanchorsRampCap(t *testing.T) {
	s := newTestState()
	s.BaseSpeed = 30.0
	s.Status = StatusVictory
	s.Win() // no-op, already terminal

	s.EnterEndless()
	if s.Mode != ModeEndless {
		t.Errorf("Mode = %v, expected endless", s.Mode)
	}
	if s.Status != StatusPlaying {
		t.Errorf("Status = %v, expected Playing", s.Status)
	}

	// The cap is now relative to the speed the endless run started with
	for i := 0; i < 1000; i++ {
		s.AddSpeed(s.cfg.Pacing.RampIncrement)
	}
	want := 30.0 * s.cfg.Pacing.RampCap
	if math.Abs(s.BaseSpeed-want) > 1e-9 {
		t.Errorf("BaseSpeed = %f, expected re-anchored cap %f", s.BaseSpeed, want)
	}
}

func TestScoreMultiplier(t *testing.T) {
	s := newTestState()

	s.CollectGem(10, 0)
	if s.Score != 10 {
		t.Errorf("Score = %d, expected 10", s.Score)
	}
	if s.Gems != 10 {
		t.Errorf("Gems = %d, expected 10", s.Gems)
	}

	s.ActivateBuff(BuffScoreBoost, 0, 10)
	s.CollectGem(10, 5)
	if s.Score != 30 {
		t.Errorf("Score = %d with boost, expected 30", s.Score)
	}
	// The wallet is never multiplied
	if s.Gems != 20 {
		t.Errorf("Gems = %d, expected 20", s.Gems)
	}
}

func TestEffectiveSpeed(t *testing.T) {
	s := newTestState()

	if got := s.EffectiveSpeed(0); got != s.BaseSpeed {
		t.Errorf("EffectiveSpeed = %f, expected %f", got, s.BaseSpeed)
	}

	s.ActivateBuff(BuffSlowMotion, 0, 6)
	want := s.BaseSpeed * s.cfg.PowerUps.SlowFactor
	if got := s.EffectiveSpeed(1); math.Abs(got-want) > 1e-9 {
		t.Errorf("EffectiveSpeed = %f while slowed, expected %f", got, want)
	}

	// The world does not scroll outside Playing
	s.Status = StatusShop
	if got := s.EffectiveSpeed(1); got != 0 {
		t.Errorf("EffectiveSpeed = %f in shop, expected 0", got)
	}
}

func TestShopStatusTransitions(t *testing.T) {
	s := newTestState()

	s.OpenShop()
	if s.Status != StatusShop {
		t.Errorf("Status = %v, expected Shop", s.Status)
	}
	s.CloseShop()
	if s.Status != StatusPlaying {
		t.Errorf("Status = %v, expected Playing", s.Status)
	}

	// OpenShop from a terminal status is a no-op
	s.Status = StatusGameOver
	s.OpenShop()
	if s.Status != StatusGameOver {
		t.Errorf("OpenShop changed a terminal status to %v", s.Status)
	}
}

func TestLivesCap(t *testing.T) {
	s := newTestState()
	s.Lives = s.MaxLives

	if s.AddLife() {
		t.Error("AddLife should fail at the cap")
	}
	if s.Lives != s.MaxLives {
		t.Errorf("Lives = %d, expected %d", s.Lives, s.MaxLives)
	}

	s.Lives = 1
	if !s.AddLife() {
		t.Error("AddLife should succeed below the cap")
	}
}

func TestExpandLanes(t *testing.T) {
	s := newTestState()

	if !s.ExpandLanes() {
		t.Fatal("ExpandLanes should succeed below the cap")
	}
	if s.LaneCount != 5 {
		t.Errorf("LaneCount = %d, expected 5", s.LaneCount)
	}
	if s.ExpandLanes() {
		t.Error("ExpandLanes should fail at the cap")
	}
}

func TestSpendGems(t *testing.T) {
	s := newTestState()
	s.Gems = 100

	if s.SpendGems(150) {
		t.Error("SpendGems should fail on insufficient funds")
	}
	if s.Gems != 100 {
		t.Errorf("Gems = %d after failed spend, expected 100", s.Gems)
	}
	if !s.SpendGems(100) {
		t.Error("SpendGems should succeed with exact funds")
	}
	if s.Gems != 0 {
		t.Errorf("Gems = %d, expected 0", s.Gems)
	}
}

func TestWordForLevel(t *testing.T) {
	for level := 1; level <= FinalLevel; level++ {
		if got := WordForLevel(level); len(got) != WordLength {
			t.Errorf("WordForLevel(%d) = %q, expected length %d", level, got, WordLength)
		}
	}
	if WordForLevel(1) == WordForLevel(2) {
		t.Error("Adjacent levels should have different words")
	}
	// Out-of-range levels fall back to the final word
	if WordForLevel(99) != WordForLevel(FinalLevel) {
		t.Error("Out-of-range level should fall back to the final word")
	}
}
