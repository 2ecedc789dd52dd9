package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// Status is the top-level game status. Transitions are one-directional
// except Playing↔Shop; GameOver and Victory are terminal until an
// explicit restart or continue.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusShop
	StatusGameOver
	StatusVictory
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "Menu"
	case StatusPlaying:
		return "Playing"
	case StatusShop:
		return "Shop"
	case StatusGameOver:
		return "GameOver"
	case StatusVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Mode is the top-level game mode.
type Mode string

const (
	ModeStory   Mode = "story"
	ModeEndless Mode = "endless"
)

// PowerKind is a power-up subtype.
type PowerKind int

const (
	PowerShield PowerKind = iota
	PowerMagnet
	PowerScoreBoost
	PowerSlowMotion
	PowerHeart
	PowerReverse
	powerCount // Sentinel for counting types
)

// String returns the power-up name.
func (p PowerKind) String() string {
	switch p {
	case PowerShield:
		return "Shield"
	case PowerMagnet:
		return "Magnet"
	case PowerScoreBoost:
		return "Score x2"
	case PowerSlowMotion:
		return "Slow-Mo"
	case PowerHeart:
		return "Heart"
	case PowerReverse:
		return "Reverse"
	default:
		return "?"
	}
}

// Buff is a timed state modifier. Every buff is stored as an expiry
// timestamp on the simulation clock and checked each tick; there are no
// independent timer callbacks to cancel or race.
type Buff int

const (
	BuffShield Buff = iota
	BuffMagnet
	BuffScoreBoost
	BuffSlowMotion
	BuffReverse
	BuffImmortal // Activated skill, not a pickup
	buffCount
)

// WordLength is the fixed target word length per level.
const WordLength = 6

// FinalLevel is the last story level; completing its word wins the run.
const FinalLevel = 3

// levelWords are the letter targets per story level, all WordLength long.
var levelWords = [FinalLevel]string{"RUNNER", "ARCADE", "LEGEND"}

// WordForLevel returns the target word for a story level (1-based).
func WordForLevel(level int) string {
	if level < 1 || level > FinalLevel {
		return levelWords[FinalLevel-1]
	}
	return levelWords[level-1]
}

// State is the authoritative game state. All mutation goes through the
// operations below so clamping and idempotence live in one place.
type State struct {
	cfg *config.RunnerConfig

	Status    Status
	Mode      Mode
	Score     int
	Lives     int
	MaxLives  int
	BaseSpeed float64
	Level     int
	LaneCount int
	Gems      int
	Distance  float64

	// Ability ownership
	OwnsDoubleJump  bool
	OwnsImmortality bool

	// Collected letter indices for the current level word
	Letters map[int]bool

	startBaseSpeed float64
	buffExpiry     [buffCount]float64
}

// NewState creates a state bound to the given config; call Reset before use.
func NewState(cfg *config.RunnerConfig) *State {
	s := &State{cfg: cfg}
	s.Reset(ModeStory)
	return s
}

// Reset fully reinitializes the state for a new run in the given mode.
// Ability ownership and the gem wallet survive a reset; everything else
// is rebuilt from config.
func (s *State) Reset(mode Mode) {
	s.Status = StatusPlaying
	s.Mode = mode
	s.Score = 0
	s.MaxLives = s.cfg.Lives.Max
	s.Lives = min(s.cfg.Lives.Start, s.MaxLives)
	s.BaseSpeed = s.cfg.Physics.BaseSpeed
	s.startBaseSpeed = s.cfg.Physics.BaseSpeed
	s.Level = 1
	if s.LaneCount == 0 {
		s.LaneCount = s.cfg.Track.LaneCount
	}
	s.Distance = 0
	s.Letters = make(map[int]bool, WordLength)
	s.buffExpiry = [buffCount]float64{}
}

// StartBaseSpeed returns the base speed the run started with; the endless
// ramp cap and letter speed bonus are both relative to it.
func (s *State) StartBaseSpeed() float64 {
	return s.startBaseSpeed
}

// ActivateBuff sets a buff's expiry to now+duration. Re-activation simply
// extends the window; overlapping activations cannot cancel each other.
func (s *State) ActivateBuff(b Buff, now, duration float64) {
	if b < 0 || b >= buffCount {
		return
	}
	s.buffExpiry[b] = now + duration
}

// BuffActive reports whether a buff is active at the given clock time.
func (s *State) BuffActive(b Buff, now float64) bool {
	if b < 0 || b >= buffCount {
		return false
	}
	return s.buffExpiry[b] > now
}

// Invulnerable reports whether damage is currently a no-op.
func (s *State) Invulnerable(now float64) bool {
	return s.BuffActive(BuffShield, now) || s.BuffActive(BuffImmortal, now)
}

// ScoreMultiplier returns the active score multiplier.
func (s *State) ScoreMultiplier(now float64) float64 {
	if s.BuffActive(BuffScoreBoost, now) {
		return s.cfg.PowerUps.ScoreMultiplier
	}
	return 1
}

// EffectiveSpeed returns the world scroll speed with buffs applied.
func (s *State) EffectiveSpeed(now float64) float64 {
	if s.Status != StatusPlaying {
		return 0
	}
	speed := s.BaseSpeed
	if s.BuffActive(BuffSlowMotion, now) {
		speed *= s.cfg.PowerUps.SlowFactor
	}
	return speed
}

// AddDistance advances the cumulative distance counter.
func (s *State) AddDistance(d float64) {
	s.Distance += d
}

// AddSpeed raises the base speed, clamped so the endless ramp never
// exceeds the multiplicative cap of the starting base speed.
func (s *State) AddSpeed(delta float64) {
	s.BaseSpeed += delta
	limit := s.startBaseSpeed * s.cfg.Pacing.RampCap
	if s.BaseSpeed > limit {
		s.BaseSpeed = limit
	}
}

// CollectGem adds a gem's value to the score (multiplier applied) and the
// gem wallet.
func (s *State) CollectGem(value int, now float64) {
	s.Score += int(float64(value) * s.ScoreMultiplier(now))
	s.Gems += value
}

// CollectLetter marks a target index collected. Duplicate collection is a
// no-op; score and speed side effects occur only on the first call.
// Returns true if the index was newly collected.
func (s *State) CollectLetter(index int, now float64) bool {
	if index < 0 || index >= WordLength {
		return false
	}
	if s.Letters[index] {
		return false
	}
	s.Letters[index] = true
	s.Score += int(float64(s.cfg.Scoring.LetterValue) * s.ScoreMultiplier(now))
	s.BaseSpeed += s.cfg.Scoring.LetterSpeedBonus * s.startBaseSpeed
	return true
}

// WordComplete reports whether all letters of the level word are collected.
func (s *State) WordComplete() bool {
	return len(s.Letters) >= WordLength
}

// UncollectedLetters returns the target indices still missing, in order.
func (s *State) UncollectedLetters() []int {
	missing := make([]int, 0, WordLength)
	for i := 0; i < WordLength; i++ {
		if !s.Letters[i] {
			missing = append(missing, i)
		}
	}
	return missing
}

// TakeDamage applies one hit. A no-op while invulnerable. Losing the last
// life transitions directly to GameOver with zero speed so the count
// never goes negative. Returns true if damage was applied.
func (s *State) TakeDamage(now float64) bool {
	if s.Status != StatusPlaying {
		return false
	}
	if s.Invulnerable(now) {
		return false
	}
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.Status = StatusGameOver
		s.BaseSpeed = 0
	}
	return true
}

// AddLife heals one life, never exceeding maxLives.
// Returns false if already full.
func (s *State) AddLife() bool {
	if s.Lives >= s.MaxLives {
		return false
	}
	s.Lives++
	return true
}

// SpendGems deducts a cost from the wallet.
// Returns false on insufficient funds.
func (s *State) SpendGems(cost int) bool {
	if cost < 0 || s.Gems < cost {
		return false
	}
	s.Gems -= cost
	return true
}

// OpenShop transitions Playing → Shop. Any other status is unchanged.
func (s *State) OpenShop() {
	if s.Status == StatusPlaying {
		s.Status = StatusShop
	}
}

// CloseShop transitions Shop → Playing.
func (s *State) CloseShop() {
	if s.Status == StatusShop {
		s.Status = StatusPlaying
	}
}

// AdvanceLevel begins the next story level: bumps the level, applies the
// level-up speed jump, and clears the letter set for the new word.
func (s *State) AdvanceLevel() {
	s.Level++
	s.BaseSpeed += s.cfg.Pacing.LevelSpeedJump
	s.Letters = make(map[int]bool, WordLength)
}

// Win marks the story campaign complete. Terminal until EnterEndless.
func (s *State) Win() {
	if s.Status == StatusPlaying {
		s.Status = StatusVictory
	}
}

// EnterEndless continues a won run in endless mode. The ramp cap is
// re-anchored to the current base speed.
func (s *State) EnterEndless() {
	s.Mode = ModeEndless
	s.Status = StatusPlaying
	s.startBaseSpeed = s.BaseSpeed
	s.Letters = make(map[int]bool, WordLength)
}

// ExpandLanes widens the track by two lanes (one per side), up to the
// configured maximum. Returns false when already at the cap.
func (s *State) ExpandLanes() bool {
	if s.LaneCount >= s.cfg.Track.MaxLaneCount {
		return false
	}
	s.LaneCount += 2
	return true
}
