// Package runner implements a 3D lane-runner arcade game: the player
// strides along parallel lanes dodging spikes, alien squads and homing
// missiles while collecting gems, power-ups and the letters of a target
// word. Three letter levels win the story campaign; endless mode then
// continues with a gentle speed ramp.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Game implements the runner game logic. A single Step is strictly
// ordered: intents → player physics → motion & interaction pass → spawn
// planner → pacing controller. Everything runs synchronously inside one
// tick; the entity registry is never touched concurrently.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	state  *State
	player *Player
	reg    *Registry
	pacer  *Pacer

	now    float64 // Simulation clock, seconds
	tick   uint64
	paused bool

	startMode  Mode
	shopCursor int
	events     []core.Event

	// Set when a letter completes the level word mid-pass; the
	// transition is resolved between passes so the registry is never
	// rebuilt while the motion pass is iterating it.
	wordComplete bool
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a story-mode game instance.
func New() *Game {
	return &Game{startMode: ModeStory}
}

// NewEndless creates a game that starts directly in endless mode.
func NewEndless() *Game {
	return &Game{startMode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.startMode == ModeEndless {
		return "runner_endless"
	}
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.startMode == ModeEndless {
		return "Lane Runner (Endless)"
	}
	return "Lane Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.state = NewState(&g.cfg)
	g.player = NewPlayer(&g.cfg)
	g.reg = NewRegistry()
	g.pacer = NewPacer(&g.cfg.Pacing)

	g.now = 0
	g.tick = 0
	g.paused = false
	g.shopCursor = 0
	g.events = nil

	if g.startMode == ModeEndless {
		g.state.Mode = ModeEndless
		g.pacer.EnterEndless(0)
	}
}

// Step advances the game by the elapsed time since the last tick.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.events = g.events[:0]
	dt = core.ClampF(dt, 0, core.MaxStepSeconds)

	switch g.state.Status {
	case StatusGameOver:
		// Terminal until the platform restarts the game.
		return g.result()
	case StatusVictory:
		if in.Has(core.ActionConfirm) {
			g.enterEndless()
		}
		return g.result()
	case StatusShop:
		g.stepShop(in)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	g.now += dt

	g.handleIntents(in)
	g.player.Update(dt)

	g.state.AddDistance(g.state.EffectiveSpeed(g.now) * dt)
	g.motionPass(dt)
	g.resolveWordComplete()
	if g.state.Status == StatusPlaying {
		g.spawnPass()
		g.pacingPass()
	}

	return g.result()
}

// handleIntents translates discrete player intents into movement.
func (g *Game) handleIntents(in core.InputFrame) {
	reversed := g.state.BuffActive(BuffReverse, g.now)
	if in.Has(core.ActionMoveLeft) {
		g.player.MoveLane(-1, g.state.LaneCount, reversed)
	}
	if in.Has(core.ActionMoveRight) {
		g.player.MoveLane(1, g.state.LaneCount, reversed)
	}
	if in.Has(core.ActionJump) {
		g.player.Jump(g.state.OwnsDoubleJump)
	}
	if in.Has(core.ActionSkill) {
		g.activateSkill()
	}
}

// activateSkill triggers the timed immortality ability, gated on
// ownership and on not already being active.
func (g *Game) activateSkill() {
	if !g.state.OwnsImmortality {
		return
	}
	if g.state.BuffActive(BuffImmortal, g.now) {
		return
	}
	g.state.ActivateBuff(BuffImmortal, g.now, g.cfg.PowerUps.DurationSkill)
}

// stepShop handles shop navigation and purchases.
func (g *Game) stepShop(in core.InputFrame) {
	items := Catalog(g.state)
	if in.Has(core.ActionUp) && g.shopCursor > 0 {
		g.shopCursor--
	}
	if in.Has(core.ActionDown) && g.shopCursor < len(items)-1 {
		g.shopCursor++
	}
	if in.Has(core.ActionConfirm) {
		// Soft failure: an unaffordable or capped item is simply ignored.
		Purchase(g.state, items[g.shopCursor].ID)
	}
	if in.Has(core.ActionBack) {
		g.state.CloseShop()
	}
}

// pacingPass applies the endless speed ramp increments that have come due.
func (g *Game) pacingPass() {
	if g.state.Mode != ModeEndless {
		return
	}
	for g.pacer.RampDue(g.state.Distance) {
		g.state.AddSpeed(g.cfg.Pacing.RampIncrement)
		g.pacer.RampApplied()
	}
}

// checkWordComplete runs after a newly collected letter and marks the
// pending transition; the work happens in resolveWordComplete.
func (g *Game) checkWordComplete() {
	if g.state.WordComplete() {
		g.wordComplete = true
	}
}

// resolveWordComplete fires exactly one transition per completed word.
// Levels below the final one advance; the final level wins. Never both,
// never twice.
func (g *Game) resolveWordComplete() {
	if !g.wordComplete {
		return
	}
	g.wordComplete = false
	// The completing letter and a fatal hit can land in the same motion
	// pass; a dead run must stay terminal with zero speed.
	if g.state.Status != StatusPlaying || !g.state.WordComplete() {
		return
	}
	if g.state.Level >= FinalLevel {
		g.state.Win()
		return
	}
	g.advanceLevel()
}

// advanceLevel transitions to the next story level: purge deep off-screen
// entities, offer a shop portal far ahead, and stretch the letter
// schedule to the new level's interval.
func (g *Game) advanceLevel() {
	g.state.AdvanceLevel()
	g.pacer.OnLevelUp()

	depth := -g.cfg.Pacing.PurgeDepth
	g.reg.Rebuild(func(e *Entity) bool {
		return e.Active && e.Pos.Z > depth
	})
	g.spawnPortal(-g.cfg.Pacing.LevelPortalAhead)
}

// enterEndless continues a won story run in endless mode.
func (g *Game) enterEndless() {
	g.state.EnterEndless()
	g.pacer.EnterEndless(g.state.Distance)
	g.reg.Clear()
	g.player.Reset()
}

// emit queues an outbound event for this tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Status == StatusGameOver,
		Paused:   g.paused,
	}
}

// LoadProfile seeds the persistent player profile into a fresh run.
func (g *Game) LoadProfile(gems int, doubleJump, immortality bool, laneCount int) {
	if g.state == nil {
		return
	}
	g.state.Gems = gems
	g.state.OwnsDoubleJump = doubleJump
	g.state.OwnsImmortality = immortality
	if laneCount >= g.cfg.Track.LaneCount && laneCount <= g.cfg.Track.MaxLaneCount {
		g.state.LaneCount = laneCount
	}
}

// Profile returns the persistent part of the player state.
func (g *Game) Profile() (gems int, doubleJump, immortality bool, laneCount int) {
	if g.state == nil {
		return 0, false, false, 0
	}
	return g.state.Gems, g.state.OwnsDoubleJump, g.state.OwnsImmortality, g.state.LaneCount
}

// RunStats reports the outcome of the current run.
func (g *Game) RunStats() (mode string, distance float64, level, gems int) {
	if g.state == nil {
		return "", 0, 0, 0
	}
	mode = "story"
	if g.state.Mode == ModeEndless {
		mode = "endless"
	}
	return mode, g.state.Distance, g.state.Level, g.state.Gems
}

// Register the game variants with the registry.
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
	registry.Register("runner_endless", func() registry.Game {
		return NewEndless()
	})
}
