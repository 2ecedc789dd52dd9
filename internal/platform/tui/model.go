package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// ProfileCarrier is implemented by games whose progress (currency,
// bought abilities) survives across runs. The model loads the profile
// into the game on start and writes it back when a run ends.
type ProfileCarrier interface {
	LoadProfile(gems int, doubleJump, immortality bool, laneCount int)
	Profile() (gems int, doubleJump, immortality bool, laneCount int)
}

// RunReporter is implemented by games that expose per-run statistics
// beyond the raw score.
type RunReporter interface {
	RunStats() (mode string, distance float64, level, gems int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keymap     *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	runSaved   bool // Whether the finished run has been persisted
	flashTicks int  // Remaining ticks of damage feedback
}

// hitFlashTicks is how long the damage flash stays on screen.
const hitFlashTicks = 6

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)
	loadProfile(game, store)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keymap:     NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		if m.gameState.GameOver && !m.runSaved {
			saveRun(m.game, m.store, m.gameState)
		}
		saveProfile(m.game, m.store)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the time that actually passed
// since the previous tick, clamped inside the game so a stalled
// terminal cannot produce a huge step.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = at.Sub(m.lastTick).Seconds()
	}
	m.lastTick = at

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		saveProfile(m.game, m.store)
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		loadProfile(m.game, m.store)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	for _, ev := range result.Events {
		if _, ok := ev.(core.PlayerHitEvent); ok {
			m.flashTicks = hitFlashTicks
		}
	}
	if m.flashTicks > 0 {
		m.flashTicks--
	}

	// Persist the run once when it ends
	if m.gameState.GameOver && !m.runSaved {
		saveRun(m.game, m.store, m.gameState)
		saveProfile(m.game, m.store)
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// loadProfile pushes the stored profile into the game, if it carries one.
func loadProfile(game registry.Game, store *storage.Store) {
	carrier, ok := game.(ProfileCarrier)
	if !ok || store == nil {
		return
	}
	p, err := store.LoadProfile()
	if err != nil {
		return
	}
	carrier.LoadProfile(p.Gems, p.DoubleJump, p.Immortality, p.LaneCount)
}

// saveProfile writes the game's profile back to storage.
func saveProfile(game registry.Game, store *storage.Store) {
	carrier, ok := game.(ProfileCarrier)
	if !ok || store == nil {
		return
	}
	gems, doubleJump, immortality, laneCount := carrier.Profile()
	//nolint:errcheck // Best-effort save, game continues regardless
	store.SaveProfile(storage.Profile{
		Gems:        gems,
		DoubleJump:  doubleJump,
		Immortality: immortality,
		LaneCount:   laneCount,
	})
}

// saveRun records the finished run and its score.
func saveRun(game registry.Game, store *storage.Store, state core.GameState) {
	if store == nil || state.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	store.SaveScore(game.ID(), state.Score)

	if reporter, ok := game.(RunReporter); ok {
		mode, distance, level, gems := reporter.RunStats()
		//nolint:errcheck // Best-effort save
		store.SaveRun(storage.RunEntry{
			GameID:   game.ID(),
			Mode:     mode,
			Score:    state.Score,
			Distance: distance,
			Level:    level,
			Gems:     gems,
		})
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.flashTicks > 0 {
		drawHitFlash(m.screen)
	}
	return RenderScreen(m.screen)
}

// drawHitFlash marks the top and bottom screen edges red after damage.
func drawHitFlash(s *core.Screen) {
	for x := 0; x < s.Width(); x++ {
		s.SetColor(x, 0, '▔', core.ColorRed)
		s.SetColor(x, s.Height()-1, '▁', core.ColorRed)
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
