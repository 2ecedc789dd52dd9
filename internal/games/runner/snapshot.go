package runner

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Now        float64
	Status     Status
	Mode       Mode
	Score      int
	Lives      int
	MaxLives   int
	BaseSpeed  float64
	Level      int
	LaneCount  int
	Gems       int
	Distance   float64
	Letters    int // Collected letters of the current word
	Entities   int
	PlayerLane int
	PlayerX    float64
	PlayerY    float64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return Snapshot{
		Tick:       g.tick,
		Now:        g.now,
		Status:     g.state.Status,
		Mode:       g.state.Mode,
		Score:      g.state.Score,
		Lives:      g.state.Lives,
		MaxLives:   g.state.MaxLives,
		BaseSpeed:  g.state.BaseSpeed,
		Level:      g.state.Level,
		LaneCount:  g.state.LaneCount,
		Gems:       g.state.Gems,
		Distance:   g.state.Distance,
		Letters:    len(g.state.Letters),
		Entities:   g.reg.Len(),
		PlayerLane: g.player.Lane,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
	}
}
