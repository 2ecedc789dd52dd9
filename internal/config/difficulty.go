package config

import "math"

// DifficultyManager calculates dynamic spawn parameters based on distance
// traveled. Presets shift the starting point; progression interpolates
// toward the maximum scaling over a run.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) at the given
// cumulative distance.
func (d *DifficultyManager) Level(distance float64) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := distance / maxAt
	level := d.initialLevel + (1.0-d.initialLevel)*progress
	return clampF(level, 0.0, 1.0)
}

// AdjustOdds returns a copy of the odds scaled for the given distance:
// denser obstacles, more frequent alien squads, fewer skipped spawns.
func (d *DifficultyManager) AdjustOdds(odds SpawnOdds, distance float64) SpawnOdds {
	level := d.Level(distance)
	odds.ObstacleChance = clampF(odds.ObstacleChance+level*d.cfg.Scaling.ObstacleBoost, 0, 1)
	odds.AlienChance = clampF(odds.AlienChance+level*d.cfg.Scaling.AlienBoost, 0, 1)
	odds.SkipChance = clampF(odds.SkipChance-level*d.cfg.Scaling.SkipReduction, 0, 1)
	return odds
}

func clampF(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
