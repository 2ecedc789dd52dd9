// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

// RunnerConfig contains all tuning for the lane runner.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Track      TrackConfig      `yaml:"track"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Shop       ShopConfig       `yaml:"shop"`
	Lives      LivesConfig      `yaml:"lives"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines player movement parameters.
type PhysicsConfig struct {
	BaseSpeed       float64 `yaml:"base_speed"`        // World scroll speed at level 1
	Gravity         float64 `yaml:"gravity"`           // Downward acceleration, units/s²
	JumpImpulse     float64 `yaml:"jump_impulse"`      // Upward velocity on jump
	LaneChangeSpeed float64 `yaml:"lane_change_speed"` // Lateral lerp speed, units/s
	PlayerHeight    float64 `yaml:"player_height"`     // Body extent above the feet
}

// TrackConfig defines the world geometry and interaction distances.
type TrackConfig struct {
	LaneCount        int     `yaml:"lane_count"`         // Starting lane count (odd)
	MaxLaneCount     int     `yaml:"max_lane_count"`     // Cap after shop upgrades
	LaneWidth        float64 `yaml:"lane_width"`         // World units between lanes
	SpawnHorizon     float64 `yaml:"spawn_horizon"`      // Distance ahead where entities appear
	RemovalThreshold float64 `yaml:"removal_threshold"`  // Distance behind the player before purge
	SweptTolerance   float64 `yaml:"swept_tolerance"`    // Longitudinal collision band (±)
	DamageLateral    float64 `yaml:"damage_lateral"`     // Lateral tolerance for damage sources
	PickupLateral    float64 `yaml:"pickup_lateral"`     // Lateral tolerance for pickups
	MagnetLateral    float64 `yaml:"magnet_lateral"`     // Pickup tolerance while magnet is active
	MagnetRange      float64 `yaml:"magnet_range"`       // Longitudinal reach of the magnet
	MagnetPull       float64 `yaml:"magnet_pull"`        // Lateral pull speed, units/s
	MissileExtra     float64 `yaml:"missile_extra"`      // Extra speed for missiles over world speed
	AlienFireRange   float64 `yaml:"alien_fire_range"`   // Distance at which an alien fires once
	PortalRange      float64 `yaml:"portal_range"`       // Longitudinal trigger distance for portals
	PickupVertical   float64 `yaml:"pickup_vertical"`    // Generous vertical tolerance for pickups
	ObstacleHeight   float64 `yaml:"obstacle_height"`    // Ground spikes occupy 0..height
	MissileBandLow   float64 `yaml:"missile_band_low"`   // Missile vertical band
	MissileBandHigh  float64 `yaml:"missile_band_high"`
	DefaultBand      float64 `yaml:"default_band"` // Half-extent around spawn height for other kinds
}

// SpawnOdds are the per-mode probabilities of the spawn decision tree.
type SpawnOdds struct {
	SkipChance     float64 `yaml:"skip_chance"`     // No spawn this opportunity
	PowerUpChance  float64 `yaml:"powerup_chance"`  // Otherwise, spawn a power-up
	ObstacleChance float64 `yaml:"obstacle_chance"` // Otherwise, obstacle vs plain gem
	AlienChance    float64 `yaml:"alien_chance"`    // Within obstacles, alien squad vs spikes
}

// SpawnConfig defines spawn geometry and mode probabilities.
type SpawnConfig struct {
	MinGap         float64   `yaml:"min_gap"`          // Floor of the speed-scaled gap
	MaxGap         float64   `yaml:"max_gap"`          // Cap of the speed-scaled gap
	GapSpeedScale  float64   `yaml:"gap_speed_scale"`  // Gap = clamp(speed*scale, min, max)
	BonusGemChance float64   `yaml:"bonus_gem_chance"` // Gem placed atop a ground obstacle
	AlienMinLevel  int       `yaml:"alien_min_level"`  // Alien squads appear from this level
	ClusterWeights []int     `yaml:"cluster_weights"`  // Weights for 1..N simultaneous spikes
	Story          SpawnOdds `yaml:"story"`
	Endless        SpawnOdds `yaml:"endless"`
}

// PowerUpConfig defines the weighted power-up distribution and durations.
type PowerUpConfig struct {
	WeightShield     int `yaml:"weight_shield"`
	WeightMagnet     int `yaml:"weight_magnet"`
	WeightScoreBoost int `yaml:"weight_score_boost"`
	WeightSlowMotion int `yaml:"weight_slow_motion"`
	WeightHeart      int `yaml:"weight_heart"`
	WeightReverse    int `yaml:"weight_reverse"`

	// Durations in seconds of simulation time
	DurationShield     float64 `yaml:"duration_shield"`
	DurationMagnet     float64 `yaml:"duration_magnet"`
	DurationScoreBoost float64 `yaml:"duration_score_boost"`
	DurationSlowMotion float64 `yaml:"duration_slow_motion"`
	DurationReverse    float64 `yaml:"duration_reverse"`
	DurationSkill      float64 `yaml:"duration_skill"` // Activated immortality

	ScoreMultiplier float64 `yaml:"score_multiplier"` // While score boost active
	SlowFactor      float64 `yaml:"slow_factor"`      // World speed factor while slowed
}

// PacingConfig defines the distance-based schedules.
type PacingConfig struct {
	LetterInterval   float64 `yaml:"letter_interval"`    // Level-1 distance between letters
	LetterScale      float64 `yaml:"letter_scale"`       // Interval multiplier per level
	PortalInterval   float64 `yaml:"portal_interval"`    // Endless shop-portal offer cadence
	RampInterval     float64 `yaml:"ramp_interval"`      // Endless speed ramp cadence
	RampIncrement    float64 `yaml:"ramp_increment"`     // Speed added per ramp
	RampCap          float64 `yaml:"ramp_cap"`           // Multiplicative cap of starting base speed
	LevelSpeedJump   float64 `yaml:"level_speed_jump"`   // Base speed added on level-up
	PurgeDepth       float64 `yaml:"purge_depth"`        // Level-up purge distance ahead
	LevelPortalAhead float64 `yaml:"level_portal_ahead"` // Shop portal distance on level-up
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	GemValue         int     `yaml:"gem_value"`
	BonusGemValue    int     `yaml:"bonus_gem_value"` // Gems placed atop obstacles
	LetterValue      int     `yaml:"letter_value"`
	LetterSpeedBonus float64 `yaml:"letter_speed_bonus"` // Fraction of starting base speed
}

// ShopConfig defines gem prices for upgrades.
type ShopConfig struct {
	HeartCost       int `yaml:"heart_cost"`
	DoubleJumpCost  int `yaml:"double_jump_cost"`
	ImmortalityCost int `yaml:"immortality_cost"`
	WideTrackCost   int `yaml:"wide_track_cost"`
}

// LivesConfig defines life limits.
type LivesConfig struct {
	Start int `yaml:"start"`
	Max   int `yaml:"max"` // Hard cap, never exceeded by purchases
}

// DifficultyConfig defines the preset-driven density scaling.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance" or "none"
	MaxAt float64 `yaml:"max_at"` // Distance at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	ObstacleBoost float64 `yaml:"obstacle_boost"` // Added to obstacle probability
	AlienBoost    float64 `yaml:"alien_boost"`    // Added to alien-squad probability
	SkipReduction float64 `yaml:"skip_reduction"` // Subtracted from skip probability
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
