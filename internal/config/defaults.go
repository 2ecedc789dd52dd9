package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with defaults/runner.yaml as a fallback if the embed
// ever fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			BaseSpeed:       22.5,
			Gravity:         25.0,
			JumpImpulse:     9.0,
			LaneChangeSpeed: 18.0,
			PlayerHeight:    2.0,
		},
		Track: TrackConfig{
			LaneCount:        3,
			MaxLaneCount:     5,
			LaneWidth:        4.0,
			SpawnHorizon:     120.0,
			RemovalThreshold: 20.0,
			SweptTolerance:   2.0,
			DamageLateral:    0.9,
			PickupLateral:    2.0,
			MagnetLateral:    3.6,
			MagnetRange:      28.0,
			MagnetPull:       9.0,
			MissileExtra:     25.0,
			AlienFireRange:   45.0,
			PortalRange:      3.0,
			PickupVertical:   2.5,
			ObstacleHeight:   1.8,
			MissileBandLow:   1.0,
			MissileBandHigh:  2.4,
			DefaultBand:      1.2,
		},
		Spawn: SpawnConfig{
			MinGap:         12.0,
			MaxGap:         35.0,
			GapSpeedScale:  0.6,
			BonusGemChance: 0.3,
			AlienMinLevel:  2,
			ClusterWeights: []int{6, 3, 1},
			Story: SpawnOdds{
				SkipChance:     0.2,
				PowerUpChance:  0.08,
				ObstacleChance: 0.6,
				AlienChance:    0.25,
			},
			Endless: SpawnOdds{
				SkipChance:     0.15,
				PowerUpChance:  0.1,
				ObstacleChance: 0.75,
				AlienChance:    0.35,
			},
		},
		PowerUps: PowerUpConfig{
			WeightShield:       20,
			WeightMagnet:       20,
			WeightScoreBoost:   20,
			WeightSlowMotion:   15,
			WeightHeart:        10,
			WeightReverse:      15,
			DurationShield:     10.0,
			DurationMagnet:     12.0,
			DurationScoreBoost: 10.0,
			DurationSlowMotion: 6.0,
			DurationReverse:    8.0,
			DurationSkill:      5.0,
			ScoreMultiplier:    2.0,
			SlowFactor:         0.6,
		},
		Pacing: PacingConfig{
			LetterInterval:   320.0,
			LetterScale:      1.5,
			PortalInterval:   1000.0,
			RampInterval:     150.0,
			RampIncrement:    0.75,
			RampCap:          2.0,
			LevelSpeedJump:   3.0,
			PurgeDepth:       60.0,
			LevelPortalAhead: 100.0,
		},
		Scoring: ScoringConfig{
			GemValue:         10,
			BonusGemValue:    30,
			LetterValue:      150,
			LetterSpeedBonus: 0.1,
		},
		Shop: ShopConfig{
			HeartCost:       500,
			DoubleJumpCost:  1000,
			ImmortalityCost: 1500,
			WideTrackCost:   2000,
		},
		Lives: LivesConfig{
			Start: 6,
			Max:   6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 4000.0,
			},
			Scaling: ScalingConfig{
				ObstacleBoost: 0.15,
				AlienBoost:    0.1,
				SkipReduction: 0.1,
			},
		},
	}
}
