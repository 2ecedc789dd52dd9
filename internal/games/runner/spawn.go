package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// spawnPass runs after the motion pass. It measures the gap to the
// farthest-ahead entity (projectiles excluded) and, if the spawn horizon
// is clear, walks the spawn decision tree once. Probabilities differ
// between story and endless mode; the difficulty preset scales them.
func (g *Game) spawnPass() {
	track := &g.cfg.Track
	horizon := -track.SpawnHorizon

	minZ, ok := g.reg.MinAheadZ()
	if ok && minZ <= horizon {
		// The farthest entity is at or beyond the horizon already.
		return
	}
	if !ok {
		minZ = 0
	}

	// Speed-scaled minimum gap, capped, never closer than the horizon.
	speed := g.state.EffectiveSpeed(g.now)
	gap := core.ClampF(speed*g.cfg.Spawn.GapSpeedScale, g.cfg.Spawn.MinGap, g.cfg.Spawn.MaxGap)
	z := math.Min(minZ-gap, horizon)

	odds := g.cfg.Spawn.Story
	if g.state.Mode == ModeEndless {
		odds = g.cfg.Spawn.Endless
	}
	odds = g.difficulty.AdjustOdds(odds, g.state.Distance)

	// 1. Portal offer: endless only, distance-scheduled, one at a time.
	if g.state.Mode == ModeEndless && g.pacer.PortalDue(g.state.Distance) {
		g.spawnPortal(z)
		g.pacer.PortalIssued(g.state.Distance)
		return
	}

	// 2. Mandatory letter on schedule in story mode; plain gem fallback
	// once the word is complete.
	if g.state.Mode == ModeStory && g.pacer.LetterDue(g.state.Distance) {
		missing := g.state.UncollectedLetters()
		if len(missing) > 0 {
			idx := missing[g.rng.Intn(len(missing))]
			g.spawnLetter(z, idx)
		} else {
			g.spawnGem(z, g.randomLaneX(), g.cfg.Scoring.GemValue)
		}
		g.pacer.LetterSpawned(g.state.Distance)
		return
	}

	// 3. Irregular rhythm: sometimes nothing spawns.
	if g.rng.Float64() < odds.SkipChance {
		return
	}

	// 4. Power-up.
	if g.rng.Float64() < odds.PowerUpChance {
		g.spawnPowerUp(z)
		return
	}

	// 5. Obstacle branch vs plain gem.
	if g.rng.Float64() < odds.ObstacleChance {
		if g.state.Level >= g.cfg.Spawn.AlienMinLevel && g.rng.Float64() < odds.AlienChance {
			g.spawnAlienSquad(z)
		} else {
			g.spawnSpikeCluster(z)
		}
		return
	}
	g.spawnGem(z, g.randomLaneX(), g.cfg.Scoring.GemValue)
}

// laneDraw returns up to n distinct lane X positions, shuffled.
func (g *Game) laneDraw(n int) []float64 {
	offsets := core.LaneOffsets(g.state.LaneCount, g.cfg.Track.LaneWidth)
	perm := g.rng.Perm(len(offsets))
	if n > len(offsets) {
		n = len(offsets)
	}
	lanes := make([]float64, n)
	for i := 0; i < n; i++ {
		lanes[i] = offsets[perm[i]]
	}
	return lanes
}

// randomLaneX returns one uniformly chosen valid lane X position.
func (g *Game) randomLaneX() float64 {
	return g.laneDraw(1)[0]
}

func (g *Game) spawnPortal(z float64) {
	// Portals span the track; the lane position is visual only.
	g.reg.Append(&Entity{
		Kind: KindShopPortal,
		Pos:  core.Vec3{X: 0, Y: 0, Z: z},
	})
}

func (g *Game) spawnLetter(z float64, index int) {
	g.reg.Append(&Entity{
		Kind:        KindLetter,
		Pos:         core.Vec3{X: g.randomLaneX(), Y: 1.2, Z: z},
		LetterIndex: index,
	})
}

func (g *Game) spawnGem(z, x float64, value int) {
	g.reg.Append(&Entity{
		Kind:  KindGem,
		Pos:   core.Vec3{X: x, Y: 1.0, Z: z},
		Value: value,
	})
}

// spawnPowerUp rolls the weighted discrete distribution over the six
// power-up subtypes.
func (g *Game) spawnPowerUp(z float64) {
	pu := &g.cfg.PowerUps
	weights := [powerCount]int{
		PowerShield:     pu.WeightShield,
		PowerMagnet:     pu.WeightMagnet,
		PowerScoreBoost: pu.WeightScoreBoost,
		PowerSlowMotion: pu.WeightSlowMotion,
		PowerHeart:      pu.WeightHeart,
		PowerReverse:    pu.WeightReverse,
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	kind := PowerShield
	if total > 0 {
		roll := g.rng.Intn(total)
		cumulative := 0
		for p, w := range weights {
			cumulative += w
			if roll < cumulative {
				kind = PowerKind(p)
				break
			}
		}
	}
	g.reg.Append(&Entity{
		Kind:  KindPowerUp,
		Pos:   core.Vec3{X: g.randomLaneX(), Y: 1.0, Z: z},
		Power: kind,
	})
}

// spawnSpikeCluster places 1..3 ground spikes across distinct lanes,
// weighted toward singles, each with an independent chance of a bonus gem
// perched on top.
func (g *Game) spawnSpikeCluster(z float64) {
	count := g.weightedClusterSize()
	for _, x := range g.laneDraw(count) {
		g.reg.Append(&Entity{
			Kind: KindObstacle,
			Pos:  core.Vec3{X: x, Y: 0, Z: z},
		})
		if g.rng.Float64() < g.cfg.Spawn.BonusGemChance {
			g.reg.Append(&Entity{
				Kind:  KindGem,
				Pos:   core.Vec3{X: x, Y: g.cfg.Track.ObstacleHeight + 1.0, Z: z},
				Value: g.cfg.Scoring.BonusGemValue,
			})
		}
	}
}

// spawnAlienSquad places 2..3 aliens across distinct lanes.
func (g *Game) spawnAlienSquad(z float64) {
	count := 2
	if g.rng.Float64() < 0.3 {
		count = 3
	}
	for _, x := range g.laneDraw(count) {
		g.reg.Append(&Entity{
			Kind: KindAlien,
			Pos:  core.Vec3{X: x, Y: 1.4, Z: z},
		})
	}
}

// weightedClusterSize rolls the configured weights for 1..N spikes.
func (g *Game) weightedClusterSize() int {
	weights := g.cfg.Spawn.ClusterWeights
	if len(weights) == 0 {
		return 1
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 1
	}
	roll := g.rng.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i + 1
		}
	}
	return 1
}
