package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestSpawnAtHorizonWhenTrackEmpty(t *testing.T) {
	g := newTestGame(7)
	g.reg.Clear()

	// The tree may roll an explicit skip; retry until something spawns
	for i := 0; i < 50 && g.reg.Len() == 0; i++ {
		g.spawnPass()
	}
	if g.reg.Len() == 0 {
		t.Fatal("Empty track never produced a spawn in 50 opportunities")
	}
	horizon := -g.cfg.Track.SpawnHorizon
	for _, e := range g.reg.All() {
		if e.Pos.Z > horizon+1e-9 {
			t.Errorf("Entity spawned at Z = %f, expected at or beyond the horizon %f", e.Pos.Z, horizon)
		}
	}
}

func TestSpawnGatedWhileHorizonOccupied(t *testing.T) {
	g := newTestGame(7)
	g.reg.Clear()
	g.reg.Append(&Entity{Kind: KindObstacle, Pos: core.Vec3{X: 0, Y: 0, Z: -g.cfg.Track.SpawnHorizon}})

	before := g.reg.Len()
	for i := 0; i < 20; i++ {
		g.spawnPass()
	}
	if g.reg.Len() != before {
		t.Errorf("Entities = %d, expected %d: spawned while the horizon slot was occupied", g.reg.Len(), before)
	}
}

func TestMissilesExcludedFromGapAccounting(t *testing.T) {
	g := newTestGame(7)
	g.reg.Clear()

	// A projectile parked beyond the horizon must not block spawning
	g.reg.Append(&Entity{Kind: KindMissile, Pos: core.Vec3{X: 0, Y: 1.7, Z: -125}})

	for i := 0; i < 50 && g.reg.Len() == 1; i++ {
		g.spawnPass()
	}
	if g.reg.Len() == 1 {
		t.Error("Missile should not count toward the spawn gap")
	}
}

func TestLetterSpawnsOnSchedule(t *testing.T) {
	g := newTestGame(7)
	g.reg.Clear()
	g.state.Distance = g.cfg.Pacing.LetterInterval

	g.spawnPass()

	if countKind(g, KindLetter) != 1 {
		t.Fatalf("Letters = %d when the schedule fired, expected 1", countKind(g, KindLetter))
	}
	for _, e := range g.reg.All() {
		if e.Kind == KindLetter {
			if e.LetterIndex < 0 || e.LetterIndex >= WordLength {
				t.Errorf("LetterIndex = %d, expected within [0, %d)", e.LetterIndex, WordLength)
			}
		}
	}

	// The schedule advanced: the next pass spawns something else
	g.reg.Clear()
	g.spawnPass()
	if countKind(g, KindLetter) != 0 {
		t.Error("A second letter spawned before the next interval")
	}
}

func TestLetterTargetsOnlyMissingIndices(t *testing.T) {
	g := newTestGame(7)

	// All but index 4 collected
	for i := 0; i < WordLength; i++ {
		if i != 4 {
			g.state.CollectLetter(i, 0)
		}
	}

	for trial := 0; trial < 20; trial++ {
		g.reg.Clear()
		g.state.Distance += g.cfg.Pacing.LetterInterval
		g.spawnPass()
		for _, e := range g.reg.All() {
			if e.Kind == KindLetter && e.LetterIndex != 4 {
				t.Fatalf("Spawned letter index %d, but only 4 is missing", e.LetterIndex)
			}
		}
	}
}

func TestLetterFallbackWhenWordComplete(t *testing.T) {
	g := newTestGame(7)
	for i := 0; i < WordLength; i++ {
		g.state.Letters[i] = true
	}
	g.reg.Clear()
	g.state.Distance = g.cfg.Pacing.LetterInterval

	g.spawnPass()

	if countKind(g, KindLetter) != 0 {
		t.Error("No letter should spawn once the word is complete")
	}
	if countKind(g, KindGem) != 1 {
		t.Errorf("Gems = %d, expected the gem fallback", countKind(g, KindGem))
	}
}

func TestNoLettersInEndless(t *testing.T) {
	g := NewEndless()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	for trial := 0; trial < 200; trial++ {
		g.reg.Clear()
		g.state.Distance += 50
		g.spawnPass()
		if countKind(g, KindLetter) != 0 {
			t.Fatal("Endless mode must never spawn letters")
		}
	}
}

func TestPortalOfferInEndless(t *testing.T) {
	g := NewEndless()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	g.reg.Clear()
	g.state.Distance = g.cfg.Pacing.PortalInterval

	g.spawnPass()

	if countKind(g, KindShopPortal) != 1 {
		t.Fatalf("Portals = %d when the offer was due, expected 1", countKind(g, KindShopPortal))
	}

	// Not re-offered until another interval passes
	g.reg.Clear()
	g.spawnPass()
	if countKind(g, KindShopPortal) != 0 {
		t.Error("Portal re-offered before the next interval")
	}
}

func TestNoAlienSquadsBeforeMinLevel(t *testing.T) {
	g := newTestGame(3)

	for trial := 0; trial < 300; trial++ {
		g.reg.Clear()
		g.spawnPass()
		if countKind(g, KindAlien) != 0 {
			t.Fatalf("Alien squad spawned at level %d, minimum is %d", g.state.Level, g.cfg.Spawn.AlienMinLevel)
		}
	}
}

func TestAlienSquadsFromMinLevel(t *testing.T) {
	g := newTestGame(3)
	g.state.Level = g.cfg.Spawn.AlienMinLevel

	seen := false
	for trial := 0; trial < 500 && !seen; trial++ {
		g.reg.Clear()
		g.spawnPass()
		if n := countKind(g, KindAlien); n > 0 {
			seen = true
			if n < 2 || n > 3 {
				t.Errorf("Alien squad size = %d, expected 2 or 3", n)
			}
		}
	}
	if !seen {
		t.Error("No alien squad in 500 spawn opportunities at the minimum level")
	}
}

func TestSpikeClusterDistinctLanes(t *testing.T) {
	g := newTestGame(11)

	for trial := 0; trial < 100; trial++ {
		g.reg.Clear()
		g.spawnSpikeCluster(-120)

		lanes := map[float64]bool{}
		spikes := 0
		for _, e := range g.reg.All() {
			if e.Kind != KindObstacle {
				continue
			}
			spikes++
			if lanes[e.Pos.X] {
				t.Fatalf("Two spikes in the same lane X = %f", e.Pos.X)
			}
			lanes[e.Pos.X] = true
		}
		if spikes < 1 || spikes > len(g.cfg.Spawn.ClusterWeights) {
			t.Fatalf("Cluster size = %d, expected 1..%d", spikes, len(g.cfg.Spawn.ClusterWeights))
		}
	}
}

func TestBonusGemsSitAtopSpikes(t *testing.T) {
	g := newTestGame(11)

	found := false
	for trial := 0; trial < 200 && !found; trial++ {
		g.reg.Clear()
		g.spawnSpikeCluster(-120)
		for _, e := range g.reg.All() {
			if e.Kind == KindGem {
				found = true
				if e.Value != g.cfg.Scoring.BonusGemValue {
					t.Errorf("Bonus gem value = %d, expected %d", e.Value, g.cfg.Scoring.BonusGemValue)
				}
				if e.Pos.Y <= g.cfg.Track.ObstacleHeight {
					t.Errorf("Bonus gem at Y = %f, expected above the spike", e.Pos.Y)
				}
			}
		}
	}
	if !found {
		t.Error("No bonus gem in 200 cluster spawns")
	}
}

func TestLaneDrawRespectsTrackWidth(t *testing.T) {
	g := newTestGame(5)

	offsets := core.LaneOffsets(g.state.LaneCount, g.cfg.Track.LaneWidth)
	valid := map[float64]bool{}
	for _, x := range offsets {
		valid[x] = true
	}

	for trial := 0; trial < 50; trial++ {
		for _, x := range g.laneDraw(3) {
			if !valid[x] {
				t.Fatalf("laneDraw produced X = %f outside the track", x)
			}
		}
	}
}
