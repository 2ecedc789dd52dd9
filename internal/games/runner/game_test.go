package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// scriptedFrame builds a deterministic input for a given tick so the
// determinism test exercises lane changes, jumps and the skill key.
func scriptedFrame(tick int) core.InputFrame {
	var in core.InputFrame
	if tick%37 == 0 {
		in.Set(core.ActionMoveLeft)
	}
	if tick%41 == 0 {
		in.Set(core.ActionMoveRight)
	}
	if tick%53 == 0 {
		in.Set(core.ActionJump)
	}
	if tick%97 == 0 {
		in.Set(core.ActionSkill)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	const seed = 987654321
	const dt = 1.0 / 60.0

	a := newTestGame(seed)
	b := newTestGame(seed)

	for tick := 1; tick <= 600; tick++ {
		in := scriptedFrame(tick)
		a.Step(in, dt)
		b.Step(in, dt)
		if tick%100 == 0 {
			sa, sb := a.Snapshot(), b.Snapshot()
			if sa != sb {
				t.Fatalf("Snapshots diverged at tick %d:\n  a=%+v\n  b=%+v", tick, sa, sb)
			}
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	const dt = 1.0 / 60.0

	a := newTestGame(1)
	b := newTestGame(2)

	for tick := 1; tick <= 600; tick++ {
		a.Step(core.InputFrame{}, dt)
		b.Step(core.InputFrame{}, dt)
	}
	// Clocks and distance march in lockstep, so divergence shows up in
	// the spawned world. Gap lengths are continuous random draws; two
	// seeds producing the same entity layout would mean a shared stream.
	sumZ := func(g *Game) float64 {
		var sum float64
		for _, e := range g.reg.All() {
			sum += e.Pos.Z
		}
		return sum
	}
	if a.reg.Len() == b.reg.Len() && sumZ(a) == sumZ(b) {
		t.Error("Different seeds produced an identical entity layout")
	}
}

func TestStepClampsLargeDt(t *testing.T) {
	g := newTestGame(7)

	g.Step(core.InputFrame{}, 5.0)

	snap := g.Snapshot()
	if snap.Now != core.MaxStepSeconds {
		t.Errorf("Now after dt=5.0 step = %v, want %v", snap.Now, core.MaxStepSeconds)
	}
	wantDist := g.cfg.Physics.BaseSpeed * core.MaxStepSeconds
	if core.AbsF(snap.Distance-wantDist) > 1e-9 {
		t.Errorf("Distance after clamped step = %v, want %v", snap.Distance, wantDist)
	}
}

func TestNegativeDtIgnored(t *testing.T) {
	g := newTestGame(7)

	g.Step(core.InputFrame{}, -1.0)

	snap := g.Snapshot()
	if snap.Now != 0 {
		t.Errorf("Now after negative dt = %v, want 0", snap.Now)
	}
	if snap.Distance != 0 {
		t.Errorf("Distance after negative dt = %v, want 0", snap.Distance)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(7)
	const dt = 1.0 / 60.0

	var pause core.InputFrame
	pause.Set(core.ActionPause)

	res := g.Step(pause, dt)
	if !res.State.Paused {
		t.Fatal("Pause action should pause the game")
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("Tick advanced while pausing, got %d", g.Snapshot().Tick)
	}

	g.Step(core.InputFrame{}, dt)
	if g.Snapshot().Tick != 0 || g.Snapshot().Distance != 0 {
		t.Error("Paused game should not advance")
	}

	res = g.Step(pause, dt)
	if res.State.Paused {
		t.Error("Second pause action should resume")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick after resume = %d, want 1", g.Snapshot().Tick)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	g := newTestGame(7)
	const dt = 1.0 / 60.0

	g.state.Lives = 1
	g.state.TakeDamage(g.now)
	if g.state.Status != StatusGameOver {
		t.Fatalf("Status after last life = %v, want GameOver", g.state.Status)
	}

	before := g.Snapshot()
	var in core.InputFrame
	in.Set(core.ActionMoveLeft)
	in.Set(core.ActionJump)
	res := g.Step(in, dt)

	if !res.State.GameOver {
		t.Error("StepResult should report game over")
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("Game over state changed by Step:\n  before=%+v\n  after=%+v", before, after)
	}
}

func TestVictoryConfirmEntersEndless(t *testing.T) {
	g := newTestGame(7)
	const dt = 1.0 / 60.0

	g.state.Level = FinalLevel
	g.state.Distance = 2500
	for i := 0; i < WordLength; i++ {
		g.state.CollectLetter(i, g.now)
	}
	g.checkWordComplete()
	g.resolveWordComplete()
	if g.state.Status != StatusVictory {
		t.Fatalf("Status after final word = %v, want Victory", g.state.Status)
	}

	g.reg.Append(&Entity{Kind: KindObstacle, Pos: core.Vec3{Z: -50}, Active: true})
	g.player.Lane = 1

	// Any key but confirm leaves the victory screen up.
	var left core.InputFrame
	left.Set(core.ActionMoveLeft)
	g.Step(left, dt)
	if g.state.Status != StatusVictory {
		t.Fatalf("Victory should persist until confirmed, got %v", g.state.Status)
	}

	speedAtWin := g.state.BaseSpeed
	var confirm core.InputFrame
	confirm.Set(core.ActionConfirm)
	g.Step(confirm, dt)

	if g.state.Mode != ModeEndless {
		t.Errorf("Mode after confirm = %v, want endless", g.state.Mode)
	}
	if g.state.Status != StatusPlaying {
		t.Errorf("Status after confirm = %v, want Playing", g.state.Status)
	}
	if g.state.Distance < 2500 {
		t.Errorf("Distance should carry into endless, got %v", g.state.Distance)
	}
	if g.reg.Len() != 0 {
		t.Errorf("Registry should be cleared on the endless transition, has %d entities", g.reg.Len())
	}
	if g.player.Lane != 0 {
		t.Errorf("Player lane after endless transition = %d, want 0", g.player.Lane)
	}
	if got := g.state.StartBaseSpeed(); got != speedAtWin {
		t.Errorf("Ramp anchor after endless transition = %v, want %v", got, speedAtWin)
	}
}

func TestWordCompleteAdvancesLevel(t *testing.T) {
	g := newTestGame(7)

	g.reg.Append(&Entity{Kind: KindObstacle, Pos: core.Vec3{Z: -80}, Active: true})
	g.reg.Append(&Entity{Kind: KindGem, Pos: core.Vec3{Z: -30}, Active: true})

	for i := 0; i < WordLength; i++ {
		g.state.CollectLetter(i, g.now)
	}
	g.checkWordComplete()
	g.resolveWordComplete()

	if g.state.Level != 2 {
		t.Fatalf("Level after word complete = %d, want 2", g.state.Level)
	}
	if len(g.state.Letters) != 0 {
		t.Errorf("Letter set should be cleared for the new word, has %d", len(g.state.Letters))
	}

	base := g.cfg.Physics.BaseSpeed
	want := base + float64(WordLength)*g.cfg.Scoring.LetterSpeedBonus*base + g.cfg.Pacing.LevelSpeedJump
	if core.AbsF(g.state.BaseSpeed-want) > 1e-9 {
		t.Errorf("BaseSpeed after level up = %v, want %v", g.state.BaseSpeed, want)
	}

	var portal, nearKept, deepKept bool
	for _, e := range g.reg.All() {
		switch {
		case e.Kind == KindShopPortal:
			portal = true
			if e.Pos.Z != -g.cfg.Pacing.LevelPortalAhead {
				t.Errorf("Level portal Z = %v, want %v", e.Pos.Z, -g.cfg.Pacing.LevelPortalAhead)
			}
		case e.Kind == KindGem && e.Pos.Z == -30:
			nearKept = true
		case e.Kind == KindObstacle && e.Pos.Z == -80:
			deepKept = true
		}
	}
	if !portal {
		t.Error("Level up should offer a shop portal")
	}
	if !nearKept {
		t.Error("Entities inside the purge depth should survive a level up")
	}
	if deepKept {
		t.Error("Entities beyond the purge depth should be removed on level up")
	}
}

func TestFatalHitOnWordCompletingTick(t *testing.T) {
	g := newTestGame(7)
	const dt = 1.0 / 60.0

	g.state.Lives = 1
	for i := 0; i < WordLength-1; i++ {
		g.state.CollectLetter(i, g.now)
	}

	// The last letter and a fatal obstacle cross the player in the same
	// motion pass: the letter is collected first, then the hit ends the
	// run. The completed word must not advance a dead run.
	g.reg.Append(&Entity{Kind: KindLetter, LetterIndex: WordLength - 1, Pos: core.Vec3{Z: -0.1}, Active: true})
	g.reg.Append(&Entity{Kind: KindObstacle, Pos: core.Vec3{Z: -0.1}, Active: true})

	g.Step(core.InputFrame{}, dt)

	if g.state.Status != StatusGameOver {
		t.Fatalf("Status = %v, want GameOver", g.state.Status)
	}
	if g.state.BaseSpeed != 0 {
		t.Errorf("BaseSpeed after GameOver = %v, want 0", g.state.BaseSpeed)
	}
	if g.state.Level != 1 {
		t.Errorf("Level after dying on the completing tick = %d, want 1", g.state.Level)
	}
	if n := countKind(g, KindShopPortal); n != 0 {
		t.Errorf("Dead run spawned %d level portals, want 0", n)
	}
}

func TestResolveWordCompleteFiresOnce(t *testing.T) {
	g := newTestGame(7)

	for i := 0; i < WordLength; i++ {
		g.state.CollectLetter(i, g.now)
	}
	g.checkWordComplete()
	g.resolveWordComplete()
	g.resolveWordComplete()

	if g.state.Level != 2 {
		t.Errorf("Level after double resolve = %d, want 2", g.state.Level)
	}
}

func TestShopFreezesWorld(t *testing.T) {
	g := newTestGame(7)
	const dt = 1.0 / 60.0

	g.Step(core.InputFrame{}, dt)
	g.state.OpenShop()
	before := g.Snapshot()

	for i := 0; i < 10; i++ {
		g.Step(core.InputFrame{}, dt)
	}
	after := g.Snapshot()
	if after.Tick != before.Tick || after.Distance != before.Distance {
		t.Errorf("Shop should freeze the world:\n  before=%+v\n  after=%+v", before, after)
	}

	var back core.InputFrame
	back.Set(core.ActionBack)
	g.Step(back, dt)
	if g.state.Status != StatusPlaying {
		t.Errorf("Status after closing shop = %v, want Playing", g.state.Status)
	}
}

func TestShopNavigationAndPurchase(t *testing.T) {
	g := newTestGame(7)
	const dt = 1.0 / 60.0

	g.state.OpenShop()
	g.state.Gems = g.cfg.Shop.DoubleJumpCost

	var down core.InputFrame
	down.Set(core.ActionDown)
	g.Step(down, dt)
	if g.shopCursor != 1 {
		t.Fatalf("Cursor after down = %d, want 1", g.shopCursor)
	}

	var confirm core.InputFrame
	confirm.Set(core.ActionConfirm)
	g.Step(confirm, dt)
	if !g.state.OwnsDoubleJump {
		t.Error("Confirm on the double jump entry should purchase it")
	}
	if g.state.Gems != 0 {
		t.Errorf("Gems after purchase = %d, want 0", g.state.Gems)
	}

	var up core.InputFrame
	up.Set(core.ActionUp)
	g.Step(up, dt)
	g.Step(up, dt)
	if g.shopCursor != 0 {
		t.Errorf("Cursor should clamp at the top, got %d", g.shopCursor)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	g := newTestGame(7)

	g.LoadProfile(750, true, false, 5)
	gems, dj, imm, lanes := g.Profile()
	if gems != 750 || !dj || imm || lanes != 5 {
		t.Errorf("Profile() = (%d, %v, %v, %d), want (750, true, false, 5)", gems, dj, imm, lanes)
	}

	// Out-of-range lane counts from a stale profile are ignored.
	g.LoadProfile(750, true, false, 0)
	if _, _, _, lanes := g.Profile(); lanes != 5 {
		t.Errorf("LaneCount after invalid load = %d, want 5", lanes)
	}
	g.LoadProfile(750, true, false, 9)
	if _, _, _, lanes := g.Profile(); lanes != 5 {
		t.Errorf("LaneCount after oversized load = %d, want 5", lanes)
	}
}

func TestRunStats(t *testing.T) {
	g := newTestGame(7)

	mode, dist, level, gems := g.RunStats()
	if mode != "story" || dist != 0 || level != 1 || gems != 0 {
		t.Errorf("RunStats() = (%q, %v, %d, %d), want (story, 0, 1, 0)", mode, dist, level, gems)
	}

	g.state.Distance = 1234.5
	g.state.Gems = 42
	g.enterEndless()
	mode, dist, _, gems = g.RunStats()
	if mode != "endless" || dist != 1234.5 || gems != 42 {
		t.Errorf("RunStats() after endless = (%q, %v, _, %d), want (endless, 1234.5, 42)", mode, dist, gems)
	}
}

func TestGameIdentity(t *testing.T) {
	story := New()
	endless := NewEndless()

	if story.ID() != "runner" {
		t.Errorf("story ID = %q, want runner", story.ID())
	}
	if endless.ID() != "runner_endless" {
		t.Errorf("endless ID = %q, want runner_endless", endless.ID())
	}
	if story.Title() == endless.Title() {
		t.Error("Story and endless titles should differ")
	}
}

func TestEndlessStartSkipsLetters(t *testing.T) {
	g := NewEndless()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	if g.state.Mode != ModeEndless {
		t.Fatalf("Mode = %v, want endless", g.state.Mode)
	}
	for i := 0; i < 600; i++ {
		g.Step(core.InputFrame{}, 1.0/60.0)
	}
	if n := countKind(g, KindLetter); n != 0 {
		t.Errorf("Endless run spawned %d letters, want 0", n)
	}
}
