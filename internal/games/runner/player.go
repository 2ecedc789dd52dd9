package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player holds the runner's lane, lateral interpolation and jump physics.
// The player sits at Z=0; the world scrolls past it.
type Player struct {
	cfg *config.RunnerConfig

	Lane     int     // Target lane index, symmetric around 0
	X        float64 // Current lateral position, lerped toward the lane
	Y        float64 // Height above the ground
	velY     float64
	grounded bool
	jumps    int // Jumps used since last grounded
}

// NewPlayer creates a player bound to the given config.
func NewPlayer(cfg *config.RunnerConfig) *Player {
	p := &Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset puts the player back on the center lane, grounded.
func (p *Player) Reset() {
	p.Lane = 0
	p.X = 0
	p.Y = 0
	p.velY = 0
	p.grounded = true
	p.jumps = 0
}

// Pos returns the player's world position sampled for this tick.
// A nil player reads as the origin, so collision checks degrade safely
// before the player is mounted.
func (p *Player) Pos() core.Vec3 {
	if p == nil {
		return core.Vec3{}
	}
	return core.Vec3{X: p.X, Y: p.Y, Z: 0}
}

// MoveLane shifts the target lane by delta, flipped while reversed
// controls are active. Out-of-range requests clamp to the lane band.
func (p *Player) MoveLane(delta, laneCount int, reversed bool) {
	if reversed {
		delta = -delta
	}
	p.Lane = core.ClampLane(p.Lane+delta, laneCount)
}

// Jump starts a jump if grounded, or a second jump mid-air when the
// double-jump ability is owned.
func (p *Player) Jump(doubleJumpOwned bool) {
	maxJumps := 1
	if doubleJumpOwned {
		maxJumps = 2
	}
	if p.jumps >= maxJumps {
		return
	}
	p.velY = p.cfg.Physics.JumpImpulse
	p.grounded = false
	p.jumps++
}

// Grounded reports whether the player is on the ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// Update advances lateral interpolation and vertical physics.
func (p *Player) Update(dt float64) {
	targetX := float64(p.Lane) * p.cfg.Track.LaneWidth
	p.X = core.Lerp(p.X, targetX, p.cfg.Physics.LaneChangeSpeed*dt)

	if !p.grounded {
		p.velY -= p.cfg.Physics.Gravity * dt
		p.Y += p.velY * dt
		if p.Y <= 0 {
			p.Y = 0
			p.velY = 0
			p.grounded = true
			p.jumps = 0
		}
	}
}
