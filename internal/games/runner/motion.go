package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// motionPass advances every live entity, applies per-type motion (missile
// extra speed, magnet attraction), runs the swept collision test against
// the player, resolves interactions, and finally purges inactive or
// out-of-range entities.
//
// The collision test is swept: an entity interacts if its pre-move and
// post-move longitudinal positions bracket the player's position within
// the tolerance band. Point sampling would let fast entities tunnel past
// the player between two ticks.
func (g *Game) motionPass(dt float64) {
	track := &g.cfg.Track
	playerPos := g.player.Pos()
	speed := g.state.EffectiveSpeed(g.now)
	magnet := g.state.BuffActive(BuffMagnet, g.now)

	// Missiles fired this tick are appended after the loop so the pass
	// never mutates the slice it is iterating.
	var fired []*Entity

	for _, e := range g.reg.All() {
		if !e.Active {
			continue
		}

		delta := speed * dt
		if e.Kind == KindMissile {
			delta += track.MissileExtra * dt
		}
		prevZ := e.Pos.Z
		e.Pos.Z += delta

		// Magnet attraction: pull nearby pickups laterally toward the
		// player without teleporting them.
		if magnet && e.Kind.Policy().Collectible &&
			core.AbsF(e.Pos.Z-playerPos.Z) <= track.MagnetRange {
			e.Pos.X = core.Lerp(e.Pos.X, playerPos.X, track.MagnetPull*dt)
		}

		// Aliens fire exactly once when they close within range.
		if e.Kind == KindAlien && !e.Fired && e.Pos.Z >= playerPos.Z-track.AlienFireRange {
			e.Fired = true
			fired = append(fired, &Entity{
				Kind: KindMissile,
				Pos:  core.Vec3{X: e.Pos.X, Y: (track.MissileBandLow + track.MissileBandHigh) / 2, Z: e.Pos.Z + 2},
			})
			g.emit(core.BurstEvent{Pos: e.Pos, Color: e.Color})
		}

		// Shop portals span all lanes: longitudinal proximity only.
		if e.Kind == KindShopPortal {
			if core.AbsF(e.Pos.Z-playerPos.Z) <= track.PortalRange {
				e.Active = false
				g.state.OpenShop()
			}
			continue
		}

		// Swept collision zone: [prevZ, newZ] must intersect the
		// tolerance band around the player.
		if prevZ > playerPos.Z+track.SweptTolerance || e.Pos.Z < playerPos.Z-track.SweptTolerance {
			continue
		}

		dx := core.AbsF(e.Pos.X - playerPos.X)
		policy := e.Kind.Policy()

		switch {
		case policy.Damaging:
			if dx > track.DamageLateral {
				continue
			}
			if !g.verticalHit(e, playerPos) {
				continue
			}
			e.Active = false
			applied := g.state.TakeDamage(g.now)
			if applied {
				g.emit(core.PlayerHitEvent{LivesLeft: g.state.Lives})
			}
			if e.Kind == KindMissile {
				g.emit(core.BurstEvent{Pos: e.Pos, Color: e.Color})
			}

		case policy.Collectible:
			latTol := track.PickupLateral
			if magnet {
				latTol = track.MagnetLateral
			}
			if dx > latTol {
				continue
			}
			if core.AbsF(e.Pos.Y-playerPos.Y) > track.PickupVertical {
				continue
			}
			g.collect(e)
		}
	}

	for _, m := range fired {
		g.reg.Append(m)
	}

	// Purge: inactive entities and anything scrolled past the removal
	// threshold behind the player are dropped regardless of prior state.
	g.reg.Rebuild(func(e *Entity) bool {
		return e.Active && e.Pos.Z < track.RemovalThreshold
	})
}

// verticalHit tests overlap between the player's body extent and the
// entity's type-specific vertical band.
func (g *Game) verticalHit(e *Entity, playerPos core.Vec3) bool {
	track := &g.cfg.Track
	bodyLow := playerPos.Y
	bodyHigh := playerPos.Y + g.cfg.Physics.PlayerHeight

	var low, high float64
	switch e.Kind {
	case KindObstacle:
		low, high = 0, track.ObstacleHeight
	case KindMissile:
		low, high = track.MissileBandLow, track.MissileBandHigh
	default:
		low, high = e.Pos.Y-track.DefaultBand, e.Pos.Y+track.DefaultBand
	}

	return bodyLow <= high && low <= bodyHigh
}

// collect applies a pickup's effect, emits its burst, and deactivates it.
func (g *Game) collect(e *Entity) {
	switch e.Kind {
	case KindGem:
		g.state.CollectGem(e.Value, g.now)
		g.emit(core.CollectEvent{Pos: e.Pos, Score: e.Value})
	case KindLetter:
		if g.state.CollectLetter(e.LetterIndex, g.now) {
			g.emit(core.CollectEvent{Pos: e.Pos, Score: g.cfg.Scoring.LetterValue})
			g.checkWordComplete()
		}
	case KindPowerUp:
		g.applyPowerUp(e.Power)
	}
	g.emit(core.BurstEvent{Pos: e.Pos, Color: e.Color})
	e.Active = false
}

// applyPowerUp routes a power-up subtype into the state store.
func (g *Game) applyPowerUp(p PowerKind) {
	pu := &g.cfg.PowerUps
	switch p {
	case PowerShield:
		g.state.ActivateBuff(BuffShield, g.now, pu.DurationShield)
	case PowerMagnet:
		g.state.ActivateBuff(BuffMagnet, g.now, pu.DurationMagnet)
	case PowerScoreBoost:
		g.state.ActivateBuff(BuffScoreBoost, g.now, pu.DurationScoreBoost)
	case PowerSlowMotion:
		g.state.ActivateBuff(BuffSlowMotion, g.now, pu.DurationSlowMotion)
	case PowerHeart:
		g.state.AddLife()
	case PowerReverse:
		g.state.ActivateBuff(BuffReverse, g.now, pu.DurationReverse)
	}
}
