package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind tags a world entity. The set is closed; per-kind behavior lives in
// the policy table below so motion/collision/spawn branching stays
// data-driven.
type Kind int

const (
	KindObstacle Kind = iota // Ground spike, blocks a lane
	KindGem                  // Plain collectible currency
	KindLetter               // One letter of the level's target word
	KindShopPortal           // Spans all lanes, opens the shop
	KindAlien                // Hovers in a lane, fires one missile
	KindMissile              // Homing projectile, outruns the world scroll
	KindPowerUp              // Timed buff pickup
	kindCount                // Sentinel, must stay last
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindGem:
		return "Gem"
	case KindLetter:
		return "Letter"
	case KindShopPortal:
		return "ShopPortal"
	case KindAlien:
		return "Alien"
	case KindMissile:
		return "Missile"
	case KindPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// kindPolicy describes how a kind participates in the interaction pass.
type kindPolicy struct {
	Collectible bool       // Collected with the looser pickup tests
	Damaging    bool       // Hits with the tight lateral + vertical tests
	Glyph       rune       // Display character
	Color       core.Color // Burst and display color
}

var policies = [kindCount]kindPolicy{
	KindObstacle:   {Damaging: true, Glyph: '▲', Color: core.ColorRed},
	KindGem:        {Collectible: true, Glyph: '◆', Color: core.ColorBrightCyan},
	KindLetter:     {Collectible: true, Glyph: '?', Color: core.ColorBrightYellow},
	KindShopPortal: {Glyph: '∩', Color: core.ColorBrightMagenta},
	KindAlien:      {Damaging: true, Glyph: 'Ω', Color: core.ColorBrightGreen},
	KindMissile:    {Damaging: true, Glyph: '•', Color: core.ColorOrange},
	KindPowerUp:    {Collectible: true, Glyph: '■', Color: core.ColorBrightBlue},
}

// Policy returns the interaction policy for the kind.
func (k Kind) Policy() kindPolicy {
	if k < 0 || k >= kindCount {
		return kindPolicy{}
	}
	return policies[k]
}

// InGapAccounting reports whether the kind participates in the spawn
// planner's gap computation. Projectiles move independently of the lane
// cadence and are excluded.
func (k Kind) InGapAccounting() bool {
	return k != KindMissile
}

// Entity is a live world object. Position is in world units: X across
// lanes, Y vertical, Z forward (negative ahead of the player).
type Entity struct {
	ID     uint64
	Kind   Kind
	Pos    core.Vec3
	Active bool // False once consumed/destroyed, purged by end of tick

	// Type-specific fields
	LetterIndex int       // Letter: target index within the level word
	Value       int       // Gem: point value
	Fired       bool      // Alien: one-shot missile flag
	Power       PowerKind // PowerUp: subtype
	Color       core.Color
}

// Registry is the live set of world entities. Insertion order is
// irrelevant to correctness; a single tick applies motion+collision, then
// spawning, sequentially and single-threaded.
type Registry struct {
	entities []*Entity
	nextID   uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make([]*Entity, 0, 64)}
}

// Append adds an entity, assigning its unique ID, and returns it.
func (r *Registry) Append(e *Entity) *Entity {
	r.nextID++
	e.ID = r.nextID
	e.Active = true
	if e.Color == core.ColorDefault {
		e.Color = e.Kind.Policy().Color
	}
	r.entities = append(r.entities, e)
	return e
}

// All returns the current entity slice. Callers must not append to it.
func (r *Registry) All() []*Entity {
	return r.entities
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Rebuild drops every entity for which keep returns false, reusing the
// underlying storage.
func (r *Registry) Rebuild(keep func(*Entity) bool) {
	kept := r.entities[:0]
	for _, e := range r.entities {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped entities can be collected
	for i := len(kept); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = kept
}

// Clear removes all entities without resetting the ID counter.
func (r *Registry) Clear() {
	r.Rebuild(func(*Entity) bool { return false })
}

// MinAheadZ returns the minimum Z (farthest ahead) among entities counted
// for spawn-gap purposes, and whether any such entity exists.
func (r *Registry) MinAheadZ() (float64, bool) {
	found := false
	min := 0.0
	for _, e := range r.entities {
		if !e.Active || !e.Kind.InGapAccounting() {
			continue
		}
		if !found || e.Pos.Z < min {
			min = e.Pos.Z
			found = true
		}
	}
	return min, found
}
