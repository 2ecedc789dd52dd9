package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Pacer tracks cumulative distance and schedules letter spawns, portal
// offers and speed ramps. Letter intervals scale geometrically per level;
// endless mode disables letters and ramps speed gently instead.
type Pacer struct {
	cfg *config.PacingConfig

	lettersEnabled bool
	letterInterval float64
	nextLetterAt   float64
	lastLetterAt   float64

	nextPortalAt float64
	nextRampAt   float64
}

// NewPacer creates a pacer bound to the given pacing config.
func NewPacer(cfg *config.PacingConfig) *Pacer {
	p := &Pacer{cfg: cfg}
	p.Reset()
	return p
}

// Reset restores the level-1 letter schedule and clears all counters.
// Called on entering Play from the menu or on restart.
func (p *Pacer) Reset() {
	p.lettersEnabled = true
	p.letterInterval = p.cfg.LetterInterval
	p.nextLetterAt = p.cfg.LetterInterval
	p.lastLetterAt = 0
	p.nextPortalAt = math.Inf(1)
	p.nextRampAt = math.Inf(1)
}

// LetterInterval returns the current between-letters distance.
func (p *Pacer) LetterInterval() float64 {
	return p.letterInterval
}

// LetterDue reports whether the letter schedule has fired.
func (p *Pacer) LetterDue(distance float64) bool {
	return p.lettersEnabled && distance >= p.nextLetterAt
}

// LetterSpawned advances the schedule by the current interval.
func (p *Pacer) LetterSpawned(distance float64) {
	p.lastLetterAt = distance
	p.nextLetterAt = distance + p.letterInterval
}

// OnLevelUp scales the interval geometrically and recomputes the next
// trigger so the gap between the old level's last letter and the new
// level's first letter equals the new, larger interval.
func (p *Pacer) OnLevelUp() {
	p.letterInterval *= p.cfg.LetterScale
	p.nextLetterAt = p.lastLetterAt + p.letterInterval
}

// EnterEndless disables letter scheduling and starts the portal and ramp
// schedules relative to the current distance.
func (p *Pacer) EnterEndless(distance float64) {
	p.lettersEnabled = false
	p.nextLetterAt = math.Inf(1)
	p.nextPortalAt = distance + p.cfg.PortalInterval
	p.nextRampAt = distance + p.cfg.RampInterval
}

// PortalDue reports whether an endless portal offer is due.
func (p *Pacer) PortalDue(distance float64) bool {
	return distance >= p.nextPortalAt
}

// PortalIssued reschedules the next portal offer.
func (p *Pacer) PortalIssued(distance float64) {
	p.nextPortalAt = distance + p.cfg.PortalInterval
}

// RampDue reports whether an endless speed ramp increment is due.
func (p *Pacer) RampDue(distance float64) bool {
	return distance >= p.nextRampAt
}

// RampApplied advances the ramp schedule by one fixed increment.
func (p *Pacer) RampApplied() {
	p.nextRampAt += p.cfg.RampInterval
}
