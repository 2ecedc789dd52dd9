package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestPacer() *Pacer {
	cfg := config.DefaultRunnerConfig()
	return NewPacer(&cfg.Pacing)
}

func TestLetterIntervalScalesGeometrically(t *testing.T) {
	p := newTestPacer()

	if got := p.LetterInterval(); got != 320 {
		t.Fatalf("Level-1 interval = %f, expected 320", got)
	}
	p.OnLevelUp()
	if got := p.LetterInterval(); math.Abs(got-480) > 1e-9 {
		t.Errorf("Level-2 interval = %f, expected 480", got)
	}
	p.OnLevelUp()
	if got := p.LetterInterval(); math.Abs(got-720) > 1e-9 {
		t.Errorf("Level-3 interval = %f, expected 720", got)
	}
}

func TestLetterSchedule(t *testing.T) {
	p := newTestPacer()

	if p.LetterDue(319) {
		t.Error("Letter due before the first interval elapsed")
	}
	if !p.LetterDue(320) {
		t.Error("Letter not due at the first interval")
	}

	p.LetterSpawned(320)
	if p.LetterDue(639) {
		t.Error("Letter due before the second interval elapsed")
	}
	if !p.LetterDue(640) {
		t.Error("Letter not due at the second interval")
	}
}

func TestLevelUpAnchorsNextLetterToLastSpawn(t *testing.T) {
	p := newTestPacer()
	p.LetterSpawned(640)
	p.OnLevelUp()

	// Next trigger is one *new* interval past the last letter
	if p.LetterDue(640 + 479) {
		t.Error("Letter due before the scaled interval elapsed")
	}
	if !p.LetterDue(640 + 480) {
		t.Error("Letter not due after the scaled interval")
	}
}

func TestEndlessDisablesLettersAndStartsSchedules(t *testing.T) {
	p := newTestPacer()
	p.EnterEndless(500)

	if p.LetterDue(1e12) {
		t.Error("Letters must never come due in endless mode")
	}

	if p.PortalDue(1499) {
		t.Error("Portal due before its first endless interval")
	}
	if !p.PortalDue(1500) {
		t.Error("Portal not due after its first endless interval")
	}

	if p.RampDue(649) {
		t.Error("Ramp due before its first endless interval")
	}
	if !p.RampDue(650) {
		t.Error("Ramp not due after its first endless interval")
	}
}

func TestRampCadence(t *testing.T) {
	p := newTestPacer()
	p.EnterEndless(0)

	due := 0
	for d := 0.0; d <= 600; d += 10 {
		for p.RampDue(d) {
			p.RampApplied()
			due++
		}
	}
	// 150, 300, 450, 600
	if due != 4 {
		t.Errorf("Ramp fired %d times over 600 units, expected 4", due)
	}
}

func TestPortalReissueInterval(t *testing.T) {
	p := newTestPacer()
	p.EnterEndless(0)

	if !p.PortalDue(1000) {
		t.Fatal("First portal not due")
	}
	p.PortalIssued(1000)
	if p.PortalDue(1999) {
		t.Error("Portal re-offered before a full interval passed")
	}
	if !p.PortalDue(2000) {
		t.Error("Portal not re-offered after a full interval")
	}
}

func TestResetRestoresLevelOneSchedule(t *testing.T) {
	p := newTestPacer()
	p.OnLevelUp()
	p.EnterEndless(5000)

	p.Reset()
	if got := p.LetterInterval(); got != 320 {
		t.Errorf("Interval after Reset = %f, expected 320", got)
	}
	if !p.LetterDue(320) {
		t.Error("Letter schedule not restored by Reset")
	}
	if p.PortalDue(1e12) {
		t.Error("Portal schedule should be disarmed by Reset")
	}
}
