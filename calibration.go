package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Damping factors used by Calibration, relative to critical damping.
const (
	UnderdampedFactor = 0.25
	OverdampedFactor  = 2.0
)

// DampingCharacter classifies a stiffness/damping pair.
type DampingCharacter uint8

const (
	Underdamped      DampingCharacter = iota // oscillates around the target
	CriticallyDamped                         // fastest approach without overshoot
	Overdamped                               // slow approach without overshoot
)

// String returns the character's name.
func (c DampingCharacter) String() string {
	switch c {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	default:
		return "unknown"
	}
}

// CriticalDamping returns 2·√stiffness, the damping at which the spring stops
// overshooting. Non-positive stiffness returns 0.
func CriticalDamping(stiffness float64) float64 {
	if stiffness <= 0 {
		return 0
	}
	return 2 * math.Sqrt(stiffness)
}

// DampingRatio returns ζ = damping / (2·√stiffness). Non-positive stiffness
// returns +Inf for positive damping and 0 otherwise.
func DampingRatio(stiffness, damping float64) float64 {
	crit := CriticalDamping(stiffness)
	if crit == 0 {
		if damping > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return damping / crit
}

// Character classifies a stiffness/damping pair by its damping ratio.
func Character(stiffness, damping float64) DampingCharacter {
	zeta := DampingRatio(stiffness, damping)
	switch {
	case math.Abs(zeta-1) <= 1e-9:
		return CriticallyDamped
	case zeta < 1:
		return Underdamped
	default:
		return Overdamped
	}
}

// MaxStableStep returns the largest dt for which Update does not diverge with
// the given stiffness and damping (both non-negative). Steps at or above this
// value grow without bound.
func MaxStableStep(stiffness, damping float64) float64 {
	switch {
	case stiffness > 0:
		return (math.Sqrt(damping*damping+4*stiffness) - damping) / stiffness
	case damping > 0:
		return 2 / damping
	default:
		return math.Inf(1)
	}
}

// Calibration runs three scalar springs with the same stiffness side by side:
// underdamped, critically damped and overdamped. Useful for tuning by eye.
type Calibration struct {
	Under    *ScalarSpring
	Critical *ScalarSpring
	Over     *ScalarSpring
}

// NewCalibration creates a calibration trio for the given stiffness.
func NewCalibration(stiffness float64) *Calibration {
	crit := CriticalDamping(stiffness)
	mk := func(factor float64) *ScalarSpring {
		s := NewScalarSpring()
		s.Stiffness = stiffness
		s.Damping = crit * factor
		return s
	}
	return &Calibration{
		Under:    mk(UnderdampedFactor),
		Critical: mk(1),
		Over:     mk(OverdampedFactor),
	}
}

func (c *Calibration) springs() [3]*ScalarSpring {
	return [3]*ScalarSpring{c.Under, c.Critical, c.Over}
}

// SetTarget redirects all three springs.
func (c *Calibration) SetTarget(v float64) {
	for _, s := range c.springs() {
		s.SetTarget(v)
	}
}

// Reset snaps all three springs to their current target.
func (c *Calibration) Reset() {
	for _, s := range c.springs() {
		s.Reset()
	}
}

// ResetTo teleports all three springs to v.
func (c *Calibration) ResetTo(v float64) {
	for _, s := range c.springs() {
		s.ResetTo(v)
	}
}

// Update advances all three springs.
func (c *Calibration) Update(dt float64) {
	for _, s := range c.springs() {
		s.Update(dt)
	}
}

// ReferenceDrift integrates a scalar spring configured by cfg from `from`
// toward `to` for the given number of steps and returns the largest deviation
// from the analytic damped oscillator over the same steps. It measures the
// error introduced by the semi-implicit step. Stiffness must be positive.
func ReferenceDrift(cfg Config, from, to, dt float64, steps int) float64 {
	if cfg.Stiffness <= 0 || !(dt > 0) {
		return 0
	}
	s := NewScalarSpring()
	cfg.Apply(&s.Spring)
	s.ResetTo(to)
	s.SetValue(from)

	omega := math.Sqrt(cfg.Stiffness)
	ref := harmonica.NewSpring(dt, omega, DampingRatio(cfg.Stiffness, cfg.Damping))
	pos, vel := from, 0.0

	var drift float64
	for i := 0; i < steps; i++ {
		s.Update(dt)
		pos, vel = ref.Update(pos, vel, to)
		drift = math.Max(drift, math.Abs(s.Value()-pos))
	}
	return drift
}
