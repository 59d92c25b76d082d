package spring

import "math"

// MaxChannels is the largest number of independent channels a Spring carries.
const MaxChannels = 4

const (
	// DefaultStiffness is the spring constant used by the typed constructors.
	DefaultStiffness = 10.0
	// DefaultDamping is the damping coefficient used by the typed constructors.
	DefaultDamping = 0.5
	// ChangeEpsilon is the per-channel movement below which Update does not
	// fire OnValueChanged.
	ChangeEpsilon = 1e-4
)

// State holds one value per channel. Channels past Spring.Channels() are
// always zero.
type State [MaxChannels]float64

// ChannelMode selects how a channel's displacement is measured.
type ChannelMode uint8

const (
	Linear  ChannelMode = iota // plain difference between value and target
	Angular                    // difference in degrees, wrapped into (-180, 180]
)

// Spring integrates up to MaxChannels independent values toward a target using
// Hooke's law plus linear damping, stepped with semi-implicit Euler. Stiffness
// and Damping are shared by every channel.
//
// The step is explicit, so large dt combined with high stiffness or damping
// diverges. See MaxStableStep.
//
// A Spring is not safe for concurrent use. Each instance is expected to be
// owned and ticked by exactly one caller.
type Spring struct {
	// Stiffness is the spring constant k in F = -k·x.
	Stiffness float64
	// Damping is the damping coefficient c in F = -c·v. 2·√Stiffness is the
	// critical value.
	Damping float64

	// OnValueChanged is called at most once per Update, after integration,
	// when any channel moved by more than ChangeEpsilon.
	OnValueChanged func(value State)
	// OnLocked is called when the spring transitions to locked.
	OnLocked func(value State)
	// OnUnlocked is called when the spring transitions to unlocked.
	OnUnlocked func(value State)

	channels int
	modes    [MaxChannels]ChannelMode

	target   State
	value    State
	velocity State

	useLimits bool
	min       State
	max       State

	locked bool
	warned bool
}

// New creates a Spring with the given channel count (clamped to
// [1, MaxChannels]) and default stiffness and damping. Modes are applied to
// channels in order; channels without a mode are Linear.
func New(channels int, modes ...ChannelMode) *Spring {
	s := &Spring{}
	s.setup(channels, modes...)
	return s
}

func (s *Spring) setup(channels int, modes ...ChannelMode) {
	if channels < 1 {
		channels = 1
	}
	if channels > MaxChannels {
		channels = MaxChannels
	}
	s.channels = channels
	s.Stiffness = DefaultStiffness
	s.Damping = DefaultDamping
	for i := 0; i < channels && i < len(modes); i++ {
		s.modes[i] = modes[i]
	}
}

// Channels returns the number of active channels.
func (s *Spring) Channels() int {
	return s.channels
}

// Mode returns the mode of channel i. Out-of-range channels report Linear.
func (s *Spring) Mode(i int) ChannelMode {
	if i < 0 || i >= s.channels {
		return Linear
	}
	return s.modes[i]
}

// Update advances the spring by dt seconds. It does nothing while locked or
// when dt is not positive.
func (s *Spring) Update(dt float64) {
	if s.locked || !(dt > 0) {
		return
	}
	if globalDebug && !s.warned {
		s.warned = debugCheckStep(s, dt)
	}

	prev := s.value
	for i := 0; i < s.channels; i++ {
		displacement := s.displacement(i)
		springForce := -s.Stiffness * displacement
		dampingForce := -s.Damping * s.velocity[i]
		s.velocity[i] += (springForce + dampingForce) * dt
		s.value[i] += s.velocity[i] * dt

		if s.useLimits {
			s.clampChannel(i)
		}
	}

	if s.OnValueChanged != nil && Differs(prev, s.value) {
		s.OnValueChanged(s.value)
	}
}

// displacement returns value - target for channel i, wrapped for angular channels.
func (s *Spring) displacement(i int) float64 {
	d := s.value[i] - s.target[i]
	if s.modes[i] == Angular {
		d = WrapAngle(d)
	}
	return d
}

// Lock freezes the spring. Update becomes a no-op until Unlock. If
// resetVelocity is true the velocity is zeroed. Locking a locked spring does
// nothing.
func (s *Spring) Lock(resetVelocity bool) {
	if s.locked {
		return
	}
	s.locked = true
	if resetVelocity {
		s.velocity = State{}
	}
	if s.OnLocked != nil {
		s.OnLocked(s.value)
	}
}

// Unlock resumes integration from the frozen value and velocity. Unlocking an
// unlocked spring does nothing.
func (s *Spring) Unlock() {
	if !s.locked {
		return
	}
	s.locked = false
	if s.OnUnlocked != nil {
		s.OnUnlocked(s.value)
	}
}

// IsLocked reports whether the spring is locked.
func (s *Spring) IsLocked() bool {
	return s.locked
}

// Reset snaps the value to the current target and zeroes the velocity.
func (s *Spring) Reset() {
	s.value = s.target
	s.velocity = State{}
}

// ResetTo teleports the spring to target: value and target both become target
// and the velocity is zeroed.
func (s *Spring) ResetTo(target State) {
	s.target = s.mask(target)
	s.value = s.target
	s.velocity = State{}
}

// SetValue sets the value and zeroes the velocity without touching the target,
// so the spring animates from value toward the existing target.
func (s *Spring) SetValue(value State) {
	s.value = s.mask(value)
	s.velocity = State{}
}

// SetTarget redirects the spring. Velocity is preserved.
func (s *Spring) SetTarget(target State) {
	s.target = s.mask(target)
}

// SetTargetChannel sets a single channel of the target.
func (s *Spring) SetTargetChannel(i int, v float64) {
	if i < 0 || i >= s.channels {
		return
	}
	s.target[i] = v
}

// Target returns the equilibrium the spring is pulled toward.
func (s *Spring) Target() State {
	return s.target
}

// Value returns the current simulated value.
func (s *Spring) Value() State {
	return s.value
}

// Velocity returns the current simulated velocity.
func (s *Spring) Velocity() State {
	return s.velocity
}

// SetLimits enables per-channel clamping. After each step a channel outside
// [min[i], max[i]] is clamped and its velocity zeroed.
func (s *Spring) SetLimits(min, max State) {
	s.useLimits = true
	s.min = min
	s.max = max
}

// ClampToLimits pulls the current value inside the limits, zeroing the
// velocity of each channel it moves. It does nothing when limits are disabled
// and never fires OnValueChanged.
func (s *Spring) ClampToLimits() {
	if !s.useLimits {
		return
	}
	for i := 0; i < s.channels; i++ {
		s.clampChannel(i)
	}
}

func (s *Spring) clampChannel(i int) {
	if s.value[i] < s.min[i] {
		s.value[i] = s.min[i]
		s.velocity[i] = 0
	} else if s.value[i] > s.max[i] {
		s.value[i] = s.max[i]
		s.velocity[i] = 0
	}
}

// ClearLimits disables clamping.
func (s *Spring) ClearLimits() {
	s.useLimits = false
}

// Limits returns the clamp bounds and whether they are enabled.
func (s *Spring) Limits() (min, max State, enabled bool) {
	return s.min, s.max, s.useLimits
}

// Settled reports whether every channel is within eps of its target and has a
// speed below eps.
func (s *Spring) Settled(eps float64) bool {
	for i := 0; i < s.channels; i++ {
		if math.Abs(s.displacement(i)) > eps || math.Abs(s.velocity[i]) > eps {
			return false
		}
	}
	return true
}

// Energy returns 0.5·k·x² + 0.5·v² summed over the active channels, where x
// is the displacement from the target.
func (s *Spring) Energy() float64 {
	var e float64
	for i := 0; i < s.channels; i++ {
		x := s.displacement(i)
		v := s.velocity[i]
		e += 0.5*s.Stiffness*x*x + 0.5*v*v
	}
	return e
}

// mask zeroes channels past the active count.
func (s *Spring) mask(v State) State {
	for i := s.channels; i < MaxChannels; i++ {
		v[i] = 0
	}
	return v
}

// Differs reports whether any channel of a and b differs by more than
// ChangeEpsilon.
func Differs(a, b State) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > ChangeEpsilon {
			return true
		}
	}
	return false
}
