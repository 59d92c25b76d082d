package spring

// ScalarSpring springs a single float64.
type ScalarSpring struct {
	Spring
}

// NewScalarSpring creates a one-channel spring with default stiffness and damping.
func NewScalarSpring() *ScalarSpring {
	s := &ScalarSpring{}
	s.setup(1)
	return s
}

// Value returns the current value.
func (s *ScalarSpring) Value() float64 { return s.value[0] }

// Target returns the current target.
func (s *ScalarSpring) Target() float64 { return s.target[0] }

// Velocity returns the current velocity.
func (s *ScalarSpring) Velocity() float64 { return s.velocity[0] }

// SetTarget redirects the spring without touching its velocity.
func (s *ScalarSpring) SetTarget(v float64) { s.Spring.SetTarget(State{v}) }

// SetValue moves the value to v and zeroes the velocity. The target is kept.
func (s *ScalarSpring) SetValue(v float64) { s.Spring.SetValue(State{v}) }

// ResetTo sets value and target to v and zeroes the velocity.
func (s *ScalarSpring) ResetTo(v float64) { s.Spring.ResetTo(State{v}) }

// OnChange registers fn as the value-changed callback.
func (s *ScalarSpring) OnChange(fn func(v float64)) {
	if fn == nil {
		s.OnValueChanged = nil
		return
	}
	s.OnValueChanged = func(st State) { fn(st[0]) }
}

// OnLock registers fn as the locked callback.
func (s *ScalarSpring) OnLock(fn func(v float64)) {
	if fn == nil {
		s.OnLocked = nil
		return
	}
	s.OnLocked = func(st State) { fn(st[0]) }
}

// OnUnlock registers fn as the unlocked callback.
func (s *ScalarSpring) OnUnlock(fn func(v float64)) {
	if fn == nil {
		s.OnUnlocked = nil
		return
	}
	s.OnUnlocked = func(st State) { fn(st[0]) }
}
