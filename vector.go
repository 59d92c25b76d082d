package spring

import "github.com/go-gl/mathgl/mgl64"

// VectorSpring springs a 3D vector, each axis independently. Used for
// positions and scales.
type VectorSpring struct {
	Spring
}

// NewVectorSpring creates a three-channel linear spring with default stiffness
// and damping.
func NewVectorSpring() *VectorSpring {
	s := &VectorSpring{}
	s.setup(3)
	return s
}

func vecState(v mgl64.Vec3) State {
	return State{v[0], v[1], v[2]}
}

func stateVec(s State) mgl64.Vec3 {
	return mgl64.Vec3{s[0], s[1], s[2]}
}

// Value returns the current vector.
func (s *VectorSpring) Value() mgl64.Vec3 { return stateVec(s.value) }

// Target returns the current target.
func (s *VectorSpring) Target() mgl64.Vec3 { return stateVec(s.target) }

// Velocity returns the current velocity.
func (s *VectorSpring) Velocity() mgl64.Vec3 { return stateVec(s.velocity) }

// SetTarget redirects the spring without touching its velocity.
func (s *VectorSpring) SetTarget(v mgl64.Vec3) { s.Spring.SetTarget(vecState(v)) }

// SetValue moves the value to v and zeroes the velocity. The target is kept.
func (s *VectorSpring) SetValue(v mgl64.Vec3) { s.Spring.SetValue(vecState(v)) }

// ResetTo sets value and target to v and zeroes the velocity.
func (s *VectorSpring) ResetTo(v mgl64.Vec3) { s.Spring.ResetTo(vecState(v)) }

// OnChange registers fn as the value-changed callback.
func (s *VectorSpring) OnChange(fn func(v mgl64.Vec3)) {
	if fn == nil {
		s.OnValueChanged = nil
		return
	}
	s.OnValueChanged = func(st State) { fn(stateVec(st)) }
}

// OnLock registers fn as the locked callback.
func (s *VectorSpring) OnLock(fn func(v mgl64.Vec3)) {
	if fn == nil {
		s.OnLocked = nil
		return
	}
	s.OnLocked = func(st State) { fn(stateVec(st)) }
}

// OnUnlock registers fn as the unlocked callback.
func (s *VectorSpring) OnUnlock(fn func(v mgl64.Vec3)) {
	if fn == nil {
		s.OnUnlocked = nil
		return
	}
	s.OnUnlocked = func(st State) { fn(stateVec(st)) }
}
