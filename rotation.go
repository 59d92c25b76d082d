package spring

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationSpring springs an orientation as three Euler angles in degrees
// (X pitch, Y yaw, Z roll). Each axis is sprung independently with its
// displacement wrapped into (-180, 180], so the spring always takes the short
// way around. The result is exposed as a quaternion composed in Y·X·Z order.
//
// Because the axes are independent this is not a true angular spring: near
// gimbal lock, or when several axes move at once, the path can differ from the
// geodesic between the two orientations.
type RotationSpring struct {
	Spring
}

// NewRotationSpring creates a three-channel angular spring with default
// stiffness and damping.
func NewRotationSpring() *RotationSpring {
	s := &RotationSpring{}
	s.setup(3, Angular, Angular, Angular)
	return s
}

// Euler returns the current angles in degrees. Angles are not normalized and
// may accumulate past ±360.
func (s *RotationSpring) Euler() mgl64.Vec3 { return stateVec(s.value) }

// TargetEuler returns the target angles in degrees.
func (s *RotationSpring) TargetEuler() mgl64.Vec3 { return stateVec(s.target) }

// AngularVelocity returns the per-axis velocity in degrees per second.
func (s *RotationSpring) AngularVelocity() mgl64.Vec3 { return stateVec(s.velocity) }

// Rotation returns the current orientation.
func (s *RotationSpring) Rotation() mgl64.Quat { return eulerToQuat(stateVec(s.value)) }

// TargetRotation returns the target orientation.
func (s *RotationSpring) TargetRotation() mgl64.Quat { return eulerToQuat(stateVec(s.target)) }

// SetTargetEuler redirects the spring to the given angles in degrees.
func (s *RotationSpring) SetTargetEuler(deg mgl64.Vec3) { s.Spring.SetTarget(vecState(deg)) }

// SetEuler moves the value to the given angles and zeroes the velocity.
func (s *RotationSpring) SetEuler(deg mgl64.Vec3) { s.Spring.SetValue(vecState(deg)) }

// ResetEuler sets value and target to the given angles and zeroes the velocity.
func (s *RotationSpring) ResetEuler(deg mgl64.Vec3) { s.Spring.ResetTo(vecState(deg)) }

// SetTargetRotation redirects the spring to q.
func (s *RotationSpring) SetTargetRotation(q mgl64.Quat) { s.SetTargetEuler(quatToEuler(q)) }

// SetRotation moves the value to q and zeroes the velocity.
func (s *RotationSpring) SetRotation(q mgl64.Quat) { s.SetEuler(quatToEuler(q)) }

// ResetRotation sets value and target to q and zeroes the velocity.
func (s *RotationSpring) ResetRotation(q mgl64.Quat) { s.ResetEuler(quatToEuler(q)) }

// OnChange registers fn as the value-changed callback.
func (s *RotationSpring) OnChange(fn func(q mgl64.Quat)) {
	if fn == nil {
		s.OnValueChanged = nil
		return
	}
	s.OnValueChanged = func(st State) { fn(eulerToQuat(stateVec(st))) }
}

// OnLock registers fn as the locked callback.
func (s *RotationSpring) OnLock(fn func(q mgl64.Quat)) {
	if fn == nil {
		s.OnLocked = nil
		return
	}
	s.OnLocked = func(st State) { fn(eulerToQuat(stateVec(st))) }
}

// OnUnlock registers fn as the unlocked callback.
func (s *RotationSpring) OnUnlock(fn func(q mgl64.Quat)) {
	if fn == nil {
		s.OnUnlocked = nil
		return
	}
	s.OnUnlocked = func(st State) { fn(eulerToQuat(stateVec(st))) }
}

// eulerToQuat builds Ry(yaw)·Rx(pitch)·Rz(roll) from angles in degrees.
func eulerToQuat(deg mgl64.Vec3) mgl64.Quat {
	return mgl64.AnglesToQuat(
		mgl64.DegToRad(deg[1]),
		mgl64.DegToRad(deg[0]),
		mgl64.DegToRad(deg[2]),
		mgl64.YXZ,
	)
}

// quatToEuler is the inverse of eulerToQuat. At gimbal lock (pitch ±90°) roll
// is folded into yaw.
func quatToEuler(q mgl64.Quat) mgl64.Vec3 {
	m := q.Normalize().Mat4()

	sinPitch := -m.At(1, 2)
	sinPitch = math.Max(-1, math.Min(1, sinPitch))
	pitch := math.Asin(sinPitch)

	var yaw, roll float64
	if math.Abs(sinPitch) < 1-1e-9 {
		yaw = math.Atan2(m.At(0, 2), m.At(2, 2))
		roll = math.Atan2(m.At(1, 0), m.At(1, 1))
	} else {
		yaw = math.Atan2(-m.At(2, 0), m.At(0, 0))
	}

	return mgl64.Vec3{
		mgl64.RadToDeg(pitch),
		mgl64.RadToDeg(yaw),
		mgl64.RadToDeg(roll),
	}
}
