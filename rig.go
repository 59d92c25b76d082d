package spring

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Rig bundles the springs that animate one drawable: position, rotation,
// scale and tint. The springs are independent; Update ticks them in a fixed
// order.
//
// For 2D drawing only X/Y of Position and Scale and the roll (Z) of Rotation
// are used. The full 3D values stay available to callers that need them.
type Rig struct {
	Position *VectorSpring
	Rotation *RotationSpring
	Scale    *VectorSpring
	Tint     *ColorSpring

	// PivotX and PivotY are the local-space point that position, rotation and
	// scale are applied around.
	PivotX, PivotY float64
}

// NewRig creates a rig at the origin with unit scale and a white tint clamped
// to [0, 1].
func NewRig() *Rig {
	r := &Rig{
		Position: NewVectorSpring(),
		Rotation: NewRotationSpring(),
		Scale:    NewVectorSpring(),
		Tint:     NewColorSpring(),
	}
	r.Scale.ResetTo(mgl64.Vec3{1, 1, 1})
	r.Tint.ClampUnit()
	r.Tint.ResetTo(ColorWhite)
	return r
}

func (r *Rig) springs() [4]*Spring {
	return [4]*Spring{&r.Position.Spring, &r.Rotation.Spring, &r.Scale.Spring, &r.Tint.Spring}
}

// Update advances every spring by dt seconds.
func (r *Rig) Update(dt float64) {
	for _, s := range r.springs() {
		s.Update(dt)
	}
}

// Configure applies cfg to every spring.
func (r *Rig) Configure(cfg Config) {
	for _, s := range r.springs() {
		cfg.Apply(s)
	}
}

// Lock freezes every spring.
func (r *Rig) Lock(resetVelocity bool) {
	for _, s := range r.springs() {
		s.Lock(resetVelocity)
	}
}

// Unlock resumes every spring.
func (r *Rig) Unlock() {
	for _, s := range r.springs() {
		s.Unlock()
	}
}

// Settled reports whether every spring has settled within eps.
func (r *Rig) Settled(eps float64) bool {
	for _, s := range r.springs() {
		if !s.Settled(eps) {
			return false
		}
	}
	return true
}

// Matrix returns the rig's current 2D affine transform [a, b, c, d, tx, ty].
func (r *Rig) Matrix() [6]float64 {
	pos := r.Position.Value()
	scale := r.Scale.Value()
	roll := mgl64.DegToRad(r.Rotation.Euler()[2])
	return composeTransform(pos[0], pos[1], scale[0], scale[1], roll, r.PivotX, r.PivotY)
}

// ApplyTo writes the rig's transform and tint into op. The existing GeoM is
// concatenated after the rig transform so callers can add a camera.
func (r *Rig) ApplyTo(op *ebiten.DrawImageOptions) {
	g := geoM(r.Matrix())
	g.Concat(op.GeoM)
	op.GeoM = g
	op.ColorScale.ScaleWithColorScale(r.Tint.Value().ColorScale())
}

// DrawImageOptions returns fresh draw options carrying the rig's transform
// and tint.
func (r *Rig) DrawImageOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	r.ApplyTo(op)
	return op
}

// LocalToWorld converts a point in the rig's local space to world space.
func (r *Rig) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(r.Matrix(), lx, ly)
}

// WorldToLocal converts a world-space point to the rig's local space.
func (r *Rig) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(r.Matrix()), wx, wy)
}
