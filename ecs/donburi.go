package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/spring"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Kind identifies which component a ChangeEvent came from.
type Kind uint8

const (
	KindScalar   Kind = iota // Scalar component
	KindVector               // Vector component
	KindRotation             // Rotation component
	KindColor                // Color component
	KindRig                  // Rig component; Value is the rig's position
)

// ChangeEvent is published when a spring component moved during Update.
type ChangeEvent struct {
	Entity donburi.Entity
	Kind   Kind
	Value  spring.State
}

// ChangeEventType is the Donburi event type for spring changes. Subscribe to
// it and call ProcessEvents after Update.
var ChangeEventType = events.NewEventType[ChangeEvent]()

// Spring component types. Scalar, Vector, Rotation and Color default to the
// values of their constructors. Rig has no usable default; create rig
// entities with NewRig.
var (
	Scalar   = donburi.NewComponentType[spring.ScalarSpring](*spring.NewScalarSpring())
	Vector   = donburi.NewComponentType[spring.VectorSpring](*spring.NewVectorSpring())
	Rotation = donburi.NewComponentType[spring.RotationSpring](*spring.NewRotationSpring())
	Color    = donburi.NewComponentType[spring.ColorSpring](*spring.NewColorSpring())
	Rig      = donburi.NewComponentType[spring.Rig]()
)

var (
	scalarQuery   = donburi.NewQuery(filter.Contains(Scalar))
	vectorQuery   = donburi.NewQuery(filter.Contains(Vector))
	rotationQuery = donburi.NewQuery(filter.Contains(Rotation))
	colorQuery    = donburi.NewQuery(filter.Contains(Color))
	rigQuery      = donburi.NewQuery(filter.Contains(Rig))
)

// NewScalar creates an entity with a Scalar component reset to v.
func NewScalar(w donburi.World, v float64) donburi.Entity {
	e := w.Create(Scalar)
	Scalar.Get(w.Entry(e)).ResetTo(v)
	return e
}

// NewVector creates an entity with a Vector component reset to v.
func NewVector(w donburi.World, v mgl64.Vec3) donburi.Entity {
	e := w.Create(Vector)
	Vector.Get(w.Entry(e)).ResetTo(v)
	return e
}

// NewRotation creates an entity with a Rotation component reset to the given
// Euler angles in degrees.
func NewRotation(w donburi.World, deg mgl64.Vec3) donburi.Entity {
	e := w.Create(Rotation)
	Rotation.Get(w.Entry(e)).ResetEuler(deg)
	return e
}

// NewColor creates an entity with a Color component reset to c.
func NewColor(w donburi.World, c spring.Color) donburi.Entity {
	e := w.Create(Color)
	Color.Get(w.Entry(e)).ResetTo(c)
	return e
}

// NewRig creates an entity with a fresh Rig component.
func NewRig(w donburi.World) donburi.Entity {
	e := w.Create(Rig)
	Rig.SetValue(w.Entry(e), *spring.NewRig())
	return e
}

// Update advances every spring component by dt seconds and publishes a
// ChangeEvent for each one that moved. Components are updated kind by kind in
// the order of the Kind constants.
func Update(w donburi.World, dt float64) {
	scalarQuery.Each(w, func(entry *donburi.Entry) {
		step(w, entry, KindScalar, &Scalar.Get(entry).Spring, dt)
	})
	vectorQuery.Each(w, func(entry *donburi.Entry) {
		step(w, entry, KindVector, &Vector.Get(entry).Spring, dt)
	})
	rotationQuery.Each(w, func(entry *donburi.Entry) {
		step(w, entry, KindRotation, &Rotation.Get(entry).Spring, dt)
	})
	colorQuery.Each(w, func(entry *donburi.Entry) {
		step(w, entry, KindColor, &Color.Get(entry).Spring, dt)
	})
	rigQuery.Each(w, func(entry *donburi.Entry) {
		r := Rig.Get(entry)
		if r.Position == nil {
			return
		}
		prev := rigState(r)
		r.Update(dt)
		if rigMoved(prev, rigState(r)) {
			ChangeEventType.Publish(w, ChangeEvent{
				Entity: entry.Entity(),
				Kind:   KindRig,
				Value:  r.Position.Spring.Value(),
			})
		}
	})
}

func step(w donburi.World, entry *donburi.Entry, kind Kind, s *spring.Spring, dt float64) {
	prev := s.Value()
	s.Update(dt)
	if next := s.Value(); spring.Differs(prev, next) {
		ChangeEventType.Publish(w, ChangeEvent{Entity: entry.Entity(), Kind: kind, Value: next})
	}
}

func rigState(r *spring.Rig) [4]spring.State {
	return [4]spring.State{
		r.Position.Spring.Value(),
		r.Rotation.Spring.Value(),
		r.Scale.Spring.Value(),
		r.Tint.Spring.Value(),
	}
}

func rigMoved(a, b [4]spring.State) bool {
	for i := range a {
		if spring.Differs(a[i], b[i]) {
			return true
		}
	}
	return false
}
