// Package ecs stores springs as [Donburi] components and ticks them from a
// system.
//
// Usage:
//
//	entity := ecs.NewScalar(world, 0)
//	ecs.Scalar.Get(world.Entry(entity)).SetTarget(1)
//
//	// each frame:
//	ecs.Update(world, spring.FrameDelta())
//	ecs.ChangeEventType.ProcessEvents(world)
//
// Every spring that moved by more than spring.ChangeEpsilon during Update
// publishes a [ChangeEvent].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
