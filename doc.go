// Package spring provides damped springs for animating game values with
// [Ebitengine].
//
// A spring pulls a value toward a target with Hooke's law plus linear damping.
// Changing the target while the spring is moving redirects it smoothly, which
// is what makes spring-driven motion feel alive compared to fixed tweens.
//
// # Quick start
//
//	pos := spring.NewVectorSpring()
//	pos.Stiffness, pos.Damping = 120, spring.CriticalDamping(120)
//	pos.ResetTo(mgl64.Vec3{100, 100, 0})
//
//	// in ebiten.Game.Update:
//	pos.SetTarget(mgl64.Vec3{float64(mx), float64(my), 0})
//	pos.Update(spring.FrameDelta())
//
//	// in ebiten.Game.Draw:
//	p := pos.Value()
//
// # Spring types
//
// Every spring shares one integrator, [Spring], which carries up to four
// independent channels with a single stiffness and damping. The typed
// springs embed it:
//
//   - [ScalarSpring]: one float64.
//   - [VectorSpring]: an mgl64.Vec3 (position, scale).
//   - [RotationSpring]: Euler angles in degrees, wrapped so the spring always
//     takes the short way around, exposed as an mgl64.Quat.
//   - [ColorSpring]: a [Color] with optional per-channel limits.
//
// [Rig] groups position, rotation, scale and tint springs for one drawable and
// produces ebiten draw options. [Camera] is a spring-following 2D camera.
//
// # Tuning
//
// The damping ratio ζ = damping / (2·√stiffness) sets the character: below 1
// the spring overshoots and oscillates, at 1 ([CriticalDamping]) it arrives as
// fast as possible without overshoot, above 1 it creeps in. Nothing computes
// damping for you; use [CriticalConfig], [ConfigFromRatio] or a [Calibration]
// trio to pick values, and [LoadPresets] to keep them in data files.
//
// The integrator is semi-implicit Euler. Steps longer than [MaxStableStep]
// diverge; enable [SetDebugMode] to get a warning when that happens.
//
// # Tweens and ECS
//
// [TweenTarget] moves a spring's target along a [gween] easing curve. The ecs
// sub-package stores springs as [Donburi] components and updates them in a
// system.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package spring
