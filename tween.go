package spring

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TargetTween moves a spring's target along an eased curve. The spring keeps
// integrating toward the moving target, so the value trails the curve with the
// spring's own character instead of following it exactly.
//
// Like the springs themselves there is no global manager: call Update every
// frame before updating the spring.
type TargetTween struct {
	tweens [MaxChannels]*gween.Tween
	to     State
	count  int
	spring *Spring
	Done   bool
}

// TweenTarget creates a TargetTween that moves every channel of s's target from
// its current value to `to` over duration seconds.
func TweenTarget(s *Spring, to State, duration float32, fn ease.TweenFunc) *TargetTween {
	g := &TargetTween{to: to, count: s.channels, spring: s}
	from := s.target
	for i := 0; i < g.count; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// TweenColorTarget is TweenTarget for a ColorSpring.
func TweenColorTarget(s *ColorSpring, to Color, duration float32, fn ease.TweenFunc) *TargetTween {
	return TweenTarget(&s.Spring, colorState(to), duration, fn)
}

// Update advances the tween by dt seconds and writes the eased values to the
// spring's target. Finished channels land exactly on the end value. A locked
// spring still receives the writes; they take effect once it is unlocked.
func (g *TargetTween) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			g.spring.target[i] = g.to[i]
			continue
		}
		g.spring.target[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// Reset rewinds the tween to its start. The spring's target is not touched
// until the next Update.
func (g *TargetTween) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}
