package spring

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens when converting for rendering.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// ParseHex parses "#rrggbb" (or the short "#rgb" form) into an opaque Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("spring: parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Colorful returns the RGB part of c as a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// RGBA returns c as a premultiplied 8-bit color, clamping each component.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ColorScale returns c as a premultiplied ebiten color scale.
func (c Color) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	return cs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func colorState(c Color) State {
	return State{c.R, c.G, c.B, c.A}
}

func stateColor(s State) Color {
	return Color{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// ColorSpring springs the four channels of a Color independently. With limits
// enabled a channel that hits its bound stops there with zero velocity instead
// of oscillating against it.
type ColorSpring struct {
	Spring
}

// NewColorSpring creates a four-channel spring with default stiffness and
// damping and no limits.
func NewColorSpring() *ColorSpring {
	s := &ColorSpring{}
	s.setup(4)
	return s
}

// Value returns the current color.
func (s *ColorSpring) Value() Color { return stateColor(s.value) }

// Target returns the target color.
func (s *ColorSpring) Target() Color { return stateColor(s.target) }

// Velocity returns the per-channel velocity.
func (s *ColorSpring) Velocity() Color { return stateColor(s.velocity) }

// SetTarget redirects the spring without touching its velocity.
func (s *ColorSpring) SetTarget(c Color) { s.Spring.SetTarget(colorState(c)) }

// SetValue moves the value to c and zeroes the velocity. The target is kept.
func (s *ColorSpring) SetValue(c Color) { s.Spring.SetValue(colorState(c)) }

// ResetTo sets value and target to c and zeroes the velocity.
func (s *ColorSpring) ResetTo(c Color) { s.Spring.ResetTo(colorState(c)) }

// SetLimits enables per-channel clamping to [min, max].
func (s *ColorSpring) SetLimits(min, max Color) {
	s.Spring.SetLimits(colorState(min), colorState(max))
}

// ClampUnit enables clamping of every channel to [0, 1].
func (s *ColorSpring) ClampUnit() {
	s.SetLimits(ColorTransparent, ColorWhite)
}

// UseLimits reports whether clamping is enabled.
func (s *ColorSpring) UseLimits() bool { return s.useLimits }

// Limits returns the clamp bounds and whether they are enabled.
func (s *ColorSpring) Limits() (min, max Color, enabled bool) {
	lo, hi, on := s.Spring.Limits()
	return stateColor(lo), stateColor(hi), on
}

// OnChange registers fn as the value-changed callback.
func (s *ColorSpring) OnChange(fn func(c Color)) {
	if fn == nil {
		s.OnValueChanged = nil
		return
	}
	s.OnValueChanged = func(st State) { fn(stateColor(st)) }
}

// OnLock registers fn as the locked callback.
func (s *ColorSpring) OnLock(fn func(c Color)) {
	if fn == nil {
		s.OnLocked = nil
		return
	}
	s.OnLocked = func(st State) { fn(stateColor(st)) }
}

// OnUnlock registers fn as the unlocked callback.
func (s *ColorSpring) OnUnlock(fn func(c Color)) {
	if fn == nil {
		s.OnUnlocked = nil
		return
	}
	s.OnUnlocked = func(st State) { fn(stateColor(st)) }
}
