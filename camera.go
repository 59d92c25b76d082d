package spring

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	camX = iota
	camY
	camZoom
)

// Camera is a 2D view whose position and zoom are driven by a spring. It can
// follow a Rig, scroll to a point, and be clamped to world bounds. Hitting a
// bound stops the camera on that axis without bouncing.
type Camera struct {
	// X and Y are the world-space position the camera centers on. Updated by
	// Update; write through ScrollTo or Snap.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	spring *Spring

	followTarget  *Rig
	followOffsetX float64
	followOffsetY float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	minZoom, maxZoom float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a camera at the origin with zoom 1 and a critically
// damped spring of stiffness 60.
func NewCamera(viewport Rect) *Camera {
	c := &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		spring:   New(3),
		minZoom:  0.1,
		maxZoom:  10,
		dirty:    true,
	}
	CriticalConfig(60).Apply(c.spring)
	c.spring.ResetTo(State{0, 0, 1})
	return c
}

// Spring returns the camera's underlying spring (channels x, y, zoom) so its
// stiffness and damping can be tuned or it can be locked.
func (c *Camera) Spring() *Spring {
	return c.spring
}

// Follow makes the camera track the rig's position plus the given offset.
func (c *Camera) Follow(r *Rig, offsetX, offsetY float64) {
	c.followTarget = r
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
}

// Unfollow stops tracking the current rig. The camera settles on its last target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo springs the camera toward the given world position.
func (c *Camera) ScrollTo(x, y float64) {
	c.spring.SetTargetChannel(camX, x)
	c.spring.SetTargetChannel(camY, y)
}

// ZoomTo springs the zoom toward z, clamped to the zoom limits.
func (c *Camera) ZoomTo(z float64) {
	c.spring.SetTargetChannel(camZoom, math.Max(c.minZoom, math.Min(z, c.maxZoom)))
}

// SetZoomLimits sets the zoom range. Values are swapped if min > max.
func (c *Camera) SetZoomLimits(min, max float64) {
	if min > max {
		min, max = max, min
	}
	c.minZoom = min
	c.maxZoom = max
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Snap jumps the camera to its current target with no animation. With bounds
// enabled the camera lands on the nearest in-bounds position.
func (c *Camera) Snap() {
	c.retarget()
	c.spring.Reset()
	c.ClampToBounds()
}

// Update advances follow, the spring and bounds clamping. The bounds are
// applied again after the step so a zoom change in the same frame is honored.
func (c *Camera) Update(dt float64) {
	c.retarget()
	c.spring.SetLimits(c.limits())
	c.spring.Update(dt)
	if c.spring.IsLocked() {
		c.sync()
		return
	}
	c.ClampToBounds()
}

// ClampToBounds moves the camera inside its bounds and zoom limits
// immediately, without animation.
func (c *Camera) ClampToBounds() {
	c.spring.SetLimits(c.limits())
	c.spring.ClampToLimits()
	c.sync()
}

// retarget points the spring at the follow target, if any.
func (c *Camera) retarget() {
	if c.followTarget == nil {
		return
	}
	pos := c.followTarget.Position.Value()
	c.spring.SetTargetChannel(camX, pos[0]+c.followOffsetX)
	c.spring.SetTargetChannel(camY, pos[1]+c.followOffsetY)
}

// limits returns the spring clamp bounds for the current zoom. Without bounds
// x and y are unlimited.
func (c *Camera) limits() (min, max State) {
	min = State{math.Inf(-1), math.Inf(-1), c.minZoom}
	max = State{math.Inf(1), math.Inf(1), c.maxZoom}
	if !c.BoundsEnabled {
		return min, max
	}

	zoom := math.Max(c.minZoom, math.Min(c.spring.Value()[camZoom], c.maxZoom))
	if zoom <= 0 {
		zoom = c.minZoom
	}
	halfW := c.Viewport.Width / (2 * zoom)
	halfH := c.Viewport.Height / (2 * zoom)

	min[camX], max[camX] = clampRange(c.Bounds.X, c.Bounds.Width, halfW)
	min[camY], max[camY] = clampRange(c.Bounds.Y, c.Bounds.Height, halfH)
	return min, max
}

// clampRange returns the allowed camera center range along one axis. If the
// bounds are smaller than the visible area the camera is pinned to the center.
func clampRange(origin, size, half float64) (lo, hi float64) {
	lo = origin + half
	hi = origin + size - half
	if lo > hi {
		mid := origin + size/2
		return mid, mid
	}
	return lo, hi
}

// sync copies the spring's value onto the exported fields.
func (c *Camera) sync() {
	v := c.spring.Value()
	if v[camX] != c.X || v[camY] != c.Y || v[camZoom] != c.Zoom {
		c.dirty = true
	}
	c.X, c.Y, c.Zoom = v[camX], v[camY], v[camZoom]
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// MarkDirty forces a recomputation of the view matrix. Call after changing
// Rotation or Viewport.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// GeoM returns the view transform as an ebiten.GeoM, for concatenating onto
// draw options.
func (c *Camera) GeoM() ebiten.GeoM {
	return geoM(c.computeViewMatrix())
}

// DrawImageOptions returns draw options that place r on screen through this
// camera, carrying the rig's tint.
func (c *Camera) DrawImageOptions(r *Rig) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(multiplyAffine(c.computeViewMatrix(), r.Matrix()))
	op.ColorScale.ScaleWithColorScale(r.Tint.Value().ColorScale())
	return op
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// InView reports whether the world point (x, y) is inside the visible area.
func (c *Camera) InView(x, y float64) bool {
	return c.VisibleBounds().Contains(x, y)
}
