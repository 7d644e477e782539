package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
)

// OrthoCamera2D provides an orthographic camera with position, rotation, zoom.
// The projection is Y-down (screen-like) to match sprite layers, which pack
// their quads Y-down.
type OrthoCamera2D struct {
	HalfW, HalfH float32
	Near, Far    float32
	X, Y         float32
	RotationRad  float32
	Zoom         float32 // 1 = no zoom
	vp           mgl32.Mat4
	dirty        bool
}

var _ renderer2d.Camera = (*OrthoCamera2D)(nil)

func NewOrtho2D(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{
		HalfW: float32(width) * 0.5,
		HalfH: float32(height) * 0.5,
		Near:  -100, Far: 100,
		Zoom: 1,
	}
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	c.HalfW = float32(w) * 0.5
	c.HalfH = float32(h) * 0.5
	c.dirty = true
}

func (c *OrthoCamera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }
func (c *OrthoCamera2D) Rotate(dRad float32) { c.RotationRad += dRad; c.dirty = true }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *OrthoCamera2D) VP() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	hw, hh := c.HalfW/c.Zoom, c.HalfH/c.Zoom
	// bottom > top flips Y so +Y points down the screen
	proj := mgl32.Ortho(-hw, hw, hh, -hh, c.Near, c.Far)
	view := mgl32.HomogRotate3DZ(-c.RotationRad).Mul4(mgl32.Translate3D(-c.X, -c.Y, 0))
	c.vp = proj.Mul4(view)
	c.dirty = false
}

// WorldPosition is the eye: above the camera centre at the near plane, so
// quads with a larger z are nearer.
func (c *OrthoCamera2D) WorldPosition() mgl32.Vec3 {
	return mgl32.Vec3{c.X, c.Y, -c.Near}
}

// Viewport is the world-space AABB of the visible area.
func (c *OrthoCamera2D) Viewport() renderer2d.Rect {
	hw, hh := c.HalfW/c.Zoom, c.HalfH/c.Zoom
	rot := mgl32.Rotate2D(c.RotationRad)
	center := mgl32.Vec2{c.X, c.Y}
	var r renderer2d.Rect
	for i, p := range [4]mgl32.Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
		w := center.Add(rot.Mul2x1(p))
		if i == 0 {
			r = renderer2d.Rect{Min: w, Max: w}
			continue
		}
		r = r.Extend(w)
	}
	return r
}

// ScreenToWorld maps a pixel position (origin top-left) to world space.
func (c *OrthoCamera2D) ScreenToWorld(px, py float32) mgl32.Vec2 {
	local := mgl32.Vec2{(px - c.HalfW) / c.Zoom, (py - c.HalfH) / c.Zoom}
	return mgl32.Vec2{c.X, c.Y}.Add(mgl32.Rotate2D(c.RotationRad).Mul2x1(local))
}
