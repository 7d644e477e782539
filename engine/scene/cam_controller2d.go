package scene

import (
	"math"

	"github.com/hubastard/quadbatch/engine/core"
)

// OrthoController2D: WASD move, mouse wheel zoom.
type OrthoController2D struct {
	MoveSpeed float32 // world units per second at zoom 1
	ZoomSpeed float32 // factor per wheel notch
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 400,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

func (cc *OrthoController2D) Update(in *core.Input, dt float32) {
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom

	// Y-down: W moves up the screen
	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Move(speed, 0)
	}

	if s := in.ConsumeScroll(); s != 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * float32(math.Pow(float64(cc.ZoomSpeed), s)))
	}
}

// OnEvent keeps the camera extent in sync with the framebuffer.
func (cc *OrthoController2D) OnEvent(ev core.Event) {
	if r, ok := ev.(core.EventResize); ok && r.W > 0 && r.H > 0 {
		cc.Camera.SetViewportPixels(r.W, r.H)
	}
}
