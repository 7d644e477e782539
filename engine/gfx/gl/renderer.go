// Package glbackend implements core.Renderer on OpenGL 3.3 core.
package glbackend

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/quadbatch/engine/core"
)

// RendererGL is the frame-level GL state plus the core.Device the batches
// draw through. All calls must happen on the thread owning the context.
type RendererGL struct {
	win      core.Window
	buffers  map[core.Buffer]uint32 // handle -> bind target
	uniforms map[core.Program]map[string]int32
}

var _ core.Renderer = (*RendererGL)(nil)

// NewRendererGL expects the window's context to be current and gl.Init done.
func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{
		win:      win,
		buffers:  make(map[core.Buffer]uint32),
		uniforms: make(map[core.Program]map[string]int32),
	}
	r.Init()
	return r, nil
}

func (r *RendererGL) Init() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	r.SetBlend(true)
	slog.Info("gl renderer ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
}

func (r *RendererGL) Shutdown() {
	for b := range r.buffers {
		r.DeleteBuffer(b)
	}
	for p := range r.uniforms {
		r.DeleteProgram(p)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) SetViewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (r *RendererGL) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func (r *RendererGL) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (r *RendererGL) DrawIndexed(prim core.Primitive, indexCount, indexOffsetBytes int) {
	gl.DrawElements(primitiveMode(prim), int32(indexCount), gl.UNSIGNED_INT, gl.PtrOffset(indexOffsetBytes))
}
