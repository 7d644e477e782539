// Package canvas is the immediate-mode overlay: rects, images and text are
// issued every frame in screen pixels (origin top-left, Y down) and drawn in
// one pass at EndFrame.
package canvas

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
)

// Uniform names the canvas program must declare.
const (
	UniformProjection = "uProjection"
	UniformTexture    = "uTexture"
)

// ErrUnbalancedTranslate is the panic value of PopTranslate on an empty stack.
var ErrUnbalancedTranslate = errors.New("canvas: pop without matching push")

// Options configure a Canvas. Zero fields take the defaults.
type Options struct {
	MaxQuads       int     // 1000
	FontSize       float32 // 32
	VertexShader   string
	FragmentShader string
}

// Style is passed with every draw call. The zero Style draws white with the
// canvas font at the canvas font size.
type Style struct {
	Color    colors.Color
	FontSize float32
	Font     Font
}

type Canvas struct {
	dev      core.Device
	buffers  *renderer2d.QuadBuffers
	program  core.Program
	uProj    int32
	uTex     int32
	font     Font
	fontSize float32

	quads   []renderer2d.Quad
	ordered []renderer2d.Quad
	order   renderer2d.TextureSort

	translate mgl32.Vec2
	stack     []mgl32.Vec2

	stats   renderer2d.Statistics
	dropped int
}

// New compiles the canvas program and checks its uniforms. Buffers are
// allocated by Start. font may be nil if Text is never called without one.
func New(dev core.Device, textures renderer2d.TextureProvider, font Font, opts Options) (*Canvas, error) {
	if opts.MaxQuads <= 0 {
		opts.MaxQuads = 1000
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 32
	}
	prog, err := dev.CreateProgram(opts.VertexShader, opts.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("canvas program: %w", err)
	}
	uProj, err := renderer2d.RequireUniform(dev, prog, UniformProjection)
	if err != nil {
		dev.DeleteProgram(prog)
		return nil, err
	}
	uTex, err := renderer2d.RequireUniform(dev, prog, UniformTexture)
	if err != nil {
		dev.DeleteProgram(prog)
		return nil, err
	}
	return &Canvas{
		dev:      dev,
		buffers:  renderer2d.NewQuadBuffers(dev, textures, renderer2d.CanvasLayout, opts.MaxQuads, true),
		program:  prog,
		uProj:    uProj,
		uTex:     uTex,
		font:     font,
		fontSize: opts.FontSize,
		quads:    make([]renderer2d.Quad, 0, opts.MaxQuads),
	}, nil
}

func (c *Canvas) Start() error { return c.buffers.Start() }

func (c *Canvas) MaxQuads() int { return c.buffers.MaxQuads() }

// Len is the number of quads issued this frame.
func (c *Canvas) Len() int { return len(c.quads) }

// Quads returns the quads issued this frame, in issue order.
func (c *Canvas) Quads() []renderer2d.Quad { return c.quads }

func (c *Canvas) Font() Font        { return c.font }
func (c *Canvas) SetFont(f Font)    { c.font = f }
func (c *Canvas) FontSize() float32 { return c.fontSize }
func (c *Canvas) SetFontSize(s float32) {
	if s > 0 {
		c.fontSize = s
	}
}

// BeginFrame drops last frame's quads.
func (c *Canvas) BeginFrame() {
	c.quads = c.quads[:0]
	c.dropped = 0
}

func (c *Canvas) push(q renderer2d.Quad) {
	if len(c.quads) >= c.buffers.MaxQuads() {
		c.dropped++
		renderer2d.Logger().Warn("canvas is full", "max", c.buffers.MaxQuads())
		return
	}
	c.quads = append(c.quads, q)
}

// quad builds a screen quad covering (x,y,w,h) after translation.
func (c *Canvas) quad(tex renderer2d.TextureID, x, y, w, h float32, col colors.Color) renderer2d.Quad {
	x += c.translate[0]
	y += c.translate[1]
	q := renderer2d.NewQuad(x+w/2, y+h/2, w, h, tex)
	q.Tint = col.Or(colors.White)
	return q
}

// Rect draws a solid rectangle.
func (c *Canvas) Rect(x, y, w, h float32, s Style) {
	c.push(c.quad(renderer2d.NoTexture, x, y, w, h, s.Color))
}

// Image draws a whole texture tinted by s.Color.
func (c *Canvas) Image(tex renderer2d.TextureID, x, y, w, h float32, s Style) {
	c.push(c.quad(tex, x, y, w, h, s.Color))
}

// ImageUV draws the sub-rectangle sub of a texture.
func (c *Canvas) ImageUV(sub renderer2d.SubTexture, x, y, w, h float32, s Style) {
	q := c.quad(sub.Texture, x, y, w, h, s.Color)
	sub.Apply(&q)
	c.push(q)
}

// EndFrame sorts this frame's quads by texture, keeping paint order within a
// texture, and draws them over a width x height viewport with blending on and
// depth testing off.
func (c *Canvas) EndFrame(width, height int) error {
	c.ordered = c.order.Order(c.ordered, c.quads, nil)

	c.dev.SetViewport(0, 0, width, height)
	c.dev.SetDepthTest(false)
	c.dev.SetBlend(true)
	c.dev.UseProgram(c.program)
	defer c.dev.UseProgram(0)
	c.dev.SetUniformMat4(c.uProj, mgl32.Ortho2D(0, float32(width), float32(height), 0))
	c.dev.SetUniformInt(c.uTex, 0)

	st, err := c.buffers.Draw(c.ordered)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	st.DroppedCount += c.dropped
	c.stats = st
	if len(c.stack) != 0 {
		renderer2d.Logger().Warn("canvas translate stack not empty at end of frame", "depth", len(c.stack))
	}
	return nil
}

// Stats returns the statistics of the last EndFrame.
func (c *Canvas) Stats() renderer2d.Statistics { return c.stats }

func (c *Canvas) Destroy() {
	c.buffers.Destroy()
	if c.program != 0 {
		c.dev.DeleteProgram(c.program)
		c.program = 0
	}
	c.quads = nil
}
