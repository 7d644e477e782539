package renderer2d

import (
	"fmt"

	"github.com/hubastard/quadbatch/engine/core"
)

type bufferState uint8

const (
	stateUninitialized bufferState = iota
	stateStarted
	stateDestroyed
)

// QuadBuffers owns one vertex array: a dynamic vertex buffer sized for
// maxQuads quads and a static index buffer holding the quad template. Both
// live from Start to Destroy; Draw only rewrites the used vertex range.
type QuadBuffers struct {
	dev      core.Device
	textures TextureProvider
	layout   VertexLayout
	flipY    bool
	maxQuads int

	vao core.VertexArray
	vbo core.Buffer
	ibo core.Buffer

	verts []float32
	calls []DrawCall
	texs  []core.Texture
	state bufferState
}

func NewQuadBuffers(dev core.Device, textures TextureProvider, layout VertexLayout, maxQuads int, flipY bool) *QuadBuffers {
	if maxQuads <= 0 {
		maxQuads = 1000
	}
	return &QuadBuffers{
		dev:      dev,
		textures: textures,
		layout:   layout,
		flipY:    flipY,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*layout.FloatsPerQuad()),
	}
}

func (b *QuadBuffers) MaxQuads() int        { return b.maxQuads }
func (b *QuadBuffers) Layout() VertexLayout { return b.layout }

// DrawCalls returns the calls issued by the last Draw.
func (b *QuadBuffers) DrawCalls() []DrawCall { return b.calls }

// Vertices returns the vertex data uploaded by the last Draw.
func (b *QuadBuffers) Vertices() []float32 { return b.verts }

func (b *QuadBuffers) check() error {
	switch b.state {
	case stateUninitialized:
		return ErrNotStarted
	case stateDestroyed:
		return ErrDestroyed
	}
	return nil
}

// Start allocates the GPU buffers and writes the index template once.
func (b *QuadBuffers) Start() error {
	switch b.state {
	case stateStarted:
		return nil
	case stateDestroyed:
		return ErrDestroyed
	}

	vao, err := b.dev.CreateVertexArray()
	if err != nil {
		return fmt.Errorf("create vertex array: %w", err)
	}
	b.dev.BindVertexArray(vao)
	defer b.dev.BindVertexArray(0)

	vbo, err := b.dev.CreateBuffer(core.BufferVertex, b.maxQuads*b.layout.FloatsPerQuad()*4, core.UsageDynamic)
	if err != nil {
		b.dev.DeleteVertexArray(vao)
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	cl := b.layout.Core()
	for _, a := range cl.Attributes {
		b.dev.SetVertexAttribute(a.Location, a.Size, cl.Stride, a.Offset)
	}

	ibo, err := b.dev.CreateBuffer(core.BufferIndex, b.maxQuads*IndicesPerQuad*4, core.UsageStatic)
	if err != nil {
		b.dev.DeleteBuffer(vbo)
		b.dev.DeleteVertexArray(vao)
		return fmt.Errorf("create index buffer: %w", err)
	}
	if err := b.dev.UpdateBuffer(ibo, 0, QuadIndices(b.maxQuads)); err != nil {
		b.dev.DeleteBuffer(ibo)
		b.dev.DeleteBuffer(vbo)
		b.dev.DeleteVertexArray(vao)
		return fmt.Errorf("upload index template: %w", err)
	}

	b.vao, b.vbo, b.ibo = vao, vbo, ibo
	b.state = stateStarted
	Logger().Debug("quad buffers started", "max_quads", b.maxQuads, "stride", cl.Stride)
	return nil
}

// Draw packs quads in the given order, uploads them, coalesces and issues
// one bind + indexed draw per call. Textures are resolved before any GPU
// state changes, so an invalid id leaves nothing half-drawn.
func (b *QuadBuffers) Draw(quads []Quad) (Statistics, error) {
	var st Statistics
	if err := b.check(); err != nil {
		return st, err
	}
	if len(quads) > b.maxQuads {
		Logger().Warn("quad buffers overflow, dropping quads", "have", len(quads), "max", b.maxQuads)
		st.DroppedCount = len(quads) - b.maxQuads
		quads = quads[:b.maxQuads]
	}
	b.calls = b.calls[:0]
	b.verts = b.verts[:0]
	if len(quads) == 0 {
		return st, nil
	}

	b.calls = Coalesce(b.calls, quads)
	b.texs = b.texs[:0]
	for _, c := range b.calls {
		tex, err := b.textures.Texture(c.Texture)
		if err != nil {
			return st, err
		}
		b.texs = append(b.texs, tex)
	}

	b.verts = Pack(b.verts, 0, quads, b.layout, b.flipY)
	if err := b.dev.UpdateBuffer(b.vbo, 0, b.verts); err != nil {
		return st, fmt.Errorf("upload vertices: %w", err)
	}

	b.dev.BindVertexArray(b.vao)
	cl := b.layout.Core()
	for _, a := range cl.Attributes {
		b.dev.EnableVertexAttribute(a.Location)
	}
	for i, c := range b.calls {
		b.dev.BindTexture(b.texs[i])
		b.dev.DrawIndexed(core.PrimitiveTriangles, c.Count, c.OffsetBytes())
	}
	for _, a := range cl.Attributes {
		b.dev.DisableVertexAttribute(a.Location)
	}
	b.dev.BindVertexArray(0)

	st.DrawCalls = len(b.calls)
	st.QuadCount = len(quads)
	st.TextureCount = distinctTextures(b.calls)
	for i := range quads {
		if quads[i].Kind == KindGlyph {
			st.GlyphCount++
		}
	}
	return st, nil
}

// distinctTextures counts unique ids; calls are texture-sorted in the common
// case but depth-sorted layers can revisit a texture.
func distinctTextures(calls []DrawCall) int {
	n := 0
	for i, c := range calls {
		seen := false
		for _, p := range calls[:i] {
			if p.Texture == c.Texture {
				seen = true
				break
			}
		}
		if !seen {
			n++
		}
	}
	return n
}

// Destroy releases the GPU buffers. Safe to call more than once.
func (b *QuadBuffers) Destroy() {
	if b.state == stateStarted {
		b.dev.DeleteVertexArray(b.vao)
		b.dev.DeleteBuffer(b.vbo)
		b.dev.DeleteBuffer(b.ibo)
		b.vao, b.vbo, b.ibo = 0, 0, 0
	}
	b.state = stateDestroyed
	b.calls = b.calls[:0]
	b.verts = b.verts[:0]
}
