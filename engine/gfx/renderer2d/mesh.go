package renderer2d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/core"
)

// StaticMesh is geometry built from quads once and drawn many times. It uses
// MeshLayout (normals instead of tint) and static buffers.
type StaticMesh struct {
	dev      core.Device
	textures TextureProvider
	vao      core.VertexArray
	vbo      core.Buffer
	ibo      core.Buffer
	calls    []DrawCall
	quads    int
}

// NewStaticMesh sorts quads by texture, packs and uploads them.
func NewStaticMesh(dev core.Device, textures TextureProvider, quads []Quad) (*StaticMesh, error) {
	sorted := make([]Quad, len(quads))
	copy(sorted, quads)
	for i := range sorted {
		sorted[i].Kind = KindMesh
	}
	sorted = (&TextureSort{}).Order(sorted[:0:0], sorted, nil)
	verts := Pack(nil, 0, sorted, MeshLayout, false)

	m := &StaticMesh{dev: dev, textures: textures, quads: len(sorted)}
	m.calls = Coalesce(nil, sorted)

	vao, err := dev.CreateVertexArray()
	if err != nil {
		return nil, fmt.Errorf("create vertex array: %w", err)
	}
	m.vao = vao
	dev.BindVertexArray(vao)
	defer dev.BindVertexArray(0)

	if m.vbo, err = dev.CreateBuffer(core.BufferVertex, len(verts)*4, core.UsageStatic); err != nil {
		m.Destroy()
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	if err := dev.UpdateBuffer(m.vbo, 0, verts); err != nil {
		m.Destroy()
		return nil, err
	}
	cl := MeshLayout.Core()
	for _, a := range cl.Attributes {
		dev.SetVertexAttribute(a.Location, a.Size, cl.Stride, a.Offset)
	}
	if m.ibo, err = dev.CreateBuffer(core.BufferIndex, len(sorted)*IndicesPerQuad*4, core.UsageStatic); err != nil {
		m.Destroy()
		return nil, fmt.Errorf("create index buffer: %w", err)
	}
	if err := dev.UpdateBuffer(m.ibo, 0, QuadIndices(len(sorted))); err != nil {
		m.Destroy()
		return nil, err
	}
	return m, nil
}

func (m *StaticMesh) DrawCalls() []DrawCall { return m.calls }
func (m *StaticMesh) QuadCount() int        { return m.quads }

// Render draws the mesh with whatever program is bound.
func (m *StaticMesh) Render() error {
	if m.vao == 0 {
		return ErrDestroyed
	}
	texs := make([]core.Texture, len(m.calls))
	for i, c := range m.calls {
		tex, err := m.textures.Texture(c.Texture)
		if err != nil {
			return err
		}
		texs[i] = tex
	}

	m.dev.BindVertexArray(m.vao)
	for loc := 0; loc < 3; loc++ {
		m.dev.EnableVertexAttribute(loc)
	}
	for i, c := range m.calls {
		m.dev.BindTexture(texs[i])
		m.dev.DrawIndexed(core.PrimitiveTriangles, c.Count, c.OffsetBytes())
	}
	for loc := 0; loc < 3; loc++ {
		m.dev.DisableVertexAttribute(loc)
	}
	m.dev.BindVertexArray(0)
	return nil
}

func (m *StaticMesh) Destroy() {
	if m.vao != 0 {
		m.dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		m.dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.ibo != 0 {
		m.dev.DeleteBuffer(m.ibo)
		m.ibo = 0
	}
}

// CubeQuads returns the six faces of a cube of edge size centred on the
// origin of model, all sampling tex fully.
func CubeQuads(size float32, tex TextureID, model mgl32.Mat4) []Quad {
	half := size / 2
	faces := [6]mgl32.Mat4{
		mgl32.Ident4(), // front  +Z
		mgl32.HomogRotate3DY(mgl32.DegToRad(180)), // back   -Z
		mgl32.HomogRotate3DY(mgl32.DegToRad(-90)), // left   -X
		mgl32.HomogRotate3DY(mgl32.DegToRad(90)),  // right  +X
		mgl32.HomogRotate3DX(mgl32.DegToRad(-90)), // top    +Y
		mgl32.HomogRotate3DX(mgl32.DegToRad(90)),  // bottom -Y
	}
	out := make([]Quad, 0, len(faces))
	for _, f := range faces {
		m := model.Mul4(f).Mul4(mgl32.Translate3D(0, 0, half))
		q := NewQuad(0, 0, size, size, tex)
		q.Kind = KindMesh
		q.Model = &m
		out = append(out, q)
	}
	return out
}
