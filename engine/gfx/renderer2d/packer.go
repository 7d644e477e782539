package renderer2d

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/core"
)

const (
	VertsPerQuad   = 4
	IndicesPerQuad = 6
	uvSize         = 2
)

// quad topology relative to the quad's first vertex (TL, TR, BR, BL).
var quadTemplate = [IndicesPerQuad]uint32{0, 1, 2, 0, 2, 3}

// Attribute selects what fills the third vertex slot.
type Attribute uint8

const (
	AttribColor  Attribute = iota // RGBA tint, 4 floats
	AttribNormal                  // surface normal, 3 floats
)

// VertexLayout is the interleaved layout [position, uv, color|normal].
type VertexLayout struct {
	PositionSize int // 2 or 3
	Third        Attribute
}

var (
	SpriteLayout = VertexLayout{PositionSize: 3, Third: AttribColor}
	CanvasLayout = VertexLayout{PositionSize: 2, Third: AttribColor}
	MeshLayout   = VertexLayout{PositionSize: 3, Third: AttribNormal}
)

func (l VertexLayout) thirdSize() int {
	if l.Third == AttribNormal {
		return 3
	}
	return 4
}

// Floats is the number of float32 per vertex.
func (l VertexLayout) Floats() int { return l.PositionSize + uvSize + l.thirdSize() }

// Stride is the vertex size in bytes.
func (l VertexLayout) Stride() int { return l.Floats() * 4 }

func (l VertexLayout) FloatsPerQuad() int { return VertsPerQuad * l.Floats() }

// Core converts to the device-level description (locations 0, 1, 2).
func (l VertexLayout) Core() core.VertexLayout {
	return core.VertexLayout{
		Stride: l.Stride(),
		Attributes: []core.VertexAttrib{
			{Location: 0, Size: l.PositionSize, Type: core.AttribFloat32, Offset: 0},
			{Location: 1, Size: uvSize, Type: core.AttribFloat32, Offset: l.PositionSize * 4},
			{Location: 2, Size: l.thirdSize(), Type: core.AttribFloat32, Offset: (l.PositionSize + uvSize) * 4},
		},
	}
}

// Pack writes len(quads)*4 vertices into dst starting at quad index first,
// growing dst when it is too short, and returns it. Nothing outside the
// written region is touched.
func Pack(dst []float32, first int, quads []Quad, layout VertexLayout, flipY bool) []float32 {
	fpq := layout.FloatsPerQuad()
	need := (first + len(quads)) * fpq
	if len(dst) < need {
		if cap(dst) >= need {
			dst = dst[:need]
		} else {
			grown := make([]float32, need)
			copy(grown, dst)
			dst = grown
		}
	}

	for i := range quads {
		q := &quads[i]
		corners := q.Corners(flipY)
		uvs := q.UVs()
		var normal mgl32.Vec3
		if layout.Third == AttribNormal {
			normal = quadNormal(q)
		}

		o := (first + i) * fpq
		for j := 0; j < VertsPerQuad; j++ {
			for k := 0; k < layout.PositionSize; k++ {
				dst[o+k] = corners[j][k]
			}
			o += layout.PositionSize
			dst[o], dst[o+1] = uvs[j][0], uvs[j][1]
			o += uvSize
			if layout.Third == AttribNormal {
				dst[o], dst[o+1], dst[o+2] = normal[0], normal[1], normal[2]
				o += 3
			} else {
				dst[o], dst[o+1], dst[o+2], dst[o+3] = q.Tint[0], q.Tint[1], q.Tint[2], q.Tint[3]
				o += 4
			}
		}
	}
	return dst
}

func quadNormal(q *Quad) mgl32.Vec3 {
	n := mgl32.Vec3{0, 0, 1}
	if q.Model != nil {
		n = q.Model.Mul4x1(n.Vec4(0)).Vec3()
	}
	if n.Len() == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

// QuadIndices builds the static index buffer for maxQuads quads.
func QuadIndices(maxQuads int) []uint32 {
	inds := make([]uint32, maxQuads*IndicesPerQuad)
	for i := 0; i < maxQuads; i++ {
		base := uint32(i * VertsPerQuad)
		for j, t := range quadTemplate {
			inds[i*IndicesPerQuad+j] = t + base
		}
	}
	return inds
}
