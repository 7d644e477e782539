package renderer2d

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/colors"
)

// TextureID names a texture known to a TextureProvider. Zero is the flat
// colour texture (1x1 white), so untextured quads batch together.
type TextureID uint32

const NoTexture TextureID = 0

// Kind is the closed set of things a quad can stand for.
type Kind uint8

const (
	KindSprite Kind = iota
	KindMesh
	KindGlyph
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindMesh:
		return "mesh"
	case KindGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// Quad is one textured rectangle. Position is the centre of the rectangle in
// the space of Model (identity when nil); Offset is an anchor added to it.
// Corners are produced in TL, TR, BR, BL order, matching UV0 at TL and UV1 at BR.
type Quad struct {
	Kind     Kind
	Texture  TextureID
	Position mgl32.Vec3
	Offset   mgl32.Vec3
	Size     mgl32.Vec2
	Rotation float32 // radians around Z
	UV0, UV1 mgl32.Vec2
	Tint     colors.Color
	Model    *mgl32.Mat4
}

// NewQuad returns a white sprite quad sampling the full texture.
func NewQuad(x, y, w, h float32, tex TextureID) Quad {
	return Quad{
		Texture:  tex,
		Position: mgl32.Vec3{x, y, 0},
		Size:     mgl32.Vec2{w, h},
		UV1:      mgl32.Vec2{1, 1},
		Tint:     colors.White,
	}
}

// unit corners, Y-up: TL, TR, BR, BL.
var unitCorners = [4]mgl32.Vec2{
	{-0.5, 0.5},
	{0.5, 0.5},
	{0.5, -0.5},
	{-0.5, -0.5},
}

func (q *Quad) model() mgl32.Mat4 {
	if q.Model == nil {
		return mgl32.Ident4()
	}
	return *q.Model
}

// Center is the transformed anchor point, used for depth sorting.
func (q *Quad) Center() mgl32.Vec3 {
	return mgl32.TransformCoordinate(q.Position.Add(q.Offset), q.model())
}

// Corners returns the four transformed corners. flipY mirrors the local
// corners for Y-down spaces so TL stays visually top-left.
func (q *Quad) Corners(flipY bool) [4]mgl32.Vec3 {
	var out [4]mgl32.Vec3
	base := q.Position.Add(q.Offset)
	rot := mgl32.Rotate2D(q.Rotation)
	m := q.model()
	for i, c := range unitCorners {
		local := mgl32.Vec2{c[0] * q.Size[0], c[1] * q.Size[1]}
		if flipY {
			local[1] = -local[1]
		}
		if q.Rotation != 0 {
			local = rot.Mul2x1(local)
		}
		p := base.Add(mgl32.Vec3{local[0], local[1], 0})
		if q.Model != nil {
			p = mgl32.TransformCoordinate(p, m)
		}
		out[i] = p
	}
	return out
}

// UVs returns texture coordinates in corner order.
func (q *Quad) UVs() [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{
		{q.UV0[0], q.UV0[1]},
		{q.UV1[0], q.UV0[1]},
		{q.UV1[0], q.UV1[1]},
		{q.UV0[0], q.UV1[1]},
	}
}

// Bounds is the XY bounding rectangle of the transformed corners.
func (q *Quad) Bounds(flipY bool) Rect {
	cs := q.Corners(flipY)
	r := Rect{Min: cs[0].Vec2(), Max: cs[0].Vec2()}
	for _, c := range cs[1:] {
		r = r.Extend(c.Vec2())
	}
	return r
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max mgl32.Vec2
}

func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Min: mgl32.Vec2{x, y}, Max: mgl32.Vec2{x + w, y + h}}
}

func (r Rect) Width() float32  { return r.Max[0] - r.Min[0] }
func (r Rect) Height() float32 { return r.Max[1] - r.Min[1] }

// Extend grows r to contain p.
func (r Rect) Extend(p mgl32.Vec2) Rect {
	r.Min = mgl32.Vec2{min(r.Min[0], p[0]), min(r.Min[1], p[1])}
	r.Max = mgl32.Vec2{max(r.Max[0], p[0]), max(r.Max[1], p[1])}
	return r
}

// Intersects treats touching edges as intersecting.
func (r Rect) Intersects(o Rect) bool {
	return r.Min[0] <= o.Max[0] && r.Max[0] >= o.Min[0] &&
		r.Min[1] <= o.Max[1] && r.Max[1] >= o.Min[1]
}

func (r Rect) Contains(p mgl32.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}
