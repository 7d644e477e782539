package renderer2d

import (
	"math"
	"slices"
	"testing"
	"testing/quick"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/colors"
)

func TestLayoutSizes(t *testing.T) {
	tests := []struct {
		name   string
		layout VertexLayout
		floats int
		offs   [3]int
	}{
		{"sprite", SpriteLayout, 9, [3]int{0, 12, 20}},
		{"canvas", CanvasLayout, 8, [3]int{0, 8, 16}},
		{"mesh", MeshLayout, 8, [3]int{0, 12, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Floats(); got != tt.floats {
				t.Errorf("Floats() = %d, want %d", got, tt.floats)
			}
			cl := tt.layout.Core()
			if cl.Stride != tt.floats*4 {
				t.Errorf("Stride = %d, want %d", cl.Stride, tt.floats*4)
			}
			for i, a := range cl.Attributes {
				if a.Location != i || a.Offset != tt.offs[i] {
					t.Errorf("attribute %d = %+v, want location %d offset %d", i, a, i, tt.offs[i])
				}
			}
		})
	}
}

func TestPackSpriteVertex(t *testing.T) {
	q := NewQuad(10, 20, 4, 2, 1)
	q.Tint = colors.Color{0.1, 0.2, 0.3, 0.4}
	verts := Pack(nil, 0, []Quad{q}, SpriteLayout, false)

	if len(verts) != 4*9 {
		t.Fatalf("len = %d, want 36", len(verts))
	}
	want := [][]float32{
		{8, 21, 0, 0, 0, 0.1, 0.2, 0.3, 0.4},
		{12, 21, 0, 1, 0, 0.1, 0.2, 0.3, 0.4},
		{12, 19, 0, 1, 1, 0.1, 0.2, 0.3, 0.4},
		{8, 19, 0, 0, 1, 0.1, 0.2, 0.3, 0.4},
	}
	for v, w := range want {
		got := verts[v*9 : (v+1)*9]
		for i := range w {
			if !approx(got[i], w[i]) {
				t.Fatalf("vertex %d = %v, want %v", v, got, w)
			}
		}
	}
}

func TestPackCanvasDropsZ(t *testing.T) {
	q := NewQuad(5, 5, 10, 10, NoTexture)
	verts := Pack(nil, 0, []Quad{q}, CanvasLayout, true)
	// TL in a Y-down space is the top-left pixel corner.
	if verts[0] != 0 || verts[1] != 0 {
		t.Errorf("TL = (%v,%v), want (0,0)", verts[0], verts[1])
	}
	if verts[2] != 0 || verts[3] != 0 {
		t.Errorf("TL uv = (%v,%v), want (0,0)", verts[2], verts[3])
	}
}

func TestPackMeshNormal(t *testing.T) {
	m := mgl32.HomogRotate3DY(math.Pi / 2)
	q := NewQuad(0, 0, 1, 1, NoTexture)
	q.Model = &m
	verts := Pack(nil, 0, []Quad{q}, MeshLayout, false)
	n := verts[5:8]
	if !approx(n[0], 1) || !approx(n[1], 0) || !approx(n[2], 0) {
		t.Errorf("normal = %v, want (1,0,0)", n)
	}
}

func TestPackVertexCount(t *testing.T) {
	f := func(n uint8) bool {
		quads := quadsWithTextures(make([]TextureID, int(n)%64)...)
		verts := Pack(nil, 0, quads, SpriteLayout, false)
		return len(verts) == len(quads)*VertsPerQuad*SpriteLayout.Floats()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPackIdempotent(t *testing.T) {
	quads := quadsWithTextures(3, 1, 2, 2)
	quads[1].Rotation = 0.7
	quads[2].Tint = colors.Red

	a := Pack(nil, 0, quads, SpriteLayout, true)
	b := Pack(make([]float32, 0, 1), 0, quads, SpriteLayout, true)
	if !slices.Equal(a, b) {
		t.Fatal("packing the same quads twice produced different vertices")
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			t.Fatalf("float %d differs bitwise", i)
		}
	}
}

func TestPackPartialRegion(t *testing.T) {
	fpq := SpriteLayout.FloatsPerQuad()
	dst := make([]float32, 3*fpq)
	for i := range dst {
		dst[i] = -7
	}
	dst = Pack(dst, 1, quadsWithTextures(1), SpriteLayout, false)

	if len(dst) != 3*fpq {
		t.Fatalf("len = %d, want %d", len(dst), 3*fpq)
	}
	for i, v := range dst {
		inside := i >= fpq && i < 2*fpq
		if !inside && v != -7 {
			t.Fatalf("float %d outside the packed region was overwritten", i)
		}
		if inside && v == -7 {
			t.Fatalf("float %d inside the packed region was not written", i)
		}
	}
}

func TestQuadIndices(t *testing.T) {
	got := QuadIndices(2)
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if !slices.Equal(got, want) {
		t.Errorf("QuadIndices(2) = %v, want %v", got, want)
	}
}
