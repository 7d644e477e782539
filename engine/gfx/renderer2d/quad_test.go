package renderer2d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func checkCorners(t *testing.T, got [4]mgl32.Vec3, want [4][2]float32) {
	t.Helper()
	for i := range want {
		if !approx(got[i][0], want[i][0]) || !approx(got[i][1], want[i][1]) {
			t.Fatalf("corner %d = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestCornersOrder(t *testing.T) {
	q := NewQuad(10, 20, 4, 2, NoTexture)

	checkCorners(t, q.Corners(false), [4][2]float32{{8, 21}, {12, 21}, {12, 19}, {8, 19}})
	checkCorners(t, q.Corners(true), [4][2]float32{{8, 19}, {12, 19}, {12, 21}, {8, 21}})
}

func TestCornersRotationAndOffset(t *testing.T) {
	q := NewQuad(10, 20, 4, 2, NoTexture)
	q.Rotation = math.Pi / 2
	checkCorners(t, q.Corners(false), [4][2]float32{{9, 18}, {9, 22}, {11, 22}, {11, 18}})

	q = NewQuad(0, 0, 2, 2, NoTexture)
	q.Offset = mgl32.Vec3{5, 0, 0}
	if c := q.Center(); !approx(c[0], 5) || !approx(c[1], 0) {
		t.Errorf("Center() = %v, want (5,0,0)", c)
	}
}

func TestCornersModel(t *testing.T) {
	m := mgl32.Translate3D(100, 0, -3)
	q := NewQuad(1, 1, 2, 2, NoTexture)
	q.Model = &m

	checkCorners(t, q.Corners(false), [4][2]float32{{100, 2}, {102, 2}, {102, 0}, {100, 0}})
	if c := q.Center(); !approx(c[2], -3) {
		t.Errorf("Center().Z = %v, want -3", c[2])
	}
}

func TestUVsFollowCornerOrder(t *testing.T) {
	q := NewQuad(0, 0, 1, 1, 1)
	q.UV0 = mgl32.Vec2{0.25, 0.5}
	q.UV1 = mgl32.Vec2{0.75, 1}
	want := [4]mgl32.Vec2{{0.25, 0.5}, {0.75, 0.5}, {0.75, 1}, {0.25, 1}}
	if got := q.UVs(); got != want {
		t.Errorf("UVs() = %v, want %v", got, want)
	}
}

func TestRectIntersects(t *testing.T) {
	view := RectXYWH(0, 0, 100, 100)
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", RectXYWH(10, 10, 5, 5), true},
		{"overlap", RectXYWH(-5, -5, 10, 10), true},
		{"touching edge", RectXYWH(100, 10, 5, 5), true},
		{"left", RectXYWH(-20, 10, 5, 5), false},
		{"below", RectXYWH(10, 101, 5, 5), false},
		{"covers", RectXYWH(-10, -10, 200, 200), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Intersects(view); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := view.Intersects(tt.r); got != tt.want {
				t.Errorf("symmetric Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	q := NewQuad(0, 0, 2, 2, NoTexture)
	q.Rotation = math.Pi / 4
	b := q.Bounds(false)
	h := float32(math.Sqrt2)
	if !approx(b.Min[0], -h) || !approx(b.Max[0], h) || !approx(b.Min[1], -h) || !approx(b.Max[1], h) {
		t.Errorf("Bounds() = %+v, want ±%v", b, h)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindSprite: "sprite", KindMesh: "mesh", KindGlyph: "glyph", Kind(9): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
