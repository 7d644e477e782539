package renderer2d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/gputest"
)

const eps = 1e-4

func approx(a, b float32) bool {
	d := a - b
	return d < eps && d > -eps
}

type testCamera struct {
	eye  mgl32.Vec3
	view Rect
}

func (c testCamera) WorldPosition() mgl32.Vec3 { return c.eye }
func (c testCamera) Viewport() Rect            { return c.view }

// everything inside ±1000 is visible.
var wideCamera = testCamera{view: RectXYWH(-1000, -1000, 2000, 2000)}

func newTextures(t *testing.T, dev *gputest.Device, n int) (*TextureSet, []TextureID) {
	t.Helper()
	ts, err := NewTextureSet(dev)
	if err != nil {
		t.Fatalf("NewTextureSet() error = %v", err)
	}
	ids := make([]TextureID, n)
	for i := range ids {
		id, err := ts.Create(core.TextureDesc{Width: 1, Height: 1, Pixels: []byte{1, 2, 3, 4}})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids[i] = id
	}
	return ts, ids
}

func newStartedBatch(t *testing.T, z, maxQuads int) (*Batch, *gputest.Device, *TextureSet, []TextureID) {
	t.Helper()
	dev := gputest.New()
	ts, ids := newTextures(t, dev, 3)
	b := NewBatch(dev, ts, z, maxQuads)
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return b, dev, ts, ids
}

func quadsWithTextures(texs ...TextureID) []Quad {
	out := make([]Quad, len(texs))
	for i, tex := range texs {
		out[i] = NewQuad(float32(i), 0, 1, 1, tex)
	}
	return out
}
