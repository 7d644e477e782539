package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/gputest"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
)

// packedVertices flushes q through a batch on layer z and returns the
// uploaded vertex data.
func packedVertices(t *testing.T, cam *OrthoCamera2D, q renderer2d.Quad, z int) []float32 {
	t.Helper()
	dev := gputest.New()
	ts, err := renderer2d.NewTextureSet(dev)
	if err != nil {
		t.Fatal(err)
	}
	b := renderer2d.NewBatch(dev, ts, z, 4)
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(b.Destroy)
	if err := b.Add(&q); err != nil {
		t.Fatal(err)
	}
	if err := b.Flush(cam); err != nil {
		t.Fatal(err)
	}
	for _, buf := range dev.Buffers {
		if buf.Kind == core.BufferVertex {
			return buf.Floats
		}
	}
	t.Fatal("no vertex buffer")
	return nil
}

func TestTextureTopRowDrawsOnTop(t *testing.T) {
	cam := NewOrtho2D(200, 100)
	q := renderer2d.NewQuad(0, 0, 20, 10, renderer2d.NoTexture)
	stride := renderer2d.SpriteLayout.Floats()

	for _, z := range []int{0, 2, renderer2d.TransparentZ} {
		v := packedVertices(t, cam, q, z)
		ndcY := func(i int) float32 {
			p := v[i*stride:]
			return cam.VP().Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})[1]
		}
		uv := func(i int) mgl32.Vec2 {
			p := v[i*stride+renderer2d.SpriteLayout.PositionSize:]
			return mgl32.Vec2{p[0], p[1]}
		}
		if uv(0) != (mgl32.Vec2{0, 0}) || uv(3) != (mgl32.Vec2{0, 1}) {
			t.Fatalf("z=%d: uv0 %v, uv3 %v", z, uv(0), uv(3))
		}
		if !near(ndcY(0), 0.1) || !near(ndcY(3), -0.1) {
			t.Errorf("z=%d: top row at ndc y %v, bottom row at %v; want 0.1, -0.1", z, ndcY(0), ndcY(3))
		}
	}
}
