package renderer2d

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/gputest"
)

func newRenderer(t *testing.T, maxQuads int) (*Renderer2D, *gputest.Device, []TextureID) {
	t.Helper()
	dev := gputest.New()
	ts, ids := newTextures(t, dev, 2)
	r, err := New(dev, ts, gputest.SpriteVertex, gputest.SpriteFragment, maxQuads)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(r.Destroy)
	return r, dev, ids
}

func onlyProgram(t *testing.T, dev *gputest.Device) core.Program {
	t.Helper()
	if len(dev.Programs) != 1 {
		t.Fatalf("programs = %d, want 1", len(dev.Programs))
	}
	for p := range dev.Programs {
		return p
	}
	return 0
}

func TestNewRequiresUniforms(t *testing.T) {
	dev := gputest.New()
	ts, _ := newTextures(t, dev, 0)

	_, err := New(dev, ts, gputest.CanvasVertex, gputest.SpriteFragment, 10)
	if !errors.Is(err, ErrUniformMissing) {
		t.Fatalf("New() without uVP error = %v, want ErrUniformMissing", err)
	}
	if len(dev.Programs) != 0 {
		t.Error("program leaked after a missing uniform")
	}
}

func TestRendererLayerOrder(t *testing.T) {
	r, _, ids := newRenderer(t, 10)
	quads := quadsWithTextures(ids[0], ids[1], ids[0])
	for i, z := range []int{2, TransparentZ, 0} {
		if err := r.Add(&quads[i], z); err != nil {
			t.Fatal(err)
		}
	}
	var got []int
	for _, b := range r.Batches() {
		got = append(got, b.ZIndex())
	}
	want := []int{0, 2, TransparentZ}
	if len(got) != len(want) {
		t.Fatalf("layers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("layers = %v, want %v", got, want)
		}
	}
}

func TestRendererOpensBatchWhenFull(t *testing.T) {
	r, _, ids := newRenderer(t, 2)
	quads := quadsWithTextures(ids[0], ids[0], ids[0])
	for i := range quads {
		if err := r.Add(&quads[i], 0); err != nil {
			t.Fatalf("Add(%d) error = %v", i, err)
		}
	}
	if n := len(r.Batches()); n != 2 {
		t.Fatalf("batches = %d, want 2", n)
	}
	if r.Batches()[0].Len() != 2 || r.Batches()[1].Len() != 1 {
		t.Errorf("batch sizes = %d, %d", r.Batches()[0].Len(), r.Batches()[1].Len())
	}

	if !r.Remove(&quads[2]) {
		t.Error("Remove() = false")
	}
	if r.Remove(&quads[2]) {
		t.Error("second Remove() = true")
	}
}

func TestRendererScene(t *testing.T) {
	r, dev, ids := newRenderer(t, 10)
	quads := quadsWithTextures(ids[0], ids[1], ids[0])
	_ = r.Add(&quads[0], 0)
	_ = r.Add(&quads[1], 0)
	_ = r.Add(&quads[2], TransparentZ)

	vp := mgl32.Ortho(0, 10, 0, 10, -1, 1)
	r.BeginScene(vp)
	if err := r.EndScene(wideCamera); err != nil {
		t.Fatalf("EndScene() error = %v", err)
	}

	prog := onlyProgram(t, dev)
	loc, _ := dev.UniformLocation(prog, UniformViewProjection)
	if got, ok := dev.Uniforms[loc].([16]float32); !ok || got != vp {
		t.Errorf("uVP = %v, want %v", dev.Uniforms[loc], vp)
	}
	loc, _ = dev.UniformLocation(prog, UniformTexture)
	if got := dev.Uniforms[loc]; got != int32(0) {
		t.Errorf("uTexture = %v, want 0", got)
	}
	if dev.BoundProg != 0 {
		t.Error("program left bound after EndScene")
	}

	st := r.Stats()
	if st.QuadCount != 3 || st.DrawCalls != 3 {
		t.Errorf("Stats() = %+v, want 3 quads in 3 calls", st)
	}
	if len(dev.Draws) != 3 {
		t.Errorf("draws = %d, want 3", len(dev.Draws))
	}
}

func TestRendererEndSceneWrapsError(t *testing.T) {
	r, _, _ := newRenderer(t, 10)
	q := NewQuad(0, 0, 1, 1, 77)
	_ = r.Add(&q, 3)
	r.BeginScene(mgl32.Ident4())
	err := r.EndScene(wideCamera)
	if !errors.Is(err, ErrInvalidTexture) {
		t.Errorf("EndScene() error = %v, want ErrInvalidTexture", err)
	}
}

func TestRendererDestroy(t *testing.T) {
	dev := gputest.New()
	ts, ids := newTextures(t, dev, 1)
	r, err := New(dev, ts, gputest.SpriteVertex, gputest.SpriteFragment, 4)
	if err != nil {
		t.Fatal(err)
	}
	q := NewQuad(0, 0, 1, 1, ids[0])
	_ = r.Add(&q, 0)
	r.Destroy()
	if len(dev.Buffers) != 0 || len(dev.Programs) != 0 || len(r.Batches()) != 0 {
		t.Errorf("Destroy() left buffers=%d programs=%d", len(dev.Buffers), len(dev.Programs))
	}
}
