package renderer2d

import (
	"errors"
	"testing"

	"github.com/hubastard/quadbatch/engine/gfx/gputest"
)

func TestTextureSetWhite(t *testing.T) {
	dev := gputest.New()
	ts, _ := newTextures(t, dev, 0)
	tex, err := ts.Texture(NoTexture)
	if err != nil {
		t.Fatal(err)
	}
	desc, ok := dev.Textures[tex]
	if !ok || desc.Width != 1 || desc.Height != 1 {
		t.Fatalf("white texture = %+v", desc)
	}
	for _, p := range desc.Pixels {
		if p != 255 {
			t.Errorf("white pixel = %v", desc.Pixels)
			break
		}
	}
}

func TestTextureSetLookup(t *testing.T) {
	dev := gputest.New()
	ts, ids := newTextures(t, dev, 2)
	if ts.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ts.Len())
	}
	if ids[0] == NoTexture || ids[0] == ids[1] {
		t.Errorf("ids = %v", ids)
	}
	if _, err := ts.Texture(123); !errors.Is(err, ErrInvalidTexture) {
		t.Errorf("Texture(123) error = %v, want ErrInvalidTexture", err)
	}

	ts.Release(ids[0])
	if _, err := ts.Texture(ids[0]); !errors.Is(err, ErrInvalidTexture) {
		t.Errorf("Texture() after Release error = %v", err)
	}
	ts.Release(NoTexture)
	if _, err := ts.Texture(NoTexture); err != nil {
		t.Errorf("Release(NoTexture) removed the white texture: %v", err)
	}

	ts.Destroy()
	if len(dev.Textures) != 0 {
		t.Errorf("Destroy() left %d textures", len(dev.Textures))
	}
}

func TestTextureSetRegister(t *testing.T) {
	dev := gputest.New()
	ts, _ := newTextures(t, dev, 0)
	id := ts.Register(55)
	if tex, err := ts.Texture(id); err != nil || tex != 55 {
		t.Errorf("Texture(%d) = %d, %v; want 55", id, tex, err)
	}
}

func TestSubTexture(t *testing.T) {
	st := FromGrid(3, 1, 2, 16, 16, 64, 64)
	if !approx(st.UV0[0], 0.25) || !approx(st.UV0[1], 0.5) || !approx(st.UV1[0], 0.5) || !approx(st.UV1[1], 0.75) {
		t.Errorf("FromGrid() = %+v", st)
	}
	q := NewQuad(0, 0, 1, 1, NoTexture)
	st.Apply(&q)
	if q.Texture != 3 || q.UVs()[2] != st.UV1 {
		t.Errorf("Apply() = %+v", q)
	}
}
