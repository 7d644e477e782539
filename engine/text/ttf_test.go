package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/quadbatch/engine/gfx/gputest"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"golang.org/x/image/font/gofont/gomono"
)

func newTextureSet(t *testing.T) (*renderer2d.TextureSet, *gputest.Device) {
	t.Helper()
	dev := gputest.New()
	ts, err := renderer2d.NewTextureSet(dev)
	if err != nil {
		t.Fatal(err)
	}
	return ts, dev
}

func TestParseTTF(t *testing.T) {
	ts, dev := newTextureSet(t)
	f, err := ParseTTF(ts, gomono.TTF, 24)
	if err != nil {
		t.Fatalf("ParseTTF() error = %v", err)
	}
	for _, r := range "Az09 ~é" {
		if _, ok := f.Glyph(r); !ok {
			t.Errorf("Glyph(%q) missing", r)
		}
	}
	if a := f.AspectRatio(); a < 0.3 || a > 1 {
		t.Errorf("AspectRatio() = %v, want a mono cell", a)
	}
	tex, err := ts.Texture(f.Texture)
	if err != nil {
		t.Fatal(err)
	}
	desc := dev.Textures[tex]
	if desc.Width != basicColumns*f.CellW || desc.Height%f.CellH != 0 {
		t.Errorf("sheet = %dx%d, cell %dx%d", desc.Width, desc.Height, f.CellW, f.CellH)
	}
}

func TestParseTTFErrors(t *testing.T) {
	ts, _ := newTextureSet(t)
	if _, err := ParseTTF(ts, []byte("not a font"), 12); err == nil {
		t.Error("ParseTTF(garbage) succeeded")
	}
	if _, err := LoadTTF(ts, filepath.Join(t.TempDir(), "missing.ttf"), 12); err == nil {
		t.Error("LoadTTF(missing) succeeded")
	}
}

func TestLoadTTF(t *testing.T) {
	ts, _ := newTextureSet(t)
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadTTF(ts, path, 16)
	if err != nil {
		t.Fatalf("LoadTTF() error = %v", err)
	}
	if f.Len() == 0 {
		t.Error("no glyphs")
	}
}
