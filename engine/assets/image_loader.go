package assets

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"golang.org/x/image/draw"
)

// LoadPNG returns width, height, and tightly packed RGBA8 pixels (row-major,
// top-left origin). Row 0 lands at v=0, which is how quads sample UVs.
func LoadPNG(path string) (w, h int, rgba []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	w, h, rgba, err = DecodePNG(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return w, h, rgba, nil
}

// DecodePNG is LoadPNG on a reader.
func DecodePNG(r io.Reader) (w, h int, rgba []byte, err error) {
	img, err := png.Decode(r)
	if err != nil {
		return 0, 0, nil, err
	}
	m := imageToRGBA(img)
	w, h = m.Bounds().Dx(), m.Bounds().Dy()

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:y*m.Stride+w*4])
	}
	return w, h, out, nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// LoadTexture loads a PNG and registers it with textures. pixelArt selects
// nearest filtering.
func LoadTexture(textures *renderer2d.TextureSet, path string, pixelArt bool) (renderer2d.TextureID, error) {
	w, h, pix, err := LoadPNG(path)
	if err != nil {
		return renderer2d.NoTexture, err
	}
	filter := "linear"
	if pixelArt {
		filter = "nearest"
	}
	return textures.Create(core.TextureDesc{
		Width:     w,
		Height:    h,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: filter, MagFilter: filter,
		WrapU: "clamp", WrapV: "clamp",
	})
}
