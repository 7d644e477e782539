package text

import (
	"fmt"
	"os"
	"unicode"

	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LoadTTF reads a TrueType/OpenType file and bakes it with ParseTTF.
func LoadTTF(textures *renderer2d.TextureSet, path string, sizePx float32) (*BitmapFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseTTF(textures, data, sizePx)
}

// ParseTTF rasterises the printable runes of Latin-1 into equal cells as wide
// as the widest advance. Proportional fonts therefore lay out monospaced.
func ParseTTF(textures *renderer2d.TextureSet, data []byte, sizePx float32) (*BitmapFont, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	var (
		charset []rune
		cellW   int
	)
	for r := rune(32); r <= 255; r++ {
		if !unicode.IsPrint(r) {
			continue
		}
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		charset = append(charset, r)
		cellW = max(cellW, adv.Ceil())
	}
	if len(charset) == 0 || cellW == 0 {
		return nil, fmt.Errorf("parse font: no printable glyphs")
	}

	m := face.Metrics()
	cellH := m.Height.Ceil()
	sheet := rasterize(face, cellW, cellH, m.Ascent.Ceil(), charset)
	b := sheet.Bounds()
	tex, err := textures.Create(core.TextureDesc{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    sheet.Pix,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("font texture: %w", err)
	}
	renderer2d.Logger().Debug("ttf font ready", "size", sizePx, "glyphs", len(charset), "cell", fmt.Sprintf("%dx%d", cellW, cellH))
	return NewBitmapFont(tex, b.Dx(), b.Dy(), cellW, cellH, string(charset)), nil
}
