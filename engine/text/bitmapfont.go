// Package text provides monospaced bitmap fonts for the canvas.
package text

import (
	"fmt"
	"image"
	"image/color"
	"unicode"

	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BitmapFont is a spritesheet of equal cells, one rune per cell, filled row
// by row in charset order.
type BitmapFont struct {
	Texture      renderer2d.TextureID
	CellW, CellH int
	Columns      int
	glyphs       map[rune]renderer2d.SubTexture
}

// NewBitmapFont maps charset onto an atlasW x atlasH sheet of cellW x cellH
// cells. Runes past the last cell are ignored.
func NewBitmapFont(tex renderer2d.TextureID, atlasW, atlasH, cellW, cellH int, charset string) *BitmapFont {
	f := &BitmapFont{
		Texture: tex,
		CellW:   cellW,
		CellH:   cellH,
		Columns: atlasW / cellW,
		glyphs:  make(map[rune]renderer2d.SubTexture),
	}
	cells := f.Columns * (atlasH / cellH)
	i := 0
	for _, r := range charset {
		if i >= cells {
			break
		}
		f.glyphs[r] = renderer2d.FromGrid(tex, i%f.Columns, i/f.Columns, cellW, cellH, atlasW, atlasH)
		i++
	}
	return f
}

func (f *BitmapFont) Glyph(r rune) (renderer2d.SubTexture, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

func (f *BitmapFont) AspectRatio() float32 { return float32(f.CellW) / float32(f.CellH) }

// Len is the number of mapped runes.
func (f *BitmapFont) Len() int { return len(f.glyphs) }

const basicColumns = 16

// NewBasicFont rasterises basicfont.Face7x13 (printable ASCII)
// into a white-on-transparent sheet and registers it with textures.
func NewBasicFont(textures *renderer2d.TextureSet) (*BitmapFont, error) {
	face := basicfont.Face7x13
	var charset []rune
	for _, rg := range face.Ranges {
		for r := rg.Low; r < rg.High; r++ {
			if unicode.IsPrint(r) {
				charset = append(charset, r)
			}
		}
	}
	cellW, cellH := face.Advance, face.Height
	sheet := rasterize(face, cellW, cellH, face.Ascent, charset)
	b := sheet.Bounds()
	tex, err := textures.Create(core.TextureDesc{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    sheet.Pix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("basic font texture: %w", err)
	}
	renderer2d.Logger().Debug("basic font ready", "glyphs", len(charset), "width", b.Dx(), "height", b.Dy())
	return NewBitmapFont(tex, b.Dx(), b.Dy(), cellW, cellH, string(charset)), nil
}

// rasterize draws one glyph of face per cell, baseline ascent pixels below
// the cell top.
func rasterize(face font.Face, cellW, cellH, ascent int, charset []rune) *image.RGBA {
	rows := (len(charset) + basicColumns - 1) / basicColumns
	sheet := image.NewRGBA(image.Rect(0, 0, basicColumns*cellW, rows*cellH))
	white := image.NewUniform(color.White)
	for i, r := range charset {
		x, y := (i%basicColumns)*cellW, (i/basicColumns)*cellH
		dot := fixed.P(x, y+ascent)
		dr, mask, mp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.DrawMask(sheet, dr, white, image.Point{}, mask, mp, draw.Over)
	}
	return sheet
}
