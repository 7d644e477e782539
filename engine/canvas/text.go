package canvas

import (
	"unicode/utf8"

	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"golang.org/x/text/unicode/norm"
)

// Font maps runes to cells of a monospaced bitmap font texture.
type Font interface {
	// Glyph returns the cell of r, or false when the font has none.
	Glyph(r rune) (renderer2d.SubTexture, bool)
	// AspectRatio is cell width over cell height.
	AspectRatio() float32
}

func (c *Canvas) resolve(s Style) (Font, float32) {
	f := s.Font
	if f == nil {
		f = c.font
	}
	size := s.FontSize
	if size <= 0 {
		size = c.fontSize
	}
	return f, size
}

// Text draws str with its top-left corner at (x,y). Every rune advances by
// size*aspect; runes missing from the font leave a gap. A newline starts a
// new line size pixels lower.
func (c *Canvas) Text(str string, x, y float32, s Style) {
	f, size := c.resolve(s)
	if f == nil {
		renderer2d.Logger().Warn("canvas text without a font", "text", str)
		return
	}
	adv := size * f.AspectRatio()
	penX, penY := x, y
	for _, r := range norm.NFC.String(str) {
		if r == '\n' {
			penX = x
			penY += size
			continue
		}
		if sub, ok := f.Glyph(r); ok {
			q := c.quad(sub.Texture, penX, penY, adv, size, s.Color)
			sub.Apply(&q)
			q.Kind = renderer2d.KindGlyph
			c.push(q)
		}
		penX += adv
	}
}

// Measure returns the box Text covers for str with f at size: the longest
// line's rune count times size*aspect, by the line count times size.
func Measure(f Font, str string, size float32) (w, h float32) {
	if str == "" {
		return 0, 0
	}
	widest, line, lines := 0, 0, 1
	str = norm.NFC.String(str)
	for len(str) > 0 {
		r, n := utf8.DecodeRuneInString(str)
		str = str[n:]
		if r == '\n' {
			line = 0
			lines++
			continue
		}
		line++
		widest = max(widest, line)
	}
	if f != nil {
		w = float32(widest) * size * f.AspectRatio()
	}
	return w, float32(lines) * size
}

// TextWidth is the width Text would cover with the canvas font. A size <= 0
// uses the canvas font size.
func (c *Canvas) TextWidth(str string, size float32) float32 {
	f, size := c.resolve(Style{FontSize: size})
	w, _ := Measure(f, str, size)
	return w
}

// TextHeight is the height of str's lines at size.
func (c *Canvas) TextHeight(str string, size float32) float32 {
	f, size := c.resolve(Style{FontSize: size})
	_, h := Measure(f, str, size)
	return h
}
