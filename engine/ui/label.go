package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/hubastard/quadbatch/engine/canvas"
	"github.com/hubastard/quadbatch/engine/colors"
)

type UILabel struct {
	Common[*UILabel]
	text      string
	fontSize  float32
	font      canvas.Font
	wrap      bool
	maxWidth  float32
	layoutStr string
}

func Label(str string) *UILabel {
	l := &UILabel{text: str, fontSize: 16}
	l.Common = NewCommon(l)
	l.base.color = colors.White
	return l
}
func (l *UILabel) FontSize(size float32) *UILabel { l.fontSize = size; return l }
func (l *UILabel) Font(font canvas.Font) *UILabel { l.font = font; return l }
func (l *UILabel) Color(c colors.Color) *UILabel  { l.base.color = c; return l }
func (l *UILabel) Wrap(enabled bool) *UILabel     { l.wrap = enabled; return l }
func (l *UILabel) Text() string                   { return l.text }

// SetText replaces the text; the next Layout re-measures it.
func (l *UILabel) SetText(s string) { l.text = s; l.layoutStr = "" }

func (l *UILabel) MaxWidth(width float32) *UILabel {
	l.maxWidth = width
	if width > 0 {
		l.wrap = true
	}
	return l
}

func (l *UILabel) Layout(ctx *Context, constraints Constraints) LayoutResult {
	if l.font == nil {
		l.font = ctx.DefaultFont
	}
	if l.font == nil {
		return LayoutResult{}
	}

	// widest content the label may occupy; 0 is unbounded
	limit := constraints.Max[0]
	if l.maxWidth > 0 && (limit == 0 || l.maxWidth < limit) {
		limit = l.maxWidth
	}
	if limit > 0 {
		limit = max(0, limit-l.base.pad(0))
	}

	l.layoutStr = l.text
	if advance := l.fontSize * l.font.AspectRatio(); l.wrap && limit > 0 && advance > 0 {
		l.layoutStr = wrapWords(l.text, int(limit/advance))
	}
	w, h := canvas.Measure(l.font, l.layoutStr, l.fontSize)
	if l.layoutStr == "" {
		w, h = 0, 0
	}
	return LayoutResult{Size: l.base.resolve([2]float32{w, h}, constraints)}
}

func (l *UILabel) Draw(ctx *Context) {
	if l.layoutStr == "" {
		l.layoutStr = l.text
	}
	if l.layoutStr != "" && l.font != nil && l.base.color[3] > 0 {
		padding := l.base.Padding()
		ctx.Canvas.PushTranslate(l.base.position[0], l.base.position[1])
		ctx.Canvas.Text(l.layoutStr, padding[0], padding[1], canvas.Style{
			Color:    l.base.color,
			FontSize: l.fontSize,
			Font:     l.font,
		})
		ctx.Canvas.PopTranslate()
	}
}

// wrapWords breaks text greedily at spaces so that no line exceeds cols
// runes, except single words longer than cols. Existing newlines are kept.
func wrapWords(text string, cols int) string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line, n := "", 0
		for _, word := range strings.Fields(raw) {
			wn := utf8.RuneCountInString(word)
			switch {
			case n == 0:
				line, n = word, wn
			case n+1+wn <= cols:
				line += " " + word
				n += 1 + wn
			default:
				out = append(out, line)
				line, n = word, wn
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
