package ui

import (
	"github.com/hubastard/quadbatch/engine/canvas"
	"github.com/hubastard/quadbatch/engine/colors"
)

type UIButton struct {
	Common[*UIButton]
	text    string
	label   *UILabel
	hover   colors.Color
	onClick func()
	hovered bool
}

func Button(str string) *UIButton {
	l := &UIButton{text: str}
	l.Common = NewCommon(l)
	l.label = Label(str)
	l.base.children = append(l.base.children, l.label)
	l.label.base.parent = l
	l.base.color = colors.White
	l.base.SetPadding(10, 10, 10, 10)
	return l
}
func (l *UIButton) BgColor(color colors.Color) *UIButton    { l.base.color = color; return l }
func (l *UIButton) HoverColor(color colors.Color) *UIButton { l.hover = color; return l }
func (l *UIButton) TextColor(color colors.Color) *UIButton  { l.label.base.color = color; return l }
func (l *UIButton) FontSize(size float32) *UIButton         { l.label.fontSize = size; return l }
func (l *UIButton) Font(font canvas.Font) *UIButton         { l.label.font = font; return l }
func (l *UIButton) OnClick(f func()) *UIButton              { l.onClick = f; return l }

// Hovered reports whether the mouse was over the button at the last Draw.
func (l *UIButton) Hovered() bool { return l.hovered }

// Layout sizes the button around its label. An expanding label fills the
// padded box.
func (l *UIButton) Layout(ctx *Context, constraints Constraints) LayoutResult {
	content := l.label.Layout(ctx, l.base.inner(constraints)).Size
	size := l.base.resolve(content, constraints)

	child := l.label.Node()
	var fit [2]float32
	for a := 0; a < 2; a++ {
		room := max(0, size[a]-l.base.pad(a))
		fit[a] = clamp(content[a], 0, room)
		if child.mode[a] == SizeModeExpand {
			fit[a] = room
		}
	}
	child.SetSize(fit[0], fit[1])
	child.SetPos(l.base.innerPosition())
	return LayoutResult{Size: size}
}

// Draw fills the button with its hover colour while the mouse is over it and
// fires OnClick on the frame the mouse button goes down.
func (l *UIButton) Draw(ctx *Context) {
	ctx.Canvas.PushTranslate(l.base.position[0], l.base.position[1])
	defer ctx.Canvas.PopTranslate()

	l.hovered = ctx.hovered(l.base.size[0], l.base.size[1])
	bg := l.base.color
	if l.hovered && !l.hover.IsZero() {
		bg = l.hover
	}
	l.base.drawBox(ctx, bg)
	if l.hovered && ctx.Clicked && l.onClick != nil {
		l.onClick()
	}
	l.label.Draw(ctx)
}
