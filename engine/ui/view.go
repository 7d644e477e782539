package ui

import (
	"github.com/hubastard/quadbatch/engine/colors"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type LayoutDirection int

const (
	LayoutHorizontal LayoutDirection = iota
	LayoutVertical
)

type UIView struct {
	Common[*UIView]
	gap        float32
	mainAlign  Align
	crossAlign Align
	flow       LayoutDirection
}

func View(children ...UIElement) *UIView {
	v := &UIView{
		gap:        10,
		mainAlign:  AlignStart,
		crossAlign: AlignStart,
	}
	v.Common = NewCommon(v)
	v.Children(children...)
	return v
}

func (l *UIView) BgColor(color colors.Color) *UIView              { l.base.color = color; return l }
func (l *UIView) FlowDirection(direction LayoutDirection) *UIView { l.flow = direction; return l }
func (l *UIView) Gap(g float32) *UIView                           { l.gap = g; return l }
func (l *UIView) AlignMain(a Align) *UIView                       { l.mainAlign = a; return l }
func (l *UIView) AlignCross(a Align) *UIView                      { l.crossAlign = a; return l }

// axes returns the main and cross axis indices of the flow.
func (d LayoutDirection) axes() (main, cross int) {
	if d == LayoutVertical {
		return 1, 0
	}
	return 0, 1
}

// Layout is a single-line flex: children are measured against the padded
// constraints, leftover main-axis space is shared by expanding children, then
// children are placed with the main and cross alignments.
func (l *UIView) Layout(ctx *Context, constraints Constraints) LayoutResult {
	main, cross := l.flow.axes()
	children := l.base.children
	sizes := make([][2]float32, len(children))

	var content [2]float32
	expanding := 0
	for i, child := range children {
		sizes[i] = child.Layout(ctx, l.base.inner(constraints)).Size
		content[main] += sizes[i][main]
		content[cross] = max(content[cross], sizes[i][cross])
		if child.Node().mode[main] == SizeModeExpand {
			expanding++
		}
	}
	if len(children) > 1 {
		content[main] += l.gap * float32(len(children)-1)
	}

	outer := l.base.resolve(content, constraints)
	var room [2]float32
	for a := 0; a < 2; a++ {
		room[a] = max(outer[a]-l.base.pad(a), constraints.Min[a]-l.base.pad(a), 0)
	}

	free := max(0, room[main]-content[main])
	if expanding > 0 {
		share := free / float32(expanding)
		for i, child := range children {
			if child.Node().mode[main] == SizeModeExpand {
				sizes[i][main] += share
			}
		}
		free = 0
	}

	var cursor float32
	switch l.mainAlign {
	case AlignCenter:
		cursor = free / 2
	case AlignEnd:
		cursor = free
	}

	ox, oy := l.base.innerPosition()
	origin := [2]float32{ox, oy}
	for i, child := range children {
		node := child.Node()
		size := sizes[i]
		if l.crossAlign == AlignStretch || node.mode[cross] == SizeModeExpand {
			size[cross] = room[cross]
		}
		size[cross] = clamp(size[cross], 0, room[cross])

		var pos [2]float32
		pos[main] = origin[main] + cursor
		pos[cross] = origin[cross]
		switch l.crossAlign {
		case AlignCenter:
			pos[cross] += (room[cross] - size[cross]) / 2
		case AlignEnd:
			pos[cross] += room[cross] - size[cross]
		}
		node.SetPos(pos[0], pos[1])
		node.SetSize(size[0], size[1])
		cursor += size[main] + l.gap
	}
	return LayoutResult{Size: outer}
}

func (l *UIView) Draw(ctx *Context) {
	if l.base.parent == nil {
		l.base.SetPos(ctx.Viewport[0], ctx.Viewport[1])
		constraints := Constraints{
			Min: [2]float32{0, 0},
			Max: [2]float32{ctx.Viewport[2], ctx.Viewport[3]},
		}
		l.Layout(ctx, constraints)
	}

	ctx.Canvas.PushTranslate(l.base.position[0], l.base.position[1])
	l.base.drawBox(ctx, l.base.color)
	for _, c := range l.base.children {
		c.Draw(ctx)
	}
	ctx.Canvas.PopTranslate()
}
