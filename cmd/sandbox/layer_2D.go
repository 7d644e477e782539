package main

import (
	"log"
	"math"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"github.com/hubastard/quadbatch/engine/scene"
)

const (
	tileSize   = 16
	gridW      = 48
	gridH      = 32
	sheetTiles = 4
)

// ------- A simple 2D Layer demo -------
type Layer2D struct {
	cam      *scene.OrthoCamera2D
	ctrl     *scene.OrthoController2D
	r2d      *renderer2d.Renderer2D
	textures *renderer2d.TextureSet
	sheet    renderer2d.TextureID

	ground []renderer2d.Quad // layer 0
	player renderer2d.Quad   // layer 1
	clouds []renderer2d.Quad // transparent layer
	hidden bool
	t      float32
}

// checkerSheet builds a sheetTiles x 1 strip of 8x8 tiles with distinct tints.
func checkerSheet() core.TextureDesc {
	const cell = 8
	w, h := cell*sheetTiles, cell
	pix := make([]byte, w*h*4)
	tints := [sheetTiles][3]byte{{90, 160, 70}, {120, 100, 60}, {70, 110, 190}, {230, 200, 80}}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tint := tints[x/cell]
			shade := byte(200)
			if (x/2+y/2)%2 == 0 {
				shade = 255
			}
			i := (y*w + x) * 4
			for c := 0; c < 3; c++ {
				pix[i+c] = byte(int(tint[c]) * int(shade) / 255)
			}
			pix[i+3] = 255
		}
	}
	return core.TextureDesc{
		Width: w, Height: h,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	}
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	// Camera sized to framebuffer
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.cam.SetZoom(2)
	l.ctrl = scene.NewOrthoController2D(l.cam)

	var err error
	if l.sheet, err = l.textures.Create(checkerSheet()); err != nil {
		log.Fatal(err)
	}

	l.ground = make([]renderer2d.Quad, 0, gridW*gridH)
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			q := renderer2d.NewQuad(float32(x-gridW/2)*tileSize, float32(y-gridH/2)*tileSize, tileSize, tileSize, l.sheet)
			renderer2d.FromGrid(l.sheet, (x*7+y*3)%3, 0, 8, 8, 8*sheetTiles, 8).Apply(&q)
			l.ground = append(l.ground, q)
		}
	}
	// a few untextured markers in the same layer
	for i := 0; i < 8; i++ {
		q := renderer2d.NewQuad(float32(i-4)*48, -80, 12, 12, renderer2d.NoTexture)
		q.Tint = colors.Magenta
		l.ground = append(l.ground, q)
	}

	l.player = renderer2d.NewQuad(0, 0, 32, 32, l.sheet)
	renderer2d.FromGrid(l.sheet, 3, 0, 8, 8, 8*sheetTiles, 8).Apply(&l.player)

	for i := 0; i < 6; i++ {
		q := renderer2d.NewQuad(float32(i-3)*60, 40, 120, 60, renderer2d.NoTexture)
		q.Position[2] = float32(i * 10)
		q.Tint = colors.White.WithAlpha(0.25)
		l.clouds = append(l.clouds, q)
	}

	l.show()
}

// add logs quads the renderer rejects: a full layer, or a batch that failed
// to start.
func (l *Layer2D) add(q *renderer2d.Quad, z int, what string, i int) {
	if err := l.r2d.Add(q, z); err != nil {
		log.Printf("%s quad %d on layer %d: %v", what, i, z, err)
	}
}

func (l *Layer2D) show() {
	for i := range l.ground {
		l.add(&l.ground[i], 0, "ground", i)
	}
	l.add(&l.player, 1, "player", 0)
	for i := range l.clouds {
		l.add(&l.clouds[i], renderer2d.TransparentZ, "cloud", i)
	}
}

func (l *Layer2D) hide() {
	for i := range l.ground {
		l.r2d.Remove(&l.ground[i])
	}
}

// ToggleGround removes or re-adds the tile layer.
func (l *Layer2D) ToggleGround() {
	if l.hidden {
		for i := range l.ground {
			l.add(&l.ground[i], 0, "ground", i)
		}
	} else {
		l.hide()
	}
	l.hidden = !l.hidden
}

func (l *Layer2D) OnDetach(e *core.Engine) {
	l.hide()
	l.r2d.Remove(&l.player)
	for i := range l.clouds {
		l.r2d.Remove(&l.clouds[i])
	}
}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
	l.t += float32(dt)

	l.player.Rotation = l.t
	l.player.Position[0] = 64 * float32(math.Cos(float64(l.t)))
	for i := range l.clouds {
		l.clouds[i].Position[0] += float32(dt) * float32(10+i*4)
		if l.clouds[i].Position[0] > 400 {
			l.clouds[i].Position[0] = -400
		}
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	l.r2d.BeginScene(l.cam.VP())
	if err := l.r2d.EndScene(l.cam); err != nil {
		log.Fatal(err)
	}
}

// Stats is the sprite statistics of the last frame.
func (l *Layer2D) Stats() renderer2d.Statistics { return l.r2d.Stats() }

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	l.ctrl.OnEvent(ev)
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyP {
		l.ToggleGround()
		return true
	}
	return false
}
