package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hubastard/quadbatch/engine/assets"
	"github.com/hubastard/quadbatch/engine/canvas"
	"github.com/hubastard/quadbatch/engine/core"
	glbackend "github.com/hubastard/quadbatch/engine/gfx/gl"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"github.com/hubastard/quadbatch/engine/platform"
	"github.com/hubastard/quadbatch/engine/text"
	"golang.org/x/image/font/gofont/gomono"
)

type App struct {
	lastFrame  time.Time
	tick       int
	textures   *renderer2d.TextureSet
	r2d        *renderer2d.Renderer2D
	canvas     *canvas.Canvas
	font       *text.BitmapFont
	layer      *Layer2D
	debugLayer *LayerDebug
}

func shaderPath(name string) string { return filepath.Join("assets", "shaders", name) }

func (a *App) OnStart(e *core.Engine) {
	rc := e.Config.Renderer
	var err error
	a.textures, err = renderer2d.NewTextureSet(e.Device)
	if err != nil {
		log.Fatal(err)
	}

	sprite, err := assets.LoadShader(shaderPath(rc.SpriteShader))
	if err != nil {
		log.Fatal(err)
	}
	a.r2d, err = renderer2d.New(e.Device, a.textures, sprite.Vertex, sprite.Fragment, rc.MaxQuads)
	if err != nil {
		log.Fatal(err)
	}

	a.font, err = text.ParseTTF(a.textures, gomono.TTF, rc.FontSize)
	if err != nil {
		slog.Warn("falling back to the basic font", "err", err)
		if a.font, err = text.NewBasicFont(a.textures); err != nil {
			log.Fatal(err)
		}
	}
	overlay, err := assets.LoadShader(shaderPath(rc.CanvasShader))
	if err != nil {
		log.Fatal(err)
	}
	a.canvas, err = canvas.New(e.Device, a.textures, a.font, canvas.Options{
		MaxQuads:       rc.CanvasMaxQuads,
		FontSize:       rc.FontSize,
		VertexShader:   overlay.Vertex,
		FragmentShader: overlay.Fragment,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := a.canvas.Start(); err != nil {
		log.Fatal(err)
	}

	a.layer = &Layer2D{r2d: a.r2d, textures: a.textures}
	e.Layers.Push(a.layer)

	a.debugLayer = &LayerDebug{canvas: a.canvas, font: a.font, sprites: a.layer}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	// Calculate frame duration
	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.canvas.Destroy()
	a.r2d.Destroy()
	a.textures.Destroy()
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (defaults when empty)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	renderer2d.SetLogger(slog.Default())

	cfg := core.DefaultConfig()
	if *cfgPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	app := &App{}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		var err error
		win, err = platform.NewGLFWWindow(cfg, nil)
		return win, err
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	err := core.Run(app, cfg, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}
