package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/engine"
	"github.com/automoto/shapegame/fonts"
	"github.com/automoto/shapegame/scenes"
	"github.com/automoto/shapegame/tuning"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the host window
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game adapts the engine and its current scene to ebiten
type Game struct {
	engine *engine.Engine
	scene  Scene
}

// NewGame opens the playfield over e
func NewGame(e *engine.Engine, store *scenes.Store, debug bool) *Game {
	playfield := scenes.NewPlayfieldScene(e, store)
	playfield.Debug = debug
	return &Game{
		engine: e,
		scene:  playfield,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	s := g.engine.Settings()
	if int(s.Width) != width || int(s.Height) != height {
		g.engine.SetBoundaries(float64(width), float64(height))
	}
	return width, height
}

func main() {
	defaults := tuning.Default()

	width := flag.Int("width", config.Window.Width, "window width")
	height := flag.Int("height", config.Window.Height, "window height")
	fps := flag.Float64("fps", defaults.FrameRate, "target frame rate")
	intra := flag.Int("intra", defaults.IntraFrames, "simulation ticks per frame")
	shapes := flag.Int("shapes", defaults.MaxShapes, "maximum shapes on screen")
	drop := flag.Float64("drop", defaults.DropRate, "shapes dropped per second")
	size := flag.Float64("size", defaults.ShapeSize, "shape size in thousandths of the window height")
	gravity := flag.Float64("gravity", defaults.Gravity, "gravity factor, 0 freezes")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	noSave := flag.Bool("nosave", false, "do not load or save settings")
	debug := flag.Bool("debug", false, "outline broad-phase boxes")
	flag.Parse()

	if err := fonts.Load(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var store *scenes.Store
	if !*noSave {
		s, err := scenes.OpenStore("shapegame")
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		store = s
	}

	settings := store.Load(defaults)
	settings.Width = float64(*width)
	settings.Height = float64(*height)
	settings.FrameRate = *fps
	settings.IntraFrames = *intra

	// flags given explicitly win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shapes":
			settings.MaxShapes = *shapes
		case "drop":
			settings.DropRate = *drop
		case "size":
			settings.ShapeSize = *size
		case "gravity":
			settings.Gravity = *gravity
		}
	})

	e := engine.New(settings, *seed)
	settings = e.Settings()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(settings.FrameRate))

	if err := ebiten.RunGame(NewGame(e, store, *debug)); err != nil {
		log.Fatal(err)
	}
}
