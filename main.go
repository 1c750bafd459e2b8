package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	viewer   *Viewer
	images   *ImageManager
	input    *InputHandler
	renderer *Renderer

	config     Config
	configPath string
	startIndex int

	shown     bool
	lastIndex int
	closing   bool
}

// NewGame wires the viewer, image layer, input and renderer together
func NewGame(images *ImageManager, config Config, configPath string, startIndex int) *Game {
	viewer := NewViewer(images, config.Gestures, float64(config.WindowWidth), float64(config.WindowHeight))

	g := &Game{
		viewer:     viewer,
		images:     images,
		config:     config,
		configPath: configPath,
		startIndex: startIndex,
		lastIndex:  startIndex,
	}
	g.input = NewInputHandler(viewer, config.EnableMousePointer)
	g.renderer = NewRenderer(viewer, images, config)

	viewer.OnClose(func() {
		viewer.Hide()
		g.closing = true
	})

	return g
}

func (g *Game) saveCurrentWindowSize() {
	if !g.config.Fullscreen {
		w, h := ebiten.WindowSize()
		g.config.WindowWidth = w
		g.config.WindowHeight = h
	}
	saveConfig(g.config, g.configPath)
}

func (g *Game) shutdown() error {
	g.saveCurrentWindowSize()
	stats := g.images.GetPreloadStats()
	debugLog("Preloaded %d images (%d failed)", stats.LoadedCount, stats.FailedCount)
	g.images.Stop()
	return ebiten.Termination
}

func (g *Game) Update() error {
	if g.closing || ebiten.IsWindowBeingClosed() {
		return g.shutdown()
	}

	if !g.shown {
		g.viewer.Show(g.startIndex)
		g.images.StartPreload(g.startIndex, NavigationJump)
		g.shown = true
	}

	g.input.HandleInput()
	g.viewer.Update()

	if idx := g.viewer.Transform().ActiveIndex; idx != g.lastIndex {
		g.images.StartPreload(idx, navigationDirection(g.lastIndex, idx))
		g.lastIndex = idx
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewer.SetViewportSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	start := flag.Int("start", 1, "1-based index of the first image to show")
	configPath := flag.String("config", getConfigPath(), "path to the configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <image|directory|archive>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *debug {
		debugEnabled = true
	}

	configResult := loadConfigFromPath(*configPath)
	config := configResult.Config
	debugLog("Config %s: %s", *configPath, configResult.Status)

	paths, err := collectImages(flag.Args(), config.SortMethod)
	if err != nil {
		log.Fatal(err)
	}
	if len(paths) == 0 {
		flag.Usage()
		log.Fatal("no image files specified")
	}
	debugLog("Collected %d images (%s order)", len(paths), sortMethodName(config.SortMethod))

	if err := InitGraphics(); err != nil {
		log.Printf("Warning: Failed to load font, page indicator disabled: %v", err)
	}

	images := NewImageManager(paths, config.CacheSize, config.PreloadCount, config.PreloadEnabled)
	g := NewGame(images, config, *configPath, clampIndex(*start-1, len(paths)))

	ebiten.SetWindowTitle("swipeview")
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(config.Fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
