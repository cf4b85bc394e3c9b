// Command glabs runs one of the graphics labs in a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/glabs"
)

func main() {
	cfg := glabs.DefaultConfig()
	list := flag.Bool("list", false, "list the labs and exit")
	flag.StringVar(&cfg.Lab, "lab", cfg.Lab, "lab to run")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "window title (defaults to the lab's)")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "ticks per second")
	flag.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level: debug, info, warn or error")
	flag.BoolVar(&cfg.Culling, "cull", cfg.Culling, "start with back-face culling on")
	flag.StringVar(&cfg.ExportSTL, "stl", cfg.ExportSTL, "write the lab's geometry as STL to this file and exit")
	flag.Func("texture", "image file for the texture lab (repeatable)", func(s string) error {
		cfg.Textures = append(cfg.Textures, s)
		return nil
	})
	flag.Parse()

	if *list {
		for _, name := range glabs.Labs() {
			fmt.Printf("%-14s %s\n", name, glabs.LabTitle(name))
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v (labs: %s)", err, strings.Join(glabs.Labs(), ", "))
	}
	level, _ := cfg.Level()
	glabs.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	scene, err := glabs.NewLab(cfg.Lab, cfg.LabOptions()...)
	if err != nil {
		log.Fatal(err)
	}
	renderer := glabs.NewScreenRenderer(cfg.Width, cfg.Height, glabs.WithCulling(cfg.Culling))

	if cfg.ExportSTL != "" {
		if err := exportSTL(cfg.ExportSTL, scene, renderer); err != nil {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.WindowTitle())
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(glabs.NewGame(scene, renderer)); err != nil {
		log.Fatal(err)
	}
}

func exportSTL(path string, scene glabs.Scene, r glabs.Renderer) error {
	if err := scene.Setup(r); err != nil {
		return err
	}
	src, ok := scene.(glabs.GeometrySource)
	if !ok || src.Geometry() == nil {
		return fmt.Errorf("lab %s has no geometry to export", scene.Name())
	}
	return glabs.CreateSTL(path, src.Geometry())
}
