package main

import (
	"flag"
	"log"

	"github.com/Garsondee/debugdraw/internal/testbed"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	s := testbed.DefaultSettings()
	s.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := s.Validate(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Particle Testbed")
	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(testbed.New(s)); err != nil {
		log.Fatal(err)
	}
}
