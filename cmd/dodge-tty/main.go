// Command dodge-tty plays the game in a terminal with mouse support.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"dodge/internal/tty"
)

func main() {
	// Log lines would tear the screen; hold them until it is gone.
	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	log.SetPrefix("dodge: ")
	defer func() { os.Stderr.Write(logBuf.Bytes()) }()

	settings, err := tty.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	game, err := tty.New(screen, settings)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	log.Printf("seed %d, %d balls", settings.Seed, settings.Config.BallCount)
	defer screen.Fini()
	defer game.Close()

	game.Run()
}
