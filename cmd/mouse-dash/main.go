package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/mouse-dash/audio"
	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/engine"
)

var baseDirFlag = flag.String("dir", "", "Base directory for sprites and the high score file (default: executable directory)")

func main() {
	// Panic recovery: print the error and stack trace to stderr so a crash
	// inside the game loop is visible after the window closes.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nMOUSE DASH CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	baseDir := *baseDirFlag
	if baseDir == "" {
		baseDir = resolveBaseDir()
	}

	// Audio is best effort: a missing sound device degrades to silence
	// rather than blocking the game.
	audioEngine := audio.NewEngine()
	if err := audioEngine.Start(); err != nil {
		fmt.Printf("Audio start failed: %v (continuing without audio)\n", err)
	}
	defer audioEngine.Stop()

	g, err := engine.New(baseDir, audioEngine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(constants.ScreenWidth, constants.ScreenHeight)
	ebiten.SetWindowTitle("Mouse Dash!")
	ebiten.SetTPS(constants.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Game loop error: %v\n", err)
		os.Exit(1)
	}
}

// resolveBaseDir prefers the executable's directory so sprites and the
// high score file travel with the binary, falling back to the working
// directory when the executable path cannot be resolved.
func resolveBaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
