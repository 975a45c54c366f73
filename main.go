package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blockfall/pkg/engine/input"
	"blockfall/pkg/engine/terminal"
	"blockfall/pkg/game/config"
	"blockfall/pkg/game/devtools"
	"blockfall/pkg/game/gameplay"
	"blockfall/pkg/game/i18n"
	"blockfall/pkg/game/renderer/ebiten"
	"blockfall/pkg/game/renderer/tui"
	"blockfall/pkg/game/shapes"
	"blockfall/pkg/game/state"
)

// Board size used by the window renderer when none is configured
const (
	windowBoardWidth  = 10
	windowBoardHeight = 20
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	lang := i18n.Use(cfg.Lang)
	if err := cfg.ApplyBindings(); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(2)
	}

	if cfg.ListKeys {
		devtools.WriteBindings(os.Stdout)
		return
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := boardSize(cfg)
	g := state.NewGame(width, height, shapes.NewRandomSpawner(shapes.Default(), seed))
	log.Printf("starting %s renderer: board %dx%d, seed %d, lang %s", cfg.Renderer, width, height, seed, lang)

	switch cfg.Renderer {
	case config.RendererEbiten:
		err = runEbiten(g, cfg.Tick)
	default:
		err = runTUI(g, cfg.Tick)
	}
	if err != nil {
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}

	devtools.DumpBoard(log.Writer(), g)
	fmt.Printf(i18n.T("GOODBYE")+"\n", g.Score)
}

// setupLogging routes the std logger to path, or discards it when path is
// empty since the terminal renderer owns stdout and stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

// boardSize fills in whichever dimension the configuration leaves at zero
func boardSize(cfg config.Config) (width, height int) {
	width, height = cfg.Width, cfg.Height
	if width > 0 && height > 0 {
		return width, height
	}

	defWidth, defHeight := windowBoardWidth, windowBoardHeight
	if cfg.Renderer == config.RendererTUI {
		defWidth, defHeight = terminal.BoardSize(terminal.GetSize())
	}
	if width == 0 {
		width = defWidth
	}
	if height == 0 {
		height = defHeight
	}
	return width, height
}

func runTUI(g *state.Game, interval time.Duration) error {
	if !terminal.IsTerminal() {
		return errors.New("the tui renderer needs an interactive terminal")
	}

	keys, err := input.OpenTerminal()
	if err != nil {
		return err
	}
	defer keys.Close()

	r := tui.New(os.Stdout)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = gameplay.NewSession(g, keys, r).Run(ctx, interval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runEbiten(g *state.Game, interval time.Duration) error {
	r := ebiten.New(g, interval)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init window: %w", err)
	}
	defer r.Close()
	return r.Run()
}
