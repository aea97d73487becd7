package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/halvorsen/nescore/console"
	"github.com/halvorsen/nescore/mappers"
	"github.com/halvorsen/nescore/mos6502"
	"github.com/halvorsen/nescore/nesrom"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile  = flag.String("nes_rom", "", "Path to NES ROM to run.")
	logLevel = flag.String("log-level", "warning", "One of: debug, info, warning, error, critical.")
)

func main() {
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = *romFile // -nes_rom kept as a backward-compatible alias
	}
	if path == "" {
		log.Fatal("no ROM given; pass -nes_rom or a positional path")
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	rom, err := nesrom.New(f)
	if err != nil {
		log.Fatalf("invalid ROM %s: %v", path, err)
	}
	if *logLevel == "debug" {
		log.Printf("loaded %s", rom)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("couldn't get mapper for %s: %v", path, err)
	}

	bus := console.New(m)
	renderer := newDemoRenderer()
	bus.SetRenderer(renderer)
	bus.SetJoystick(ebitenJoystick{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- bus.Run(ctx)
	}()

	game := &ebitenGame{bus: bus, renderer: renderer}
	ebiten.SetWindowSize(512, 480)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	cancel()

	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		reportFatal(bus, err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// reportFatal prints the crashing opcode, PC and a short window of
// surrounding memory before exiting, per the diagnostic the fatal
// decode path is expected to produce.
func reportFatal(bus *console.Bus, err error) {
	var unk mos6502.UnknownOpcode
	if errors.As(err, &unk) {
		window := bus.DebugWindow(unk.PC, 8)
		fmt.Fprintf(os.Stderr, "fatal: %v\nmemory around pc:\n", unk)
		for i, b := range window {
			fmt.Fprintf(os.Stderr, "%02x ", b)
			if (i+1)%8 == 0 {
				fmt.Fprintln(os.Stderr)
			}
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
	log.Fatal(err)
}
