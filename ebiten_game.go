package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/halvorsen/nescore/console"
	"github.com/halvorsen/nescore/ppu"
)

// ebitenGame adapts a running console.Bus and its demoRenderer to the
// ebiten.Game interface. Emulation runs on its own goroutine (see
// main); this only has to paint whatever the renderer last produced.
type ebitenGame struct {
	bus      *console.Bus
	renderer *demoRenderer
}

func (g *ebitenGame) Update() error {
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.renderer.snapshot().Pix)
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT
}
