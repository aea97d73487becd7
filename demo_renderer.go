package main

import (
	"image"
	"sync"

	"github.com/halvorsen/nescore/ppu"
)

// demoRenderer implements ppu.Renderer by compositing nametable 0 as
// a static background plus the 64 OAM sprites on top, ignoring
// mid-frame scroll writes and scanline timing entirely. It exists to
// give a driver something to look at; it is not a faithful PPU.
type demoRenderer struct {
	mu    sync.Mutex
	frame *image.RGBA
}

func newDemoRenderer() *demoRenderer {
	return &demoRenderer{
		frame: image.NewRGBA(image.Rect(0, 0, ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT)),
	}
}

// snapshot returns the most recently composited frame.
func (d *demoRenderer) snapshot() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

func (d *demoRenderer) OnVBlankEnter(vram *[ppu.VRAM_SIZE]byte, oam *[ppu.OAM_SIZE]byte, patternTableBase uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pal := bgPalette(vram)
	for row := 0; row < 30; row++ {
		for col := 0; col < 32; col++ {
			tile := vram[0x2000+row*32+col]
			drawTile(d.frame, vram, patternTableBase, tile, col*8, row*8, pal, false, false, false)
		}
	}

	for i := 0; i < len(oam); i += 4 {
		s := ppu.OAMFromBytes(oam[i : i+4])
		if s.Y >= 0xEF {
			continue // parked offscreen
		}
		drawTile(d.frame, vram, patternTableBase, s.TileID, int(s.X), int(s.Y)+1, spritePalette(vram, s.Palette), s.FlipH, s.FlipV, true)
	}
}

func (d *demoRenderer) OnVBlankExit() {}

// bgPalette reads background palette 0 out of PPU palette RAM.
func bgPalette(vram *[ppu.VRAM_SIZE]byte) [4]color {
	var pal [4]color
	for i := 0; i < 4; i++ {
		pal[i] = systemPalette[vram[0x3F00+i]&0x3F]
	}
	return pal
}

// spritePalette reads one of the four sprite palettes (0x3F11-0x3F1F)
// out of PPU palette RAM; index 0 in every sprite palette is
// transparent and is left out of the returned slots by the caller.
func spritePalette(vram *[ppu.VRAM_SIZE]byte, which uint8) [4]color {
	base := uint16(0x3F10) + uint16(which)*4
	var pal [4]color
	for i := 0; i < 4; i++ {
		pal[i] = systemPalette[vram[base+uint16(i)]&0x3F]
	}
	return pal
}

// drawTile decodes one 8x8, 2-bit-per-pixel tile out of the pattern
// table at patternBase and blits it into frame at (x0, y0). When
// skipZero is set (sprites), color index 0 is left untouched so the
// background shows through; otherwise it's painted like any other
// index (backgrounds have no transparency).
func drawTile(frame *image.RGBA, vram *[ppu.VRAM_SIZE]byte, patternBase uint16, tile uint8, x0, y0 int, pal [4]color, flipH, flipV, skipZero bool) {
	base := int(patternBase) + int(tile)*16
	for y := 0; y < 8; y++ {
		lo, hi := vram[base+y], vram[base+y+8]
		sy := y
		if flipV {
			sy = 7 - y
		}
		for x := 0; x < 8; x++ {
			bit := uint(7 - x)
			p := (hi>>bit)&1<<1 | (lo>>bit)&1
			if p == 0 && skipZero {
				continue
			}
			sx := x
			if flipH {
				sx = 7 - x
			}
			px := x0 + sx
			py := y0 + sy
			if px < 0 || py < 0 || px >= ppu.NES_RES_WIDTH || py >= ppu.NES_RES_HEIGHT {
				continue
			}
			c := pal[p]
			frame.Set(px, py, nrgba(c))
		}
	}
}
