package console

import (
	"bytes"
	"testing"

	"github.com/halvorsen/nescore/mappers"
)

func newRunningBus(t *testing.T) *Bus {
	t.Helper()

	b := New(mappers.Dummy)
	b.WriteBlock(0x8000, bytes.Repeat([]byte{0xEA}, 0x8000)) // NOP forest
	b.ram[0xFFFC], b.ram[0xFFFD] = 0x00, 0x80
	b.Reset()
	return b
}

func TestFrameSchedulerSetsVBlankFlag(t *testing.T) {
	b := newRunningBus(t)

	for i := 0; i < CyclesPerVBlankOff/2+1; i++ {
		if _, err := b.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}

	if got := b.Read(0x2002) & 0x80; got == 0 {
		t.Errorf("PPUSTATUS bit7 not set after a full VBlank-off interval")
	}
}

func TestFrameSchedulerClearsVBlankFlag(t *testing.T) {
	b := newRunningBus(t)

	steps := CyclesPerVBlankOff/2 + CyclesPerVBlankOn/2 + 2
	for i := 0; i < steps; i++ {
		if _, err := b.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}

	if got := b.Read(0x2002) & 0x80; got != 0 {
		t.Errorf("PPUSTATUS bit7 still set after a full VBlank-on interval")
	}
}

func TestFrameSchedulerNMIGatedOnVBlankEnableAndInterruptFlag(t *testing.T) {
	b := newRunningBus(t)
	b.Write(0x2000, 0x80)          // enable NMI-on-VBlank
	b.WriteBlock(0x8000, []byte{0x58}) // CLI: clear the interrupt-disable flag Reset sets
	b.ram[0xFFFC], b.ram[0xFFFD] = 0x00, 0x80
	b.Reset()

	// CLI consumed 2 cycles; everything after $8001 is still NOP.
	for i := 0; i < (CyclesPerVBlankOff-2)/2+1; i++ {
		if _, err := b.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}

	// One more Tick should service the latched NMI instead of
	// executing a plain NOP; PC should now point into the NMI
	// vector's destination rather than marching straight through RAM.
	pcBefore := b.PC()
	if _, err := b.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}
	if b.PC() == pcBefore+1 {
		t.Errorf("PC advanced like a plain NOP; NMI was not serviced")
	}
}

func TestFrameSchedulerRendererCalledOnEdges(t *testing.T) {
	b := newRunningBus(t)

	var entered, exited int
	b.SetRenderer(recordingRenderer{
		enter: func() { entered++ },
		exit:  func() { exited++ },
	})

	steps := CyclesPerVBlankOff/2 + CyclesPerVBlankOn/2 + 2
	for i := 0; i < steps; i++ {
		if _, err := b.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}

	if entered != 1 {
		t.Errorf("OnVBlankEnter called %d times, want 1", entered)
	}
	if exited != 1 {
		t.Errorf("OnVBlankExit called %d times, want 1", exited)
	}
}

func TestRunFrameStopsAfterOneVBlankCycle(t *testing.T) {
	b := newRunningBus(t)

	var entered, exited int
	b.SetRenderer(recordingRenderer{
		enter: func() { entered++ },
		exit:  func() { exited++ },
	})

	if err := b.RunFrame(); err != nil {
		t.Fatalf("RunFrame() = %v", err)
	}

	if entered != 1 || exited != 1 {
		t.Errorf("OnVBlankEnter/OnVBlankExit called %d/%d times, want 1/1", entered, exited)
	}
	if b.inVBlank {
		t.Errorf("RunFrame returned while still in VBlank")
	}
}

type recordingRenderer struct {
	enter, exit func()
}

func (r recordingRenderer) OnVBlankEnter(vram *[0x4000]byte, oam *[0x100]byte, patternTableBase uint16) {
	r.enter()
}

func (r recordingRenderer) OnVBlankExit() {
	r.exit()
}
