package console

import (
	"testing"

	"github.com/halvorsen/nescore/mappers"
	"github.com/halvorsen/nescore/nesrom"
)

func TestBaseRAMMirroring(t *testing.T) {
	b := New(mappers.Dummy)

	for i := 0; i < 10; i++ {
		b.Write(uint16(i), uint8(i+1))
	}

	for _, a := range []uint16{0, 0x800, 0x1000, 0x1800} {
		for i := 0; i < 10; i++ {
			if got := b.Read(a + uint16(i)); got != uint8(i+1) {
				t.Errorf("mem[%04x] = %02x, wanted %02x", a+uint16(i), got, i+1)
			}
		}
	}
}

func TestPPURegMirroring(t *testing.T) {
	b := New(mappers.Dummy)

	b.Write(0x2000, 0x80)
	for _, a := range []uint16{0x2000, 0x2008, 0x3FF8} {
		if got := b.Read(a); got != 0x80 {
			t.Errorf("mem[%04x] = %02x, wanted 0x80", a, got)
		}
	}
}

func TestPPUAddrLatchAndData(t *testing.T) {
	b := New(mappers.Dummy)

	// Two writes to $2006 latch a 14-bit address; $2007 transfers a
	// byte there and auto-increments.
	b.Write(0x2006, 0x23)
	b.Write(0x2006, 0x00)
	b.Write(0x2007, 0x42)
	b.Write(0x2007, 0x43)

	if got := b.vram[0x2300]; got != 0x42 {
		t.Errorf("vram[0x2300] = %02x, want 0x42", got)
	}
	if got := b.vram[0x2301]; got != 0x43 {
		t.Errorf("vram[0x2301] = %02x, want 0x43", got)
	}

	b.Write(0x2006, 0x23)
	b.Write(0x2006, 0x00)
	if got := b.Read(0x2007); got != 0x42 {
		t.Errorf("Read($2007) = %02x, want 0x42", got)
	}
}

func TestPPUStatusReadClearsAddrLatchToggle(t *testing.T) {
	b := New(mappers.Dummy)

	b.Write(0x2006, 0x23) // arms the high byte only
	b.Read(0x2002)        // should reset the toggle back to high-byte-next
	b.Write(0x2006, 0x10) // this now lands in the high byte again, not the low byte
	b.Write(0x2006, 0x00)

	if got, want := b.ppuAddr, uint16(0x1000); got != want {
		t.Errorf("ppuAddr = %04x, want %04x", got, want)
	}
}

// TestPPUStatusWriteDoesNotClobberVBlankFlag guards against a CPU
// write to $2002 stomping the VBlank flag the Frame Scheduler owns:
// PPUSTATUS is read-only, so writing it must not overwrite bit 7.
func TestPPUStatusWriteDoesNotClobberVBlankFlag(t *testing.T) {
	b := New(mappers.Dummy)

	b.setVBlankFlag()
	b.Write(0x2002, 0x00)

	if got := b.Read(0x2002) & 0x80; got == 0 {
		t.Errorf("PPUSTATUS bit7 cleared by a write; writes to $2002 must have no effect")
	}
}

func TestPPUCtrlLatchesVBlankEnableAndPatternBase(t *testing.T) {
	b := New(mappers.Dummy)

	b.Write(0x2000, 0x88) // bit7 (NMI enable) and bit3 (pattern base) set
	if !b.vblankEnable {
		t.Errorf("vblankEnable = false, want true")
	}
	if b.patternTableBase != 0x1000 {
		t.Errorf("patternTableBase = %04x, want 0x1000", b.patternTableBase)
	}

	b.Write(0x2000, 0x00)
	if b.vblankEnable {
		t.Errorf("vblankEnable = true, want false")
	}
	if b.patternTableBase != 0x0000 {
		t.Errorf("patternTableBase = %04x, want 0x0000", b.patternTableBase)
	}
}

func TestOAMDMA(t *testing.T) {
	b := New(mappers.Dummy)

	for i := 0; i < 256; i++ {
		b.Write(uint16(0x0300+i), uint8(i))
	}
	b.Write(0x4014, 0x03)

	for i := 0; i < 256; i++ {
		if got := b.oam[i]; got != uint8(i) {
			t.Errorf("oam[%d] = %02x, want %02x", i, got, i)
		}
	}
}

type fakeJoystick struct{ val uint8 }

func (fj fakeJoystick) Poll() uint8 { return fj.val }

func TestJoystickShiftsOutButtons(t *testing.T) {
	b := New(mappers.Dummy)
	b.SetJoystick(fakeJoystick{val: 0b00000101}) // A and Select

	b.Write(0x4016, 0x01) // strobe high
	b.Write(0x4016, 0x00) // strobe low, latch buttons

	var got []uint8
	for i := 0; i < 8; i++ {
		got = append(got, b.Read(0x4016)&0x01)
	}
	want := []uint8{1, 0, 1, 0, 0, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %d, want %d", i, got[i], want[i])
		}
	}
	if got := b.Read(0x4016); got != 1 {
		t.Errorf("read past 8th bit = %d, want 1", got)
	}
}

// TestPPUDataNametableMirroring checks that writes through $2006/$2007
// land in the same physical nametable byte whether addressed directly
// or through its mirror, for both horizontal and vertical mirroring.
func TestPPUDataNametableMirroring(t *testing.T) {
	writeThenRead := func(t *testing.T, mode uint8, a uint16, wantMirror uint16) {
		t.Helper()
		mappers.Dummy.MM = mode
		b := New(mappers.Dummy)

		hi, lo := uint8(a>>8), uint8(a)
		b.Write(0x2006, hi)
		b.Write(0x2006, lo)
		b.Write(0x2007, 0x5A)

		mhi, mlo := uint8(wantMirror>>8), uint8(wantMirror)
		b.Write(0x2006, mhi)
		b.Write(0x2006, mlo)
		if got := b.Read(0x2007); got != 0x5A {
			t.Errorf("mode %d: reading mirror %04x of %04x = %02x, want 0x5A", mode, wantMirror, a, got)
		}
	}

	// Vertical mirroring: $2000 and $2800 are the same physical table.
	writeThenRead(t, nesrom.MIRROR_VERTICAL, 0x2000, 0x2800)
	// Horizontal mirroring: $2000 and $2400 are the same physical table.
	writeThenRead(t, nesrom.MIRROR_HORIZONTAL, 0x2000, 0x2400)
}

func TestWriteBlockAndReset(t *testing.T) {
	b := New(mappers.Dummy)

	prog := []byte{0xA9, 0x42, 0x00} // LDA #$42; BRK
	b.WriteBlock(0x8000, prog)
	b.ram[0xFFFC] = 0x00
	b.ram[0xFFFD] = 0x80

	b.Reset()
	if got := b.PC(); got != 0x8000 {
		t.Errorf("PC() after Reset = %04x, want 0x8000", got)
	}
	if got := b.Read(0x8000); got != 0xA9 {
		t.Errorf("Read(0x8000) = %02x, want 0xA9", got)
	}
}
