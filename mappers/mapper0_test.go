package mappers

import (
	"bytes"
	"testing"

	"github.com/halvorsen/nescore/nesrom"
)

func newTestROM(t *testing.T, prgBanks, chrBanks byte) *nesrom.ROM {
	t.Helper()

	var buf bytes.Buffer
	h := make([]byte, nesrom.HEADER_SIZE)
	copy(h, []byte("NES\x1A"))
	h[4] = prgBanks
	h[5] = chrBanks
	buf.Write(h)
	for i := byte(0); i < prgBanks; i++ {
		buf.Write(bytes.Repeat([]byte{0x10 + i}, nesrom.PRG_BLOCK_SIZE))
	}
	for i := byte(0); i < chrBanks; i++ {
		buf.Write(bytes.Repeat([]byte{0x20 + i}, nesrom.CHR_BLOCK_SIZE))
	}

	rom, err := nesrom.New(&buf)
	if err != nil {
		t.Fatalf("nesrom.New() = %v", err)
	}
	return rom
}

func TestGetReturnsNROM(t *testing.T) {
	rom := newTestROM(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if m.ID() != 0 {
		t.Errorf("ID() = %d, want 0", m.ID())
	}
}

func TestGetUnknownMapper(t *testing.T) {
	// flags6/flags7's top nibbles assemble mapper id 0xFF, which this
	// core never registers.
	var buf bytes.Buffer
	h := make([]byte, nesrom.HEADER_SIZE)
	copy(h, []byte("NES\x1A"))
	h[4] = 1
	h[6] = 0xF0
	h[7] = 0xF0
	buf.Write(h)
	buf.Write(make([]byte, nesrom.PRG_BLOCK_SIZE))

	rom, err := nesrom.New(&buf)
	if err != nil {
		t.Fatalf("nesrom.New() = %v", err)
	}
	if _, err := Get(rom); err == nil {
		t.Fatalf("Get() with unregistered mapper id succeeded, want error")
	}
}

func TestMapper0PRGReadThroughBanks(t *testing.T) {
	rom := newTestROM(t, 2, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}

	if got := m.PrgRead(0x8000); got != 0x10 {
		t.Errorf("PrgRead(0x8000) = 0x%02x, want 0x10", got)
	}
	if got := m.PrgRead(0xC000); got != 0x11 {
		t.Errorf("PrgRead(0xC000) = 0x%02x, want 0x11", got)
	}
}

func TestMapper0PRGReadSingleBankMirrored(t *testing.T) {
	rom := newTestROM(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}

	if got, want := m.PrgRead(0x8000), m.PrgRead(0xC000); got != want {
		t.Errorf("single-bank PRG: PrgRead(0x8000) = 0x%02x, PrgRead(0xC000) = 0x%02x; want equal", got, want)
	}
}

func TestMapper0CHRPassthrough(t *testing.T) {
	rom := newTestROM(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}

	if got := m.ChrRead(0x0000); got != 0x20 {
		t.Errorf("ChrRead(0x0000) = 0x%02x, want 0x20", got)
	}
}
