// Package mappers implements and registers mappers that are
// referenced numerically by iNES and NES2.0 ROM files.
package mappers

import (
	"fmt"

	"github.com/halvorsen/nescore/nesrom"
)

// A global registry of mapper constructors, keyed by mapper id. Get
// calls the constructor for a fresh value so two ROMs loaded in the
// same process never share state.
var allMappers = map[uint16]func() Mapper{}

// RegisterMapper installs a mapper constructor under id. Called from
// each mapper's init(); a second registration for the same id is a
// programming error.
func RegisterMapper(id uint16, new func() Mapper) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: id %d already registered", id))
	}
	allMappers[id] = new
}

// Get constructs the mapper named by rom's header and initializes it
// against rom. It is the only supported way to obtain a Mapper.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := uint16(rom.MapperNum())
	new, ok := allMappers[id]
	if !ok {
		return nil, fmt.Errorf("mappers: unsupported mapper id %d", id)
	}

	m := new()
	m.Init(rom)
	return m, nil
}

const (
	NES_BASE_MEMORY = 2048 // 2KB built in RAM
)

// Mapper is the cartridge-side interface the Address Space uses to
// resolve PRG/CHR accesses once bank-switching enters the picture. It
// is deliberately narrower than the Address Space's own Read/Write:
// a Mapper only ever sees addresses already routed to cartridge space.
type Mapper interface {
	ID() uint16
	Init(*nesrom.ROM)
	Name() string
	PrgRead(uint16) uint8   // Read PRG data; addr is CPU-relative ($8000-$FFFF)
	PrgWrite(uint16, uint8) // Write PRG data; most boards ignore this or treat it as a bank-select register
	ChrRead(uint16) uint8   // Read CHR data; addr is PPU-relative ($0000-$1FFF)
	ChrWrite(uint16, uint8) // Write CHR data; no-op on CHR-ROM boards
	MirroringMode() uint8   // Which mirroring mode is tilemap data stored in
	HasSaveRAM() bool       // Whether or not the cartridge exposes Save RAM at 0x6000-0x7FFF
}

type baseMapper struct {
	id   uint16
	rom  *nesrom.ROM
	name string
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint16 {
	return bm.id
}

func (bm *baseMapper) String() string {
	return bm.name
}

func (bm *baseMapper) Name() string {
	return bm.name
}

func (bm *baseMapper) Init(r *nesrom.ROM) {
	bm.rom = r
}

func (bm *baseMapper) MirroringMode() uint8 {
	return bm.rom.MirroringMode()
}

func (bm *baseMapper) HasSaveRAM() bool {
	return bm.rom.HasSaveRAM()
}
