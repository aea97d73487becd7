package console

import "context"

// NTSC VBlank timing, in CPU cycles. The visible/pre-render portion
// of a frame runs CyclesPerVBlankOff cycles before VBlank starts; the
// VBlank period itself lasts CyclesPerVBlankOn cycles before the next
// frame's rendering begins.
const (
	CyclesPerVBlankOff = 29760
	CyclesPerVBlankOn  = 2728
)

// Tick executes exactly one CPU instruction (or interrupt dispatch)
// and advances the VBlank state machine by however many cycles that
// took. It returns the cycle count Step reported, or the error Step
// returned (typically mos6502.UnknownOpcode).
func (b *Bus) Tick() (int, error) {
	n, err := b.cpu.Step()
	if err != nil {
		return n, err
	}
	b.cycleCount += uint64(n)

	switch {
	case !b.inVBlank && b.cycleCount >= CyclesPerVBlankOff:
		b.enterVBlank()
	case b.inVBlank && b.cycleCount >= CyclesPerVBlankOn:
		b.exitVBlank()
	}

	return n, nil
}

func (b *Bus) enterVBlank() {
	b.setVBlankFlag()
	if b.vblankEnable && b.cpu.InterruptsEnabled() {
		b.cpu.TriggerNMI()
	}
	if b.renderer != nil {
		b.renderer.OnVBlankEnter(&b.vram, &b.oam, b.patternTableBase)
	}
	b.cycleCount = 0
	b.inVBlank = true
}

func (b *Bus) exitVBlank() {
	b.clearVBlankFlag()
	if b.renderer != nil {
		b.renderer.OnVBlankExit()
	}
	b.cycleCount = 0
	b.inVBlank = false
}

// RunFrame drives Tick until one full VBlank-on/VBlank-off cycle has
// elapsed, i.e. until exitVBlank has fired once. Useful for driving the
// scheduler one frame at a time (tests, a frame-stepping debugger)
// without needing a context.
func (b *Bus) RunFrame() error {
	wasInVBlank := b.inVBlank
	seenVBlank := false
	for {
		if _, err := b.Tick(); err != nil {
			return err
		}
		if b.inVBlank && !wasInVBlank {
			seenVBlank = true
		}
		wasInVBlank = b.inVBlank
		if seenVBlank && !b.inVBlank {
			return nil
		}
	}
}

// Run drives Tick in a loop until ctx is cancelled or an instruction
// fails to decode.
func (b *Bus) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := b.Tick(); err != nil {
			return err
		}
	}
}
