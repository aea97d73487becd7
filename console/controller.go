package console

// Joystick supplies a snapshot of button state for the $4016
// controller port. Bits, LSB first: A, B, Select, Start, Up, Down,
// Left, Right. The Address Space polls it once per strobe so the
// driver (ebiten key state, a replay file, anything) never needs to
// know about the shift-register protocol on the wire.
type Joystick interface {
	Poll() uint8
}

// noJoystick is wired by default; $4016 reads back all-zero buttons
// until a driver calls (*Bus).SetJoystick.
type noJoystick struct{}

func (noJoystick) Poll() uint8 { return 0 }

// joystickPort reproduces the real controller's shift register: a
// write with bit 0 set arms the strobe and rewinds the read index: a
// write with bit 0 clear latches the current button snapshot and
// reads begin shifting it out one bit per $4016 read.
type joystickPort struct {
	js      Joystick
	strobe  bool
	buttons uint8
	idx     uint8
}

func (jp *joystickPort) write(val uint8) {
	switch val & 0x01 {
	case 1:
		jp.strobe = true
		jp.idx = 0
	case 0:
		jp.strobe = false
		jp.buttons = jp.js.Poll()
	}
}

func (jp *joystickPort) read() uint8 {
	if _, ok := jp.js.(noJoystick); ok {
		return 0 // no controller wired: every read is 0
	}
	if jp.idx > 7 {
		return 1
	}

	ret := (jp.buttons >> jp.idx) & 0x01
	jp.idx++
	return ret
}
