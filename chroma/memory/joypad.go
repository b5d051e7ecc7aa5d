package memory

import "github.com/calvelli/go-chroma/chroma/addr"

// Button bits of the host-facing joypad state, set while pressed.
const (
	BtnA      byte = 1 << 0
	BtnB      byte = 1 << 1
	BtnSelect byte = 1 << 2
	BtnStart  byte = 1 << 3
	BtnRight  byte = 1 << 4
	BtnLeft   byte = 1 << 5
	BtnUp     byte = 1 << 6
	BtnDown   byte = 1 << 7
)

// Joypad holds the P1 matrix: two active-low nibbles (d-pad and buttons)
// plus the row selector written by the game.
type Joypad struct {
	selector byte
	dpad     byte
	buttons  byte
}

func NewJoypad() *Joypad {
	return &Joypad{
		selector: 0x30,
		dpad:     0x0F,
		buttons:  0x0F,
	}
}

// Read composes P1 from the selected rows. When both rows are selected the
// hardware ANDs them; with none selected the low nibble floats high.
func (j *Joypad) Read() byte {
	result := byte(0xC0) | j.selector

	selectDpad := j.selector&0x10 == 0
	selectButtons := j.selector&0x20 == 0

	switch {
	case selectDpad && selectButtons:
		result |= j.dpad & j.buttons & 0x0F
	case selectDpad:
		result |= j.dpad & 0x0F
	case selectButtons:
		result |= j.buttons & 0x0F
	default:
		result |= 0x0F
	}
	return result
}

// Write stores the row selector; only bits 4-5 are writable.
func (j *Joypad) Write(value byte) {
	j.selector = value & 0x30
}

// SetState replaces the host button state (Btn* bits, set while pressed).
// A released-to-pressed transition requests the Joypad interrupt.
func (j *Joypad) SetState(state byte, ic *Interrupts) {
	newDpad := byte(0x0F)
	if state&BtnRight != 0 {
		newDpad &^= 0x01
	}
	if state&BtnLeft != 0 {
		newDpad &^= 0x02
	}
	if state&BtnUp != 0 {
		newDpad &^= 0x04
	}
	if state&BtnDown != 0 {
		newDpad &^= 0x08
	}

	newButtons := byte(0x0F)
	if state&BtnA != 0 {
		newButtons &^= 0x01
	}
	if state&BtnB != 0 {
		newButtons &^= 0x02
	}
	if state&BtnSelect != 0 {
		newButtons &^= 0x04
	}
	if state&BtnStart != 0 {
		newButtons &^= 0x08
	}

	pressed := (j.dpad &^ newDpad) | (j.buttons &^ newButtons)
	j.dpad = newDpad
	j.buttons = newButtons

	if pressed != 0 {
		ic.Request(addr.JoypadInterrupt)
	}
}
