package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvelli/go-chroma/chroma/addr"
)

func TestJoypad_rowSelection(t *testing.T) {
	j := NewJoypad()
	ic := NewInterrupts()

	j.SetState(BtnRight|BtnA, ic)

	j.Write(0x20) // select d-pad (bit 4 low)
	assert.Equal(t, uint8(0xEE), j.Read())

	j.Write(0x10) // select buttons (bit 5 low)
	assert.Equal(t, uint8(0xDE), j.Read())

	j.Write(0x30) // nothing selected
	assert.Equal(t, uint8(0xFF), j.Read())

	j.Write(0x00) // both rows, hardware ANDs them
	assert.Equal(t, uint8(0xCE), j.Read())
}

func TestJoypad_pressRequestsInterrupt(t *testing.T) {
	j := NewJoypad()
	ic := NewInterrupts()
	ic.WriteIE(0x10)

	j.SetState(BtnStart, ic)
	assert.True(t, ic.Pending())

	// Holding the same button is not a new press.
	ic.Consume(addr.JoypadInterrupt)
	j.SetState(BtnStart, ic)
	assert.False(t, ic.Pending())

	// Releasing requests nothing.
	j.SetState(0, ic)
	assert.False(t, ic.Pending())
}
