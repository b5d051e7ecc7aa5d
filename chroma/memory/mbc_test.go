package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// bankedROM builds a ROM where every byte holds its bank number.
func bankedROM(banks int) []byte {
	rom := make([]byte, banks*romBankSize)
	for i := range rom {
		rom[i] = byte(i / romBankSize)
	}
	return rom
}

func TestMBC1(t *testing.T) {
	t.Run("bank 0 is fixed", func(t *testing.T) {
		m := NewMBC1(bankedROM(8), 0, 8)
		assert.Equal(t, uint8(0), m.Read(0x0000))
		assert.Equal(t, uint8(0), m.Read(0x3FFF))
	})

	t.Run("selects banks on a 128 KiB ROM", func(t *testing.T) {
		m := NewMBC1(bankedROM(8), 0, 8)
		m.Write(0x2000, 0x05)
		assert.Equal(t, uint8(5), m.Read(0x4000))
	})

	t.Run("bank zero coerces to one", func(t *testing.T) {
		m := NewMBC1(bankedROM(8), 0, 8)
		m.Write(0x2000, 0x00)
		assert.Equal(t, uint8(1), m.Read(0x4000))
	})

	t.Run("bank index wraps to ROM size", func(t *testing.T) {
		m := NewMBC1(bankedROM(4), 0, 4)
		m.Write(0x2000, 0x05) // bank 5 of a 4-bank ROM -> bank 1
		assert.Equal(t, uint8(1), m.Read(0x4000))
	})

	t.Run("upper bits extend the bank in ROM mode", func(t *testing.T) {
		m := NewMBC1(bankedROM(64), 0, 64)
		m.Write(0x2000, 0x01)
		m.Write(0x4000, 0x01) // upper bits -> bank 0x21
		assert.Equal(t, uint8(0x21), m.Read(0x4000))
	})

	t.Run("RAM disabled reads 0xFF", func(t *testing.T) {
		m := NewMBC1(bankedROM(4), 0x8000, 4)
		assert.Equal(t, uint8(0xFF), m.Read(0xA000))

		m.Write(0x0000, 0x0A)
		m.Write(0xA000, 0x42)
		assert.Equal(t, uint8(0x42), m.Read(0xA000))

		m.Write(0x0000, 0x00)
		assert.Equal(t, uint8(0xFF), m.Read(0xA000))
	})

	t.Run("RAM banking mode selects banks", func(t *testing.T) {
		m := NewMBC1(bankedROM(4), 0x8000, 4)
		m.Write(0x0000, 0x0A)
		m.Write(0x6000, 0x01) // RAM banking mode
		m.Write(0x4000, 0x02) // bank 2
		m.Write(0xA000, 0x99)

		m.Write(0x4000, 0x00)
		assert.Equal(t, uint8(0x00), m.Read(0xA000))
		m.Write(0x4000, 0x02)
		assert.Equal(t, uint8(0x99), m.Read(0xA000))
	})
}

func TestMBC3(t *testing.T) {
	t.Run("7-bit bank register with zero coercion", func(t *testing.T) {
		m := NewMBC3(bankedROM(128), 0, 128)
		m.Write(0x2000, 0x7F)
		assert.Equal(t, uint8(0x7F), m.Read(0x4000))

		m.Write(0x2000, 0x00)
		assert.Equal(t, uint8(1), m.Read(0x4000))
	})

	t.Run("RAM writes persist into the selected bank", func(t *testing.T) {
		m := NewMBC3(bankedROM(8), 0x8000, 8)
		m.Write(0x0000, 0x0A)
		m.Write(0x4000, 0x03)
		m.Write(0xA123, 0x55)

		m.Write(0x4000, 0x00)
		assert.Equal(t, uint8(0x00), m.Read(0xA123))
		m.Write(0x4000, 0x03)
		assert.Equal(t, uint8(0x55), m.Read(0xA123))
	})

	t.Run("RTC registers are stored but not stepped", func(t *testing.T) {
		m := NewMBC3(bankedROM(8), 0x8000, 8)
		m.Write(0x0000, 0x0A)
		m.Write(0x4000, 0x08) // RTC seconds
		m.Write(0xA000, 0x3B)
		assert.Equal(t, uint8(0x3B), m.Read(0xA000))
	})
}

func TestMBC5(t *testing.T) {
	t.Run("9-bit bank register", func(t *testing.T) {
		m := NewMBC5(bankedROM(512), 0, 512)
		m.Write(0x2000, 0x34)
		m.Write(0x3000, 0x01)
		assert.Equal(t, uint8(0x34), m.Read(0x4000)) // bank 0x134 & 0x1FF

		m.Write(0x3000, 0x00)
		assert.Equal(t, uint8(0x34), m.Read(0x4000))
	})

	t.Run("bank 0 is selectable", func(t *testing.T) {
		m := NewMBC5(bankedROM(8), 0, 8)
		m.Write(0x2000, 0x00)
		assert.Equal(t, uint8(0), m.Read(0x4000))
	})

	t.Run("4-bit RAM bank register", func(t *testing.T) {
		m := NewMBC5(bankedROM(8), 16*ramBankSize, 8)
		m.Write(0x0000, 0x0A)
		m.Write(0x4000, 0x0F)
		m.Write(0xA000, 0x77)

		m.Write(0x4000, 0x00)
		assert.Equal(t, uint8(0x00), m.Read(0xA000))
		m.Write(0x4000, 0x0F)
		assert.Equal(t, uint8(0x77), m.Read(0xA000))
	})
}

func TestNoMBC(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x1234] = 0xAB
	m := NewNoMBC(rom, 0x2000)

	assert.Equal(t, uint8(0xAB), m.Read(0x1234))

	// ROM writes have no side effect.
	m.Write(0x1234, 0x00)
	assert.Equal(t, uint8(0xAB), m.Read(0x1234))

	m.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xA000))
}
