package cpu

import (
	"fmt"
	"log/slog"
)

// The eleven unused opcodes lock up the CPU on real hardware.
func illegal(c *CPU) {
	slog.Warn("illegal opcode, stopping CPU",
		"opcode", fmt.Sprintf("0x%02X", c.mmu.Read(c.pc-1)),
		"pc", fmt.Sprintf("0x%04X", c.pc-1))
	c.state = Stopped
}

// NOP
func opcode0x00(_ *CPU) {}

// LD BC, nn
func opcode0x01(c *CPU) { c.setBC(c.fetchWord()) }

// LD (BC), A
func opcode0x02(c *CPU) { c.writeByte(c.getBC(), c.a) }

// INC BC
func opcode0x03(c *CPU) { c.setBC(c.getBC() + 1); c.tick() }

// INC B
func opcode0x04(c *CPU) { c.b = c.inc(c.b) }

// DEC B
func opcode0x05(c *CPU) { c.b = c.dec(c.b) }

// LD B, n
func opcode0x06(c *CPU) { c.b = c.fetchPC() }

// RLCA
func opcode0x07(c *CPU) { c.a = c.rlc(c.a); c.resetFlag(zeroFlag) }

// LD (nn), SP
func opcode0x08(c *CPU) {
	address := c.fetchWord()
	c.writeByte(address, uint8(c.sp))
	c.writeByte(address+1, uint8(c.sp>>8))
}

// ADD HL, BC
func opcode0x09(c *CPU) { c.addToHL(c.getBC()); c.tick() }

// LD A, (BC)
func opcode0x0A(c *CPU) { c.a = c.readByte(c.getBC()) }

// DEC BC
func opcode0x0B(c *CPU) { c.setBC(c.getBC() - 1); c.tick() }

// INC C
func opcode0x0C(c *CPU) { c.c = c.inc(c.c) }

// DEC C
func opcode0x0D(c *CPU) { c.c = c.dec(c.c) }

// LD C, n
func opcode0x0E(c *CPU) { c.c = c.fetchPC() }

// RRCA
func opcode0x0F(c *CPU) { c.a = c.rrc(c.a); c.resetFlag(zeroFlag) }

// STOP; performs the speed switch when KEY1 bit 0 is armed
func opcode0x10(c *CPU) {
	c.fetchPC() // padding byte
	if !c.mmu.SwitchSpeed() {
		c.state = Stopped
	}
}

// LD DE, nn
func opcode0x11(c *CPU) { c.setDE(c.fetchWord()) }

// LD (DE), A
func opcode0x12(c *CPU) { c.writeByte(c.getDE(), c.a) }

// INC DE
func opcode0x13(c *CPU) { c.setDE(c.getDE() + 1); c.tick() }

// INC D
func opcode0x14(c *CPU) { c.d = c.inc(c.d) }

// DEC D
func opcode0x15(c *CPU) { c.d = c.dec(c.d) }

// LD D, n
func opcode0x16(c *CPU) { c.d = c.fetchPC() }

// RLA
func opcode0x17(c *CPU) { c.a = c.rl(c.a); c.resetFlag(zeroFlag) }

// JR n
func opcode0x18(c *CPU) { c.jr(true) }

// ADD HL, DE
func opcode0x19(c *CPU) { c.addToHL(c.getDE()); c.tick() }

// LD A, (DE)
func opcode0x1A(c *CPU) { c.a = c.readByte(c.getDE()) }

// DEC DE
func opcode0x1B(c *CPU) { c.setDE(c.getDE() - 1); c.tick() }

// INC E
func opcode0x1C(c *CPU) { c.e = c.inc(c.e) }

// DEC E
func opcode0x1D(c *CPU) { c.e = c.dec(c.e) }

// LD E, n
func opcode0x1E(c *CPU) { c.e = c.fetchPC() }

// RRA
func opcode0x1F(c *CPU) { c.a = c.rr(c.a); c.resetFlag(zeroFlag) }

// JR NZ, n
func opcode0x20(c *CPU) { c.jr(!c.isSetFlag(zeroFlag)) }

// LD HL, nn
func opcode0x21(c *CPU) { c.setHL(c.fetchWord()) }

// LD (HL+), A
func opcode0x22(c *CPU) {
	hl := c.getHL()
	c.writeByte(hl, c.a)
	c.setHL(hl + 1)
}

// INC HL
func opcode0x23(c *CPU) { c.setHL(c.getHL() + 1); c.tick() }

// INC H
func opcode0x24(c *CPU) { c.h = c.inc(c.h) }

// DEC H
func opcode0x25(c *CPU) { c.h = c.dec(c.h) }

// LD H, n
func opcode0x26(c *CPU) { c.h = c.fetchPC() }

// DAA
func opcode0x27(c *CPU) { c.daa() }

// JR Z, n
func opcode0x28(c *CPU) { c.jr(c.isSetFlag(zeroFlag)) }

// ADD HL, HL
func opcode0x29(c *CPU) { c.addToHL(c.getHL()); c.tick() }

// LD A, (HL+)
func opcode0x2A(c *CPU) {
	hl := c.getHL()
	c.a = c.readByte(hl)
	c.setHL(hl + 1)
}

// DEC HL
func opcode0x2B(c *CPU) { c.setHL(c.getHL() - 1); c.tick() }

// INC L
func opcode0x2C(c *CPU) { c.l = c.inc(c.l) }

// DEC L
func opcode0x2D(c *CPU) { c.l = c.dec(c.l) }

// LD L, n
func opcode0x2E(c *CPU) { c.l = c.fetchPC() }

// CPL
func opcode0x2F(c *CPU) {
	c.a = ^c.a
	c.setFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// JR NC, n
func opcode0x30(c *CPU) { c.jr(!c.isSetFlag(carryFlag)) }

// LD SP, nn
func opcode0x31(c *CPU) { c.sp = c.fetchWord() }

// LD (HL-), A
func opcode0x32(c *CPU) {
	hl := c.getHL()
	c.writeByte(hl, c.a)
	c.setHL(hl - 1)
}

// INC SP
func opcode0x33(c *CPU) { c.sp++; c.tick() }

// INC (HL)
func opcode0x34(c *CPU) {
	hl := c.getHL()
	c.writeByte(hl, c.inc(c.readByte(hl)))
}

// DEC (HL)
func opcode0x35(c *CPU) {
	hl := c.getHL()
	c.writeByte(hl, c.dec(c.readByte(hl)))
}

// LD (HL), n
func opcode0x36(c *CPU) {
	value := c.fetchPC()
	c.writeByte(c.getHL(), value)
}

// SCF
func opcode0x37(c *CPU) {
	c.setFlag(carryFlag)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

// JR C, n
func opcode0x38(c *CPU) { c.jr(c.isSetFlag(carryFlag)) }

// ADD HL, SP
func opcode0x39(c *CPU) { c.addToHL(c.sp); c.tick() }

// LD A, (HL-)
func opcode0x3A(c *CPU) {
	hl := c.getHL()
	c.a = c.readByte(hl)
	c.setHL(hl - 1)
}

// DEC SP
func opcode0x3B(c *CPU) { c.sp--; c.tick() }

// INC A
func opcode0x3C(c *CPU) { c.a = c.inc(c.a) }

// DEC A
func opcode0x3D(c *CPU) { c.a = c.dec(c.a) }

// LD A, n
func opcode0x3E(c *CPU) { c.a = c.fetchPC() }

// CCF
func opcode0x3F(c *CPU) {
	c.setFlagToCondition(carryFlag, !c.isSetFlag(carryFlag))
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

// LD B, r
func opcode0x40(_ *CPU) {}
func opcode0x41(c *CPU) { c.b = c.c }
func opcode0x42(c *CPU) { c.b = c.d }
func opcode0x43(c *CPU) { c.b = c.e }
func opcode0x44(c *CPU) { c.b = c.h }
func opcode0x45(c *CPU) { c.b = c.l }
func opcode0x46(c *CPU) { c.b = c.readByte(c.getHL()) }
func opcode0x47(c *CPU) { c.b = c.a }

// LD C, r
func opcode0x48(c *CPU) { c.c = c.b }
func opcode0x49(_ *CPU) {}
func opcode0x4A(c *CPU) { c.c = c.d }
func opcode0x4B(c *CPU) { c.c = c.e }
func opcode0x4C(c *CPU) { c.c = c.h }
func opcode0x4D(c *CPU) { c.c = c.l }
func opcode0x4E(c *CPU) { c.c = c.readByte(c.getHL()) }
func opcode0x4F(c *CPU) { c.c = c.a }

// LD D, r
func opcode0x50(c *CPU) { c.d = c.b }
func opcode0x51(c *CPU) { c.d = c.c }
func opcode0x52(_ *CPU) {}
func opcode0x53(c *CPU) { c.d = c.e }
func opcode0x54(c *CPU) { c.d = c.h }
func opcode0x55(c *CPU) { c.d = c.l }
func opcode0x56(c *CPU) { c.d = c.readByte(c.getHL()) }
func opcode0x57(c *CPU) { c.d = c.a }

// LD E, r
func opcode0x58(c *CPU) { c.e = c.b }
func opcode0x59(c *CPU) { c.e = c.c }
func opcode0x5A(c *CPU) { c.e = c.d }
func opcode0x5B(_ *CPU) {}
func opcode0x5C(c *CPU) { c.e = c.h }
func opcode0x5D(c *CPU) { c.e = c.l }
func opcode0x5E(c *CPU) { c.e = c.readByte(c.getHL()) }
func opcode0x5F(c *CPU) { c.e = c.a }

// LD H, r
func opcode0x60(c *CPU) { c.h = c.b }
func opcode0x61(c *CPU) { c.h = c.c }
func opcode0x62(c *CPU) { c.h = c.d }
func opcode0x63(c *CPU) { c.h = c.e }
func opcode0x64(_ *CPU) {}
func opcode0x65(c *CPU) { c.h = c.l }
func opcode0x66(c *CPU) { c.h = c.readByte(c.getHL()) }
func opcode0x67(c *CPU) { c.h = c.a }

// LD L, r
func opcode0x68(c *CPU) { c.l = c.b }
func opcode0x69(c *CPU) { c.l = c.c }
func opcode0x6A(c *CPU) { c.l = c.d }
func opcode0x6B(c *CPU) { c.l = c.e }
func opcode0x6C(c *CPU) { c.l = c.h }
func opcode0x6D(_ *CPU) {}
func opcode0x6E(c *CPU) { c.l = c.readByte(c.getHL()) }
func opcode0x6F(c *CPU) { c.l = c.a }

// LD (HL), r
func opcode0x70(c *CPU) { c.writeByte(c.getHL(), c.b) }
func opcode0x71(c *CPU) { c.writeByte(c.getHL(), c.c) }
func opcode0x72(c *CPU) { c.writeByte(c.getHL(), c.d) }
func opcode0x73(c *CPU) { c.writeByte(c.getHL(), c.e) }
func opcode0x74(c *CPU) { c.writeByte(c.getHL(), c.h) }
func opcode0x75(c *CPU) { c.writeByte(c.getHL(), c.l) }

// HALT. With IME=0 and an interrupt already pending the CPU does not halt:
// it continues, replaying the next opcode byte once (the halt bug).
func opcode0x76(c *CPU) {
	ic := c.mmu.Interrupts
	if !ic.IME && ic.Pending() {
		c.haltBug = true
		return
	}
	c.state = Halted
}

func opcode0x77(c *CPU) { c.writeByte(c.getHL(), c.a) }

// LD A, r
func opcode0x78(c *CPU) { c.a = c.b }
func opcode0x79(c *CPU) { c.a = c.c }
func opcode0x7A(c *CPU) { c.a = c.d }
func opcode0x7B(c *CPU) { c.a = c.e }
func opcode0x7C(c *CPU) { c.a = c.h }
func opcode0x7D(c *CPU) { c.a = c.l }
func opcode0x7E(c *CPU) { c.a = c.readByte(c.getHL()) }
func opcode0x7F(_ *CPU) {}

// ADD A, r
func opcode0x80(c *CPU) { c.addToA(c.b) }
func opcode0x81(c *CPU) { c.addToA(c.c) }
func opcode0x82(c *CPU) { c.addToA(c.d) }
func opcode0x83(c *CPU) { c.addToA(c.e) }
func opcode0x84(c *CPU) { c.addToA(c.h) }
func opcode0x85(c *CPU) { c.addToA(c.l) }
func opcode0x86(c *CPU) { c.addToA(c.readByte(c.getHL())) }
func opcode0x87(c *CPU) { c.addToA(c.a) }

// ADC A, r
func opcode0x88(c *CPU) { c.adc(c.b) }
func opcode0x89(c *CPU) { c.adc(c.c) }
func opcode0x8A(c *CPU) { c.adc(c.d) }
func opcode0x8B(c *CPU) { c.adc(c.e) }
func opcode0x8C(c *CPU) { c.adc(c.h) }
func opcode0x8D(c *CPU) { c.adc(c.l) }
func opcode0x8E(c *CPU) { c.adc(c.readByte(c.getHL())) }
func opcode0x8F(c *CPU) { c.adc(c.a) }

// SUB r
func opcode0x90(c *CPU) { c.sub(c.b) }
func opcode0x91(c *CPU) { c.sub(c.c) }
func opcode0x92(c *CPU) { c.sub(c.d) }
func opcode0x93(c *CPU) { c.sub(c.e) }
func opcode0x94(c *CPU) { c.sub(c.h) }
func opcode0x95(c *CPU) { c.sub(c.l) }
func opcode0x96(c *CPU) { c.sub(c.readByte(c.getHL())) }
func opcode0x97(c *CPU) { c.sub(c.a) }

// SBC A, r
func opcode0x98(c *CPU) { c.sbc(c.b) }
func opcode0x99(c *CPU) { c.sbc(c.c) }
func opcode0x9A(c *CPU) { c.sbc(c.d) }
func opcode0x9B(c *CPU) { c.sbc(c.e) }
func opcode0x9C(c *CPU) { c.sbc(c.h) }
func opcode0x9D(c *CPU) { c.sbc(c.l) }
func opcode0x9E(c *CPU) { c.sbc(c.readByte(c.getHL())) }
func opcode0x9F(c *CPU) { c.sbc(c.a) }

// AND r
func opcode0xA0(c *CPU) { c.andA(c.b) }
func opcode0xA1(c *CPU) { c.andA(c.c) }
func opcode0xA2(c *CPU) { c.andA(c.d) }
func opcode0xA3(c *CPU) { c.andA(c.e) }
func opcode0xA4(c *CPU) { c.andA(c.h) }
func opcode0xA5(c *CPU) { c.andA(c.l) }
func opcode0xA6(c *CPU) { c.andA(c.readByte(c.getHL())) }
func opcode0xA7(c *CPU) { c.andA(c.a) }

// XOR r
func opcode0xA8(c *CPU) { c.xorA(c.b) }
func opcode0xA9(c *CPU) { c.xorA(c.c) }
func opcode0xAA(c *CPU) { c.xorA(c.d) }
func opcode0xAB(c *CPU) { c.xorA(c.e) }
func opcode0xAC(c *CPU) { c.xorA(c.h) }
func opcode0xAD(c *CPU) { c.xorA(c.l) }
func opcode0xAE(c *CPU) { c.xorA(c.readByte(c.getHL())) }
func opcode0xAF(c *CPU) { c.xorA(c.a) }

// OR r
func opcode0xB0(c *CPU) { c.orA(c.b) }
func opcode0xB1(c *CPU) { c.orA(c.c) }
func opcode0xB2(c *CPU) { c.orA(c.d) }
func opcode0xB3(c *CPU) { c.orA(c.e) }
func opcode0xB4(c *CPU) { c.orA(c.h) }
func opcode0xB5(c *CPU) { c.orA(c.l) }
func opcode0xB6(c *CPU) { c.orA(c.readByte(c.getHL())) }
func opcode0xB7(c *CPU) { c.orA(c.a) }

// CP r
func opcode0xB8(c *CPU) { c.cp(c.b) }
func opcode0xB9(c *CPU) { c.cp(c.c) }
func opcode0xBA(c *CPU) { c.cp(c.d) }
func opcode0xBB(c *CPU) { c.cp(c.e) }
func opcode0xBC(c *CPU) { c.cp(c.h) }
func opcode0xBD(c *CPU) { c.cp(c.l) }
func opcode0xBE(c *CPU) { c.cp(c.readByte(c.getHL())) }
func opcode0xBF(c *CPU) { c.cp(c.a) }

// RET NZ
func opcode0xC0(c *CPU) {
	c.tick()
	if !c.isSetFlag(zeroFlag) {
		c.ret()
	}
}

// POP BC
func opcode0xC1(c *CPU) { c.setBC(c.popStack()) }

// JP NZ, nn
func opcode0xC2(c *CPU) { c.jp(!c.isSetFlag(zeroFlag)) }

// JP nn
func opcode0xC3(c *CPU) { c.jp(true) }

// CALL NZ, nn
func opcode0xC4(c *CPU) { c.call(!c.isSetFlag(zeroFlag)) }

// PUSH BC
func opcode0xC5(c *CPU) { c.pushStack(c.getBC()); c.tick() }

// ADD A, n
func opcode0xC6(c *CPU) { c.addToA(c.fetchPC()) }

// RST 00
func opcode0xC7(c *CPU) { c.rst(0x0000) }

// RET Z
func opcode0xC8(c *CPU) {
	c.tick()
	if c.isSetFlag(zeroFlag) {
		c.ret()
	}
}

// RET
func opcode0xC9(c *CPU) { c.ret() }

// JP Z, nn
func opcode0xCA(c *CPU) { c.jp(c.isSetFlag(zeroFlag)) }

// CB prefix
func opcode0xCB(c *CPU) { c.executeCB() }

// CALL Z, nn
func opcode0xCC(c *CPU) { c.call(c.isSetFlag(zeroFlag)) }

// CALL nn
func opcode0xCD(c *CPU) { c.call(true) }

// ADC A, n
func opcode0xCE(c *CPU) { c.adc(c.fetchPC()) }

// RST 08
func opcode0xCF(c *CPU) { c.rst(0x0008) }

// RET NC
func opcode0xD0(c *CPU) {
	c.tick()
	if !c.isSetFlag(carryFlag) {
		c.ret()
	}
}

// POP DE
func opcode0xD1(c *CPU) { c.setDE(c.popStack()) }

// JP NC, nn
func opcode0xD2(c *CPU) { c.jp(!c.isSetFlag(carryFlag)) }

// CALL NC, nn
func opcode0xD4(c *CPU) { c.call(!c.isSetFlag(carryFlag)) }

// PUSH DE
func opcode0xD5(c *CPU) { c.pushStack(c.getDE()); c.tick() }

// SUB n
func opcode0xD6(c *CPU) { c.sub(c.fetchPC()) }

// RST 10
func opcode0xD7(c *CPU) { c.rst(0x0010) }

// RET C
func opcode0xD8(c *CPU) {
	c.tick()
	if c.isSetFlag(carryFlag) {
		c.ret()
	}
}

// RETI
func opcode0xD9(c *CPU) {
	c.ret()
	c.mmu.Interrupts.IME = true
}

// JP C, nn
func opcode0xDA(c *CPU) { c.jp(c.isSetFlag(carryFlag)) }

// CALL C, nn
func opcode0xDC(c *CPU) { c.call(c.isSetFlag(carryFlag)) }

// SBC A, n
func opcode0xDE(c *CPU) { c.sbc(c.fetchPC()) }

// RST 18
func opcode0xDF(c *CPU) { c.rst(0x0018) }

// LDH (n), A
func opcode0xE0(c *CPU) {
	offset := c.fetchPC()
	c.writeByte(0xFF00+uint16(offset), c.a)
}

// POP HL
func opcode0xE1(c *CPU) { c.setHL(c.popStack()) }

// LD (C), A
func opcode0xE2(c *CPU) { c.writeByte(0xFF00+uint16(c.c), c.a) }

// PUSH HL
func opcode0xE5(c *CPU) { c.pushStack(c.getHL()); c.tick() }

// AND n
func opcode0xE6(c *CPU) { c.andA(c.fetchPC()) }

// RST 20
func opcode0xE7(c *CPU) { c.rst(0x0020) }

// ADD SP, n
func opcode0xE8(c *CPU) {
	offset := int8(c.fetchPC())
	newSP := c.offsetSP(offset)
	c.tick()
	c.tick()
	c.sp = newSP
}

// JP (HL)
func opcode0xE9(c *CPU) { c.pc = c.getHL() }

// LD (nn), A
func opcode0xEA(c *CPU) {
	address := c.fetchWord()
	c.writeByte(address, c.a)
}

// XOR n
func opcode0xEE(c *CPU) { c.xorA(c.fetchPC()) }

// RST 28
func opcode0xEF(c *CPU) { c.rst(0x0028) }

// LDH A, (n)
func opcode0xF0(c *CPU) {
	offset := c.fetchPC()
	c.a = c.readByte(0xFF00 + uint16(offset))
}

// POP AF
func opcode0xF1(c *CPU) { c.setAF(c.popStack()) }

// LD A, (C)
func opcode0xF2(c *CPU) { c.a = c.readByte(0xFF00 + uint16(c.c)) }

// DI
func opcode0xF3(c *CPU) {
	c.mmu.Interrupts.IME = false
	c.imePending = false
}

// PUSH AF
func opcode0xF5(c *CPU) { c.pushStack(c.getAF()); c.tick() }

// OR n
func opcode0xF6(c *CPU) { c.orA(c.fetchPC()) }

// RST 30
func opcode0xF7(c *CPU) { c.rst(0x0030) }

// LD HL, SP+n
func opcode0xF8(c *CPU) {
	offset := int8(c.fetchPC())
	c.setHL(c.offsetSP(offset))
	c.tick()
}

// LD SP, HL
func opcode0xF9(c *CPU) { c.sp = c.getHL(); c.tick() }

// LD A, (nn)
func opcode0xFA(c *CPU) {
	address := c.fetchWord()
	c.a = c.readByte(address)
}

// EI; IME is set on the tick after this instruction completes
func opcode0xFB(c *CPU) { c.imePending = true }

// CP n
func opcode0xFE(c *CPU) { c.cp(c.fetchPC()) }

// RST 38
func opcode0xFF(c *CPU) { c.rst(0x0038) }

var opcodes = [256]func(*CPU){
	0x00: opcode0x00, 0x01: opcode0x01, 0x02: opcode0x02, 0x03: opcode0x03,
	0x04: opcode0x04, 0x05: opcode0x05, 0x06: opcode0x06, 0x07: opcode0x07,
	0x08: opcode0x08, 0x09: opcode0x09, 0x0A: opcode0x0A, 0x0B: opcode0x0B,
	0x0C: opcode0x0C, 0x0D: opcode0x0D, 0x0E: opcode0x0E, 0x0F: opcode0x0F,
	0x10: opcode0x10, 0x11: opcode0x11, 0x12: opcode0x12, 0x13: opcode0x13,
	0x14: opcode0x14, 0x15: opcode0x15, 0x16: opcode0x16, 0x17: opcode0x17,
	0x18: opcode0x18, 0x19: opcode0x19, 0x1A: opcode0x1A, 0x1B: opcode0x1B,
	0x1C: opcode0x1C, 0x1D: opcode0x1D, 0x1E: opcode0x1E, 0x1F: opcode0x1F,
	0x20: opcode0x20, 0x21: opcode0x21, 0x22: opcode0x22, 0x23: opcode0x23,
	0x24: opcode0x24, 0x25: opcode0x25, 0x26: opcode0x26, 0x27: opcode0x27,
	0x28: opcode0x28, 0x29: opcode0x29, 0x2A: opcode0x2A, 0x2B: opcode0x2B,
	0x2C: opcode0x2C, 0x2D: opcode0x2D, 0x2E: opcode0x2E, 0x2F: opcode0x2F,
	0x30: opcode0x30, 0x31: opcode0x31, 0x32: opcode0x32, 0x33: opcode0x33,
	0x34: opcode0x34, 0x35: opcode0x35, 0x36: opcode0x36, 0x37: opcode0x37,
	0x38: opcode0x38, 0x39: opcode0x39, 0x3A: opcode0x3A, 0x3B: opcode0x3B,
	0x3C: opcode0x3C, 0x3D: opcode0x3D, 0x3E: opcode0x3E, 0x3F: opcode0x3F,
	0x40: opcode0x40, 0x41: opcode0x41, 0x42: opcode0x42, 0x43: opcode0x43,
	0x44: opcode0x44, 0x45: opcode0x45, 0x46: opcode0x46, 0x47: opcode0x47,
	0x48: opcode0x48, 0x49: opcode0x49, 0x4A: opcode0x4A, 0x4B: opcode0x4B,
	0x4C: opcode0x4C, 0x4D: opcode0x4D, 0x4E: opcode0x4E, 0x4F: opcode0x4F,
	0x50: opcode0x50, 0x51: opcode0x51, 0x52: opcode0x52, 0x53: opcode0x53,
	0x54: opcode0x54, 0x55: opcode0x55, 0x56: opcode0x56, 0x57: opcode0x57,
	0x58: opcode0x58, 0x59: opcode0x59, 0x5A: opcode0x5A, 0x5B: opcode0x5B,
	0x5C: opcode0x5C, 0x5D: opcode0x5D, 0x5E: opcode0x5E, 0x5F: opcode0x5F,
	0x60: opcode0x60, 0x61: opcode0x61, 0x62: opcode0x62, 0x63: opcode0x63,
	0x64: opcode0x64, 0x65: opcode0x65, 0x66: opcode0x66, 0x67: opcode0x67,
	0x68: opcode0x68, 0x69: opcode0x69, 0x6A: opcode0x6A, 0x6B: opcode0x6B,
	0x6C: opcode0x6C, 0x6D: opcode0x6D, 0x6E: opcode0x6E, 0x6F: opcode0x6F,
	0x70: opcode0x70, 0x71: opcode0x71, 0x72: opcode0x72, 0x73: opcode0x73,
	0x74: opcode0x74, 0x75: opcode0x75, 0x76: opcode0x76, 0x77: opcode0x77,
	0x78: opcode0x78, 0x79: opcode0x79, 0x7A: opcode0x7A, 0x7B: opcode0x7B,
	0x7C: opcode0x7C, 0x7D: opcode0x7D, 0x7E: opcode0x7E, 0x7F: opcode0x7F,
	0x80: opcode0x80, 0x81: opcode0x81, 0x82: opcode0x82, 0x83: opcode0x83,
	0x84: opcode0x84, 0x85: opcode0x85, 0x86: opcode0x86, 0x87: opcode0x87,
	0x88: opcode0x88, 0x89: opcode0x89, 0x8A: opcode0x8A, 0x8B: opcode0x8B,
	0x8C: opcode0x8C, 0x8D: opcode0x8D, 0x8E: opcode0x8E, 0x8F: opcode0x8F,
	0x90: opcode0x90, 0x91: opcode0x91, 0x92: opcode0x92, 0x93: opcode0x93,
	0x94: opcode0x94, 0x95: opcode0x95, 0x96: opcode0x96, 0x97: opcode0x97,
	0x98: opcode0x98, 0x99: opcode0x99, 0x9A: opcode0x9A, 0x9B: opcode0x9B,
	0x9C: opcode0x9C, 0x9D: opcode0x9D, 0x9E: opcode0x9E, 0x9F: opcode0x9F,
	0xA0: opcode0xA0, 0xA1: opcode0xA1, 0xA2: opcode0xA2, 0xA3: opcode0xA3,
	0xA4: opcode0xA4, 0xA5: opcode0xA5, 0xA6: opcode0xA6, 0xA7: opcode0xA7,
	0xA8: opcode0xA8, 0xA9: opcode0xA9, 0xAA: opcode0xAA, 0xAB: opcode0xAB,
	0xAC: opcode0xAC, 0xAD: opcode0xAD, 0xAE: opcode0xAE, 0xAF: opcode0xAF,
	0xB0: opcode0xB0, 0xB1: opcode0xB1, 0xB2: opcode0xB2, 0xB3: opcode0xB3,
	0xB4: opcode0xB4, 0xB5: opcode0xB5, 0xB6: opcode0xB6, 0xB7: opcode0xB7,
	0xB8: opcode0xB8, 0xB9: opcode0xB9, 0xBA: opcode0xBA, 0xBB: opcode0xBB,
	0xBC: opcode0xBC, 0xBD: opcode0xBD, 0xBE: opcode0xBE, 0xBF: opcode0xBF,
	0xC0: opcode0xC0, 0xC1: opcode0xC1, 0xC2: opcode0xC2, 0xC3: opcode0xC3,
	0xC4: opcode0xC4, 0xC5: opcode0xC5, 0xC6: opcode0xC6, 0xC7: opcode0xC7,
	0xC8: opcode0xC8, 0xC9: opcode0xC9, 0xCA: opcode0xCA, 0xCB: opcode0xCB,
	0xCC: opcode0xCC, 0xCD: opcode0xCD, 0xCE: opcode0xCE, 0xCF: opcode0xCF,
	0xD0: opcode0xD0, 0xD1: opcode0xD1, 0xD2: opcode0xD2, 0xD3: illegal,
	0xD4: opcode0xD4, 0xD5: opcode0xD5, 0xD6: opcode0xD6, 0xD7: opcode0xD7,
	0xD8: opcode0xD8, 0xD9: opcode0xD9, 0xDA: opcode0xDA, 0xDB: illegal,
	0xDC: opcode0xDC, 0xDD: illegal, 0xDE: opcode0xDE, 0xDF: opcode0xDF,
	0xE0: opcode0xE0, 0xE1: opcode0xE1, 0xE2: opcode0xE2, 0xE3: illegal,
	0xE4: illegal, 0xE5: opcode0xE5, 0xE6: opcode0xE6, 0xE7: opcode0xE7,
	0xE8: opcode0xE8, 0xE9: opcode0xE9, 0xEA: opcode0xEA, 0xEB: illegal,
	0xEC: illegal, 0xED: illegal, 0xEE: opcode0xEE, 0xEF: opcode0xEF,
	0xF0: opcode0xF0, 0xF1: opcode0xF1, 0xF2: opcode0xF2, 0xF3: opcode0xF3,
	0xF4: illegal, 0xF5: opcode0xF5, 0xF6: opcode0xF6, 0xF7: opcode0xF7,
	0xF8: opcode0xF8, 0xF9: opcode0xF9, 0xFA: opcode0xFA, 0xFB: opcode0xFB,
	0xFC: illegal, 0xFD: illegal, 0xFE: opcode0xFE, 0xFF: opcode0xFF,
}
