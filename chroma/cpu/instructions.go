package cpu

import "github.com/calvelli/go-chroma/chroma/bit"

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.writeByte(c.sp, bit.High(value))
	c.sp--
	c.writeByte(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.readByte(c.sp)
	c.sp++
	high := c.readByte(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

func (c *CPU) inc(value uint8) uint8 {
	result := value + 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlagToCondition(halfCarryFlag, value&0x0F == 0x0F)
	c.resetFlag(subFlag)
	return result
}

func (c *CPU) dec(value uint8) uint8 {
	result := value - 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlagToCondition(halfCarryFlag, value&0x0F == 0)
	c.setFlag(subFlag)
	return result
}

// addToA adds a value to A, setting all flags.
func (c *CPU) addToA(value uint8) {
	a := c.a
	result := a + value

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0x0F)+(value&0x0F) > 0x0F)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value) > 0xFF)

	c.a = result
}

func (c *CPU) adc(value uint8) {
	a := c.a
	carry := c.flagToBit(carryFlag)
	result := a + value + carry

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0x0F)+(value&0x0F)+carry > 0x0F)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value)+uint16(carry) > 0xFF)

	c.a = result
}

func (c *CPU) sub(value uint8) {
	a := c.a
	c.a = a - value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, a&0x0F < value&0x0F)
	c.setFlagToCondition(carryFlag, a < value)
}

func (c *CPU) sbc(value uint8) {
	a := c.a
	carry := c.flagToBit(carryFlag)
	result := int(a) - int(value) - int(carry)

	c.a = uint8(result)

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, int(a&0x0F)-int(value&0x0F)-int(carry) < 0)
	c.setFlagToCondition(carryFlag, result < 0)
}

func (c *CPU) andA(value uint8) {
	c.a &= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) orA(value uint8) {
	c.a |= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) xorA(value uint8) {
	c.a ^= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) cp(value uint8) {
	a := c.a
	c.setFlagToCondition(zeroFlag, a == value)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, a&0x0F < value&0x0F)
	c.setFlagToCondition(carryFlag, a < value)
}

// addToHL adds a 16-bit value to HL; Z is left untouched.
func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()
	result := hl + value

	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF)
	c.setFlagToCondition(carryFlag, uint32(hl)+uint32(value) > 0xFFFF)

	c.setHL(result)
}

// offsetSP computes SP+i8 with the 8-bit carry semantics shared by
// ADD SP, i8 and LD HL, SP+i8.
func (c *CPU) offsetSP(offset int8) uint16 {
	value := uint16(int16(offset))

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (c.sp&0x0F)+(value&0x0F) > 0x0F)
	c.setFlagToCondition(carryFlag, (c.sp&0xFF)+(value&0xFF) > 0xFF)

	return c.sp + value
}

// daa adjusts A to BCD after an addition or subtraction.
func (c *CPU) daa() {
	if !c.isSetFlag(subFlag) {
		if c.isSetFlag(carryFlag) || c.a > 0x99 {
			c.a += 0x60
			c.setFlag(carryFlag)
		}
		if c.isSetFlag(halfCarryFlag) || c.a&0x0F > 0x09 {
			c.a += 0x06
		}
	} else {
		if c.isSetFlag(carryFlag) {
			c.a -= 0x60
		}
		if c.isSetFlag(halfCarryFlag) {
			c.a -= 0x06
		}
	}
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(halfCarryFlag)
}

// rlc rotates left; bit 7 goes to both carry and bit 0.
func (c *CPU) rlc(value uint8) uint8 {
	result := (value << 1) | (value >> 7)
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value > 0x7F)
	return result
}

// rrc rotates right; bit 0 goes to both carry and bit 7.
func (c *CPU) rrc(value uint8) uint8 {
	result := (value >> 1) | (value << 7)
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

// rl rotates left through carry.
func (c *CPU) rl(value uint8) uint8 {
	result := (value << 1) | c.flagToBit(carryFlag)
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value > 0x7F)
	return result
}

// rr rotates right through carry.
func (c *CPU) rr(value uint8) uint8 {
	result := (value >> 1) | (c.flagToBit(carryFlag) << 7)
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

func (c *CPU) sla(value uint8) uint8 {
	result := value << 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value > 0x7F)
	return result
}

// sra shifts right keeping the sign bit.
func (c *CPU) sra(value uint8) uint8 {
	result := (value >> 1) | (value & 0x80)
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := (value << 4) | (value >> 4)
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
	return result
}

func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

func (c *CPU) bitTest(index uint8, value uint8) {
	c.setFlagToCondition(zeroFlag, !bit.IsSet(index, value))
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// jr adds a signed immediate to PC when the condition holds; the branch
// costs one extra machine cycle, taken after the condition is known.
func (c *CPU) jr(condition bool) {
	offset := int8(c.fetchPC())
	if condition {
		c.pc = uint16(int32(c.pc) + int32(offset))
		c.tick()
	}
}

func (c *CPU) jp(condition bool) {
	address := c.fetchWord()
	if condition {
		c.pc = address
		c.tick()
	}
}

func (c *CPU) call(condition bool) {
	address := c.fetchWord()
	if condition {
		c.pushStack(c.pc)
		c.pc = address
		c.tick()
	}
}

func (c *CPU) ret() {
	c.pc = c.popStack()
	c.tick()
}

func (c *CPU) rst(address uint16) {
	c.pushStack(c.pc)
	c.pc = address
	c.tick()
}
