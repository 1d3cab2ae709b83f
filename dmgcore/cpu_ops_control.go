// cpu_ops_control.go - flow control and the miscellaneous single-byte
// opcodes (NOP, STOP, HALT, DI/EI, DAA, CPL, SCF, CCF).
package dmgcore

func opNOP(c *CPU) {}

// opSTOP consumes its one padding byte and otherwise does nothing;
// real low-power/speed-switch semantics are out of scope.
func opSTOP(c *CPU) { c.fetchByte() }

func opHALT(c *CPU) { c.halted = true }

func opDI(c *CPU) { c.ime = false }
func opEI(c *CPU) { c.ime = true }

// opDAA re-packs A into valid BCD after an 8-bit add or subtract,
// using the N/H/C left behind by that instruction to decide which
// nibble corrections apply.
func opDAA(c *CPU) {
	a := c.A
	carry := c.Flag(flagC)
	var adjust byte

	if c.Flag(flagN) {
		if c.Flag(flagH) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	} else {
		if c.Flag(flagH) || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}

	c.setFlag(flagZ, a == 0)
	c.setFlag(flagH, false)
	c.setFlag(flagC, carry)
	c.A = a
}

func opCPL(c *CPU) {
	c.A = ^c.A
	c.setFlag(flagN, true)
	c.setFlag(flagH, true)
}

func opSCF(c *CPU) {
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	c.setFlag(flagC, true)
}

func opCCF(c *CPU) {
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	c.setFlag(flagC, !c.Flag(flagC))
}

func opJRImm(c *CPU) {
	e := int8(c.fetchByte())
	c.PC = uint16(int32(c.PC) + int32(e))
	c.internalDelay(4)
}

// blockJRCond builds the four conditional JR handlers. The
// displacement byte is always fetched (it is part of the
// instruction); the internal delay only applies when the branch is
// actually taken, which is how JR's 12/8-dot split emerges.
func blockJRCond(cond func(*CPU) bool) func(*CPU) {
	return func(c *CPU) {
		e := int8(c.fetchByte())
		if cond(c) {
			c.PC = uint16(int32(c.PC) + int32(e))
			c.internalDelay(4)
		}
	}
}

func opJPImm(c *CPU) {
	addr := c.fetchWord()
	c.PC = addr
	c.internalDelay(4)
}

func blockJPCond(cond func(*CPU) bool) func(*CPU) {
	return func(c *CPU) {
		addr := c.fetchWord()
		if cond(c) {
			c.PC = addr
			c.internalDelay(4)
		}
	}
}

func opJPHL(c *CPU) { c.PC = c.HL() }

func opCALLImm(c *CPU) {
	addr := c.fetchWord()
	c.internalDelay(4)
	c.pushWord(c.PC)
	c.PC = addr
}

func blockCallCond(cond func(*CPU) bool) func(*CPU) {
	return func(c *CPU) {
		addr := c.fetchWord()
		if cond(c) {
			c.internalDelay(4)
			c.pushWord(c.PC)
			c.PC = addr
		}
	}
}

func opRET(c *CPU) {
	c.PC = c.popWord()
	c.internalDelay(4)
}

func opRETI(c *CPU) {
	c.PC = c.popWord()
	c.ime = true
	c.internalDelay(4)
}

func blockRetCond(cond func(*CPU) bool) func(*CPU) {
	return func(c *CPU) {
		c.internalDelay(4)
		if cond(c) {
			c.PC = c.popWord()
			c.internalDelay(4)
		}
	}
}

// blockRST builds the eight fixed-vector call handlers at
// 0xC7/0xCF/.../0xFF.
func blockRST(vector uint16) func(*CPU) {
	return func(c *CPU) {
		c.internalDelay(4)
		c.pushWord(c.PC)
		c.PC = vector
	}
}

func condNZ(c *CPU) bool { return !c.Flag(flagZ) }
func condZ(c *CPU) bool  { return c.Flag(flagZ) }
func condNC(c *CPU) bool { return !c.Flag(flagC) }
func condC(c *CPU) bool  { return c.Flag(flagC) }

// opIllegal handles the eleven opcodes the Sharp SM83 never defines
// (0xD3/0xDB/0xDD/0xE3/0xE4/0xEB/0xEC/0xED/0xF4/0xFC/0xFD). Real
// silicon locks up; this core treats them as a 4-dot no-op so a
// malformed program never panics the interpreter.
func opIllegal(c *CPU) {}
