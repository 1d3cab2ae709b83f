// cpu_ops_load.go - the LD/PUSH/POP family.
package dmgcore

// blockLDRegReg builds the 64 register-to-register loads at
// 0x40-0x7F. 0x76 (dst=(HL), src=(HL)) is HALT instead and is
// assigned separately by initBaseOps.
func blockLDRegReg(op byte) func(*CPU) {
	dst := (op >> 3) & 0x07
	src := op & 0x07
	return func(c *CPU) {
		c.writeReg8(dst, c.readReg8(src))
	}
}

// blockLDRegImm builds the eight "LD r,d8" forms at 0x06/0x0E/.../0x3E.
func blockLDRegImm(reg byte) func(*CPU) {
	return func(c *CPU) {
		c.writeReg8(reg, c.fetchByte())
	}
}

func opLDBCImm(c *CPU) { c.SetBC(c.fetchWord()) }
func opLDDEImm(c *CPU) { c.SetDE(c.fetchWord()) }
func opLDHLImm(c *CPU) { c.SetHL(c.fetchWord()) }
func opLDSPImm(c *CPU) { c.SP = c.fetchWord() }

func opLDMemBCA(c *CPU) { c.write(c.BC(), c.A) }
func opLDMemDEA(c *CPU) { c.write(c.DE(), c.A) }
func opLDABC(c *CPU)    { c.A = c.read(c.BC()) }
func opLDADE(c *CPU)    { c.A = c.read(c.DE()) }

func opLDHLIncA(c *CPU) {
	c.write(c.HL(), c.A)
	c.SetHL(c.HL() + 1)
}

func opLDHLDecA(c *CPU) {
	c.write(c.HL(), c.A)
	c.SetHL(c.HL() - 1)
}

func opLDAHLInc(c *CPU) {
	c.A = c.read(c.HL())
	c.SetHL(c.HL() + 1)
}

func opLDAHLDec(c *CPU) {
	c.A = c.read(c.HL())
	c.SetHL(c.HL() - 1)
}

func opLDMemImm16SP(c *CPU) {
	addr := c.fetchWord()
	c.write(addr, byte(c.SP))
	c.write(addr+1, byte(c.SP>>8))
}

func opLDMemImm16A(c *CPU) { c.write(c.fetchWord(), c.A) }
func opLDAMemImm16(c *CPU) { c.A = c.read(c.fetchWord()) }

func opLDHMemImm8A(c *CPU) { c.write(0xFF00+uint16(c.fetchByte()), c.A) }
func opLDHAMemImm8(c *CPU) { c.A = c.read(0xFF00 + uint16(c.fetchByte())) }

func opLDMemCA(c *CPU) { c.write(0xFF00+uint16(c.C), c.A) }
func opLDAMemC(c *CPU) { c.A = c.read(0xFF00 + uint16(c.C)) }

func opLDSPHL(c *CPU) {
	c.SP = c.HL()
	c.internalDelay(4)
}

func opPUSHBC(c *CPU) { c.pushPair(c.BC()) }
func opPUSHDE(c *CPU) { c.pushPair(c.DE()) }
func opPUSHHL(c *CPU) { c.pushPair(c.HL()) }
func opPUSHAF(c *CPU) { c.pushPair(c.AF()) }

func opPOPBC(c *CPU) { c.SetBC(c.popWord()) }
func opPOPDE(c *CPU) { c.SetDE(c.popWord()) }
func opPOPHL(c *CPU) { c.SetHL(c.popWord()) }
func opPOPAF(c *CPU) { c.SetAF(c.popWord()) }

func (c *CPU) pushPair(v uint16) {
	c.internalDelay(4)
	c.pushWord(v)
}
