// cpu_dispatch.go - builds the two 256-entry opcode tables.
//
// Mirrors the teacher's initBaseOps/initCBOps split: opcode blocks
// that share a decode shape are populated by ranging over their
// operand bits and closing over the loop-local copy; everything else
// is assigned explicitly, one opcode at a time.
package dmgcore

func (c *CPU) initBaseOps() {
	ops := &c.baseOps

	// 0x40-0x7F: the 64 register-to-register loads, less 0x76 (HALT).
	for op := 0x40; op <= 0x7F; op++ {
		ops[op] = blockLDRegReg(byte(op))
	}
	ops[0x76] = opHALT

	// 0x80-0xBF: ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,r.
	for op := 0x80; op <= 0xBF; op++ {
		ops[op] = blockALUReg(byte(op))
	}

	// The INC r / DEC r / LD r,d8 families share the reg8 operand
	// order (B,C,D,E,H,L,(HL),A) at a fixed stride of 8 starting from
	// 0x04/0x05/0x06.
	for reg := byte(0); reg < 8; reg++ {
		ops[0x04+int(reg)*8] = blockIncReg8(reg)
		ops[0x05+int(reg)*8] = blockDecReg8(reg)
		ops[0x06+int(reg)*8] = blockLDRegImm(reg)
	}

	ops[0x00] = opNOP
	ops[0x01] = opLDBCImm
	ops[0x02] = opLDMemBCA
	ops[0x03] = opINCBC
	ops[0x07] = opRLCA
	ops[0x08] = opLDMemImm16SP
	ops[0x09] = opADDHLBC
	ops[0x0A] = opLDABC
	ops[0x0B] = opDECBC
	ops[0x0F] = opRRCA

	ops[0x10] = opSTOP
	ops[0x11] = opLDDEImm
	ops[0x12] = opLDMemDEA
	ops[0x13] = opINCDE
	ops[0x17] = opRLA
	ops[0x18] = opJRImm
	ops[0x19] = opADDHLDE
	ops[0x1A] = opLDADE
	ops[0x1B] = opDECDE
	ops[0x1F] = opRRA

	ops[0x20] = blockJRCond(condNZ)
	ops[0x21] = opLDHLImm
	ops[0x22] = opLDHLIncA
	ops[0x23] = opINCHL16
	ops[0x27] = opDAA
	ops[0x28] = blockJRCond(condZ)
	ops[0x29] = opADDHLHL
	ops[0x2A] = opLDAHLInc
	ops[0x2B] = opDECHL16
	ops[0x2F] = opCPL

	ops[0x30] = blockJRCond(condNC)
	ops[0x31] = opLDSPImm
	ops[0x32] = opLDHLDecA
	ops[0x33] = opINCSP
	ops[0x37] = opSCF
	ops[0x38] = blockJRCond(condC)
	ops[0x39] = opADDHLSP
	ops[0x3A] = opLDAHLDec
	ops[0x3B] = opDECSP
	ops[0x3F] = opCCF

	ops[0xC0] = blockRetCond(condNZ)
	ops[0xC1] = opPOPBC
	ops[0xC2] = blockJPCond(condNZ)
	ops[0xC3] = opJPImm
	ops[0xC4] = blockCallCond(condNZ)
	ops[0xC5] = opPUSHBC
	ops[0xC6] = opADDAImm
	ops[0xC7] = blockRST(0x00)
	ops[0xC8] = blockRetCond(condZ)
	ops[0xC9] = opRET
	ops[0xCA] = blockJPCond(condZ)
	ops[0xCB] = opPrefixCB
	ops[0xCC] = blockCallCond(condZ)
	ops[0xCD] = opCALLImm
	ops[0xCE] = opADCAImm
	ops[0xCF] = blockRST(0x08)

	ops[0xD0] = blockRetCond(condNC)
	ops[0xD1] = opPOPDE
	ops[0xD2] = blockJPCond(condNC)
	ops[0xD3] = opIllegal
	ops[0xD4] = blockCallCond(condNC)
	ops[0xD5] = opPUSHDE
	ops[0xD6] = opSUBImm
	ops[0xD7] = blockRST(0x10)
	ops[0xD8] = blockRetCond(condC)
	ops[0xD9] = opRETI
	ops[0xDA] = blockJPCond(condC)
	ops[0xDB] = opIllegal
	ops[0xDC] = blockCallCond(condC)
	ops[0xDD] = opIllegal
	ops[0xDE] = opSBCAImm
	ops[0xDF] = blockRST(0x18)

	ops[0xE0] = opLDHMemImm8A
	ops[0xE1] = opPOPHL
	ops[0xE2] = opLDMemCA
	ops[0xE3] = opIllegal
	ops[0xE4] = opIllegal
	ops[0xE5] = opPUSHHL
	ops[0xE6] = opANDImm
	ops[0xE7] = blockRST(0x20)
	ops[0xE8] = opADDSPImm
	ops[0xE9] = opJPHL
	ops[0xEA] = opLDMemImm16A
	ops[0xEB] = opIllegal
	ops[0xEC] = opIllegal
	ops[0xED] = opIllegal
	ops[0xEE] = opXORImm
	ops[0xEF] = blockRST(0x28)

	ops[0xF0] = opLDHAMemImm8
	ops[0xF1] = opPOPAF
	ops[0xF2] = opLDAMemC
	ops[0xF3] = opDI
	ops[0xF4] = opIllegal
	ops[0xF5] = opPUSHAF
	ops[0xF6] = opORImm
	ops[0xF7] = blockRST(0x30)
	ops[0xF8] = opLDHLSPImm
	ops[0xF9] = opLDSPHL
	ops[0xFA] = opLDAMemImm16
	ops[0xFB] = opEI
	ops[0xFC] = opIllegal
	ops[0xFD] = opIllegal
	ops[0xFE] = opCPImm
	ops[0xFF] = blockRST(0x38)
}

// initCBOps builds the CB-prefixed table: four 64-entry groups, each a
// uniform decode shape across the eight reg8 operand slots.
func (c *CPU) initCBOps() {
	ops := &c.cbOps
	for op := 0; op < 0x40; op++ {
		ops[op] = blockCBRotate(byte(op))
	}
	for op := 0x40; op < 0x80; op++ {
		ops[op] = blockCBBit(byte(op))
	}
	for op := 0x80; op < 0xC0; op++ {
		ops[op] = blockCBRes(byte(op))
	}
	for op := 0xC0; op <= 0xFF; op++ {
		ops[op] = blockCBSet(byte(op))
	}
}

// opPrefixCB fetches the second opcode byte and dispatches it through
// cbOps.
func opPrefixCB(c *CPU) {
	op := c.fetchByte()
	c.cbOps[op](c)
}
