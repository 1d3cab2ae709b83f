package dmgcore

import "testing"

func TestAddAHalfCarryBoundary(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0x0F
	rig.load(0x0100, 0xC6, 0x01) // ADD A,0x01

	dots := rig.stepAndCount()

	requireEqualInt(t, "dots", dots, 8)
	requireEqualU8(t, "A", rig.cpu.A, 0x10)
	if !rig.cpu.Flag(flagH) {
		t.Fatalf("H not set on 0x0F+0x01 carry out of bit 3")
	}
	if rig.cpu.Flag(flagC) {
		t.Fatalf("C set on 0x0F+0x01, want clear")
	}
}

func TestAddACarryBoundary(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0xFF
	rig.load(0x0100, 0xC6, 0x01) // ADD A,0x01

	rig.stepAndCount()

	requireEqualU8(t, "A", rig.cpu.A, 0x00)
	if !rig.cpu.Flag(flagZ) {
		t.Fatalf("Z not set on wraparound to zero")
	}
	if !rig.cpu.Flag(flagC) {
		t.Fatalf("C not set on 0xFF+0x01")
	}
	if !rig.cpu.Flag(flagH) {
		t.Fatalf("H not set on 0xFF+0x01")
	}
}

func TestSubAUnderflowSetsCarryAndHalfCarry(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0x00
	rig.load(0x0100, 0xD6, 0x01) // SUB 0x01

	rig.stepAndCount()

	requireEqualU8(t, "A", rig.cpu.A, 0xFF)
	if !rig.cpu.Flag(flagN) {
		t.Fatalf("N not set after SUB")
	}
	if !rig.cpu.Flag(flagH) {
		t.Fatalf("H not set on 0x00-0x01 borrow")
	}
	if !rig.cpu.Flag(flagC) {
		t.Fatalf("C not set on 0x00-0x01 borrow")
	}
}

func TestCPDoesNotModifyAccumulator(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0x40
	rig.load(0x0100, 0xFE, 0x40) // CP 0x40

	rig.stepAndCount()

	requireEqualU8(t, "A", rig.cpu.A, 0x40)
	if !rig.cpu.Flag(flagZ) {
		t.Fatalf("Z not set when CP operand equals A")
	}
}

func TestIncDecEightBitLeavesCarryAlone(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.B = 0xFF
	rig.cpu.setFlag(flagC, true)
	rig.load(0x0100,
		0x04, // INC B
		0x05, // DEC B
	)

	rig.stepAndCount()

	requireEqualU8(t, "B", rig.cpu.B, 0x00)
	if !rig.cpu.Flag(flagZ) {
		t.Fatalf("Z not set on INC B wraparound")
	}
	if !rig.cpu.Flag(flagC) {
		t.Fatalf("INC B must not touch the carry flag")
	}

	rig.stepAndCount()

	requireEqualU8(t, "B after DEC", rig.cpu.B, 0xFF)
	if !rig.cpu.Flag(flagC) {
		t.Fatalf("DEC B must not touch the carry flag")
	}
}

func TestIncHLMemReadsModifiesWrites(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.SetHL(0xC000)
	rig.bus.mem[0xC000] = 0x0F
	rig.load(0x0100, 0x34) // INC (HL)

	dots := rig.stepAndCount()

	requireEqualInt(t, "dots", dots, 12)
	requireEqualU8(t, "(HL)", rig.bus.mem[0xC000], 0x10)
	if !rig.cpu.Flag(flagH) {
		t.Fatalf("H not set on INC (HL) half-carry boundary")
	}
}

func TestAddHLSetsCarryFromBit15(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.SetHL(0xFFFF)
	rig.cpu.SetBC(0x0001)
	rig.load(0x0100, 0x09) // ADD HL,BC

	dots := rig.stepAndCount()

	requireEqualInt(t, "dots", dots, 8)
	requireEqualU16(t, "HL", rig.cpu.HL(), 0x0000)
	if !rig.cpu.Flag(flagC) {
		t.Fatalf("C not set on ADD HL,BC bit-15 carry")
	}
}

func TestDAAAfterBCDAdd(t *testing.T) {
	rig := newCPUTestRig()
	// 0x45 + 0x38 = 0x7D binary, which is not valid BCD (the decimal sum
	// 45+38 is 83, whose correct BCD encoding is 0x83).
	rig.cpu.A = 0x45
	rig.load(0x0100,
		0xC6, 0x38, // ADD A,0x38
		0x27, // DAA
	)

	rig.stepAndCount()
	rig.stepAndCount()

	requireEqualU8(t, "A", rig.cpu.A, 0x83)
	if rig.cpu.Flag(flagC) {
		t.Fatalf("C set after DAA on a sum below 100")
	}
}
