package dmgcore

import "testing"

func TestRLCAAlwaysClearsZeroFlag(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0x00
	rig.load(0x0100, 0x07) // RLCA

	rig.stepAndCount()

	requireEqualU8(t, "A", rig.cpu.A, 0x00)
	if rig.cpu.Flag(flagZ) {
		t.Fatalf("RLCA must clear Z even when the result is zero")
	}
}

func TestCBRLRegisterSetsZeroFromResult(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0x00
	rig.cpu.setFlag(flagC, false)
	rig.load(0x0100, 0xCB, 0x17) // RL A

	dots := rig.stepAndCount()

	requireEqualInt(t, "dots", dots, 8)
	if !rig.cpu.Flag(flagZ) {
		t.Fatalf("CB RL A must set Z from the result, unlike RLA")
	}
}

func TestCBRLThroughCarryRotatesBitIn(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.B = 0x80
	rig.cpu.setFlag(flagC, true)
	rig.load(0x0100, 0xCB, 0x10) // RL B

	rig.stepAndCount()

	requireEqualU8(t, "B", rig.cpu.B, 0x01)
	if !rig.cpu.Flag(flagC) {
		t.Fatalf("C not set from the bit rotated out of 0x80")
	}
}

func TestCBBitOnHLMemCostsTwelveDots(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.SetHL(0xC000)
	rig.bus.mem[0xC000] = 0x00
	rig.load(0x0100, 0xCB, 0x46) // BIT 0,(HL)

	dots := rig.stepAndCount()

	requireEqualInt(t, "dots", dots, 12)
	if !rig.cpu.Flag(flagZ) {
		t.Fatalf("Z not set when the tested bit is clear")
	}
	if !rig.cpu.Flag(flagH) {
		t.Fatalf("BIT must always set H")
	}
}

func TestCBResAndSetLeaveFlagsAlone(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0xFF
	rig.cpu.F = 0xF0
	rig.load(0x0100,
		0xCB, 0x87, // RES 0,A
		0xCB, 0xC7, // SET 0,A
	)

	rig.stepAndCount()

	requireEqualU8(t, "A", rig.cpu.A, 0xFE)
	requireEqualU8(t, "F", rig.cpu.F, 0xF0)

	rig.stepAndCount()

	requireEqualU8(t, "A after SET", rig.cpu.A, 0xFF)
	requireEqualU8(t, "F after SET", rig.cpu.F, 0xF0)
}

func TestSwapExchangesNibbles(t *testing.T) {
	rig := newCPUTestRig()
	rig.cpu.A = 0x12
	rig.load(0x0100, 0xCB, 0x37) // SWAP A

	rig.stepAndCount()

	requireEqualU8(t, "A", rig.cpu.A, 0x21)
	if rig.cpu.Flag(flagZ) {
		t.Fatalf("Z set after SWAP on a nonzero result")
	}
}
