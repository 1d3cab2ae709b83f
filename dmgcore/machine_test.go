package dmgcore

import "testing"

func TestRunFrameAdvancesAtLeastOneFrameOfDots(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x00 // NOP, looped via JR -3
	rom[0x0101] = 0x18
	rom[0x0102] = 0xFD // JR -3 back to 0x0100

	m := NewMachine(rom, nil)
	m.CPU.PC = 0x0100

	m.RunFrame()

	if m.cycles.Value() < dotsPerFrame {
		t.Fatalf("RunFrame returned after %d dots, want at least %d", m.cycles.Value(), dotsPerFrame)
	}
}

func TestStepInstructionAdvancesPPUByExactDelta(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMachine(rom, nil)
	m.CPU.PC = 0x0100
	rom[0x0100] = 0x00 // NOP, 4 dots
	m.PPU.lcdEnable = true

	dots := m.StepInstruction()

	requireEqualInt(t, "dots", dots, 4)
	requireEqualInt(t, "ppu mode clock", m.PPU.modeClock, 4)
}
