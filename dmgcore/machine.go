// machine.go - wires CPU, Bus and PPU behind a small run-loop façade.
//
// Grounded on the teacher's commented main.go wiring block
// (NewCPU(bus), component construction order) and
// bdwalton-gintendo/console/machine.go's pattern of hiding a cpu+ppu
// pair behind one struct the command-line drivers call into.
package dmgcore

// dotsPerFrame is the DMG's fixed frame length: 154 scanlines of 456
// dots each.
const dotsPerFrame = scanlinesPerFrame * dotsScanline

// Machine owns one complete execution core: a CPU, the bus it
// executes against, the PPU the bus routes video memory to, and the
// cycle counter the CPU and bus share.
type Machine struct {
	CPU    *CPU
	Bus    *Bus
	PPU    *PPU
	cycles *CycleCounter
}

// NewMachine builds a Machine from a cartridge image, presenting
// finished frames through p (nil is valid: frames are discarded).
func NewMachine(romImage []byte, p Presenter) *Machine {
	cycles := &CycleCounter{}
	ppu := NewPPU(p)
	bus := NewBus(romImage, ppu, cycles)
	cpu := NewCPU(bus, cycles)
	return &Machine{CPU: cpu, Bus: bus, PPU: ppu, cycles: cycles}
}

// StepInstruction executes exactly one CPU instruction and advances
// the PPU by however many dots it cost, returning that dot count.
func (m *Machine) StepInstruction() int {
	before := m.cycles.Value()
	m.CPU.Step()
	delta := int(m.cycles.Value() - before)
	m.PPU.Advance(delta)
	return delta
}

// RunFrame executes instructions until at least one full frame's
// worth of dots (70,224) has elapsed, then returns. Frame boundaries
// are dot-counted, not instruction-counted: the final instruction of
// a frame may run a few dots past the boundary, exactly as real
// hardware's asynchronous CPU/PPU clocks do.
func (m *Machine) RunFrame() {
	elapsed := 0
	for elapsed < dotsPerFrame {
		elapsed += m.StepInstruction()
	}
}

// Run drives frames forever until stop reports true. Intended to be
// called from its own goroutine by the cmd/ drivers that need the
// main goroutine free for a UI event loop; the core itself never
// spawns goroutines.
func (m *Machine) Run(stop func() bool) {
	for !stop() {
		m.RunFrame()
	}
}
