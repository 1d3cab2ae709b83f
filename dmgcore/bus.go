// bus.go - 16-bit address space router (the DMG "MMU").
//
// Grounded on ay_z80_bus.go's shape: a flat address-space bus
// implementing Read/Write, here routed by one address-range switch per
// direction. Composition, not cross-pointers: the bus reaches VRAM and
// LCDC only through PPU methods; SCY, SCX, LY and BGP are exported PPU
// fields that it reads and writes directly.
package dmgcore

const (
	ioLCDC = 0xFF40
	ioSCY  = 0xFF42
	ioSCX  = 0xFF43
	ioLY   = 0xFF44
	ioBGP  = 0xFF47
)

// Bus multiplexes ROM, VRAM (owned by the PPU), external RAM, work
// RAM, the echo alias, OAM, I/O registers, HRAM and the IE register
// across the Sharp SM83's flat 16-bit address space.
type Bus struct {
	rom   [0x8000]byte // 0x0000-0x7FFF, read-only view of the loaded image
	extRAM [0x2000]byte // 0xA000-0xBFFF
	wram  [0x2000]byte // 0xC000-0xDFFF, echoed at 0xE000-0xFDFF
	oam   [0x00A0]byte // 0xFE00-0xFE9F
	io    [0x0080]byte // 0xFF00-0xFF7F, raw bytes for registers the PPU doesn't own
	hram  [0x007F]byte // 0xFF80-0xFFFE
	ie    byte         // 0xFFFF

	ppu    *PPU
	cycles *CycleCounter
}

// NewBus builds a Bus over the given PPU and shared cycle counter.
// romImage is copied verbatim into the low half of the address space;
// it is truncated (never extended) to 0x8000 bytes since this core has
// no MBC to bank a larger cartridge.
func NewBus(romImage []byte, ppu *PPU, cycles *CycleCounter) *Bus {
	b := &Bus{ppu: ppu, cycles: cycles}
	n := copy(b.rom[:], romImage)
	_ = n
	return b
}

// Read charges 4 dots then returns the byte at addr, per the routing
// table in spec.md §4.2.
func (b *Bus) Read(addr uint16) byte {
	b.cycles.Add(4)
	return b.readEffect(addr)
}

// Write charges 4 dots then performs the write at addr.
func (b *Bus) Write(addr uint16, value byte) {
	b.cycles.Add(4)
	b.writeEffect(addr, value)
}

func (b *Bus) readEffect(addr uint16) byte {
	switch {
	case addr <= 0x7FFF:
		return b.rom[addr]
	case addr <= 0x9FFF:
		return b.ppu.VRAMRead(addr & 0x1FFF)
	case addr <= 0xBFFF:
		return b.extRAM[addr-0xA000]
	case addr <= 0xDFFF:
		return b.wram[addr-0xC000]
	case addr <= 0xFDFF:
		return b.wram[(addr-0xE000)&0x1FFF]
	case addr <= 0xFE9F:
		return b.oam[addr-0xFE00]
	case addr <= 0xFEFF: // 0xFEA0-0xFEFF is unusable and reads as zero
		return 0x00
	case addr == ioLCDC:
		return b.ppu.LCDCByte()
	case addr == ioSCY:
		return b.ppu.SCY
	case addr == ioSCX:
		return b.ppu.SCX
	case addr == ioLY:
		return b.ppu.LY
	case addr == ioBGP:
		return b.ppu.BGP
	case addr <= 0xFF7F:
		return b.io[addr-0xFF00]
	case addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	default: // 0xFFFF
		return b.ie
	}
}

func (b *Bus) writeEffect(addr uint16, value byte) {
	switch {
	case addr <= 0x7FFF:
		// ROM is read-only; no MBC in this core, writes are ignored.
	case addr <= 0x9FFF:
		b.ppu.VRAMWrite(addr&0x1FFF, value)
	case addr <= 0xBFFF:
		b.extRAM[addr-0xA000] = value
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = value
	case addr <= 0xFDFF:
		b.wram[(addr-0xE000)&0x1FFF] = value
	case addr <= 0xFE9F:
		b.oam[addr-0xFE00] = value
	case addr <= 0xFEFF:
		// 0xFEA0-0xFEFF is unusable; writes are ignored.
	case addr == ioLCDC:
		b.ppu.SetLCDCByte(value)
	case addr == ioSCY:
		b.ppu.SCY = value
	case addr == ioSCX:
		b.ppu.SCX = value
	case addr == ioLY:
		// LY is read-only to the CPU; writes are ignored.
	case addr == ioBGP:
		b.ppu.BGP = value
	case addr <= 0xFF7F:
		b.io[addr-0xFF00] = value
	case addr <= 0xFFFE:
		b.hram[addr-0xFF80] = value
	default: // 0xFFFF
		b.ie = value
	}
}

// nintendoLogo is the 48-byte Nintendo logo hexdump real boot ROMs
// scroll onto the screen; seedBootFixture drops it at the cartridge
// header offset so boot-ROM-shaped tests have something recognizable
// to scroll.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// SeedBootFixture writes the 48-byte Nintendo logo into ROM at offset
// 0x104. This is a test hook only, never exercised from the run loop.
func (b *Bus) SeedBootFixture() {
	copy(b.rom[0x104:0x104+len(nintendoLogo)], nintendoLogo[:])
}
