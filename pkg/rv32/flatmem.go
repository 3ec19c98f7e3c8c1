package rv32

// flatMemIO backs a Machine with a plain byte slice. NewFlatMemIO exposes
// it for this package's own tests and for cmd/rv32sim, which wants the
// same flat-image behavior for its run/step/disasm subcommands.
type flatMemIO struct {
	Bytes []byte
}

// NewFlatMemIO returns a MemIO that reads and writes little-endian values
// directly out of mem. Out-of-range accesses panic; MemIO makes no
// alignment or bounds-check promise, so hosts that need one supply their
// own.
func NewFlatMemIO(mem []byte) MemIO {
	f := &flatMemIO{Bytes: mem}
	return MemIO{
		ReadW:  f.readW,
		ReadH:  f.readH,
		ReadB:  f.readB,
		WriteW: f.writeW,
		WriteH: f.writeH,
		WriteB: f.writeB,
	}
}

func (f *flatMemIO) readW(_ *Machine, addr uint32) uint32 {
	b := f.Bytes[addr : addr+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (f *flatMemIO) readH(_ *Machine, addr uint32) uint16 {
	b := f.Bytes[addr : addr+2]
	return uint16(b[0]) | uint16(b[1])<<8
}

func (f *flatMemIO) readB(_ *Machine, addr uint32) uint8 {
	return f.Bytes[addr]
}

func (f *flatMemIO) writeW(_ *Machine, addr uint32, val uint32) {
	b := f.Bytes[addr : addr+4]
	b[0] = byte(val)
	b[1] = byte(val >> 8)
	b[2] = byte(val >> 16)
	b[3] = byte(val >> 24)
}

func (f *flatMemIO) writeH(_ *Machine, addr uint32, val uint16) {
	b := f.Bytes[addr : addr+2]
	b[0] = byte(val)
	b[1] = byte(val >> 8)
}

func (f *flatMemIO) writeB(_ *Machine, addr uint32, val uint8) {
	f.Bytes[addr] = val
}
