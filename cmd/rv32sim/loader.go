package main

import (
	"debug/elf"
	"fmt"

	"rv32core/pkg/rv32"
)

// loadImage builds a flat byte image of memSize bytes holding an ELF
// binary's allocatable sections, or a raw binary loaded at address 0 if
// path doesn't parse as an ELF file. Ported from
// LMMilewski-riscv-emu's main.go ELF-loading loop, with memSize taking
// the place of its fixed 100MiB arena. A section that does not fit in
// memSize is an error; a raw binary longer than memSize is truncated.
func loadImage(path string, memSize uint32) ([]byte, uint32, error) {
	mem := make([]byte, memSize)

	f, err := elf.Open(path)
	if err != nil {
		raw, rerr := readFile(path)
		if rerr != nil {
			return nil, 0, fmt.Errorf("can't read %s as ELF (%v) or raw binary (%v)", path, err, rerr)
		}
		copy(mem, raw)
		return mem, 0, nil
	}
	defer f.Close()

	for _, s := range f.Sections {
		if s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		if s.Addr+s.Size > uint64(len(mem)) {
			return nil, 0, fmt.Errorf("section %s (addr %#x size %#x) exceeds memSize %#x", s.Name, s.Addr, s.Size, memSize)
		}
		if s.Type == elf.SHT_NOBITS {
			continue // .bss: already zeroed
		}
		if _, err := s.ReadAt(mem[s.Addr:s.Addr+s.Size], 0); err != nil {
			return nil, 0, fmt.Errorf("can't load section %s (addr %#x): %w", s.Name, s.Addr, err)
		}
	}
	return mem, uint32(f.Entry), nil
}

func newMachine(mem []byte, entry uint32) *rv32.Machine {
	m := rv32.New(rv32.NewFlatMemIO(mem), nil)
	m.PC = entry
	return m
}
