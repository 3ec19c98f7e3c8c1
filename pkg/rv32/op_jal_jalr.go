package rv32

// execJAL implements JAL: rd := pc+4; pc := pc + imm_j.
func execJAL(m *Machine, in Instruction) (flags, error) {
	faultPC := m.PC
	link := m.PC + 4
	target := uint32(int32(m.PC) + in.ImmJ)

	m.store(in.Rd, link)
	m.PC = target
	if target&0x3 != 0 {
		return flags{updatedPC: true}, newException(m, InstructionAddressMisaligned, faultPC, in.Raw)
	}
	return flags{updatedPC: true}, nil
}

// execJALR implements JALR: rd := pc+4; pc := (rs1 + imm_i) & ~1.
//
// The low bit of the computed target is always masked off, per the
// ISA's rule that JALR targets ignore bit 0.
func execJALR(m *Machine, in Instruction) (flags, error) {
	faultPC := m.PC
	link := m.PC + 4
	target := (m.Reg(in.Rs1) + uint32(in.ImmI)) &^ 1

	m.store(in.Rd, link)
	m.PC = target
	if target&0x3 != 0 {
		return flags{updatedPC: true}, newException(m, InstructionAddressMisaligned, faultPC, in.Raw)
	}
	return flags{updatedPC: true}, nil
}
