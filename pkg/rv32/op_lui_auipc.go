package rv32

// execLUI implements LUI: rd := imm_u.
func execLUI(m *Machine, in Instruction) (flags, error) {
	m.store(in.Rd, uint32(in.ImmU))
	return flags{}, nil
}

// execAUIPC implements AUIPC: rd := pc + imm_u.
func execAUIPC(m *Machine, in Instruction) (flags, error) {
	m.store(in.Rd, m.PC+uint32(in.ImmU))
	return flags{}, nil
}
