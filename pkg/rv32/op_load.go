package rv32

// execLoad implements the LOAD opcode: LB, LH, LW, LBU, LHU.
func execLoad(m *Machine, in Instruction) (flags, error) {
	addr := m.Reg(in.Rs1) + uint32(in.ImmI)

	switch in.Funct3 {
	case 0b000: // LB
		v := m.IO.ReadB(m, addr)
		m.store(in.Rd, signExtend(uint32(v), 7))
	case 0b001: // LH
		v := m.IO.ReadH(m, addr)
		m.store(in.Rd, signExtend(uint32(v), 15))
	case 0b010: // LW
		m.store(in.Rd, m.IO.ReadW(m, addr))
	case 0b100: // LBU
		m.store(in.Rd, uint32(m.IO.ReadB(m, addr)))
	case 0b101: // LHU
		m.store(in.Rd, uint32(m.IO.ReadH(m, addr)))
	default:
		faultPC := m.PC
		m.PC += 4
		return flags{updatedPC: true}, newException(m, IllegalInstruction, faultPC, in.Raw)
	}
	return flags{}, nil
}
