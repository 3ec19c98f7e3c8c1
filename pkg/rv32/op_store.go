package rv32

// execStore implements the STORE opcode: SB, SH, SW.
func execStore(m *Machine, in Instruction) (flags, error) {
	addr := m.Reg(in.Rs1) + uint32(in.ImmS)
	val := m.Reg(in.Rs2)

	switch in.Funct3 {
	case 0b000: // SB
		m.IO.WriteB(m, addr, uint8(val))
	case 0b001: // SH
		m.IO.WriteH(m, addr, uint16(val))
	case 0b010: // SW
		m.IO.WriteW(m, addr, val)
	default:
		faultPC := m.PC
		m.PC += 4
		return flags{updatedPC: true}, newException(m, IllegalInstruction, faultPC, in.Raw)
	}
	return flags{}, nil
}
