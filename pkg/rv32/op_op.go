package rv32

// execOp implements the OP opcode: ADD, SUB, SLL, SLT, SLTU, XOR, SRL,
// SRA, OR, AND.
func execOp(m *Machine, in Instruction) (flags, error) {
	a, b := m.Reg(in.Rs1), m.Reg(in.Rs2)
	shamt := b & 0x1f

	switch in.Funct3 {
	case 0b000: // ADD / SUB
		if in.Funct7 == 0b0100000 {
			m.store(in.Rd, a-b)
		} else {
			m.store(in.Rd, a+b)
		}
	case 0b001: // SLL
		m.store(in.Rd, a<<shamt)
	case 0b010: // SLT
		m.store(in.Rd, boolToWord(int32(a) < int32(b)))
	case 0b011: // SLTU
		m.store(in.Rd, boolToWord(a < b))
	case 0b100: // XOR
		m.store(in.Rd, a^b)
	case 0b101: // SRL / SRA
		if in.Funct7 == 0b0100000 {
			m.store(in.Rd, uint32(int32(a)>>shamt))
		} else {
			m.store(in.Rd, a>>shamt)
		}
	case 0b110: // OR
		m.store(in.Rd, a|b)
	case 0b111: // AND
		m.store(in.Rd, a&b)
	default:
		faultPC := m.PC
		m.PC += 4
		return flags{updatedPC: true}, newException(m, IllegalInstruction, faultPC, in.Raw)
	}
	return flags{}, nil
}
