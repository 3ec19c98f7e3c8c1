package rv32

// execBranch implements the BRANCH opcode: BEQ, BNE, BLT, BGE, BLTU,
// BGEU. A taken branch whose target is not 4-byte aligned raises
// InstructionAddressMisaligned after the target has been committed to
// PC, so a host inspecting state after the error sees the faulting
// target rather than the branch instruction's own address.
func execBranch(m *Machine, in Instruction) (flags, error) {
	a, b := m.Reg(in.Rs1), m.Reg(in.Rs2)
	faultPC := m.PC

	var taken bool
	switch in.Funct3 {
	case 0b000: // BEQ
		taken = a == b
	case 0b001: // BNE
		taken = a != b
	case 0b100: // BLT
		taken = int32(a) < int32(b)
	case 0b101: // BGE
		taken = int32(a) >= int32(b)
	case 0b110: // BLTU
		taken = a < b
	case 0b111: // BGEU
		taken = a >= b
	default:
		m.PC += 4
		return flags{updatedPC: true}, newException(m, IllegalInstruction, faultPC, in.Raw)
	}

	if !taken {
		return flags{}, nil
	}

	target := uint32(int32(m.PC) + in.ImmB)
	m.PC = target
	if target&0x3 != 0 {
		return flags{updatedPC: true}, newException(m, InstructionAddressMisaligned, faultPC, in.Raw)
	}
	return flags{updatedPC: true}, nil
}
