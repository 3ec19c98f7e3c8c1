package rv32

// execSystem implements the SYSTEM opcode's ECALL and EBREAK. Both
// complete the normal PC advance and then surface an exception to the
// host. CSR instructions (funct3 != 0) are privileged-mode machinery
// out of scope here and fault as illegal.
func execSystem(m *Machine, in Instruction) (flags, error) {
	faultPC := m.PC
	m.PC += 4
	if in.Funct3 != 0 {
		return flags{updatedPC: true}, newException(m, IllegalInstruction, faultPC, in.Raw)
	}

	switch in.ImmI {
	case 0: // ECALL
		return flags{updatedPC: true}, newException(m, EnvironmentCall, faultPC, in.Raw)
	case 1: // EBREAK
		return flags{updatedPC: true}, newException(m, Breakpoint, faultPC, in.Raw)
	default:
		return flags{updatedPC: true}, newException(m, IllegalInstruction, faultPC, in.Raw)
	}
}
