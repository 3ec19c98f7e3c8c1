package rv32

// execMiscMem implements the MISC-MEM opcode. FENCE is a no-op in this
// single-hart, synchronous interpreter: there is no reordering for it to
// constrain.
func execMiscMem(m *Machine, in Instruction) (flags, error) {
	return flags{}, nil
}
