package rv32

// Opcode is the 7-bit opcode field, named the way the RISC-V spec names
// the opcode groups. Only the groups RV32I actually uses are listed;
// these are also used as the base-opcode-index keys into the dispatch
// table after shifting right by 2 (see DispatchIndex).
const (
	OpcodeLoad    = 0b0000011
	OpcodeMiscMem = 0b0001111
	OpcodeOpImm   = 0b0010011
	OpcodeAUIPC   = 0b0010111
	OpcodeStore   = 0b0100011
	OpcodeOp      = 0b0110011
	OpcodeLUI     = 0b0110111
	OpcodeBranch  = 0b1100011
	OpcodeJALR    = 0b1100111
	OpcodeJAL     = 0b1101111
	OpcodeSystem  = 0b1110011
)

// flags is returned by every opcode handler to tell Step whether the
// handler already advanced the program counter itself (branches, jumps,
// exceptions) or whether Step should do the default PC += 4.
type flags struct {
	updatedPC bool
}

// opFunc is the signature every opcode handler implements.
type opFunc func(m *Machine, in Instruction) (flags, error)
