package rv32

import "fmt"

// Mnemonic returns a short human-readable name for the opcode group a raw
// instruction word decodes to, for use by disassembly tooling. It never
// inspects funct3/funct7, so LOAD, STORE, OP-IMM, OP and BRANCH are each
// reported as one group name rather than split per sub-instruction.
func Mnemonic(raw uint32) string {
	switch raw & maskOpcode {
	case OpcodeLoad:
		return "LOAD"
	case OpcodeMiscMem:
		return "MISC-MEM"
	case OpcodeOpImm:
		return "OP-IMM"
	case OpcodeAUIPC:
		return "AUIPC"
	case OpcodeStore:
		return "STORE"
	case OpcodeOp:
		return "OP"
	case OpcodeLUI:
		return "LUI"
	case OpcodeBranch:
		return "BRANCH"
	case OpcodeJALR:
		return "JALR"
	case OpcodeJAL:
		return "JAL"
	case OpcodeSystem:
		return "SYSTEM"
	default:
		return fmt.Sprintf("UNKNOWN(%#04b)", raw&maskOpcode)
	}
}
