package rv32

// RegNames holds the RISC-V calling-convention names for x0..x31, in the
// order LMMilewski-riscv-emu's vm.go uses for its debug dump.
var RegNames = [32]string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

// regNums is the inverse of RegNames, built once at init.
var regNums = make(map[string]int, len(RegNames))

func init() {
	for i, n := range RegNames {
		regNums[n] = i
	}
}

// RegNum looks up a register by its ABI name. ok is false for an unknown
// name.
func RegNum(name string) (num int, ok bool) {
	num, ok = regNums[name]
	return num, ok
}

// Named register numbers for x0 (zero), x1 (ra) and x2 (sp).
const (
	Zero = 0
	RA   = 1
	SP   = 2
)
