package rv32

import (
	"errors"
	"testing"
)

func encodeI(opcode, rd, funct3, rs1 uint32, imm int32) uint32 {
	return uint32(imm)<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}

func encodeR(opcode, rd, funct3, rs1, rs2, funct7 uint32) uint32 {
	return funct7<<25 | rs2<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}

func TestStepRunsASmallProgram(t *testing.T) {
	mem := make([]byte, 16)
	// addi x1, x0, 5
	put32(mem, 0, encodeI(OpcodeOpImm, 1, 0b000, 0, 5))
	// addi x2, x0, 3
	put32(mem, 4, encodeI(OpcodeOpImm, 2, 0b000, 0, 3))
	// add x3, x1, x2
	put32(mem, 8, encodeR(OpcodeOp, 3, 0b000, 1, 2, 0))

	m := New(NewFlatMemIO(mem), nil)
	for i := 0; i < 3; i++ {
		if err := m.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if m.X[3] != 8 {
		t.Errorf("x3 = %d; want 8", m.X[3])
	}
	if m.PC != 12 {
		t.Errorf("pc = %#x; want %#x", m.PC, 12)
	}
}

func TestStepIllegalInstruction(t *testing.T) {
	mem := make([]byte, 4)
	put32(mem, 0, 0b0000111) // bits[6:2] = 1 (LOAD-FP) has no RV32I handler
	m := New(NewFlatMemIO(mem), nil)

	err := m.Step()
	var excErr *Error
	if !errors.As(err, &excErr) || excErr.Exception.Code != IllegalInstruction {
		t.Fatalf("got %v; want IllegalInstruction", err)
	}
	if m.Exception.Code != IllegalInstruction {
		t.Errorf("machine did not record the exception")
	}
}

func TestStepPinsRegisterZero(t *testing.T) {
	mem := make([]byte, 4)
	// addi x0, x0, 5 : writing to x0 must be discarded
	put32(mem, 0, encodeI(OpcodeOpImm, 0, 0b000, 0, 5))
	m := New(NewFlatMemIO(mem), nil)
	if err := m.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if m.X[0] != 0 {
		t.Errorf("x0 = %d; want 0", m.X[0])
	}
}

func put32(mem []byte, off int, v uint32) {
	mem[off] = byte(v)
	mem[off+1] = byte(v >> 8)
	mem[off+2] = byte(v >> 16)
	mem[off+3] = byte(v >> 24)
}
