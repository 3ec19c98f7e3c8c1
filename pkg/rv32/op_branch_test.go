package rv32

import (
	"errors"
	"testing"
)

func TestBranchTaken(t *testing.T) {
	tests := []struct {
		desc   string
		funct3 uint32
		a, b   uint32
		taken  bool
	}{
		{desc: "beq equal", funct3: 0b000, a: 5, b: 5, taken: true},
		{desc: "beq unequal", funct3: 0b000, a: 5, b: 6, taken: false},
		{desc: "bne", funct3: 0b001, a: 5, b: 6, taken: true},
		{desc: "blt", funct3: 0b100, a: 0xffffffff /* -1 */, b: 1, taken: true},
		{desc: "bge equal", funct3: 0b101, a: 5, b: 5, taken: true},
		{desc: "bge greater", funct3: 0b101, a: 6, b: 5, taken: true},
		{desc: "bge less", funct3: 0b101, a: 4, b: 5, taken: false},
		{desc: "bltu", funct3: 0b110, a: 1, b: 2, taken: true},
		{desc: "bgeu equal", funct3: 0b111, a: 5, b: 5, taken: true},
		{desc: "bgeu greater", funct3: 0b111, a: 6, b: 5, taken: true},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			m := New(MemIO{}, nil)
			m.PC = 0x1000
			m.X[0xB], m.X[0xC] = tt.a, tt.b
			in := Instruction{Rs1: 0xB, Rs2: 0xC, Funct3: tt.funct3, ImmB: 16}
			f, err := execBranch(m, in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			wantPC := uint32(0x1000)
			if tt.taken {
				wantPC = 0x1010
			}
			if m.PC != wantPC {
				t.Errorf("%s => pc=%#x; want %#x", tt.desc, m.PC, wantPC)
			}
			if f.updatedPC != tt.taken {
				t.Errorf("%s => updatedPC=%v; want %v", tt.desc, f.updatedPC, tt.taken)
			}
		})
	}
}

func TestBranchMisaligned(t *testing.T) {
	m := New(MemIO{}, nil)
	m.PC = 0x1000
	in := Instruction{Rs1: 0, Rs2: 0, Funct3: 0b000, ImmB: 2} // BEQ x0,x0 always taken
	_, err := execBranch(m, in)
	var excErr *Error
	if !errors.As(err, &excErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if excErr.Exception.Code != InstructionAddressMisaligned {
		t.Errorf("got exception %v; want InstructionAddressMisaligned", excErr.Exception.Code)
	}
	if m.PC != 0x1002 {
		t.Errorf("PC should still be committed to the misaligned target, got %#x", m.PC)
	}
}

func TestBranchIllegalFunct3StillAdvancesPC(t *testing.T) {
	m := New(MemIO{}, nil)
	m.PC = 0x1000
	in := Instruction{Rs1: 0, Rs2: 0, Funct3: 0b010, ImmB: 16} // funct3 010/011 are unused by BRANCH
	f, err := execBranch(m, in)
	if !f.updatedPC {
		t.Fatal("illegal BRANCH instruction must still report updatedPC")
	}
	if m.PC != 0x1004 {
		t.Errorf("pc = %#x; want %#x", m.PC, 0x1004)
	}
	var excErr *Error
	if !errors.As(err, &excErr) || excErr.Exception.Code != IllegalInstruction {
		t.Fatalf("got %v; want IllegalInstruction", err)
	}
}
