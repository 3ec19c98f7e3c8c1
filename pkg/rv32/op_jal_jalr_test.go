package rv32

import "testing"

func TestJAL(t *testing.T) {
	m := New(MemIO{}, nil)
	m.PC = 0x1000
	in := Instruction{Rd: 0xA, ImmJ: 0x100}
	f, err := execJAL(m, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.updatedPC {
		t.Fatal("JAL must report updatedPC")
	}
	if m.X[0xA] != 0x1004 {
		t.Errorf("link value = %#x; want %#x", m.X[0xA], 0x1004)
	}
	if m.PC != 0x1100 {
		t.Errorf("pc = %#x; want %#x", m.PC, 0x1100)
	}
}

func TestJALRMasksLowBit(t *testing.T) {
	m := New(MemIO{}, nil)
	m.PC = 0x1000
	m.X[0xB] = 0x2001 // odd target
	in := Instruction{Rd: 0xA, Rs1: 0xB, ImmI: 0}
	_, err := execJALR(m, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PC != 0x2000 {
		t.Errorf("JALR did not mask bit 0: pc = %#x; want %#x", m.PC, 0x2000)
	}
}

func TestJALRLinkBeforeJump(t *testing.T) {
	m := New(MemIO{}, nil)
	m.PC = 0x1000
	m.X[0xA] = 0x2000
	in := Instruction{Rd: 0xB, Rs1: 0xA, ImmI: 4}
	_, err := execJALR(m, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.X[0xB] != 0x1004 {
		t.Errorf("link value = %#x; want %#x", m.X[0xB], 0x1004)
	}
	if m.PC != 0x2004 {
		t.Errorf("pc = %#x; want %#x", m.PC, 0x2004)
	}
}

// TestJALRSameRegRdRs1 covers JALR x1, x1, 0 with PC=0x50, X[1]=0x200: the
// target must be computed from the old value of x1 before rd is
// overwritten, giving X[1]==0x54 and PC==0x200, not PC==0x54.
func TestJALRSameRegRdRs1(t *testing.T) {
	m := New(MemIO{}, nil)
	m.PC = 0x50
	m.X[1] = 0x200
	in := Instruction{Rd: 1, Rs1: 1, ImmI: 0}
	_, err := execJALR(m, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.X[1] != 0x54 {
		t.Errorf("link value = %#x; want %#x", m.X[1], 0x54)
	}
	if m.PC != 0x200 {
		t.Errorf("pc = %#x; want %#x", m.PC, 0x200)
	}
}
