// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rv32 implements a fetch-decode-execute interpreter for the base
// 32-bit RISC-V integer ISA (RV32I). Memory is never touched directly;
// every access goes through the MemIO callbacks supplied to New, so the
// host owns addressing, backing storage and any permission checks.
package rv32

// MemIO is the host-supplied memory interface. Every callback receives
// the Machine so a host can key off UserData; none of them are asked to
// enforce alignment — RV32I only detects misalignment on instruction
// fetch targets (see Exception), never on data accesses.
type MemIO struct {
	ReadW  func(m *Machine, addr uint32) uint32
	ReadH  func(m *Machine, addr uint32) uint16
	ReadB  func(m *Machine, addr uint32) uint8
	WriteW func(m *Machine, addr uint32, val uint32)
	WriteH func(m *Machine, addr uint32, val uint16)
	WriteB func(m *Machine, addr uint32, val uint8)
}

// Debug is a bitmask recorded on a Machine, mirroring
// LMMilewski-riscv-emu's vm.go Debug flags. (*Machine).String does not
// consult it: the dump always holds the PC, the step count and every
// register.
type Debug int

const (
	DebugInstr Debug = 1 << iota
	DebugStep
	DebugRegs
	DebugMem
)

// Machine holds the complete architectural state of one RV32I hart: the
// integer register file, the program counter, and the data-model
// placeholders (CSRCycle, CSRMStatus) reserved for a future RV32F/Zicsr
// extension but never read or written by any RV32I handler.
type Machine struct {
	X  [32]uint32
	PC uint32

	IO       MemIO
	UserData any

	Exception Exception
	Steps     uint64

	CSRCycle   uint64
	CSRMStatus uint32

	Debug Debug
}

// New creates a Machine with the given host memory callbacks and
// opaque user data, reset to its initial state.
func New(io MemIO, userdata any) *Machine {
	m := &Machine{IO: io, UserData: userdata}
	m.Reset()
	return m
}

// Reset zeroes every register, the program counter and the recorded
// exception, ready to execute from address zero.
func (m *Machine) Reset() {
	m.X = [32]uint32{}
	m.PC = 0
	m.Exception = Exception{}
	m.Steps = 0
	m.CSRCycle = 0
	m.CSRMStatus = 0
}

// Reg reads register i, masked to 5 bits. x0 is guaranteed to read as
// zero regardless of what was last written to it.
func (m *Machine) Reg(i int) uint32 {
	i &= 0x1f
	if i == 0 {
		return 0
	}
	return m.X[i]
}

// SetReg writes register i, masked to 5 bits, except that writes to x0
// are always discarded — the same invariant the dispatch loop enforces
// after every step, exposed here for hosts that poke registers directly
// between steps.
func (m *Machine) SetReg(i int, v uint32) {
	i &= 0x1f
	if i == 0 {
		return
	}
	m.X[i] = v
}

// store is the internal register-write path used by opcode handlers. It
// is identical to SetReg; kept as a distinct, unexported method to match
// LMMilewski-riscv-emu's vm.go naming for the same operation.
func (m *Machine) store(rd int, val uint32) {
	m.SetReg(rd, val)
}
