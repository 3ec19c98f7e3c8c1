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

package rv32

// opcodeTable is indexed by DispatchIndex(raw), i.e. instruction
// bits[6:2]. Unused slots are left nil and fault with IllegalInstruction.
var opcodeTable = [32]opFunc{
	OpcodeLoad >> 2:    execLoad,
	OpcodeMiscMem >> 2: execMiscMem,
	OpcodeOpImm >> 2:   execOpImm,
	OpcodeAUIPC >> 2:   execAUIPC,
	OpcodeStore >> 2:   execStore,
	OpcodeOp >> 2:      execOp,
	OpcodeLUI >> 2:     execLUI,
	OpcodeBranch >> 2:  execBranch,
	OpcodeJALR >> 2:    execJALR,
	OpcodeJAL >> 2:     execJAL,
	OpcodeSystem >> 2:  execSystem,
}

// Step fetches, decodes and executes exactly one instruction at PC.
//
// The order within a step is: fetch, decode, handler runs (register
// reads, memory access, register writes and any PC update it owns),
// x0 is pinned back to zero, Steps is incremented. Step returns a non-nil
// error (always an *Error) whenever the machine raised an exception;
// m.Exception records the same detail for a host that wants to inspect it
// without type-asserting the error.
func (m *Machine) Step() error {
	faultPC := m.PC
	raw := m.IO.ReadW(m, m.PC)
	in := Decode(raw)

	idx := DispatchIndex(raw)
	fn := opcodeTable[idx]
	if fn == nil {
		m.PC += 4
		m.X[0] = 0
		m.Steps++
		return newException(m, IllegalInstruction, faultPC, raw)
	}

	fl, err := fn(m, in)
	m.X[0] = 0
	m.Steps++

	if err != nil {
		return err
	}
	if !fl.updatedPC {
		m.PC += 4
	}
	return nil
}
