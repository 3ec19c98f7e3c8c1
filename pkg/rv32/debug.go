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

import (
	"strings"
	"text/tabwriter"
	"text/template"
)

var dbgTmpl = template.Must(template.New("machine").Parse(
	`pc={{printf "%#08x" .PC}} steps={{.Steps}}
{{range $i, $n := .Names}}{{$n}}	{{printf "%#08x" (index $.Regs $i)}}
{{end}}`))

// String renders a register dump in the style of
// LMMilewski-riscv-emu's VM.String: a text/template filled through a
// text/tabwriter so register columns line up regardless of name length.
func (m *Machine) String() string {
	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 4, 1, ' ', 0)

	data := struct {
		PC    uint32
		Steps uint64
		Names [32]string
		Regs  [32]uint32
	}{PC: m.PC, Steps: m.Steps, Names: RegNames, Regs: m.X}

	if err := dbgTmpl.Execute(tw, data); err != nil {
		return err.Error()
	}
	tw.Flush()
	return buf.String()
}
