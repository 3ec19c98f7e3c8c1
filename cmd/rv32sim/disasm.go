package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rv32core/pkg/rv32"
)

func newDisasmCmd() *cobra.Command {
	var memSize uint32
	var count int

	cmd := &cobra.Command{
		Use:   "disasm <program>",
		Short: "Decode instructions from a program without executing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, entry, err := loadImage(args[0], memSize)
			if err != nil {
				return err
			}
			io := rv32.NewFlatMemIO(mem)
			m := rv32.New(io, nil)
			pc := entry

			for i := 0; i < count; i++ {
				raw := m.IO.ReadW(m, pc)
				in := rv32.Decode(raw)
				fmt.Fprintf(cmd.OutOrStdout(), "%#08x: %#08x  %-8s rd=%d rs1=%d rs2=%d\n",
					pc, raw, rv32.Mnemonic(raw), in.Rd, in.Rs1, in.Rs2)
				pc += 4
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&memSize, "mem-size", 64<<20, "Flat memory size in bytes")
	cmd.Flags().IntVar(&count, "count", 16, "Number of instructions to decode")
	return cmd
}
