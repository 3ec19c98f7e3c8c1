package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStepCmd() *cobra.Command {
	var memSize uint32
	var count int

	cmd := &cobra.Command{
		Use:   "step <program>",
		Short: "Single-step a program, printing a register dump after each instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, entry, err := loadImage(args[0], memSize)
			if err != nil {
				return err
			}
			m := newMachine(mem, entry)

			for i := 0; i < count; i++ {
				if err := m.Step(); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\nstopped: %v\n", m, err)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&memSize, "mem-size", 64<<20, "Flat memory size in bytes")
	cmd.Flags().IntVar(&count, "count", 1, "Number of instructions to step")
	return cmd
}
