package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rv32core/pkg/rv32"
)

func newRunCmd() *cobra.Command {
	var memSize uint32
	var maxSteps int
	var debug bool

	cmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Execute a program (ELF or flat binary) to completion or max-steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, entry, err := loadImage(args[0], memSize)
			if err != nil {
				return err
			}
			m := newMachine(mem, entry)
			if debug {
				m.Debug = rv32.DebugRegs | rv32.DebugInstr
			}

			for i := 0; i < maxSteps; i++ {
				if err := m.Step(); err != nil {
					var excErr *rv32.Error
					if errors.As(err, &excErr) && excErr.Exception.Code == rv32.EnvironmentCall {
						fmt.Fprintln(cmd.OutOrStdout(), "ecall: halting")
						return nil
					}
					if debug {
						fmt.Fprint(cmd.OutOrStdout(), m)
					}
					return fmt.Errorf("step %d: %w", i, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stopped after %d steps\n%s", maxSteps, m)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&memSize, "mem-size", 64<<20, "Flat memory size in bytes")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1_000_000, "Maximum number of instructions to execute")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print a register dump if execution stops early")
	return cmd
}
