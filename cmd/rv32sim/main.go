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

// rv32sim is a command-line front end for the pkg/rv32 interpreter.
//
// DO NOT USE THIS IN PRODUCTION; it exists to exercise the interpreter
// against ELF binaries or flat memory images from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rv32sim",
		Short: "Run or inspect RV32I programs",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newDisasmCmd())
	return root
}
