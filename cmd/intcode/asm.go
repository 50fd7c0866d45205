// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"io"
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAsmCmd() *cobra.Command {
	var outFileName string
	cmd := &cobra.Command{
		Use:   "asm source",
		Short: "Assemble an Intcode program",
		Long: `Asm assembles the given source file and writes the resulting image in
comma separated form, either to stdout or to the file given with -o. Use "-"
to read the source from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			name := args[0]
			if name != "-" {
				f, err := os.Open(name)
				if err != nil {
					return errors.Wrap(err, "open source file")
				}
				defer f.Close()
				r = f
			} else {
				name = "stdin"
			}
			img, err := asm.Assemble(name, r)
			if err != nil {
				return err
			}
			if outFileName != "" {
				return vm.Save(outFileName, img)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			w.WriteString(img.String())
			w.WriteByte('\n')
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&outFileName, "output", "o", "", "write the image to `file`")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "disasm [image]",
		Short: "Disassemble an Intcode program image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args)
			if err != nil {
				return err
			}
			if base < 0 || base > len(img) {
				return errors.Errorf("base address %d out of range", base)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(img[base:], base, w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&base, "base", 0, "start disassembling at `address`")
	return cmd
}
