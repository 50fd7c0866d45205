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

package asm

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/ioerr"
	"github.com/db47h/intcode/vm"
)

// Error is an assembly error at a given position in the source.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors,
// sorted by position in the source.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e ErrAsm) sort() {
	sort.SliceStable(e, func(i, j int) bool { return e[i].Pos.Offset < e[j].Pos.Offset })
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (vm.Image, error) {
	return newParser().Parse(name, r)
}

func writeOperand(w io.Writer, mode vm.Mode, v vm.Cell) {
	w.Write([]byte{' '})
	if mode == vm.Immediate {
		w.Write([]byte{'#'})
	}
	io.WriteString(w, strconv.FormatInt(int64(v), 10))
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given image to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not decode to a valid instruction, or instructions truncated
// by the end of the image, are written as .dat directives.
func Disassemble(img vm.Image, pc int, w io.Writer) (next int, err error) {
	ew := ioerr.NewErrWriter(w)

	ins, err := vm.Decode(img[pc])
	if err != nil || pc+ins.Op.Size() > len(img) {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(img[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.Op.String())
	for n := 1; n <= ins.Op.Args(); n++ {
		writeOperand(ew, ins.Mode(n), img[pc+n])
	}
	return pc + ins.Op.Size(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given image to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (img[0]). It will return any write error.
func DisassembleAll(img vm.Image, base int, w io.Writer) error {
	ew := ioerr.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
