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

package vm

import (
	"strconv"

	"github.com/pkg/errors"
)

// Opcode is the operation selector encoded in the two low decimal digits of
// an instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd         Opcode = 1
	OpMul         Opcode = 2
	OpIn          Opcode = 3
	OpOut         Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpHalt        Opcode = 99
)

type opcodeInfo struct {
	name string
	args int
	dst  int // 1-based index of the write target, 0 if none
}

var opcodes = map[Opcode]opcodeInfo{
	OpAdd:         {"add", 3, 3},
	OpMul:         {"mul", 3, 3},
	OpIn:          {"in", 1, 1},
	OpOut:         {"out", 1, 0},
	OpJumpIfTrue:  {"jt", 2, 0},
	OpJumpIfFalse: {"jf", 2, 0},
	OpLessThan:    {"lt", 3, 3},
	OpEquals:      {"eq", 3, 3},
	OpHalt:        {"hlt", 0, 0},
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for op, info := range opcodes {
		opcodeIndex[info.name] = op
	}
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Args returns the number of operands expected by op.
func (op Opcode) Args() int {
	return opcodes[op].args
}

// Size returns the number of cells occupied by an instruction with opcode op,
// including the instruction word itself.
func (op Opcode) Size() int {
	return opcodes[op].args + 1
}

// Target returns the 1-based index of the operand op writes to, or 0 if op
// does not write to memory.
func (op Opcode) Target() int {
	return opcodes[op].dst
}

// LookupOpcode returns the opcode for the given mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Mode is a parameter addressing mode.
type Mode uint8

// Parameter modes.
const (
	Position  Mode = iota // operand is the address of the value
	Immediate             // operand is the value itself
)

func (m Mode) String() string {
	if m == Immediate {
		return "immediate"
	}
	return "position"
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Mode returns the addressing mode of the n-th operand, starting at 1.
func (ins Instruction) Mode(n int) Mode {
	return ins.Modes[n-1]
}

// Decode decodes an instruction word. The opcode is w mod 100, then the
// hundreds, thousands and ten-thousands digits give the modes of operands 1,
// 2 and 3. A zero digit selects Position mode, any other digit Immediate mode.
//
// The returned error, if any, wraps ErrUnknownOpcode.
func Decode(w Cell) (Instruction, error) {
	ins := Instruction{Op: Opcode(w % 100)}
	if !ins.Op.Valid() {
		return ins, errors.Wrapf(ErrUnknownOpcode, "%d in instruction word %d", ins.Op, w)
	}
	w /= 100
	for n := range ins.Modes {
		if w%10 != 0 {
			ins.Modes[n] = Immediate
		}
		w /= 10
	}
	return ins, nil
}

// Encode returns the instruction word for ins.
func (ins Instruction) Encode() Cell {
	w := Cell(0)
	for n := len(ins.Modes) - 1; n >= 0; n-- {
		w = w*10 + Cell(ins.Modes[n])
	}
	return w*100 + Cell(ins.Op)
}
