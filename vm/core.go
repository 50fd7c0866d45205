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
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// param returns the value of the n-th operand (starting at 1) of the
// instruction at PC, according to its addressing mode.
func (i *Instance) param(ins Instruction, n int) Cell {
	v := i.mem.Get(i.pc + Cell(n))
	if ins.Modes[n-1] == Immediate {
		return v
	}
	return i.mem.Get(v)
}

// store writes v at the address given by the n-th operand of the instruction
// at PC. The operand is always used as an address, whatever its encoded mode.
func (i *Instance) store(n int, v Cell) {
	i.mem.Set(i.mem.Get(i.pc+Cell(n)), v)
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

func (i *Instance) trace(ins Instruction) {
	args := make([]Cell, ins.Op.Args())
	for n := range args {
		args[n] = i.mem.Get(i.pc + Cell(n) + 1)
	}
	i.log.Debug("exec", "vm", i.name, "pc", i.pc, "op", ins.Op.String(), "args", args)
}

// Run executes instructions until the program halts or blocks on an Input
// instruction with an empty input queue. Run returns nil in both cases; use
// Halted, HaltedOrBlocked or State to tell them apart.
//
// Calling Run on an instance that is WaitingForInput and has not received new
// input returns immediately.
//
// Calling Run on a halted instance returns an error wrapping ErrHalted. Other
// errors wrap ErrUnknownOpcode or ErrAddress, in which case the PC will point
// to the instruction that triggered the error. All these errors are fatal.
func (i *Instance) Run() (err error) {
	if i.state == Halted {
		return errors.Wrapf(ErrHalted, "@pc=%d", i.pc)
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case addressError:
				err = errors.Wrapf(e, "@pc=%d", i.pc)
			default:
				panic(e)
			}
		}
	}()

	tracing := i.log.AllowLevel(commonlog.Debug)
	for i.state == Running {
		ins, err := Decode(i.mem.Get(i.pc))
		if err != nil {
			return errors.Wrapf(err, "@pc=%d", i.pc)
		}
		if tracing {
			i.trace(ins)
		}
		switch ins.Op {
		case OpAdd:
			i.store(3, i.param(ins, 1)+i.param(ins, 2))
			i.pc += 4
		case OpMul:
			i.store(3, i.param(ins, 1)*i.param(ins, 2))
			i.pc += 4
		case OpIn:
			v, ok := i.in.next()
			if !ok {
				// stay on this instruction, it will be executed again once
				// input is available.
				i.state = WaitingForInput
				i.log.Debug("waiting for input", "vm", i.name, "pc", i.pc)
				return nil
			}
			i.store(1, v)
			i.pc += 2
		case OpOut:
			i.out.push(i.param(ins, 1))
			i.pc += 2
		case OpJumpIfTrue:
			if i.param(ins, 1) != 0 {
				i.pc = i.param(ins, 2)
			} else {
				i.pc += 3
			}
		case OpJumpIfFalse:
			if i.param(ins, 1) == 0 {
				i.pc = i.param(ins, 2)
			} else {
				i.pc += 3
			}
		case OpLessThan:
			i.store(3, b2c(i.param(ins, 1) < i.param(ins, 2)))
			i.pc += 4
		case OpEquals:
			i.store(3, b2c(i.param(ins, 1) == i.param(ins, 2)))
			i.pc += 4
		case OpHalt:
			i.state = Halted
			i.log.Debug("halted", "vm", i.name, "pc", i.pc, "instructions", i.insCount+1)
		}
		i.insCount++
	}
	return nil
}
