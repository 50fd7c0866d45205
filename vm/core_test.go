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

package vm_test

import (
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"
)

func TestArith(t *testing.T) {
	data := []struct {
		name     string
		code     C
		in       C
		expected C
	}{
		{"add", C{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, nil, C{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"mul", C{2, 3, 0, 3, 99}, nil, C{2, 3, 0, 6, 99}},
		{"square", C{2, 4, 4, 5, 99, 0}, nil, C{2, 4, 4, 5, 99, 9801}},
		{"self modifying", C{1, 1, 1, 4, 99, 5, 6, 0, 99}, nil, C{30, 1, 1, 4, 2, 5, 6, 0, 99}},
		{"modes", C{1002, 4, 3, 4, 33}, nil, C{1002, 4, 3, 4, 99}},
		{"negative", C{1101, 100, -1, 4, 0}, nil, C{1101, 100, -1, 4, 99}},
		// the target operand is an address, whatever its mode digit.
		{"immediate target", C{11101, 2, 3, 5, 99, 0}, nil, C{11101, 2, 3, 5, 99, 5}},
		{"immediate input target", C{103, 3, 99, 0}, C{7}, C{103, 3, 99, 7}},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code, test.in...)
			require.NoError(t, i.Run())
			assert.True(t, i.Halted())
			assert.Equal(t, vm.Image(test.expected), i.Memory().Image())
		})
	}
}

func TestCompareAndJump(t *testing.T) {
	cmp := C{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
		1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
		999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}
	data := []struct {
		name     string
		code     C
		in       vm.Cell
		expected vm.Cell
	}{
		{"eq position", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, 8, 1},
		{"ne position", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, 7, 0},
		{"lt position", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, 7, 1},
		{"ge position", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, 8, 0},
		{"eq immediate", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, 8, 1},
		{"ne immediate", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, -8, 0},
		{"lt immediate", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, -100, 1},
		{"ge immediate", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, 9, 0},
		{"jf position zero", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, 0, 0},
		{"jf position", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, 5, 1},
		{"jt immediate zero", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, 0, 0},
		{"jt immediate", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, -3, 1},
		{"below 8", cmp, 7, 999},
		{"equal 8", cmp, 8, 1000},
		{"above 8", cmp, 9, 1001},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code, test.in)
			require.NoError(t, i.Run())
			assert.True(t, i.Halted())
			v, ok := i.Last()
			assert.True(t, ok)
			assert.Equal(t, test.expected, v)
		})
	}
}

func TestRun_errors(t *testing.T) {
	data := []struct {
		name  string
		code  C
		cause error
		pc    vm.Cell
	}{
		{"unknown opcode", C{1, 0, 0, 0, 42}, vm.ErrUnknownOpcode, 4},
		{"zero opcode", C{0}, vm.ErrUnknownOpcode, 0},
		{"negative read", C{1, -1, 0, 0, 99}, vm.ErrAddress, 0},
		{"negative write", C{1101, 1, 1, -5, 99}, vm.ErrAddress, 0},
		{"negative jump", C{1105, 1, -3}, vm.ErrAddress, -3},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code)
			err := i.Run()
			require.Error(t, err)
			assert.Equal(t, test.cause, errors.Cause(err), "%+v", err)
			assert.Equal(t, test.pc, i.PC())
			assert.Contains(t, err.Error(), "@pc=")
			assert.False(t, i.Halted())
		})
	}
}

func TestExtendedMemory(t *testing.T) {
	i := setup(t, C{1101, 7, 0, 1000, 4, 1000, 4, 5000, 99})
	check(t, i, vm.Halted, 8, C{7, 0})
	mem := i.Memory()
	assert.Equal(t, 9, mem.Len())
	assert.Equal(t, vm.Cell(7), mem.Get(1000))
	assert.Zero(t, mem.Get(1<<40))
	assert.Equal(t, []vm.Cell{1000}, mem.Extended())

	mem.Set(1000, 0)
	assert.Empty(t, mem.Extended())
	assert.Panics(t, func() { mem.Get(-1) })
}

type traceLogger struct {
	commonlog.MockLogger
	msgs []string
}

func (l *traceLogger) AllowLevel(commonlog.Level) bool { return true }

func (l *traceLogger) Debug(msg string, keysAndValues ...any) {
	l.msgs = append(l.msgs, msg)
}

func TestRun_trace(t *testing.T) {
	var log traceLogger
	i, err := vm.New(vm.Image{3, 0, 4, 0, 99}, vm.Logger(&log), vm.Name("trace"))
	require.NoError(t, err)
	require.NoError(t, i.Run())
	assert.Equal(t, []string{"exec", "waiting for input"}, log.msgs)
	log.msgs = nil
	i.Submit(1)
	require.NoError(t, i.Run())
	assert.Equal(t, []string{"exec", "exec", "exec", "halted"}, log.msgs)
	assert.Equal(t, int64(3), i.InstructionCount())
}

func TestDecode(t *testing.T) {
	data := []struct {
		w     vm.Cell
		op    vm.Opcode
		modes [3]vm.Mode
	}{
		{1002, vm.OpMul, [3]vm.Mode{vm.Position, vm.Immediate, vm.Position}},
		{11105, vm.OpJumpIfTrue, [3]vm.Mode{vm.Immediate, vm.Immediate, vm.Immediate}},
		{99, vm.OpHalt, [3]vm.Mode{}},
		{108, vm.OpEquals, [3]vm.Mode{vm.Immediate, vm.Position, vm.Position}},
	}
	for _, test := range data {
		ins, err := vm.Decode(test.w)
		require.NoError(t, err)
		assert.Equal(t, test.op, ins.Op)
		assert.Equal(t, test.modes, ins.Modes)
		assert.Equal(t, test.w, ins.Encode())
	}

	// any non-zero mode digit selects immediate mode.
	ins, err := vm.Decode(201)
	require.NoError(t, err)
	assert.Equal(t, vm.Immediate, ins.Mode(1))
	assert.Equal(t, vm.Cell(101), ins.Encode())

	for _, w := range []vm.Cell{0, -1, 42, 100} {
		_, err = vm.Decode(w)
		assert.Equal(t, vm.ErrUnknownOpcode, errors.Cause(err), "%d", w)
	}
}

func TestOpcode(t *testing.T) {
	assert.Equal(t, "hlt", vm.OpHalt.String())
	assert.Equal(t, "op(42)", vm.Opcode(42).String())
	assert.Equal(t, 4, vm.OpAdd.Size())
	assert.Equal(t, 3, vm.OpLessThan.Target())
	assert.Equal(t, 1, vm.OpIn.Target())
	assert.Zero(t, vm.OpOut.Target())
	op, ok := vm.LookupOpcode("jt")
	assert.True(t, ok)
	assert.Equal(t, vm.OpJumpIfTrue, op)
	_, ok = vm.LookupOpcode("nop")
	assert.False(t, ok)
	assert.Equal(t, "immediate", vm.Immediate.String())
}
