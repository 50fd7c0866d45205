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

type C []vm.Cell

func setup(t *testing.T, code C, input ...vm.Cell) *vm.Instance {
	t.Helper()
	i, err := vm.New(vm.Image(code), vm.Input(input...), vm.Logger(commonlog.MOCK_LOGGER))
	require.NoError(t, err)
	return i
}

func check(t *testing.T, i *vm.Instance, state vm.State, pc vm.Cell, output C) {
	t.Helper()
	require.NoError(t, i.Run())
	assert.Equal(t, state, i.State(), "state")
	assert.Equal(t, pc, i.PC(), "pc")
	var out C
	for v, ok := i.Take(); ok; v, ok = i.Take() {
		out = append(out, v)
	}
	assert.Equal(t, output, out, "output")
}

func TestScenarios(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		i := setup(t, C{1, 0, 0, 0, 99})
		check(t, i, vm.Halted, 4, nil)
		assert.Equal(t, vm.Cell(2), i.Memory().Get(0))
	})
	t.Run("echo", func(t *testing.T) {
		i := setup(t, C{3, 0, 4, 0, 99})
		i.Submit(42)
		check(t, i, vm.Halted, 4, C{42})
	})
	t.Run("large", func(t *testing.T) {
		i := setup(t, C{104, 1125899906842624, 99})
		check(t, i, vm.Halted, 2, C{1125899906842624})
	})
	t.Run("blocking", func(t *testing.T) {
		i := setup(t, C{3, 5, 4, 5, 99, 0})
		check(t, i, vm.WaitingForInput, 0, nil)
		assert.False(t, i.Halted())
		assert.True(t, i.HaltedOrBlocked())
		i.Submit(123)
		assert.Equal(t, vm.Running, i.State())
		check(t, i, vm.Halted, 4, C{123})
		assert.True(t, i.Halted())
	})
}

func TestNew_privateCopy(t *testing.T) {
	img := vm.Image{1, 0, 0, 0, 99}
	i0, err := vm.New(img)
	require.NoError(t, err)
	i1, err := vm.New(img)
	require.NoError(t, err)
	require.NoError(t, i0.Run())
	assert.Equal(t, vm.Cell(2), i0.Memory().Get(0))
	assert.Equal(t, vm.Cell(1), i1.Memory().Get(0))
	assert.Equal(t, vm.Cell(1), img[0])
	assert.Equal(t, vm.Running, i1.State())
	assert.Zero(t, i1.PC())
}

func TestRun_deterministic(t *testing.T) {
	code := C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}
	for _, in := range []vm.Cell{7, 8, 9} {
		i0 := setup(t, code, in)
		i1 := setup(t, code, in)
		require.NoError(t, i0.Run())
		require.NoError(t, i1.Run())
		assert.Equal(t, i0.Drain(), i1.Drain())
		assert.Equal(t, i0.InstructionCount(), i1.InstructionCount())
		assert.Equal(t, i0.Memory().Image(), i1.Memory().Image())
	}
}

func TestRun_haltedIsTerminal(t *testing.T) {
	i := setup(t, C{99})
	require.NoError(t, i.Run())
	err := i.Run()
	assert.Equal(t, vm.ErrHalted, errors.Cause(err))
	i.Submit(1)
	assert.Equal(t, vm.Halted, i.State())
	assert.Equal(t, vm.ErrHalted, errors.Cause(i.Run()))
}

func TestRun_blockedWithoutInput(t *testing.T) {
	i := setup(t, C{3, 0, 99})
	require.NoError(t, i.Run())
	count := i.InstructionCount()
	require.NoError(t, i.Run())
	assert.Equal(t, vm.WaitingForInput, i.State())
	assert.Zero(t, i.PC())
	assert.Equal(t, count, i.InstructionCount())
	// Submit without values does not unblock.
	i.Submit()
	assert.Equal(t, vm.WaitingForInput, i.State())
}

func TestName(t *testing.T) {
	i, err := vm.New(nil, vm.Name("amp A"))
	require.NoError(t, err)
	assert.Equal(t, "amp A", i.Name())
	assert.Zero(t, i.Memory().Len())
}

// an empty image reads as all zeroes, which is an unknown opcode.
func TestRun_emptyImage(t *testing.T) {
	i := setup(t, C{})
	err := i.Run()
	assert.Equal(t, vm.ErrUnknownOpcode, errors.Cause(err))
}
