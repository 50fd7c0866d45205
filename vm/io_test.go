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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reads 3 values and writes them back in the same order.
var echo3 = C{3, 20, 4, 20, 3, 20, 4, 20, 3, 20, 4, 20, 99}

func TestIO_fifo(t *testing.T) {
	i := setup(t, echo3, 1, 2)
	i.Submit(3)
	require.NoError(t, i.Run())
	assert.True(t, i.HasOutput())
	assert.Equal(t, 3, i.Pending())
	for _, expected := range []vm.Cell{1, 2, 3} {
		v, ok := i.Take()
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}
	_, ok := i.Take()
	assert.False(t, ok)
	assert.False(t, i.HasOutput())
}

func TestIO_last(t *testing.T) {
	i := setup(t, echo3)
	_, ok := i.Last()
	assert.False(t, ok)

	i.Submit(5, 6)
	require.NoError(t, i.Run())
	assert.Equal(t, vm.WaitingForInput, i.State())
	for n := 0; n < 2; n++ {
		v, ok := i.Last()
		assert.True(t, ok)
		assert.Equal(t, vm.Cell(6), v)
	}
	// Last does not consume.
	assert.Equal(t, 2, i.Pending())
	assert.Equal(t, []vm.Cell{5, 6}, i.Drain())
	assert.Nil(t, i.Drain())
	v, ok := i.Last()
	assert.True(t, ok)
	assert.Equal(t, vm.Cell(6), v)
}

func TestIO_interleaved(t *testing.T) {
	i := setup(t, echo3)
	var out []vm.Cell
	for _, in := range []vm.Cell{10, 20, 30} {
		require.NoError(t, i.Run())
		assert.Equal(t, vm.WaitingForInput, i.State())
		i.Submit(in)
		require.NoError(t, i.Run())
		out = append(out, i.Drain()...)
	}
	assert.True(t, i.Halted())
	assert.Equal(t, []vm.Cell{10, 20, 30}, out)
}
