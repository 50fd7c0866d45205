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

import "sort"

// Memory is the addressable storage of an Instance: a dense copy of the
// program image, extended on demand by a sparse map for addresses at or beyond
// the end of the image. Both stores behave the same: reading an address that
// was never written yields 0.
//
// Negative addresses are invalid. Get and Set panic with an error wrapping
// ErrAddress on such addresses; Instance.Run recovers these panics.
type Memory struct {
	cells []Cell
	ext   map[Cell]Cell
}

// NewMemory returns a new Memory initialized with a private copy of img.
func NewMemory(img Image) *Memory {
	return &Memory{cells: img.Clone()}
}

// Get returns the value at address addr.
func (m *Memory) Get(addr Cell) Cell {
	switch {
	case addr < 0:
		panic(addressError{addr})
	case addr < Cell(len(m.cells)):
		return m.cells[addr]
	}
	return m.ext[addr]
}

// Set stores v at address addr.
func (m *Memory) Set(addr, v Cell) {
	switch {
	case addr < 0:
		panic(addressError{addr})
	case addr < Cell(len(m.cells)):
		m.cells[addr] = v
		return
	}
	if m.ext == nil {
		if v == 0 {
			return
		}
		m.ext = make(map[Cell]Cell)
	}
	if v == 0 {
		delete(m.ext, addr)
		return
	}
	m.ext[addr] = v
}

// Len returns the size of the dense part of memory, i.e. the length of the
// program image it was initialized with.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Image returns the dense part of memory. Changes to the returned slice are
// reflected in memory.
func (m *Memory) Image() Image {
	return m.cells
}

// Extended returns the addresses of the non-zero cells beyond the dense part
// of memory, in increasing order.
func (m *Memory) Extended() []Cell {
	addrs := make([]Cell, 0, len(m.ext))
	for a := range m.ext {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
