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
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ioerr"
	"github.com/tliron/commonlog"
)

// State is the execution state of an Instance.
type State int

// Execution states. Halted is terminal.
const (
	Running State = iota
	WaitingForInput
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForInput:
		return "waiting for input"
	case Halted:
		return "halted"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Instance represents an Intcode VM instance.
type Instance struct {
	mem      *Memory
	pc       Cell
	state    State
	in       queue
	out      queue
	insCount int64
	name     string
	log      commonlog.Logger
}

// Option interface
type Option func(*Instance) error

// Input preloads the input queue with the given values.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.Submit(values...); return nil }
}

// Logger sets the logger used for tracing. The default logger is named
// "intcode.vm".
func Logger(log commonlog.Logger) Option {
	return func(i *Instance) error {
		i.log = log
		return nil
	}
}

// Name sets the name of the instance. The name only appears in log messages.
func Name(name string) Option {
	return func(i *Instance) error {
		i.name = name
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance in the Running state, with its PC set
// to 0 and empty I/O queues.
//
// The instance works on a private copy of image, so that multiple instances
// can be created from the same image.
//
// Options will be set by calling SetOptions.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: NewMemory(image),
		log: commonlog.GetLogger("intcode.vm"),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// State returns the current execution state.
func (i *Instance) State() State {
	return i.state
}

// Halted returns true if the program has halted.
func (i *Instance) Halted() bool {
	return i.state == Halted
}

// HaltedOrBlocked returns true if the program has halted or is waiting for
// input. Run returns only when this is true.
func (i *Instance) HaltedOrBlocked() bool {
	return i.state != Running
}

// PC returns the program counter (aka. Instruction Pointer).
func (i *Instance) PC() Cell {
	return i.pc
}

// Memory returns the instance memory.
func (i *Instance) Memory() *Memory {
	return i.mem
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Name returns the instance name set with the Name option.
func (i *Instance) Name() string {
	return i.name
}

func dumpSlice(w io.Writer, a []Cell) {
	for n, v := range a {
		if n > 0 {
			w.Write([]byte{','})
		}
		io.WriteString(w, strconv.FormatInt(int64(v), 10))
	}
}

// Dump writes the state, PC and memory of the VM to the specified io.Writer.
// Extended memory is written as address:value pairs, one per line.
func (i *Instance) Dump(w io.Writer) error {
	ew := ioerr.NewErrWriter(w)
	fmt.Fprintf(ew, "state: %v\npc: %d\ninstructions: %d\n", i.state, i.pc, i.insCount)
	io.WriteString(ew, "memory: ")
	dumpSlice(ew, i.mem.cells)
	ew.Write([]byte{'\n'})
	for _, a := range i.mem.Extended() {
		fmt.Fprintf(ew, "%d: %d\n", a, i.mem.ext[a])
	}
	return ew.Err
}
