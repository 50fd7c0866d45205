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

// Package vm implements an Intcode virtual machine.
//
// An Instance runs a program image (a slice of Cells) with its own private copy
// of memory, one input queue and one output queue. Execution is driven by the
// caller: Run executes instructions until the program either halts or reaches
// an Input instruction with an empty input queue. In the latter case the VM
// is WaitingForInput and the PC is left on the Input instruction, so that
// after a call to Submit, the next Run resumes exactly where it stopped.
//
// This makes it possible to drive a VM incrementally, one batch of input at a
// time, and to wire several instances together by copying the output of one
// instance into the input queue of another (see package network).
//
// Memory addresses beyond the end of the program image are valid: they are
// allocated lazily on first write and read as 0 until then.
//
// Only two parameter modes are supported: position (mode 0) and immediate (any
// other digit). There is no relative base.
//
// Fatal errors (unknown opcodes, negative addresses, running a halted
// instance) are returned by Run. They are not recoverable: the instance should
// be discarded.
package vm
