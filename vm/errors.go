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

import "github.com/pkg/errors"

// Fatal VM errors. Errors returned by Run wrap one of these; use errors.Cause
// to get at them.
var (
	// ErrUnknownOpcode is returned when the instruction word at PC does not
	// decode to a known opcode.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrHalted is returned when Run is called on a halted instance.
	ErrHalted = errors.New("execute after halt")
	// ErrAddress is returned when a program reads, writes or jumps to a
	// negative address.
	ErrAddress = errors.New("invalid address")
)

// addressError is the panic value used by Memory on invalid addresses. Run
// recovers it and returns the wrapped error.
type addressError struct {
	addr Cell
}

func (e addressError) Error() string {
	return errors.Wrapf(ErrAddress, "%d", e.addr).Error()
}

func (e addressError) Cause() error { return ErrAddress }
