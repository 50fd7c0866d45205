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

package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/db47h/intcode/network"
	"github.com/db47h/intcode/vm"
)

// keyController steers a program from single keystrokes. Output groups are
// printed one per line.
type keyController struct {
	vm   *vm.Instance
	in   *bufio.Reader
	out  *bufio.Writer
	next vm.Cell
	err  error
}

func (k *keyController) Update(group []vm.Cell) error {
	for n, v := range group {
		if n > 0 {
			k.out.WriteByte(' ')
		}
		k.out.WriteString(strconv.FormatInt(int64(v), 10))
	}
	_, err := k.out.Write([]byte{'\n'})
	return err
}

// Done waits for the next bound key. It returns true on EOF, 'q' or CTRL-D
// if not bound.
func (k *keyController) Done() bool {
	if k.vm.Halted() {
		return false
	}
	if k.err = k.out.Flush(); k.err != nil {
		return true
	}
	for {
		r, _, err := k.in.ReadRune()
		if err != nil {
			if err != io.EOF {
				k.err = err
			}
			return true
		}
		if v, ok := cfg.Binding(r); ok {
			k.next = v
			return false
		}
		if r == 'q' || r == 4 {
			return true
		}
		log.Debugf("unbound key %q", r)
	}
}

func (k *keyController) Input() vm.Cell {
	return k.next
}

// runKeys runs i in a network.Loop driven by a keyController, with the
// terminal in raw mode if r is a terminal.
func runKeys(i *vm.Instance, r io.Reader, out *bufio.Writer, o *runOptions) error {
	if len(cfg.Keys.Bindings) == 0 {
		log.Warning("no key bindings configured, only q will work")
	}
	if !o.noRaw && stdinIsTerminal(r) {
		tearDown, err := setRawIO()
		if err != nil {
			log.Warningf("raw terminal IO disabled: %v", err)
		} else {
			defer tearDown()
		}
	}
	k := &keyController{vm: i, in: bufio.NewReader(r), out: out}
	l := network.Loop{VM: i, Group: cfg.Keys.Group, Controller: k}
	if err := l.Run(); err != nil {
		return err
	}
	return k.err
}
