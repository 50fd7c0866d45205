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

package network

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// A Controller steers an instance run by a Loop.
type Controller interface {
	// Update is called with each complete group of output values, in
	// emission order.
	Update(group []vm.Cell) error
	// Done reports whether the loop should stop. It is checked once per turn,
	// after all complete groups have been handed to Update.
	Done() bool
	// Input returns the next value to submit to the instance.
	Input() vm.Cell
}

// Loop is an interactive control loop around a single VM instance.
type Loop struct {
	VM         *vm.Instance
	Group      int // number of output values per Update call, 1 if <= 0
	Controller Controller
}

// Run runs the loop until the controller is done or the instance halts. Each
// turn runs the instance until it blocks or halts, hands every complete group
// of output to the controller, then submits exactly one input value.
//
// Incomplete groups stay in the output queue of the instance until enough
// values are available.
func (l *Loop) Run() error {
	g := l.Group
	if g <= 0 {
		g = 1
	}
	for turn := 1; ; turn++ {
		if !l.VM.Halted() {
			if err := l.VM.Run(); err != nil {
				return errors.Wrapf(err, "turn %d", turn)
			}
		}
		for l.VM.Pending() >= g {
			group := make([]vm.Cell, g)
			for n := range group {
				group[n], _ = l.VM.Take()
			}
			if err := l.Controller.Update(group); err != nil {
				return errors.Wrapf(err, "turn %d", turn)
			}
		}
		if l.Controller.Done() {
			log.Debugf("controller done after %d turns", turn)
			return nil
		}
		if l.VM.Halted() {
			log.Debugf("%s halted after %d turns", l.VM.Name(), turn)
			return nil
		}
		l.VM.Submit(l.Controller.Input())
	}
}
