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

// Ring builds a feedback loop of len(phases) instances of img. Instance n is
// primed with phases[n] and seed is queued to instance 0 right after its
// phase.
//
// The instances are then run in ring order until the last one halts. After
// each run, all the new output of instance n is forwarded, in emission order,
// to instance (n+1) mod len(phases). Halted instances are skipped.
//
// Ring returns the last value emitted by the last instance. If a full round
// completes without any value being forwarded while the last instance is
// still running, the ring can make no further progress and Ring returns an
// error wrapping ErrDeadlock.
func Ring(img vm.Image, phases []vm.Cell, seed vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, ErrNoPhases
	}
	amps := make([]*vm.Instance, len(phases))
	for n, p := range phases {
		i, err := newStage(img, n, opts, vm.Input(p))
		if err != nil {
			return 0, err
		}
		amps[n] = i
	}
	amps[0].Submit(seed)

	last := amps[len(amps)-1]
	for round := 1; !last.Halted(); round++ {
		moved := 0
		for n, i := range amps {
			if i.Halted() {
				continue
			}
			if err := i.Run(); err != nil {
				return 0, errors.Wrapf(err, "round %d, stage %s", round, i.Name())
			}
			if out := i.Drain(); len(out) > 0 {
				amps[(n+1)%len(amps)].Submit(out...)
				moved += len(out)
			}
		}
		log.Debug("round done", "round", round, "forwarded", moved)
		if moved == 0 && !last.Halted() {
			log.Errorf("ring deadlock after %d rounds", round)
			return 0, errors.Wrapf(ErrDeadlock, "round %d", round)
		}
	}

	v, ok := last.Last()
	if !ok {
		return 0, errors.Wrapf(ErrNoOutput, "stage %s", last.Name())
	}
	return v, nil
}
