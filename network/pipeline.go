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

// Pipeline runs one instance of img per stage, in order. Each instance is fed
// its stage value, then the carried value, and run until it halts or blocks.
// Its last output becomes the carried value for the next stage. The initial
// carried value is seed.
//
// Pipeline returns the output of the last stage. A stage that produces no
// output fails with an error wrapping ErrNoOutput.
//
// The options are applied to every instance. By default, instances are named
// "A", "B", etc.
func Pipeline(img vm.Image, stages []vm.Cell, seed vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	if len(stages) == 0 {
		return 0, ErrNoPhases
	}
	v := seed
	for n, s := range stages {
		i, err := newStage(img, n, opts, vm.Input(s, v))
		if err != nil {
			return 0, err
		}
		if err = i.Run(); err != nil {
			return 0, errors.Wrapf(err, "stage %s", i.Name())
		}
		out, ok := i.Last()
		if !ok {
			return 0, errors.Wrapf(ErrNoOutput, "stage %s", i.Name())
		}
		log.Debug("stage done", "stage", i.Name(), "in", v, "out", out, "state", i.State().String())
		v = out
	}
	return v, nil
}
