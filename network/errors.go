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
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var (
	// ErrNoPhases is returned when a network is built with no stage.
	ErrNoPhases = errors.New("empty phase list")
	// ErrNoOutput is returned when a stage that must produce a value did not.
	ErrNoOutput = errors.New("no output")
	// ErrDeadlock is returned by Ring when every instance is blocked on input
	// and no value is in transit.
	ErrDeadlock = errors.New("deadlock")
)

var log = commonlog.GetLogger("intcode.network")

// stageName returns "A" for stage 0, "B" for stage 1 and so on.
func stageName(n int) string {
	if n < 26 {
		return string(rune('A' + n))
	}
	return "#" + strconv.Itoa(n)
}

// newStage creates the instance for stage n. opts is copied so that it can be
// shared between goroutines.
func newStage(img vm.Image, n int, opts []vm.Option, extra ...vm.Option) (*vm.Instance, error) {
	o := make([]vm.Option, 0, len(opts)+len(extra)+1)
	o = append(o, vm.Name(stageName(n)))
	o = append(o, opts...)
	o = append(o, extra...)
	i, err := vm.New(img, o...)
	return i, errors.Wrapf(err, "stage %s", stageName(n))
}
