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

// Package network wires Intcode VM instances into process networks.
//
// All patterns are built on the public API of package vm: values move from
// one instance to the next by copying them out of its output queue (Take or
// Drain) and into the input queue of the receiving instance (Submit). No
// instance is ever shared between two patterns, and the patterns run the
// instances they own from a single goroutine. Search evaluates many
// independent networks in parallel.
//
// Pipeline runs a linear chain of instances, each stage being fed its phase
// setting, then the output of the previous stage:
//
//	signal, err := network.Pipeline(img, []vm.Cell{4, 3, 2, 1, 0}, 0)
//
// Ring closes the chain into a feedback loop and keeps running the instances
// round robin until the last one halts. Loop drives a single instance from a
// Controller that consumes output in fixed size groups and supplies one input
// value per turn.
package network
