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
	"context"
	"runtime"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a phase search.
type Result struct {
	Signal vm.Cell
	Phases []vm.Cell
}

// Permutations returns all the permutations of v in lexicographic order of
// the indices of v: the first one is v itself.
func Permutations(v []vm.Cell) [][]vm.Cell {
	var perms [][]vm.Cell
	used := make([]bool, len(v))
	cur := make([]vm.Cell, 0, len(v))
	var gen func()
	gen = func() {
		if len(cur) == len(v) {
			perms = append(perms, append([]vm.Cell(nil), cur...))
			return
		}
		for n := range v {
			if used[n] {
				continue
			}
			used[n] = true
			cur = append(cur, v[n])
			gen()
			cur = cur[:len(cur)-1]
			used[n] = false
		}
	}
	gen()
	return perms
}

// Search evaluates every permutation of phases and returns the one that
// yields the highest signal. Each permutation is evaluated with Ring if
// feedback is true, with Pipeline otherwise, with an initial value of 0.
//
// Permutations are evaluated in parallel, using at most GOMAXPROCS
// goroutines. When several permutations yield the same signal, the first one
// in the order returned by Permutations wins. The first error encountered
// cancels the search.
func Search(ctx context.Context, img vm.Image, phases []vm.Cell, feedback bool, opts ...vm.Option) (Result, error) {
	if len(phases) == 0 {
		return Result{}, ErrNoPhases
	}
	eval := Pipeline
	if feedback {
		eval = Ring
	}
	perms := Permutations(phases)
	signals := make([]vm.Cell, len(perms))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for n, p := range perms {
		n, p := n, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := eval(img, p, 0, opts...)
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			signals[n] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for n, v := range signals {
		if v > signals[best] {
			best = n
		}
	}
	log.Info("search done", "permutations", len(perms), "signal", signals[best], "phases", perms[best])
	return Result{signals[best], perms[best]}, nil
}
