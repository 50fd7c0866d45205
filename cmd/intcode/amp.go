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
	"fmt"

	"github.com/db47h/intcode/network"
	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

func newAmpCmd() *cobra.Command {
	var (
		phases   []int64
		feedback bool
		initial  int64
		search   bool
	)
	cmd := &cobra.Command{
		Use:   "amp [image]",
		Short: "Run a chain of amplifiers",
		Long: `Amp runs one instance of the program per phase setting, each instance being
fed its phase setting, then the output of the previous one. With --feedback,
the output of the last instance is fed back to the first one until the last
instance halts.

With --search, every permutation of the phase settings is tried and the one
yielding the highest signal is printed along with the signal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			p := toCells(phases)
			if !f.Changed("phases") {
				p = cfg.Network.Phases
			}
			if !f.Changed("feedback") {
				feedback = cfg.Network.Feedback
			}
			seed := vm.Cell(initial)
			if !f.Changed("initial") {
				seed = cfg.Network.Initial
			}
			img, err := loadImage(args)
			if err != nil {
				return err
			}

			if search {
				r, err := network.Search(cmd.Context(), img, p, feedback)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.Signal, r.Phases)
				return nil
			}
			run := network.Pipeline
			if feedback {
				run = network.Ring
			}
			v, err := run(img, p, seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64SliceVarP(&phases, "phases", "p", nil, "comma separated phase `settings`")
	f.BoolVarP(&feedback, "feedback", "f", false, "connect the last amplifier to the first one")
	f.Int64Var(&initial, "initial", 0, "initial input `value` of the first amplifier")
	f.BoolVar(&search, "search", false, "find the permutation of phase settings that yields the highest signal")
	return cmd
}
