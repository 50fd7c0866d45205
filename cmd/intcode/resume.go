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
	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

func newResumeCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "resume snapshot",
		Short: "Resume a program saved with --save-state",
		Long: `Resume restores a VM from a snapshot file written by run --save-state, queues
the given input and resumes execution. The program continues exactly where
it stopped, with its memory, pending input and output history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.merge(cmd)
			i, err := vm.LoadSnapshot(args[0])
			if err != nil {
				return err
			}
			log.Infof("resuming %s at pc=%d, %d instructions executed", i.Name(), i.PC(), i.InstructionCount())
			return execute(cmd, i, &o)
		},
	}
	o.bind(cmd)
	return cmd
}
