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
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/db47h/intcode/vm"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// runOptions are shared by the run and resume commands.
type runOptions struct {
	inputs      []int64
	text        string
	ascii       bool
	interactive bool
	keys        bool
	noRaw       bool
	dump        bool
	saveState   string
}

func (o *runOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int64SliceVarP(&o.inputs, "input", "i", nil, "comma separated input `values`, queued before the program starts")
	f.StringVarP(&o.text, "text", "t", "", "queue `string` as ASCII codes, followed by a new line")
	f.BoolVarP(&o.ascii, "ascii", "a", false, "print output values below 128 as ASCII characters")
	f.BoolVar(&o.interactive, "interactive", false, "read input values from stdin, one line at a time, whenever the program blocks")
	f.BoolVar(&o.keys, "keys", false, "drive the program with single keystrokes, as bound in the configuration file")
	f.BoolVar(&o.noRaw, "noraw", false, "disable raw terminal IO in --keys mode")
	f.BoolVar(&o.dump, "dump", false, "dump the VM state and memory upon exit")
	f.StringVarP(&o.saveState, "save-state", "s", "", "save a snapshot to `file` if the program is left waiting for input")
}

// merge applies the configuration file values for flags that were not set.
func (o *runOptions) merge(cmd *cobra.Command) {
	if !cmd.Flags().Changed("input") {
		for _, v := range cfg.Run.Inputs {
			o.inputs = append(o.inputs, int64(v))
		}
	}
	if !cmd.Flags().Changed("ascii") {
		o.ascii = cfg.Run.ASCII
	}
}

func newRunCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Run an Intcode program",
		Long: `Run loads a program image and runs it until it halts or blocks waiting for
input. The image is read from the given file, or from the image key of the
configuration file. Files with an .ias or .asm extension are assembled first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.merge(cmd)
			img, err := loadImage(args)
			if err != nil {
				return err
			}
			i, err := vm.New(img, vm.Name("main"))
			if err != nil {
				return err
			}
			return execute(cmd, i, &o)
		},
	}
	o.bind(cmd)
	return cmd
}

func encodeText(s string) []vm.Cell {
	v := make([]vm.Cell, 0, len(s)+1)
	for _, r := range s {
		v = append(v, vm.Cell(r))
	}
	return append(v, '\n')
}

func toCells(v []int64) []vm.Cell {
	c := make([]vm.Cell, len(v))
	for n := range v {
		c[n] = vm.Cell(v[n])
	}
	return c
}

// execute runs i according to o and writes its output to the command's
// output.
func execute(cmd *cobra.Command, i *vm.Instance, o *runOptions) (err error) {
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer func() {
		if err == nil && o.dump {
			err = i.Dump(out)
		}
		if e := out.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write output")
		}
	}()

	i.Submit(toCells(o.inputs)...)
	if o.text != "" {
		i.Submit(encodeText(o.text)...)
	}

	switch {
	case o.keys:
		err = runKeys(i, cmd.InOrStdin(), out, o)
	case o.interactive:
		err = runInteractive(i, cmd.InOrStdin(), cmd.OutOrStdout(), out, o.ascii)
	default:
		err = i.Run()
		if e := writeOutput(out, i.Drain(), o.ascii); err == nil {
			err = e
		}
	}
	if err != nil {
		return errors.Wrapf(err, "%s: pc=%d", i.Name(), i.PC())
	}

	if !i.Halted() {
		log.Noticef("%s waiting for input at pc=%d", i.Name(), i.PC())
		if o.saveState != "" {
			if err = i.SaveSnapshot(o.saveState); err != nil {
				return err
			}
			log.Infof("snapshot saved to %s", o.saveState)
		}
	}
	return nil
}

// runInteractive feeds i with values read from r whenever it blocks. In ASCII
// mode, each line is submitted as text. Otherwise a line holds one or more
// integers separated by spaces or commas. Reading stops cleanly on EOF or
// CTRL-C.
func runInteractive(i *vm.Instance, r io.Reader, w io.Writer, out *bufio.Writer, ascii bool) error {
	in := readline.NewCancelableStdin(r)
	rc := &readline.Config{
		Prompt:      "> ",
		HistoryFile: cfg.HistoryPath(),
		Stdin:       in,
		Stdout:      w,
		Stderr:      w,
	}
	if !stdinIsTerminal(r) {
		rc.FuncIsTerminal = func() bool { return false }
		rc.FuncMakeRaw = func() error { return nil }
		rc.FuncExitRaw = func() error { return nil }
	}
	rl, err := readline.NewEx(rc)
	if err != nil {
		return errors.Wrap(err, "start readline")
	}
	defer func() {
		in.Close()
		rl.Close()
	}()

	for {
		if err := i.Run(); err != nil {
			return err
		}
		if err := writeOutput(out, i.Drain(), ascii); err != nil {
			return err
		}
		if i.Halted() {
			return nil
		}
		if err := out.Flush(); err != nil {
			return err
		}
		line, err := rl.Readline()
		switch {
		case err == io.EOF || err == readline.ErrInterrupt:
			return nil
		case err != nil:
			return err
		}
		if ascii {
			i.Submit(encodeText(line)...)
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for _, f := range fields {
			v, err := strconv.ParseInt(f, 0, 64)
			if err != nil {
				log.Warningf("ignoring invalid input %q", f)
				continue
			}
			i.Submit(vm.Cell(v))
		}
	}
}

// stdinIsTerminal reports whether r is a terminal.
func stdinIsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
