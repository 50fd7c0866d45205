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
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/config"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	cfgFile   string
	verbosity int
	logFile   string
	debug     bool
	cfg       *config.Config
)

var log = commonlog.GetLogger("intcode")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "intcode",
		Short: "Run, assemble and network Intcode programs",
		Long: `intcode runs Intcode programs, either standalone, interactively or wired
into amplifier networks. It also assembles and disassembles Intcode.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "configuration `file` (default: "+config.FileName+" in the current directory or above)")
	pf.CountVarP(&verbosity, "verbose", "v", "increase log verbosity, repeat for instruction traces")
	pf.StringVar(&logFile, "log-file", "", "write logs to `file` instead of stderr")
	pf.BoolVar(&debug, "debug", false, "print a full stack trace on errors")

	root.AddCommand(newRunCmd(), newResumeCmd(), newAmpCmd(), newAsmCmd(), newDisasmCmd())
	return root
}

// setup loads the configuration and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.Find(".")
	}
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	v := cfg.Log.Verbosity
	if f := cmd.Flag("verbose"); f != nil && f.Changed {
		v = verbosity
	}
	path := cfg.Log.File
	if logFile != "" {
		path = logFile
	}
	if path != "" {
		commonlog.Configure(v, &path)
	} else {
		commonlog.Configure(v, nil)
	}
	if cfg.Dir != "" {
		log.Debugf("using configuration in %s", cfg.Dir)
	}
	return nil
}

// loadImage loads the program image named in args, or the one set in the
// configuration file. Files with an .ias or .asm extension are assembled.
func loadImage(args []string) (vm.Image, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		name = cfg.ImagePath()
	}
	if name == "" {
		return nil, errors.New("no program image specified")
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ias", ".asm":
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "open source file")
		}
		defer f.Close()
		return asm.Assemble(name, f)
	}
	return vm.Load(name)
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	atExit(err)
}
