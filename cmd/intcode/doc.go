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

// The intcode command line tool runs Intcode programs and is a showcase for
// the packages github.com/db47h/intcode/vm and github.com/db47h/intcode/network.
//
// Usage:
//
//	intcode [command]
//
//	run [image]       run a program until it halts or blocks
//	resume snapshot   resume a program saved with run --save-state
//	amp [image]       run a chain or feedback loop of amplifiers
//	asm source        assemble a program
//	disasm [image]    disassemble a program image
//
// Global flags:
//
//	--config file
//		  configuration file (default: intcode.toml in the current
//		  directory or above)
//	-v, --verbose
//		  increase log verbosity. -vv traces every executed instruction
//	--log-file file
//		  write logs to file instead of stderr
//	--debug
//		  print a full stack trace on errors
//
// Program images are text files holding comma separated integers. Files with
// an .ias or .asm extension are assembled on the fly, see package
// github.com/db47h/intcode/asm for the syntax. When no image is given on the
// command line, the image key of the configuration file is used.
//
// run: -i/--input queues integer values before the program starts. With
// --interactive, a new line of input is read from stdin each time the program
// blocks. With --ascii, output values below 128 are printed as characters and
// interactive input lines are sent as ASCII codes followed by a new line.
//
// --keys drives the program with single keystrokes: output is grouped by
// keys.group values and printed one group per line, then the next key bound
// in the keys.bindings table of the configuration file is sent as input. 'q'
// quits unless bound. When stdin is a terminal, it is switched to raw mode
// unless --noraw is given.
//
// -s/--save-state: if the program is left waiting for input, a snapshot of
// the VM is written to the given file. It can be resumed later with the
// resume command, which accepts the same flags as run.
//
// --dump: dump the VM state, PC and memory upon exit.
//
// amp: -p/--phases sets the phase settings, one amplifier per setting, and
// -f/--feedback wires the amplifiers in a loop. --search tries every
// permutation of the phase settings and prints the highest signal, followed
// by the phase order yielding it.
//
// A sample intcode.toml:
//
//	image = "amp.txt"
//
//	[log]
//	verbosity = 0
//
//	[run]
//	inputs = [5]
//
//	[network]
//	phases = [5, 6, 7, 8, 9]
//	feedback = true
//
//	[keys]
//	group = 3
//	bindings = { a = -1, s = 0, d = 1 }
package main
