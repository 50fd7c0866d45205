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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

const echoSrc = `
		( read values and echo them back plus 42, forever )
		.equ ANSWER 42
:start	in value
		add value #ANSWER value
		out value
		jt #1 #start	( unconditional jump )
		hlt				( never reached )
:value	.dat 0
`

// Shows how to assemble a program and run it.
func ExampleAssemble() {
	img, err := asm.Assemble("echo", strings.NewReader(echoSrc))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(img)

	i, err := vm.New(img, vm.Input(1, 2))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.Drain(), i.State())

	// Output:
	// 3,12,1001,12,42,12,4,12,1105,1,0,99,0
	// [43 44] waiting for input
}

func ExampleDisassembleAll() {
	img, err := asm.Assemble("echo", strings.NewReader(echoSrc))
	if err != nil {
		fmt.Println(err)
		return
	}
	asm.DisassembleAll(img, 0, os.Stdout)

	// Output:
	//          0	in 12
	//          2	add 12 #42 12
	//          6	out 12
	//          8	jt #1 #0
	//         11	hlt
	//         12	.dat 0
}

// Disassemble stops at invalid or truncated instructions and writes them as
// data.
func ExampleDisassemble() {
	img := vm.Image{1002, 4, 3, 4, 33, 1101, 7}
	for pc := 0; pc < len(img); {
		var err error
		fmt.Printf("% 4d\t", pc)
		pc, err = asm.Disassemble(img, pc, os.Stdout)
		if err != nil {
			panic(err)
		}
		fmt.Println()
	}

	// Output:
	//    0	mul 4 #3 4
	//    4	.dat 33
	//    5	.dat 1101
	//    6	.dat 7
}
