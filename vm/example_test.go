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

package vm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/vm"
)

// Shows how to drive a program that blocks on input.
func ExampleInstance_Run() {
	// multiply input by 3 until a 0 is read.
	img, err := vm.Parse(strings.NewReader("3,20,1006,20,14,1002,20,3,21,4,21,1105,1,0,99"))
	if err != nil {
		panic(err)
	}
	i, err := vm.New(img)
	if err != nil {
		panic(err)
	}
	for _, in := range []vm.Cell{1, 2, 14, 0} {
		if err = i.Run(); err != nil {
			panic(err)
		}
		fmt.Println(i.State(), i.Drain())
		i.Submit(in)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.State(), i.Drain())

	// Output:
	// waiting for input []
	// waiting for input [3]
	// waiting for input [6]
	// waiting for input [42]
	// halted []
}

func ExampleInstance_Dump() {
	i, _ := vm.New(vm.Image{1002, 6, 7, 100, 4, 100, 99}, vm.Input(7))
	if err := i.Run(); err != nil {
		panic(err)
	}
	i.Dump(os.Stdout)

	// Output:
	// state: halted
	// pc: 6
	// instructions: 3
	// memory: 1002,6,7,100,4,100,99
	// 100: 693
}
