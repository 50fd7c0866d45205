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

package network_test

import (
	"context"
	"fmt"

	"github.com/db47h/intcode/network"
	"github.com/db47h/intcode/vm"
)

func ExamplePipeline() {
	v, err := network.Pipeline(amp43210, []vm.Cell{4, 3, 2, 1, 0}, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// Output:
	// 43210
}

func ExampleSearch() {
	r, err := network.Search(context.Background(), ring139629729, []vm.Cell{5, 6, 7, 8, 9}, true)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Signal, r.Phases)

	// Output:
	// 139629729 [9 8 7 6 5]
}
