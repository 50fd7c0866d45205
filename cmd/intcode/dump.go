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
	"strconv"

	"github.com/db47h/intcode/vm"
)

// writeOutput writes output values to w, one per line. In ASCII mode, values
// in the 0-127 range are written as is and other values in decimal on their
// own line.
func writeOutput(w *bufio.Writer, values []vm.Cell, ascii bool) error {
	for n, v := range values {
		if ascii && v >= 0 && v < 128 {
			w.WriteByte(byte(v))
			continue
		}
		if ascii && n > 0 && values[n-1] >= 0 && values[n-1] < 128 && values[n-1] != '\n' {
			w.WriteByte('\n')
		}
		w.WriteString(strconv.FormatInt(int64(v), 10))
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
