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

package vm

// queue is an unbounded FIFO of Cells. Values are kept after being read, pos
// is the index of the next unread value.
type queue struct {
	values []Cell
	pos    int
}

func (q *queue) push(v ...Cell) {
	q.values = append(q.values, v...)
}

func (q *queue) pending() int {
	return len(q.values) - q.pos
}

func (q *queue) next() (Cell, bool) {
	if q.pos >= len(q.values) {
		return 0, false
	}
	v := q.values[q.pos]
	q.pos++
	return v, true
}

func (q *queue) last() (Cell, bool) {
	if len(q.values) == 0 {
		return 0, false
	}
	return q.values[len(q.values)-1], true
}

// Submit appends values to the input queue. It can be called at any time; if
// the instance is WaitingForInput, it goes back to Running. Submit does not
// execute any instruction: call Run to resume execution.
func (i *Instance) Submit(values ...Cell) {
	if len(values) == 0 {
		return
	}
	i.in.push(values...)
	if i.state == WaitingForInput {
		i.state = Running
	}
}

// HasOutput returns true if there are unread values in the output queue.
func (i *Instance) HasOutput() bool {
	return i.out.pending() > 0
}

// Pending returns the number of unread values in the output queue.
func (i *Instance) Pending() int {
	return i.out.pending()
}

// Take consumes the oldest unread output value. The second return value is
// false if there is no unread output.
func (i *Instance) Take() (Cell, bool) {
	return i.out.next()
}

// Drain consumes all unread output values and returns them in emission order.
func (i *Instance) Drain() []Cell {
	if i.out.pending() == 0 {
		return nil
	}
	v := make([]Cell, i.out.pending())
	copy(v, i.out.values[i.out.pos:])
	i.out.pos = len(i.out.values)
	return v
}

// Last returns the most recently emitted output value, whether it has been
// consumed or not. The second return value is false if the program never
// emitted anything.
func (i *Instance) Last() (Cell, bool) {
	return i.out.last()
}
