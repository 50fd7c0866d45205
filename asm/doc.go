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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	operands	description
//	------	---	--------	------------------------------------------------
//	1	add	a b dst		dst = a + b
//	2	mul	a b dst		dst = a * b
//	3	in	dst		read a value from the input queue into dst
//	4	out	a		append a to the output queue
//	5	jt	c addr		jump to addr if c != 0
//	6	jf	c addr		jump to addr if c == 0
//	7	lt	a b dst		dst = 1 if a < b, else 0
//	8	eq	a b dst		dst = 1 if a == b, else 0
//	99	hlt			halt
//
// Operands:
//
// An operand prefixed with '#' is an immediate operand: its value is used as
// is. Any other operand is a position operand: its value is the address of the
// cell to read or write. Destination operands (dst) cannot be immediate.
//
//	add #2 #3 result	( result = 2 + 3 )
//	add result #1 result	( result = result + 1 )
//	out result		( outputs the value stored at result )
//	out #42			( outputs 42 )
//	jt #1 #loop		( unconditional jump to loop )
//	jf flag #loop		( jump to loop if the value at flag is 0 )
//
// The assembler takes care of encoding parameter modes in the instruction word:
// "add #2 result result" compiles to 101, then 2, then the address of result,
// twice.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not)
//
// Literals and label/const identifiers:
//
// Input is split at white space (space, tab or new line) into tokens. An
// operand value can be:
//
//	- an integer literal, in any form accepted by strconv.ParseInt with base 0.
//	- a Go character literal between single quotes.
//	- the name of a constant defined with .equ.
//	- any other token is a label name.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// operands anywhere an address or a value is expected (without the ':'
// prefix). Forward references are fine.
//
//	jt #1 #start	( jump to start )
//	:start
//	in value	( value is a data cell defined below )
//	out value
//	hlt
//	:value .dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer value, named constant
// or character literal.
//
//	.org <value>
//
// Will place the next instruction at the address specified by the given integer
// literal or named constant.
//
//	.dat <value>
//
// Will compile the specified integer value, named constant, character literal
// or label address as-is. This is used for data storage:
//
//	:table	.dat 65
//		.dat 'B'
package asm
