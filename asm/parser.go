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

package asm

import (
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stInstr = iota // expecting an instruction, label or directive
	stArg          // expecting an instruction operand
	stDat          // .dat argument
	stOrg          // .org argument
	stEqu          // .equ value
)

type parser struct {
	i       vm.Image
	pc      int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	state   int
	ins     vm.Instruction   // instruction being assembled
	opPos   scanner.Position // and its position
	insPC   int              // address of its instruction word
	argN    int              // number of operands parsed so far
	errs    ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, 0)
	}
	p.i[p.pc] = v
	p.pc++
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{labelSite{p.s.Position, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

// value converts s to an integer. It returns false if s is neither an integer
// literal, a character literal nor a defined constant.
func (p *parser) value(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error(p.s.Position, "invalid character literal "+s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// operand compiles an instruction operand.
func (p *parser) operand(s string) {
	mode := vm.Position
	if len(s) > 1 && s[0] == '#' {
		mode = vm.Immediate
		s = s[1:]
	}
	p.argN++
	if mode == vm.Immediate {
		if p.argN == p.ins.Op.Target() {
			p.error(p.s.Position, "immediate operand used as write target: #"+s)
		}
		p.ins.Modes[p.argN-1] = mode
		p.i[p.insPC] = p.ins.Encode()
	}
	if v, ok := p.value(s); ok {
		p.write(v)
	} else {
		p.useLabel(s)
		p.write(0)
	}
	if p.argN == p.ins.Op.Args() {
		p.state = stInstr
	}
}

// instruction starts compiling an instruction with opcode op.
func (p *parser) instruction(op vm.Opcode) {
	p.ins, p.opPos, p.insPC, p.argN = vm.Instruction{Op: op}, p.s.Position, p.pc, 0
	p.write(p.ins.Encode())
	if op.Args() > 0 {
		p.state = stArg
	}
}

func (p *parser) missingOperands() {
	p.error(p.opPos, "missing operand for "+p.ins.Op.String())
	p.state = stInstr
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Image, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); len(p.errs) < maxErrors && tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()

		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		switch p.state {
		case stArg:
			if _, isOp := vm.LookupOpcode(s); isOp || s[0] == ':' || s[0] == '.' {
				p.missingOperands()
				break
			}
			p.operand(s)
			continue
		case stDat:
			if v, ok := p.value(s); ok {
				p.write(v)
			} else {
				p.useLabel(s)
				p.write(0)
			}
			p.state = stInstr
			continue
		case stOrg:
			if v, ok := p.value(s); ok && v >= 0 {
				p.pc = int(v)
			} else {
				p.error(p.s.Position, ".org: expected a positive integer or constant, got "+s)
			}
			p.state = stInstr
			continue
		case stEqu:
			if v, ok := p.value(s); ok {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			} else {
				p.error(p.s.Position, ".equ: expected an integer or constant, got "+s)
			}
			p.state = stInstr
			continue
		}

		// stInstr
		switch s[0] {
		case ':':
			n := s[1:]
			if len(n) == 0 {
				p.error(p.s.Position, "empty label name")
				break
			}
			if cst, ok := p.consts[n]; ok {
				p.error(p.s.Position, "label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
				break
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.error(p.s.Position, "label redefinition: "+n+", previous definition here: "+l.pos.String())
					break
				}
				l.address = p.pc
				l.pos = p.s.Position
			} else {
				p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
			}
		case '.':
			switch s {
			case ".org":
				p.state = stOrg
			case ".dat":
				p.state = stDat
			case ".equ":
				if p.s.Scan() != scanner.Ident {
					p.error(p.s.Position, ".equ: expected identifier, got "+p.s.TokenText())
					break
				}
				p.cstName = p.s.TokenText()
				if l, ok := p.labels[p.cstName]; ok {
					p.error(p.s.Position, ".equ: redefinition of "+p.cstName+", previously defined or used as a label here: "+l.pos.String())
					break
				}
				p.cstPos = p.s.Position
				p.state = stEqu
			default:
				p.error(p.s.Position, "unknown directive: "+s)
			}
		default:
			if op, ok := vm.LookupOpcode(s); ok {
				p.instruction(op)
			} else {
				p.error(p.s.Position, "expected instruction, label or directive, got "+s)
			}
		}
	}

	switch p.state {
	case stArg:
		p.missingOperands()
	case stDat, stOrg, stEqu:
		p.error(p.s.Pos(), "missing directive argument")
	}

	// resolve labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		p.errs.sort()
		return nil, p.errs
	}
	if p.i == nil {
		p.i = vm.Image{}
	}
	return p.i, nil
}
