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

import (
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// snapshot is the serialized form of an Instance.
type snapshot struct {
	Version  int           `cbor:"1,keyasint"`
	Image    []Cell        `cbor:"2,keyasint"`
	Ext      map[Cell]Cell `cbor:"3,keyasint,omitempty"`
	PC       Cell          `cbor:"4,keyasint"`
	State    State         `cbor:"5,keyasint"`
	In       []Cell        `cbor:"6,keyasint,omitempty"`
	InPos    int           `cbor:"7,keyasint"`
	Out      []Cell        `cbor:"8,keyasint,omitempty"`
	OutPos   int           `cbor:"9,keyasint"`
	InsCount int64         `cbor:"10,keyasint"`
	Name     string        `cbor:"11,keyasint,omitempty"`
}

const snapshotVersion = 1

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "vm: CBOR encoding mode"))
	}
	cborEncMode = em
}

// MarshalBinary serializes the complete VM state: memory, PC, execution state
// and both I/O queues. This is typically used to suspend a VM that is
// WaitingForInput and resume it later with Restore.
func (i *Instance) MarshalBinary() ([]byte, error) {
	s := snapshot{
		Version:  snapshotVersion,
		Image:    i.mem.cells,
		Ext:      i.mem.ext,
		PC:       i.pc,
		State:    i.state,
		In:       i.in.values,
		InPos:    i.in.pos,
		Out:      i.out.values,
		OutPos:   i.out.pos,
		InsCount: i.insCount,
		Name:     i.name,
	}
	b, err := cborEncMode.Marshal(&s)
	return b, errors.Wrap(err, "MarshalBinary")
}

// Restore creates a new Instance from data returned by MarshalBinary.
// Options are applied after the state has been restored.
func Restore(data []byte, opts ...Option) (*Instance, error) {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "Restore")
	}
	if s.Version != snapshotVersion {
		return nil, errors.Errorf("Restore: unsupported snapshot version %d", s.Version)
	}
	switch {
	case s.State < Running || s.State > Halted:
		return nil, errors.Errorf("Restore: invalid state %d", s.State)
	case s.InPos < 0 || s.InPos > len(s.In), s.OutPos < 0 || s.OutPos > len(s.Out):
		return nil, errors.New("Restore: queue position out of range")
	}
	for a, v := range s.Ext {
		if a < Cell(len(s.Image)) || v == 0 {
			return nil, errors.Errorf("Restore: invalid extended memory cell %d: %d", a, v)
		}
	}
	i, err := New(nil, Name(s.Name))
	if err != nil {
		return nil, err
	}
	i.mem.cells = s.Image
	if i.mem.cells == nil {
		i.mem.cells = []Cell{}
	}
	if len(s.Ext) > 0 {
		i.mem.ext = s.Ext
	}
	i.pc = s.PC
	i.state = s.State
	i.in = queue{s.In, s.InPos}
	i.out = queue{s.Out, s.OutPos}
	i.insCount = s.InsCount
	if err = i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// SaveSnapshot writes a snapshot of the VM to file fileName.
func (i *Instance) SaveSnapshot(fileName string) error {
	b, err := i.MarshalBinary()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(fileName, b, 0644), "SaveSnapshot")
}

// LoadSnapshot restores a VM from a snapshot file written by SaveSnapshot.
func LoadSnapshot(fileName string, opts ...Option) (*Instance, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "LoadSnapshot")
	}
	i, err := Restore(b, opts...)
	return i, errors.Wrap(err, fileName)
}
