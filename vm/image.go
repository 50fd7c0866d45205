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
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Image is an Intcode program image.
type Image []Cell

// Clone returns a copy of the image that does not share storage with i.
func (i Image) Clone() Image {
	if i == nil {
		return Image{}
	}
	c := make(Image, len(i))
	copy(c, i)
	return c
}

// String returns the canonical comma separated representation of the image.
func (i Image) String() string {
	var b strings.Builder
	for n, v := range i {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}

// Parse reads a program image from r. The image is expected as a single line
// of comma separated integers. White space around values is ignored, as is
// anything after the first line.
func Parse(r io.Reader) (Image, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "Parse")
	}
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, errors.New("Parse: empty image")
	}
	fields := bytes.Split(line, []byte{','})
	img := make(Image, len(fields))
	for n, f := range fields {
		v, err := strconv.ParseInt(string(bytes.TrimSpace(f)), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: cell %d", n)
		}
		img[n] = Cell(v)
	}
	return img, nil
}

// Load loads a program image from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return img, nil
}

// Save writes img to file fileName in canonical form.
func Save(fileName string, img Image) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Save")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "Save")
		}
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "Save")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if _, err = io.WriteString(w, img.String()); err != nil {
		return errors.Wrap(err, "Save")
	}
	_, err = w.Write([]byte{'\n'})
	return errors.Wrap(err, "Save")
}
