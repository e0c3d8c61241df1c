// seehuhn.de/go/bakefont - compile bitmap fonts into Go source
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rle

import (
	"bufio"
	"io"
)

// NewReader returns a reader which decodes run-length encoded data from r
// and yields the alpha samples.
func NewReader(r io.Reader) io.Reader {
	return &rlReader{br: bufio.NewReader(r)}
}

type rlReader struct {
	br    *bufio.Reader
	err   error
	pos   int
	count int
	value byte
}

// Read implements the io.Reader interface.
func (r *rlReader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}

	for len(p) > 0 {
		if r.count > 0 {
			count := min(r.count, len(p))
			for i := range count {
				p[i] = r.value
			}
			n += count
			r.count -= count
			p = p[count:]
			continue
		}

		b, err := r.br.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = nil
			} else {
				r.err = err
			}
			return n, err
		}
		start := r.pos
		r.pos++

		r.value = Expand(b)
		r.count = 1
		if b&runFlag != 0 {
			length, err := r.br.ReadByte()
			if err == io.EOF {
				err = &MalformedError{Pos: start}
			}
			if err != nil {
				r.err = err
				return n, err
			}
			r.pos++
			r.count += int(length)
		}
	}

	return n, nil
}
