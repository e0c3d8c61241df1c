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

// Package rle implements a run-length encoding for 8-bit alpha data.
//
// Every alpha sample is quantized to 7 bits, which frees the most
// significant bit of each code byte to act as a run flag.  A code byte
// without the flag stands for a single sample.  A code byte with the flag
// is followed by a count byte, and stands for 1+count samples:
//
//	0qqqqqqq            one sample with value 2*q
//	1qqqqqqq cccccccc   1+c samples with value 2*q
//
// Decoded values above 252 are mapped to 255, so that the alpha values
// 254 and 255 both decode as fully opaque.
package rle

import (
	"fmt"
)

// MaxRun is the largest number of extra samples a single run can
// represent.
const MaxRun = 254

const runFlag = 0x80

// Record is the result of encoding a sequence of alpha samples.
type Record struct {
	// Data is the encoded byte stream.
	Data []byte

	// ByteCount is len(Data).
	ByteCount int

	// Pixels is the number of alpha samples represented by Data.
	Pixels int

	// UncompressedSize is the size in bytes of the same pixels stored as
	// 4-channel RGBA data.
	UncompressedSize int
}

// Encode run-length encodes the given alpha samples.
//
// The encoder is greedy: at each position it takes the longest run of
// equal quantized values, up to MaxRun extra samples.
func Encode(alpha []byte) *Record {
	var data []byte
	pixels := 0

	n := len(alpha)
	i := 0
	for i < n {
		q := Quantize(alpha[i])

		run := 0
		for k := 1; k <= MaxRun && i+k < n; k++ {
			if Quantize(alpha[i+k]) != q {
				break
			}
			run = k
		}

		if run > 0 {
			data = append(data, q|runFlag, byte(run))
		} else {
			data = append(data, q)
		}
		pixels += 1 + run
		i += 1 + run
	}

	if pixels != n {
		panic(fmt.Sprintf("rle: encoded %d pixels, but input has %d", pixels, n))
	}

	return &Record{
		Data:             data,
		ByteCount:        len(data),
		Pixels:           pixels,
		UncompressedSize: 4 * pixels,
	}
}

// Decode returns the alpha samples represented by data.
//
// If the last byte of data carries the run flag, the count byte is missing
// and a *MalformedError is returned.
func Decode(data []byte) ([]byte, error) {
	var out []byte
	for i := 0; i < len(data); i++ {
		b := data[i]
		val := Expand(b)
		count := 1
		if b&runFlag != 0 {
			if i+1 >= len(data) {
				return nil, &MalformedError{Pos: i}
			}
			i++
			count += int(data[i])
		}
		for range count {
			out = append(out, val)
		}
	}
	return out, nil
}

// DecodeRGBA is like Decode, but returns 4-channel pixel data.
// Each sample is stored as premultiplied white, i.e. with all four
// channels set to the decoded alpha value.
func DecodeRGBA(data []byte) ([]byte, error) {
	alpha, err := Decode(data)
	if err != nil {
		return nil, err
	}
	pix := make([]byte, 4*len(alpha))
	for i, a := range alpha {
		pix[4*i] = a
		pix[4*i+1] = a
		pix[4*i+2] = a
		pix[4*i+3] = a
	}
	return pix, nil
}

// Quantize maps an alpha value to the 7-bit range used in the encoding.
func Quantize(a byte) byte {
	return a / 2
}

// Expand maps a code byte back to an alpha value.  The run flag is
// ignored.
func Expand(b byte) byte {
	val := int(b&^runFlag) * 2
	if val > 252 {
		val = 255
	}
	return byte(val)
}

// MalformedError is returned when encoded data ends in the middle of a
// run.
type MalformedError struct {
	// Pos is the offset of the run byte which lacks its count.
	Pos int
}

func (err *MalformedError) Error() string {
	return fmt.Sprintf("rle: missing run length after byte %d", err.Pos)
}
