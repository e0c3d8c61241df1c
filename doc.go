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

// Package bakefont compiles bitmap fonts into Go source code.
//
// A font is disassembled into its glyph metrics and the alpha channel of
// its glyph texture.  The alpha channel is run-length encoded, and the
// result is written as a Go file which rebuilds the font when its Load
// function is called.  The generated file only depends on the standard
// library, so that programs can carry fonts without an asset pipeline.
//
// A typical use, starting from a TrueType font:
//
//	face, info, err := atlas.OpenFace(data, 16, 72)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runes, _ := atlas.Charset("ascii")
//	a, err := atlas.New(face, runes, &atlas.Options{
//	    DefaultChar: '?',
//	    LineSpacing: info.LineSpacing,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = bakefont.Run(a, "Go16", "internal/fonts", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// This writes the file internal/fonts/Go16.go.  The generated code
// provides the following declarations:
//
//	Load(dev Device) (*Font, error)
//	type Device interface { NewTexture(img *image.RGBA) (any, error) }
//	type Font struct { ... }
//	func (f *Font) Glyph(r rune) (Glyph, bool)
//	func (f *Font) Measure(s string) (w, h float32)
//
// The sub-packages implement the individual steps: [rle] holds the pixel
// codec, [fontasset] the font model, [artifact] the code generator, and
// [atlas] renders font faces into textures.
package bakefont
