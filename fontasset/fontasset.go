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

// Package fontasset holds the in-memory representation of a bitmap font:
// glyph metrics together with the alpha channel of the glyph texture.
package fontasset

import (
	"image"
)

// SentinelChar is used as the default character of fonts which do not
// declare one.
const SentinelChar = '*'

// Rect is a rectangle in pixel coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Inside reports whether r lies inside a texture of the given size.
// Rectangles of zero area are inside any texture, as long as their
// width and height are not negative.
func (r Rect) Inside(width, height int) bool {
	if r.Width < 0 || r.Height < 0 {
		return false
	}
	if r.Width == 0 || r.Height == 0 {
		return true
	}
	return r.X >= 0 && r.Y >= 0 && r.X <= width-r.Width && r.Y <= height-r.Height
}

// Kerning holds the horizontal advance metrics of a glyph.
type Kerning struct {
	Left  float32 // left side bearing
	Width float32
	Right float32 // right side bearing
}

// Advance returns the total horizontal advance of the glyph.
func (k Kerning) Advance() float32 {
	return k.Left + k.Width + k.Right
}

// Glyph describes the layout of a single character.
type Glyph struct {
	Char rune

	// Bounds locates the glyph bitmap in the texture.
	Bounds Rect

	// Cropping describes how the glyph bitmap is placed inside the
	// glyph's advance box.
	Cropping Rect

	Kerning Kerning
}

// Font is a bitmap font, reduced to the information needed to reconstruct
// it from source code.
//
// A Font must not be modified after it has been created.
type Font struct {
	// Glyphs lists all glyphs in the order the source presented them.
	// Characters are unique.
	Glyphs []Glyph

	// Alpha holds the alpha channel of the texture, in row-major order.
	// It has length Width*Height.
	Alpha []byte

	Width, Height int

	LineSpacing int
	Spacing     float32

	// DefaultChar is used in place of characters which have no glyph.
	// If HasDefault is false, this is SentinelChar and DefaultGlyph is
	// the zero value.
	DefaultChar  rune
	DefaultGlyph Glyph
	HasDefault   bool

	index map[rune]int
}

// Lookup returns the glyph for character r.
func (f *Font) Lookup(r rune) (Glyph, bool) {
	if f.index == nil {
		for _, g := range f.Glyphs {
			if g.Char == r {
				return g, true
			}
		}
		return Glyph{}, false
	}
	idx, ok := f.index[r]
	if !ok {
		return Glyph{}, false
	}
	return f.Glyphs[idx], true
}

// Chars returns the characters of all glyphs, in glyph order.
func (f *Font) Chars() []rune {
	res := make([]rune, len(f.Glyphs))
	for i, g := range f.Glyphs {
		res[i] = g.Char
	}
	return res
}

// Source is implemented by font assets which can be disassembled.
type Source interface {
	// Texture returns the glyph texture.  The caller does not modify the
	// image.
	Texture() *image.RGBA

	// Glyphs returns the glyphs of the font, in the natural order of the
	// source.
	Glyphs() []Glyph

	LineSpacing() int
	Spacing() float32

	// DefaultChar returns the default character, if the font declares
	// one.
	DefaultChar() (rune, bool)
}
