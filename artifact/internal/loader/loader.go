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

// Package loader contains the code which generated font files use to
// reconstruct a font at run time.
//
// Everything after the import block of this file is copied verbatim into
// each generated file.  The code must therefore only use the standard
// library, and must not use any of the names defined by the generated
// file itself (Load, width, height, defaultChar, lineSpacing, spacing,
// glyphChars, glyphBounds, glyphCroppings, glyphKernings, rleData).
package loader

import (
	"errors"
	"image"
)

// Device creates textures from decoded pixel data.  This is implemented by
// the rendering back end of the program using the font.
type Device interface {
	NewTexture(img *image.RGBA) (any, error)
}

// Rect is a rectangle in texture coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Kerning holds the horizontal advance metrics of a glyph.
type Kerning struct {
	Left  float32 // left side bearing
	Width float32
	Right float32 // right side bearing
}

// Glyph describes the layout of a single character.
type Glyph struct {
	Char     rune
	Bounds   Rect // location of the glyph in the texture
	Cropping Rect // placement of the bitmap inside the advance box
	Kerning  Kerning
}

// Font is a bitmap font.
type Font struct {
	// Texture is the value returned by Device.NewTexture.  If no device
	// was used, this is the same as Image.
	Texture any

	// Image holds the glyph texture.  Glyphs are drawn in premultiplied
	// white.
	Image *image.RGBA

	Glyphs      []Glyph
	LineSpacing int
	Spacing     float32
	DefaultChar rune

	index map[rune]int
}

// Glyph returns the glyph for character r.  If the font has no glyph for
// r, the glyph for the default character is returned instead.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if i, ok := f.index[r]; ok {
		return f.Glyphs[i], true
	}
	if i, ok := f.index[f.DefaultChar]; ok {
		return f.Glyphs[i], true
	}
	return Glyph{}, false
}

// Measure returns the size of the text s.  Newline characters start a new
// line.  Characters without a glyph are measured using the glyph of the
// default character.  They are skipped only if the font has no glyph for
// the default character either.
func (f *Font) Measure(s string) (w, h float32) {
	if s == "" {
		return 0, 0
	}

	var x float32
	lines := 1
	first := true
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n':
			lines++
			x = 0
			first = true
			continue
		}

		g, ok := f.Glyph(r)
		if !ok {
			continue
		}
		k := g.Kerning
		if first {
			x = max(k.Left, 0)
			first = false
		} else {
			x += f.Spacing + k.Left
		}
		x += k.Width
		w = max(w, x+max(k.Right, 0))
		x += k.Right
	}
	return w, float32(lines * f.LineSpacing)
}

func newFont(dev Device, w, h int, data []byte, chars []rune, bounds, croppings []Rect, kernings []Kerning, lineHeight int, gap float32, def rune) (*Font, error) {
	n := len(chars)
	if len(bounds) != n || len(croppings) != n || len(kernings) != n {
		return nil, errors.New("inconsistent glyph tables")
	}

	pix := decodeRLE(data, 4*w*h)
	if len(pix) != 4*w*h {
		return nil, errors.New("corrupted pixel data")
	}
	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}

	f := &Font{
		Texture:     img,
		Image:       img,
		Glyphs:      make([]Glyph, n),
		LineSpacing: lineHeight,
		Spacing:     gap,
		DefaultChar: def,
		index:       make(map[rune]int, n),
	}
	for i, r := range chars {
		f.Glyphs[i] = Glyph{
			Char:     r,
			Bounds:   bounds[i],
			Cropping: croppings[i],
			Kerning:  kernings[i],
		}
		f.index[r] = i
	}

	if dev != nil {
		tex, err := dev.NewTexture(img)
		if err != nil {
			return nil, err
		}
		f.Texture = tex
	}
	return f, nil
}

// decodeRLE expands run-length encoded alpha values into RGBA pixels.
//
// Each code byte holds an alpha value divided by two.  If the high bit is
// set, the next byte gives the number of additional repetitions.
func decodeRLE(data []byte, size int) []byte {
	pix := make([]byte, 0, size)
	for i := 0; i < len(data); i++ {
		val := int(data[i]&0x7F) * 2
		if val > 252 {
			val = 255
		}

		count := 1
		if data[i]&0x80 != 0 {
			i++
			count += int(data[i])
		}

		v := byte(val)
		for range count {
			pix = append(pix, v, v, v, v)
		}
	}
	return pix
}
