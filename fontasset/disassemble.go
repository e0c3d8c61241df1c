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

package fontasset

import (
	"errors"
	"fmt"
	"slices"
)

// Disassemble extracts the glyph metrics and the alpha channel of the
// texture from src.
//
// If src declares a default character which has no glyph, a
// *MissingDefaultGlyphError is returned.  If the bounds of a glyph do not
// lie inside the texture, a *GlyphBoundsError is returned.
func Disassemble(src Source) (*Font, error) {
	srcGlyphs := src.Glyphs()

	index := make(map[rune]int, len(srcGlyphs))
	for i, g := range srcGlyphs {
		if _, seen := index[g.Char]; seen {
			return nil, &DuplicateGlyphError{Char: g.Char}
		}
		index[g.Char] = i
	}
	glyphs := slices.Clone(srcGlyphs)

	f := &Font{
		Glyphs:      glyphs,
		LineSpacing: src.LineSpacing(),
		Spacing:     src.Spacing(),
		DefaultChar: SentinelChar,
		index:       index,
	}

	if r, ok := src.DefaultChar(); ok {
		idx, found := index[r]
		if !found {
			return nil, &MissingDefaultGlyphError{Char: r}
		}
		f.DefaultChar = r
		f.DefaultGlyph = glyphs[idx]
		f.HasDefault = true
	}

	img := src.Texture()
	if img != nil {
		b := img.Bounds()
		f.Width = b.Dx()
		f.Height = b.Dy()
		f.Alpha = make([]byte, 0, f.Width*f.Height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := img.Pix[img.PixOffset(b.Min.X, y):]
			for x := range f.Width {
				f.Alpha = append(f.Alpha, row[4*x+3])
			}
		}
	}

	for _, g := range glyphs {
		if !g.Bounds.Inside(f.Width, f.Height) {
			return nil, &GlyphBoundsError{Char: g.Char, Bounds: g.Bounds, Width: f.Width, Height: f.Height}
		}
	}

	return f, nil
}

// ErrMissingDefaultGlyph indicates that a font declares a default character
// for which it has no glyph.
var ErrMissingDefaultGlyph = errors.New("default character has no glyph")

// MissingDefaultGlyphError is returned by Disassemble if the source font
// declares a default character which is not in its glyph table.
type MissingDefaultGlyphError struct {
	Char rune
}

func (err *MissingDefaultGlyphError) Error() string {
	return fmt.Sprintf("default character %q (U+%04X) has no glyph", err.Char, err.Char)
}

// Is reports whether target is ErrMissingDefaultGlyph.
func (err *MissingDefaultGlyphError) Is(target error) bool {
	return target == ErrMissingDefaultGlyph
}

// DuplicateGlyphError is returned by Disassemble if the source font has
// more than one glyph for the same character.
type DuplicateGlyphError struct {
	Char rune
}

func (err *DuplicateGlyphError) Error() string {
	return fmt.Sprintf("duplicate glyph for %q (U+%04X)", err.Char, err.Char)
}

// GlyphBoundsError is returned by Disassemble if the bounds of a glyph
// extend past the texture or have negative size.
type GlyphBoundsError struct {
	Char          rune
	Bounds        Rect
	Width, Height int
}

func (err *GlyphBoundsError) Error() string {
	b := err.Bounds
	return fmt.Sprintf("glyph %q (U+%04X) at %d,%d+%dx%d is outside the %dx%d texture",
		err.Char, err.Char, b.X, b.Y, b.Width, b.Height, err.Width, err.Height)
}
