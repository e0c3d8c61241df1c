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

// Package atlas renders the glyphs of a font face into a packed texture.
//
// The resulting Atlas implements fontasset.Source and can be passed to
// bakefont.Run.
package atlas

import (
	"errors"
	"image"
	"slices"
	"sort"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/bakefont/fontasset"
)

// Options control the layout of an atlas.
type Options struct {
	// Padding is the number of empty pixels between neighbouring glyphs.
	Padding int

	// Spacing is the extra horizontal space between characters.
	Spacing float32

	// DefaultChar is used for characters without a glyph.  If this is 0,
	// the atlas declares no default character.
	DefaultChar rune

	// LineSpacing is the distance between base lines.  If this is 0, the
	// height from the face metrics is used.
	LineSpacing int
}

// Atlas is a texture which holds the glyphs of a font face.
type Atlas struct {
	img         *image.RGBA
	glyphs      []fontasset.Glyph
	lineSpacing int
	spacing     float32
	defaultChar rune
	missing     []rune
}

// placed describes a glyph bitmap before it is drawn.
type placed struct {
	r       rune
	frame   image.Rectangle // bitmap relative to the dot
	advance fixed.Int26_6
	pos     image.Point // top-left corner in the atlas
}

// New renders the given characters of face into an atlas.  Characters
// the face cannot render are skipped, see Atlas.Missing.  The default
// character is added to the list if needed; it is an error if the face
// cannot render it.
func New(face font.Face, runes []rune, opt *Options) (*Atlas, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Padding < 0 {
		return nil, errors.New("negative padding")
	}

	a := &Atlas{
		lineSpacing: opt.LineSpacing,
		spacing:     opt.Spacing,
		defaultChar: opt.DefaultChar,
	}
	m := face.Metrics()
	if a.lineSpacing <= 0 {
		a.lineSpacing = m.Height.Ceil()
	}
	ascent := m.Ascent.Ceil()

	if a.defaultChar != 0 && !slices.Contains(runes, a.defaultChar) {
		runes = append(slices.Clone(runes), a.defaultChar)
	}

	var glyphs []*placed
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true

		b, advance, ok := face.GlyphBounds(r)
		if !ok {
			a.missing = append(a.missing, r)
			continue
		}
		frame := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
		glyphs = append(glyphs, &placed{r: r, frame: frame, advance: advance})
	}
	if a.defaultChar != 0 && slices.Contains(a.missing, a.defaultChar) {
		return nil, &fontasset.MissingDefaultGlyphError{Char: a.defaultChar}
	}

	size := packSquare(glyphs, opt.Padding)
	a.img = image.NewRGBA(image.Rectangle{Max: size})

	a.glyphs = make([]fontasset.Glyph, len(glyphs))
	for i, g := range glyphs {
		dot := fixed.P(g.pos.X-g.frame.Min.X, g.pos.Y-g.frame.Min.Y)
		dr, mask, maskp, _, ok := face.Glyph(dot, g.r)
		if ok {
			xdraw.DrawMask(a.img, dr, image.White, image.Point{}, mask, maskp, xdraw.Src)
		}

		w := g.frame.Dx()
		left := float32(g.frame.Min.X)
		adv := float32(g.advance) / 64
		a.glyphs[i] = fontasset.Glyph{
			Char: g.r,
			Bounds: fontasset.Rect{
				X:      g.pos.X,
				Y:      g.pos.Y,
				Width:  w,
				Height: g.frame.Dy(),
			},
			Cropping: fontasset.Rect{
				X:      0,
				Y:      ascent + g.frame.Min.Y,
				Width:  g.advance.Ceil(),
				Height: a.lineSpacing,
			},
			Kerning: fontasset.Kerning{
				Left:  left,
				Width: float32(w),
				Right: adv - left - float32(w),
			},
		}
	}

	return a, nil
}

// packSquare finds the row width for which the packed glyphs form the most
// nearly square rectangle.  On return, the glyph positions are set and the
// total size of the atlas is returned.
func packSquare(glyphs []*placed, padding int) image.Point {
	total := 0
	for _, g := range glyphs {
		total += g.frame.Dx() + padding
	}
	width := sort.Search(total, func(w int) bool {
		size := pack(glyphs, padding, w)
		return size.X >= size.Y
	})
	return pack(glyphs, padding, width)
}

// pack places the glyphs in rows.  A new row is started once a glyph would
// extend past maxWidth.  Each row is as high as its tallest glyph.
func pack(glyphs []*placed, padding, maxWidth int) image.Point {
	var size image.Point
	x, y, rowHeight := 0, 0, 0
	for _, g := range glyphs {
		w, h := g.frame.Dx(), g.frame.Dy()
		if x > 0 && x+w > maxWidth {
			x = 0
			y += rowHeight + padding
			rowHeight = 0
		}
		g.pos = image.Pt(x, y)
		size.X = max(size.X, x+w)
		size.Y = max(size.Y, y+h)
		rowHeight = max(rowHeight, h)
		x += w + padding
	}
	return size
}

// Missing returns the characters which were requested but could not be
// rendered.
func (a *Atlas) Missing() []rune {
	return a.missing
}

// Texture implements the fontasset.Source interface.
func (a *Atlas) Texture() *image.RGBA {
	return a.img
}

// Glyphs implements the fontasset.Source interface.
func (a *Atlas) Glyphs() []fontasset.Glyph {
	return a.glyphs
}

// LineSpacing implements the fontasset.Source interface.
func (a *Atlas) LineSpacing() int {
	return a.lineSpacing
}

// Spacing implements the fontasset.Source interface.
func (a *Atlas) Spacing() float32 {
	return a.spacing
}

// DefaultChar implements the fontasset.Source interface.
func (a *Atlas) DefaultChar() (rune, bool) {
	return a.defaultChar, a.defaultChar != 0
}
