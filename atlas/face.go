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

package atlas

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
)

// Info describes a font file opened by OpenFace.
type Info struct {
	FamilyName     string
	PostScriptName string
	IsFixedPitch   bool

	// Ascent, Descent and LineGap are given in pixels.  Descent is
	// negative for fonts which extend below the base line.
	Ascent, Descent, LineGap float64

	// LineSpacing is the distance between base lines, rounded up to whole
	// pixels.
	LineSpacing int

	// BBox is the font bounding box in pixels, with the y-axis pointing up.
	BBox rect.Rect
}

// OpenFace parses a TrueType or OpenType font and returns a face of the
// given size.  Size is given in points, dpi is the resolution of the
// output device.
//
// The returned face reports characters without a glyph in the font as
// missing, instead of drawing the .notdef glyph.
func OpenFace(data []byte, size, dpi float64) (font.Face, *Info, error) {
	if size <= 0 || dpi <= 0 {
		return nil, nil, fmt.Errorf("invalid font size %gpt at %g dpi", size, dpi)
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, nil, err
	}

	sf, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	ppem := size * dpi / 72
	q := ppem / float64(sf.UnitsPerEm)
	bbox := sf.FontBBoxPDF() // in 1/1000 em
	info := &Info{
		FamilyName:     sf.FamilyName,
		PostScriptName: sf.PostScriptName(),
		IsFixedPitch:   sf.IsFixedPitch(),
		Ascent:         toPixels(sf.Ascent, q),
		Descent:        toPixels(sf.Descent, q),
		LineGap:        toPixels(sf.LineGap, q),
		BBox: rect.Rect{
			LLx: bbox.LLx * ppem / 1000,
			LLy: bbox.LLy * ppem / 1000,
			URx: bbox.URx * ppem / 1000,
			URy: bbox.URy * ppem / 1000,
		},
	}
	info.LineSpacing = int(math.Ceil(info.Ascent - info.Descent + info.LineGap))

	var cover cmap.Subtable
	if sf.CMapTable != nil {
		cover, err = sf.CMapTable.GetBest()
		if err != nil {
			return nil, nil, err
		}
	}
	return &coveredFace{Face: face, cover: cover}, info, nil
}

func toPixels(x funit.Int16, q float64) float64 {
	return float64(x) * q
}

// coveredFace hides characters which are not in the character map of the
// font.
type coveredFace struct {
	font.Face
	cover cmap.Subtable
}

func (f *coveredFace) has(r rune) bool {
	return f.cover == nil || f.cover.Lookup(r) != 0
}

func (f *coveredFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	if !f.has(r) {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	return f.Face.Glyph(dot, r)
}

func (f *coveredFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	if !f.has(r) {
		return fixed.Rectangle26_6{}, 0, false
	}
	return f.Face.GlyphBounds(r)
}

func (f *coveredFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if !f.has(r) {
		return 0, false
	}
	return f.Face.GlyphAdvance(r)
}

var builtin = map[string][]byte{
	"goregular":    goregular.TTF,
	"gobold":       gobold.TTF,
	"goitalic":     goitalic.TTF,
	"gobolditalic": gobolditalic.TTF,
	"gomedium":     gomedium.TTF,
	"gomono":       gomono.TTF,
	"gomonobold":   gomonobold.TTF,
	"gosmallcaps":  gosmallcaps.TTF,
}

// Builtin returns the data of one of the Go fonts, for example "goregular"
// or "gomono".
func Builtin(name string) ([]byte, bool) {
	data, ok := builtin[name]
	return data, ok
}

// BuiltinNames returns the names accepted by Builtin, in alphabetical order.
func BuiltinNames() []string {
	return sortedKeys(builtin)
}
