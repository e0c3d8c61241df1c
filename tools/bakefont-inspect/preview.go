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

package main

import (
	"strings"

	"seehuhn.de/go/bakefont/fontasset"
)

// shades maps alpha values to characters, from transparent to opaque.
const shades = " .:-=+*#%@"

func shade(alpha byte) byte {
	return shades[int(alpha)*len(shades)/256]
}

// previewTexture renders the glyph texture as text, cut off after width
// columns.
func previewTexture(f *fontasset.Font, width int) []string {
	w := min(f.Width, width)
	lines := make([]string, f.Height)
	line := make([]byte, w)
	for y := range f.Height {
		row := f.Alpha[y*f.Width:]
		for x := range w {
			line[x] = shade(row[x])
		}
		lines[y] = strings.TrimRight(string(line), " ")
	}
	return lines
}

// previewText renders a single line of text, cut off after width columns.
// Glyphs whose bounds lie outside the texture are left blank.
func previewText(f *fontasset.Font, s string, width int) []string {
	height := f.LineSpacing
	for _, g := range f.Glyphs {
		if g.Bounds.Inside(f.Width, f.Height) {
			height = max(height, g.Cropping.Y+g.Bounds.Height)
		}
	}
	canvas := make([][]byte, height)
	for y := range canvas {
		canvas[y] = []byte(strings.Repeat(" ", width))
	}

	var pen float32
	for i, r := range []rune(s) {
		g, ok := f.Lookup(r)
		if !ok {
			if !f.HasDefault {
				continue
			}
			g = f.DefaultGlyph
		}
		if i > 0 {
			pen += f.Spacing
		}
		x0 := int(pen + g.Kerning.Left)
		b := g.Bounds
		if !b.Inside(f.Width, f.Height) {
			b = fontasset.Rect{}
		}
		for dy := range b.Height {
			y := g.Cropping.Y + dy
			if y < 0 || y >= height {
				continue
			}
			row := f.Alpha[(b.Y+dy)*f.Width:]
			for dx := range b.Width {
				x := x0 + dx
				if x < 0 || x >= width {
					continue
				}
				if c := shade(row[b.X+dx]); c != ' ' {
					canvas[y][x] = c
				}
			}
		}
		pen += g.Kerning.Advance()
	}

	lines := make([]string, height)
	for y, row := range canvas {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return lines
}
