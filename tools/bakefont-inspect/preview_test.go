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
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/bakefont/fontasset"
)

type testSource struct{}

func (testSource) Texture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.Alpha{A: 255})
	img.Set(0, 1, color.Alpha{A: 255})
	img.Set(2, 0, color.Alpha{A: 100})
	return img
}

func (testSource) Glyphs() []fontasset.Glyph {
	return []fontasset.Glyph{
		{Char: 'l', Bounds: fontasset.Rect{X: 0, Y: 0, Width: 1, Height: 2}, Cropping: fontasset.Rect{Y: 0, Width: 2, Height: 2}, Kerning: fontasset.Kerning{Width: 1, Right: 1}},
		{Char: '.', Bounds: fontasset.Rect{X: 2, Y: 0, Width: 1, Height: 1}, Cropping: fontasset.Rect{Y: 1, Width: 1, Height: 2}, Kerning: fontasset.Kerning{Width: 1}},
	}
}

func (testSource) LineSpacing() int          { return 2 }
func (testSource) Spacing() float32          { return 0 }
func (testSource) DefaultChar() (rune, bool) { return '.', true }

func TestPreview(t *testing.T) {
	f, err := fontasset.Disassemble(testSource{})
	if err != nil {
		t.Fatal(err)
	}

	got := previewTexture(f, 80)
	want := []string{"@ -", "@"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("texture (-want +got):\n%s", diff)
	}

	got = previewText(f, "l.lx", 80)
	want = []string{"@  @", "@ -@ -"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}

	got = previewText(f, "llll", 3)
	want = []string{"@ @", "@ @"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clipped text (-want +got):\n%s", diff)
	}
}

func TestPreviewBadBounds(t *testing.T) {
	f, err := fontasset.Disassemble(testSource{})
	if err != nil {
		t.Fatal(err)
	}
	f.Glyphs[0].Bounds = fontasset.Rect{X: 2, Y: 1, Width: 5, Height: 5}

	got := previewText(f, "l.", 40)
	want := []string{"", "  -"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}
}
