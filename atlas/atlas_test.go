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
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/bakefont/fontasset"
)

func TestCharset(t *testing.T) {
	testCases := []struct {
		list string
		want []rune
	}{
		{"", nil},
		{"a-e", []rune("abcde")},
		{"c-e, a", []rune("acde")},
		{"U+0041-U+0043,B", []rune("ABC")},
		{"-,x", []rune("-x")},
		{"ä", []rune("ä")},
	}
	for _, tc := range testCases {
		t.Run(tc.list, func(t *testing.T) {
			got, err := Charset(tc.list)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Charset(%q) (-want +got):\n%s", tc.list, diff)
			}
		})
	}
}

func TestCharsetNamed(t *testing.T) {
	ascii, err := Charset("ascii")
	if err != nil {
		t.Fatal(err)
	}
	if len(ascii) != 95 || ascii[0] != ' ' || ascii[94] != '~' {
		t.Errorf("wrong ascii set: %q", string(ascii))
	}

	latin1, err := Charset("latin1")
	if err != nil {
		t.Fatal(err)
	}
	// U+00A0 to U+00FF, except for the soft hyphen
	if len(latin1) != 95+95 {
		t.Errorf("latin1 has %d characters", len(latin1))
	}

	koi8r, err := Charset("koi8r")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, r := range koi8r {
		if r == 'Ж' {
			found = true
		}
	}
	if !found {
		t.Error("koi8r does not contain Cyrillic letters")
	}

	for _, name := range CharsetNames() {
		if _, err := Charset(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestCharsetErrors(t *testing.T) {
	for _, list := range []string{"z-a", "U+ZZZZ", "abc", "U+D800", "nosuchset"} {
		if _, err := Charset(list); err == nil {
			t.Errorf("no error for %q", list)
		}
	}
}

func openTestFace(t *testing.T, data []byte) (font.Face, *Info) {
	t.Helper()
	face, info, err := OpenFace(data, 16, 72)
	if err != nil {
		t.Fatal(err)
	}
	return face, info
}

func TestOpenFace(t *testing.T) {
	_, info := openTestFace(t, goregular.TTF)
	if info.FamilyName != "Go" {
		t.Errorf("wrong family name %q", info.FamilyName)
	}
	if info.IsFixedPitch {
		t.Error("Go Regular reported as fixed pitch")
	}
	if info.Ascent <= 0 || info.Descent >= 0 {
		t.Errorf("wrong vertical metrics %g %g", info.Ascent, info.Descent)
	}
	if info.BBox.LLy >= 0 || info.BBox.URy <= info.Ascent/2 || info.BBox.URx <= info.BBox.LLx {
		t.Errorf("implausible bounding box %v", info.BBox)
	}
	if info.LineSpacing < 16 || info.LineSpacing > 24 {
		t.Errorf("unexpected line spacing %d", info.LineSpacing)
	}

	_, info = openTestFace(t, gomono.TTF)
	if !info.IsFixedPitch {
		t.Error("Go Mono not reported as fixed pitch")
	}

	if _, _, err := OpenFace([]byte("not a font"), 12, 72); err == nil {
		t.Error("invalid font data accepted")
	}
	if _, _, err := OpenFace(goregular.TTF, 0, 72); err == nil {
		t.Error("zero font size accepted")
	}
}

func TestNew(t *testing.T) {
	face, info := openTestFace(t, goregular.TTF)
	runes, err := Charset("ascii")
	if err != nil {
		t.Fatal(err)
	}

	a, err := New(face, runes, &Options{Padding: 1, DefaultChar: '?', LineSpacing: info.LineSpacing})
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Missing()) != 0 {
		t.Errorf("missing characters %q", string(a.Missing()))
	}
	glyphs := a.Glyphs()
	if len(glyphs) != len(runes) {
		t.Fatalf("got %d glyphs, want %d", len(glyphs), len(runes))
	}

	img := a.Texture()
	size := img.Bounds().Size()
	if size.X < size.Y {
		t.Errorf("atlas %dx%d is taller than wide", size.X, size.Y)
	}

	var rects []image.Rectangle
	for i, g := range glyphs {
		if g.Char != runes[i] {
			t.Errorf("glyph %d is %q, want %q", i, g.Char, runes[i])
		}
		b := g.Bounds
		r := image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
		if !r.In(img.Bounds()) {
			t.Errorf("glyph %q at %v is outside the atlas", g.Char, r)
		}
		for _, other := range rects {
			if r.Overlaps(other) {
				t.Errorf("glyph %q at %v overlaps %v", g.Char, r, other)
			}
		}
		rects = append(rects, r)

		adv, _ := face.GlyphAdvance(g.Char)
		if got, want := g.Kerning.Advance(), float32(adv)/64; got < want-1e-3 || got > want+1e-3 {
			t.Errorf("glyph %q: advance %g, want %g", g.Char, got, want)
		}
		if g.Cropping.Height != info.LineSpacing {
			t.Errorf("glyph %q: wrong cropping %v", g.Char, g.Cropping)
		}
	}

	for i := 0; i < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4]
		if p[0] != p[3] || p[1] != p[3] || p[2] != p[3] {
			t.Fatalf("pixel %v is not premultiplied white", p)
		}
	}

	space := glyphs[0]
	if space.Char != ' ' || space.Bounds.Width != 0 {
		t.Errorf("unexpected space glyph %v", space)
	}
	letter := glyphs['A'-' ']
	b := letter.Bounds
	var ink int
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			ink += int(img.RGBAAt(x, y).A)
		}
	}
	if ink == 0 {
		t.Error("no pixels drawn for 'A'")
	}

	f, err := fontasset.Disassemble(a)
	if err != nil {
		t.Fatal(err)
	}
	if f.DefaultGlyph.Char != '?' {
		t.Errorf("wrong default glyph %v", f.DefaultGlyph)
	}
}

func TestNewMissing(t *testing.T) {
	face, _ := openTestFace(t, goregular.TTF)

	a, err := New(face, []rune{'a', '😀', 'a', 'b'}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]rune{'😀'}, a.Missing()); diff != "" {
		t.Errorf("missing (-want +got):\n%s", diff)
	}
	if len(a.Glyphs()) != 2 {
		t.Errorf("got %d glyphs", len(a.Glyphs()))
	}
	if _, ok := a.DefaultChar(); ok {
		t.Error("unexpected default character")
	}

	_, err = New(face, []rune{'a'}, &Options{DefaultChar: '😀'})
	if !errors.Is(err, fontasset.ErrMissingDefaultGlyph) {
		t.Errorf("expected missing default glyph, got %v", err)
	}
}

func TestNewEmpty(t *testing.T) {
	face, _ := openTestFace(t, goregular.TTF)
	a, err := New(face, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Texture().Bounds().Empty() || len(a.Glyphs()) != 0 {
		t.Error("empty atlas is not empty")
	}
}

func TestBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		data, ok := Builtin(name)
		if !ok || len(data) == 0 {
			t.Errorf("builtin font %q not found", name)
		}
	}
	if _, ok := Builtin("comic sans"); ok {
		t.Error("unexpected builtin font")
	}
}
