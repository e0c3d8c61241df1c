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

package bakefont

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/bakefont/artifact"
	"seehuhn.de/go/bakefont/atlas"
	"seehuhn.de/go/bakefont/fontasset"
)

func TestAssetName(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"Arial", "Arial"},
		{"Dejavu Sans Mono", "DejavuSansMono"},
		{"fonts/Go Regular.ttf", "GoRegular"},
		{"/usr/share/fonts/x.otf", "x"},
		{"a.b.c", "a.b"},
		{".hidden", ".hidden"},
		{"Ｇｏ\u00adMono", "GoMono"},
		{"ﬁne", "fine"},
		{"", "font"},
		{" ", "font"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := AssetName(tc.in); got != tc.out {
				t.Errorf("AssetName(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestRun(t *testing.T) {
	face, info, err := atlas.OpenFace(goregular.TTF, 12, 96)
	if err != nil {
		t.Fatal(err)
	}
	runes, err := atlas.Charset("ascii")
	if err != nil {
		t.Fatal(err)
	}
	a, err := atlas.New(face, runes, &atlas.Options{
		Padding:     1,
		DefaultChar: '?',
		LineSpacing: info.LineSpacing,
	})
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	dir := t.TempDir()
	err = Run(a, "Go Regular 12", dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	fname := filepath.Join(dir, "GoRegular12.go")
	code, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	art, err := artifact.Parse(code)
	if err != nil {
		t.Fatal(err)
	}
	if art.Package != "goregular12" {
		t.Errorf("wrong package %q", art.Package)
	}
	if len(art.Glyphs) != len(runes) || art.DefaultChar != '?' {
		t.Errorf("wrong glyph tables: %d glyphs, default %q", len(art.Glyphs), art.DefaultChar)
	}

	logged := buf.String()
	for _, want := range []string{"encoded texture", "wrote font", fname} {
		if !strings.Contains(logged, want) {
			t.Errorf("log output does not contain %q", want)
		}
	}
}

type brokenSource struct{}

func (brokenSource) Texture() *image.RGBA { return image.NewRGBA(image.Rect(0, 0, 1, 1)) }
func (brokenSource) Glyphs() []fontasset.Glyph {
	return []fontasset.Glyph{{Char: 'a'}}
}
func (brokenSource) LineSpacing() int          { return 1 }
func (brokenSource) Spacing() float32          { return 0 }
func (brokenSource) DefaultChar() (rune, bool) { return '?', true }

func TestRunMissingDefault(t *testing.T) {
	dir := t.TempDir()
	err := Run(brokenSource{}, "broken", dir, nil)
	if !errors.Is(err, fontasset.ErrMissingDefaultGlyph) {
		t.Fatalf("expected missing default glyph, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("files written: %v", entries)
	}
}

func TestRunStorageError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	src := &emptySource{}
	err := Run(src, "empty", dir, nil)
	if !errors.Is(err, artifact.ErrStorage) {
		t.Errorf("expected storage error, got %v", err)
	}
}

type emptySource struct{}

func (*emptySource) Texture() *image.RGBA      { return nil }
func (*emptySource) Glyphs() []fontasset.Glyph { return nil }
func (*emptySource) LineSpacing() int          { return 0 }
func (*emptySource) Spacing() float32          { return 0 }
func (*emptySource) DefaultChar() (rune, bool) { return 0, false }

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
