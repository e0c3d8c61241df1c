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

// Package artifact writes bitmap fonts as self-contained Go source files.
//
// A generated file forms a package of its own.  It depends only on the
// standard library and contains, in this order: the font metrics as
// constants, a Load function together with the code needed to rebuild the
// font, the glyph tables, and the run-length encoded glyph texture.
package artifact

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"unicode/utf8"

	"seehuhn.de/go/bakefont/fontasset"
	"seehuhn.de/go/bakefont/rle"
)

// Items per line in the generated tables.
const (
	charsPerLine   = 50
	rectsPerLine   = 10
	kerningPerLine = 10
	bytesPerLine   = 200
)

// Options control the generated source code.
type Options struct {
	// Package is the package name used in the generated file.  If this is
	// empty, the name is derived from the asset name.
	Package string

	// Generator is mentioned in the "Code generated" comment at the top
	// of the file.  The default is "bakefont".
	Generator string
}

// Emit writes the font f as Go source code to the file
// "<assetName>.go" inside dir.
//
// The file contents are generated in memory and written to a temporary
// file, which then replaces the destination.  An existing file is left
// unchanged if writing fails.  Errors which occur while writing the file
// are reported as a *StorageError.
func Emit(assetName, dir string, f *fontasset.Font, opt *Options) error {
	return EmitEncoded(assetName, dir, f, rle.Encode(f.Alpha), opt)
}

// EmitEncoded is like Emit, but uses rec as the run-length encoding of
// the texture.  The record must have been obtained from rle.Encode(f.Alpha).
func EmitEncoded(assetName, dir string, f *fontasset.Font, rec *rle.Record, opt *Options) error {
	body, err := GenerateEncoded(assetName, f, rec, opt)
	if err != nil {
		return err
	}

	fname := filepath.Join(dir, assetName+".go")
	err = writeFile(fname, body)
	if err != nil {
		return &StorageError{Path: fname, Err: err}
	}
	return nil
}

func writeFile(fname string, body []byte) error {
	dir, base := filepath.Dir(fname), filepath.Base(fname)
	fd, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpName := fd.Name()

	_, err = fd.Write(body)
	if err == nil {
		err = fd.Chmod(0o644)
	}
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err == nil {
		err = os.Rename(tmpName, fname)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Generate returns the Go source code for the font f.
func Generate(assetName string, f *fontasset.Font, opt *Options) ([]byte, error) {
	return GenerateEncoded(assetName, f, rle.Encode(f.Alpha), opt)
}

// GenerateEncoded is like Generate, but uses rec as the run-length encoding
// of the texture.
func GenerateEncoded(assetName string, f *fontasset.Font, rec *rle.Record, opt *Options) ([]byte, error) {
	if opt == nil {
		opt = &Options{}
	}
	pkg := opt.Package
	if pkg == "" {
		pkg = PackageName(assetName)
	}
	if !isPackageName(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	generator := opt.Generator
	if generator == "" {
		generator = "bakefont"
	}

	if len(f.Alpha) != f.Width*f.Height {
		return nil, fmt.Errorf("texture has %d samples, expected %dx%d",
			len(f.Alpha), f.Width, f.Height)
	}
	if rec.Pixels != len(f.Alpha) {
		return nil, fmt.Errorf("encoded texture has %d pixels, expected %d",
			rec.Pixels, len(f.Alpha))
	}
	if !isFinite(f.Spacing) {
		return nil, &NonFiniteError{Field: "spacing"}
	}
	for _, g := range f.Glyphs {
		if !utf8.ValidRune(g.Char) {
			return nil, fmt.Errorf("invalid character %d", g.Char)
		}
		if !g.Bounds.Inside(f.Width, f.Height) {
			return nil, &fontasset.GlyphBoundsError{
				Char: g.Char, Bounds: g.Bounds, Width: f.Width, Height: f.Height,
			}
		}
		k := g.Kerning
		if !isFinite(k.Left) || !isFinite(k.Width) || !isFinite(k.Right) {
			return nil, &NonFiniteError{Field: "kerning", Char: g.Char}
		}
	}

	rt, err := runtimeCode()
	if err != nil {
		return nil, err
	}

	w := &bytes.Buffer{}
	fmt.Fprintf(w, "// Code generated by %s. DO NOT EDIT.\n\n", generator)
	fmt.Fprintf(w, "// Package %s contains the %s font.\n", pkg, assetName)
	fmt.Fprintln(w, "//")
	fmt.Fprintln(w, "// The font is not loaded through an asset pipeline.  Call Load to")
	fmt.Fprintln(w, "// reconstruct it; the caller owns the resulting texture and must release")
	fmt.Fprintln(w, "// it when it is no longer needed.")
	fmt.Fprintf(w, "package %s\n\n", pkg)
	if len(rt.imports) > 0 {
		fmt.Fprintln(w, "import (")
		for _, path := range rt.imports {
			fmt.Fprintf(w, "\t%q\n", path)
		}
		fmt.Fprintln(w, ")")
		fmt.Fprintln(w)
	}

	// 1. scalar constants
	fmt.Fprintln(w, "const (")
	fmt.Fprintf(w, "\twidth = %d\n", f.Width)
	fmt.Fprintf(w, "\theight = %d\n", f.Height)
	fmt.Fprintf(w, "\tdefaultChar = %s\n", formatRune(f.DefaultChar))
	fmt.Fprintf(w, "\tlineSpacing = %d\n", f.LineSpacing)
	fmt.Fprintf(w, "\tspacing float32 = %s\n", formatFloat(f.Spacing))
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w)

	// 2. reconstruction routine
	fmt.Fprintf(w, "// Load reconstructs the %s font.\n", assetName)
	fmt.Fprintln(w, "// If dev is non-nil, it is used to turn the decoded pixels into a texture.")
	fmt.Fprintln(w, "func Load(dev Device) (*Font, error) {")
	fmt.Fprintln(w, "\treturn newFont(dev, width, height, rleData,")
	fmt.Fprintln(w, "\t\tglyphChars, glyphBounds, glyphCroppings, glyphKernings,")
	fmt.Fprintln(w, "\t\tlineSpacing, spacing, defaultChar)")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	w.Write(rt.body)
	fmt.Fprintln(w)

	// 3.-6. glyph tables
	chars := make([]rune, len(f.Glyphs))
	bounds := make([]fontasset.Rect, len(f.Glyphs))
	croppings := make([]fontasset.Rect, len(f.Glyphs))
	kernings := make([]fontasset.Kerning, len(f.Glyphs))
	for i, g := range f.Glyphs {
		chars[i] = g.Char
		bounds[i] = g.Bounds
		croppings[i] = g.Cropping
		kernings[i] = g.Kerning
	}
	writeTable(w, "glyphChars", "rune", chars, charsPerLine, formatRune)
	writeTable(w, "glyphBounds", "Rect", bounds, rectsPerLine, formatRect)
	writeTable(w, "glyphCroppings", "Rect", croppings, rectsPerLine, formatRect)
	writeTable(w, "glyphKernings", "Kerning", kernings, kerningPerLine, formatKerning)

	// 7. pixel data
	fmt.Fprintf(w, "// pixels: %d, uncompressed size: %d bytes, encoded size: %d bytes\n",
		rec.Pixels, rec.UncompressedSize, rec.ByteCount)
	writeTable(w, "rleData", "byte", rec.Data, bytesPerLine, formatByte)

	code, err := format.Source(w.Bytes())
	if err != nil {
		// This indicates a bug in the code above.
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return code, nil
}
