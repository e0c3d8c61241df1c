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

package artifact

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"image"
	"unicode"
	"unicode/utf8"

	"seehuhn.de/go/bakefont/fontasset"
	"seehuhn.de/go/bakefont/rle"
)

// Artifact holds the tables read back from a generated font file.
type Artifact struct {
	Package string

	Width, Height int
	LineSpacing   int
	Spacing       float32
	DefaultChar   rune

	Glyphs []fontasset.Glyph

	// Data is the run-length encoded alpha channel of the texture.
	Data []byte
}

// Parse reads a file written by Generate or Emit.
func Parse(src []byte) (*Artifact, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	p := &artParser{fset: fset}
	a := &Artifact{Package: file.Name.Name}

	var chars []rune
	var bounds, croppings []fontasset.Rect
	var kernings []fontasset.Kerning
	seen := make(map[string]bool)
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || (gen.Tok != token.CONST && gen.Tok != token.VAR) {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			if len(vs.Names) != 1 || len(vs.Values) != 1 {
				continue
			}
			name := vs.Names[0].Name
			val := vs.Values[0]
			switch name {
			case "width":
				a.Width = p.int(val)
			case "height":
				a.Height = p.int(val)
			case "lineSpacing":
				a.LineSpacing = p.int(val)
			case "spacing":
				a.Spacing = p.float(val)
			case "defaultChar":
				a.DefaultChar = p.rune(val)
			case "glyphChars":
				for _, elt := range p.list(val) {
					chars = append(chars, p.rune(elt))
				}
			case "glyphBounds":
				bounds = p.rects(val)
			case "glyphCroppings":
				croppings = p.rects(val)
			case "glyphKernings":
				for _, elt := range p.list(val) {
					kernings = append(kernings, p.kerning(elt))
				}
			case "rleData":
				for _, elt := range p.list(val) {
					a.Data = append(a.Data, p.byte(elt))
				}
			default:
				continue
			}
			seen[name] = true
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	for _, name := range []string{
		"width", "height", "defaultChar", "lineSpacing", "spacing",
		"glyphChars", "glyphBounds", "glyphCroppings", "glyphKernings", "rleData",
	} {
		if !seen[name] {
			return nil, &SyntaxError{Msg: "missing declaration of " + name}
		}
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, &SyntaxError{
			Msg: fmt.Sprintf("invalid texture size %dx%d", a.Width, a.Height),
		}
	}
	n := len(chars)
	if len(bounds) != n || len(croppings) != n || len(kernings) != n {
		return nil, &SyntaxError{Msg: "glyph tables have different lengths"}
	}
	a.Glyphs = make([]fontasset.Glyph, n)
	for i := range a.Glyphs {
		a.Glyphs[i] = fontasset.Glyph{
			Char:     chars[i],
			Bounds:   bounds[i],
			Cropping: croppings[i],
			Kerning:  kernings[i],
		}
	}
	return a, nil
}

// Font decodes the pixel data and returns the font described by a.
// The default character is only set if the font has a glyph for it.
//
// If the pixel data does not match the texture size, or if the bounds of a
// glyph do not lie inside the texture, a *SyntaxError is returned.
func (a *Artifact) Font() (*fontasset.Font, error) {
	if a.Width < 0 || a.Height < 0 {
		return nil, &SyntaxError{
			Msg: fmt.Sprintf("invalid texture size %dx%d", a.Width, a.Height),
		}
	}
	for _, g := range a.Glyphs {
		if !g.Bounds.Inside(a.Width, a.Height) {
			b := g.Bounds
			return nil, &SyntaxError{
				Msg: fmt.Sprintf("bounds %d,%d+%dx%d of glyph %q are outside the %dx%d texture",
					b.X, b.Y, b.Width, b.Height, g.Char, a.Width, a.Height),
			}
		}
	}

	pix, err := rle.DecodeRGBA(a.Data)
	if err != nil {
		return nil, err
	}
	if len(pix) != 4*a.Width*a.Height {
		return nil, &SyntaxError{
			Msg: fmt.Sprintf("pixel data has %d samples, expected %dx%d",
				len(pix)/4, a.Width, a.Height),
		}
	}
	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * a.Width,
		Rect:   image.Rect(0, 0, a.Width, a.Height),
	}
	return fontasset.Disassemble(&decoded{a: a, img: img})
}

// decoded presents an Artifact as a fontasset.Source.
type decoded struct {
	a   *Artifact
	img *image.RGBA
}

func (d *decoded) Texture() *image.RGBA     { return d.img }
func (d *decoded) Glyphs() []fontasset.Glyph { return d.a.Glyphs }
func (d *decoded) LineSpacing() int          { return d.a.LineSpacing }
func (d *decoded) Spacing() float32          { return d.a.Spacing }

func (d *decoded) DefaultChar() (rune, bool) {
	for _, g := range d.a.Glyphs {
		if g.Char == d.a.DefaultChar {
			return g.Char, true
		}
	}
	return 0, false
}

// artParser evaluates the literals of a generated file.  The first error
// is kept, later errors are ignored.
type artParser struct {
	fset *token.FileSet
	err  error
}

func (p *artParser) fail(node ast.Node, format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Pos: p.fset.Position(node.Pos()).String(),
		Msg: fmt.Sprintf(format, args...),
	}
}

func (p *artParser) value(expr ast.Expr) constant.Value {
	switch e := expr.(type) {
	case *ast.BasicLit:
		v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
		if v.Kind() == constant.Unknown {
			p.fail(e, "invalid literal %s", e.Value)
		}
		return v
	case *ast.UnaryExpr:
		if e.Op == token.SUB || e.Op == token.ADD {
			x := p.value(e.X)
			if x.Kind() == constant.Unknown {
				return x
			}
			return constant.UnaryOp(e.Op, x, 0)
		}
	case *ast.ParenExpr:
		return p.value(e.X)
	}
	p.fail(expr, "expected a literal")
	return constant.MakeUnknown()
}

func (p *artParser) int(expr ast.Expr) int {
	v := constant.ToInt(p.value(expr))
	i, ok := constant.Int64Val(v)
	if !ok {
		p.fail(expr, "expected an integer")
	}
	return int(i)
}

func (p *artParser) byte(expr ast.Expr) byte {
	i := p.int(expr)
	if i < 0 || i > 255 {
		p.fail(expr, "byte value %d out of range", i)
		return 0
	}
	return byte(i)
}

func (p *artParser) rune(expr ast.Expr) rune {
	i := p.int(expr)
	if i < 0 || i > unicode.MaxRune || !utf8.ValidRune(rune(i)) {
		p.fail(expr, "invalid character %d", i)
		return 0
	}
	return rune(i)
}

func (p *artParser) float(expr ast.Expr) float32 {
	v := constant.ToFloat(p.value(expr))
	x, _ := constant.Float32Val(v)
	if v.Kind() != constant.Float && v.Kind() != constant.Int {
		p.fail(expr, "expected a number")
	}
	return x
}

func (p *artParser) list(expr ast.Expr) []ast.Expr {
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		p.fail(expr, "expected a composite literal")
		return nil
	}
	return lit.Elts
}

func (p *artParser) fields(expr ast.Expr, n int) []ast.Expr {
	elts := p.list(expr)
	if elts != nil && len(elts) != n {
		p.fail(expr, "expected %d fields, found %d", n, len(elts))
		return nil
	}
	return elts
}

func (p *artParser) rects(expr ast.Expr) []fontasset.Rect {
	var res []fontasset.Rect
	for _, elt := range p.list(expr) {
		f := p.fields(elt, 4)
		if f == nil {
			continue
		}
		res = append(res, fontasset.Rect{
			X:      p.int(f[0]),
			Y:      p.int(f[1]),
			Width:  p.int(f[2]),
			Height: p.int(f[3]),
		})
	}
	return res
}

func (p *artParser) kerning(expr ast.Expr) fontasset.Kerning {
	f := p.fields(expr, 3)
	if f == nil {
		return fontasset.Kerning{}
	}
	return fontasset.Kerning{
		Left:  p.float(f[0]),
		Width: p.float(f[1]),
		Right: p.float(f[2]),
	}
}
