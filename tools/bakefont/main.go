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
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/bakefont"
	"seehuhn.de/go/bakefont/artifact"
	"seehuhn.de/go/bakefont/atlas"
	"seehuhn.de/go/bakefont/tools/internal/buildinfo"
	"seehuhn.de/go/bakefont/tools/internal/profile"
)

var (
	outDir      = flag.String("o", ".", "write the generated file to `dir`")
	nameArg     = flag.String("name", "", "asset `name`, also used as the file name")
	pkgArg      = flag.String("pkg", "", "package `name` of the generated file")
	sizeArg     = flag.Float64("size", 16, "font size in points")
	dpiArg      = flag.Float64("dpi", 72, "output resolution")
	charsArg    = flag.String("chars", "ascii", "characters to include, e.g. \"ascii,U+00C0-U+00FF\"")
	defaultArg  = flag.String("default", "?", "default character, or empty for none")
	spacingArg  = flag.Float64("spacing", 0, "extra space between characters, in pixels")
	paddingArg  = flag.Int("padding", 1, "empty pixels between glyphs in the texture")
	lineSpacing = flag.Int("linespacing", 0, "distance between base lines in pixels (0 = from font)")
	verbose     = flag.Bool("v", false, "show details of the conversion")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile  = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bakefont \u2014 compile a font into Go source code\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("bakefont"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bakefont [options] <font>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font   a TrueType/OpenType file, or one of the built-in fonts\n")
		fmt.Fprintf(os.Stderr, "         (%s)\n\n", strings.Join(atlas.BuiltinNames(), ", "))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCharacter sets for -chars:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", strings.Join(atlas.CharsetNames(), ", "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bakefont -size 12 -o internal/fonts goregular\n")
		fmt.Fprintf(os.Stderr, "  bakefont -chars latin1 -name Body -pkg body DejaVuSans.ttf\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	bakefont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fontArg string) error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	data, ok := atlas.Builtin(fontArg)
	if !ok {
		data, err = os.ReadFile(fontArg)
		if err != nil {
			return err
		}
	}

	face, info, err := atlas.OpenFace(data, *sizeArg, *dpiArg)
	if err != nil {
		return fmt.Errorf("%s: %w", fontArg, err)
	}
	defer face.Close()

	runes, err := atlas.Charset(*charsArg)
	if err != nil {
		return err
	}
	var def rune
	if *defaultArg != "" {
		dr, err := atlas.Charset(*defaultArg)
		if err != nil || len(dr) != 1 {
			return fmt.Errorf("invalid default character %q", *defaultArg)
		}
		def = dr[0]
	}

	opt := &atlas.Options{
		Padding:     *paddingArg,
		Spacing:     float32(*spacingArg),
		DefaultChar: def,
		LineSpacing: *lineSpacing,
	}
	if opt.LineSpacing == 0 {
		opt.LineSpacing = info.LineSpacing
	}
	a, err := atlas.New(face, runes, opt)
	if err != nil {
		return err
	}

	log := bakefont.Logger()
	if missing := a.Missing(); len(missing) > 0 {
		log.Warn("characters not in font", "count", len(missing), "first", string(missing[0]))
	}
	size := a.Texture().Bounds().Size()
	log.Debug("rendered atlas",
		"family", info.FamilyName,
		"bbox", info.BBox,
		"glyphs", len(a.Glyphs()),
		"width", size.X,
		"height", size.Y)

	name := *nameArg
	if name == "" {
		name = defaultName(fontArg, info)
	}
	return bakefont.Run(a, name, *outDir, &artifact.Options{
		Package:   *pkgArg,
		Generator: "bakefont",
	})
}

// defaultName derives an asset name like "GoRegular16" or "GoMono10p5"
// from the font.
func defaultName(fontArg string, info *atlas.Info) string {
	base := info.PostScriptName
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(fontArg), filepath.Ext(fontArg))
	}
	size := strconv.FormatFloat(*sizeArg, 'f', -1, 64)
	return base + strings.ReplaceAll(size, ".", "p")
}
