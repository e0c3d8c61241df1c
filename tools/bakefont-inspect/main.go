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
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/bakefont/artifact"
	"seehuhn.de/go/bakefont/tools/internal/buildinfo"
	"seehuhn.de/go/bakefont/tools/internal/profile"
)

var (
	textArg    = flag.String("text", "", "render `text` using the font")
	texture    = flag.Bool("texture", false, "show the glyph texture")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bakefont-inspect \u2014 show the contents of a generated font file\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("bakefont-inspect"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bakefont-inspect [options] <file.go>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.go   one or more files written by bakefont\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bakefont-inspect GoRegular16.go\n")
		fmt.Fprintf(os.Stderr, "  bakefont-inspect -text \"Hello, World\" GoRegular16.go\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	width := 80
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	for _, fname := range flag.Args() {
		err := inspect(fname, width)
		if err != nil {
			return err
		}
	}
	return nil
}

func inspect(fname string, width int) error {
	src, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	a, err := artifact.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	f, err := a.Font()
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	pixels := a.Width * a.Height
	fmt.Printf("%s: package %s\n", fname, a.Package)
	fmt.Printf("  glyphs:       %d\n", len(a.Glyphs))
	fmt.Printf("  texture:      %dx%d\n", a.Width, a.Height)
	fmt.Printf("  line spacing: %d\n", a.LineSpacing)
	fmt.Printf("  spacing:      %g\n", a.Spacing)
	if f.HasDefault {
		fmt.Printf("  default:      %q\n", f.DefaultChar)
	} else {
		fmt.Printf("  default:      none\n")
	}
	if pixels > 0 {
		fmt.Printf("  pixel data:   %d bytes, %.1f%% of %d\n",
			len(a.Data), 100*float64(len(a.Data))/float64(4*pixels), 4*pixels)
	}

	if *texture {
		fmt.Println()
		for _, line := range previewTexture(f, width) {
			fmt.Println(line)
		}
	}
	if *textArg != "" {
		fmt.Println()
		for _, line := range previewText(f, *textArg, width) {
			fmt.Println(line)
		}
	}
	return nil
}
