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
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/bakefont/fontasset"
)

// writeTable writes a slice variable with perLine items on each line.
func writeTable[T any](w *bytes.Buffer, name, typ string, items []T, perLine int, format func(T) string) {
	fmt.Fprintf(w, "var %s = []%s{", name, typ)
	if len(items) == 0 {
		w.WriteString("}\n\n")
		return
	}
	w.WriteString("\n")
	parts := make([]string, 0, perLine)
	for start := 0; start < len(items); start += perLine {
		end := min(start+perLine, len(items))
		parts = parts[:0]
		for _, item := range items[start:end] {
			parts = append(parts, format(item))
		}
		w.WriteString("\t")
		w.WriteString(strings.Join(parts, ", "))
		w.WriteString(",\n")
	}
	w.WriteString("}\n\n")
}

// formatRune returns a Go literal for r.  The caller must ensure that r
// is a valid code point.
func formatRune(r rune) string {
	return strconv.QuoteRuneToASCII(r)
}

func formatRect(r fontasset.Rect) string {
	return fmt.Sprintf("{%d, %d, %d, %d}", r.X, r.Y, r.Width, r.Height)
}

func formatKerning(k fontasset.Kerning) string {
	return "{" + formatFloat(k.Left) + ", " + formatFloat(k.Width) + ", " + formatFloat(k.Right) + "}"
}

func formatByte(b byte) string {
	return strconv.Itoa(int(b))
}

// formatFloat returns the shortest literal which reads back as x.
// The value must be finite.
func formatFloat(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

func isFinite(x float32) bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}
