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
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding/charmap"
)

var namedCharmaps = map[string]*charmap.Charmap{
	"latin1":   charmap.ISO8859_1,
	"latin9":   charmap.ISO8859_15,
	"win1252":  charmap.Windows1252,
	"win1251":  charmap.Windows1251,
	"macroman": charmap.Macintosh,
	"koi8r":    charmap.KOI8R,
	"cp437":    charmap.CodePage437,
}

// Charset returns the characters described by list.
//
// The list is separated by commas.  Each entry is either the name of a
// character set ("ascii", or one of the 8-bit encodings listed by
// CharsetNames), a single character, or a range of characters like
// "a-z" or "U+0400-U+04FF".  The result is sorted and contains no
// duplicates.
func Charset(list string) ([]rune, error) {
	set := make(map[rune]bool)
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		if item == "ascii" {
			for r := rune(0x20); r < 0x7F; r++ {
				set[r] = true
			}
			continue
		}
		if cm, ok := namedCharmaps[item]; ok {
			for b := range 256 {
				r := cm.DecodeByte(byte(b))
				if r != utf8.RuneError && unicode.IsGraphic(r) {
					set[r] = true
				}
			}
			continue
		}

		first, last, err := parseRange(item)
		if err != nil {
			return nil, err
		}
		for r := first; r <= last; r++ {
			set[r] = true
		}
	}

	return sortedKeys(set), nil
}

// CharsetNames returns the names of the character sets known to Charset.
func CharsetNames() []string {
	names := sortedKeys(namedCharmaps)
	return append([]string{"ascii"}, names...)
}

func parseRange(item string) (rune, rune, error) {
	// A single character, which may be the hyphen itself.
	if r, err := parseChar(item); err == nil {
		return r, r, nil
	}

	from, to, ok := strings.Cut(item, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid character %q", item)
	}
	first, err := parseChar(from)
	if err != nil {
		return 0, 0, err
	}
	last, err := parseChar(to)
	if err != nil {
		return 0, 0, err
	}
	if last < first {
		return 0, 0, fmt.Errorf("empty character range %q", item)
	}
	return first, last, nil
}

func parseChar(s string) (rune, error) {
	if hex, ok := strings.CutPrefix(s, "U+"); ok {
		x, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !utf8.ValidRune(rune(x)) {
			return 0, fmt.Errorf("invalid code point %q", s)
		}
		return rune(x), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("invalid character %q", s)
	}
	return r, nil
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
