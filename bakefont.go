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
	"path/filepath"
	"strings"
	"unicode"

	"github.com/xdg-go/stringprep"

	"seehuhn.de/go/bakefont/artifact"
	"seehuhn.de/go/bakefont/fontasset"
	"seehuhn.de/go/bakefont/rle"
)

// Options control the code generated by Run.
type Options = artifact.Options

// Run converts the font src into a Go source file.  The file is written to
// dir, using the sanitized asset name (see AssetName) as the file name.
//
// If the font declares a default character without a glyph, an error
// matching fontasset.ErrMissingDefaultGlyph is returned and no file is
// written.  Failures to write the file match artifact.ErrStorage.
func Run(src fontasset.Source, assetName, dir string, opt *Options) error {
	name := AssetName(assetName)
	log := Logger().With("asset", name)

	f, err := fontasset.Disassemble(src)
	if err != nil {
		return err
	}
	log.Debug("disassembled font",
		"glyphs", len(f.Glyphs),
		"width", f.Width,
		"height", f.Height,
		"default", string(f.DefaultChar))

	rec := rle.Encode(f.Alpha)
	log.Debug("encoded texture",
		"pixels", rec.Pixels,
		"uncompressed", rec.UncompressedSize,
		"encoded", rec.ByteCount)

	err = artifact.EmitEncoded(name, dir, f, rec, opt)
	if err != nil {
		return err
	}
	log.Info("wrote font", "path", filepath.Join(dir, name+".go"))
	return nil
}

// assetProfile removes invisible characters like the soft hyphen and
// applies NFKC normalization.
var assetProfile = stringprep.Profile{
	Mappings:  []stringprep.Mapping{stringprep.TableB1},
	Normalize: true,
}

// AssetName turns a file name or font name into the name of the generated
// file.  Directories and the file name extension are removed, as are all
// white space characters.  The result is NFKC normalized.
func AssetName(name string) string {
	name = filepath.Base(name)
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	if prepped, err := assetProfile.Prepare(name); err == nil {
		name = prepped
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" {
		return "font"
	}
	return name
}
