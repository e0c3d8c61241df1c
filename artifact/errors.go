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
	"errors"
	"fmt"
)

// ErrStorage indicates that a generated file could not be written.
var ErrStorage = errors.New("cannot write generated file")

// StorageError is returned by Emit if the output file cannot be written.
type StorageError struct {
	Path string
	Err  error
}

func (err *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", err.Path, err.Err)
}

func (err *StorageError) Unwrap() error {
	return err.Err
}

// Is reports whether target is ErrStorage.
func (err *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NonFiniteError is returned by Generate if a font metric is infinite or
// not a number.
type NonFiniteError struct {
	Field string
	Char  rune // only used for per-glyph fields
}

func (err *NonFiniteError) Error() string {
	if err.Field == "spacing" {
		return "non-finite font spacing"
	}
	return fmt.Sprintf("non-finite %s for %q", err.Field, err.Char)
}

// SyntaxError is returned by Parse and Artifact.Font if the input does not
// have the structure of a generated font file.
type SyntaxError struct {
	Pos string
	Msg string
}

func (err *SyntaxError) Error() string {
	if err.Pos == "" {
		return "generated font: " + err.Msg
	}
	return err.Pos + ": " + err.Msg
}
