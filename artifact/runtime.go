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
	"go/parser"
	"go/token"
	"strconv"
	"sync"

	"seehuhn.de/go/bakefont/artifact/internal/loader"
)

// runtime is the part of the loader package which is copied into every
// generated file.
type runtime struct {
	imports []string
	body    []byte
}

var runtimeCode = sync.OnceValues(func() (*runtime, error) {
	return splitRuntime(loader.Source)
})

// splitRuntime separates the import paths of a Go source file from the
// declarations following the import block.
func splitRuntime(src []byte) (*runtime, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "loader.go", src, parser.ImportsOnly)
	if err != nil {
		return nil, fmt.Errorf("run-time code: %w", err)
	}

	rt := &runtime{}
	end := fset.Position(file.Name.End()).Offset
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return nil, fmt.Errorf("run-time code: %w", err)
		}
		rt.imports = append(rt.imports, path)
	}
	for _, decl := range file.Decls {
		end = max(end, fset.Position(decl.End()).Offset)
	}
	rt.body = bytes.TrimLeft(src[end:], "\n")
	return rt, nil
}
