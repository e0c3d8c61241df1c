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

import "testing"

func TestIsGenerated(t *testing.T) {
	testCases := []struct {
		body string
		want bool
	}{
		{"// Code generated by bakefont. DO NOT EDIT.\n\npackage x\n", true},
		{"// Code generated by bakefont. DO NOT EDIT.", true},
		{"package x\n// Code generated by bakefont. DO NOT EDIT.\n", false},
		{"// Code generated by hand.\npackage x\n", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := isGenerated([]byte(tc.body)); got != tc.want {
			t.Errorf("isGenerated(%q) = %t", tc.body, got)
		}
	}
}

func TestSkipDir(t *testing.T) {
	for name, want := range map[string]bool{
		"_examples": true,
		".git":      true,
		"testdata":  true,
		"atlas":     false,
		"rle":       false,
	} {
		if got := skipDir(name); got != want {
			t.Errorf("skipDir(%q) = %t", name, got)
		}
	}
}
