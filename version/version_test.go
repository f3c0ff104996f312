// seehuhn.de/go/pagesize - typographic units and page sizes
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

package version

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Version
		err  bool
	}{
		{"1.2.3", Version{1, 2, 3}, false},
		{"v1.2.3", Version{1, 2, 3}, false},
		{"v1.2", Version{1, 2, 0}, false},
		{"2", Version{2, 0, 0}, false},
		{" 0.4.4 ", Version{0, 4, 4}, false},
		{"", Version{}, true},
		{"1.2.3.4", Version{}, true},
		{"1.x", Version{}, true},
		{"-1.0", Version{}, true},
	}
	for _, test := range cases {
		got, err := Parse(test.in)
		if test.err {
			if err == nil {
				t.Errorf("Parse(%q): expected error", test.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", test.in, err)
		} else if got != test.want {
			t.Errorf("Parse(%q) = %s, want %s", test.in, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := New(1, 2, 3).String(); got != "v1.2.3" {
		t.Errorf("String() = %q", got)
	}
	if got := (Version{}).String(); got != "v0.0.0" {
		t.Errorf("String() = %q", got)
	}
	if got := New(1, 2, 3).MajorMinor(); got != "1.2" {
		t.Errorf("MajorMinor() = %q", got)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Version
		want int
	}{
		{Version{1, 0, 0}, Version{1, 0, 0}, 0},
		{Version{1, 0, 0}, Version{2, 0, 0}, -1},
		{Version{1, 2, 0}, Version{1, 1, 9}, +1},
		{Version{1, 2, 3}, Version{1, 2, 4}, -1},
	}
	for _, test := range cases {
		if got := test.a.Compare(test.b); got != test.want {
			t.Errorf("%s.Compare(%s) = %d, want %d",
				test.a, test.b, got, test.want)
		}
		if got := test.a.Less(test.b); got != (test.want < 0) {
			t.Errorf("%s.Less(%s) = %t", test.a, test.b, got)
		}
	}
}
