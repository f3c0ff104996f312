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

package unit

import (
	"math"
	"testing"
)

// TestRatios pins the conversion factors.  The values are an
// external contract; changing any of them breaks documents which
// persist converted lengths.
func TestRatios(t *testing.T) {
	exact := []struct {
		unit Unit
		size float64
	}{
		{Point, 1},
		{Inch, 72},
		{Pica, 12},
		{Didot, 1238.0 / 1157.0},
		{ScaledPoint, 1.0 / 65536},
	}
	for _, test := range exact {
		if got := test.unit.Points(); got != test.size {
			t.Errorf("%s: got %g, want %g", test.unit, got, test.size)
		}
	}

	derived := []struct {
		unit Unit
		size float64
	}{
		{Centimeter, 72 / 2.54},
		{Millimeter, 72 / 25.4},
		{Micrometer, 72 / 25400.0},
		{Cicero, 12 * 1238.0 / 1157.0},
		{NewDidot, 0.375 * 72 / 25.4},
		{NewCicero, 4.5 * 72 / 25.4},
	}
	for _, test := range derived {
		got := test.unit.Points()
		if math.Abs(got-test.size) > 1e-12 {
			t.Errorf("%s: got %g, want %g", test.unit, got, test.size)
		}
	}
}

func TestConversion(t *testing.T) {
	if got := Inch.ToPoints(1); got != 72 {
		t.Errorf("1in = %gpt, want 72pt", got)
	}
	if got := Inch.FromPoints(144); got != 2 {
		t.Errorf("144pt = %gin, want 2in", got)
	}
	if got := Pica.ToPoints(6); got != 72 {
		t.Errorf("6pc = %gpt, want 72pt", got)
	}

	// conversion must not validate sign or range
	if got := Millimeter.ToPoints(-10); got >= 0 {
		t.Errorf("negative length not preserved: got %g", got)
	}
	if got := Point.ToPoints(0); got != 0 {
		t.Errorf("0pt = %gpt", got)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 1, 0.25, 72, 210, 297, 1e6, -5}
	for u := Point; u < numUnits; u++ {
		for _, x := range values {
			got := u.FromPoints(u.ToPoints(x))
			if math.Abs(got-x) > 1e-9*math.Max(1, math.Abs(x)) {
				t.Errorf("%s: round trip of %g gives %g", u, x, got)
			}
		}
	}
}

func TestUnitString(t *testing.T) {
	cases := []struct {
		unit Unit
		want string
	}{
		{Point, "pt"},
		{Inch, "in"},
		{Millimeter, "mm"},
		{NewCicero, "nc"},
		{Unit(-1), "unit.Unit(-1)"},
		{Unit(99), "unit.Unit(99)"},
	}
	for _, test := range cases {
		if got := test.unit.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
