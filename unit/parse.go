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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errUnknownUnit = errors.New("unknown unit")

// ParseUnit parses the name of a length unit.  Both the short
// typographic abbreviations ("mm", "dd") and spelled-out names
// ("millimeter", "didot") are recognized.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pt", "point", "points":
		return Point, nil
	case "in", "inch", "inches":
		return Inch, nil
	case "cm", "centimeter", "centimetre":
		return Centimeter, nil
	case "mm", "millimeter", "millimetre":
		return Millimeter, nil
	case "um", "µm", "micrometer", "micrometre":
		return Micrometer, nil
	case "pc", "pica", "picas":
		return Pica, nil
	case "dd", "didot":
		return Didot, nil
	case "cc", "cicero":
		return Cicero, nil
	case "nd", "new didot":
		return NewDidot, nil
	case "nc", "new cicero":
		return NewCicero, nil
	case "sp", "scaled point":
		return ScaledPoint, nil
	}
	return 0, fmt.Errorf("%q: %w", name, errUnknownUnit)
}

// ParseLength parses a measurement like "210mm" or "8.5 in" and
// returns its value in points.  A bare number is taken to be in
// points already.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)

	i := 0
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-' ||
			c == 'e' || c == 'E' {
			i++
			continue
		}
		break
	}

	x, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid measurement %q", s)
	}

	rest := strings.TrimSpace(s[i:])
	if rest == "" {
		return x, nil
	}
	u, err := ParseUnit(rest)
	if err != nil {
		return 0, err
	}
	return u.ToPoints(x), nil
}
