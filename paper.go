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

package pagesize

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/pagesize/unit"
)

// Standard paper sizes, in points.  The ISO sizes follow the
// millimeter definitions of ISO 216 and ISO 269, the North American
// sizes are defined in inches.  All sizes except Ledger are in
// portrait orientation.
var (
	A0  = Points(841, 1189, unit.Millimeter)
	A1  = Points(594, 841, unit.Millimeter)
	A2  = Points(420, 594, unit.Millimeter)
	A3  = Points(297, 420, unit.Millimeter)
	A4  = Points(210, 297, unit.Millimeter)
	A5  = Points(148, 210, unit.Millimeter)
	A6  = Points(105, 148, unit.Millimeter)
	A7  = Points(74, 105, unit.Millimeter)
	A8  = Points(52, 74, unit.Millimeter)
	A9  = Points(37, 52, unit.Millimeter)
	A10 = Points(26, 37, unit.Millimeter)

	B0  = Points(1000, 1414, unit.Millimeter)
	B1  = Points(707, 1000, unit.Millimeter)
	B2  = Points(500, 707, unit.Millimeter)
	B3  = Points(353, 500, unit.Millimeter)
	B4  = Points(250, 353, unit.Millimeter)
	B5  = Points(176, 250, unit.Millimeter)
	B6  = Points(125, 176, unit.Millimeter)
	B7  = Points(88, 125, unit.Millimeter)
	B8  = Points(62, 88, unit.Millimeter)
	B9  = Points(44, 62, unit.Millimeter)
	B10 = Points(31, 44, unit.Millimeter)

	C0  = Points(917, 1297, unit.Millimeter)
	C1  = Points(648, 917, unit.Millimeter)
	C2  = Points(458, 648, unit.Millimeter)
	C3  = Points(324, 458, unit.Millimeter)
	C4  = Points(229, 324, unit.Millimeter)
	C5  = Points(162, 229, unit.Millimeter)
	C6  = Points(114, 162, unit.Millimeter)
	C7  = Points(81, 114, unit.Millimeter)
	C8  = Points(57, 81, unit.Millimeter)
	C9  = Points(40, 57, unit.Millimeter)
	C10 = Points(28, 40, unit.Millimeter)

	Letter          = Points(8.5, 11, unit.Inch)
	Legal           = Points(8.5, 14, unit.Inch)
	Tabloid         = Points(11, 17, unit.Inch)
	Ledger          = Points(17, 11, unit.Inch)
	HalfLetter      = Points(5.5, 8.5, unit.Inch)
	GovLetter       = Points(8, 10.5, unit.Inch)
	GovLegal        = Points(8.5, 13, unit.Inch)
	JuniorLegal     = Points(8, 5, unit.Inch)
	ElevenSeventeen = Points(11, 17, unit.Inch)
)

var paperSizes = map[string]Size{
	"A0":  A0,
	"A1":  A1,
	"A2":  A2,
	"A3":  A3,
	"A4":  A4,
	"A5":  A5,
	"A6":  A6,
	"A7":  A7,
	"A8":  A8,
	"A9":  A9,
	"A10": A10,

	"B0":  B0,
	"B1":  B1,
	"B2":  B2,
	"B3":  B3,
	"B4":  B4,
	"B5":  B5,
	"B6":  B6,
	"B7":  B7,
	"B8":  B8,
	"B9":  B9,
	"B10": B10,

	"C0":  C0,
	"C1":  C1,
	"C2":  C2,
	"C3":  C3,
	"C4":  C4,
	"C5":  C5,
	"C6":  C6,
	"C7":  C7,
	"C8":  C8,
	"C9":  C9,
	"C10": C10,

	"Letter":          Letter,
	"Legal":           Legal,
	"Tabloid":         Tabloid,
	"Ledger":          Ledger,
	"HalfLetter":      HalfLetter,
	"GovLetter":       GovLetter,
	"GovLegal":        GovLegal,
	"JuniorLegal":     JuniorLegal,
	"ElevenSeventeen": ElevenSeventeen,
}

// Lookup returns the paper size with the given name, for example
// "A4" or "Letter".  The comparison ignores case.
func Lookup(name string) (Size, bool) {
	name = strings.TrimSpace(name)
	if s, ok := paperSizes[name]; ok {
		return s, true
	}
	for k, s := range paperSizes {
		if strings.EqualFold(k, name) {
			return s, true
		}
	}
	return Size{}, false
}

// Names returns the names of all known paper sizes, in alphabetical
// order.
func Names() []string {
	names := maps.Keys(paperSizes)
	slices.Sort(names)
	return names
}

// ParseSize parses a page size given either as the name of a
// standard paper size ("A4") or as a pair of measurements separated
// by "x" ("210mm x 297mm").  The result is measured in points.
func ParseSize(s string) (Size, error) {
	if size, ok := Lookup(s); ok {
		return size, nil
	}

	wStr, hStr, ok := strings.Cut(s, "x")
	if !ok {
		return Size{}, fmt.Errorf("unknown page size %q", s)
	}
	w, err := unit.ParseLength(wStr)
	if err != nil {
		return Size{}, err
	}
	h, err := unit.ParseLength(hStr)
	if err != nil {
		return Size{}, err
	}
	return New(w, h, unit.Point), nil
}
