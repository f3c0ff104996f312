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

// Package pagesize provides page sizes as immutable value objects.
//
// A [Size] stores a width and a height together with the unit both
// are measured in.  All unit conversions route through the PDF point
// (1/72 inch):
//
//	a4 := pagesize.Points(210, 297, unit.Millimeter)
//	fmt.Println(a4.Inch())
//
// The standard ISO 216/269 and North American paper sizes are
// provided as package-level variables, denominated in points:
//
//	box := pagesize.A4.MediaBox()
//
// Sizes are plain values.  No method modifies its receiver, and all
// functions in this package are safe for concurrent use.
package pagesize
