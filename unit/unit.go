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

// Package unit implements typographic length units.
//
// All units are defined by their size in PDF points (1/72 inch), and
// all conversions route through the point.  The conversion factors
// follow the traditional typographic definitions and are part of this
// package's API: documents which persist converted lengths rely on
// the exact float64 values.
package unit

import "strconv"

// Unit identifies a unit of length.
//
// The zero value is [Point].
type Unit int

// The length units supported by this package.
const (
	Point Unit = iota
	Inch
	Centimeter
	Millimeter
	Micrometer
	Pica
	Didot
	Cicero
	NewDidot
	NewCicero
	ScaledPoint
	numUnits
)

// The size of one unit of each kind, in points.  The millimeter
// chain is derived step by step from the inch so that each constant
// is the float64 value of the traditional definition.
const (
	inchSize        float64 = 72
	cmSize          float64 = inchSize / 2.54
	mmSize          float64 = cmSize / 10
	umSize          float64 = mmSize / 1000
	picaSize        float64 = 12
	didotSize       float64 = 1238.0 / 1157.0
	ciceroSize      float64 = 12 * didotSize
	newDidotSize    float64 = 0.375 * mmSize
	newCiceroSize   float64 = 12 * newDidotSize
	scaledPointSize float64 = 1.0 / 65536
)

var unitSize = [numUnits]float64{
	Point:       1,
	Inch:        inchSize,
	Centimeter:  cmSize,
	Millimeter:  mmSize,
	Micrometer:  umSize,
	Pica:        picaSize,
	Didot:       didotSize,
	Cicero:      ciceroSize,
	NewDidot:    newDidotSize,
	NewCicero:   newCiceroSize,
	ScaledPoint: scaledPointSize,
}

var unitName = [numUnits]string{
	Point:       "pt",
	Inch:        "in",
	Centimeter:  "cm",
	Millimeter:  "mm",
	Micrometer:  "um",
	Pica:        "pc",
	Didot:       "dd",
	Cicero:      "cc",
	NewDidot:    "nd",
	NewCicero:   "nc",
	ScaledPoint: "sp",
}

// Points returns the size of one unit of u, in points.
func (u Unit) Points() float64 {
	return unitSize[u]
}

// ToPoints converts x, measured in u, to points.
func (u Unit) ToPoints(x float64) float64 {
	return x * unitSize[u]
}

// FromPoints converts x, measured in points, to u.
func (u Unit) FromPoints(x float64) float64 {
	return x / unitSize[u]
}

// String returns the short typographic abbreviation for u,
// e.g. "mm" or "dd".
func (u Unit) String() string {
	if u < 0 || u >= numUnits {
		return "unit.Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitName[u]
}
