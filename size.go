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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pagesize/unit"
)

// Size represents the dimensions of a page as a width/height pair,
// both measured in the same unit.  Size is an immutable value type:
// methods never modify the receiver but return new values.
//
// Two sizes are equal under == only if they agree in width, height
// and unit.  Use [Size.NearlyEqual] to compare sizes across unit
// systems.
type Size struct {
	Width  float64
	Height float64
	Unit   unit.Unit
}

// New returns the size with the given width and height, measured in
// the unit u.  The values are stored verbatim; conversion only
// happens on demand.
func New(width, height float64, u unit.Unit) Size {
	return Size{Width: width, Height: height, Unit: u}
}

// Points returns a size measured in points.  Width and height are
// given in the unit u and are converted before storage, so that
// Points can construct the canonical representation from values in
// any unit.
func Points(width, height float64, u unit.Unit) Size {
	return Size{
		Width:  u.ToPoints(width),
		Height: u.ToPoints(height),
		Unit:   unit.Point,
	}
}

// IsLandscape reports whether the page is in landscape orientation.
// Square pages count as landscape.
func (s Size) IsLandscape() bool {
	return s.Width >= s.Height
}

// IsPortrait reports whether the page is in portrait orientation.
func (s Size) IsPortrait() bool {
	return s.Width < s.Height
}

// IsSquare reports whether width and height coincide.
func (s Size) IsSquare() bool {
	return s.Width == s.Height
}

// Landscape returns the page in landscape orientation, swapping width
// and height if needed.
func (s Size) Landscape() Size {
	if s.IsPortrait() {
		return Size{Width: s.Height, Height: s.Width, Unit: s.Unit}
	}
	return s
}

// Portrait returns the page in portrait orientation, swapping width
// and height if needed.  Square pages are returned unchanged.
func (s Size) Portrait() Size {
	if s.IsLandscape() && !s.IsSquare() {
		return Size{Width: s.Height, Height: s.Width, Unit: s.Unit}
	}
	return s
}

// ToPoints converts the size to points.
func (s Size) ToPoints() Size {
	return Size{
		Width:  s.Unit.ToPoints(s.Width),
		Height: s.Unit.ToPoints(s.Height),
		Unit:   unit.Point,
	}
}

// In converts the size to the unit u.  The conversion routes through
// points.
func (s Size) In(u unit.Unit) Size {
	p := s.ToPoints()
	return Size{
		Width:  u.FromPoints(p.Width),
		Height: u.FromPoints(p.Height),
		Unit:   u,
	}
}

// Inch returns the size in inches.
func (s Size) Inch() Size { return s.In(unit.Inch) }

// CM returns the size in centimeters.
func (s Size) CM() Size { return s.In(unit.Centimeter) }

// MM returns the size in millimeters.
func (s Size) MM() Size { return s.In(unit.Millimeter) }

// UM returns the size in micrometers.
func (s Size) UM() Size { return s.In(unit.Micrometer) }

// Pica returns the size in picas.
func (s Size) Pica() Size { return s.In(unit.Pica) }

// Didot returns the size in didots (French points).
func (s Size) Didot() Size { return s.In(unit.Didot) }

// Cicero returns the size in ciceros.
func (s Size) Cicero() Size { return s.In(unit.Cicero) }

// NewDidot returns the size in new didots.
func (s Size) NewDidot() Size { return s.In(unit.NewDidot) }

// NewCicero returns the size in new ciceros.
func (s Size) NewCicero() Size { return s.In(unit.NewCicero) }

// ScaledPoint returns the size in TeX scaled points.
func (s Size) ScaledPoint() Size { return s.In(unit.ScaledPoint) }

// NearlyEqual reports whether s and other describe the same page
// dimensions to within eps points.  Unlike ==, the comparison is
// unit-aware: both operands are converted to points first.
func (s Size) NearlyEqual(other Size, eps float64) bool {
	a := s.ToPoints()
	b := other.ToPoints()
	return math.Abs(a.Width-b.Width) < eps &&
		math.Abs(a.Height-b.Height) < eps
}

// MediaBox returns the page rectangle in points, with the lower left
// corner at the origin.
func (s Size) MediaBox() rect.Rect {
	p := s.ToPoints()
	return rect.Rect{URx: p.Width, URy: p.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%.2f x %.2f %s", s.Width, s.Height, s.Unit)
}
