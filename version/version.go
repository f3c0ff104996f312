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

// Package version provides a simple three-component version number.
package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version represents a version number with major, minor and patch
// components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// New returns the version with the given components.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse parses a version string like "1.2.3".  A leading "v" is
// allowed, and trailing components may be omitted, so that "v1.2"
// and "2" are also valid.  Omitted components are zero.
func Parse(s string) (Version, error) {
	orig := s
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version %q", orig)
	}
	var c [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q", orig)
		}
		c[i] = n
	}
	return Version{Major: c[0], Minor: c[1], Patch: c[2]}, nil
}

// String returns the version in the form "v1.2.3".
func (v Version) String() string {
	return "v" + strconv.Itoa(v.Major) +
		"." + strconv.Itoa(v.Minor) +
		"." + strconv.Itoa(v.Patch)
}

// MajorMinor returns the major and minor components in the form
// "1.2", with the patch level omitted.
func (v Version) MajorMinor() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Compare compares v and other component by component.  The result
// is -1 if v is older than other, 0 if they are the same, and +1 if
// v is newer.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}
