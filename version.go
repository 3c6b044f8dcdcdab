// seehuhn.de/go/pdfgen - a library for generating PDF files
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

package pdfgen

import "strconv"

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this library.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
)

// ParseVersion parses a PDF version string such as "1.4".
func ParseVersion(verString string) (Version, error) {
	if len(verString) == 3 && verString[0] == '1' && verString[1] == '.' &&
		verString[2] >= '0' && verString[2] <= '7' {
		return V1_0 + Version(verString[2]-'0'), nil
	}
	return 0, errVersion
}

// ToString returns the string representation of ver, e.g. "1.7".  If ver
// does not correspond to a supported PDF version, an error is returned.
func (ver Version) ToString() (string, error) {
	if ver >= V1_0 && ver <= V1_7 {
		return "1." + string([]byte{byte(ver-V1_0) + '0'}), nil
	}
	return "", errVersion
}

func (ver Version) String() string {
	versionString, err := ver.ToString()
	if err != nil {
		versionString = "pdfgen.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return versionString
}
