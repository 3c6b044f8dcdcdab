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

// Package float formats numbers for use in PDF content streams.
//
// The decimal separator is always the period, independent of the process
// locale: the functions here are built on strconv, which never consults
// locale state.
package float

import "strconv"

// Format rounds x to the given number of decimal digits and returns the
// shortest PDF representation of the result.  Trailing zeros and a leading
// "0" before the decimal point are omitted.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)

	if precision > 0 {
		for out[len(out)-1] == '0' {
			out = out[:len(out)-1]
		}
		if out[len(out)-1] == '.' {
			out = out[:len(out)-1]
		}
	}

	if len(out) > 1 && out[0] == '0' && out[1] == '.' {
		out = out[1:]
	} else if len(out) > 2 && out[0] == '-' && out[1] == '0' && out[2] == '.' {
		out = "-" + out[2:]
	}
	if out == "-0" || out == "" {
		out = "0"
	}
	return out
}

// Round rounds x to the given number of decimal digits.
func Round(x float64, digits int) float64 {
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		panic(err)
	}
	return y
}
